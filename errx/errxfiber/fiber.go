// Package errxfiber renders errx errors as Fiber JSON responses.
//
// Register the handler once on the app:
//
//	app := fiber.New(fiber.Config{
//		ErrorHandler: errxfiber.FiberErrorHandler(),
//	})
//
// Any *errx.Error returned from a handler is then formatted as
//
//	{"error": {"code": "...", "type": "...", "message": "...", "details": {...}}}
//
// with the error's HTTP status.
package errxfiber

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/btnwtn/form-bureaucracy/errx"
)

// FiberErrorHandler returns a Fiber error handler that formats errx errors
// as structured JSON responses. Non-errx errors fall back to a generic
// INTERNAL response.
func FiberErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log.Printf("Error handling request: %v", err)

		var xerr *errx.Error
		if errors.As(err, &xerr) {
			return writeErrx(c, xerr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "FIBER_ERROR",
					"type":    errx.TypeInternal,
					"message": fiberErr.Message,
				},
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_ERROR",
				"type":    errx.TypeInternal,
				"message": err.Error(),
			},
		})
	}
}

func writeErrx(c *fiber.Ctx, xerr *errx.Error) error {
	body := fiber.Map{
		"code":    xerr.Code,
		"type":    xerr.Type,
		"message": xerr.Message,
	}
	if len(xerr.Details) > 0 {
		body["details"] = xerr.Details
	}

	status := xerr.HTTPStatus
	if status == 0 {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{"error": body})
}
