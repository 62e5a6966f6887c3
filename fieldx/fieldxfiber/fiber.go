package fieldxfiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/btnwtn/form-bureaucracy/fieldx"
)

// FormHandler returns a Fiber handler that validates the posted form values
// for every field the validator knows about and responds with the findings:
//
//	{
//		"valid": false,
//		"errors": {
//			"email": ["required", "missing @"]
//		}
//	}
//
// Operational failures are returned to Fiber's error handler; pair this with
// errxfiber.FiberErrorHandler for consistent error responses.
func FormHandler(v *fieldx.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values := make(map[string]any)
		for _, name := range v.Fields() {
			values[name] = c.FormValue(name)
		}

		findings, err := v.Validate(c.UserContext(), values)
		if err != nil {
			return err
		}

		if findings.Valid() {
			return c.JSON(fiber.Map{"valid": true})
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid":  false,
			"errors": findings,
		})
	}
}

// FieldHandler returns a Fiber handler that validates a single field's value
// taken from the "value" form or query parameter. Intended for per-field
// endpoints hit on blur or change events.
func FieldHandler(v *fieldx.Validator, field string) fiber.Handler {
	validate := v.Field(field)

	return func(c *fiber.Ctx) error {
		value := c.FormValue("value", c.Query("value"))

		findings, err := validate(c.UserContext(), value).Await(c.UserContext())
		if err != nil {
			return err
		}

		if len(findings) == 0 {
			return c.JSON(fiber.Map{"valid": true})
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid":  false,
			"errors": findings,
		})
	}
}
