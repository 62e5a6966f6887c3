// Package errxlambda maps errx errors to API Gateway proxy responses for
// AWS Lambda handlers.
package errxlambda

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/btnwtn/form-bureaucracy/errx"
)

// LambdaHandlerFunc is an API Gateway proxy handler that may return an error
type LambdaHandlerFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ErrorMiddleware wraps a Lambda handler so that returned errors become
// structured JSON responses instead of invocation failures.
func ErrorMiddleware(handler LambdaHandlerFunc) LambdaHandlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		response, err := handler(ctx, event)
		if err == nil {
			return response, nil
		}

		log.Printf("Lambda error handling request: %v", err)

		var xerr *errx.Error
		if !errors.As(err, &xerr) {
			xerr = &errx.Error{
				Code:       "INTERNAL_ERROR",
				Type:       errx.TypeInternal,
				Message:    err.Error(),
				HTTPStatus: 500,
			}
		}
		return ToLambdaResponse(xerr), nil
	}
}

// ToLambdaResponse converts an errx.Error to an API Gateway proxy response
func ToLambdaResponse(e *errx.Error) events.APIGatewayProxyResponse {
	errorResponse := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		errorResponse["details"] = e.Details
	}

	body, err := json.Marshal(map[string]any{"error": errorResponse})
	if err != nil {
		log.Printf("Failed to marshal error response: %v", err)
		body = []byte(`{"error": {"code": "INTERNAL_ERROR", "type": "INTERNAL", "message": "An unexpected error occurred"}}`)
	}

	status := e.HTTPStatus
	if status == 0 {
		status = 500
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
