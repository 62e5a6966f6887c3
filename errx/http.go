package errx

import (
	"encoding/json"
	"net/http"
)

// ToHTTP writes the error to an HTTP response as JSON.
// The response shape matches the fiber and lambda adapters:
//
//	{
//		"error": {
//			"code":    "SOME_CODE",
//			"type":    "VALIDATION",
//			"message": "Something went wrong",
//			"details": { ... }
//		}
//	}
func (e *Error) ToHTTP(w http.ResponseWriter) {
	errorResponse := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}

	if len(e.Details) > 0 {
		errorResponse["details"] = e.Details
	}

	status := e.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]any{"error": errorResponse}); err != nil {
		// Headers are already written; nothing sensible left to do.
		return
	}
}
