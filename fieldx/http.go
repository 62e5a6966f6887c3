package fieldx

import (
	"errors"
	"net/http"

	"github.com/btnwtn/form-bureaucracy/errx"
)

// WriteFindings writes a non-empty findings set to an HTTP response as a
// structured validation error. Returns true if the findings were empty and
// nothing was written, so handlers can use it as a guard:
//
//	if !fieldx.WriteFindings(w, findings) {
//		return
//	}
func WriteFindings(w http.ResponseWriter, findings Findings) bool {
	if findings.Valid() {
		return true
	}

	FieldErrors.New(ErrValidationFailed).WithDetails(map[string]any{
		"errors":      findings,
		"field_count": len(findings),
	}).ToHTTP(w)
	return false
}

// WriteError writes an operational validation failure to an HTTP response
func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var xerr *errx.Error
	if errors.As(err, &xerr) {
		xerr.ToHTTP(w)
		return
	}

	errx.Wrap(err, "validation could not be completed", errx.TypeSystem).ToHTTP(w)
}
