package fieldx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btnwtn/form-bureaucracy/errx"
	"github.com/btnwtn/form-bureaucracy/fieldx"
)

func TestWriteFindingsEmpty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ok := fieldx.WriteFindings(rec, fieldx.Findings{})

	require.True(t, ok)
	require.Empty(t, rec.Body.String())
}

func TestWriteFindingsNonEmpty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ok := fieldx.WriteFindings(rec, fieldx.Findings{
		"email": {"required", "missing @"},
	})

	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Error struct {
			Code    string         `json:"code"`
			Type    string         `json:"type"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, string(fieldx.ErrValidationFailed), body.Error.Code)
	require.Equal(t, string(errx.TypeValidation), body.Error.Type)
	require.Contains(t, body.Error.Details, "errors")
}

func TestWriteErrorPassesThroughErrx(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	fieldx.WriteError(rec, fieldx.FieldErrors.New(fieldx.ErrNoRule))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, string(fieldx.ErrNoRule), body.Error.Code)
}

func TestWriteErrorWrapsPlainErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	fieldx.WriteError(rec, errors.New("db down"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, string(errx.TypeSystem), body.Error.Type)
}
