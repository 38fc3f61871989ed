package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/academic-api/internal/service"
	"github.com/aanand-mishra/academic-api/internal/types"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusOK, map[string]string{"status": StatusOK})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("wrapped: %w", &service.NotFoundError{Kind: types.KindStudent, ID: 1})

	_ = WriteError(rec, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"wrapped: Student with id 1 not found"}`, rec.Body.String())
}

func TestWriteErrorInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	_ = WriteError(rec, errors.New("disk I/O error"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"disk I/O error"}`, rec.Body.String())
}
