package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteError(rr, "order not found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"order not found"}`, rr.Body.String())
}

func TestWriteValidationError(t *testing.T) {
	type body struct {
		Email string `json:"email" validate:"required,email"`
	}
	err := validator.New().Struct(body{})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rr, err))

	var res ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, res.Success)
	assert.Equal(t, "required", res.Fields["Email"])
}

func TestWriteFieldError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, WriteFieldError(rr, "status", "is invalid"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"status is invalid","fields":{"status":"is invalid"}}`, rr.Body.String())
}
