package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteValidationError renders validator errors as a field to tag map.
func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Error:  "invalid request",
		Fields: make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		names := make([]string, 0, len(ve))
		for _, fe := range ve {
			res.Fields[fe.Field()] = fe.Tag()
			names = append(names, fe.Field())
		}
		res.Error = "invalid request: " + strings.Join(names, ", ")
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

// WriteFieldError reports a single invalid field.
func WriteFieldError(w http.ResponseWriter, field, reason string) error {
	res := ValidationErrorResponse{Error: reason}
	if field != "" {
		res.Error = field + " " + reason
		res.Fields = map[string]string{field: reason}
	}
	return WriteJSON(w, res, http.StatusBadRequest)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Error: message}, code)
}
