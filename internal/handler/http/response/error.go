package response

import (
	"errors"
	"net/http"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Overtime report domain errors
	switch {
	case errors.Is(err, overtime.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in dataset")
	case errors.Is(err, overtime.ErrDepartmentNotFound):
		NotFound(w, "Department not found in dataset")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
