package employeeformerrors

import (
	"go-employee-form/internal/shared/apperror"
	"net/http"
)

var (
	ErrValidationFailed = apperror.New(
		apperror.CodeInvalidInput,
		"Please correct the highlighted fields",
		http.StatusBadRequest,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown employee field",
		http.StatusBadRequest,
	)
	ErrInvalidAddressPolicy = apperror.New(
		apperror.CodeInvalidInput,
		"Address policy must be strict or lenient",
		http.StatusBadRequest,
	)
	ErrSubmissionInFlight = apperror.New(
		apperror.CodeInvalidState,
		"A submission is already in progress",
		http.StatusConflict,
	)
	ErrFormClosed = apperror.New(
		apperror.CodeInvalidState,
		"The form has been closed",
		http.StatusConflict,
	)
)
