package employeeerrors

import (
	"net/http"

	"github.com/sameers07/Employee-API/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// Duplicate employee_id is a 400 on the wire for compatibility with
	// existing clients, even though the code stays CONFLICT.
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrMissingSkill = apperror.New(
		apperror.CodeInvalidInput,
		"Skill query parameter is required",
		http.StatusBadRequest,
	)
)
