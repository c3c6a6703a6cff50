package employeeerrors

import (
	"net/http"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with this employee code already exists",
		http.StatusBadRequest,
	)
	ErrEmployeeEmailTaken = apperror.New(
		apperror.CodeConflict,
		"An employee with this email already exists",
		http.StatusBadRequest,
	)
	ErrDepartmentMissing = apperror.New(
		apperror.CodeValidation,
		"The referenced department does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeValidation,
		"Hire date must be a date in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
