package departmenterrors

import (
	"net/http"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"A department with this name already exists",
		http.StatusBadRequest,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department cannot be deleted while employees are assigned to it",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeValidation,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
