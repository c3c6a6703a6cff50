package usererrors

import (
	"net/http"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"A user with this username already exists",
		http.StatusBadRequest,
	)
	ErrUserEmailTaken = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeValidation,
		"Invalid user ID",
		http.StatusBadRequest,
	)
)
