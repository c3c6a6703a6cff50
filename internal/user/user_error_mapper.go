package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"
	usererrors "github.com/gorvensalaveria/manila-payroll-backend/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_user_email":
				return usererrors.ErrUserEmailTaken
			}
			return usererrors.ErrUsernameTaken
		case "42P01":
			return apperror.Wrap(err, apperror.CodeServiceUnavailable,
				"The service is temporarily unavailable", http.StatusInternalServerError)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_email") {
		return usererrors.ErrUserEmailTaken
	}
	if strings.Contains(errMsg, "duplicate key value") {
		return usererrors.ErrUsernameTaken
	}
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "failed to connect") {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable,
			"The service is temporarily unavailable", http.StatusInternalServerError)
	}

	return err
}
