package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "github.com/gorvensalaveria/manila-payroll-backend/internal/employee/errors"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store failures into the error taxonomy.
// Unique-key violations are mapped per constraint so a create that loses a
// race past the pre-check still answers with the precise conflict.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_employee_code":
				return employeeerrors.ErrEmployeeCodeTaken
			case "uq_employee_email":
				return employeeerrors.ErrEmployeeEmailTaken
			}
			return employeeerrors.ErrEmployeeCodeTaken
		case "23503":
			return employeeerrors.ErrDepartmentMissing
		case "42P01":
			return apperror.Wrap(err, apperror.CodeServiceUnavailable,
				"The service is temporarily unavailable", http.StatusInternalServerError)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmployeeEmailTaken
	}
	if strings.Contains(errMsg, "duplicate key value") {
		return employeeerrors.ErrEmployeeCodeTaken
	}
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "failed to connect") {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable,
			"The service is temporarily unavailable", http.StatusInternalServerError)
	}

	return err
}
