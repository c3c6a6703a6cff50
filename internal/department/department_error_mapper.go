package department

import (
	"errors"
	"net/http"
	"strings"

	departmenterrors "github.com/gorvensalaveria/manila-payroll-backend/internal/department/errors"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store failures into the error taxonomy.
// Duplicate keys still map to a conflict here so a create racing past the
// pre-check answers the same way the pre-check would have.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return departmenterrors.ErrDepartmentNameTaken
		case "42P01":
			return apperror.Wrap(err, apperror.CodeServiceUnavailable,
				"The service is temporarily unavailable", http.StatusInternalServerError)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return departmenterrors.ErrDepartmentNameTaken
	}
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "failed to connect") {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable,
			"The service is temporarily unavailable", http.StatusInternalServerError)
	}

	return err
}
