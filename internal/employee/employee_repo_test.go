package employee

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)

	return NewRepository(gdb), mock
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"allow-listed column ascends by default", "salary", "", "salary ASC"},
		{"explicit desc", "last_name", "desc", "last_name DESC"},
		{"direction is case-insensitive", "email", "DESC", "email DESC"},
		{"unknown column falls back", "password_hash", "asc", "created_at DESC"},
		{"injection attempt falls back", "salary; DROP TABLE employees", "asc", "created_at DESC"},
		{"empty sort falls back", "", "", "created_at DESC"},
		{"column lookup trims and lowercases", " Salary ", "desc", "salary DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestRepository_FindPage(t *testing.T) {
	t.Run("count and page share the status predicate", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE status = \$1`).
			WithArgs(StatusActive).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE status = \$1 ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, total, err := repo.FindPage(context.Background(), ListFilter{
			Status: StatusActive,
			SortBy: "does_not_exist",
			Offset: 0,
			Limit:  10,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("allow-listed sort column reaches the order clause", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY salary DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, _, err := repo.FindPage(context.Background(), ListFilter{
			SortBy:    "salary",
			SortOrder: "desc",
			Limit:     10,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ExistsByCode(t *testing.T) {
	t.Run("excludeID narrows the check", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE employee_code = \$1 AND id <> \$2`).
			WithArgs("EMP-001", 9).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByCode(context.Background(), "EMP-001", 9)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero excludeID checks every row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE employee_code = \$1`).
			WithArgs("EMP-001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByCode(context.Background(), "EMP-001", 0)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_DeleteByIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "employees" WHERE id IN \(\$1,\$2,\$3\)`).
		WithArgs(1, 2, 5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	affected, err := repo.DeleteByIDs(context.Background(), []uint{1, 2, 5})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
