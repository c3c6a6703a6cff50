package stats

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type departmentCountRow struct {
	DepartmentID uint
	Department   string
	Count        int64
}

type recentEmployeeRow struct {
	ID             uint
	EmployeeCode   string
	FirstName      string
	LastName       string
	DepartmentName string
	CreatedAt      time.Time
}

type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountActiveEmployees(ctx context.Context) (int64, error)
	AverageActiveSalary(ctx context.Context) (float64, error)
	CountByDepartment(ctx context.Context) ([]departmentCountRow, error)
	RecentEmployees(ctx context.Context, limit int) ([]recentEmployeeRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Count(&count).Error
	return count, err
}

func (r *repository) CountActiveEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("status = ?", "active").
		Count(&count).Error
	return count, err
}

// AverageActiveSalary is 0 when no active employees exist; COALESCE keeps the
// scan from tripping over a NULL aggregate.
func (r *repository) AverageActiveSalary(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("COALESCE(AVG(salary), 0)").
		Where("status = ?", "active").
		Scan(&avg).Error
	return avg, err
}

// CountByDepartment left-joins so departments with zero employees appear in
// the breakdown.
func (r *repository) CountByDepartment(ctx context.Context) ([]departmentCountRow, error) {
	var rows []departmentCountRow
	err := r.db.WithContext(ctx).
		Table("departments AS d").
		Select("d.id AS department_id, d.name AS department, COUNT(e.id) AS count").
		Joins("LEFT JOIN employees e ON e.department_id = d.id").
		Group("d.id, d.name").
		Order("d.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentEmployees(ctx context.Context, limit int) ([]recentEmployeeRow, error) {
	var rows []recentEmployeeRow
	err := r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.id, e.employee_code, e.first_name, e.last_name, d.name AS department_name, e.created_at").
		Joins("LEFT JOIN departments d ON d.id = e.department_id").
		Order("e.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
