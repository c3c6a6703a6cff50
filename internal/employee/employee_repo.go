package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListFilter carries the list endpoint's filter, sort and page window.
type ListFilter struct {
	Search       string
	DepartmentID *uint
	Status       string
	SortBy       string
	SortOrder    string
	Offset       int
	Limit        int
}

// sortableColumns is the allow-list behind sortBy. Anything else silently
// falls back to creation time, newest first.
var sortableColumns = map[string]string{
	"employee_code": "employee_code",
	"first_name":    "first_name",
	"last_name":     "last_name",
	"email":         "email",
	"position":      "position",
	"salary":        "salary",
	"hire_date":     "hire_date",
	"status":        "status",
	"created_at":    "created_at",
}

func orderClause(sortBy, sortOrder string) string {
	column, ok := sortableColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return "created_at DESC"
	}
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

type Repository interface {
	FindPage(ctx context.Context, f ListFilter) ([]Employee, int64, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	DepartmentExists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id uint) error
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) applyFilter(q *gorm.DB, f ListFilter) *gorm.DB {
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(
			"employee_code ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR position ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if f.DepartmentID != nil {
		q = q.Where("department_id = ?", *f.DepartmentID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

// FindPage runs the page query and a count query over identical predicates,
// so pagination.total reflects the filters rather than the page.
func (r *repository) FindPage(ctx context.Context, f ListFilter) ([]Employee, int64, error) {
	var total int64
	countQ := r.applyFilter(r.db.WithContext(ctx).Model(&Employee{}), f)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var empls []Employee
	pageQ := r.applyFilter(r.db.WithContext(ctx).Model(&Employee{}), f).
		Preload("Department").
		Order(orderClause(f.SortBy, f.SortOrder)).
		Offset(f.Offset).
		Limit(f.Limit)
	if err := pageQ.Find(&empls).Error; err != nil {
		return nil, 0, err
	}

	return empls, total, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("employee_code = ?", code)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("LOWER(email) = LOWER(?)", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// DepartmentExists is the foreign-key pre-check for create/update.
func (r *repository) DepartmentExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}

// DeleteByIDs removes the given employees in one statement and reports the
// affected-row count.
func (r *repository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&Employee{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}
