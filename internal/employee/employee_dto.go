package employee

import "strconv"

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code" form:"employee_code" binding:"required,max=20"`
	FirstName    string  `json:"first_name" form:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" form:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" form:"email" binding:"required,email,max=100"`
	Phone        string  `json:"phone" form:"phone" binding:"omitempty,max=20"`
	DepartmentID *uint   `json:"department_id" form:"department_id"`
	Position     string  `json:"position" form:"position" binding:"required,max=100"`
	Salary       float64 `json:"salary" form:"salary" binding:"required,gt=0"`
	HireDate     string  `json:"hire_date" form:"hire_date" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status" form:"status" binding:"omitempty,oneof=active inactive"`
}

// Normalize applies defaults after binding. Status falls back to active.
func (r *CreateEmployeeRequest) Normalize() {
	if r.Status == "" {
		r.Status = StatusActive
	}
}

type UpdateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code" form:"employee_code" binding:"required,max=20"`
	FirstName    string  `json:"first_name" form:"first_name" binding:"required,max=50"`
	LastName     string  `json:"last_name" form:"last_name" binding:"required,max=50"`
	Email        string  `json:"email" form:"email" binding:"required,email,max=100"`
	Phone        string  `json:"phone" form:"phone" binding:"omitempty,max=20"`
	DepartmentID *uint   `json:"department_id" form:"department_id"`
	Position     string  `json:"position" form:"position" binding:"required,max=100"`
	Salary       float64 `json:"salary" form:"salary" binding:"required,gt=0"`
	HireDate     string  `json:"hire_date" form:"hire_date" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status" form:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	if r.Status == "" {
		r.Status = StatusActive
	}
}

type ListEmployeesQuery struct {
	Search       string `form:"search"`
	DepartmentID *uint  `form:"departmentId"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page         int    `form:"page,default=1"`
	Limit        int    `form:"limit,default=10"`
	SortBy       string `form:"sortBy"`
	SortOrder    string `form:"sortOrder"`
}

func (q *ListEmployeesQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// BulkDeleteRequest accepts a loosely-typed id list; anything that is not a
// positive integer is dropped rather than rejected.
type BulkDeleteRequest struct {
	IDs []any `json:"ids" binding:"required,min=1"`
}

// ValidIDs filters the raw list down to positive integer identifiers.
// JSON numbers arrive as float64; numeric strings are tolerated.
func (r *BulkDeleteRequest) ValidIDs() []uint {
	ids := make([]uint, 0, len(r.IDs))
	for _, raw := range r.IDs {
		switch v := raw.(type) {
		case float64:
			if v > 0 && v == float64(uint(v)) {
				ids = append(ids, uint(v))
			}
		case string:
			if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
				ids = append(ids, uint(n))
			}
		}
	}
	return ids
}

type EmployeeResponse struct {
	ID             uint    `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	DepartmentID   *uint   `json:"department_id"`
	DepartmentName string  `json:"department_name,omitempty"`
	Position       string  `json:"position"`
	Salary         float64 `json:"salary"`
	HireDate       string  `json:"hire_date"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
