package employee

import "time"

type Employee struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code;type:varchar(20);not null;uniqueIndex:uq_employee_code"`
	FirstName    string    `gorm:"column:first_name;type:varchar(50);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(50);not null"`
	Email        string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uq_employee_email"`
	Phone        string    `gorm:"column:phone;type:varchar(20)"`
	DepartmentID *uint     `gorm:"column:department_id;index"`
	Position     string    `gorm:"column:position;type:varchar(100);not null"`
	Salary       float64   `gorm:"column:salary;type:numeric(12,2);not null"`
	HireDate     time.Time `gorm:"column:hire_date;type:date;not null"`
	Status       string    `gorm:"column:status;type:varchar(10);not null;default:active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Department *EmployeeDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnDelete:SET NULL"`
}

// EmployeeDepartment carries the minimal department columns joined into
// employee reads, without importing the department package.
type EmployeeDepartment struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
