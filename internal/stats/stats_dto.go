package stats

type DepartmentCount struct {
	DepartmentID uint   `json:"department_id"`
	Department   string `json:"department"`
	Count        int64  `json:"count"`
}

type RecentEmployee struct {
	ID             uint   `json:"id"`
	EmployeeCode   string `json:"employee_code"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DepartmentName string `json:"department_name,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type StatsResponse struct {
	TotalEmployees  int64             `json:"total_employees"`
	ActiveEmployees int64             `json:"active_employees"`
	AverageSalary   int64             `json:"average_salary"`
	ByDepartment    []DepartmentCount `json:"by_department"`
	RecentEmployees []RecentEmployee  `json:"recent_employees"`
}
