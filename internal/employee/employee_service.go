package employee

import (
	"context"
	"time"

	employeeerrors "github.com/gorvensalaveria/manila-payroll-backend/internal/employee/errors"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/contextutil"

	"go.uber.org/zap"
)

const hireDateLayout = "2006-01-02"

type ListResult struct {
	Employees []EmployeeResponse
	Total     int64
}

type Service interface {
	List(ctx context.Context, q ListEmployeesQuery) (ListResult, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, q ListEmployeesQuery) (ListResult, error) {
	q.Normalize()

	filter := ListFilter{
		Search:       q.Search,
		DepartmentID: q.DepartmentID,
		Status:       q.Status,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
		Offset:       (q.Page - 1) * q.Limit,
		Limit:        q.Limit,
	}

	empls, total, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return ListResult{}, mapRepositoryError(err)
	}

	return ListResult{Employees: mapToListResponse(empls), Total: total}, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// runPreChecks enforces the business rules ahead of the mutating statement:
// unique code, unique email and, when supplied, an existing department.
// excludeID spares the record's own row on updates.
func (s *service) runPreChecks(ctx context.Context, code, email string, departmentID *uint, excludeID uint) error {
	taken, err := s.repo.ExistsByCode(ctx, code, excludeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if taken {
		return employeeerrors.ErrEmployeeCodeTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if taken {
		return employeeerrors.ErrEmployeeEmailTaken
	}

	if departmentID != nil {
		exists, err := s.repo.DepartmentExists(ctx, *departmentID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if !exists {
			return employeeerrors.ErrDepartmentMissing
		}
	}

	return nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req.Normalize()
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_code", req.EmployeeCode),
		zap.String("email", req.Email),
	)

	if err := s.runPreChecks(ctx, req.EmployeeCode, req.Email, req.DepartmentID, 0); err != nil {
		s.logger.Warn("create employee pre-check failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	empl := &Employee{
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     hireDate,
		Status:       req.Status,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Re-fetch so the response carries the joined department name.
	created, err := s.repo.FindByID(ctx, empl.ID)
	if err != nil {
		s.logger.Error("create employee re-fetch failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", created.ID),
	)

	return mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	req.Normalize()
	s.logger.Debug("update employee requested", zap.Uint("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.runPreChecks(ctx, req.EmployeeCode, req.Email, req.DepartmentID, id); err != nil {
		s.logger.Warn("update employee pre-check failed",
			zap.Uint("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	hireDate, err := time.Parse(hireDateLayout, req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
	}

	empl.EmployeeCode = req.EmployeeCode
	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.DepartmentID = req.DepartmentID
	empl.Position = req.Position
	empl.Salary = req.Salary
	empl.HireDate = hireDate
	empl.Status = req.Status

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Uint("employee_id", id))

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debug("delete employee requested", zap.Uint("employee_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

// BulkDelete removes the given ids in one statement. An empty list (every
// candidate filtered out) is a no-op reporting zero deletions.
func (s *service) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	affected, err := s.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("bulk delete employees failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("bulk delete employees success",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", affected),
	)
	return affected, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID,
		EmployeeCode: empl.EmployeeCode,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		Email:        empl.Email,
		Phone:        empl.Phone,
		DepartmentID: empl.DepartmentID,
		Position:     empl.Position,
		Salary:       empl.Salary,
		HireDate:     empl.HireDate.Format(hireDateLayout),
		Status:       empl.Status,
		CreatedAt:    empl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    empl.UpdatedAt.Format(time.RFC3339),
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.Name
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
