package department

import (
	"context"
	"encoding/json"
	"time"

	departmenterrors "github.com/gorvensalaveria/manila-payroll-backend/internal/department/errors"
	"github.com/gorvensalaveria/manila-payroll-backend/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	listCacheKey = "departments:all"
	listCacheTTL = 30 * time.Minute
)

type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id uint) (DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id uint, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

// GetAll serves the department list from redis when possible. Departments
// are master data: a 30 minute TTL plus invalidation on every mutation keeps
// the cache honest.
func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := mapToListResponse(depts)

	if s.rdb != nil {
		if jsonData, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, listCacheKey, jsonData, listCacheTTL)
		}
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get department by id failed", zap.Uint("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	taken, err := s.repo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		s.logger.Error("create department uniqueness check failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if taken {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNameTaken
	}

	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.Uint("department_id", dept.ID),
	)

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.Uint("department_id", id))

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	taken, err := s.repo.ExistsByName(ctx, req.Name, id)
	if err != nil {
		s.logger.Error("update department uniqueness check failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	if taken {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNameTaken
	}

	dept.Name = req.Name
	dept.Description = req.Description

	if err := s.repo.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("update department success", zap.Uint("department_id", id))

	return mapToResponse(*dept), nil
}

// Delete refuses to remove a department that still has employees assigned,
// so the client gets a precise reason instead of a constraint violation.
func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debug("delete department requested", zap.Uint("department_id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	refs, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		s.logger.Error("delete department reference check failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if refs > 0 {
		s.logger.Warn("delete department blocked",
			zap.Uint("department_id", id),
			zap.Int64("employee_count", refs),
		)
		return departmenterrors.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateListCache(ctx)
	s.logger.Info("delete department success", zap.Uint("department_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department list cache",
			zap.Error(err),
			zap.String("key", listCacheKey),
		)
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
