package stats

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const recentEmployeeLimit = 5

type Service interface {
	Summary(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Summary composes five independent read queries into one aggregate. Any
// single failure fails the whole response; nothing partial is returned or
// cached. Concurrent callers are coalesced onto one in-flight computation.
func (s *service) Summary(ctx context.Context) (StatsResponse, error) {
	v, err, _ := s.sf.Do("summary", func() (interface{}, error) {
		return s.computeSummary(ctx)
	})
	if err != nil {
		return StatsResponse{}, err
	}
	return v.(StatsResponse), nil
}

func (s *service) computeSummary(ctx context.Context) (StatsResponse, error) {
	total, err := s.repo.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("stats total count failed", zap.Error(err))
		return StatsResponse{}, err
	}

	active, err := s.repo.CountActiveEmployees(ctx)
	if err != nil {
		s.logger.Error("stats active count failed", zap.Error(err))
		return StatsResponse{}, err
	}

	avgSalary, err := s.repo.AverageActiveSalary(ctx)
	if err != nil {
		s.logger.Error("stats average salary failed", zap.Error(err))
		return StatsResponse{}, err
	}

	byDept, err := s.repo.CountByDepartment(ctx)
	if err != nil {
		s.logger.Error("stats department breakdown failed", zap.Error(err))
		return StatsResponse{}, err
	}

	recent, err := s.repo.RecentEmployees(ctx, recentEmployeeLimit)
	if err != nil {
		s.logger.Error("stats recent employees failed", zap.Error(err))
		return StatsResponse{}, err
	}

	resp := StatsResponse{
		TotalEmployees:  total,
		ActiveEmployees: active,
		AverageSalary:   int64(math.Round(avgSalary)),
		ByDepartment:    make([]DepartmentCount, len(byDept)),
		RecentEmployees: make([]RecentEmployee, len(recent)),
	}
	for i, row := range byDept {
		resp.ByDepartment[i] = DepartmentCount{
			DepartmentID: row.DepartmentID,
			Department:   row.Department,
			Count:        row.Count,
		}
	}
	for i, row := range recent {
		resp.RecentEmployees[i] = RecentEmployee{
			ID:             row.ID,
			EmployeeCode:   row.EmployeeCode,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			DepartmentName: row.DepartmentName,
			CreatedAt:      row.CreatedAt.Format(time.RFC3339),
		}
	}

	return resp, nil
}
