package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeStatsRepo struct {
	CountEmployeesFn       func(ctx context.Context) (int64, error)
	CountActiveEmployeesFn func(ctx context.Context) (int64, error)
	AverageActiveSalaryFn  func(ctx context.Context) (float64, error)
	CountByDepartmentFn    func(ctx context.Context) ([]departmentCountRow, error)
	RecentEmployeesFn      func(ctx context.Context, limit int) ([]recentEmployeeRow, error)
}

func (f *fakeStatsRepo) CountEmployees(ctx context.Context) (int64, error) {
	return f.CountEmployeesFn(ctx)
}
func (f *fakeStatsRepo) CountActiveEmployees(ctx context.Context) (int64, error) {
	return f.CountActiveEmployeesFn(ctx)
}
func (f *fakeStatsRepo) AverageActiveSalary(ctx context.Context) (float64, error) {
	return f.AverageActiveSalaryFn(ctx)
}
func (f *fakeStatsRepo) CountByDepartment(ctx context.Context) ([]departmentCountRow, error) {
	return f.CountByDepartmentFn(ctx)
}
func (f *fakeStatsRepo) RecentEmployees(ctx context.Context, limit int) ([]recentEmployeeRow, error) {
	return f.RecentEmployeesFn(ctx, limit)
}

func healthyRepo() *fakeStatsRepo {
	return &fakeStatsRepo{
		CountEmployeesFn: func(ctx context.Context) (int64, error) {
			return 12, nil
		},
		CountActiveEmployeesFn: func(ctx context.Context) (int64, error) {
			return 9, nil
		},
		AverageActiveSalaryFn: func(ctx context.Context) (float64, error) {
			return 45500.5, nil
		},
		CountByDepartmentFn: func(ctx context.Context) ([]departmentCountRow, error) {
			return []departmentCountRow{
				{DepartmentID: 1, Department: "Engineering", Count: 7},
				{DepartmentID: 2, Department: "Finance", Count: 0},
			}, nil
		},
		RecentEmployeesFn: func(ctx context.Context, limit int) ([]recentEmployeeRow, error) {
			return []recentEmployeeRow{
				{ID: 12, EmployeeCode: "EMP-012", FirstName: "Maria", LastName: "Santos",
					DepartmentName: "Engineering", CreatedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
}

func TestStatsService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates all five reads", func(t *testing.T) {
		repo := healthyRepo()
		var gotLimit int
		recentFn := repo.RecentEmployeesFn
		repo.RecentEmployeesFn = func(ctx context.Context, limit int) ([]recentEmployeeRow, error) {
			gotLimit = limit
			return recentFn(ctx, limit)
		}
		svc := NewService(repo)

		resp, err := svc.Summary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), resp.TotalEmployees)
		assert.Equal(t, int64(9), resp.ActiveEmployees)
		assert.Equal(t, recentEmployeeLimit, gotLimit)
		assert.Len(t, resp.ByDepartment, 2)
		assert.Equal(t, "Engineering", resp.ByDepartment[0].Department)
		assert.Equal(t, int64(0), resp.ByDepartment[1].Count)
		assert.Len(t, resp.RecentEmployees, 1)
		assert.Equal(t, "2024-06-01T08:00:00Z", resp.RecentEmployees[0].CreatedAt)
	})

	t.Run("average salary is rounded to the nearest integer", func(t *testing.T) {
		repo := healthyRepo()
		repo.AverageActiveSalaryFn = func(ctx context.Context) (float64, error) {
			return 45500.5, nil
		}
		svc := NewService(repo)

		resp, err := svc.Summary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(45501), resp.AverageSalary)
	})

	t.Run("average salary is 0 with no active employees", func(t *testing.T) {
		repo := healthyRepo()
		repo.CountActiveEmployeesFn = func(ctx context.Context) (int64, error) { return 0, nil }
		repo.AverageActiveSalaryFn = func(ctx context.Context) (float64, error) { return 0, nil }
		svc := NewService(repo)

		resp, err := svc.Summary(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), resp.AverageSalary)
	})

	t.Run("any failing read fails the whole summary", func(t *testing.T) {
		storeErr := errors.New("relation does not exist")

		repo := healthyRepo()
		repo.CountByDepartmentFn = func(ctx context.Context) ([]departmentCountRow, error) {
			return nil, storeErr
		}
		svc := NewService(repo)

		resp, err := svc.Summary(ctx)

		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, StatsResponse{}, resp)
	})

	t.Run("a failing read short-circuits the remaining ones", func(t *testing.T) {
		recentCalled := false
		repo := healthyRepo()
		repo.CountEmployeesFn = func(ctx context.Context) (int64, error) {
			return 0, errors.New("boom")
		}
		repo.RecentEmployeesFn = func(ctx context.Context, limit int) ([]recentEmployeeRow, error) {
			recentCalled = true
			return nil, nil
		}
		svc := NewService(repo)

		_, err := svc.Summary(ctx)

		assert.Error(t, err)
		assert.False(t, recentCalled)
	})
}
