package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/employee"
	employeeerrors "github.com/gorvensalaveria/manila-payroll-backend/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	ListFn       func(ctx context.Context, q employee.ListEmployeesQuery) (employee.ListResult, error)
	GetByIDFn    func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id uint) error
	BulkDeleteFn func(ctx context.Context, ids []uint) (int64, error)
}

func (f *fakeEmployeeService) List(ctx context.Context, q employee.ListEmployeesQuery) (employee.ListResult, error) {
	return f.ListFn(ctx, q)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	return f.BulkDeleteFn(ctx, ids)
}

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func TestEmployeeHandler_List(t *testing.T) {
	t.Run("pagination envelope reflects total", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, q employee.ListEmployeesQuery) (employee.ListResult, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 10, q.Limit)
				return employee.ListResult{
					Employees: []employee.EmployeeResponse{{ID: 11}, {ID: 12}},
					Total:     37,
				}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/employees?page=2&limit=10", "")
		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success    bool                        `json:"success"`
			Data       []employee.EmployeeResponse `json:"data"`
			Pagination struct {
				Page  int   `json:"page"`
				Limit int   `json:"limit"`
				Total int64 `json:"total"`
				Pages int   `json:"pages"`
			} `json:"pagination"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.LessOrEqual(t, len(envelope.Data), 10)
		assert.Equal(t, 2, envelope.Pagination.Page)
		assert.Equal(t, int64(37), envelope.Pagination.Total)
		assert.Equal(t, 4, envelope.Pagination.Pages)
	})

	t.Run("invalid status filter answers 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		c, w := newTestContext(t, http.MethodGet, "/api/employees?status=fired", "")
		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	validBody := `{
		"employee_code": "EMP-001",
		"first_name": "Maria",
		"last_name": "Santos",
		"email": "maria.santos@example.com",
		"position": "Accountant",
		"salary": 45000,
		"hire_date": "2024-03-15"
	}`

	t.Run("success answers 201", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{ID: 1, EmployeeCode: req.EmployeeCode}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/employees", validBody)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative salary answers 400 before the service runs", func(t *testing.T) {
		called := false
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				called = true
				return employee.EmployeeResponse{}, nil
			},
		}
		h := employee.NewHandler(svc)

		body := strings.Replace(validBody, "45000", "-1", 1)
		c, w := newTestContext(t, http.MethodPost, "/api/employees", body)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("malformed hire date answers 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		body := strings.Replace(validBody, "2024-03-15", "15/03/2024", 1)
		c, w := newTestContext(t, http.MethodPost, "/api/employees", body)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_BulkDelete(t *testing.T) {
	t.Run("mixed id list is filtered to positive integers", func(t *testing.T) {
		var gotIDs []uint
		svc := &fakeEmployeeService{
			BulkDeleteFn: func(ctx context.Context, ids []uint) (int64, error) {
				gotIDs = ids
				return int64(len(ids)), nil
			},
		}
		h := employee.NewHandler(svc)

		body := `{"ids": [3, "7", -1, 0, "abc", 2.5, 12]}`
		c, w := newTestContext(t, http.MethodDelete, "/api/employees", body)
		h.BulkDelete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []uint{3, 7, 12}, gotIDs)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				Deleted int64 `json:"deleted"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, int64(3), envelope.Data.Deleted)
	})

	t.Run("missing ids answers 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		c, w := newTestContext(t, http.MethodDelete, "/api/employees", `{}`)
		h.BulkDelete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("missing row answers 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/employees/77", "")
		c.Params = gin.Params{{Key: "id", Value: "77"}}
		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		c, w := newTestContext(t, http.MethodGet, "/api/employees/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
