package department_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorvensalaveria/manila-payroll-backend/internal/department"
	departmenterrors "github.com/gorvensalaveria/manila-payroll-backend/internal/department/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	GetAllFn  func(ctx context.Context) ([]department.DepartmentResponse, error)
	GetByIDFn func(ctx context.Context, id uint) (department.DepartmentResponse, error)
	CreateFn  func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	UpdateFn  func(ctx context.Context, id uint, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn  func(ctx context.Context, id uint) error
}

func (f *fakeDepartmentService) GetAll(ctx context.Context) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id uint) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id uint, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id uint) error {
	return f.DeleteFn(ctx, id)
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

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: 1, Name: req.Name}, nil
			},
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, true, envelope["success"])
	})

	t.Run("missing name answers 400 with field details", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})

		c, w := newTestContext(t, http.MethodPost, "/api/departments", `{}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, false, envelope["success"])
		assert.NotEmpty(t, envelope["error"])
	})

	t.Run("duplicate name answers 400", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNameTaken
			},
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unclassified error answers 500", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("boom")
			},
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/departments", `{"name":"Engineering"}`)
		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	t.Run("non-numeric id answers 400 before the service runs", func(t *testing.T) {
		called := false
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, id uint) (department.DepartmentResponse, error) {
				called = true
				return department.DepartmentResponse{}, nil
			},
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/departments/abc", "")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		h.GetByID(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("missing row answers 404", func(t *testing.T) {
		svc := &fakeDepartmentService{
			GetByIDFn: func(ctx context.Context, id uint) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
			},
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/departments/9", "")
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDepartmentHandler_Delete(t *testing.T) {
	t.Run("referential block answers 400", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id uint) error {
				return departmenterrors.ErrDepartmentInUse
			},
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodDelete, "/api/departments/1", "")
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		h.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			DeleteFn: func(ctx context.Context, id uint) error { return nil },
		}
		h := department.NewHandler(svc)

		c, w := newTestContext(t, http.MethodDelete, "/api/departments/1", "")
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
