package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rifatalam240/Employee-Management-System-Server/internal/employee"
	employeeerrors "github.com/rifatalam240/Employee-Management-System-Server/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	registerFn        func(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error)
	getByEmailFn      func(ctx context.Context, email string) (employee.EmployeeResponse, error)
	findRoleByEmailFn func(ctx context.Context, email string) (string, error)
	listFn            func(ctx context.Context) ([]employee.EmployeeResponse, error)
	listEmployeesFn   func(ctx context.Context) ([]employee.EmployeeResponse, error)
	listVerifiedFn    func(ctx context.Context) ([]employee.EmployeeResponse, error)
	changeRoleFn      func(ctx context.Context, id, role string) (employee.EmployeeResponse, error)
	setVerificationFn func(ctx context.Context, id string, verified bool) (employee.EmployeeResponse, error)
	terminateFn       func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateSalaryFn    func(ctx context.Context, id string, newSalary int64) (employee.EmployeeResponse, error)
	deleteFn          func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeEmployeeService) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeEmployeeService) FindRoleByEmail(ctx context.Context, email string) (string, error) {
	return f.findRoleByEmailFn(ctx, email)
}

func (f *fakeEmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.listFn(ctx)
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.listEmployeesFn(ctx)
}

func (f *fakeEmployeeService) ListVerified(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.listVerifiedFn(ctx)
}

func (f *fakeEmployeeService) ChangeRole(ctx context.Context, id, role string) (employee.EmployeeResponse, error) {
	return f.changeRoleFn(ctx, id, role)
}

func (f *fakeEmployeeService) SetVerification(ctx context.Context, id string, verified bool) (employee.EmployeeResponse, error) {
	return f.setVerificationFn(ctx, id, verified)
}

func (f *fakeEmployeeService) Terminate(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.terminateFn(ctx, id)
}

func (f *fakeEmployeeService) UpdateSalary(ctx context.Context, id string, newSalary int64) (employee.EmployeeResponse, error) {
	return f.updateSalaryFn(ctx, id, newSalary)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestEmployeeHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeEmployeeService{
			registerFn: func(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "a@x.com", req.Email)
				return employee.EmployeeResponse{ID: uuid.New().String(), Name: req.Name, Email: req.Email, Role: employee.RoleEmployee}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Alice","email":"a@x.com","salary":1000}`
		c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := &fakeEmployeeService{
			registerFn: func(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Alice","email":"a@x.com"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})
}

func TestEmployeeHandler_GetRole(t *testing.T) {
	t.Run("known email returns role", func(t *testing.T) {
		svc := &fakeEmployeeService{
			findRoleByEmailFn: func(ctx context.Context, email string) (string, error) {
				return employee.RoleHR, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/hr@x.com/role", nil)
		c.Params = []gin.Param{{Key: "email", Value: "hr@x.com"}}

		h.GetRole(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var data employee.RoleResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotNil(t, data.Role)
		assert.Equal(t, employee.RoleHR, *data.Role)
	})

	t.Run("unknown email returns null role", func(t *testing.T) {
		svc := &fakeEmployeeService{
			findRoleByEmailFn: func(ctx context.Context, email string) (string, error) {
				return "", employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users/nobody@x.com/role", nil)
		c.Params = []gin.Param{{Key: "email", Value: "nobody@x.com"}}

		h.GetRole(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var data employee.RoleResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Nil(t, data.Role)
	})
}

func TestEmployeeHandler_List_EmailFilter(t *testing.T) {
	t.Run("match wraps single element", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByEmailFn: func(ctx context.Context, email string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{ID: uuid.New().String(), Email: email}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users?email=a@x.com", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var data []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data, 1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByEmailFn: func(ctx context.Context, email string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/users?email=nobody@x.com", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var data []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data, 0)
	})
}

func TestEmployeeHandler_UpdateSalary_PolicyViolation(t *testing.T) {
	svc := &fakeEmployeeService{
		updateSalaryFn: func(ctx context.Context, id string, newSalary int64) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrSalaryDecrease
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodPatch, "/update-salary/"+id, strings.NewReader(`{"salary":900}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: id}}

	h.UpdateSalary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "POLICY_VIOLATION", env.Error.Code)
}
