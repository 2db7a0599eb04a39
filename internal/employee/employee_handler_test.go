package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sameers07/Employee-API/internal/employee"
	employeeerrors "github.com/sameers07/Employee-API/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn          func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	ListFn            func(ctx context.Context, department string) ([]employee.EmployeeResponse, error)
	AvgSalaryFn       func(ctx context.Context) ([]employee.DepartmentAvgSalary, error)
	SearchBySkillFn   func(ctx context.Context, skill string) ([]employee.EmployeeResponse, error)
	GetByEmployeeIDFn func(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
	UpdateFn          func(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn          func(ctx context.Context, employeeID string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) List(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	return f.ListFn(ctx, department)
}
func (f *fakeEmployeeService) AvgSalaryByDepartment(ctx context.Context) ([]employee.DepartmentAvgSalary, error) {
	return f.AvgSalaryFn(ctx)
}
func (f *fakeEmployeeService) SearchBySkill(ctx context.Context, skill string) ([]employee.EmployeeResponse, error) {
	return f.SearchBySkillFn(ctx, skill)
}
func (f *fakeEmployeeService) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	return f.GetByEmployeeIDFn(ctx, employeeID)
}
func (f *fakeEmployeeService) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, employeeID, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, employeeID string) error {
	return f.DeleteFn(ctx, employeeID)
}

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Test Create ---
func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E123", req.EmployeeID)
				return employee.EmployeeResponse{
					ID:          "656e1b7c2f8b9a0012345678",
					EmployeeID:  req.EmployeeID,
					Name:        req.Name,
					Department:  req.Department,
					Salary:      *req.Salary,
					JoiningDate: req.JoiningDate,
					Skills:      req.Skills,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"E123","name":"John Doe","department":"Engineering","salary":75000,"joining_date":"2023-01-15","skills":["Go","MongoDB"]}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "E123", resp.EmployeeID)
		assert.Equal(t, "2023-01-15", resp.JoiningDate)
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad joining_date shape", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"E123","name":"John","department":"Engineering","salary":1,"joining_date":"Jan 15 2023"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate employee_id", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"E123","name":"John","department":"Engineering","salary":1,"joining_date":"2023-01-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Employee ID already exists")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("failed")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"E123","name":"John","department":"Engineering","salary":1,"joining_date":"2023-01-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// --- Test List ---
func TestEmployeeHandler_List(t *testing.T) {
	t.Run("success with department filter", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "Engineering", department)
				return []employee.EmployeeResponse{{EmployeeID: "E1", Department: "Engineering"}}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees?department=Engineering", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("no filter lists everything", func(t *testing.T) {
		svc := &fakeEmployeeService{
			ListFn: func(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
				assert.Empty(t, department)
				return []employee.EmployeeResponse{}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}

// --- Test AvgSalary ---
func TestEmployeeHandler_AvgSalary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			AvgSalaryFn: func(ctx context.Context) ([]employee.DepartmentAvgSalary, error) {
				return []employee.DepartmentAvgSalary{
					{Department: "Engineering", AvgSalary: 150},
					{Department: "HR", AvgSalary: 50},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/avg-salary", nil)

		h.AvgSalary(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []employee.DepartmentAvgSalary
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			AvgSalaryFn: func(ctx context.Context) ([]employee.DepartmentAvgSalary, error) {
				return nil, errors.New("failed")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/avg-salary", nil)

		h.AvgSalary(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// --- Test SearchBySkill ---
func TestEmployeeHandler_SearchBySkill(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			SearchBySkillFn: func(ctx context.Context, skill string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "Go", skill)
				return []employee.EmployeeResponse{{EmployeeID: "E1", Skills: []string{"Go"}}}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/search?skill=Go", nil)

		h.SearchBySkill(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing skill parameter", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/search", nil)

		h.SearchBySkill(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// --- Test GetByEmployeeID ---
func TestEmployeeHandler_GetByEmployeeID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByEmployeeIDFn: func(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E123", employeeID)
				return employee.EmployeeResponse{EmployeeID: employeeID, Name: "John Doe"}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/E123", nil)
		c.Params = []gin.Param{{Key: "employee_id", Value: "E123"}}

		h.GetByEmployeeID(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByEmployeeIDFn: func(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/employees/missing", nil)
		c.Params = []gin.Param{{Key: "employee_id", Value: "missing"}}

		h.GetByEmployeeID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}

// --- Test Update ---
func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "E123", employeeID)
				assert.NotNil(t, req.Salary)
				assert.Nil(t, req.Name)
				return employee.EmployeeResponse{EmployeeID: employeeID, Salary: *req.Salary}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"salary":90000}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/E123", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "employee_id", Value: "E123"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit null is treated as absent", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Nil(t, req.Skills)
				assert.NotNil(t, req.Name)
				return employee.EmployeeResponse{EmployeeID: employeeID, Name: *req.Name}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"New Name","skills":null}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/E123", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "employee_id", Value: "E123"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"salary":90000}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/missing", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "employee_id", Value: "missing"}}

		h.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// --- Test Delete ---
func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, employeeID string) error {
				assert.Equal(t, "E123", employeeID)
				return nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/E123", nil)
		c.Params = []gin.Param{{Key: "employee_id", Value: "E123"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Employee deleted successfully")
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, employeeID string) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/employees/missing", nil)
		c.Params = []gin.Param{{Key: "employee_id", Value: "missing"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
