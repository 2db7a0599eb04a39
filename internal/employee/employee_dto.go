package employee

type CreateEmployeeRequest struct {
	EmployeeID  string   `json:"employee_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Department  string   `json:"department" binding:"required"`
	Salary      *float64 `json:"salary" binding:"required"`
	JoiningDate string   `json:"joining_date" binding:"required,datetime=2006-01-02"`
	Skills      []string `json:"skills"`
}

// UpdateEmployeeRequest fields are pointers: an absent key and an explicit
// JSON null both decode to nil and leave the stored value untouched.
// id and employee_id are immutable and not accepted here.
type UpdateEmployeeRequest struct {
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date" binding:"omitempty,datetime=2006-01-02"`
	Skills      *[]string `json:"skills"`
}

type EmployeeResponse struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"`
	Skills      []string `json:"skills"`
}

type DepartmentAvgSalary struct {
	Department string  `json:"department" bson:"department"`
	AvgSalary  float64 `json:"avg_salary" bson:"avg_salary"`
}
