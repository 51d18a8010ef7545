package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code" binding:"omitempty,max=30"`
	UserID       string           `json:"user_id" binding:"omitempty,uuid"`
	FullName     string           `json:"full_name" binding:"required,max=150"`
	Email        string           `json:"email" binding:"required,email"`
	Phone        string           `json:"phone" binding:"omitempty,max=30"`
	DepartmentID string           `json:"department_id" binding:"omitempty,uuid"`
	Position     string           `json:"position" binding:"omitempty,max=100"`
	HireDate     string           `json:"hire_date" binding:"required"`
	BaseSalary   *decimal.Decimal `json:"base_salary"`
}

// UpdateEmployeeRequest hanya memuat field yang boleh diubah.
// Field nil tidak disentuh.
type UpdateEmployeeRequest struct {
	FullName     *string          `json:"full_name" binding:"omitempty,max=150"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	Phone        *string          `json:"phone" binding:"omitempty,max=30"`
	DepartmentID *string          `json:"department_id" binding:"omitempty,uuid"`
	Position     *string          `json:"position" binding:"omitempty,max=100"`
	HireDate     *string          `json:"hire_date"`
	BaseSalary   *decimal.Decimal `json:"base_salary"`
	Documents    *[]string        `json:"documents"`
}

type ListEmployeesFilter struct {
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Query        string `form:"q"`
	Page         int    `form:"-"`
	PageSize     int    `form:"-"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                      `json:"id"`
	EmployeeCode string                      `json:"employee_code"`
	UserID       string                      `json:"user_id,omitempty"`
	FullName     string                      `json:"full_name"`
	Email        string                      `json:"email"`
	Phone        string                      `json:"phone,omitempty"`
	DepartmentID string                      `json:"department_id,omitempty"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
	Position     string                      `json:"position,omitempty"`
	HireDate     string                      `json:"hire_date,omitempty"`
	BaseSalary   string                      `json:"base_salary,omitempty"`
	Documents    []string                    `json:"documents,omitempty"`
}
