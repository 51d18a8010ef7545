package salary

type CalculateSalaryQuery struct {
	Month int `form:"month" binding:"required"`
	Year  int `form:"year" binding:"required"`
}

type CreateSalaryRecordRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`
	Year       int    `json:"year" binding:"required,min=1"`
}

type CalculationResponse struct {
	EmployeeID    string `json:"employee_id"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	PeriodPolicy  string `json:"period_policy"`
	BaseSalary    string `json:"base_salary"`
	Bonuses       string `json:"bonuses"`
	Deductions    string `json:"deductions"`
	OvertimePay   string `json:"overtime_pay"`
	MealAllowance string `json:"meal_allowance"`
	TotalSalary   string `json:"total_salary"`
}

type SalaryRecordResponse struct {
	ID string `json:"id"`
	CalculationResponse
	CreatedBy *string `json:"created_by,omitempty"`
	CreatedAt string  `json:"created_at"`
}
