package report

type MonthlyReportQuery struct {
	Month int `form:"month" binding:"required"`
	Year  int `form:"year" binding:"required"`
}

type AnnualReportQuery struct {
	Year int `form:"year" binding:"required"`
}

type WeeklyReport struct {
	Period        string           `json:"period"`
	Since         string           `json:"since"`
	TotalRequests int64            `json:"total_requests"`
	Approved      int64            `json:"approved"`
	Pending       int64            `json:"pending"`
	Rejected      int64            `json:"rejected"`
	ByType        map[string]int64 `json:"by_type"`
}

type MonthlyReport struct {
	Period          string `json:"period"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	TotalEmployees  int    `json:"total_employees"`
	TotalSalaries   string `json:"total_salaries"`
	TotalBonuses    string `json:"total_bonuses"`
	TotalDeductions string `json:"total_deductions"`
}

type MonthTotal struct {
	Month         int    `json:"month"`
	TotalSalaries string `json:"total_salaries"`
}

type AnnualReport struct {
	Period           string       `json:"period"`
	Year             int          `json:"year"`
	TotalSalaries    string       `json:"total_salaries"`
	MonthlyBreakdown []MonthTotal `json:"monthly_breakdown"`
}
