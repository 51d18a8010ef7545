package report

import (
	"time"

	"go-hrms/internal/request"
	"go-hrms/internal/salary"

	"github.com/shopspring/decimal"
)

// WeeklyWindow adalah rentang laporan mingguan.
const WeeklyWindow = 7 * 24 * time.Hour

func aggregateWeekly(since time.Time, rows []request.StatusTypeCount) WeeklyReport {
	out := WeeklyReport{
		Period: "weekly",
		Since:  since.UTC().Format(time.RFC3339),
		ByType: make(map[string]int64, len(request.AllTypes())),
	}
	for _, t := range request.AllTypes() {
		out.ByType[t] = 0
	}

	for _, row := range rows {
		out.TotalRequests += row.Total
		switch row.Status {
		case request.StatusApproved:
			out.Approved += row.Total
		case request.StatusPending:
			out.Pending += row.Total
		case request.StatusRejected:
			out.Rejected += row.Total
		}
		out.ByType[row.RequestType] += row.Total
	}
	return out
}

func aggregateMonthly(month, year int, records []salary.SalaryRecord) MonthlyReport {
	total, bonuses, deductions := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalSalary)
		bonuses = bonuses.Add(r.Bonuses)
		deductions = deductions.Add(r.Deductions)
	}

	return MonthlyReport{
		Period:          "monthly",
		Month:           month,
		Year:            year,
		TotalEmployees:  len(records),
		TotalSalaries:   total.StringFixed(2),
		TotalBonuses:    bonuses.StringFixed(2),
		TotalDeductions: deductions.StringFixed(2),
	}
}

func aggregateAnnual(year int, records []salary.SalaryRecord) AnnualReport {
	var perMonth [12]decimal.Decimal
	total := decimal.Zero
	for _, r := range records {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		perMonth[r.Month-1] = perMonth[r.Month-1].Add(r.TotalSalary)
		total = total.Add(r.TotalSalary)
	}

	breakdown := make([]MonthTotal, 12)
	for i := range perMonth {
		breakdown[i] = MonthTotal{Month: i + 1, TotalSalaries: perMonth[i].StringFixed(2)}
	}

	return AnnualReport{
		Period:           "annual",
		Year:             year,
		TotalSalaries:    total.StringFixed(2),
		MonthlyBreakdown: breakdown,
	}
}
