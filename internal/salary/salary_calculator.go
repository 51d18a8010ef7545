package salary

import (
	"time"

	"go-hrms/internal/config"
	"go-hrms/internal/request"

	"github.com/shopspring/decimal"
)

// Breakdown adalah hasil agregasi gaji satu karyawan untuk satu periode.
// Semua nilai memakai decimal, tidak ada float di jalur hitung.
type Breakdown struct {
	BaseSalary    decimal.Decimal
	Bonuses       decimal.Decimal
	Deductions    decimal.Decimal
	OvertimePay   decimal.Decimal
	MealAllowance decimal.Decimal
	TotalSalary   decimal.Decimal
}

// Compute menjumlahkan efek request yang sudah approved ke gaji pokok.
// Fungsi murni: input yang sama selalu menghasilkan output yang sama.
//
//	bonus          -> Bonuses
//	penalty, loan  -> Deductions
//	overtime       -> OvertimePay
//	meal_allowance -> MealAllowance
//
// Leave, mission, request tanpa nominal, dan request yang belum approved
// tidak berkontribusi. Total tidak di-clamp, bisa negatif.
func Compute(base decimal.Decimal, approved []request.Request) Breakdown {
	b := Breakdown{
		BaseSalary:    base,
		Bonuses:       decimal.Zero,
		Deductions:    decimal.Zero,
		OvertimePay:   decimal.Zero,
		MealAllowance: decimal.Zero,
	}

	for _, r := range approved {
		if r.Status != request.StatusApproved || r.Amount == nil {
			continue
		}
		amount := *r.Amount
		switch r.RequestType {
		case request.TypeBonus:
			b.Bonuses = b.Bonuses.Add(amount)
		case request.TypePenalty, request.TypeLoan:
			b.Deductions = b.Deductions.Add(amount)
		case request.TypeOvertime:
			b.OvertimePay = b.OvertimePay.Add(amount)
		case request.TypeMealAllowance:
			b.MealAllowance = b.MealAllowance.Add(amount)
		}
	}

	b.TotalSalary = base.
		Add(b.Bonuses).
		Add(b.OvertimePay).
		Add(b.MealAllowance).
		Sub(b.Deductions)
	return b
}

// PeriodWindow menentukan request approved mana yang dihitung untuk
// month/year. approved_within: approved_at di [awal bulan, awal bulan
// berikutnya) UTC. all_time: semua request approved tanpa batas tanggal.
func PeriodWindow(policy string, month, year int) request.ApprovedWindow {
	if policy == config.SalaryPeriodAllTime {
		return request.ApprovedWindow{}
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	return request.ApprovedWindow{From: &from, To: &to}
}
