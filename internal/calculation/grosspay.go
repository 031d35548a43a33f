// Package calculation implements the pay figures pipeline: gross pay from
// a pay basis, itemized withholding from a pluggable tax model, net pay,
// and year-to-date folding across a series of pay periods.
package calculation

import (
	"github.com/buelldocs/docgen/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeGrossPay derives one period's gross pay from the pay basis.
//
// Hourly pays rate times hours with no overtime premium. A salary target
// is annualized first (monthly amounts times 12) and then divided evenly
// by the frequency's periods per year, so the sum over a full year of
// periods reproduces the target up to division remainder.
func ComputeGrossPay(basis domain.PayBasis, frequency domain.PayFrequency) decimal.Decimal {
	switch b := basis.(type) {
	case domain.Hourly:
		return b.Rate.Mul(b.Hours)
	case domain.SalaryTarget:
		annual := b.Amount
		if b.Period == domain.MonthlySalary {
			annual = annual.Mul(decimal.NewFromInt(12))
		}
		return annual.Div(decimal.NewFromInt(frequency.PeriodsPerYear()))
	default:
		return decimal.Zero
	}
}

// HourlyEquivalent back-solves the hourly basis that reproduces a salary
// target at a standard 40-hour week, which documents show as the rate
// column on salaried stubs.
func HourlyEquivalent(target domain.SalaryTarget, frequency domain.PayFrequency) domain.Hourly {
	gross := ComputeGrossPay(target, frequency)

	// hours per period at 40 hours/week: 52 weeks spread across the
	// frequency's periods.
	hours := decimal.NewFromInt(40).Mul(decimal.NewFromInt(52)).
		Div(decimal.NewFromInt(frequency.PeriodsPerYear()))

	return domain.Hourly{
		Rate:  gross.Div(hours),
		Hours: hours,
	}
}
