package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PayFrequency is how often an employee is paid. It carries the canonical
// periods-per-year used for salary conversion and federal tax proration.
type PayFrequency string

const (
	Weekly      PayFrequency = "weekly"
	BiWeekly    PayFrequency = "biweekly"
	SemiMonthly PayFrequency = "semimonthly"
	Monthly     PayFrequency = "monthly"
)

// PeriodsPerYear returns the number of pay periods in a year.
func (f PayFrequency) PeriodsPerYear() int64 {
	switch f {
	case Weekly:
		return 52
	case BiWeekly:
		return 26
	case SemiMonthly:
		return 24
	case Monthly:
		return 12
	default:
		return 26 // default biweekly, matching the most common payroll cycle
	}
}

// Valid reports whether f is one of the known frequencies.
func (f PayFrequency) Valid() bool {
	switch f {
	case Weekly, BiWeekly, SemiMonthly, Monthly:
		return true
	}
	return false
}

// SalaryPeriod qualifies a SalaryTarget amount.
type SalaryPeriod string

const (
	AnnualSalary  SalaryPeriod = "annual"
	MonthlySalary SalaryPeriod = "monthly"
)

// PayBasis is the input to a single gross pay calculation: either an hourly
// rate with hours worked, or a target salary to be spread across pay periods.
type PayBasis interface {
	isPayBasis()
}

// Hourly pays rate times hours worked in the period.
type Hourly struct {
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
	Hours decimal.Decimal `yaml:"hours" json:"hours"`
}

func (Hourly) isPayBasis() {}

// SalaryTarget pays a fixed salary spread evenly across the year's periods.
type SalaryTarget struct {
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Period SalaryPeriod    `yaml:"period" json:"period"`
}

func (SalaryTarget) isPayBasis() {}

// Deduction is a caller-supplied per-period deduction. The pretax flag is
// recorded and preserved in output but does not change the tax base; taxes
// are computed on full gross pay (see internal/calculation).
type Deduction struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Pretax bool            `yaml:"pretax" json:"pretax"`
}

// TotalDeductionAmount sums the amounts of a deduction list.
func TotalDeductionAmount(deductions []Deduction) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deductions {
		total = total.Add(d.Amount)
	}
	return total
}

// TaxResult holds the itemized withholding for one pay period.
// All components are non-negative.
type TaxResult struct {
	Federal        decimal.Decimal `yaml:"federal" json:"federal"`
	State          decimal.Decimal `yaml:"state" json:"state"`
	SocialSecurity decimal.Decimal `yaml:"social_security" json:"social_security"`
	Medicare       decimal.Decimal `yaml:"medicare" json:"medicare"`
}

// Total returns the sum of all tax components.
func (t TaxResult) Total() decimal.Decimal {
	return t.Federal.Add(t.State).Add(t.SocialSecurity).Add(t.Medicare)
}

// Add returns a component-wise sum of two tax results.
func (t TaxResult) Add(other TaxResult) TaxResult {
	return TaxResult{
		Federal:        t.Federal.Add(other.Federal),
		State:          t.State.Add(other.State),
		SocialSecurity: t.SocialSecurity.Add(other.SocialSecurity),
		Medicare:       t.Medicare.Add(other.Medicare),
	}
}

// PayPeriodResult is the complete set of figures for one pay period.
// NetPay may be negative when deductions exceed gross; no clamping is done.
type PayPeriodResult struct {
	PeriodStart     time.Time       `yaml:"period_start" json:"period_start"`
	PeriodEnd       time.Time       `yaml:"period_end" json:"period_end"`
	PayDate         time.Time       `yaml:"pay_date" json:"pay_date"`
	GrossPay        decimal.Decimal `yaml:"gross_pay" json:"gross_pay"`
	Taxes           TaxResult       `yaml:"taxes" json:"taxes"`
	TotalDeductions decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`
	NetPay          decimal.Decimal `yaml:"net_pay" json:"net_pay"`
}

// YTDAccumulator carries year-to-date totals across a sequence of pay
// periods. It is a value, not shared state: each fold takes the previous
// accumulator and returns a new one; the caller owns the sequencing.
type YTDAccumulator struct {
	GrossPay decimal.Decimal `yaml:"gross_pay" json:"gross_pay"`
	NetPay   decimal.Decimal `yaml:"net_pay" json:"net_pay"`
	Taxes    TaxResult       `yaml:"taxes" json:"taxes"`
}

// ZeroYTD returns an accumulator at the start of a tax year.
func ZeroYTD() YTDAccumulator {
	return YTDAccumulator{}
}

// String implements fmt.Stringer for log output.
func (y YTDAccumulator) String() string {
	return fmt.Sprintf("ytd{gross=%s net=%s}", y.GrossPay.StringFixed(2), y.NetPay.StringFixed(2))
}
