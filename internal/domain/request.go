package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party identifies a person or company appearing on a generated document.
type Party struct {
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	City    string `yaml:"city,omitempty" json:"city,omitempty"`
	State   string `yaml:"state,omitempty" json:"state,omitempty"`
	Zip     string `yaml:"zip,omitempty" json:"zip,omitempty"`
}

// TaxModelName selects which withholding strategy a request wants. The
// caller chooses explicitly; the engines never infer it.
type TaxModelName string

const (
	FlatRateModel TaxModelName = "flat"
	BracketModel  TaxModelName = "bracket"
)

// PayBasisSpec is the serializable form of a PayBasis. Method is "hourly"
// or "salary"; the matching fields apply.
type PayBasisSpec struct {
	Method       string          `yaml:"method" json:"method"`
	Rate         decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
	Hours        decimal.Decimal `yaml:"hours,omitempty" json:"hours,omitempty"`
	TargetSalary decimal.Decimal `yaml:"target_salary,omitempty" json:"target_salary,omitempty"`
	SalaryPeriod SalaryPeriod    `yaml:"salary_period,omitempty" json:"salary_period,omitempty"`
}

// Basis converts the serialized form into the tagged union consumed by
// the engine.
func (s PayBasisSpec) Basis() PayBasis {
	if s.Method == "salary" {
		period := s.SalaryPeriod
		if period == "" {
			period = AnnualSalary
		}
		return SalaryTarget{Amount: s.TargetSalary, Period: period}
	}
	return Hourly{Rate: s.Rate, Hours: s.Hours}
}

// PaystubRequest is one complete paystub generation job: who, how they are
// paid, and which pay dates to produce stubs for.
type PaystubRequest struct {
	Employee Party `yaml:"employee" json:"employee"`
	Employer Party `yaml:"employer" json:"employer"`

	Basis      PayBasisSpec `yaml:"basis" json:"basis"`
	Frequency  PayFrequency `yaml:"frequency" json:"frequency"`
	TaxModel   TaxModelName `yaml:"tax_model" json:"tax_model"`
	Deductions []Deduction  `yaml:"deductions,omitempty" json:"deductions,omitempty"`

	// Jurisdiction is the state used for flat state withholding under the
	// bracket model. Unrecognized values fall back to a default rate.
	Jurisdiction string `yaml:"jurisdiction,omitempty" json:"jurisdiction,omitempty"`

	// InitialYTDGross supports mid-year starts: prior gross earnings that
	// wage-base caps and bracket proration should account for.
	InitialYTDGross decimal.Decimal `yaml:"initial_ytd_gross,omitempty" json:"initial_ytd_gross,omitempty"`

	// PayDates must be in ascending order, oldest first.
	PayDates []time.Time `yaml:"pay_dates" json:"pay_dates"`

	// FirstCheckNumber seeds sequential check numbers on rendered stubs.
	FirstCheckNumber int `yaml:"first_check_number,omitempty" json:"first_check_number,omitempty"`
}

// StatementRequest is one bank statement generation job.
type StatementRequest struct {
	AccountHolder Party  `yaml:"account_holder" json:"account_holder"`
	BankName      string `yaml:"bank_name" json:"bank_name"`
	AccountNumber string `yaml:"account_number" json:"account_number"`
	RoutingNumber string `yaml:"routing_number" json:"routing_number"`

	PeriodStart    time.Time       `yaml:"period_start" json:"period_start"`
	PeriodEnd      time.Time       `yaml:"period_end" json:"period_end"`
	OpeningBalance decimal.Decimal `yaml:"opening_balance" json:"opening_balance"`

	// IncludePaystubDeposits merges net pay from a linked paystub series as
	// payroll deposits inside the statement window.
	IncludePaystubDeposits bool `yaml:"include_paystub_deposits,omitempty" json:"include_paystub_deposits,omitempty"`
	RandomTransactions     int  `yaml:"random_transactions" json:"random_transactions"`

	// Seed makes synthesis reproducible. Zero means draw a seed from the
	// caller's clock.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}
