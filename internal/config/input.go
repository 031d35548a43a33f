package config

import (
	"fmt"
	"os"
	"time"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RequestFile is the top-level shape of a YAML request: a paystub job, a
// statement job, or both (a statement can fold in the paystub deposits).
type RequestFile struct {
	Paystubs  *domain.PaystubRequest   `yaml:"paystubs,omitempty" json:"paystubs,omitempty"`
	Statement *domain.StatementRequest `yaml:"statement,omitempty" json:"statement,omitempty"`
}

// InputParser handles parsing of request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*RequestFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var request RequestFile
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &request, nil
}

// ValidateRequest validates the loaded request file.
func (ip *InputParser) ValidateRequest(request *RequestFile) error {
	if request.Paystubs == nil && request.Statement == nil {
		return fmt.Errorf("request must contain a paystubs or statement section")
	}

	if request.Paystubs != nil {
		if err := ip.validatePaystubs(request.Paystubs); err != nil {
			return fmt.Errorf("paystubs validation failed: %w", err)
		}
	}

	if request.Statement != nil {
		if err := ip.validateStatement(request.Statement, request.Paystubs != nil); err != nil {
			return fmt.Errorf("statement validation failed: %w", err)
		}
	}

	return nil
}

// validatePaystubs validates a paystub generation job.
func (ip *InputParser) validatePaystubs(req *domain.PaystubRequest) error {
	if req.Employee.Name == "" {
		return fmt.Errorf("employee name is required")
	}
	if req.Employer.Name == "" {
		return fmt.Errorf("employer name is required")
	}
	if !req.Frequency.Valid() {
		return fmt.Errorf("pay frequency must be weekly, biweekly, semimonthly, or monthly")
	}
	if req.TaxModel != "" && req.TaxModel != domain.FlatRateModel && req.TaxModel != domain.BracketModel {
		return fmt.Errorf("tax model must be 'flat' or 'bracket'")
	}

	switch req.Basis.Method {
	case "hourly":
		if req.Basis.Rate.LessThan(decimal.Zero) {
			return fmt.Errorf("pay rate cannot be negative")
		}
		if req.Basis.Hours.LessThan(decimal.Zero) {
			return fmt.Errorf("hours worked cannot be negative")
		}
	case "salary":
		if req.Basis.TargetSalary.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("target salary must be positive")
		}
		if req.Basis.SalaryPeriod != "" && req.Basis.SalaryPeriod != domain.AnnualSalary && req.Basis.SalaryPeriod != domain.MonthlySalary {
			return fmt.Errorf("salary period must be 'annual' or 'monthly'")
		}
	default:
		return fmt.Errorf("basis method must be 'hourly' or 'salary'")
	}

	for i, deduction := range req.Deductions {
		if deduction.Name == "" {
			return fmt.Errorf("deduction %d: name is required", i)
		}
		if deduction.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("deduction %q: amount cannot be negative", deduction.Name)
		}
	}

	if req.InitialYTDGross.LessThan(decimal.Zero) {
		return fmt.Errorf("initial YTD gross cannot be negative")
	}

	if len(req.PayDates) == 0 {
		return fmt.Errorf("at least one pay date is required")
	}
	for i := 1; i < len(req.PayDates); i++ {
		if req.PayDates[i].Before(req.PayDates[i-1]) {
			return fmt.Errorf("pay dates must be in ascending order, oldest first")
		}
	}

	return nil
}

// validateStatement validates a bank statement generation job.
func (ip *InputParser) validateStatement(req *domain.StatementRequest, hasPaystubs bool) error {
	if req.AccountHolder.Name == "" {
		return fmt.Errorf("account holder name is required")
	}
	if req.BankName == "" {
		return fmt.Errorf("bank name is required")
	}
	if req.AccountNumber == "" {
		return fmt.Errorf("account number is required")
	}
	if req.RoutingNumber == "" {
		return fmt.Errorf("routing number is required")
	}
	if req.PeriodStart.IsZero() || req.PeriodEnd.IsZero() {
		return fmt.Errorf("statement period start and end dates are required")
	}
	if !req.PeriodStart.Before(req.PeriodEnd) {
		return fmt.Errorf("statement period start must be before end")
	}
	if req.RandomTransactions < 0 {
		return fmt.Errorf("random transaction count cannot be negative")
	}
	if req.RandomTransactions > 50 {
		return fmt.Errorf("random transaction count cannot exceed 50")
	}
	if req.IncludePaystubDeposits && !hasPaystubs {
		return fmt.Errorf("include_paystub_deposits requires a paystubs section in the same request")
	}

	return nil
}

// CreateExampleRequest creates an example request file covering both jobs.
func (ip *InputParser) CreateExampleRequest() *RequestFile {
	payDate1, _ := time.Parse("2006-01-02", "2024-01-12")
	payDate2, _ := time.Parse("2006-01-02", "2024-01-26")
	payDate3, _ := time.Parse("2006-01-02", "2024-02-09")
	periodStart, _ := time.Parse("2006-01-02", "2023-12-28")
	periodEnd, _ := time.Parse("2006-01-02", "2024-02-14")

	return &RequestFile{
		Paystubs: &domain.PaystubRequest{
			Employee: domain.Party{
				Name:    "John Doe",
				Address: "123 Main Street",
				City:    "Chicago",
				State:   "IL",
				Zip:     "60601",
			},
			Employer: domain.Party{
				Name:    "Acme Services LLC",
				Address: "500 Commerce Drive",
				City:    "Chicago",
				State:   "IL",
				Zip:     "60602",
			},
			Basis: domain.PayBasisSpec{
				Method: "hourly",
				Rate:   decimal.NewFromInt(25),
				Hours:  decimal.NewFromInt(80),
			},
			Frequency: domain.BiWeekly,
			TaxModel:  domain.FlatRateModel,
			Deductions: []domain.Deduction{
				{Name: "401(k)", Amount: decimal.NewFromInt(100), Pretax: true},
				{Name: "Health Insurance", Amount: decimal.NewFromInt(75), Pretax: true},
			},
			Jurisdiction:     "CA",
			PayDates:         []time.Time{payDate1, payDate2, payDate3},
			FirstCheckNumber: 1001,
		},
		Statement: &domain.StatementRequest{
			AccountHolder: domain.Party{
				Name:    "John Doe",
				Address: "123 Main Street",
				City:    "Chicago",
				State:   "IL",
				Zip:     "60601",
			},
			BankName:               "Chase",
			AccountNumber:          "1234567890",
			RoutingNumber:          "123456789",
			PeriodStart:            periodStart,
			PeriodEnd:              periodEnd,
			OpeningBalance:         decimal.NewFromInt(1000),
			IncludePaystubDeposits: true,
			RandomTransactions:     10,
			Seed:                   42,
		},
	}
}
