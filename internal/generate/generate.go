// Package generate ties the request types to the calculation and statement
// engines. The CLI and the HTTP API both call through here so a request
// produces identical figures no matter which surface submitted it.
package generate

import (
	"math/rand"
	"time"

	"github.com/buelldocs/docgen/internal/calculation"
	"github.com/buelldocs/docgen/internal/domain"
	"github.com/buelldocs/docgen/internal/output"
	"github.com/buelldocs/docgen/internal/statement"
)

// Paystubs runs the calculation engine over every pay date in the request
// and returns the renderable document.
func Paystubs(req *domain.PaystubRequest) *output.PaystubDocument {
	engine := calculation.NewEngine(calculation.TaxModelByName(req.TaxModel))

	starting := domain.ZeroYTD()
	starting.GrossPay = req.InitialYTDGross

	entries, _ := engine.GenerateSeries(req.Basis.Basis(), req.Frequency, req.Deductions,
		starting, req.Jurisdiction, req.PayDates)

	return &output.PaystubDocument{Request: *req, Entries: entries}
}

// Statement synthesizes the requested transactions, folds in payroll
// deposits from the paystub document when asked, and computes running
// balances. stubs may be nil when the request does not link paystubs.
func Statement(req *domain.StatementRequest, stubs *output.PaystubDocument) (*output.StatementDocument, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	transactions, err := statement.SynthesizeRandomTransactions(req.PeriodStart, req.PeriodEnd, req.RandomTransactions, rng)
	if err != nil {
		return nil, err
	}

	if req.IncludePaystubDeposits && stubs != nil {
		periods := make([]domain.PayPeriodResult, 0, len(stubs.Entries))
		for _, entry := range stubs.Entries {
			periods = append(periods, entry.Period)
		}
		deposits := statement.DeriveDepositsFromPayPeriods(periods, req.AccountHolder.Name, req.PeriodStart, req.PeriodEnd)
		transactions = append(deposits, transactions...)
	}

	summary := statement.ComputeBalances(req.OpeningBalance, transactions)
	return &output.StatementDocument{Request: *req, Summary: summary}, nil
}
