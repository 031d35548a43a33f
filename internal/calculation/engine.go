package calculation

import (
	"time"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine computes per-period pay figures and threads year-to-date totals
// across a series. It holds no mutable state of its own; the accumulator is
// passed in and out as a value, so concurrent use is safe as long as each
// employee's series is sequenced by one caller.
type Engine struct {
	Taxes  TaxModel
	Logger Logger
}

// NewEngine creates an engine around the given tax model.
func NewEngine(model TaxModel) *Engine {
	return &Engine{Taxes: model, Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ComputeNetPay subtracts all taxes and deductions from gross pay.
//
// The result may be negative when deductions exceed gross; it is surfaced
// as-is. The pretax flag on deductions is deliberately not applied to the
// tax base: taxes were already computed on full gross.
func ComputeNetPay(gross decimal.Decimal, taxes domain.TaxResult, deductions []domain.Deduction) decimal.Decimal {
	total := taxes.Total().Add(domain.TotalDeductionAmount(deductions))
	return gross.Sub(total)
}

// FoldYTD folds one period's figures into the running year-to-date totals
// and returns the new accumulator. No clamping: a negative period net pay
// decreases YTD net.
func FoldYTD(previous domain.YTDAccumulator, period domain.PayPeriodResult) domain.YTDAccumulator {
	return domain.YTDAccumulator{
		GrossPay: previous.GrossPay.Add(period.GrossPay),
		NetPay:   previous.NetPay.Add(period.NetPay),
		Taxes:    previous.Taxes.Add(period.Taxes),
	}
}

// ComputePeriod produces the complete figures for a single pay period.
// ytdGross is the gross earned before this period; the flat model ignores
// it, the bracket model uses it for proration and caps.
func (e *Engine) ComputePeriod(basis domain.PayBasis, frequency domain.PayFrequency, deductions []domain.Deduction, ytdGross decimal.Decimal, jurisdiction string, payDate time.Time) domain.PayPeriodResult {
	period := ComputePayPeriodDates(payDate, frequency)
	gross := ComputeGrossPay(basis, frequency)
	taxes := e.Taxes.Calculate(gross, ytdGross, frequency, jurisdiction)
	totalDeductions := taxes.Total().Add(domain.TotalDeductionAmount(deductions))
	net := gross.Sub(totalDeductions)

	e.Logger.Debugf("period %s: gross=%s net=%s (model=%s)",
		payDate.Format("2006-01-02"), gross.StringFixed(2), net.StringFixed(2), e.Taxes.Name())

	return domain.PayPeriodResult{
		PeriodStart:     period.Start,
		PeriodEnd:       period.End,
		PayDate:         payDate,
		GrossPay:        gross,
		Taxes:           taxes,
		TotalDeductions: totalDeductions,
		NetPay:          net,
	}
}

// SeriesEntry pairs one period's figures with the year-to-date totals
// after that period was folded in, which is what a rendered stub shows.
type SeriesEntry struct {
	Period domain.PayPeriodResult
	YTD    domain.YTDAccumulator
}

// GenerateSeries computes every pay date in order, threading the YTD
// accumulator so each period's wage-base caps and bracket proration see the
// gross earned in prior periods. The caller guarantees payDates ascend,
// oldest first; this sequential dependency is the one place ordering
// matters.
func (e *Engine) GenerateSeries(basis domain.PayBasis, frequency domain.PayFrequency, deductions []domain.Deduction, startingYTD domain.YTDAccumulator, jurisdiction string, payDates []time.Time) ([]SeriesEntry, domain.YTDAccumulator) {
	entries := make([]SeriesEntry, 0, len(payDates))
	ytd := startingYTD

	for _, payDate := range payDates {
		period := e.ComputePeriod(basis, frequency, deductions, ytd.GrossPay, jurisdiction, payDate)
		ytd = FoldYTD(ytd, period)
		entries = append(entries, SeriesEntry{Period: period, YTD: ytd})
	}

	return entries, ytd
}
