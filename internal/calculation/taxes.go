package calculation

import (
	"github.com/buelldocs/docgen/internal/domain"
	"github.com/shopspring/decimal"
)

// WITHHOLDING MODEL ASSUMPTIONS:
//
// 1. Federal brackets: 2024 single-filer table, applied to YTD gross plus
//    the current period's gross, then prorated by periods-per-year. This is
//    a progressive-bracket approximation, not exact annualization.
//
// 2. State tax: small flat-rate table (CA 5%, NY 6%, TX 0%). Unrecognized
//    jurisdictions use a 4% default.
//
// 3. Social Security: 6.2% up to the 2024 wage base of $160,200. Once YTD
//    gross reaches the base, no further SS is withheld.
//
// 4. Medicare: 1.45% with a 0.9% additional rate on the portion of the
//    period's gross that pushes YTD gross over $200,000.
//
// None of this is tax-law advice; the rates feed novelty documents only.

// TaxModel is a named withholding strategy. Callers pick one explicitly,
// the engine never infers.
type TaxModel interface {
	// Name returns a short identifier for configuration and logging.
	Name() string
	// Calculate produces itemized withholding for one period's gross pay.
	// ytdGross is the gross earned before this period; bracket proration
	// and wage-base caps depend on it. Flat models ignore it.
	Calculate(gross, ytdGross decimal.Decimal, frequency domain.PayFrequency, jurisdiction string) domain.TaxResult
}

// FlatRateTaxModel applies fixed percentages directly to gross pay with no
// bracket, cap, or YTD logic.
type FlatRateTaxModel struct {
	Federal        decimal.Decimal
	State          decimal.Decimal
	SocialSecurity decimal.Decimal
	Medicare       decimal.Decimal
}

// NewFlatRateTaxModel returns the flat model with its standard rates:
// federal 12%, state 5%, Social Security 6.2%, Medicare 1.45%.
func NewFlatRateTaxModel() *FlatRateTaxModel {
	return &FlatRateTaxModel{
		Federal:        decimal.NewFromFloat(0.12),
		State:          decimal.NewFromFloat(0.05),
		SocialSecurity: decimal.NewFromFloat(0.062),
		Medicare:       decimal.NewFromFloat(0.0145),
	}
}

func (m *FlatRateTaxModel) Name() string { return "flat" }

func (m *FlatRateTaxModel) Calculate(gross, _ decimal.Decimal, _ domain.PayFrequency, _ string) domain.TaxResult {
	return domain.TaxResult{
		Federal:        floorZero(gross.Mul(m.Federal)),
		State:          floorZero(gross.Mul(m.State)),
		SocialSecurity: floorZero(gross.Mul(m.SocialSecurity)),
		Medicare:       floorZero(gross.Mul(m.Medicare)),
	}
}

// TaxBracket is one row of a progressive federal bracket table.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// BracketTaxModel computes federal withholding from a bracket table over
// annualized-to-date income and prorates it per period, with a Social
// Security wage base and an additional Medicare rate for high earners.
type BracketTaxModel struct {
	Brackets []TaxBracket
	States   map[string]decimal.Decimal
	// DefaultStateRate applies when the jurisdiction is unrecognized.
	DefaultStateRate decimal.Decimal

	SSRate     decimal.Decimal
	SSWageBase decimal.Decimal

	MedicareRate      decimal.Decimal
	AdditionalRate    decimal.Decimal
	AdditionalOverYTD decimal.Decimal
}

// NewBracketTaxModel2024 returns the bracket model with the 2024
// single-filer federal table and 2024 FICA figures.
func NewBracketTaxModel2024() *BracketTaxModel {
	return &BracketTaxModel{
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(11000), decimal.NewFromFloat(0.10)},
			{decimal.NewFromInt(11000), decimal.NewFromInt(44725), decimal.NewFromFloat(0.12)},
			{decimal.NewFromInt(44725), decimal.NewFromInt(95375), decimal.NewFromFloat(0.22)},
			{decimal.NewFromInt(95375), decimal.NewFromInt(182050), decimal.NewFromFloat(0.24)},
			{decimal.NewFromInt(182050), decimal.NewFromInt(231250), decimal.NewFromFloat(0.32)},
			{decimal.NewFromInt(231250), decimal.NewFromInt(578125), decimal.NewFromFloat(0.35)},
			{decimal.NewFromInt(578125), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
		},
		States: map[string]decimal.Decimal{
			"CA": decimal.NewFromFloat(0.05),
			"NY": decimal.NewFromFloat(0.06),
			"TX": decimal.Zero,
		},
		DefaultStateRate:  decimal.NewFromFloat(0.04),
		SSRate:            decimal.NewFromFloat(0.062),
		SSWageBase:        decimal.NewFromInt(160200),
		MedicareRate:      decimal.NewFromFloat(0.0145),
		AdditionalRate:    decimal.NewFromFloat(0.009),
		AdditionalOverYTD: decimal.NewFromInt(200000),
	}
}

func (m *BracketTaxModel) Name() string { return "bracket" }

func (m *BracketTaxModel) Calculate(gross, ytdGross decimal.Decimal, frequency domain.PayFrequency, jurisdiction string) domain.TaxResult {
	return domain.TaxResult{
		Federal:        floorZero(m.federalTax(gross, ytdGross, frequency)),
		State:          floorZero(gross.Mul(m.stateRate(jurisdiction))),
		SocialSecurity: floorZero(m.socialSecurityTax(gross, ytdGross)),
		Medicare:       floorZero(m.medicareTax(gross, ytdGross)),
	}
}

// federalTax taxes the annualized-to-date income (YTD gross plus this
// period) through the full bracket table, then divides by periods per year.
func (m *BracketTaxModel) federalTax(gross, ytdGross decimal.Decimal, frequency domain.PayFrequency) decimal.Decimal {
	annualized := ytdGross.Add(gross)

	var total decimal.Decimal
	for _, bracket := range m.Brackets {
		if annualized.LessThanOrEqual(bracket.Min) {
			break
		}
		taxableInBracket := decimal.Min(annualized, bracket.Max).Sub(bracket.Min)
		if taxableInBracket.GreaterThan(decimal.Zero) {
			total = total.Add(taxableInBracket.Mul(bracket.Rate))
		}
	}

	return total.Div(decimal.NewFromInt(frequency.PeriodsPerYear()))
}

func (m *BracketTaxModel) stateRate(jurisdiction string) decimal.Decimal {
	if rate, ok := m.States[jurisdiction]; ok {
		return rate
	}
	return m.DefaultStateRate
}

// socialSecurityTax withholds 6.2% until YTD gross reaches the wage base.
// The remaining headroom caps the withholding, so a period straddling the
// base withholds only on the portion below it.
func (m *BracketTaxModel) socialSecurityTax(gross, ytdGross decimal.Decimal) decimal.Decimal {
	headroom := decimal.Max(decimal.Zero, m.SSWageBase.Sub(ytdGross))
	return decimal.Min(gross.Mul(m.SSRate), headroom.Mul(m.SSRate))
}

// medicareTax withholds the base rate on full gross plus the additional
// rate on the portion of gross that lands above the YTD threshold.
func (m *BracketTaxModel) medicareTax(gross, ytdGross decimal.Decimal) decimal.Decimal {
	base := gross.Mul(m.MedicareRate)

	over := ytdGross.Add(gross).Sub(m.AdditionalOverYTD)
	if over.LessThanOrEqual(decimal.Zero) {
		return base
	}
	surchargeable := decimal.Min(gross, over)
	return base.Add(surchargeable.Mul(m.AdditionalRate))
}

// TaxModelByName resolves the model a request asked for. Unknown names get
// the flat model.
func TaxModelByName(name domain.TaxModelName) TaxModel {
	if name == domain.BracketModel {
		return NewBracketTaxModel2024()
	}
	return NewFlatRateTaxModel()
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
