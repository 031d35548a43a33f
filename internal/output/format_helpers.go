package output

import (
	"time"

	"github.com/buelldocs/docgen/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.FromDecimal(amount).Format()
}

// FormatSignedCurrency prefixes deposits with + and withdrawals with -.
func FormatSignedCurrency(amount decimal.Decimal, deposit bool) string {
	if deposit {
		return "+" + money.FromDecimal(amount).Format()
	}
	return "-" + money.FromDecimal(amount).Format()
}

// FormatDate renders dates the way the generated documents show them.
func FormatDate(date time.Time) string {
	return date.Format("01/02/2006")
}

// MaskAccountNumber hides all but the last four digits.
func MaskAccountNumber(account string) string {
	if len(account) <= 4 {
		return "****" + account
	}
	return "****" + account[len(account)-4:]
}
