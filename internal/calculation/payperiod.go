package calculation

import (
	"time"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/buelldocs/docgen/pkg/dateutil"
)

// PayPeriod is the date span a pay date covers.
type PayPeriod struct {
	Start time.Time
	End   time.Time
}

// ComputePayPeriodDates derives the period a pay date covers.
//
// Weekly and biweekly periods end on the pay date and reach back 6 and 13
// days. Semimonthly pay dates on or before the 15th cover the 1st through
// the 15th; later pay dates cover the 16th through month end. Monthly
// covers the pay date's whole calendar month.
func ComputePayPeriodDates(payDate time.Time, frequency domain.PayFrequency) PayPeriod {
	switch frequency {
	case domain.Weekly:
		return PayPeriod{Start: payDate.AddDate(0, 0, -6), End: payDate}
	case domain.SemiMonthly:
		if payDate.Day() <= 15 {
			start := dateutil.BeginningOfMonth(payDate)
			return PayPeriod{Start: start, End: start.AddDate(0, 0, 14)}
		}
		return PayPeriod{
			Start: dateutil.BeginningOfMonth(payDate).AddDate(0, 0, 15),
			End:   dateutil.EndOfMonth(payDate),
		}
	case domain.Monthly:
		return PayPeriod{
			Start: dateutil.BeginningOfMonth(payDate),
			End:   dateutil.EndOfMonth(payDate),
		}
	default:
		// biweekly, also the fallback for unknown frequencies
		return PayPeriod{Start: payDate.AddDate(0, 0, -13), End: payDate}
	}
}
