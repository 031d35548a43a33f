package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/buelldocs/docgen/pkg/dateutil"
	"github.com/google/uuid"
)

// DeriveDepositsFromPayPeriods maps each pay period whose pay date falls
// inside [windowStart, windowEnd] (inclusive) to a payroll deposit for its
// net pay. accountHolder feeds the deposit description; only the first
// name is used, mirroring the rendered documents.
func DeriveDepositsFromPayPeriods(periods []domain.PayPeriodResult, accountHolder string, windowStart, windowEnd time.Time) []domain.Transaction {
	description := fmt.Sprintf("Payroll Deposit from %s Employer", firstName(accountHolder))

	deposits := make([]domain.Transaction, 0, len(periods))
	for _, period := range periods {
		if !dateutil.WithinInclusive(period.PayDate, windowStart, windowEnd) {
			continue
		}
		deposits = append(deposits, domain.Transaction{
			ID:          uuid.NewString(),
			Date:        period.PayDate,
			Description: description,
			Amount:      period.NetPay,
			Kind:        domain.Deposit,
			Category:    "Payroll",
		})
	}

	return deposits
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return full
	}
	return fields[0]
}
