// Package statement merges transaction sources, orders them, and computes
// running balances and totals for one statement period. All operations are
// pure over their inputs; randomness enters only through an injected source.
package statement

import (
	"errors"
	"sort"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned for bad caller input, such as a negative
// synthesis count.
var ErrInvalidArgument = errors.New("invalid argument")

// ComputeBalances stable-sorts the transactions by date (ties keep their
// input order) and walks them once, maintaining a running balance from the
// opening balance. The running balance is rounded to cents at every step;
// cumulative rounding drift is therefore a reproducible property, not a
// bug.
//
// An empty transaction list is valid: the closing balance equals the
// opening balance and both totals are zero.
func ComputeBalances(openingBalance decimal.Decimal, transactions []domain.Transaction) domain.StatementSummary {
	ordered := append([]domain.Transaction(nil), transactions...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	balanced := make([]domain.BalancedTransaction, 0, len(ordered))
	running := openingBalance
	totalDeposits := decimal.Zero
	totalWithdrawals := decimal.Zero

	for _, tx := range ordered {
		if tx.Kind == domain.Deposit {
			running = running.Add(tx.Amount)
			totalDeposits = totalDeposits.Add(tx.Amount)
		} else {
			running = running.Sub(tx.Amount)
			totalWithdrawals = totalWithdrawals.Add(tx.Amount)
		}
		running = running.Round(2)
		balanced = append(balanced, domain.BalancedTransaction{
			Transaction:    tx,
			RunningBalance: running,
		})
	}

	closing := openingBalance
	if len(balanced) > 0 {
		closing = balanced[len(balanced)-1].RunningBalance
	}

	return domain.StatementSummary{
		OpeningBalance:   openingBalance,
		ClosingBalance:   closing,
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		Transactions:     balanced,
	}
}
