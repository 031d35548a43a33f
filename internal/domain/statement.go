package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes money flowing in from money flowing out.
type TransactionKind string

const (
	Deposit    TransactionKind = "deposit"
	Withdrawal TransactionKind = "withdrawal"
)

// Transaction is a dated account movement. Amount is always positive; the
// kind determines its sign in balance computation. The running balance is
// not part of this entity, it is a positional property derived by the
// statement engine.
type Transaction struct {
	ID          string          `yaml:"id" json:"id"`
	Date        time.Time       `yaml:"date" json:"date"`
	Description string          `yaml:"description" json:"description"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Kind        TransactionKind `yaml:"kind" json:"kind"`
	Category    string          `yaml:"category" json:"category"`
}

// BalancedTransaction is a Transaction annotated with the balance after it
// was applied. RunningBalance is only meaningful within the ordered list it
// was computed from.
type BalancedTransaction struct {
	Transaction
	RunningBalance decimal.Decimal `yaml:"running_balance" json:"running_balance"`
}

// StatementSummary is the full result of balance computation for one
// statement period.
type StatementSummary struct {
	OpeningBalance   decimal.Decimal       `yaml:"opening_balance" json:"opening_balance"`
	ClosingBalance   decimal.Decimal       `yaml:"closing_balance" json:"closing_balance"`
	TotalDeposits    decimal.Decimal       `yaml:"total_deposits" json:"total_deposits"`
	TotalWithdrawals decimal.Decimal       `yaml:"total_withdrawals" json:"total_withdrawals"`
	Transactions     []BalancedTransaction `yaml:"transactions" json:"transactions"`
}
