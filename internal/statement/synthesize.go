package statement

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/buelldocs/docgen/internal/domain"
	"github.com/buelldocs/docgen/pkg/dateutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is one row of the synthesis table: a transaction kind with the
// merchant descriptions and amount range typical for it.
type Category struct {
	Kind         domain.TransactionKind
	Name         string
	Descriptions []string
	MinAmount    float64
	MaxAmount    float64
}

// DefaultCategories is the fixed table random transactions are drawn from.
var DefaultCategories = []Category{
	{domain.Withdrawal, "Grocery Store", []string{"WHOLE FOODS", "SAFEWAY", "KROGER", "WALMART GROCERY"}, 25, 150},
	{domain.Withdrawal, "Restaurant", []string{"STARBUCKS", "MCDONALDS", "CHIPOTLE", "SUBWAY"}, 8, 45},
	{domain.Withdrawal, "Gas Station", []string{"SHELL", "CHEVRON", "EXXON", "BP"}, 30, 80},
	{domain.Withdrawal, "Online Purchase", []string{"AMAZON.COM", "PAYPAL", "APPLE.COM", "NETFLIX"}, 15, 200},
	{domain.Withdrawal, "ATM Withdrawal", []string{"ATM WITHDRAWAL", "CASH WITHDRAWAL"}, 20, 300},
	{domain.Withdrawal, "Utility Bill", []string{"ELECTRIC COMPANY", "WATER DEPT", "INTERNET SERVICE"}, 50, 200},
	{domain.Deposit, "Transfer", []string{"ONLINE TRANSFER", "MOBILE DEPOSIT", "WIRE TRANSFER"}, 100, 1000},
	{domain.Deposit, "Interest", []string{"INTEREST PAYMENT", "SAVINGS INTEREST"}, 1, 25},
	{domain.Deposit, "Refund", []string{"REFUND", "CASHBACK", "RETURN"}, 10, 150},
}

// SynthesizeRandomTransactions draws count plausible transactions dated
// within [start, end). Each draw picks a uniform day offset, a uniform
// category from DefaultCategories, a uniform description within the
// category, and a uniform amount within the category's range rounded to
// cents.
//
// The random source is injected so tests and repeated statement runs are
// reproducible; there is no hidden global randomness.
func SynthesizeRandomTransactions(start, end time.Time, count int, rng *rand.Rand) ([]domain.Transaction, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: transaction count must be non-negative, got %d", ErrInvalidArgument, count)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: statement window end %s precedes start %s",
			ErrInvalidArgument, dateutil.FormatDate(end), dateutil.FormatDate(start))
	}

	days := dateutil.DaysBetween(start, end)
	if days < 1 {
		days = 1
	}

	transactions := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := DefaultCategories[rng.Intn(len(DefaultCategories))]
		description := category.Descriptions[rng.Intn(len(category.Descriptions))]
		amount := category.MinAmount + rng.Float64()*(category.MaxAmount-category.MinAmount)

		transactions = append(transactions, domain.Transaction{
			ID:          uuid.NewString(),
			Date:        start.AddDate(0, 0, rng.Intn(days)),
			Description: description,
			Amount:      decimal.NewFromFloat(amount).Round(2),
			Kind:        category.Kind,
			Category:    category.Name,
		})
	}

	return transactions, nil
}
