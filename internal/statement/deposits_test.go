package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buelldocs/docgen/internal/domain"
)

func TestDeriveDepositsFromPayPeriods(t *testing.T) {
	periods := []domain.PayPeriodResult{
		{PayDate: date("2024-01-12"), NetPay: dec("1507.00")},
		{PayDate: date("2024-01-26"), NetPay: dec("1507.00")},
		{PayDate: date("2024-02-09"), NetPay: dec("1332.00")},
	}

	deposits := DeriveDepositsFromPayPeriods(periods, "John Doe", date("2024-01-01"), date("2024-01-31"))

	require.Len(t, deposits, 2, "only pay dates inside the window become deposits")
	for _, d := range deposits {
		assert.Equal(t, domain.Deposit, d.Kind)
		assert.Equal(t, "Payroll", d.Category)
		assert.Equal(t, "Payroll Deposit from John Employer", d.Description)
		assert.NotEmpty(t, d.ID)
	}
	assert.Equal(t, date("2024-01-12"), deposits[0].Date)
	assert.True(t, deposits[0].Amount.Equal(dec("1507.00")))
}

func TestDeriveDepositsFromPayPeriods_InclusiveBounds(t *testing.T) {
	periods := []domain.PayPeriodResult{
		{PayDate: date("2024-01-01"), NetPay: dec("100")},
		{PayDate: date("2024-01-31"), NetPay: dec("200")},
		{PayDate: date("2023-12-31"), NetPay: dec("300")},
		{PayDate: date("2024-02-01"), NetPay: dec("400")},
	}

	deposits := DeriveDepositsFromPayPeriods(periods, "Jane Roe", date("2024-01-01"), date("2024-01-31"))

	require.Len(t, deposits, 2)
	assert.Equal(t, date("2024-01-01"), deposits[0].Date)
	assert.Equal(t, date("2024-01-31"), deposits[1].Date)
}

func TestDeriveDepositsFromPayPeriods_FirstNameOnly(t *testing.T) {
	periods := []domain.PayPeriodResult{{PayDate: date("2024-01-12"), NetPay: dec("100")}}

	tests := []struct {
		holder   string
		expected string
	}{
		{"John Doe", "Payroll Deposit from John Employer"},
		{"Cher", "Payroll Deposit from Cher Employer"},
		{"", "Payroll Deposit from  Employer"},
	}

	for _, tt := range tests {
		deposits := DeriveDepositsFromPayPeriods(periods, tt.holder, date("2024-01-01"), date("2024-01-31"))
		require.Len(t, deposits, 1)
		assert.Equal(t, tt.expected, deposits[0].Description)
	}
}

func TestDeriveDepositsFromPayPeriods_Empty(t *testing.T) {
	deposits := DeriveDepositsFromPayPeriods(nil, "John Doe", date("2024-01-01"), date("2024-01-31"))
	assert.Empty(t, deposits)
}
