package output

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"whole dollars", "1507", "$1507.00"},
		{"cents", "1234.56", "$1234.56"},
		{"zero", "0", "$0.00"},
		{"negative", "-124.65", "-$124.65"},
		{"sub-cent rounds in display", "7.6923", "$7.69"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.expected, FormatCurrency(amount))
		})
	}
}

func TestFormatSignedCurrency(t *testing.T) {
	amount := decimal.RequireFromString("500")
	assert.Equal(t, "+$500.00", FormatSignedCurrency(amount, true))
	assert.Equal(t, "-$500.00", FormatSignedCurrency(amount, false))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/05/2024", FormatDate(d))
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		account  string
		expected string
	}{
		{"1234567890", "****7890"},
		{"7890", "****7890"},
		{"90", "****90"},
		{"", "****"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaskAccountNumber(tt.account))
	}
}
