package utils

import (
	"testing"
	"time"

	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "$0.00"},
		{"small", decimal.NewFromFloat(5.5), "$5.50"},
		{"three digits", decimal.NewFromFloat(123.45), "$123.45"},
		{"thousands", decimal.NewFromFloat(1234.56), "$1,234.56"},
		{"millions", decimal.NewFromFloat(1234567.89), "$1,234,567.89"},
		{"rounds to two places", decimal.NewFromFloat(10.005), "$10.01"},
		{"negative", decimal.NewFromFloat(-1234.5), "$-1,234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.amount))
		})
	}
}

func TestFormatVES(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "Bs. 0,00"},
		{"small", decimal.NewFromFloat(5.5), "Bs. 5,50"},
		{"thousands", decimal.NewFromFloat(1234.56), "Bs. 1.234,56"},
		{"millions", decimal.NewFromFloat(1234567.89), "Bs. 1.234.567,89"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVES(tt.amount))
		})
	}
}

func TestConvertToLocal(t *testing.T) {
	rate := &models.ExchangeRate{
		Value:     decimal.NewFromFloat(36.5),
		FetchedAt: time.Now(),
	}

	got := ConvertToLocal(decimal.NewFromInt(30), rate)
	assert.True(t, got.Equal(decimal.NewFromFloat(1095)), "30 USD at 36.5 should be 1095 VES, got %s", got)

	assert.True(t, ConvertToLocal(decimal.NewFromInt(30), nil).IsZero(), "nil rate converts to zero")
}

func TestConvertAndFormatTogether(t *testing.T) {
	rate := &models.ExchangeRate{Value: decimal.NewFromFloat(36.5)}
	ves := ConvertToLocal(decimal.NewFromFloat(30), rate)
	assert.Equal(t, "Bs. 1.095,00", FormatVES(ves))
}
