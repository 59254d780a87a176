package utils

import (
	"strings"

	"github.com/planillasvb/planillas_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ConvertToLocal converts a USD amount to VES using the given rate.
// Returns zero when no rate is available so display code can simply
// omit the local-currency line.
func ConvertToLocal(amount decimal.Decimal, rate *models.ExchangeRate) decimal.Decimal {
	if rate == nil {
		return decimal.Zero
	}
	return amount.Mul(rate.Value)
}

// FormatUSD renders an amount as "$1,234.56".
func FormatUSD(amount decimal.Decimal) string {
	return "$" + formatFixed2(amount, ",", ".")
}

// FormatVES renders an amount as "Bs. 1.234,56", the es-VE convention.
func FormatVES(amount decimal.Decimal) string {
	return "Bs. " + formatFixed2(amount, ".", ",")
}

// formatFixed2 renders amount with exactly two decimal places and the
// given thousands/decimal separators. Deterministic: no locale lookup.
func formatFixed2(amount decimal.Decimal, thousandsSep, decimalSep string) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousandsSep)
		}
		b.WriteRune(digit)
	}
	b.WriteString(decimalSep)
	b.WriteString(fracPart)
	return b.String()
}
