package util

import (
	"fmt"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

const (
	decimalValue  = 100
	thousandValue = 1000
)

// FormatMoney renders cents with the given thousand and decimal separators.
// Amounts are non-negative.
func FormatMoney(value int64, thousand, decimal string) string {
	var result string

	// apply the decimal separator
	result = fmt.Sprintf("%s%02d%s", decimal, value%decimalValue, result)
	value /= decimalValue

	// for each 3 digits put the thousand separator
	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, value%thousandValue, result)
		value /= thousandValue
	}

	return fmt.Sprintf("%d%s", value, result)
}

// FormatCurrency prefixes the amount with the currency's display symbol.
func FormatCurrency(value int64, currency receipt.Currency) string {
	return currency.Symbol() + FormatMoney(value, ",", ".")
}
