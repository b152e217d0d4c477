package receipt

import (
	"fmt"
	"math"
	"strconv"
)

const centsPerUnit = 100

// ParseAmount converts a decimal amount string to cents.
// Examples: "10.50" -> 1050, "5" -> 500.
func ParseAmount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}

	return int64(math.Round(f * centsPerUnit)), nil
}

// FormatAmount renders cents as a plain decimal string, e.g. 1050 -> "10.50".
func FormatAmount(cents int64) string {
	return strconv.FormatFloat(float64(cents)/centsPerUnit, 'f', 2, 64)
}

// Cents converts a unit value produced by text extraction to cents.
func Cents(units float64) int64 {
	return int64(math.Round(units * centsPerUnit))
}
