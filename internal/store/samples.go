package store

import (
	"time"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// SampleReceipts seeds a first run so the dashboard is not empty, the same
// three records the original client shipped with.
func SampleReceipts() []receipt.Receipt {
	return []receipt.Receipt{
		{
			ID:            "1",
			Title:         "Grocery Shopping",
			Store:         "FreshMart Grocery",
			Amount:        4567,
			Currency:      receipt.CurrencyUSD,
			Date:          receipt.NewDate(2025, time.October, 8),
			Category:      receipt.CategoryFood,
			PaymentMethod: receipt.PaymentCard,
			Warranty:      receipt.WarrantyNone,
			Tags:          []string{"groceries", "weekly"},
			Notes:         "Weekly grocery shopping",
			AIExtracted:   true,
			Confidence:    map[string]float64{"store": 0.95, "amount": 0.98, "date": 0.92},
		},
		{
			ID:            "2",
			Title:         "Gas Station",
			Store:         "Shell Station",
			Amount:        5230,
			Currency:      receipt.CurrencyUSD,
			Date:          receipt.NewDate(2025, time.October, 7),
			Category:      receipt.CategoryGas,
			PaymentMethod: receipt.PaymentCard,
			Warranty:      receipt.WarrantyNone,
			Tags:          []string{"fuel", "commute"},
			Notes:         "Full tank",
		},
		{
			ID:            "3",
			Title:         "Electronics Store",
			Store:         "TechWorld",
			Amount:        29999,
			Currency:      receipt.CurrencyUSD,
			Date:          receipt.NewDate(2025, time.October, 5),
			Category:      receipt.CategoryShopping,
			PaymentMethod: receipt.PaymentCard,
			Warranty:      receipt.Warranty("2 years"),
			Tags:          []string{"electronics", "warranty"},
			Notes:         "Wireless headphones",
			AIExtracted:   true,
			Confidence:    map[string]float64{"store": 0.88, "amount": 0.99, "date": 0.95},
		},
	}
}
