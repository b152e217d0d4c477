package receipt

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyJPY Currency = "JPY"
)

var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyINR: "₹",
	CurrencyJPY: "¥",
}

func (c Currency) Symbol() string {
	if symbol, ok := currencySymbols[c]; ok {
		return symbol
	}
	return "$"
}

func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyJPY}
}

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryGas           Category = "Gas"
	CategoryOther         Category = "Other"
)

func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryShopping,
		CategoryTransport,
		CategoryBills,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryGas,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentOnline PaymentMethod = "Online"
	PaymentCheck  PaymentMethod = "Check"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCard, PaymentOnline, PaymentCheck}
}

// Warranty is informational only. There is no expiry computation.
type Warranty string

const (
	WarrantyNone Warranty = "None"
)

func WarrantyOptions() []Warranty {
	return []Warranty{
		WarrantyNone,
		"6 months",
		"1 year",
		"2 years",
		"3 years",
		"5 years",
		"10 years",
	}
}
