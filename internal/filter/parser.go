package filter

import (
	"fmt"
	"net/url"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// ParseReceiptFilters parses URL query parameters into a filter. Absent
// parameters leave the matching predicate unset.
func ParseReceiptFilters(params url.Values) (*ReceiptFilter, error) {
	f := &ReceiptFilter{}

	if search := params.Get("search"); search != "" {
		f.Search = &search
	}

	if categoryStr := params.Get("category"); categoryStr != "" {
		category := receipt.Category(categoryStr)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category: %s", categoryStr)
		}
		f.Category = &category
	}

	if fromStr := params.Get("date_from"); fromStr != "" {
		val, err := receipt.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date_from: %w", err)
		}
		f.DateFrom = &val
	}

	if toStr := params.Get("date_to"); toStr != "" {
		val, err := receipt.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date_to: %w", err)
		}
		f.DateTo = &val
	}

	if minStr := params.Get("amount_min"); minStr != "" {
		val, err := receipt.ParseAmount(minStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amount_min: %w", err)
		}
		f.AmountMin = &val
	}

	if maxStr := params.Get("amount_max"); maxStr != "" {
		val, err := receipt.ParseAmount(maxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amount_max: %w", err)
		}
		f.AmountMax = &val
	}

	return f, nil
}
