package filter

import (
	"sort"
	"strings"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// ReceiptFilter holds the optional predicates for a receipt query.
// All fields are pointers to distinguish "not set" from zero values.
type ReceiptFilter struct {
	Search    *string           // case-insensitive substring over title, store, category, notes
	Category  *receipt.Category // exact match
	DateFrom  *receipt.Date     // inclusive
	DateTo    *receipt.Date     // inclusive
	AmountMin *int64            // cents, inclusive
	AmountMax *int64            // cents, inclusive
}

// Empty reports whether no predicate is set, i.e. the filter matches all.
func (f *ReceiptFilter) Empty() bool {
	return f == nil ||
		(f.Search == nil && f.Category == nil && f.DateFrom == nil &&
			f.DateTo == nil && f.AmountMin == nil && f.AmountMax == nil)
}

func (f *ReceiptFilter) matches(r receipt.Receipt) bool {
	if f == nil {
		return true
	}

	if f.Search != nil {
		term := strings.ToLower(*f.Search)
		if !strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Store), term) &&
			!strings.Contains(strings.ToLower(string(r.Category)), term) &&
			!strings.Contains(strings.ToLower(r.Notes), term) {
			return false
		}
	}

	if f.Category != nil && r.Category != *f.Category {
		return false
	}

	if f.DateFrom != nil && r.Date.Before(f.DateFrom.Time) {
		return false
	}

	if f.DateTo != nil && r.Date.After(f.DateTo.Time) {
		return false
	}

	if f.AmountMin != nil && r.Amount < *f.AmountMin {
		return false
	}

	if f.AmountMax != nil && r.Amount > *f.AmountMax {
		return false
	}

	return true
}

// Apply returns the receipts matching every active predicate, sorted by date
// descending. The sort is stable so receipts sharing a date keep their
// insertion order. The input slice is never mutated.
func Apply(receipts []receipt.Receipt, f *ReceiptFilter) []receipt.Receipt {
	matched := make([]receipt.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if f.matches(r) {
			matched = append(matched, r)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date.Time)
	})

	return matched
}
