package report

import (
	"sort"
	"time"

	"golang.org/x/exp/maps"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// Period is a named relative date window anchored to "now". Every window is
// year-to-date style: an inclusive lower bound with no upper bound.
type Period string

const (
	PeriodAll     Period = "all"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

func Periods() []Period {
	return []Period{PeriodAll, PeriodMonth, PeriodQuarter, PeriodYear}
}

// ParsePeriod maps a selector string to a period, falling back to "all" for
// anything unknown.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodMonth, PeriodQuarter, PeriodYear:
		return Period(s)
	default:
		return PeriodAll
	}
}

const monthsPerQuarter = 3

// Start returns the inclusive lower bound of the window. The second return
// is false for PeriodAll, which has no bound.
func (p Period) Start(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case PeriodQuarter:
		quarter := (int(now.Month()) - 1) / monthsPerQuarter
		return time.Date(now.Year(), time.Month(quarter*monthsPerQuarter+1), 1, 0, 0, 0, 0, now.Location()), true
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// Filter returns the receipts whose date falls inside the window.
func (p Period) Filter(receipts []receipt.Receipt, now time.Time) []receipt.Receipt {
	start, bounded := p.Start(now)
	if !bounded {
		return receipts
	}

	filtered := make([]receipt.Receipt, 0, len(receipts))
	for _, r := range receipts {
		if !r.Date.Before(start) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

type MerchantTotal struct {
	Store  string
	Amount int64
}

// Report holds the dashboard totals and the four breakdowns the analytics
// charts consume as label/value pairs. Amounts are cents.
type Report struct {
	Period Period

	Count      int
	Total      int64
	MonthTotal int64
	Average    int64

	Categories map[receipt.Category]int64
	Monthly    map[string]int64
	MonthKeys  []string
	Merchants  []MerchantTotal
	Payments   map[receipt.PaymentMethod]int64
}

const topMerchants = 10

// Generate computes the report over the period-restricted subset of
// receipts. It is a pure reduction: empty input yields zeroed totals and
// empty breakdowns, never an error.
func Generate(receipts []receipt.Receipt, period Period, now time.Time) Report {
	filtered := period.Filter(receipts, now)

	r := Report{
		Period:     period,
		Count:      len(filtered),
		Categories: make(map[receipt.Category]int64),
		Monthly:    make(map[string]int64),
		Payments:   make(map[receipt.PaymentMethod]int64),
	}

	monthStart, _ := PeriodMonth.Start(now)

	merchantTotals := make(map[string]int64)
	merchantOrder := []string{}

	for _, rec := range filtered {
		r.Total += rec.Amount

		if !rec.Date.Before(monthStart) {
			r.MonthTotal += rec.Amount
		}

		r.Categories[rec.Category] += rec.Amount
		r.Monthly[rec.Date.MonthKey()] += rec.Amount
		r.Payments[rec.PaymentMethod] += rec.Amount

		if _, seen := merchantTotals[rec.Store]; !seen {
			merchantOrder = append(merchantOrder, rec.Store)
		}
		merchantTotals[rec.Store] += rec.Amount
	}

	if r.Count > 0 {
		r.Average = r.Total / int64(r.Count)
	}

	r.MonthKeys = maps.Keys(r.Monthly)
	sort.Strings(r.MonthKeys)

	merchants := make([]MerchantTotal, 0, len(merchantOrder))
	for _, store := range merchantOrder {
		merchants = append(merchants, MerchantTotal{Store: store, Amount: merchantTotals[store]})
	}
	// Stable keeps first-encountered order for equal amounts.
	sort.SliceStable(merchants, func(i, j int) bool {
		return merchants[i].Amount > merchants[j].Amount
	})
	if len(merchants) > topMerchants {
		merchants = merchants[:topMerchants]
	}
	r.Merchants = merchants

	return r
}
