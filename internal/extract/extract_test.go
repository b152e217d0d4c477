package extract

import (
	"testing"
	"time"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

func TestParseShellReceipt(t *testing.T) {
	draft := Parse("Shell Station\nFuel $52.30\n10/07/2025")

	if draft.Store != "Shell Station" {
		t.Errorf("expected store %q, got %q", "Shell Station", draft.Store)
	}
	if draft.Title != "Receipt from Shell Station" {
		t.Errorf("expected title %q, got %q", "Receipt from Shell Station", draft.Title)
	}
	if draft.Amount != 5230 {
		t.Errorf("expected amount 5230, got %d", draft.Amount)
	}
	if want := receipt.NewDate(2025, time.July, 10); !draft.Date.Equal(want.Time) {
		t.Errorf("expected date %v, got %v", want, draft.Date)
	}
	if draft.Category != receipt.CategoryGas {
		t.Errorf("expected category %q, got %q", receipt.CategoryGas, draft.Category)
	}
}

func TestParseEmpty(t *testing.T) {
	draft := Parse("")

	if draft.Store != "" || draft.Title != "" {
		t.Errorf("expected empty store and title, got %q %q", draft.Store, draft.Title)
	}
	if draft.Amount != 0 {
		t.Errorf("expected zero amount, got %d", draft.Amount)
	}
	if !draft.Date.IsZero() {
		t.Errorf("expected zero date, got %v", draft.Date)
	}
	if draft.Category != receipt.CategoryOther {
		t.Errorf("expected category %q, got %q", receipt.CategoryOther, draft.Category)
	}
}

func TestParseAmountHeuristics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{
			name: "largest amount wins",
			text: "FreshMart Grocery\nMilk $3.50\nBread $2.25\nTOTAL $45.67",
			want: 4567,
		},
		{
			name: "symbol after number",
			text: "Cafe Roma\n12.50 €",
			want: 1250,
		},
		{
			name: "whitespace between symbol and number",
			text: "Store\n$ 19.99",
			want: 1999,
		},
		{
			name: "no currency symbol means no amount",
			text: "Store\nTotal 45.67",
			want: 0,
		},
		{
			name: "multiple symbols across lines",
			text: "Store\n₹100\n£20.50",
			want: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Parse(tt.text)
			if draft.Amount != tt.want {
				t.Errorf("expected amount %d, got %d", tt.want, draft.Amount)
			}
		})
	}
}

func TestParseDateHeuristics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want receipt.Date
	}{
		{
			name: "day month year",
			text: "Store\n10/07/2025",
			want: receipt.NewDate(2025, time.July, 10),
		},
		{
			name: "year month day",
			text: "Store\n2025-10-07",
			want: receipt.NewDate(2025, time.October, 7),
		},
		{
			name: "two digit year",
			text: "Store\n5/3/25",
			want: receipt.NewDate(2025, time.March, 5),
		},
		{
			name: "last parsable line wins",
			text: "Store\n01/01/2024\n02/02/2025",
			want: receipt.NewDate(2025, time.February, 2),
		},
		{
			name: "unparsable token skipped",
			text: "Store\n99/99/2025\n03/04/2025",
			want: receipt.NewDate(2025, time.April, 3),
		},
		{
			name: "no date",
			text: "Store\nno numbers here",
			want: receipt.Date{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := Parse(tt.text)
			if !draft.Date.Equal(tt.want.Time) {
				t.Errorf("expected date %v, got %v", tt.want, draft.Date)
			}
		})
	}
}

func TestParseCategoryKeywords(t *testing.T) {
	tests := []struct {
		store string
		want  receipt.Category
	}{
		{store: "FreshMart Grocery", want: receipt.CategoryFood},
		{store: "Central Market", want: receipt.CategoryFood},
		{store: "Exxon Fuel Stop", want: receipt.CategoryGas},
		{store: "City Pharmacy", want: receipt.CategoryHealthcare},
		{store: "Mario's Pizza", want: receipt.CategoryFood},
		{store: "Cafe Roma", want: receipt.CategoryFood},
		{store: "TechWorld", want: receipt.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.store, func(t *testing.T) {
			draft := Parse(tt.store)
			if draft.Category != tt.want {
				t.Errorf("expected category %q, got %q", tt.want, draft.Category)
			}
		})
	}
}

func TestParseWhitespaceOnly(t *testing.T) {
	draft := Parse("   \n\n\t\n")

	if draft.Store != "" {
		t.Errorf("expected empty store, got %q", draft.Store)
	}
	if draft.Category != receipt.CategoryOther {
		t.Errorf("expected category %q, got %q", receipt.CategoryOther, draft.Category)
	}
}

func TestFormDraft(t *testing.T) {
	draft := Parse("Shell Station\nFuel $52.30\n10/07/2025")

	form := draft.FormDraft()

	if form.Amount != "52.30" {
		t.Errorf("expected amount %q, got %q", "52.30", form.Amount)
	}
	if form.Date != "2025-07-10" {
		t.Errorf("expected date %q, got %q", "2025-07-10", form.Date)
	}
	if form.Category != "Gas" {
		t.Errorf("expected category %q, got %q", "Gas", form.Category)
	}
}

func TestFormDraftZeroAmountLeftEmpty(t *testing.T) {
	form := Parse("Store\nno amounts").FormDraft()

	if form.Amount != "" {
		t.Errorf("expected empty amount field, got %q", form.Amount)
	}
}
