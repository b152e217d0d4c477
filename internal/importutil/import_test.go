package importutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/receiptvault/receiptvault/internal/export"
	"github.com/receiptvault/receiptvault/internal/receipt"
)

func TestImportBackupRoundTrip(t *testing.T) {
	original := []receipt.Receipt{
		{
			ID:       "1",
			Title:    "Gas Station",
			Store:    "Shell Station",
			Amount:   5230,
			Currency: receipt.CurrencyUSD,
			Date:     receipt.NewDate(2025, time.October, 7),
			Category: receipt.CategoryGas,
		},
	}
	settings := receipt.DefaultSettings()
	settings.Currency = receipt.CurrencyEUR

	var buf bytes.Buffer
	if err := export.JSON(&buf, original, settings, time.Now()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	receipts, imported, err := Import(&buf)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(receipts))
	}
	if receipts[0].Store != "Shell Station" {
		t.Errorf("expected store %q, got %q", "Shell Station", receipts[0].Store)
	}
	if imported == nil || imported.Currency != receipt.CurrencyEUR {
		t.Errorf("expected imported settings with EUR, got %+v", imported)
	}
}

func TestImportWithoutSettings(t *testing.T) {
	receipts, settings, err := Import(strings.NewReader(`{"receipts": []}`))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(receipts) != 0 {
		t.Errorf("expected no receipts, got %d", len(receipts))
	}
	if settings != nil {
		t.Errorf("expected nil settings, got %+v", settings)
	}
}

func TestImportInvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "receipts not an array", input: `{"receipts": "not-an-array"}`},
		{name: "receipts null", input: `{"receipts": null}`},
		{name: "receipts missing", input: `{"settings": {}}`},
		{name: "not json", input: `receipts`},
		{name: "array of wrong values", input: `{"receipts": [42]}`},
		{name: "empty document", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Import(strings.NewReader(tt.input))

			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("expected ErrInvalidFormat, got %v", err)
			}
		})
	}
}
