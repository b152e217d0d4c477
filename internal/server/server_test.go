package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/receiptvault/receiptvault/internal/export"
	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/storage"
	"github.com/receiptvault/receiptvault/internal/store"
	"github.com/receiptvault/receiptvault/internal/testutil"
)

var testNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

func testReceipts() []receipt.Receipt {
	return []receipt.Receipt{
		{
			ID:            "r1",
			Title:         "Groceries",
			Store:         "FreshMart",
			Amount:        4567,
			Currency:      receipt.CurrencyUSD,
			Date:          receipt.NewDate(2025, time.October, 12),
			Category:      receipt.CategoryFood,
			PaymentMethod: receipt.PaymentCard,
			Warranty:      receipt.WarrantyNone,
		},
		{
			ID:            "r2",
			Title:         "Fuel",
			Store:         "Shell Station",
			Amount:        5230,
			Currency:      receipt.CurrencyUSD,
			Date:          receipt.NewDate(2025, time.October, 10),
			Category:      receipt.CategoryGas,
			PaymentMethod: receipt.PaymentCard,
			Warranty:      receipt.WarrantyNone,
		},
		{
			ID:            "r3",
			Title:         "Headphones",
			Store:         "TechWorld",
			Amount:        29999,
			Currency:      receipt.CurrencyUSD,
			Date:          receipt.NewDate(2025, time.July, 15),
			Category:      receipt.CategoryShopping,
			PaymentMethod: receipt.PaymentOnline,
			Warranty:      "2 years",
		},
	}
}

func setupServer(t *testing.T, receipts []receipt.Receipt) (http.Handler, *store.Store) {
	t.Helper()

	st := testutil.SetupTestStorage(t)

	if receipts == nil {
		receipts = []receipt.Receipt{}
	}
	if err := st.SaveReceipts(receipts); err != nil {
		t.Fatalf("Failed to seed receipts: %v", err)
	}

	s, err := store.New(st)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	handler, srv, err := New(s, testutil.TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	srv.now = func() time.Time { return testNow }

	return handler, s
}

func postForm(t *testing.T, handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestDashboard(t *testing.T) {
	handler, _ := setupServer(t, testReceipts())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	body := resp.Body.String()
	for _, want := range []string{"Groceries", "$397.96", "$97.97"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestDashboardFirstRunSeedsSamples(t *testing.T) {
	st := testutil.SetupTestStorage(t)

	s, err := store.New(st)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	handler, _, err := New(s, testutil.TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "FreshMart") {
		t.Errorf("expected sample receipts on first run")
	}
}

func TestReceiptsFiltering(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		present []string
		absent  []string
	}{
		{
			name:    "no filters",
			query:   "",
			present: []string{"Groceries", "Fuel", "Headphones"},
		},
		{
			name:    "by category",
			query:   "?category=Food",
			present: []string{"Groceries"},
			absent:  []string{"Headphones", "Fuel"},
		},
		{
			name:    "by search",
			query:   "?search=tech",
			present: []string{"Headphones"},
			absent:  []string{"Groceries", "Fuel"},
		},
		{
			name:    "by amount range",
			query:   "?amount_min=50&amount_max=100",
			present: []string{"Fuel"},
			absent:  []string{"Groceries", "Headphones"},
		},
		{
			name:    "invalid filter falls back to all",
			query:   "?category=Bogus",
			present: []string{"Groceries", "Fuel", "Headphones"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupServer(t, testReceipts())

			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/receipts"+tt.query, nil))

			if resp.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
			}

			body := resp.Body.String()
			for _, want := range tt.present {
				if !strings.Contains(body, want) {
					t.Errorf("expected body to contain %q", want)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(body, unwanted) {
					t.Errorf("expected body to not contain %q", unwanted)
				}
			}
		})
	}
}

func TestCreateReceipt(t *testing.T) {
	handler, s := setupServer(t, testReceipts())

	if err := s.SaveDraft(receipt.Draft{Title: "leftover"}); err != nil {
		t.Fatalf("Failed to save draft: %v", err)
	}

	resp := postForm(t, handler, "/receipts", url.Values{
		"title":  {"Coffee"},
		"store":  {"Brew Lab"},
		"amount": {"4.50"},
		"date":   {"2025-10-14"},
	})

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if location := resp.Header().Get("Location"); location != "/?msg=Receipt+saved" {
		t.Errorf("expected redirect to %q, got %q", "/?msg=Receipt+saved", location)
	}

	if s.Len() != 4 {
		t.Fatalf("expected 4 receipts, got %d", s.Len())
	}

	created := s.List()[0]
	if created.Title != "Coffee" {
		t.Errorf("expected newest receipt first, got %q", created.Title)
	}
	if created.Amount != 450 {
		t.Errorf("expected amount 450, got %d", created.Amount)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.Category != receipt.CategoryOther {
		t.Errorf("expected default category, got %q", created.Category)
	}

	if draft := s.Draft(); draft.Title != "" {
		t.Errorf("expected draft cleared after save, got %q", draft.Title)
	}
}

func TestCreateReceiptValidation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "missing title and store",
			form: url.Values{"amount": {"4.50"}},
			want: "title is required",
		},
		{
			name: "zero amount",
			form: url.Values{"title": {"Coffee"}, "store": {"Brew Lab"}},
			want: "amount must be greater than zero",
		},
		{
			name: "malformed amount",
			form: url.Values{"title": {"Coffee"}, "store": {"Brew Lab"}, "amount": {"abc"}},
			want: "amount must be a number",
		},
		{
			name: "malformed date",
			form: url.Values{"title": {"Coffee"}, "store": {"Brew Lab"}, "amount": {"4.50"}, "date": {"14/10/2025"}},
			want: "date must be YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, s := setupServer(t, testReceipts())

			resp := postForm(t, handler, "/receipts", tt.form)

			if resp.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, resp.Code)
			}
			if !strings.Contains(resp.Body.String(), tt.want) {
				t.Errorf("expected body to contain %q", tt.want)
			}
			if s.Len() != 3 {
				t.Errorf("expected store unchanged, got %d receipts", s.Len())
			}
		})
	}
}

func TestSaveDraft(t *testing.T) {
	handler, s := setupServer(t, nil)

	resp := postForm(t, handler, "/receipts/draft", url.Values{
		"title":  {"Partial"},
		"amount": {"12"},
	})

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}

	draft := s.Draft()
	if draft.Title != "Partial" || draft.Amount != "12" {
		t.Errorf("expected draft persisted, got %+v", draft)
	}

	// The entry form picks the draft back up.
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/receipts/new", nil))

	if !strings.Contains(resp.Body.String(), "Partial") {
		t.Errorf("expected entry form prefilled from draft")
	}
}

func TestEditReceipt(t *testing.T) {
	handler, s := setupServer(t, testReceipts())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/receipts/r2/edit", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Shell Station") {
		t.Errorf("expected form prefilled with receipt fields")
	}

	// Editing removes the original; saving recreates it.
	var notFound *storage.NotFoundError
	if _, err := s.Get("r2"); !errors.As(err, &notFound) {
		t.Errorf("expected edited receipt removed, got %v", err)
	}
	if draft := s.Draft(); draft.Store != "Shell Station" {
		t.Errorf("expected draft persisted for edit, got %+v", draft)
	}
}

func TestEditMissingReceipt(t *testing.T) {
	handler, _ := setupServer(t, testReceipts())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/receipts/nope/edit", nil))

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if location := resp.Header().Get("Location"); location != "/receipts?err=Receipt+not+found" {
		t.Errorf("unexpected redirect %q", location)
	}
}

func TestDeleteReceipt(t *testing.T) {
	handler, s := setupServer(t, testReceipts())

	resp := postForm(t, handler, "/receipts/r1/delete", url.Values{})

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 receipts after delete, got %d", s.Len())
	}

	// Deleting again is a no-op.
	resp = postForm(t, handler, "/receipts/r1/delete", url.Values{})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 receipts, got %d", s.Len())
	}
}

func TestAnalytics(t *testing.T) {
	tests := []struct {
		name  string
		query string
		total string
	}{
		{name: "all periods", query: "", total: "$397.96"},
		{name: "this month", query: "?period=month", total: "$97.97"},
		{name: "this year", query: "?period=year", total: "$397.96"},
		{name: "unknown period falls back to all", query: "?period=century", total: "$397.96"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupServer(t, testReceipts())

			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/analytics"+tt.query, nil))

			if resp.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
			}
			if !strings.Contains(resp.Body.String(), tt.total) {
				t.Errorf("expected body to contain total %q", tt.total)
			}
		})
	}
}

func TestSaveSettings(t *testing.T) {
	handler, s := setupServer(t, nil)

	resp := postForm(t, handler, "/settings", url.Values{
		"theme":                {"dark"},
		"currency":             {"EUR"},
		"service_googleVision": {"on"},
		"notification_budget":  {"on"},
	})

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}

	settings := s.Settings()
	if settings.Theme != "dark" {
		t.Errorf("expected theme %q, got %q", "dark", settings.Theme)
	}
	if settings.Currency != receipt.CurrencyEUR {
		t.Errorf("expected currency %q, got %q", receipt.CurrencyEUR, settings.Currency)
	}
	if !settings.Services["googleVision"] {
		t.Error("expected googleVision enabled")
	}
	// Unchecked boxes come back disabled.
	if settings.Services["tesseract"] {
		t.Error("expected tesseract disabled")
	}
	if settings.Notifications["warranty"] {
		t.Error("expected warranty notifications disabled")
	}
	if !settings.Notifications["budget"] {
		t.Error("expected budget notifications enabled")
	}
}

func TestExportJSON(t *testing.T) {
	handler, _ := setupServer(t, testReceipts())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/export", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if contentType := resp.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected content type %q, got %q", "application/json", contentType)
	}
	disposition := resp.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "receiptvault-backup-2025-10-15.json") {
		t.Errorf("unexpected content disposition %q", disposition)
	}

	var backup export.Backup
	if err := json.Unmarshal(resp.Body.Bytes(), &backup); err != nil {
		t.Fatalf("Failed to decode backup: %v", err)
	}
	if len(backup.Receipts) != 3 {
		t.Errorf("expected 3 receipts in backup, got %d", len(backup.Receipts))
	}
	if backup.Settings.Currency != receipt.CurrencyUSD {
		t.Errorf("expected settings in backup, got %+v", backup.Settings)
	}
}

func TestExportCSV(t *testing.T) {
	handler, _ := setupServer(t, testReceipts())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/export/csv", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if contentType := resp.Header().Get("Content-Type"); contentType != "text/csv" {
		t.Errorf("expected content type %q, got %q", "text/csv", contentType)
	}

	body := resp.Body.String()
	if !strings.HasPrefix(body, "ID,Title,Store,Date,Amount") {
		t.Errorf("expected CSV header, got %q", body[:min(len(body), 40)])
	}
	if !strings.Contains(body, "45.67") {
		t.Errorf("expected CSV to contain receipt amounts")
	}
}

func importRequest(t *testing.T, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "backup.json")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err = part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err = writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImport(t *testing.T) {
	var backup bytes.Buffer
	settings := receipt.DefaultSettings()
	settings.Currency = receipt.CurrencyGBP
	if err := export.JSON(&backup, testReceipts()[:2], settings, testNow); err != nil {
		t.Fatalf("Failed to build backup: %v", err)
	}

	handler, s := setupServer(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, importRequest(t, backup.Bytes()))

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 receipts after import, got %d", s.Len())
	}
	if s.Settings().Currency != receipt.CurrencyGBP {
		t.Errorf("expected imported settings applied, got %q", s.Settings().Currency)
	}
}

func TestImportInvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "not json at all"},
		{name: "receipts not an array", content: `{"receipts": "not-an-array"}`},
		{name: "missing receipts", content: `{"settings": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, s := setupServer(t, testReceipts())

			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, importRequest(t, []byte(tt.content)))

			if resp.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, resp.Code)
			}
			if !strings.Contains(resp.Body.String(), "invalid file format") {
				t.Errorf("expected invalid format message, got %q", resp.Body.String())
			}
			if s.Len() != 3 {
				t.Errorf("expected store untouched, got %d receipts", s.Len())
			}
		})
	}
}

func TestImportMissingFile(t *testing.T) {
	handler, _ := setupServer(t, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("other", "value"); err != nil {
		t.Fatalf("Failed to write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.Code)
	}
}

func TestScan(t *testing.T) {
	handler, s := setupServer(t, nil)

	resp := postForm(t, handler, "/scan", url.Values{
		"text": {"SHELL STATION\nFuel purchase\nTotal: $52.30\n10/07/2025"},
	})

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if location := resp.Header().Get("Location"); location != "/receipts/new?msg=Receipt+processed" {
		t.Errorf("unexpected redirect %q", location)
	}

	draft := s.Draft()
	if draft.Store != "SHELL STATION" {
		t.Errorf("expected store %q, got %q", "SHELL STATION", draft.Store)
	}
	if draft.Amount != "52.30" {
		t.Errorf("expected amount %q, got %q", "52.30", draft.Amount)
	}
	if draft.Date != "2025-07-10" {
		t.Errorf("expected date %q, got %q", "2025-07-10", draft.Date)
	}
	if draft.Category != string(receipt.CategoryGas) {
		t.Errorf("expected category %q, got %q", receipt.CategoryGas, draft.Category)
	}
}

func TestScanEmptyText(t *testing.T) {
	handler, _ := setupServer(t, nil)

	resp := postForm(t, handler, "/scan", url.Values{"text": {"   \n  "}})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Error processing receipt: no recognized text") {
		t.Errorf("expected scan error message")
	}
}

func TestClear(t *testing.T) {
	handler, s := setupServer(t, testReceipts())

	if err := s.SaveSettings(receipt.Settings{Theme: "dark", Currency: receipt.CurrencyEUR}); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	resp := postForm(t, handler, "/clear", url.Values{})

	if resp.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, resp.Code)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store after clear, got %d receipts", s.Len())
	}
	if s.Settings().Theme != "auto" {
		t.Errorf("expected default settings restored, got %+v", s.Settings())
	}
}
