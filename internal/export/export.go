package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

// Backup is the downloadable vault snapshot. Import accepts the same shape.
type Backup struct {
	Receipts   []receipt.Receipt `json:"receipts"`
	Settings   receipt.Settings  `json:"settings"`
	ExportDate time.Time         `json:"exportDate"`
}

// JSON writes the full backup document, pretty printed like the original
// download.
func JSON(w io.Writer, receipts []receipt.Receipt, settings receipt.Settings, now time.Time) error {
	if receipts == nil {
		receipts = []receipt.Receipt{}
	}

	backup := Backup{
		Receipts:   receipts,
		Settings:   settings,
		ExportDate: now,
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// Filename names a backup download for a given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("receiptvault-backup-%s.json", now.Format("2006-01-02"))
}

// CSV exports receipts in a flat spreadsheet-friendly format.
// format: ID,Title,Store,Date,Amount,Currency,Category,PaymentMethod,Warranty,Tags,Notes
func CSV(w io.Writer, receipts []receipt.Receipt) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	records := make([][]string, 0, len(receipts)+1)
	records = append(records, []string{
		"ID", "Title", "Store", "Date", "Amount", "Currency",
		"Category", "PaymentMethod", "Warranty", "Tags", "Notes",
	})

	for _, r := range receipts {
		records = append(records, []string{
			r.ID,
			r.Title,
			r.Store,
			r.Date.String(),
			receipt.FormatAmount(r.Amount),
			string(r.Currency),
			string(r.Category),
			string(r.PaymentMethod),
			string(r.Warranty),
			strings.Join(r.Tags, ", "),
			r.Notes,
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}
