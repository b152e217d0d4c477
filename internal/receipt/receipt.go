package receipt

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Receipt is a single recorded purchase. Amount is stored in cents so the
// arithmetic in reports never touches floating point.
type Receipt struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Store         string             `json:"store"`
	Amount        int64              `json:"amount"`
	Currency      Currency           `json:"currency"`
	Date          Date               `json:"date"`
	Category      Category           `json:"category"`
	PaymentMethod PaymentMethod      `json:"paymentMethod"`
	Warranty      Warranty           `json:"warranty"`
	Tags          []string           `json:"tags"`
	Notes         string             `json:"notes,omitempty"`
	AIExtracted   bool               `json:"aiExtracted"`
	Confidence    map[string]float64 `json:"confidence,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ValidationError carries one message per offending field so the form layer
// can render them next to the inputs.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}

	return strings.Join(messages, "; ")
}

// Validate reports the required-field violations that block a save.
// It returns nil when the receipt can be committed.
func (r *Receipt) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = "title is required"
	}

	if strings.TrimSpace(r.Store) == "" {
		fields["store"] = "store is required"
	}

	if r.Amount <= 0 {
		fields["amount"] = "amount must be greater than zero"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// Normalize fills the enum fields that the form may leave empty with the
// defaults the original entry form used.
func (r *Receipt) Normalize(defaultCurrency Currency) {
	if r.Currency == "" {
		r.Currency = defaultCurrency
	}
	if r.Category == "" {
		r.Category = CategoryOther
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = PaymentCard
	}
	if r.Warranty == "" {
		r.Warranty = WarrantyNone
	}
	if r.Date.IsZero() {
		r.Date = Today()
	}
}

// ParseTags splits a comma separated tag field, dropping empty entries.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
