package receipt

import "strings"

// Draft is the in-progress form state. Everything stays a string until the
// save path validates it, the same shape the original entry form persisted.
type Draft struct {
	Title         string `json:"title"`
	Store         string `json:"store"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	PaymentMethod string `json:"paymentMethod"`
	Warranty      string `json:"warranty"`
	Tags          string `json:"tags"`
	Notes         string `json:"notes"`
}

// DraftOf loads a receipt's fields back into form state, used by the edit
// flow.
func DraftOf(r Receipt) Draft {
	return Draft{
		Title:         r.Title,
		Store:         r.Store,
		Amount:        FormatAmount(r.Amount),
		Currency:      string(r.Currency),
		Date:          r.Date.String(),
		Category:      string(r.Category),
		PaymentMethod: string(r.PaymentMethod),
		Warranty:      string(r.Warranty),
		Tags:          strings.Join(r.Tags, ", "),
		Notes:         r.Notes,
	}
}
