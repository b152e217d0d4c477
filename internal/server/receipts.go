package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/receiptvault/receiptvault/internal/filter"
	"github.com/receiptvault/receiptvault/internal/receipt"
)

type receiptsData struct {
	Receipts []receipt.Receipt
	Query    url.Values
	Currency receipt.Currency
	Message  string
	Error    string
}

func (s *Server) receiptsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	data := receiptsData{
		Query:    query,
		Currency: s.store.Settings().Currency,
		Message:  query.Get("msg"),
		Error:    query.Get("err"),
	}

	f, err := filter.ParseReceiptFilters(query)
	if err != nil {
		data.Error = err.Error()
		f = &filter.ReceiptFilter{}
	}

	data.Receipts = filter.Apply(s.store.List(), f)

	s.render(w, "receipts.html", data)
}

type receiptFormData struct {
	Draft          receipt.Draft
	Errors         map[string]string
	Categories     []receipt.Category
	Currencies     []receipt.Currency
	PaymentMethods []receipt.PaymentMethod
	Warranties     []receipt.Warranty
	Message        string
	Error          string
}

func (s *Server) formData(draft receipt.Draft) receiptFormData {
	if draft.Currency == "" {
		draft.Currency = string(s.store.Settings().Currency)
	}

	return receiptFormData{
		Draft:          draft,
		Errors:         map[string]string{},
		Categories:     receipt.Categories(),
		Currencies:     receipt.Currencies(),
		PaymentMethods: receipt.PaymentMethods(),
		Warranties:     receipt.WarrantyOptions(),
	}
}

func (s *Server) newReceiptHandler(w http.ResponseWriter, r *http.Request) {
	data := s.formData(s.store.Draft())
	data.Message = r.URL.Query().Get("msg")

	s.render(w, "receipt_form.html", data)
}

func formDraft(r *http.Request) receipt.Draft {
	return receipt.Draft{
		Title:         r.FormValue("title"),
		Store:         r.FormValue("store"),
		Amount:        r.FormValue("amount"),
		Currency:      r.FormValue("currency"),
		Date:          r.FormValue("date"),
		Category:      r.FormValue("category"),
		PaymentMethod: r.FormValue("payment_method"),
		Warranty:      r.FormValue("warranty"),
		Tags:          r.FormValue("tags"),
		Notes:         r.FormValue("notes"),
	}
}

func (s *Server) createReceiptHandler(w http.ResponseWriter, r *http.Request) {
	draft := formDraft(r)

	data := s.formData(draft)

	rec := receipt.Receipt{
		Title:         draft.Title,
		Store:         draft.Store,
		Currency:      receipt.Currency(draft.Currency),
		Category:      receipt.Category(draft.Category),
		PaymentMethod: receipt.PaymentMethod(draft.PaymentMethod),
		Warranty:      receipt.Warranty(draft.Warranty),
		Tags:          receipt.ParseTags(draft.Tags),
		Notes:         draft.Notes,
	}

	if draft.Amount != "" {
		amount, err := receipt.ParseAmount(draft.Amount)
		if err != nil {
			data.Errors["amount"] = "amount must be a number"
		} else {
			rec.Amount = amount
		}
	}

	if draft.Date != "" {
		date, err := receipt.ParseDate(draft.Date)
		if err != nil {
			data.Errors["date"] = "date must be YYYY-MM-DD"
		} else {
			rec.Date = date
		}
	}

	if len(data.Errors) == 0 {
		_, err := s.store.Add(rec)

		var validationErr *receipt.ValidationError
		switch {
		case err == nil:
			if draftErr := s.store.ClearDraft(); draftErr != nil {
				s.logger.Warn("failed to clear draft", "error", draftErr.Error())
			}
			http.Redirect(w, r, "/?msg=Receipt+saved", http.StatusSeeOther)
			return
		case errors.As(err, &validationErr):
			for field, message := range validationErr.Fields {
				data.Errors[field] = message
			}
		default:
			s.logger.Error("failed to save receipt", "error", err.Error())
			data.Error = "Error saving receipt"
		}
	}

	w.WriteHeader(http.StatusUnprocessableEntity)
	s.render(w, "receipt_form.html", data)
}

func (s *Server) saveDraftHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.SaveDraft(formDraft(r)); err != nil {
		s.logger.Error("failed to save draft", "error", err.Error())
		http.Redirect(w, r, "/receipts/new?err=Error+saving+draft", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/receipts/new?msg=Draft+saved", http.StatusSeeOther)
}

// editReceiptHandler loads the receipt's fields into the form and removes
// the original: saving creates a new record with a new id.
func (s *Server) editReceiptHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	draft, err := s.store.Edit(id)
	if err != nil {
		http.Redirect(w, r, "/receipts?err=Receipt+not+found", http.StatusSeeOther)
		return
	}

	data := s.formData(draft)
	data.Message = "Editing receipt"

	s.render(w, "receipt_form.html", data)
}

func (s *Server) deleteReceiptHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Remove(r.PathValue("id")); err != nil {
		s.logger.Error("failed to delete receipt", "error", err.Error())
		http.Redirect(w, r, "/receipts?err=Error+deleting+receipt", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/receipts?msg=Receipt+deleted", http.StatusSeeOther)
}
