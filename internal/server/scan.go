package server

import (
	"net/http"
	"strings"

	"github.com/receiptvault/receiptvault/internal/extract"
)

type scanData struct {
	Text  string
	Error string
}

func (s *Server) scanFormHandler(w http.ResponseWriter, _ *http.Request) {
	s.render(w, "scan.html", scanData{})
}

// scanHandler takes the text an external OCR engine recognized, parses it
// into a draft and sends the user to the prefilled entry form. On failure
// the user still lands on manual entry.
func (s *Server) scanHandler(w http.ResponseWriter, r *http.Request) {
	text := r.FormValue("text")

	if strings.TrimSpace(text) == "" {
		s.render(w, "scan.html", scanData{
			Text:  text,
			Error: "Error processing receipt: no recognized text",
		})
		return
	}

	draft := extract.Parse(text).FormDraft()

	if err := s.store.SaveDraft(draft); err != nil {
		s.logger.Error("failed to save extracted draft", "error", err.Error())
		http.Redirect(w, r, "/receipts/new?err=Error+processing+receipt", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/receipts/new?msg=Receipt+processed", http.StatusSeeOther)
}
