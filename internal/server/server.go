package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/store"
	"github.com/receiptvault/receiptvault/internal/util"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server wires the UI routes to the receipt store. It owns the application
// state explicitly; there is no shared global.
type Server struct {
	store     *store.Store
	logger    *logger.Logger
	templates *template.Template

	// now is swappable so period windows are deterministic in tests.
	now func() time.Time
}

func New(s *store.Store, log *logger.Logger) (http.Handler, *Server, error) {
	funcs := template.FuncMap{
		"money": func(cents int64, currency receipt.Currency) string {
			return util.FormatCurrency(cents, currency)
		},
		"amount": receipt.FormatAmount,
	}

	templates, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, nil, err
	}

	server := &Server{
		store:     s,
		logger:    log,
		templates: templates,
		now:       time.Now,
	}

	mux := &http.ServeMux{}

	mux.HandleFunc("GET /{$}", server.dashboardHandler)

	mux.HandleFunc("GET /receipts", server.receiptsHandler)
	mux.HandleFunc("GET /receipts/new", server.newReceiptHandler)
	mux.HandleFunc("POST /receipts", server.createReceiptHandler)
	mux.HandleFunc("POST /receipts/draft", server.saveDraftHandler)
	mux.HandleFunc("GET /receipts/{id}/edit", server.editReceiptHandler)
	mux.HandleFunc("POST /receipts/{id}/delete", server.deleteReceiptHandler)

	mux.HandleFunc("GET /analytics", server.analyticsHandler)

	mux.HandleFunc("GET /settings", server.settingsHandler)
	mux.HandleFunc("POST /settings", server.saveSettingsHandler)

	mux.HandleFunc("GET /scan", server.scanFormHandler)
	mux.HandleFunc("POST /scan", server.scanHandler)

	mux.HandleFunc("GET /export", server.exportHandler)
	mux.HandleFunc("GET /export/csv", server.exportCSVHandler)
	mux.HandleFunc("POST /import", server.importHandler)

	mux.HandleFunc("POST /clear", server.clearHandler)

	return mux, server, nil
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("error rendering template", "template", name, "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
