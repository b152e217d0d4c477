package server

import (
	"net/http"

	"github.com/receiptvault/receiptvault/internal/receipt"
)

type settingsData struct {
	Settings   receipt.Settings
	Currencies []receipt.Currency
	Themes     []string
	Message    string
	Error      string
}

func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	data := settingsData{
		Settings:   s.store.Settings(),
		Currencies: receipt.Currencies(),
		Themes:     []string{"auto", "light", "dark"},
		Message:    r.URL.Query().Get("msg"),
		Error:      r.URL.Query().Get("err"),
	}

	s.render(w, "settings.html", data)
}

func (s *Server) saveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings := s.store.Settings()

	if theme := r.FormValue("theme"); theme != "" {
		settings.Theme = theme
	}

	if currency := receipt.Currency(r.FormValue("currency")); currency.Valid() {
		settings.Currency = currency
	}

	// Checkboxes only submit when checked, so rebuild each toggle map from
	// its known keys.
	services := make(map[string]bool, len(settings.Services))
	for name := range settings.Services {
		services[name] = r.FormValue("service_"+name) != ""
	}
	settings.Services = services

	notifications := make(map[string]bool, len(settings.Notifications))
	for name := range settings.Notifications {
		notifications[name] = r.FormValue("notification_"+name) != ""
	}
	settings.Notifications = notifications

	if err := s.store.SaveSettings(settings); err != nil {
		s.logger.Error("failed to save settings", "error", err.Error())
		http.Redirect(w, r, "/settings?err=Error+saving+settings", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/settings?msg=Settings+saved", http.StatusSeeOther)
}
