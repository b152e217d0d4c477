package receipt

// Settings is the session wide configuration. It is initialized with
// defaults, merged with any persisted override at startup and persisted on
// every save.
type Settings struct {
	Theme         string          `json:"theme"`
	Currency      Currency        `json:"currency"`
	Services      map[string]bool `json:"aiServices"`
	Notifications map[string]bool `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:    "auto",
		Currency: CurrencyUSD,
		Services: map[string]bool{
			"tesseract":    true,
			"googleVision": false,
			"azureVision":  false,
			"awsTextract":  false,
		},
		Notifications: map[string]bool{
			"warranty": true,
			"budget":   true,
		},
	}
}

// Merge layers a persisted override on top of s. The merge is shallow: a
// non-empty scalar wins and a non-nil map replaces the whole map, matching
// how the original client merged the stored settings blob.
func (s Settings) Merge(override Settings) Settings {
	merged := s

	if override.Theme != "" {
		merged.Theme = override.Theme
	}
	if override.Currency != "" {
		merged.Currency = override.Currency
	}
	if override.Services != nil {
		merged.Services = override.Services
	}
	if override.Notifications != nil {
		merged.Notifications = override.Notifications
	}

	return merged
}
