package server

import (
	"net/http"

	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/report"
)

type analyticsData struct {
	Report   report.Report
	Periods  []report.Period
	Selected report.Period
	Currency receipt.Currency
}

// analyticsHandler renders the four breakdowns the charts consume as
// label/value pairs.
func (s *Server) analyticsHandler(w http.ResponseWriter, r *http.Request) {
	period := report.ParsePeriod(r.URL.Query().Get("period"))

	data := analyticsData{
		Report:   report.Generate(s.store.List(), period, s.now()),
		Periods:  report.Periods(),
		Selected: period,
		Currency: s.store.Settings().Currency,
	}

	s.render(w, "analytics.html", data)
}
