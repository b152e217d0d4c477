package server

import (
	"net/http"

	"github.com/receiptvault/receiptvault/internal/filter"
	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/report"
)

const recentReceipts = 10

type dashboardData struct {
	Report   report.Report
	Recent   []receipt.Receipt
	Currency receipt.Currency
	Message  string
	Error    string
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	receipts := s.store.List()

	data := dashboardData{
		Report:   report.Generate(receipts, report.PeriodAll, s.now()),
		Currency: s.store.Settings().Currency,
		Message:  r.URL.Query().Get("msg"),
		Error:    r.URL.Query().Get("err"),
	}

	recent := filter.Apply(receipts, nil)
	if len(recent) > recentReceipts {
		recent = recent[:recentReceipts]
	}
	data.Recent = recent

	s.render(w, "dashboard.html", data)
}
