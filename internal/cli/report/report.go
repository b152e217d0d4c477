package report

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"path"
	"sort"
	"text/template"
	"time"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/logger"
	internalReport "github.com/receiptvault/receiptvault/internal/report"
	"github.com/receiptvault/receiptvault/internal/store"
	"github.com/receiptvault/receiptvault/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
}

func NewCommand() cli.Command {
	return reportCommand{}
}

func (c reportCommand) Description() string {
	return "Displays spending totals and breakdowns for a period"
}

var period string

func (c reportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&period, "period", "all", "period to report on: all, month, quarter or year")
}

type row struct {
	Name   string
	Amount int64
}

type reportData struct {
	Report     internalReport.Report
	Categories []row
	Payments   []row
}

func (c reportCommand) Run(_ *config.Config, s *store.Store, _ *logger.Logger, out io.Writer) error {
	r := internalReport.Generate(s.List(), internalReport.ParsePeriod(period), time.Now())

	data := reportData{Report: r}

	for category, amount := range r.Categories {
		data.Categories = append(data.Categories, row{Name: string(category), Amount: amount})
	}
	sortRows(data.Categories)

	for method, amount := range r.Payments {
		data.Payments = append(data.Payments, row{Name: string(method), Amount: amount})
	}
	sortRows(data.Payments)

	currency := s.Settings().Currency
	funcs := template.FuncMap{
		"money": func(cents int64) string {
			return util.FormatCurrency(cents, currency)
		},
		"colorOutput": util.ColorOutput,
	}

	tmpl, err := content.ReadFile(path.Join("templates", "report.tmpl"))
	if err != nil {
		return err
	}

	t := template.Must(template.New("report.tmpl").Funcs(funcs).Parse(string(tmpl)))
	if err = t.Execute(out, data); err != nil {
		return fmt.Errorf("unable to render report: %w", err)
	}

	return nil
}

func sortRows(rows []row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount > rows[j].Amount
	})
}
