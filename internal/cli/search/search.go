package search

import (
	"flag"
	"fmt"
	"io"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/filter"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/receipt"
	"github.com/receiptvault/receiptvault/internal/store"
	"github.com/receiptvault/receiptvault/internal/util"
)

type searchCommand struct {
}

func NewCommand() cli.Command {
	return searchCommand{}
}

func (c searchCommand) Description() string {
	return "Search receipts"
}

var keyword string
var categoryName string
var verbose bool

func (c searchCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&keyword, "k", "", "keyword to match against title, store, category and notes")
	fs.StringVar(&categoryName, "category", "", "restrict the search to one category")
	fs.BoolVar(&verbose, "v", false, "show notes and tags")
}

func (c searchCommand) Run(_ *config.Config, s *store.Store, _ *logger.Logger, out io.Writer) error {
	if keyword == "" && categoryName == "" {
		return fmt.Errorf("you must provide a keyword or a category to search for")
	}

	f := &filter.ReceiptFilter{}
	if keyword != "" {
		f.Search = &keyword
	}
	if categoryName != "" {
		category := receipt.Category(categoryName)
		if !category.Valid() {
			return fmt.Errorf("unknown category: %s", categoryName)
		}
		f.Category = &category
	}

	results := filter.Apply(s.List(), f)
	if len(results) == 0 {
		fmt.Fprintln(out, "No receipts found")
		return nil
	}

	var total int64
	for _, r := range results {
		total += r.Amount

		amount := util.ColorOutput(util.FormatCurrency(r.Amount, r.Currency), "green", "bold")
		fmt.Fprintf(out, "%s  %s (%s)  %s  %s\n", r.Date, r.Title, r.Store, string(r.Category), amount)

		if verbose {
			if len(r.Tags) > 0 {
				fmt.Fprintf(out, "    tags: %v\n", r.Tags)
			}
			if r.Notes != "" {
				fmt.Fprintf(out, "    %s\n", r.Notes)
			}
		}
	}

	fmt.Fprintf(out, "\n%d receipts, %s total\n", len(results), util.ColorOutput(util.FormatCurrency(total, s.Settings().Currency), "cyan"))

	return nil
}
