package scan

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/extract"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/store"
	"github.com/receiptvault/receiptvault/internal/util"
)

type scanCommand struct {
}

func NewCommand() cli.Command {
	return scanCommand{}
}

func (c scanCommand) Description() string {
	return "Parses recognized receipt text into a draft for the entry form"
}

var file string

func (c scanCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&file, "f", "", "file with the text an OCR engine recognized")
}

func (c scanCommand) Run(_ *config.Config, s *store.Store, _ *logger.Logger, out io.Writer) error {
	if file == "" {
		return fmt.Errorf("you must provide a file with recognized text")
	}

	text, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", file, err)
	}

	draft := extract.Parse(string(text)).FormDraft()
	if err = s.SaveDraft(draft); err != nil {
		return fmt.Errorf("unable to save draft: %w", err)
	}

	fmt.Fprintln(out, util.ColorOutput("Extracted draft", "bold"))
	fmt.Fprintf(out, "Store: %s\n", draft.Store)
	fmt.Fprintf(out, "Amount: %s\n", draft.Amount)
	fmt.Fprintf(out, "Date: %s\n", draft.Date)
	fmt.Fprintf(out, "Category: %s\n", draft.Category)

	return nil
}
