package export

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	internalExport "github.com/receiptvault/receiptvault/internal/export"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/store"
)

type exportCommand struct {
}

func NewCommand() cli.Command {
	return exportCommand{}
}

func (c exportCommand) Description() string {
	return "Writes a backup of the vault to a file"
}

var output string
var format string

func (c exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&output, "o", "", "output file (defaults to a dated backup name)")
	fs.StringVar(&format, "format", "json", "export format: json or csv")
}

func (c exportCommand) Run(_ *config.Config, s *store.Store, _ *logger.Logger, out io.Writer) error {
	now := time.Now()

	if output == "" {
		if format == "csv" {
			output = "receipts.csv"
		} else {
			output = internalExport.Filename(now)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", output, err)
	}
	defer f.Close()

	switch format {
	case "json":
		err = internalExport.JSON(f, s.List(), s.Settings(), now)
	case "csv":
		err = internalExport.CSV(f, s.List())
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("unable to export to %s: %w", output, err)
	}

	fmt.Fprintf(out, "Exported %d receipts to %s\n", s.Len(), output)

	return nil
}
