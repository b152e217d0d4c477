package importcmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/importutil"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/store"
)

type importCommand struct {
}

func NewCommand() cli.Command {
	return importCommand{}
}

func (c importCommand) Description() string {
	return "Replaces the vault with a backup file"
}

var file string

func (c importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&file, "f", "", "backup file to import")
}

func (c importCommand) Run(_ *config.Config, s *store.Store, log *logger.Logger, out io.Writer) error {
	if file == "" {
		return fmt.Errorf("you must provide a backup file to import")
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", file, err)
	}
	defer f.Close()

	receipts, settings, err := importutil.Import(f)
	if err != nil {
		return fmt.Errorf("unable to import %s: %w", file, err)
	}

	if err = s.Replace(receipts); err != nil {
		return fmt.Errorf("unable to store imported receipts: %w", err)
	}

	if settings != nil {
		merged := s.Settings().Merge(*settings)
		if err = s.SaveSettings(merged); err != nil {
			log.Warn("failed to import settings", "error", err.Error())
		}
	}

	fmt.Fprintf(out, "Imported %d receipts from %s\n", len(receipts), file)

	return nil
}
