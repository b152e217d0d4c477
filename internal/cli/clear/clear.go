package clear

import (
	"flag"
	"fmt"
	"io"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/store"
)

type clearCommand struct {
}

func NewCommand() cli.Command {
	return clearCommand{}
}

func (c clearCommand) Description() string {
	return "Deletes all receipts, settings and drafts. Irreversible"
}

var force bool

func (c clearCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&force, "f", false, "skip the confirmation prompt")
}

func (c clearCommand) Run(_ *config.Config, s *store.Store, _ *logger.Logger, out io.Writer) error {
	if !force {
		return fmt.Errorf("clearing deletes all data and cannot be undone, re-run with -f to confirm")
	}

	if err := s.Clear(); err != nil {
		return fmt.Errorf("unable to clear the vault: %w", err)
	}

	fmt.Fprintln(out, "All data cleared")

	return nil
}
