package cli

import (
	"flag"
	"io"

	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/store"
)

// Command is a CLI subcommand. Run writes human readable output to out so
// tests can capture it.
type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(conf *config.Config, s *store.Store, log *logger.Logger, out io.Writer) error
}
