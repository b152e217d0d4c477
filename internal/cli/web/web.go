package web

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/server"
	"github.com/receiptvault/receiptvault/internal/store"
)

type webCommand struct {
}

func NewCommand() cli.Command {
	return webCommand{}
}

func (c webCommand) Description() string {
	return "Web interface"
}

var port string
var timeout int

const defaultTimeout = 3

func (c webCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&port, "p", "", "port (overrides configuration)")
	fs.IntVar(&timeout, "t", defaultTimeout, "read header timeout in seconds")
}

func (c webCommand) Run(conf *config.Config, s *store.Store, log *logger.Logger, out io.Writer) error {
	handler, _, err := server.New(s, log)
	if err != nil {
		return fmt.Errorf("unable to set up server: %w", err)
	}

	if port == "" {
		port = conf.Port
	}

	fmt.Fprintf(out, "Open the vault on http://localhost:%s\n", port)
	log.Info("starting server", "port", port)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		ReadHeaderTimeout: time.Duration(timeout) * time.Second,
		Handler:           handler,
	}
	return srv.ListenAndServe()
}
