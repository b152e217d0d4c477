package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/receiptvault/receiptvault/internal/cli"
	"github.com/receiptvault/receiptvault/internal/cli/clear"
	exportCmd "github.com/receiptvault/receiptvault/internal/cli/export"
	importCmd "github.com/receiptvault/receiptvault/internal/cli/import"
	"github.com/receiptvault/receiptvault/internal/cli/report"
	"github.com/receiptvault/receiptvault/internal/cli/scan"
	"github.com/receiptvault/receiptvault/internal/cli/search"
	"github.com/receiptvault/receiptvault/internal/cli/web"
	"github.com/receiptvault/receiptvault/internal/config"
	"github.com/receiptvault/receiptvault/internal/logger"
	"github.com/receiptvault/receiptvault/internal/storage"
	"github.com/receiptvault/receiptvault/internal/storage/bolt"
	"github.com/receiptvault/receiptvault/internal/storage/sqlite"
	"github.com/receiptvault/receiptvault/internal/store"
)

var configPath string

var subcommands = map[string]cli.Command{
	"web":    web.NewCommand(),
	"report": report.NewCommand(),
	"search": search.NewCommand(),
	"import": importCmd.NewCommand(),
	"export": exportCmd.NewCommand(),
	"scan":   scan.NewCommand(),
	"clear":  clear.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for name, command := range subcommands {
		fset := flag.NewFlagSet(name, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "receiptvault.toml", "Configuration file")

		command.SetFlags(fset)

		subcommandsFlagSets[name] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Printf("unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	if err := subcommandsFlagSets[commandName].Parse(os.Args[2:]); err != nil {
		fmt.Printf("unable to parse flags: %s\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Printf("unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)

	st, err := openStorage(conf)
	if err != nil {
		log.Fatal("unable to open storage", "backend", conf.Backend, "file", conf.DBFile, "error", err.Error())
	}

	s, err := store.New(st)
	if err != nil {
		// The store falls back to a usable state, so a load error only
		// warrants a warning.
		log.Warn("problem loading persisted data", "error", err.Error())
	}

	runErr := command.Run(conf, s, log, os.Stdout)

	if err = st.Close(); err != nil {
		log.Error("unable to close storage", "error", err.Error())
	}

	if runErr != nil {
		log.Fatal("command failed", "command", commandName, "error", runErr.Error())
	}
}

func openStorage(conf *config.Config) (storage.Storage, error) {
	switch conf.Backend {
	case "sqlite":
		return sqlite.New(conf.DBFile)
	case "", "bolt":
		return bolt.New(conf.DBFile)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", conf.Backend)
	}
}

func printHelp() {
	printUsage()

	for name, command := range subcommands {
		fmt.Printf("subcommand <%s>: %s\n", name, command.Description())
		subcommandsFlagSets[name].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: receiptvault <subcommand> [flags]\n\n")
}
