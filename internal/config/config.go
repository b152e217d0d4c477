package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/receiptvault/receiptvault/internal/logger"
)

type Config struct {
	DBFile  string        `toml:"db_file"`
	Backend string        `toml:"backend"`
	Port    string        `toml:"port"`
	Logger  logger.Config `toml:"logger"`
}

const (
	defaultDBFile  = "receiptvault.db"
	defaultBackend = "bolt"
	defaultPort    = "8080"
)

func defaults() *Config {
	return &Config{
		DBFile:  defaultDBFile,
		Backend: defaultBackend,
		Port:    defaultPort,
		Logger: logger.Config{
			Level:  logger.LevelInfo,
			Format: logger.FormatText,
			Output: "stdout",
		},
	}
}

// Parse layers the optional TOML file and then the environment on top of
// the defaults. A missing file is fine; a malformed one is an error.
func Parse(file string) (*Config, error) {
	conf := defaults()

	if file != "" {
		bytes, err := os.ReadFile(file)
		if err == nil {
			if err = toml.Unmarshal(bytes, conf); err != nil {
				return nil, fmt.Errorf("unable to parse config file %s: %w", file, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	conf.parseEnv()

	return conf, nil
}

func (c *Config) parseEnv() {
	if db := os.Getenv("RECEIPTVAULT_DB"); db != "" {
		c.DBFile = db
	}

	if backend := os.Getenv("RECEIPTVAULT_STORAGE"); backend != "" {
		c.Backend = backend
	}

	if port := os.Getenv("RECEIPTVAULT_PORT"); port != "" {
		c.Port = port
	}

	if level := os.Getenv("RECEIPTVAULT_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("RECEIPTVAULT_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("RECEIPTVAULT_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}
