package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config holds defaults read from the file passed with --config. Flags set on
// the command line take precedence.
type Config struct {
	Trials      int    `yaml:"trials"`
	MaxLen      int    `yaml:"max_len"`
	MaxValue    int    `yaml:"max_value"`
	Seed        int64  `yaml:"seed"`
	Workers     int    `yaml:"workers"`
	MaxFailures int    `yaml:"max_failures"`
	LogLevel    string `yaml:"log_level"`
}

const configKey = "config"

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func configFrom(c *cli.Context) Config {
	cfg, _ := c.App.Metadata[configKey].(Config)
	return cfg
}

func intSetting(c *cli.Context, name string, fromFile int) int {
	if c.IsSet(name) || fromFile == 0 {
		return c.Int(name)
	}
	return fromFile
}

func stringSetting(c *cli.Context, name string, fromFile string) string {
	if c.IsSet(name) || fromFile == "" {
		return c.String(name)
	}
	return fromFile
}
