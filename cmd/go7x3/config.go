package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that may be given in a YAML file via --config.
//
// Command line flags take precedence over any value set here.
type Config struct {
	Symbols   string `yaml:"symbols"`   // comma separated origin symbols
	Output    string `yaml:"output"`    // listing pathname used by the menu
	Catalog   string `yaml:"catalog"`   // badger catalog dir; empty for none
	Verbosity int    `yaml:"verbosity"` // klog -v level
	Color     bool   `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Symbols: "1,2,3,4,5,6,7",
		Output:  "Output.txt",
		Color:   true,
	}
}

// LoadConfig reads the given YAML file over DefaultConfig().  An empty pathname returns the defaults.
func LoadConfig(pathname string) (Config, error) {
	cfg := DefaultConfig()
	if pathname == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(pathname)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", pathname)
	}
	if cfg.Symbols == "" {
		cfg.Symbols = DefaultConfig().Symbols
	}
	if cfg.Output == "" {
		cfg.Output = DefaultConfig().Output
	}
	return cfg, nil
}
