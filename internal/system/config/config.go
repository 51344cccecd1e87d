// Released under an MIT license. See LICENSE.

// Package config loads the console's settings from a YAML file.
package config

import (
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Location of the settings file relative to the XDG config directories.
const Location = "avm1scope/config.yaml"

// T (config) holds the settings.
type T struct {
	Continuation string `yaml:"continuation"`
	History      string `yaml:"history"`
	LogLevel     string `yaml:"log_level"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	Prompt       string `yaml:"prompt"`
}

type config = T

// Default returns the settings used when there is no file.
func Default() *config {
	return &config{
		Continuation: "> ",
		LogLevel:     "warning",
		MaxCallDepth: 256,
		Prompt:       "avm1> ",
	}
}

// Load reads the settings in path. If path is empty the XDG config
// directories are searched and, if no file is found, defaults are used.
func Load(path string) (*config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(Location)
		if err != nil {
			log.WithField("location", Location).Debug("no config file")

			return Default(), nil
		}

		path = found
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	defer f.Close()

	return Read(f, path)
}

// Read reads settings from r. Unset fields keep their defaults.
func Read(r io.Reader, name string) (*config, error) {
	c := Default()

	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "config: %s", name)
	}

	if c.MaxCallDepth <= 0 {
		return nil, errors.Errorf("config: %s: max_call_depth must be positive", name)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return nil, errors.Wrapf(err, "config: %s", name)
	}

	return c, nil
}

// Level returns the configured log level.
func (c *config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}

	return l
}
