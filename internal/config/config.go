// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config provides configuration loading for the nandsim command.
// It supports loading from YAML files and environment variables.
//
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/db47h/nandsim/internal/asm"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultProgram computes the Fibonacci sequence in register X.
//
const DefaultProgram = "ONE ADD ADD ADD ADD ADD ADD ADD ADD ADD ADD ADD ADD"

// Config contains the settings of a simulation run.
//
type Config struct {
	// Tics is the number of clock cycles to run.
	Tics int `json:"tics" yaml:"tics" env:"NANDSIM_TICS"`

	// DumpEvery prints a hex dump every DumpEvery tics. 0 only dumps at the
	// end of the run.
	DumpEvery int `json:"dump_every" yaml:"dump_every" env:"NANDSIM_DUMP_EVERY"`

	// Program is the inline program source. It takes precedence over
	// ProgramFile.
	Program string `json:"program,omitempty" yaml:"program,omitempty" env:"NANDSIM_PROGRAM"`

	// ProgramFile is the path to a program source file.
	ProgramFile string `json:"program_file,omitempty" yaml:"program_file,omitempty" env:"NANDSIM_PROGRAM_FILE"`

	// Log contains logging settings.
	Log LogConfig `json:"log" yaml:"log"`
}

// LogConfig configures logging.
//
type LogConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" logs every tic, "trace" also logs circuit construction.
	Level string `json:"level" yaml:"level" env:"NANDSIM_LOG_LEVEL"`
}

// Default returns a Config with sensible defaults.
//
func Default() *Config {
	return &Config{
		Tics: 16,
		Log:  LogConfig{Level: "info"},
	}
}

// Load loads the configuration from the YAML file at path, if not empty, then
// applies environment overrides.
// Order: defaults -> config file -> environment variables
//
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
//
func (c *Config) Validate() error {
	if c.Tics < 0 {
		return errors.Errorf("tics must be >= 0, got %d", c.Tics)
	}
	if c.DumpEvery < 0 {
		return errors.Errorf("dump_every must be >= 0, got %d", c.DumpEvery)
	}
	if c.Program != "" {
		if _, err := asm.Parse(c.Program); err != nil {
			return errors.Wrap(err, "program")
		}
	}
	return nil
}

// Source returns the program source: Program if set, the contents of
// ProgramFile if set, DefaultProgram otherwise.
//
func (c *Config) Source() (string, error) {
	switch {
	case c.Program != "":
		return c.Program, nil
	case c.ProgramFile != "":
		data, err := os.ReadFile(c.ProgramFile)
		if err != nil {
			return "", errors.Wrap(err, "read program file")
		}
		return string(data), nil
	}
	return DefaultProgram, nil
}
