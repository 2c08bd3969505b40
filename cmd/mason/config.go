// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mason/dfs"
	"github.com/katalvlaran/mason/mason"
)

// Config holds the analysis limits. It is read from the --config YAML file
// and overlaid by any flag set explicitly on the command line.
type Config struct {
	MaxPaths        int `yaml:"max_paths"`
	MaxLoops        int `yaml:"max_loops"`
	MaxVertices     int `yaml:"max_vertices"`
	MaxCombinations int `yaml:"max_combinations"`
	Concurrency     int `yaml:"concurrency"`
	// Verbosity is the klog -v level used when -v is not given.
	Verbosity int `yaml:"verbosity"`
}

func defaultConfig() Config {
	return Config{
		MaxPaths:        dfs.DefaultMaxPaths,
		MaxLoops:        dfs.DefaultMaxLoops,
		MaxCombinations: mason.DefaultMaxCombinations,
		Concurrency:     runtime.GOMAXPROCS(0),
	}
}

// loadConfig reads path over the defaults; an empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Concurrency < 0 || cfg.Verbosity < 0 {
		return cfg, errors.Errorf("config %s: concurrency and verbosity must be non-negative", path)
	}

	return cfg, nil
}

// options converts cfg into engine options.
func (c Config) options() []mason.Option {
	return []mason.Option{
		mason.WithConcurrency(c.Concurrency),
		mason.WithMaxCombinations(c.MaxCombinations),
		mason.WithExtractOptions(c.extractOptions()...),
	}
}

func (c Config) extractOptions() []dfs.Option {
	return []dfs.Option{
		dfs.WithMaxPaths(c.MaxPaths),
		dfs.WithMaxLoops(c.MaxLoops),
		dfs.WithMaxVertices(c.MaxVertices),
	}
}
