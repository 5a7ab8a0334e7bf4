// Package config loads run options for the codegraph CLI: a RepoRoots
// list, the snapshot output path, and the logging verbosity, layered as
// YAML file defaults overridden by CLI flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duyhunghd6/codegraph/output"
)

// Config holds the resolved run configuration for a build invocation.
type Config struct {
	RepoRoots    []string              `yaml:"repo_roots"`
	SnapshotPath string                `yaml:"snapshot_path"`
	Verbosity    output.VerbosityLevel `yaml:"-"`
}

// fileConfig is the YAML shape; Verbosity is read as a level name
// ("verbose", "debug") and mapped by parseVerbosity, since
// output.VerbosityLevel is a plain int.
type fileConfig struct {
	RepoRoots    []string `yaml:"repo_roots"`
	SnapshotPath string   `yaml:"snapshot_path"`
	Verbosity    string   `yaml:"verbosity"`
}

// DefaultConfig returns a Config with the engine's defaults: no repo
// roots, a snapshot.bin in the working directory, default verbosity.
func DefaultConfig() *Config {
	return &Config{
		SnapshotPath: "snapshot.bin",
		Verbosity:    output.VerbosityDefault,
	}
}

// Load reads path (a `.codegraph.yaml`-shaped file) if it exists, falling
// back silently to defaults when it doesn't. A present but malformed
// file is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if len(fc.RepoRoots) > 0 {
		cfg.RepoRoots = fc.RepoRoots
	}
	if fc.SnapshotPath != "" {
		cfg.SnapshotPath = fc.SnapshotPath
	}
	if fc.Verbosity != "" {
		cfg.Verbosity = parseVerbosity(fc.Verbosity)
	}

	return cfg, nil
}

func parseVerbosity(s string) output.VerbosityLevel {
	switch s {
	case "debug":
		return output.VerbosityDebug
	case "verbose":
		return output.VerbosityVerbose
	default:
		return output.VerbosityDefault
	}
}

// ApplyFlags overrides cfg's fields with any non-zero-value CLI flags,
// which always win over the YAML file.
func (c *Config) ApplyFlags(repoRoots []string, snapshotPath string, verbosity output.VerbosityLevel) {
	if len(repoRoots) > 0 {
		c.RepoRoots = repoRoots
	}
	if snapshotPath != "" {
		c.SnapshotPath = snapshotPath
	}
	if verbosity != output.VerbosityDefault {
		c.Verbosity = verbosity
	}
}
