// Package config holds the settings of a retention run.
// Values come from defaults, an optional YAML file, command-line flags and
// the CSV_FILE environment variable.
package config

import (
	"fmt"
	"os"

	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/retention"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvCSVFile overrides the csv file path when set
const EnvCSVFile = "CSV_FILE"

// Config holds all settings for one run
type Config struct {
	// Input: exactly one of CSVFile or InputDir
	CSVFile  string `yaml:"csvFile"`
	InputDir string `yaml:"inputDir"`

	// Policy
	KeepVersions    int    `yaml:"keepVersions"`
	VersionReleases int    `yaml:"versionReleases"`
	VersionOrder    string `yaml:"versionOrder"`

	// Output
	Output        string `yaml:"output"`
	GPGKeyPath    string `yaml:"gpgKey"`
	GPGPassphrase string `yaml:"-"`
}

// Default returns a Config with the default keep window
func Default() *Config {
	return &Config{
		KeepVersions:    retention.DefaultVersionsToKeep,
		VersionReleases: retention.DefaultReleasesPerVersionToKeep,
		VersionOrder:    retention.OrderInsertion,
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.RingError{
			Type:    models.ErrInvalidConfig,
			Package: path,
			Err:     fmt.Errorf("failed to read config: %w", err),
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &models.RingError{
			Type:    models.ErrInvalidConfig,
			Package: path,
			Err:     fmt.Errorf("failed to parse config: %w", err),
		}
	}

	return cfg, nil
}

// ApplyEnv lets CSV_FILE take precedence over any configured csv path.
// It is ignored when a directory source is configured.
func (c *Config) ApplyEnv() bool {
	v := os.Getenv(EnvCSVFile)
	if v == "" {
		return false
	}
	if c.InputDir != "" {
		logrus.Warnf("Ignoring %s=%s, input directory %s is configured", EnvCSVFile, v, c.InputDir)
		return false
	}
	c.CSVFile = v
	return true
}

// Validate checks that the configuration describes a runnable job
func (c *Config) Validate() error {
	if c.CSVFile == "" && c.InputDir == "" {
		return &models.RingError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("no input: set --csv-file, %s or --input-dir", EnvCSVFile),
		}
	}
	if c.CSVFile != "" && c.InputDir != "" {
		return &models.RingError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("csv file and input directory are mutually exclusive"),
		}
	}
	if c.GPGKeyPath != "" && c.Output == "" {
		return &models.RingError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("signing requires --output"),
		}
	}
	if _, err := retention.OrderByName(c.VersionOrder); err != nil {
		return err
	}
	return c.Policy().Validate()
}

// Policy returns the retention policy described by c
func (c *Config) Policy() retention.Policy {
	return retention.Policy{
		VersionsToKeep:           c.KeepVersions,
		ReleasesPerVersionToKeep: c.VersionReleases,
	}
}

// Order returns the version ordering described by c
func (c *Config) Order() (retention.VersionOrder, error) {
	return retention.OrderByName(c.VersionOrder)
}
