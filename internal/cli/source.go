package cli

import (
	"context"

	"github.com/ralt/rpmring/internal/config"
	"github.com/ralt/rpmring/internal/loader"
	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/retention"
	"github.com/ralt/rpmring/internal/scanner"
	"github.com/ralt/rpmring/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// sourceOptions holds the flags shared by every command that reads a catalog
type sourceOptions struct {
	configPath string
	flags      config.Config
}

func (o *sourceOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	f.StringVar(&o.configPath, "config", "", "YAML config file")

	// Input flags
	f.StringVarP(&o.flags.CSVFile, "csv-file", "c", "", "Hammer-cli csv export of the form id,rpm (.gz and .xz accepted). Or specify via "+config.EnvCSVFile)
	f.StringVarP(&o.flags.InputDir, "input-dir", "i", "", "Directory of .rpm files to catalog instead of a csv export")

	// Policy flags
	f.IntVar(&o.flags.KeepVersions, "keep-versions", retention.DefaultVersionsToKeep, "Number of versions to keep")
	f.IntVar(&o.flags.VersionReleases, "version-releases", retention.DefaultReleasesPerVersionToKeep, "Per version snapshot or release to keep")
	f.StringVar(&o.flags.VersionOrder, "version-order", retention.OrderInsertion, "How versions are ranked: insertion (last seen is newest) or numeric")
}

// resolve merges defaults, the config file, explicitly set flags and the
// environment, in increasing order of precedence
func (o *sourceOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logrus.Debugf("Loaded config from %s", o.configPath)
	}

	f := cmd.Flags()
	if f.Changed("csv-file") {
		cfg.CSVFile = o.flags.CSVFile
	}
	if f.Changed("input-dir") {
		cfg.InputDir = o.flags.InputDir
	}
	if f.Changed("keep-versions") {
		cfg.KeepVersions = o.flags.KeepVersions
	}
	if f.Changed("version-releases") {
		cfg.VersionReleases = o.flags.VersionReleases
	}
	if f.Changed("version-order") {
		cfg.VersionOrder = o.flags.VersionOrder
	}
	if f.Changed("output") {
		cfg.Output = o.flags.Output
	}
	if f.Changed("gpg-key") {
		cfg.GPGKeyPath = o.flags.GPGKeyPath
	}
	if f.Changed("gpg-passphrase") {
		cfg.GPGPassphrase = o.flags.GPGPassphrase
	}

	if cfg.ApplyEnv() {
		logrus.Debugf("Using %s from %s", cfg.CSVFile, config.EnvCSVFile)
	} else {
		logrus.Debugf("%s environment variable not set, processing input arguments instead", config.EnvCSVFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.Debugf("versions to keep: %d", cfg.KeepVersions)
	logrus.Debugf("releases per version to keep: %d", cfg.VersionReleases)
	return cfg, nil
}

// loadCatalog reads the configured source
func loadCatalog(ctx context.Context, cfg *config.Config) (*models.Catalog, error) {
	if cfg.InputDir != "" {
		logrus.Infof("Scanning directory: %s", cfg.InputDir)
		return scanner.NewFileSystemScanner().Catalog(ctx, cfg.InputDir)
	}

	logrus.Debugf("Processing %s", cfg.CSVFile)
	catalog, err := loader.LoadCSV(cfg.CSVFile)
	if err != nil {
		return nil, err
	}

	if sum, err := utils.CalculateChecksums(cfg.CSVFile); err == nil {
		logrus.Infof("Loaded %d records from %s (%d bytes, sha256 %s)", catalog.Len(), cfg.CSVFile, sum.Size, sum.SHA256)
	}

	return catalog, nil
}
