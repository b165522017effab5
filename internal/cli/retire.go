package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ralt/rpmring/internal/config"
	"github.com/ralt/rpmring/internal/models"
	"github.com/ralt/rpmring/internal/retention"
	"github.com/ralt/rpmring/internal/signer"
	"github.com/ralt/rpmring/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRetireCmd creates the retire command
func NewRetireCmd() *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   "retire",
		Short: "Print the ids of builds outside the retention window",
		Long: `Groups the catalog by package name and version, keeps the newest
--keep-versions versions of each package and, within each kept version, the
newest --version-releases snapshot builds and a single primary build. Every
other id is printed to stdout as one comma separated line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			return runRetire(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	opts.addFlags(cmd)

	// Output flags
	cmd.Flags().StringVarP(&opts.flags.Output, "output", "o", "", "Also write the id list to this file")
	cmd.Flags().StringVarP(&opts.flags.GPGKeyPath, "gpg-key", "k", "", "Path to GPG private key; writes <output>.asc and <output>.pub")
	cmd.Flags().StringVarP(&opts.flags.GPGPassphrase, "gpg-passphrase", "p", "", "GPG key passphrase")

	return cmd
}

func runRetire(ctx context.Context, out io.Writer, cfg *config.Config) error {
	// Fail on a bad key before reading any input
	var gpgSigner signer.Signer
	if cfg.GPGKeyPath != "" {
		s, err := signer.NewGPGSigner(cfg.GPGKeyPath, cfg.GPGPassphrase)
		if err != nil {
			return &models.RingError{
				Type: models.ErrSigning,
				Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
			}
		}
		gpgSigner = s
		logrus.Info("GPG signer initialized")
	}

	order, err := cfg.Order()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	var retired []string
	idx, err := retention.BuildIndex(catalog)
	switch {
	case errors.Is(err, retention.ErrNoInput):
		logrus.Warn("No packages in input, nothing to retire")
	case err != nil:
		return err
	default:
		res, err := retention.Select(idx, cfg.Policy(), order)
		if err != nil {
			return err
		}
		retired = res.Retired
		logrus.Infof("%d package names, %d unparseable entries skipped", idx.Len(), len(idx.Skipped()))
		logrus.Infof("Retiring %d ids: %d whole versions, %d releases, %d duplicate primaries",
			len(retired), res.RetiredVersions, res.RetiredReleases, res.RetiredDuplicates)
	}

	if len(retired) == 0 {
		logrus.Debug("No packages to retire")
	} else if logrus.IsLevelEnabled(logrus.DebugLevel) {
		for _, id := range retired {
			filename, _ := catalog.Get(id)
			logrus.Debugf("Package %s will be retired", filename)
		}
	}

	return writeResult(out, cfg, retired, gpgSigner)
}

// writeResult prints the comma separated ids and, when configured, writes
// them to the output file (gzip or xz compressed by extension) with an
// optional detached signature and the armored public key next to it
func writeResult(out io.Writer, cfg *config.Config, ids []string, s signer.Signer) error {
	line := strings.Join(ids, ",")
	if _, err := fmt.Fprintln(out, line); err != nil {
		return &models.RingError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to write result: %w", err),
		}
	}

	if cfg.Output == "" {
		return nil
	}

	data, err := utils.CompressForName([]byte(line+"\n"), cfg.Output)
	if err != nil {
		return &models.RingError{
			Type:    models.ErrFileOp,
			Package: cfg.Output,
			Err:     fmt.Errorf("failed to compress retire list: %w", err),
		}
	}
	if err := utils.WriteFile(cfg.Output, data, 0644); err != nil {
		return &models.RingError{
			Type:    models.ErrFileOp,
			Package: cfg.Output,
			Err:     fmt.Errorf("failed to write retire list: %w", err),
		}
	}
	logrus.Infof("Retire list written to %s (sha256 %s)", cfg.Output, utils.CalculateChecksum(data))

	if s == nil {
		return nil
	}

	// The signature covers the bytes on disk, compressed or not
	signature, err := s.SignDetached(data)
	if err != nil {
		return &models.RingError{
			Type:    models.ErrSigning,
			Package: cfg.Output,
			Err:     err,
		}
	}

	sigPath := cfg.Output + ".asc"
	if err := utils.WriteFile(sigPath, signature, 0644); err != nil {
		return &models.RingError{
			Type:    models.ErrFileOp,
			Package: sigPath,
			Err:     fmt.Errorf("failed to write signature: %w", err),
		}
	}
	logrus.Infof("Signature written to %s", sigPath)

	publicKey, err := s.GetPublicKey()
	if err != nil {
		return &models.RingError{
			Type:    models.ErrSigning,
			Package: cfg.Output,
			Err:     fmt.Errorf("failed to export public key: %w", err),
		}
	}

	keyPath := cfg.Output + ".pub"
	if err := utils.WriteFile(keyPath, publicKey, 0644); err != nil {
		return &models.RingError{
			Type:    models.ErrFileOp,
			Package: keyPath,
			Err:     fmt.Errorf("failed to write public key: %w", err),
		}
	}
	logrus.Infof("Public key written to %s", keyPath)

	return nil
}
