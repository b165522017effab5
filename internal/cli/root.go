package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EnvLogLevel sets the log level when --verbose is not given
const EnvLogLevel = "LOG_LEVEL"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rpmring",
		Short: "Compute which RPM builds in a repository catalog are stale",
		Long: `Rpmring reads a catalog of RPM builds (id,filename pairs exported from a
repository manager, or a directory of .rpm files) and prints the ids that
fall outside the retention window, ready to feed a deletion API.

The window keeps the most recent versions of every package and, inside each
kept version, the most recent snapshot or rebuild releases. Nothing is
deleted by rpmring itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
				return
			}

			level := logrus.InfoLevel
			if v := os.Getenv(EnvLogLevel); v != "" {
				parsed, err := logrus.ParseLevel(v)
				if err != nil {
					logrus.Warnf("Ignoring %s=%q: %v", EnvLogLevel, v, err)
				} else {
					level = parsed
				}
			}
			logrus.SetLevel(level)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewRetireCmd())
	rootCmd.AddCommand(NewInspectCmd())

	return rootCmd
}
