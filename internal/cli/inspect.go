package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ralt/rpmring/internal/config"
	"github.com/ralt/rpmring/internal/retention"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how the catalog is grouped and which versions the policy keeps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			return runInspect(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runInspect(ctx context.Context, out io.Writer, cfg *config.Config) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	idx, err := retention.BuildIndex(catalog)
	if errors.Is(err, retention.ErrNoInput) {
		fmt.Fprintln(out, "catalog is empty")
		return nil
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tWINDOW\tPRIMARY\tRELEASES")
	for _, name := range idx.Names() {
		for i, v := range order.Order(idx.Versions(name)) {
			b, _ := idx.Bucket(name, v)

			window := "keep"
			if i >= cfg.KeepVersions {
				window = "retire"
			}

			releases := make([]string, 0, len(b.Releases))
			for _, r := range b.Releases {
				releases = append(releases, fmt.Sprintf("%s(%s)", r.ID, r.Label))
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, v, window,
				dashIfEmpty(strings.Join(b.PrimaryIDs, ",")),
				dashIfEmpty(strings.Join(releases, ",")))
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if skipped := idx.Skipped(); len(skipped) > 0 {
		fmt.Fprintf(out, "\nunparseable ids: %s\n", strings.Join(skipped, ","))
	}

	return nil
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
