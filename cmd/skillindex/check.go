package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillindex/pkg/catalog"
	"github.com/jingkaihe/skillindex/pkg/config"
	"github.com/jingkaihe/skillindex/pkg/presenter"
)

func newCheckCmd(cfg *config.Config, p presenter.Presenter) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the catalog file is up to date",
		Long: `Rebuild the catalog in memory and compare it with the existing catalog file.
Only the skills and categories are compared; updatedAt is ignored. Exits non-zero
when the file is missing or stale, which makes it suitable for CI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			existing, err := catalog.Read(cfg.Output)
			if err != nil {
				return err
			}

			fresh, err := buildCatalog(cmd.Context(), *cfg, time.Now())
			if err != nil {
				return errors.Wrap(err, "failed to index skills")
			}

			if !catalog.Equivalent(existing, fresh) {
				return errors.Errorf("catalog %s is out of date, run skillindex to regenerate it", cfg.Output)
			}

			p.Success("Catalog " + cfg.Output + " is up to date")
			return nil
		},
	}
}
