package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillindex/pkg/config"
	"github.com/jingkaihe/skillindex/pkg/presenter"
)

func newListCmd(cfg *config.Config, p presenter.Presenter) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the skills that would be indexed",
		Long:  `List every skill the catalog would contain, without writing the catalog file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildCatalog(cmd.Context(), *cfg, time.Now())
			if err != nil {
				return err
			}

			if len(c.Skills) == 0 {
				p.Info("No skills found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSLUG\tCATEGORY\tDESCRIPTION")
			fmt.Fprintln(tw, "----\t----\t--------\t-----------")

			for _, skill := range c.Skills {
				description := skill.Description
				if len(description) > 60 {
					description = description[:57] + "..."
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, skill.Slug, skill.Category, description)
			}
			return tw.Flush()
		},
	}
}
