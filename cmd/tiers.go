package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List service tiers and their fee ranges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		tiers, err := loadTiers(cfg)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNOM\tFRAIS")
		for _, t := range tiers.All() {
			fmt.Fprintf(tw, "%s\t%s\t%.2f %% à %.2f %%\n", t.ID, t.Name, t.FeeMin*100, t.FeeMax*100)
		}
		return tw.Flush()
	},
}
