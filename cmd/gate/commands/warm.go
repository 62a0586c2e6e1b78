package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Precompute the constraint cache for every action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			if err := c.app.Warm(cmd.Context(), parallelism); err != nil {
				return err
			}

			routes, version := c.app.Routes()
			cmd.Printf("warmed %d actions at route table version %d\n", len(routes), version)
			return nil
		},
	}

	cmd.Flags().IntP("parallelism", "p", 0, "Concurrent lookups (0 = one per CPU)")
	return cmd
}
