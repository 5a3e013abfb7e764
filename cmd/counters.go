package cmd

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/spf13/cobra"
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Maintain the denormalized order and delivery counters",
}

var countersRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute total_orders, average_rating and total_deliveries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			n, err := a.svc.RefreshCounters(ctx)
			if err != nil {
				return err
			}
			output.Success("Refreshed counters on %d rows", n)
			return nil
		})
	},
}

func init() {
	countersCmd.AddCommand(countersRefreshCmd)
}
