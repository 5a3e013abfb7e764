package cmd

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write query results or table contents to parquet",
}

var exportQueryCmd = &cobra.Command{
	Use:   "query <id>",
	Short: "Export the result of a catalog query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			location, err := a.svc.ExportQuery(ctx, args[0])
			if err != nil {
				return err
			}
			output.Success("Exported %s to %s", args[0], location)
			return nil
		})
	},
}

var exportTableCmd = &cobra.Command{
	Use:   "table <table>",
	Short: "Export every row of a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			location, err := a.svc.ExportTable(ctx, args[0])
			if err != nil {
				return err
			}
			output.Success("Exported %s to %s", args[0], location)
			return nil
		})
	},
}

func init() {
	exportCmd.AddCommand(exportQueryCmd, exportTableCmd)
}
