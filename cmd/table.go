package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:     "table",
	Aliases: []string{"tables"},
	Short:   "Inspect and edit database tables",
}

var tableListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tables of the public schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			names, err := a.svc.ListTables(ctx)
			if err != nil {
				return err
			}
			res := catalog.Result{Columns: []string{"table"}, Rows: make([][]any, 0, len(names))}
			for _, n := range names {
				res.Rows = append(res.Rows, []any{n})
			}
			fmt.Println(output.RenderResult(res))
			return nil
		})
	},
}

var tableShowCmd = &cobra.Command{
	Use:   "show <table>",
	Short: "Describe a table and print its rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			cols, err := a.svc.DescribeTable(ctx, args[0])
			if err != nil {
				return err
			}
			desc := catalog.Result{Columns: []string{"column", "type", "nullable", "default"}, Rows: make([][]any, 0, len(cols))}
			for _, c := range cols {
				var def any
				if c.Default != nil {
					def = *c.Default
				}
				desc.Rows = append(desc.Rows, []any{c.Name, c.DataType, c.Nullable, def})
			}
			output.Section(args[0])
			fmt.Println(output.RenderResult(desc))

			content, err := a.svc.TableContent(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Println(output.RenderResult(content))
			output.Muted("%d rows", len(content.Rows))
			return nil
		})
	},
}

var tableCreateCmd = &cobra.Command{
	Use:     "create <table> <column spec>",
	Short:   "Create a table",
	Example: `  foodadmin table create promotions "id SERIAL PRIMARY KEY, code VARCHAR(20) UNIQUE, percent NUMERIC(5,2)"`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.svc.CreateTable(ctx, args[0], args[1]); err != nil {
				return err
			}
			output.Success("Created table %s", args[0])
			return nil
		})
	},
}

var tableDropCmd = &cobra.Command{
	Use:   "drop <table>",
	Short: "Drop a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.svc.DropTable(ctx, args[0]); err != nil {
				return err
			}
			output.Success("Dropped table %s", args[0])
			return nil
		})
	},
}

var tableRenameCmd = &cobra.Command{
	Use:   "rename <table> <new name>",
	Short: "Rename a table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.svc.RenameTable(ctx, args[0], args[1]); err != nil {
				return err
			}
			output.Success("Renamed table %s to %s", args[0], args[1])
			return nil
		})
	},
}

var tableAddColumnCmd = &cobra.Command{
	Use:   "add-column <table> <column> <type>",
	Short: "Add a column to a table",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.svc.AddColumn(ctx, args[0], args[1], args[2]); err != nil {
				return err
			}
			output.Success("Added column %s %s to %s", args[1], args[2], args[0])
			return nil
		})
	},
}

var tableRenameColumnCmd = &cobra.Command{
	Use:   "rename-column <table> <column> <new name>",
	Short: "Rename a column (not supported)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.svc.RenameColumn(ctx, args[0], args[1], args[2])
		})
	},
}

var tableDropColumnCmd = &cobra.Command{
	Use:   "drop-column <table> <column>",
	Short: "Drop a column (not supported)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.svc.DropColumn(ctx, args[0], args[1])
		})
	},
}

var tableInsertCmd = &cobra.Command{
	Use:     "insert <table> column=value...",
	Short:   "Insert a row into any table",
	Example: `  foodadmin table insert promotions code=SPRING percent=12.5`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			n, err := a.svc.InsertRow(ctx, args[0], values)
			if err != nil {
				return err
			}
			output.Success("Inserted %d row into %s", n, args[0])
			return nil
		})
	},
}

func init() {
	tableCmd.AddCommand(
		tableListCmd,
		tableShowCmd,
		tableCreateCmd,
		tableDropCmd,
		tableRenameCmd,
		tableAddColumnCmd,
		tableRenameColumnCmd,
		tableDropColumnCmd,
		tableInsertCmd,
	)
}
