package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/chrisdamba/foodadmin/internal/tui"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"queries"},
	Short:   "Run the catalog of dashboard and insight queries",
}

var queryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available queries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		queries := catalog.List()
		res := catalog.Result{Columns: []string{"id", "group", "title"}, Rows: make([][]any, 0, len(queries))}
		for _, q := range queries {
			res.Rows = append(res.Rows, []any{q.ID, q.Group, q.Title})
		}
		fmt.Println(output.RenderResult(res))
		return nil
	},
}

var queryRunCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run one query and print its result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runQuery(ctx, a, args[0])
		})
	},
}

var queryPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a query interactively and run it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, ok, err := tui.PickQuery(catalog.List())
		if err != nil {
			return err
		}
		if !ok {
			output.Muted("No query selected")
			return nil
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return runQuery(ctx, a, q.ID)
		})
	},
}

func init() {
	queryCmd.AddCommand(queryListCmd, queryRunCmd, queryPickCmd)
}

func runQuery(ctx context.Context, a *app, id string) error {
	res, err := a.svc.RunQuery(ctx, id)
	if err != nil {
		return err
	}
	if q, ok := catalog.Lookup(id); ok {
		output.Section(q.Title)
	}
	fmt.Println(output.RenderResult(res))
	output.Muted("%d rows", len(res.Rows))
	return nil
}
