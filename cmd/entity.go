package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/chrisdamba/foodadmin/internal/repositories"
	"github.com/spf13/cobra"
)

var entityCmd = &cobra.Command{
	Use:     "entity",
	Aliases: []string{"entities"},
	Short:   "Create, list, update and delete customers, restaurants, orders, deliveries and delivery persons",
}

var (
	entityLimit  int
	entityOffset int
)

var entityListCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List the rows of an entity table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			items, err := a.svc.ListEntities(ctx, args[0], repositories.Page{Limit: entityLimit, Offset: entityOffset})
			if err != nil {
				return err
			}
			kind, err := models.ParseKind(args[0])
			if err != nil {
				return err
			}
			res, err := output.EntitiesResult(kind, items)
			if err != nil {
				return err
			}
			fmt.Println(output.RenderResult(res))
			output.Muted("%d %s", len(items), kind)
			return nil
		})
	},
}

var entityGetCmd = &cobra.Command{
	Use:   "get <kind> <id>",
	Short: "Show one row",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			item, err := a.svc.GetEntity(ctx, args[0], id)
			if err != nil {
				return err
			}
			res, err := output.EntitiesResult(item.Kind(), []models.Entity{item})
			if err != nil {
				return err
			}
			fmt.Println(output.RenderResult(res))
			return nil
		})
	},
}

var entityCreateCmd = &cobra.Command{
	Use:     "create <kind> field=value...",
	Short:   "Insert a row",
	Example: `  foodadmin entity create customers name=Ana email=ana@x.com is_premium=true`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			item, err := a.svc.CreateEntity(ctx, args[0], fields)
			if err != nil {
				return err
			}
			output.Success("Created %s %d", item.Kind(), item.PrimaryKey())
			return nil
		})
	},
}

var entityUpdateCmd = &cobra.Command{
	Use:     "update <kind> <id> <field> <value>",
	Short:   "Overwrite one field of a row",
	Example: `  foodadmin entity update restaurants 3 rating 4.5`,
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			n, err := a.svc.UpdateEntityField(ctx, args[0], id, args[2], args[3])
			if err != nil {
				return err
			}
			if n == 0 {
				output.Warning("No %s with id %d", args[0], id)
				return nil
			}
			output.Success("Updated %s of %s %d", args[2], args[0], id)
			return nil
		})
	},
}

var entityDeleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Delete a row",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			n, err := a.svc.DeleteEntity(ctx, args[0], id)
			if err != nil {
				return err
			}
			if n == 0 {
				output.Warning("No %s with id %d", args[0], id)
				return nil
			}
			output.Success("Deleted %s %d", args[0], id)
			return nil
		})
	},
}

func init() {
	entityListCmd.Flags().IntVar(&entityLimit, "limit", 0, "Maximum number of rows (0 lists all)")
	entityListCmd.Flags().IntVar(&entityOffset, "offset", 0, "Rows to skip")

	entityCmd.AddCommand(entityListCmd, entityGetCmd, entityCreateCmd, entityUpdateCmd, entityDeleteCmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", database.ErrInvalidInput, s)
	}
	return id, nil
}

// parseAssignments turns field=value arguments into a field map.
func parseAssignments(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected field=value, got %q", database.ErrInvalidInput, arg)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("%w: field %q given twice", database.ErrInvalidInput, key)
		}
		fields[key] = value
	}
	return fields, nil
}
