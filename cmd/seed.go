package cmd

import (
	"context"

	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill empty tables with generated data",
	Long:  `seed inserts the configured number of generated rows into every empty entity table. Tables that already hold rows are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			var (
				bar     *progressbar.ProgressBar
				current models.Kind
			)
			a.seeder.OnProgress(func(kind models.Kind, done, total int) {
				if kind != current || bar == nil {
					current = kind
					bar = progressbar.Default(int64(total), "Seeding "+kind.String())
				}
				_ = bar.Set(done)
			})

			results, err := a.svc.Seed(ctx)
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Inserted == 0 {
					output.Muted("%s already populated, skipped", r.Kind)
					continue
				}
				output.Success("Seeded %d %s", r.Inserted, r.Kind)
			}
			return nil
		})
	},
}
