package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/chrisdamba/foodadmin/internal/catalog"
	"github.com/chrisdamba/foodadmin/internal/dashboard"
	"github.com/chrisdamba/foodadmin/internal/database"
	"github.com/chrisdamba/foodadmin/internal/events"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/logging"
	"github.com/chrisdamba/foodadmin/internal/models"
	"github.com/chrisdamba/foodadmin/internal/output"
	"github.com/chrisdamba/foodadmin/internal/repositories/postgres"
	"github.com/chrisdamba/foodadmin/internal/schemaeditor"
	"github.com/chrisdamba/foodadmin/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "foodadmin",
	Short: "Manages the data of a food delivery platform",
	Long: `foodadmin keeps the customers, restaurants, orders, deliveries and delivery
persons of a food delivery platform in PostgreSQL. It seeds empty tables with
synthetic data, runs a fixed catalog of analytical queries and edits the schema
through validated operations, over HTTP or from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"database-url":      "database_url",
	"log-level":         "log_level",
	"http-addr":         "http_addr",
	"kafka-enabled":     "kafka_enabled",
	"kafka-broker-list": "kafka_broker_list",
	"export-to":         "export.destination",
	"output-path":       "export.output_path",
	"bucket":            "export.bucket",
	"seed":              "seed.random_seed",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./foodadmin.yaml or $HOME/foodadmin.yaml)")
	flags.String("database-url", "", "PostgreSQL connection string (overrides the db_* settings)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("http-addr", ":8080", "Address the HTTP API listens on")
	flags.Bool("kafka-enabled", false, "Publish change events to Kafka")
	flags.String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	flags.String("export-to", "local", "Export destination: local or s3")
	flags.String("output-path", "exports", "Directory for local exports")
	flags.String("bucket", "", "S3 bucket for exports")
	flags.Int64("seed", 0, "Random seed for generated data (0 picks one)")

	for flag, key := range flagKeys {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}

	rootCmd.AddCommand(serveCmd, seedCmd, entityCmd, queryCmd, tableCmd, exportCmd, countersCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

// app holds everything a command needs once configuration is loaded.
type app struct {
	config    *models.Config
	logger    *slog.Logger
	pool      *pgxpool.Pool
	seeder    *seed.Seeder
	publisher events.Publisher
	svc       *dashboard.Service
}

// setup loads configuration, connects, ensures the schema and wires the
// dashboard service.
func setup(ctx context.Context) (context.Context, *app, error) {
	config, err := models.LoadConfig(cfgFile)
	if err != nil {
		return ctx, nil, fmt.Errorf("error loading config: %w", err)
	}
	logger := logging.New(config.LogLevel)
	ctx = logging.IntoContext(ctx, logger)

	pool, err := database.Connect(ctx, config)
	if err != nil {
		return ctx, nil, err
	}
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return ctx, nil, err
	}

	publisher, err := events.New(config)
	if err != nil {
		pool.Close()
		return ctx, nil, err
	}
	exporter, err := export.New(ctx, config.Export)
	if err != nil {
		publisher.Close()
		pool.Close()
		return ctx, nil, err
	}

	stores := postgres.NewStores(pool)
	seeder := seed.NewSeeder(pool, stores, config)
	svc := dashboard.New(dashboard.Deps{
		DB:        pool,
		Stores:    stores,
		Catalog:   catalog.New(pool),
		Editor:    schemaeditor.New(pool),
		Seeder:    seeder,
		Counters:  postgres.NewCounterRepository(pool),
		Publisher: publisher,
		Exporter:  exporter,
	})

	return ctx, &app{
		config:    config,
		logger:    logger,
		pool:      pool,
		seeder:    seeder,
		publisher: publisher,
		svc:       svc,
	}, nil
}

func (a *app) Close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Warn("failed to close publisher", "error", err)
	}
	a.pool.Close()
}

// withApp runs fn with a ready app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx, a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
