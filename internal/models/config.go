package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type SeedConfig struct {
	Customers       int       `mapstructure:"customers"`
	Restaurants     int       `mapstructure:"restaurants"`
	Orders          int       `mapstructure:"orders"`
	Deliveries      int       `mapstructure:"deliveries"`
	DeliveryPersons int       `mapstructure:"delivery_persons"`
	RandomSeed      int64     `mapstructure:"random_seed"` // 0 draws a fresh seed
	StartDate       time.Time `mapstructure:"start_date"`
}

// Count returns the configured seed size for kind.
func (s SeedConfig) Count(kind Kind) int {
	switch kind {
	case KindCustomer:
		return s.Customers
	case KindRestaurant:
		return s.Restaurants
	case KindOrder:
		return s.Orders
	case KindDelivery:
		return s.Deliveries
	case KindDeliveryPerson:
		return s.DeliveryPersons
	}
	return 0
}

type ExportConfig struct {
	Destination string `mapstructure:"destination"` // local or s3
	OutputPath  string `mapstructure:"output_path"`
	Folder      string `mapstructure:"folder"`
	Region      string `mapstructure:"region"`
	Bucket      string `mapstructure:"bucket"`
}

type Config struct {
	DatabaseURL string `mapstructure:"database_url"`
	DBHost      string `mapstructure:"db_host"`
	DBPort      int    `mapstructure:"db_port"`
	DBUser      string `mapstructure:"db_user"`
	DBPassword  string `mapstructure:"db_password"`
	DBName      string `mapstructure:"db_name"`
	DBSSLMode   string `mapstructure:"db_sslmode"`
	DBMaxConns  int32  `mapstructure:"db_max_conns"`

	LogLevel        string        `mapstructure:"log_level"`
	HTTPAddr        string        `mapstructure:"http_addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	Seed SeedConfig `mapstructure:"seed"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`

	Export ExportConfig `mapstructure:"export"`
}

// DSN returns database_url when set, otherwise a keyword/value connection
// string built from the db_* settings.
func (cfg *Config) DSN() string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

// Brokers splits the comma separated broker list.
func (cfg *Config) Brokers() []string {
	var out []string
	for _, b := range strings.Split(cfg.KafkaBrokerList, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// SetDefaults registers every configuration key on v so environment
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "foodadmin")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_conns", 10)

	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("seed.customers", 20)
	v.SetDefault("seed.restaurants", 10)
	v.SetDefault("seed.orders", 30)
	v.SetDefault("seed.deliveries", 30)
	v.SetDefault("seed.delivery_persons", 10)
	v.SetDefault("seed.random_seed", 0)
	v.SetDefault("seed.start_date", time.Now().AddDate(-1, 0, 0).Format(time.RFC3339))

	v.SetDefault("kafka_enabled", false)
	v.SetDefault("kafka_broker_list", "localhost:9092")
	v.SetDefault("kafka_topic", "foodadmin.changes")

	v.SetDefault("export.destination", "local")
	v.SetDefault("export.output_path", "exports")
	v.SetDefault("export.folder", "foodadmin")
	v.SetDefault("export.region", "us-east-1")
	v.SetDefault("export.bucket", "")
}

// LoadConfig reads the configuration through the global viper instance,
// which also carries the bound command line flags.
func LoadConfig(cfgFile string) (*Config, error) {
	return Load(viper.GetViper(), cfgFile)
}

func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix("FOODADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("foodadmin")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if config.Seed.StartDate.IsZero() {
		config.Seed.StartDate = time.Now().AddDate(-1, 0, 0)
	}

	return &config, nil
}
