package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	GMO      GMOConfig      `mapstructure:"gmo"`
	Log      LogConfig      `mapstructure:"log"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Backfill BackfillConfig `mapstructure:"backfill"`
}

// SyncConfig controls the incremental sync and the average-price workflow.
type SyncConfig struct {
	// Symbol is the traded symbol mirrored into the sink (e.g. "BTC").
	Symbol string `mapstructure:"symbol"`
	// AssetSymbols is the set of balances recorded by the assets snapshot.
	AssetSymbols []string `mapstructure:"asset_symbols"`

	// Seed for the position fold when the positions table holds no checkpoint yet.
	// An empty table means "start from this externally acquired position",
	// which is not the same as starting from zero.
	InitialSize     float64 `mapstructure:"initial_size"`
	InitialAvgPrice float64 `mapstructure:"initial_avg_price"`
}

type BackfillConfig struct {
	// Delay between successive per-order requests. GMO throttles per API key,
	// so the importer never fires two fetches closer than this.
	Delay time.Duration `mapstructure:"delay"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Support environment variables with dot notation (e.g., GMO_PRIVATE_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("sync.symbol", "BTC")
	v.SetDefault("sync.asset_symbols", []string{"JPY", "BTC"})
	v.SetDefault("backfill.delay", time.Second)

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
