package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Block explorer (Esplora API) settings
	Explorer ExplorerConfig

	// Result file settings
	Output OutputConfig

	// API server configuration
	API APIConfig

	// Logging configuration
	Log LogConfig
}

// ExplorerConfig holds the upstream explorer endpoints per network
type ExplorerConfig struct {
	MainnetURL     string        `envconfig:"EXPLORER_MAINNET_URL" default:"https://mempool.space/api"`
	TestnetURL     string        `envconfig:"EXPLORER_TESTNET_URL" default:"https://mempool.space/testnet/api"`
	RequestTimeout time.Duration `envconfig:"EXPLORER_REQUEST_TIMEOUT" default:"30s"`
	UserAgent      string        `envconfig:"EXPLORER_USER_AGENT" default:"btc-balance/1.0"`
}

// OutputConfig holds settings for the balance result file
type OutputConfig struct {
	Dir string `envconfig:"OUTPUT_DIR" default:"."`
}

// APIConfig holds API server settings
type APIConfig struct {
	Host            string        `envconfig:"API_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"API_PORT" default:"8081"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"35s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"30s"`
	RateLimitRPS    int           `envconfig:"API_RATE_LIMIT_RPS" default:"10"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
	Output string `envconfig:"LOG_OUTPUT" default:"stderr"`
}

// Load loads configuration from an optional .env file and environment variables.
// Variables already present in the environment win over the .env file.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
