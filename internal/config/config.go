// Package config loads guildscore's runtime configuration from
// environment variables (optionally via a local .env file), the way
// the teacher repo's internal/config package does.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"guildscore/internal/apperr"
)

// Config represents the complete application configuration.
type Config struct {
	Data        DataConfig
	Calibration CalibrationConfig
	Store       StoreConfig
}

// DataConfig holds file system paths to the reference corpus.
type DataConfig struct {
	PlantsPath    string // xlsx workbook
	OrganismsPath string
	FungiPath     string
	TreePath      string // gob-encoded compact rooted tree
	LookupDir     string // directory of delimited lookup tables
}

// CalibrationConfig holds calibration-pipeline defaults.
type CalibrationConfig struct {
	ArtifactPath   string
	SampleSize     int
	GuildSizePair  int
	GuildSizeFull  int
	Seed           int64
	MaxConcurrency int
}

// StoreConfig holds the optional Postgres calibration store DSN.
type StoreConfig struct {
	PostgresDSN string // empty disables the Postgres-backed store
}

// Load reads configuration from the environment, loading a local .env
// file first when present (mirrors the teacher's dev workflow).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Data: DataConfig{
			PlantsPath:    getEnvOrDefault("GUILDSCORE_PLANTS_PATH", "testdata/plants.xlsx"),
			OrganismsPath: getEnvOrDefault("GUILDSCORE_ORGANISMS_PATH", "testdata/organisms.xlsx"),
			FungiPath:     getEnvOrDefault("GUILDSCORE_FUNGI_PATH", "testdata/fungi.xlsx"),
			TreePath:      getEnvOrDefault("GUILDSCORE_TREE_PATH", "testdata/phylo_tree.gob"),
			LookupDir:     getEnvOrDefault("GUILDSCORE_LOOKUP_DIR", "testdata/lookups"),
		},
		Calibration: CalibrationConfig{
			ArtifactPath:   getEnvOrDefault("GUILDSCORE_CALIBRATION_PATH", "calibration.json"),
			SampleSize:     getEnvIntOrDefault("GUILDSCORE_SAMPLE_SIZE", 20000),
			GuildSizePair:  getEnvIntOrDefault("GUILDSCORE_GUILD_SIZE_PAIR", 2),
			GuildSizeFull:  getEnvIntOrDefault("GUILDSCORE_GUILD_SIZE_FULL", 7),
			Seed:           getEnvInt64OrDefault("GUILDSCORE_SEED", 42),
			MaxConcurrency: getEnvIntOrDefault("GUILDSCORE_MAX_CONCURRENCY", 8),
		},
		Store: StoreConfig{
			PostgresDSN: os.Getenv("GUILDSCORE_POSTGRES_DSN"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, apperr.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Calibration.SampleSize <= 0 {
		return apperr.ConfigInvalid("GUILDSCORE_SAMPLE_SIZE must be positive")
	}
	if cfg.Calibration.MaxConcurrency <= 0 {
		return apperr.ConfigInvalid("GUILDSCORE_MAX_CONCURRENCY must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
