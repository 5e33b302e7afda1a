package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Snapshot configuration
	Snapshot SnapshotConfig `mapstructure:"snapshot"`

	// Telemetry configuration
	Telemetry TelemetryConfig `mapstructure:"telemetry"`

	// Recall configuration
	Recall RecallConfig `mapstructure:"recall"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// SnapshotConfig holds graph snapshot source configuration.
type SnapshotConfig struct {
	// Dir is a directory containing nodes.json and edges.json as
	// produced by the offline pipeline.
	Dir string `mapstructure:"dir"`
	// BadgerPath, when set, points at a Badger store holding a
	// persisted snapshot; it takes precedence over Dir.
	BadgerPath string `mapstructure:"badger_path"`
}

// TelemetryConfig holds telemetry configuration.
type TelemetryConfig struct {
	ParquetPath string `mapstructure:"parquet_path"`
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(config)

	if err := config.Recall.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	// Snapshot defaults
	viper.SetDefault("snapshot.dir", "./snapshot")
	viper.SetDefault("snapshot.badger_path", "")

	// Recall defaults
	d := DefaultRecallConfig()
	viper.SetDefault("recall.top_k_ideas", d.TopKIdeas)
	viper.SetDefault("recall.top_k_domains", d.TopKDomains)
	viper.SetDefault("recall.top_k_papers", d.TopKPapers)
	viper.SetDefault("recall.idea_weight", d.IdeaWeight)
	viper.SetDefault("recall.domain_weight", d.DomainWeight)
	viper.SetDefault("recall.paper_weight", d.PaperWeight)
	viper.SetDefault("recall.final_top_k", d.FinalTopK)
	viper.SetDefault("recall.paper_similarity_threshold", d.PaperSimilarityThreshold)
	viper.SetDefault("recall.effectiveness_floor", d.EffectivenessFloor)
	viper.SetDefault("recall.confidence_saturation", d.ConfidenceSaturation)
	viper.SetDefault("recall.domain_strategy", string(d.DomainStrategy))

	// Telemetry defaults
	home, err := os.UserHomeDir()
	if err == nil {
		viper.SetDefault("telemetry.parquet_path", fmt.Sprintf("%s/.patternrecall/telemetry", home))
	}
}

// overrideWithEnv overrides config with environment variables.
func overrideWithEnv(config *Config) {
	if dir := os.Getenv("SNAPSHOT_DIR"); dir != "" {
		config.Snapshot.Dir = dir
	}
	if path := os.Getenv("SNAPSHOT_BADGER_PATH"); path != "" {
		config.Snapshot.BadgerPath = path
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if path := os.Getenv("TELEMETRY_PARQUET_PATH"); path != "" {
		config.Telemetry.ParquetPath = path
	}
}
