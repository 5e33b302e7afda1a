package patternrecall

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soundprediction/patternrecall"
	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/server"
	"github.com/soundprediction/patternrecall/pkg/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the PatternRecall HTTP server",
	Long: `Start the PatternRecall HTTP server to provide REST API access to the recall engine.

The server provides endpoints for:
- Recalling ranked patterns for a query
- Reloading the graph snapshot
- Health checks

Configuration can be provided through config files, environment variables, or command-line flags.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// Server-specific flags
	serverCmd.Flags().String("host", "localhost", "Server host")
	serverCmd.Flags().Int("port", 8080, "Server port")
	serverCmd.Flags().String("mode", "debug", "Server mode (debug, release, test)")

	// Snapshot flags
	serverCmd.Flags().String("snapshot-dir", "", "Directory containing nodes.json and edges.json")
	serverCmd.Flags().String("snapshot-badger", "", "Path to a Badger store holding a persisted snapshot")

	// Telemetry flags
	serverCmd.Flags().String("telemetry-parquet-path", "", "Path to directory for query telemetry")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	overrideConfigWithFlags(cmd, cfg)

	// Validate configuration
	if err := validateServerConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, flushTelemetry, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer flushTelemetry()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	// Create and setup server
	srv := server.New(cfg, client, logger)
	srv.Setup()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received signal", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Shutdown server
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}
	return nil
}

func overrideConfigWithFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("snapshot-dir") {
		cfg.Snapshot.Dir, _ = cmd.Flags().GetString("snapshot-dir")
	}
	if cmd.Flags().Changed("snapshot-badger") {
		cfg.Snapshot.BadgerPath, _ = cmd.Flags().GetString("snapshot-badger")
	}
	if cmd.Flags().Changed("telemetry-parquet-path") {
		cfg.Telemetry.ParquetPath, _ = cmd.Flags().GetString("telemetry-parquet-path")
	}
}

func validateServerConfig(cfg *config.Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Server.Port)
	}
	if cfg.Snapshot.Dir == "" && cfg.Snapshot.BadgerPath == "" {
		return fmt.Errorf("a snapshot source is required (snapshot.dir or snapshot.badger_path)")
	}
	return nil
}

// buildLogger constructs the process logger. When a telemetry path is
// configured, query logs are additionally written as Parquet; the
// returned flush function drains the buffer on shutdown.
func buildLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level := parseLogLevel(cfg.Log.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	flush := func() {}
	if cfg.Telemetry.ParquetPath != "" {
		if err := os.MkdirAll(cfg.Telemetry.ParquetPath, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create telemetry directory: %w", err)
		}
		parquetHandler, err := telemetry.NewParquetHandler(handler, cfg.Telemetry.ParquetPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize query telemetry: %w", err)
		}
		handler = parquetHandler
		flush = func() {
			if err := parquetHandler.Flush(); err != nil {
				fmt.Fprintln(os.Stderr, "telemetry flush failed:", err)
			}
		}
	}

	return slog.New(handler), flush, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newClient builds a client and loads the configured snapshot source.
func newClient(cfg *config.Config, logger *slog.Logger) (*patternrecall.Client, error) {
	client, err := patternrecall.NewClient(cfg.Recall, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if cfg.Snapshot.BadgerPath != "" {
		if err := client.LoadBadger(cfg.Snapshot.BadgerPath); err != nil {
			return nil, fmt.Errorf("failed to load snapshot from badger: %w", err)
		}
	} else {
		if err := client.LoadDir(cfg.Snapshot.Dir); err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
	}
	return client, nil
}
