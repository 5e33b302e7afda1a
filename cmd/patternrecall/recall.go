package patternrecall

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/soundprediction/patternrecall/pkg/config"
)

var recallCmd = &cobra.Command{
	Use:   "recall [query]",
	Short: "Run a single recall query against a snapshot",
	Long: `Load a snapshot, run one recall query and print the ranked patterns as JSON.

Useful for offline pipelines and for inspecting what a query would return
without starting the HTTP server.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecall,
}

func init() {
	rootCmd.AddCommand(recallCmd)

	recallCmd.Flags().String("snapshot-dir", "", "Directory containing nodes.json and edges.json")
	recallCmd.Flags().String("snapshot-badger", "", "Path to a Badger store holding a persisted snapshot")
	recallCmd.Flags().Int("top-k", 0, "Number of patterns to return (0 uses the configured default)")
	recallCmd.Flags().Duration("timeout", 30*time.Second, "Query timeout")
}

func runRecall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("snapshot-dir") {
		cfg.Snapshot.Dir, _ = cmd.Flags().GetString("snapshot-dir")
	}
	if cmd.Flags().Changed("snapshot-badger") {
		cfg.Snapshot.BadgerPath, _ = cmd.Flags().GetString("snapshot-badger")
	}
	if topK, _ := cmd.Flags().GetInt("top-k"); topK > 0 {
		cfg.Recall.FinalTopK = topK
	}
	if cfg.Snapshot.Dir == "" && cfg.Snapshot.BadgerPath == "" {
		return fmt.Errorf("a snapshot source is required (snapshot.dir or snapshot.badger_path)")
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

	timeout, _ := cmd.Flags().GetDuration("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	query := strings.Join(args, " ")
	results, err := client.Recall(ctx, query, nil)
	if err != nil {
		return fmt.Errorf("recall failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
