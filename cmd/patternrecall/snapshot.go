package patternrecall

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soundprediction/patternrecall/pkg/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Convert snapshots between JSON directories and Badger stores",
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import [json-dir] [badger-path]",
	Short: "Import a JSON snapshot directory into a Badger store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		collections, err := snapshot.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}

		store, err := snapshot.OpenBadger(args[1])
		if err != nil {
			return fmt.Errorf("failed to open badger store: %w", err)
		}
		defer store.Close()

		if err := store.Save(collections); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		fmt.Printf("Imported %d nodes and %d edges into %s\n",
			len(collections.Nodes), len(collections.Edges), args[1])
		return nil
	},
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export [badger-path] [json-dir]",
	Short: "Export a Badger store back to a JSON snapshot directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := snapshot.OpenBadger(args[0])
		if err != nil {
			return fmt.Errorf("failed to open badger store: %w", err)
		}
		defer store.Close()

		collections, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}

		if err := snapshot.WriteDir(args[1], collections); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("Exported %d nodes and %d edges to %s\n",
			len(collections.Nodes), len(collections.Edges), args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
}
