package patternrecall

import (
	"context"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/snapshot"
	"github.com/soundprediction/patternrecall/pkg/types"
)

// PatternRecall is the interface the serving layer depends on. *Client
// is the canonical implementation; tests substitute their own.
type PatternRecall interface {
	// Recall returns the ranked pattern list for a query. A nil cfg
	// uses the implementation's defaults.
	Recall(ctx context.Context, query string, cfg *config.RecallConfig) ([]types.Result, error)

	// LoadCollections installs a new snapshot atomically.
	LoadCollections(collections *snapshot.Collections) error

	// LoadDir installs a snapshot from a directory of JSON files.
	LoadDir(dir string) error

	// Stats reports the installed snapshot's size.
	Stats() Stats
}

var _ PatternRecall = (*Client)(nil)
