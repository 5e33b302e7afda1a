package patternrecall

import (
	"context"
	"time"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/telemetry"
	"github.com/soundprediction/patternrecall/pkg/types"
)

// Recall runs three-path recall for the query against the current
// snapshot. A nil cfg uses the client's default configuration. The
// result list is at most cfg.FinalTopK long; an empty list is the
// valid "no confident match" outcome, not an error.
func (c *Client) Recall(ctx context.Context, query string, cfg *config.RecallConfig) ([]types.Result, error) {
	effective := c.defaults
	if cfg != nil {
		effective = *cfg
	}

	start := time.Now()
	results, err := c.engine.Recall(ctx, query, effective)
	if err != nil {
		c.logger.Error("recall failed",
			telemetry.AttrQuery, query,
			"error", err,
		)
		return nil, err
	}

	c.logger.Info("recall served",
		telemetry.AttrQuery, query,
		telemetry.AttrLatency, time.Since(start),
		telemetry.AttrResults, int64(len(results)),
	)
	return results, nil
}
