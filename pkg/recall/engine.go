package recall

import (
	"context"
	"log/slog"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/textsim"
	"github.com/soundprediction/patternrecall/pkg/types"
	"github.com/soundprediction/patternrecall/pkg/utils"
)

// Engine runs three-path recall against a graph store. It retains no
// state between queries; one engine is safely shared by concurrent
// callers, each with their own configuration.
type Engine struct {
	store    *graph.Store
	sim      *textsim.Engine
	logger   *slog.Logger
	executor *utils.ConcurrentExecutor
}

// NewEngine creates an engine over the given store. A nil similarity
// engine defaults to the mixed-script tokenizer; a nil logger defaults
// to slog.Default().
func NewEngine(store *graph.Store, sim *textsim.Engine, logger *slog.Logger) *Engine {
	if sim == nil {
		sim = textsim.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:    store,
		sim:      sim,
		logger:   logger,
		executor: utils.NewConcurrentExecutor(3),
	}
}

// Recall runs the three paths against the current snapshot and fuses
// their scores. An empty query, or a query matching nothing, yields an
// empty result list rather than an error. The configuration is
// validated up front; an invalid one surfaces immediately.
func (e *Engine) Recall(ctx context.Context, query string, cfg config.RecallConfig) ([]types.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	snap, err := e.store.Snapshot()
	if err != nil {
		return nil, err
	}

	// The idea selection feeds both the idea path and the domain
	// path's idea-aggregation strategy, so it is computed once before
	// the paths fork.
	ideas := rankIdeas(snap, e.sim, query, cfg.TopKIdeas)

	var ideaScores, domainScores, paperScores map[string]float64
	errs := e.executor.Execute(ctx,
		func() error {
			ideaScores = ideaPathScores(ideas)
			return nil
		},
		func() error {
			domainScores = domainPathScores(snap, e.sim, query, ideas, cfg)
			return nil
		},
		func() error {
			paperScores = paperPathScores(snap, e.sim, query, cfg)
			return nil
		},
	)
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	results := fuse(snap, ideaScores, domainScores, paperScores, cfg)

	e.logger.Debug("recall complete",
		"ideas_selected", len(ideas),
		"idea_candidates", len(ideaScores),
		"domain_candidates", len(domainScores),
		"paper_candidates", len(paperScores),
		"results", len(results),
	)
	return results, nil
}
