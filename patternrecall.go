package patternrecall

import (
	"log/slog"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/recall"
	"github.com/soundprediction/patternrecall/pkg/snapshot"
	"github.com/soundprediction/patternrecall/pkg/textsim"
)

// Client is the main entry point: a graph store plus the recall engine
// that queries it. One client is shared by all callers; per-query
// configuration travels with each Recall call.
type Client struct {
	store    *graph.Store
	sim      *textsim.Engine
	engine   *recall.Engine
	defaults config.RecallConfig
	logger   *slog.Logger
}

// NewClient creates a client with the given default recall
// configuration. A nil logger defaults to slog.Default().
func NewClient(defaults config.RecallConfig, logger *slog.Logger) (*Client, error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	store := graph.NewStore()
	sim := textsim.New()
	return &Client{
		store:    store,
		sim:      sim,
		engine:   recall.NewEngine(store, sim, logger),
		defaults: defaults,
		logger:   logger,
	}, nil
}

// LoadCollections builds a snapshot from decoded collections and
// installs it atomically. On error the previously installed snapshot,
// if any, keeps serving.
func (c *Client) LoadCollections(collections *snapshot.Collections) error {
	if err := c.store.Load(collections.Nodes, collections.Edges); err != nil {
		return err
	}
	snap, _ := c.store.Snapshot()
	c.logger.Info("snapshot loaded",
		"nodes", snap.NumNodes(),
		"edges", snap.NumEdges(),
	)
	return nil
}

// LoadDir reads nodes.json and edges.json from dir and installs the
// resulting snapshot.
func (c *Client) LoadDir(dir string) error {
	collections, err := snapshot.ReadDir(dir)
	if err != nil {
		return err
	}
	return c.LoadCollections(collections)
}

// LoadBadger reads a persisted snapshot from the Badger store at path
// and installs it.
func (c *Client) LoadBadger(path string) error {
	store, err := snapshot.OpenBadger(path)
	if err != nil {
		return err
	}
	defer store.Close()

	collections, err := store.Load()
	if err != nil {
		return err
	}
	return c.LoadCollections(collections)
}

// Stats reports the installed snapshot's size. A client with no
// snapshot reports loaded=false with zero counts.
func (c *Client) Stats() Stats {
	snap, err := c.store.Snapshot()
	if err != nil {
		return Stats{}
	}
	return Stats{Loaded: true, Nodes: snap.NumNodes(), Edges: snap.NumEdges()}
}

// Stats describes the installed snapshot.
type Stats struct {
	Loaded bool `json:"loaded"`
	Nodes  int  `json:"nodes"`
	Edges  int  `json:"edges"`
}
