package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	nodesFile = "nodes.json"
	edgesFile = "edges.json"
)

// ReadDir loads a snapshot from a directory holding nodes.json and
// edges.json as written by the offline pipeline. Collection order is
// the file order.
func ReadDir(dir string) (*Collections, error) {
	nodeData, err := os.ReadFile(filepath.Join(dir, nodesFile))
	if err != nil {
		return nil, fmt.Errorf("reading nodes: %w", err)
	}
	edgeData, err := os.ReadFile(filepath.Join(dir, edgesFile))
	if err != nil {
		return nil, fmt.Errorf("reading edges: %w", err)
	}

	var nodeRecs []nodeRecord
	if err := json.Unmarshal(nodeData, &nodeRecs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", nodesFile, err)
	}
	var edgeRecs []edgeRecord
	if err := json.Unmarshal(edgeData, &edgeRecs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", edgesFile, err)
	}

	c := &Collections{}
	for _, rec := range nodeRecs {
		n, err := decodeNode(rec)
		if err != nil {
			return nil, err
		}
		c.Nodes = append(c.Nodes, n)
	}
	for _, rec := range edgeRecs {
		e, err := decodeEdge(rec)
		if err != nil {
			return nil, err
		}
		c.Edges = append(c.Edges, e)
	}
	return c, nil
}

// WriteDir persists a snapshot as nodes.json and edges.json under dir,
// creating it if needed.
func WriteDir(dir string, c *Collections) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	nodeRecs := make([]nodeRecord, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		rec, err := encodeNode(n)
		if err != nil {
			return err
		}
		nodeRecs = append(nodeRecs, rec)
	}
	edgeRecs := make([]edgeRecord, 0, len(c.Edges))
	for _, e := range c.Edges {
		rec, err := encodeEdge(e)
		if err != nil {
			return err
		}
		edgeRecs = append(edgeRecs, rec)
	}

	nodeData, err := json.MarshalIndent(nodeRecs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding nodes: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, nodesFile), nodeData, 0o644); err != nil {
		return fmt.Errorf("writing nodes: %w", err)
	}

	edgeData, err := json.MarshalIndent(edgeRecs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding edges: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, edgesFile), edgeData, 0o644); err != nil {
		return fmt.Errorf("writing edges: %w", err)
	}
	return nil
}
