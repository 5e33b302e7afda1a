package graph

import (
	"errors"
	"strings"
	"testing"

	"github.com/soundprediction/patternrecall/pkg/types"
)

func testNodes() []types.Node {
	return []types.Node{
		{ID: "paper_1", Kind: types.PaperNode, Paper: &types.PaperAttrs{Quality: 0.8, CoreIdea: "transformer text classification"}},
		{ID: "paper_2", Kind: types.PaperNode, Paper: &types.PaperAttrs{Quality: 0.6, CoreIdea: "diffusion image generation"}},
		{ID: "domain_1", Kind: types.DomainNode, Domain: &types.DomainAttrs{Name: "nlp", Keywords: []string{"text", "language"}}},
		{ID: "idea_1", Kind: types.IdeaNode, Idea: &types.IdeaAttrs{Description: "transformer classification"}},
		{ID: "pattern_1", Kind: types.PatternNode, Pattern: &types.PatternAttrs{Name: "benchmark sweep", ClusterSize: 12}},
	}
}

func TestStoreNotLoaded(t *testing.T) {
	store := NewStore()
	if _, err := store.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Snapshot() error = %v, want ErrNotLoaded", err)
	}
}

func TestLoadAndNeighborQueries(t *testing.T) {
	store := NewStore()
	edges := []types.Edge{
		{Source: "paper_1", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.7},
		{Source: "paper_2", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.4},
		{Source: "idea_1", Target: "domain_1", Relation: types.BelongsTo, Weight: 0.5},
		{Source: "pattern_1", Target: "domain_1", Relation: types.WorksWellIn, Frequency: 9, Effectiveness: 0.12, Confidence: 0.45},
	}
	if err := store.Load(testNodes(), edges); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	snap, err := store.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	succ := snap.Successors("paper_1", types.UsesPattern)
	if len(succ) != 1 || succ[0].ID != "pattern_1" || succ[0].Edge.Quality != 0.7 {
		t.Errorf("Successors(paper_1, uses_pattern) = %+v", succ)
	}

	pred := snap.Predecessors("pattern_1", types.UsesPattern)
	if len(pred) != 2 || pred[0].ID != "paper_1" || pred[1].ID != "paper_2" {
		t.Errorf("Predecessors(pattern_1, uses_pattern) = %+v, want paper_1 then paper_2", pred)
	}

	papers := snap.NodesOfKind(types.PaperNode)
	if len(papers) != 2 || papers[0].ID != "paper_1" || papers[1].ID != "paper_2" {
		t.Errorf("NodesOfKind(paper) order = %v", papers)
	}

	if got := snap.Successors("paper_1", types.BelongsTo); len(got) != 0 {
		t.Errorf("Successors with unrelated relation = %+v, want empty", got)
	}
}

func TestDuplicateEdgeReplaces(t *testing.T) {
	edges := []types.Edge{
		{Source: "paper_1", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.3},
		{Source: "paper_2", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.4},
		{Source: "paper_1", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.9},
	}
	snap, err := BuildSnapshot(testNodes(), edges)
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}
	if snap.NumEdges() != 2 {
		t.Fatalf("NumEdges() = %d, want 2 after duplicate replacement", snap.NumEdges())
	}
	pred := snap.Predecessors("pattern_1", types.UsesPattern)
	if len(pred) != 2 {
		t.Fatalf("Predecessors = %+v, want 2 entries", pred)
	}
	// The replacement keeps the first write's adjacency position but
	// carries the later attributes.
	if pred[0].ID != "paper_1" || pred[0].Edge.Quality != 0.9 {
		t.Errorf("replaced edge = %+v, want paper_1 with quality 0.9", pred[0])
	}
}

func TestIntegrityErrorEnumeratesAllViolations(t *testing.T) {
	edges := []types.Edge{
		{Source: "paper_1", Target: "ghost_pattern", Relation: types.UsesPattern, Quality: 0.5},
		{Source: "ghost_idea", Target: "domain_1", Relation: types.BelongsTo, Weight: 0.5},
		{Source: "paper_1", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.5},
	}
	_, err := BuildSnapshot(testNodes(), edges)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("BuildSnapshot() error = %v, want *IntegrityError", err)
	}
	if len(ie.Violations) != 2 {
		t.Fatalf("violations = %d, want 2: %v", len(ie.Violations), ie.Violations)
	}
	msg := ie.Error()
	if !strings.Contains(msg, "ghost_pattern") || !strings.Contains(msg, "ghost_idea") {
		t.Errorf("Error() = %q, want every offending edge listed", msg)
	}

	// Load must not install a partial snapshot.
	store := NewStore()
	if err := store.Load(testNodes(), edges); err == nil {
		t.Fatal("Load() with bad edges succeeded, want error")
	}
	if _, err := store.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Snapshot() after failed load error = %v, want ErrNotLoaded", err)
	}
}

func TestEmptyGraph(t *testing.T) {
	snap, err := BuildSnapshot(nil, nil)
	if err != nil {
		t.Fatalf("BuildSnapshot(nil, nil) error = %v", err)
	}
	if snap.NumNodes() != 0 || snap.NumEdges() != 0 {
		t.Errorf("empty snapshot has %d nodes, %d edges", snap.NumNodes(), snap.NumEdges())
	}
	if got := snap.NodesOfKind(types.IdeaNode); len(got) != 0 {
		t.Errorf("NodesOfKind on empty snapshot = %v", got)
	}
}
