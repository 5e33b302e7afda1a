package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/patternrecall/pkg/types"
)

func fixtureCollections() *Collections {
	return &Collections{
		Nodes: []types.Node{
			{ID: "paper_1", Kind: types.PaperNode, Paper: &types.PaperAttrs{Quality: 0.8, CoreIdea: "transformer text classification"}},
			{ID: "domain_1", Kind: types.DomainNode, Domain: &types.DomainAttrs{Name: "nlp", Keywords: []string{"text", "language"}}},
			{ID: "idea_1", Kind: types.IdeaNode, Idea: &types.IdeaAttrs{
				Description: "transformer classification",
				Patterns:    []types.PatternRelevance{{PatternID: "pattern_1", Relevance: 0.7}},
			}},
			{ID: "pattern_1", Kind: types.PatternNode, Pattern: &types.PatternAttrs{Name: "benchmark sweep", Summary: "sweep many benchmarks", ClusterSize: 12, Coherence: 0.65}},
		},
		Edges: []types.Edge{
			{Source: "paper_1", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.7},
			{Source: "idea_1", Target: "domain_1", Relation: types.BelongsTo, Weight: 0.5},
			{Source: "pattern_1", Target: "domain_1", Relation: types.WorksWellIn, Frequency: 9, Effectiveness: -0.05, Confidence: 0.45},
		},
	}
}

func TestJSONRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	want := fixtureCollections()

	require.NoError(t, WriteDir(dir, want))
	got, err := ReadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, want.Nodes, got.Nodes)
	assert.Equal(t, want.Edges, got.Edges)
}

func TestDecodeNodeUnknownType(t *testing.T) {
	_, err := decodeNode(nodeRecord{ID: "x", Type: "episode"})
	assert.ErrorIs(t, err, types.ErrUnknownNodeKind)
}

func TestDecodeNodeCaseInsensitiveType(t *testing.T) {
	n, err := decodeNode(nodeRecord{ID: "p", Type: "Paper", Attributes: []byte(`{"quality":0.5,"core_idea":"x"}`)})
	require.NoError(t, err)
	assert.Equal(t, types.PaperNode, n.Kind)
	require.NotNil(t, n.Paper)
	assert.Equal(t, 0.5, n.Paper.Quality)
}

func TestDecodeEdgeNegativeEffectiveness(t *testing.T) {
	e, err := decodeEdge(edgeRecord{
		Source: "pattern_1", Target: "domain_1", Relation: "works_well_in",
		Attributes: []byte(`{"frequency":3,"effectiveness":-0.2,"confidence":0.15}`),
	})
	require.NoError(t, err)
	assert.Equal(t, -0.2, e.Effectiveness)
	assert.Equal(t, 0.15, e.Confidence)
	assert.NoError(t, e.Validate())
}

func TestBadgerRoundTripPreservesOrder(t *testing.T) {
	store, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	want := fixtureCollections()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want.Nodes, got.Nodes)
	assert.Equal(t, want.Edges, got.Edges)

	// A second save replaces the snapshot instead of appending.
	smaller := &Collections{Nodes: want.Nodes[:1]}
	require.NoError(t, store.Save(smaller))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Len(t, got.Nodes, 1)
	assert.Empty(t, got.Edges)
}
