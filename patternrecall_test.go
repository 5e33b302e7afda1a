package patternrecall

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/snapshot"
	"github.com/soundprediction/patternrecall/pkg/types"
)

func fixtureClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(config.DefaultRecallConfig(), nil)
	require.NoError(t, err)

	collections := &snapshot.Collections{
		Nodes: []types.Node{
			{ID: "idea_A", Kind: types.IdeaNode, Idea: &types.IdeaAttrs{
				Description: "transformer text classification",
				Patterns:    []types.PatternRelevance{{PatternID: "pattern_1", Relevance: 0.8}},
			}},
			{ID: "idea_B", Kind: types.IdeaNode, Idea: &types.IdeaAttrs{
				Description: "diffusion image generation",
				Patterns:    []types.PatternRelevance{{PatternID: "pattern_2", Relevance: 0.9}},
			}},
			{ID: "paper_1", Kind: types.PaperNode, Paper: &types.PaperAttrs{Quality: 0.85, CoreIdea: "transformer text classification benchmark"}},
			{ID: "domain_1", Kind: types.DomainNode, Domain: &types.DomainAttrs{Name: "nlp", Keywords: []string{"text", "classification"}}},
			{ID: "pattern_1", Kind: types.PatternNode, Pattern: &types.PatternAttrs{Name: "benchmark sweep", Summary: "evaluate across many benchmarks", ClusterSize: 14, Coherence: 0.7}},
			{ID: "pattern_2", Kind: types.PatternNode, Pattern: &types.PatternAttrs{Name: "ablation cascade", ClusterSize: 6, Coherence: 0.6}},
		},
		Edges: []types.Edge{
			{Source: "paper_1", Target: "pattern_1", Relation: types.UsesPattern, Quality: 0.75},
			{Source: "idea_A", Target: "domain_1", Relation: types.BelongsTo, Weight: 0.9},
			{Source: "pattern_1", Target: "domain_1", Relation: types.WorksWellIn, Frequency: 12, Effectiveness: 0.15, Confidence: 0.6},
		},
	}
	require.NoError(t, client.LoadCollections(collections))
	return client
}

func TestClientRecallEndToEnd(t *testing.T) {
	client := fixtureClient(t)

	results, err := client.Recall(context.Background(), "transformer for text classification", nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "pattern_1", results[0].PatternID)
	assert.Equal(t, "benchmark sweep", results[0].Pattern.Name)
	assert.Equal(t, 14, results[0].Pattern.ClusterSize)
	assert.Greater(t, results[0].FinalScore, 0.0)

	// All three paths should have contributed for this query.
	b := results[0].Breakdown
	assert.Greater(t, b.Idea.Score, 0.0)
	assert.Greater(t, b.Domain.Score, 0.0)
	assert.Greater(t, b.Paper.Score, 0.0)
	assert.InDelta(t, 100.0, b.Idea.Percent+b.Domain.Percent+b.Paper.Percent, 1e-9)

	for _, r := range results {
		assert.NotEqual(t, "pattern_2", r.PatternID, "unrelated pattern must not outrank or appear for this query")
	}
}

func TestClientRecallBeforeLoad(t *testing.T) {
	client, err := NewClient(config.DefaultRecallConfig(), nil)
	require.NoError(t, err)

	_, err = client.Recall(context.Background(), "query", nil)
	assert.ErrorIs(t, err, graph.ErrNotLoaded)
}

func TestClientRejectsInvalidDefaults(t *testing.T) {
	bad := config.DefaultRecallConfig()
	bad.FinalTopK = -1
	_, err := NewClient(bad, nil)
	var ce *config.ConfigurationError
	assert.ErrorAs(t, err, &ce)
}

func TestClientPerCallConfigOverride(t *testing.T) {
	client := fixtureClient(t)

	cfg := config.DefaultRecallConfig()
	cfg.FinalTopK = 1
	results, err := client.Recall(context.Background(), "transformer for text classification", &cfg)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestClientStats(t *testing.T) {
	client, err := NewClient(config.DefaultRecallConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, client.Stats())

	client = fixtureClient(t)
	stats := client.Stats()
	assert.True(t, stats.Loaded)
	assert.Equal(t, 6, stats.Nodes)
	assert.Equal(t, 3, stats.Edges)
}

func TestClientSnapshotSwap(t *testing.T) {
	client := fixtureClient(t)

	replacement := &snapshot.Collections{
		Nodes: []types.Node{
			{ID: "idea_C", Kind: types.IdeaNode, Idea: &types.IdeaAttrs{
				Description: "graph neural retrieval",
				Patterns:    []types.PatternRelevance{{PatternID: "pattern_3", Relevance: 1.0}},
			}},
			{ID: "pattern_3", Kind: types.PatternNode, Pattern: &types.PatternAttrs{Name: "pipeline diagram", ClusterSize: 3}},
		},
	}
	require.NoError(t, client.LoadCollections(replacement))

	results, err := client.Recall(context.Background(), "graph neural retrieval", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pattern_3", results[0].PatternID)

	// A failed reload keeps the old snapshot serving.
	broken := &snapshot.Collections{
		Edges: []types.Edge{{Source: "ghost", Target: "pattern_3", Relation: types.UsesPattern}},
	}
	err = client.LoadCollections(broken)
	var ie *graph.IntegrityError
	require.ErrorAs(t, err, &ie)

	results, err = client.Recall(context.Background(), "graph neural retrieval", nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
