package recall

import (
	"sort"

	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/textsim"
	"github.com/soundprediction/patternrecall/pkg/types"
)

// ideaMatch is one idea selected by query similarity. The domain path
// reuses the selection for its idea-aggregation strategy, so it is
// computed once per query.
type ideaMatch struct {
	ID         string
	Similarity float64
	Attrs      *types.IdeaAttrs
}

// rankIdeas scores every idea against the query and keeps the top k
// with nonzero similarity. Ties break by ascending idea id.
func rankIdeas(snap *graph.Snapshot, sim *textsim.Engine, query string, k int) []ideaMatch {
	var matches []ideaMatch
	for _, n := range snap.NodesOfKind(types.IdeaNode) {
		s := sim.Similarity(query, n.Text())
		if s > 0 {
			matches = append(matches, ideaMatch{ID: n.ID, Similarity: s, Attrs: n.Idea})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// ideaPathScores expands the selected ideas through their precomputed
// pattern lists. When several ideas name the same pattern their
// contributions sum, never overwrite.
func ideaPathScores(matches []ideaMatch) map[string]float64 {
	scores := make(map[string]float64)
	for _, m := range matches {
		if m.Attrs == nil {
			continue
		}
		for _, pr := range m.Attrs.Patterns {
			scores[pr.PatternID] += m.Similarity * pr.Relevance
		}
	}
	return scores
}
