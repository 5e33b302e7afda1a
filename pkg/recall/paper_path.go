package recall

import (
	"sort"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/textsim"
	"github.com/soundprediction/patternrecall/pkg/types"
)

type paperMatch struct {
	ID       string
	Combined float64
}

// paperPathScores scores patterns through the papers most similar to
// the query. Papers below the similarity threshold are discarded; the
// survivors rank by combined weight (similarity × paper quality), and
// each selected paper's uses_pattern edges contribute
// combined weight × edge quality.
func paperPathScores(snap *graph.Snapshot, sim *textsim.Engine, query string, cfg config.RecallConfig) map[string]float64 {
	var matches []paperMatch
	for _, n := range snap.NodesOfKind(types.PaperNode) {
		s := sim.Similarity(query, n.Text())
		if s < cfg.PaperSimilarityThreshold || s == 0 {
			continue
		}
		matches = append(matches, paperMatch{ID: n.ID, Combined: s * n.Paper.Quality})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Combined != matches[j].Combined {
			return matches[i].Combined > matches[j].Combined
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > cfg.TopKPapers {
		matches = matches[:cfg.TopKPapers]
	}

	scores := make(map[string]float64)
	for _, m := range matches {
		for _, nb := range snap.Successors(m.ID, types.UsesPattern) {
			scores[nb.ID] += m.Combined * nb.Edge.Quality
		}
	}
	return scores
}
