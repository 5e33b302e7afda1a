package recall

import (
	"sort"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/types"
)

// fuse combines the three raw score maps with the configured weights
// into the final ranked list. Only patterns present in at least one
// map appear. Sorting is by final score descending with ties broken by
// ascending pattern id; the list is truncated to FinalTopK. Each
// surviving result carries a per-path breakdown and a copy of the
// pattern node's attributes at snapshot time.
func fuse(snap *graph.Snapshot, ideaScores, domainScores, paperScores map[string]float64, cfg config.RecallConfig) []types.Result {
	ids := make([]string, 0, len(ideaScores)+len(domainScores)+len(paperScores))
	seen := make(map[string]struct{})
	for _, m := range []map[string]float64{ideaScores, domainScores, paperScores} {
		for id := range m {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	results := make([]types.Result, 0, len(ids))
	for _, id := range ids {
		c1 := cfg.IdeaWeight * ideaScores[id]
		c2 := cfg.DomainWeight * domainScores[id]
		c3 := cfg.PaperWeight * paperScores[id]
		final := c1 + c2 + c3

		r := types.Result{
			PatternID:  id,
			FinalScore: final,
			Breakdown: types.Breakdown{
				Idea:   types.PathContribution{Score: c1},
				Domain: types.PathContribution{Score: c2},
				Paper:  types.PathContribution{Score: c3},
			},
		}
		// A zero final score leaves all percentages at zero instead of
		// dividing by zero.
		if final > 0 {
			r.Breakdown.Idea.Percent = c1 / final * 100
			r.Breakdown.Domain.Percent = c2 / final * 100
			r.Breakdown.Paper.Percent = c3 / final * 100
		}
		if node, ok := snap.Node(id); ok && node.Pattern != nil {
			r.Pattern = *node.Pattern
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].FinalScore != results[j].FinalScore {
			return results[i].FinalScore > results[j].FinalScore
		}
		return results[i].PatternID < results[j].PatternID
	})
	if len(results) > cfg.FinalTopK {
		results = results[:cfg.FinalTopK]
	}
	return results
}
