package recall

import (
	"math"
	"sort"

	"github.com/soundprediction/patternrecall/pkg/config"
	"github.com/soundprediction/patternrecall/pkg/graph"
	"github.com/soundprediction/patternrecall/pkg/textsim"
	"github.com/soundprediction/patternrecall/pkg/types"
)

type domainMatch struct {
	ID        string
	Relevance float64
}

// domainPathScores scores patterns through the domains most relevant
// to the query. Per selected domain, every pattern with a
// works_well_in edge contributes
// relevance × max(effectiveness, floor) × confidence. The floor keeps
// a domain where a pattern performs at or below baseline from
// suppressing the pattern's aggregate total; confidence arrives
// pre-saturated from the offline pipeline and is consumed as given.
func domainPathScores(snap *graph.Snapshot, sim *textsim.Engine, query string, ideas []ideaMatch, cfg config.RecallConfig) map[string]float64 {
	var domains []domainMatch
	switch cfg.DomainStrategy {
	case config.DomainStrategyKeyword:
		domains = keywordDomainRelevance(snap, query)
	case config.DomainStrategyIdeas:
		domains = ideaDomainRelevance(snap, ideas)
	default: // auto
		domains = keywordDomainRelevance(snap, query)
		if len(domains) == 0 {
			domains = ideaDomainRelevance(snap, ideas)
		}
	}

	sort.Slice(domains, func(i, j int) bool {
		if domains[i].Relevance != domains[j].Relevance {
			return domains[i].Relevance > domains[j].Relevance
		}
		return domains[i].ID < domains[j].ID
	})
	if len(domains) > cfg.TopKDomains {
		domains = domains[:cfg.TopKDomains]
	}

	scores := make(map[string]float64)
	for _, d := range domains {
		for _, nb := range snap.Predecessors(d.ID, types.WorksWellIn) {
			eff := math.Max(nb.Edge.Effectiveness, cfg.EffectivenessFloor)
			scores[nb.ID] += d.Relevance * eff * nb.Edge.Confidence
		}
	}
	return scores
}

// keywordDomainRelevance matches each domain's keyword list directly
// against the query's token set. A keyword matches when all of its
// tokens appear in the query; relevance is the matched-keyword count
// normalized by the query's token count. Domains with no match are
// omitted entirely.
func keywordDomainRelevance(snap *graph.Snapshot, query string) []domainMatch {
	queryTokens := textsim.Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	var out []domainMatch
	for _, n := range snap.NodesOfKind(types.DomainNode) {
		if n.Domain == nil {
			continue
		}
		matched := 0
		for _, kw := range n.Domain.Keywords {
			if containsAll(queryTokens, textsim.Tokenize(kw)) {
				matched++
			}
		}
		if matched > 0 {
			out = append(out, domainMatch{ID: n.ID, Relevance: float64(matched) / float64(len(queryTokens))})
		}
	}
	return out
}

func containsAll(haystack, needles textsim.TokenSet) bool {
	if len(needles) == 0 {
		return false
	}
	for tok := range needles {
		if _, ok := haystack[tok]; !ok {
			return false
		}
	}
	return true
}

// ideaDomainRelevance aggregates relevance through the idea path's
// already-selected ideas via their belongs_to edges, summing
// similarity × weight per domain. It depends only on the finished
// idea selection, never on shared mutable state.
func ideaDomainRelevance(snap *graph.Snapshot, ideas []ideaMatch) []domainMatch {
	agg := make(map[string]float64)
	for _, m := range ideas {
		for _, nb := range snap.Successors(m.ID, types.BelongsTo) {
			agg[nb.ID] += m.Similarity * nb.Edge.Weight
		}
	}
	out := make([]domainMatch, 0, len(agg))
	for id, rel := range agg {
		out = append(out, domainMatch{ID: id, Relevance: rel})
	}
	return out
}
