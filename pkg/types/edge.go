package types

import "fmt"

// Relation identifies the typed relation an edge carries.
type Relation string

const (
	// UsesPattern connects a paper to a pattern it uses. Carries
	// Quality in [0,1].
	UsesPattern Relation = "uses_pattern"
	// BelongsTo connects an idea to a domain. Carries Weight in [0,1],
	// the ratio of the idea's source papers published in that domain.
	BelongsTo Relation = "belongs_to"
	// WorksWellIn connects a pattern to a domain it performs well in.
	// Carries Frequency, Effectiveness in [-1,1] and Confidence in
	// [0,1].
	WorksWellIn Relation = "works_well_in"
)

// Edge is a typed, weighted, directed relation between two nodes.
// The populated attribute fields depend on Relation; unrelated fields
// stay zero.
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Relation Relation `json:"relation"`

	// UsesPattern attributes.
	Quality float64 `json:"quality,omitempty"`

	// BelongsTo attributes.
	Weight float64 `json:"weight,omitempty"`

	// WorksWellIn attributes. Confidence is expected to already encode
	// min(frequency/saturation, 1) as produced by the offline pipeline;
	// consumers take it as given. Effectiveness may be negative when a
	// pattern performs below the domain baseline.
	Frequency     int     `json:"frequency,omitempty"`
	Effectiveness float64 `json:"effectiveness,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
}

// Validate checks endpoint IDs, the relation, and attribute ranges.
func (e *Edge) Validate() error {
	if e.Source == "" || e.Target == "" {
		return ErrEmptyID
	}
	switch e.Relation {
	case UsesPattern:
		if e.Quality < 0 || e.Quality > 1 {
			return fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, ErrQualityOutOfRange)
		}
	case BelongsTo:
		if e.Weight < 0 || e.Weight > 1 {
			return fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, ErrWeightOutOfRange)
		}
	case WorksWellIn:
		if e.Confidence < 0 || e.Confidence > 1 {
			return fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, ErrConfidenceOutOfRange)
		}
	default:
		return fmt.Errorf("edge %s->%s: %w: %q", e.Source, e.Target, ErrUnknownRelation, e.Relation)
	}
	return nil
}

// Key returns the identity triple of the edge. A later write for the
// same triple replaces the earlier one; duplicates never accumulate.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{Source: e.Source, Target: e.Target, Relation: e.Relation}
}

// EdgeKey is the (source, target, relation) identity of an edge.
type EdgeKey struct {
	Source   string
	Target   string
	Relation Relation
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("%s-[%s]->%s", k.Source, k.Relation, k.Target)
}
