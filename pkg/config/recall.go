package config

import "fmt"

// DomainStrategy selects how the domain-relevance recall path scores
// domains against the query.
type DomainStrategy string

const (
	// DomainStrategyKeyword scores domains by direct keyword
	// containment against each domain's keyword list.
	DomainStrategyKeyword DomainStrategy = "keyword"
	// DomainStrategyIdeas aggregates relevance through the idea path's
	// selected ideas via their belongs_to edges.
	DomainStrategyIdeas DomainStrategy = "ideas"
	// DomainStrategyAuto tries keyword containment first and falls
	// back to idea aggregation when no domain matches.
	DomainStrategyAuto DomainStrategy = "auto"
)

// RecallConfig is the immutable per-query configuration. It is passed
// by value into every recall call, so concurrent callers can use
// different configurations against one shared store.
type RecallConfig struct {
	// TopKIdeas bounds the ideas selected by the idea-similarity path.
	TopKIdeas int `mapstructure:"top_k_ideas" json:"top_k_ideas"`
	// TopKDomains bounds the domains selected by the domain-relevance path.
	TopKDomains int `mapstructure:"top_k_domains" json:"top_k_domains"`
	// TopKPapers bounds the papers selected by the paper-similarity path.
	TopKPapers int `mapstructure:"top_k_papers" json:"top_k_papers"`

	// Fusion weights. They are not required to sum to 1: each path's
	// raw magnitude stays visible in the breakdown.
	IdeaWeight   float64 `mapstructure:"idea_weight" json:"idea_weight"`
	DomainWeight float64 `mapstructure:"domain_weight" json:"domain_weight"`
	PaperWeight  float64 `mapstructure:"paper_weight" json:"paper_weight"`

	// FinalTopK bounds the fused result list.
	FinalTopK int `mapstructure:"final_top_k" json:"final_top_k"`

	// PaperSimilarityThreshold discards papers below this query
	// similarity before ranking by combined weight.
	PaperSimilarityThreshold float64 `mapstructure:"paper_similarity_threshold" json:"paper_similarity_threshold"`

	// EffectivenessFloor clamps a works_well_in edge's effectiveness
	// from below so a negative or near-zero effectiveness in one domain
	// cannot suppress a pattern's aggregate total.
	EffectivenessFloor float64 `mapstructure:"effectiveness_floor" json:"effectiveness_floor"`

	// ConfidenceSaturation documents the saturation point the offline
	// pipeline baked into edge confidence (min(frequency/saturation, 1)).
	// It is recorded for reproducibility and never recomputed here.
	ConfidenceSaturation int `mapstructure:"confidence_saturation" json:"confidence_saturation"`

	// DomainStrategy selects the domain-relevance scoring strategy.
	DomainStrategy DomainStrategy `mapstructure:"domain_strategy" json:"domain_strategy"`
}

// DefaultRecallConfig returns the documented defaults.
func DefaultRecallConfig() RecallConfig {
	return RecallConfig{
		TopKIdeas:                10,
		TopKDomains:              5,
		TopKPapers:               20,
		IdeaWeight:               0.4,
		DomainWeight:             0.3,
		PaperWeight:              0.3,
		FinalTopK:                10,
		PaperSimilarityThreshold: 0.1,
		EffectivenessFloor:       0.1,
		ConfidenceSaturation:     20,
		DomainStrategy:           DomainStrategyAuto,
	}
}

// ConfigurationError reports an invalid recall option. It surfaces to
// the caller immediately; a query never runs with a bad configuration.
type ConfigurationError struct {
	Option string
	Value  interface{}
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s = %v: %s", e.Option, e.Value, e.Reason)
}

// Is implements errors.Is support for ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}

// Validate checks every recall option: top-k values must be positive,
// weights non-negative, thresholds inside [0,1].
func (c RecallConfig) Validate() error {
	if c.TopKIdeas <= 0 {
		return &ConfigurationError{Option: "top_k_ideas", Value: c.TopKIdeas, Reason: "must be positive"}
	}
	if c.TopKDomains <= 0 {
		return &ConfigurationError{Option: "top_k_domains", Value: c.TopKDomains, Reason: "must be positive"}
	}
	if c.TopKPapers <= 0 {
		return &ConfigurationError{Option: "top_k_papers", Value: c.TopKPapers, Reason: "must be positive"}
	}
	if c.FinalTopK <= 0 {
		return &ConfigurationError{Option: "final_top_k", Value: c.FinalTopK, Reason: "must be positive"}
	}
	if c.IdeaWeight < 0 {
		return &ConfigurationError{Option: "idea_weight", Value: c.IdeaWeight, Reason: "must not be negative"}
	}
	if c.DomainWeight < 0 {
		return &ConfigurationError{Option: "domain_weight", Value: c.DomainWeight, Reason: "must not be negative"}
	}
	if c.PaperWeight < 0 {
		return &ConfigurationError{Option: "paper_weight", Value: c.PaperWeight, Reason: "must not be negative"}
	}
	if c.PaperSimilarityThreshold < 0 || c.PaperSimilarityThreshold > 1 {
		return &ConfigurationError{Option: "paper_similarity_threshold", Value: c.PaperSimilarityThreshold, Reason: "must be in [0,1]"}
	}
	if c.EffectivenessFloor < 0 || c.EffectivenessFloor > 1 {
		return &ConfigurationError{Option: "effectiveness_floor", Value: c.EffectivenessFloor, Reason: "must be in [0,1]"}
	}
	switch c.DomainStrategy {
	case DomainStrategyKeyword, DomainStrategyIdeas, DomainStrategyAuto:
	default:
		return &ConfigurationError{Option: "domain_strategy", Value: c.DomainStrategy, Reason: "must be keyword, ideas, or auto"}
	}
	return nil
}
