package config

import (
	"errors"
	"testing"
)

func TestDefaultRecallConfigIsValid(t *testing.T) {
	if err := DefaultRecallConfig().Validate(); err != nil {
		t.Fatalf("DefaultRecallConfig().Validate() = %v", err)
	}
}

func TestRecallConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecallConfig)
		option string
	}{
		{name: "zero top_k_ideas", mutate: func(c *RecallConfig) { c.TopKIdeas = 0 }, option: "top_k_ideas"},
		{name: "negative top_k_domains", mutate: func(c *RecallConfig) { c.TopKDomains = -1 }, option: "top_k_domains"},
		{name: "zero final_top_k", mutate: func(c *RecallConfig) { c.FinalTopK = 0 }, option: "final_top_k"},
		{name: "negative weight", mutate: func(c *RecallConfig) { c.DomainWeight = -0.1 }, option: "domain_weight"},
		{name: "threshold above one", mutate: func(c *RecallConfig) { c.PaperSimilarityThreshold = 1.5 }, option: "paper_similarity_threshold"},
		{name: "negative floor", mutate: func(c *RecallConfig) { c.EffectivenessFloor = -0.2 }, option: "effectiveness_floor"},
		{name: "unknown strategy", mutate: func(c *RecallConfig) { c.DomainStrategy = "embedding" }, option: "domain_strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRecallConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() error = %v, want *ConfigurationError", err)
			}
			if ce.Option != tt.option {
				t.Errorf("Option = %q, want %q", ce.Option, tt.option)
			}
		})
	}
}

func TestZeroWeightsAreValid(t *testing.T) {
	cfg := DefaultRecallConfig()
	cfg.IdeaWeight, cfg.DomainWeight, cfg.PaperWeight = 0, 0, 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() with zero weights = %v, want nil", err)
	}
}
