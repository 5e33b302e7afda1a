package types

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrEmptyID          = errors.New("id cannot be empty")
	ErrUnknownNodeKind  = errors.New("unknown node kind")
	ErrMissingAttrs     = errors.New("node is missing the attribute set for its kind")
	ErrUnknownRelation  = errors.New("unknown edge relation")
	ErrQualityOutOfRange    = errors.New("quality must be in [0,1]")
	ErrWeightOutOfRange     = errors.New("weight must be in [0,1]")
	ErrConfidenceOutOfRange = errors.New("confidence must be in [0,1]")
)

// NodeKind represents the kind of a graph node.
type NodeKind string

const (
	// PaperNode represents a published paper.
	PaperNode NodeKind = "paper"
	// DomainNode represents a research-area grouping.
	DomainNode NodeKind = "domain"
	// IdeaNode represents a paper's core-innovation description.
	IdeaNode NodeKind = "idea"
	// PatternNode represents a reusable writing pattern mined from a
	// cluster of structurally similar papers.
	PatternNode NodeKind = "pattern"
)

// NodeKinds lists all node kinds in a fixed order.
var NodeKinds = []NodeKind{PaperNode, DomainNode, IdeaNode, PatternNode}

// PaperAttrs holds paper-specific attributes.
type PaperAttrs struct {
	// Quality is the paper's normalized review quality in [0,1].
	Quality float64 `json:"quality"`
	// CoreIdea is the paper's core-idea text, matched against queries.
	CoreIdea string `json:"core_idea"`
}

// DomainAttrs holds domain-specific attributes.
type DomainAttrs struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

// PatternRelevance is one entry of an idea's precomputed pattern list.
type PatternRelevance struct {
	PatternID string  `json:"pattern_id"`
	Relevance float64 `json:"relevance"`
}

// IdeaAttrs holds idea-specific attributes.
type IdeaAttrs struct {
	Description string `json:"description"`
	// Patterns is the precomputed (pattern, relevance) list produced by
	// the offline clustering pipeline.
	Patterns []PatternRelevance `json:"patterns,omitempty"`
}

// PatternAttrs holds pattern-specific attributes. A copy of this struct
// is embedded in every recall result so callers do not need a live
// graph handle.
type PatternAttrs struct {
	Name        string  `json:"name"`
	Summary     string  `json:"summary,omitempty"`
	ClusterSize int     `json:"cluster_size"`
	Coherence   float64 `json:"coherence"`
}

// Node is a tagged-variant graph node. Exactly one of the attribute
// pointers is populated, selected by Kind. Attributes not modeled by
// the typed sets live in Extra.
type Node struct {
	ID   string   `json:"id"`
	Kind NodeKind `json:"kind"`

	Paper   *PaperAttrs   `json:"paper,omitempty"`
	Domain  *DomainAttrs  `json:"domain,omitempty"`
	Idea    *IdeaAttrs    `json:"idea,omitempty"`
	Pattern *PatternAttrs `json:"pattern,omitempty"`

	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Validate checks that the node has an ID, a known kind, the attribute
// set matching its kind, and in-range numeric attributes.
func (n *Node) Validate() error {
	if n.ID == "" {
		return ErrEmptyID
	}
	switch n.Kind {
	case PaperNode:
		if n.Paper == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingAttrs)
		}
		if n.Paper.Quality < 0 || n.Paper.Quality > 1 {
			return fmt.Errorf("node %s: %w", n.ID, ErrQualityOutOfRange)
		}
	case DomainNode:
		if n.Domain == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingAttrs)
		}
	case IdeaNode:
		if n.Idea == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingAttrs)
		}
	case PatternNode:
		if n.Pattern == nil {
			return fmt.Errorf("node %s: %w", n.ID, ErrMissingAttrs)
		}
	default:
		return fmt.Errorf("node %s: %w: %q", n.ID, ErrUnknownNodeKind, n.Kind)
	}
	return nil
}

// Text returns the node's free-text field used for query similarity.
// Missing text is an empty string, never an error: similarity against
// an empty string is defined as 0.
func (n *Node) Text() string {
	switch n.Kind {
	case PaperNode:
		if n.Paper != nil {
			return n.Paper.CoreIdea
		}
	case IdeaNode:
		if n.Idea != nil {
			return n.Idea.Description
		}
	case DomainNode:
		if n.Domain != nil {
			return n.Domain.Name
		}
	case PatternNode:
		if n.Pattern != nil {
			return n.Pattern.Summary
		}
	}
	return ""
}
