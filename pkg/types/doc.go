// Package types defines the core data types for the patternrecall
// knowledge graph.
//
// This package contains the fundamental types used throughout
// patternrecall:
//   - Node: a tagged-variant graph node (paper, domain, idea, pattern)
//   - Edge: a typed, weighted, directed relation between two nodes
//   - Result/Breakdown: the ranked, explainable recall output
//
// # Node Kinds
//
// A Node carries exactly one populated attribute set, selected by Kind:
//   - PaperNode: a published paper with a quality score and core-idea text
//   - DomainNode: a research-area grouping with a keyword list
//   - IdeaNode: a core-innovation description with a precomputed
//     pattern-relevance list
//   - PatternNode: a reusable writing pattern mined from a paper cluster
//
// Attributes not modeled by the typed sets live in the Extra map.
//
// # Validation
//
// Nodes and edges provide Validate() methods for input validation:
//
//	node := &types.Node{ID: "idea_1", Kind: types.IdeaNode, Idea: &types.IdeaAttrs{...}}
//	if err := node.Validate(); err != nil {
//	    // Handle validation error
//	}
//
// # JSON Serialization
//
// All types are designed to be JSON-serializable with appropriate
// struct tags; the snapshot wire format in pkg/snapshot maps onto them.
package types
