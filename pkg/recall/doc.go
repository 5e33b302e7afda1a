// Package recall implements the three-path recall-and-fusion engine.
//
// A query runs three independent scoring paths against one immutable
// graph snapshot:
//
//   - idea path: query-to-idea similarity, expanded through each
//     idea's precomputed pattern-relevance list
//   - domain path: query-to-domain relevance (keyword containment or
//     idea aggregation), expanded through works_well_in edges
//   - paper path: query-to-paper similarity weighted by paper quality,
//     expanded through uses_pattern edges
//
// The paths share no mutable state and run concurrently; their raw
// score maps are joined by a weighted fusion step that produces a
// deterministic, explainable ranked list. Identical (query, snapshot,
// config) inputs always produce identical output, breakdowns included.
package recall
