// Package graph provides the immutable, read-only index over the
// pattern knowledge graph.
//
// A Snapshot is built once from the node and edge collections the
// offline pipeline produces, and is never mutated afterwards. Nodes
// are held in dense arrays in load order; edges are held as adjacency
// lists of integer indices keyed by (node, relation), giving O(1)
// amortized neighbor access in both directions without a scan.
//
// A Store wraps an atomic snapshot reference so a newly built snapshot
// can be swapped in while queries in flight keep reading the old one.
package graph
