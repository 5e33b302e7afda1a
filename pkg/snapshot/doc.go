// Package snapshot handles the persisted graph snapshot boundary.
//
// The offline extraction/clustering pipeline delivers the graph as two
// ordered collections: nodes ({id, type, attributes}) and edges
// ({source, target, relation, attributes}). This package decodes that
// wire shape into typed nodes and edges, reads and writes it as JSON
// files, and can persist it into a Badger store the server loads at
// startup and on reload. Order is preserved end to end; the recall
// engine's deterministic output depends on it.
package snapshot
