// Package patternrecall provides a knowledge-graph retrieval library
// for research writing patterns.
//
// Patternrecall takes a free-text research idea and an immutable graph
// snapshot of papers, domains, ideas and patterns, and returns a
// ranked, explainable list of reusable writing patterns. Three
// independent recall paths (idea similarity, domain relevance, paper
// similarity) run against the same snapshot and are fused with
// configurable weights.
//
// # Basic Usage
//
// Create a client, load a snapshot, and query it:
//
//	client, err := patternrecall.NewClient(config.DefaultRecallConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	collections, err := snapshot.ReadDir("./snapshot")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := client.LoadCollections(collections); err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Recall(ctx, "transformer for text classification", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range results {
//		fmt.Printf("%s  %.4f  (idea %.0f%%, domain %.0f%%, paper %.0f%%)\n",
//			r.PatternID, r.FinalScore,
//			r.Breakdown.Idea.Percent, r.Breakdown.Domain.Percent, r.Breakdown.Paper.Percent)
//	}
//
// # Snapshots
//
// The graph is built offline by the extraction/clustering pipeline and
// loaded read-only before any query is served. Loading a new snapshot
// is an atomic swap: queries in flight finish against the snapshot
// they started with. Queries never mutate the graph, and query text is
// never persisted into it.
//
// # Concurrency
//
// A client is safe for concurrent use. Each call carries its own
// immutable configuration, so callers can use different settings
// against one shared client.
//
// # Error Handling
//
// The library provides typed errors for common scenarios:
//
//   - graph.ErrNotLoaded: recall invoked before a snapshot was loaded
//   - graph.IntegrityError: an edge references an unknown node id at load time
//   - config.ConfigurationError: an invalid recall option
//
// Degenerate inputs are not errors: an empty query or a query matching
// nothing yields an empty result list.
//
// # Architecture
//
// The library follows a modular architecture:
//
//   - pkg/graph: immutable arena-and-index graph snapshot
//   - pkg/textsim: script-agnostic text similarity
//   - pkg/recall: the three path scorers and fusion
//   - pkg/snapshot: snapshot wire format, JSON files, Badger persistence
//   - pkg/config: configuration loading and validation
//   - pkg/server: HTTP serving surface
package patternrecall
