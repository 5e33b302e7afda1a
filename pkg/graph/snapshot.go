package graph

import (
	"fmt"

	"github.com/soundprediction/patternrecall/pkg/types"
)

// Neighbor pairs a neighbor's node id with the edge that reaches it.
// Edge points into the snapshot's edge arena and must not be mutated.
type Neighbor struct {
	ID   string
	Edge *types.Edge
}

type adjKey struct {
	node int32
	rel  types.Relation
}

// Snapshot is the immutable arena-and-index form of the knowledge
// graph. Nodes live in a dense array in load order; forward and
// backward adjacency lists hold integer indices into the edge arena,
// keyed by (node, relation).
type Snapshot struct {
	nodes  []types.Node
	byID   map[string]int32
	byKind map[types.NodeKind][]int32

	edges []types.Edge
	fwd   map[adjKey][]int32
	rev   map[adjKey][]int32
}

// BuildSnapshot indexes the given node and edge collections. Node
// order is preserved; a later edge write for the same
// (source, target, relation) triple replaces the earlier one in place.
// Every edge referencing an unknown node id or carrying out-of-range
// attributes is collected and reported in a single *IntegrityError;
// no partial snapshot is returned.
func BuildSnapshot(nodes []types.Node, edges []types.Edge) (*Snapshot, error) {
	s := &Snapshot{
		byID:   make(map[string]int32, len(nodes)),
		byKind: make(map[types.NodeKind][]int32),
		fwd:    make(map[adjKey][]int32),
		rev:    make(map[adjKey][]int32),
	}

	for _, n := range nodes {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("invalid node: %w", err)
		}
		if _, dup := s.byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		idx := int32(len(s.nodes))
		s.nodes = append(s.nodes, n)
		s.byID[n.ID] = idx
		s.byKind[n.Kind] = append(s.byKind[n.Kind], idx)
	}

	var violations []EdgeViolation
	seen := make(map[types.EdgeKey]int32, len(edges))
	for _, e := range edges {
		if err := e.Validate(); err != nil {
			violations = append(violations, EdgeViolation{Edge: e.Key(), Reason: err.Error()})
			continue
		}
		src, srcOK := s.byID[e.Source]
		tgt, tgtOK := s.byID[e.Target]
		if !srcOK {
			violations = append(violations, EdgeViolation{Edge: e.Key(), Reason: "unknown source node"})
		}
		if !tgtOK {
			violations = append(violations, EdgeViolation{Edge: e.Key(), Reason: "unknown target node"})
		}
		if !srcOK || !tgtOK {
			continue
		}
		if pos, dup := seen[e.Key()]; dup {
			// Same triple written again: replace attributes, keep the
			// first write's adjacency position.
			s.edges[pos] = e
			continue
		}
		pos := int32(len(s.edges))
		s.edges = append(s.edges, e)
		seen[e.Key()] = pos
		s.fwd[adjKey{node: src, rel: e.Relation}] = append(s.fwd[adjKey{node: src, rel: e.Relation}], pos)
		s.rev[adjKey{node: tgt, rel: e.Relation}] = append(s.rev[adjKey{node: tgt, rel: e.Relation}], pos)
	}

	if len(violations) > 0 {
		return nil, &IntegrityError{Violations: violations}
	}
	return s, nil
}

// Node returns the node with the given id, if present.
func (s *Snapshot) Node(id string) (*types.Node, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.nodes[idx], true
}

// NodesOfKind returns all nodes of the given kind in load order.
func (s *Snapshot) NodesOfKind(kind types.NodeKind) []*types.Node {
	idxs := s.byKind[kind]
	out := make([]*types.Node, len(idxs))
	for i, idx := range idxs {
		out[i] = &s.nodes[idx]
	}
	return out
}

// Successors returns the targets of the node's outgoing edges with the
// given relation, in load order.
func (s *Snapshot) Successors(nodeID string, rel types.Relation) []Neighbor {
	idx, ok := s.byID[nodeID]
	if !ok {
		return nil
	}
	positions := s.fwd[adjKey{node: idx, rel: rel}]
	out := make([]Neighbor, len(positions))
	for i, pos := range positions {
		e := &s.edges[pos]
		out[i] = Neighbor{ID: e.Target, Edge: e}
	}
	return out
}

// Predecessors returns the sources of the node's incoming edges with
// the given relation, in load order.
func (s *Snapshot) Predecessors(nodeID string, rel types.Relation) []Neighbor {
	idx, ok := s.byID[nodeID]
	if !ok {
		return nil
	}
	positions := s.rev[adjKey{node: idx, rel: rel}]
	out := make([]Neighbor, len(positions))
	for i, pos := range positions {
		e := &s.edges[pos]
		out[i] = Neighbor{ID: e.Source, Edge: e}
	}
	return out
}

// NumNodes returns the total node count.
func (s *Snapshot) NumNodes() int { return len(s.nodes) }

// NumEdges returns the total edge count after duplicate replacement.
func (s *Snapshot) NumEdges() int { return len(s.edges) }
