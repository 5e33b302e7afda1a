package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/soundprediction/patternrecall/pkg/types"
)

// Collections is a decoded snapshot: the two ordered collections the
// offline pipeline produces.
type Collections struct {
	Nodes []types.Node `json:"nodes"`
	Edges []types.Edge `json:"edges"`
}

// nodeRecord is the wire form of a node.
type nodeRecord struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

// edgeRecord is the wire form of an edge.
type edgeRecord struct {
	Source     string          `json:"source"`
	Target     string          `json:"target"`
	Relation   string          `json:"relation"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

// edgeAttrs covers the attribute fields of every relation; the edge's
// relation decides which ones are meaningful.
type edgeAttrs struct {
	Quality       float64 `json:"quality,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Frequency     int     `json:"frequency,omitempty"`
	Effectiveness float64 `json:"effectiveness,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
}

func decodeNode(rec nodeRecord) (types.Node, error) {
	n := types.Node{ID: rec.ID}
	attrs := rec.Attributes
	if len(attrs) == 0 {
		attrs = json.RawMessage("{}")
	}
	switch strings.ToLower(rec.Type) {
	case string(types.PaperNode):
		var a types.PaperAttrs
		if err := json.Unmarshal(attrs, &a); err != nil {
			return n, fmt.Errorf("node %s: decoding paper attributes: %w", rec.ID, err)
		}
		n.Kind, n.Paper = types.PaperNode, &a
	case string(types.DomainNode):
		var a types.DomainAttrs
		if err := json.Unmarshal(attrs, &a); err != nil {
			return n, fmt.Errorf("node %s: decoding domain attributes: %w", rec.ID, err)
		}
		n.Kind, n.Domain = types.DomainNode, &a
	case string(types.IdeaNode):
		var a types.IdeaAttrs
		if err := json.Unmarshal(attrs, &a); err != nil {
			return n, fmt.Errorf("node %s: decoding idea attributes: %w", rec.ID, err)
		}
		n.Kind, n.Idea = types.IdeaNode, &a
	case string(types.PatternNode):
		var a types.PatternAttrs
		if err := json.Unmarshal(attrs, &a); err != nil {
			return n, fmt.Errorf("node %s: decoding pattern attributes: %w", rec.ID, err)
		}
		n.Kind, n.Pattern = types.PatternNode, &a
	default:
		return n, fmt.Errorf("node %s: %w: %q", rec.ID, types.ErrUnknownNodeKind, rec.Type)
	}
	return n, nil
}

func encodeNode(n types.Node) (nodeRecord, error) {
	rec := nodeRecord{ID: n.ID, Type: string(n.Kind)}
	var attrs interface{}
	switch n.Kind {
	case types.PaperNode:
		attrs = n.Paper
	case types.DomainNode:
		attrs = n.Domain
	case types.IdeaNode:
		attrs = n.Idea
	case types.PatternNode:
		attrs = n.Pattern
	default:
		return rec, fmt.Errorf("node %s: %w: %q", n.ID, types.ErrUnknownNodeKind, n.Kind)
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return rec, fmt.Errorf("node %s: encoding attributes: %w", n.ID, err)
	}
	rec.Attributes = raw
	return rec, nil
}

func decodeEdge(rec edgeRecord) (types.Edge, error) {
	e := types.Edge{
		Source:   rec.Source,
		Target:   rec.Target,
		Relation: types.Relation(strings.ToLower(rec.Relation)),
	}
	var a edgeAttrs
	if len(rec.Attributes) > 0 {
		if err := json.Unmarshal(rec.Attributes, &a); err != nil {
			return e, fmt.Errorf("edge %s: decoding attributes: %w", e.Key(), err)
		}
	}
	e.Quality = a.Quality
	e.Weight = a.Weight
	e.Frequency = a.Frequency
	e.Effectiveness = a.Effectiveness
	e.Confidence = a.Confidence
	return e, nil
}

func encodeEdge(e types.Edge) (edgeRecord, error) {
	raw, err := json.Marshal(edgeAttrs{
		Quality:       e.Quality,
		Weight:        e.Weight,
		Frequency:     e.Frequency,
		Effectiveness: e.Effectiveness,
		Confidence:    e.Confidence,
	})
	if err != nil {
		return edgeRecord{}, fmt.Errorf("edge %s: encoding attributes: %w", e.Key(), err)
	}
	return edgeRecord{
		Source:     e.Source,
		Target:     e.Target,
		Relation:   string(e.Relation),
		Attributes: raw,
	}, nil
}
