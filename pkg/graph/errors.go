package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soundprediction/patternrecall/pkg/types"
)

// ErrNotLoaded is returned when a query reaches a Store before any
// snapshot has been loaded into it.
var ErrNotLoaded = errors.New("graph store has no loaded snapshot")

// EdgeViolation describes one edge rejected at load time.
type EdgeViolation struct {
	Edge   types.EdgeKey `json:"edge"`
	Reason string        `json:"reason"`
}

func (v EdgeViolation) String() string {
	return fmt.Sprintf("%s: %s", v.Edge, v.Reason)
}

// IntegrityError reports every edge that references an unknown node
// id. Load fails fast with the full violation list; no partial graph
// is ever installed.
type IntegrityError struct {
	Violations []EdgeViolation
}

func (e *IntegrityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graph integrity: %d invalid edge(s):", len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString(" [")
		b.WriteString(v.String())
		b.WriteString("]")
	}
	return b.String()
}

// Is implements errors.Is support for IntegrityError.
func (e *IntegrityError) Is(target error) bool {
	_, ok := target.(*IntegrityError)
	return ok
}
