package topo

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/kernelerr"
)

// OrientedEdge is either an *Edge walked forward or a Reversed view of
// one walked backward; Wire stores a sequence of these rather than
// duplicating edge identities per direction.
type OrientedEdge interface {
	ID() identity.Token
	Front() *Vertex
	Back() *Vertex
	Curve() geom.Curve
}

// Wire is an ordered, connected chain of oriented edges: each edge's Back
// must coincide (by identity) with the next edge's Front.
type Wire struct {
	id    identity.Token
	edges []OrientedEdge
}

// NewWire validates that edges form a connected chain and returns a Wire,
// or kernelerr.ErrTopologyViolation if any adjacent pair doesn't share a
// vertex identity.
func NewWire(edges []OrientedEdge) (*Wire, error) {
	if len(edges) == 0 {
		return nil, kernelerr.ErrTopologyViolation
	}
	for i := 0; i < len(edges)-1; i++ {
		if !edges[i].Back().SameIdentity(edges[i+1].Front()) {
			return nil, kernelerr.ErrTopologyViolation
		}
	}
	cp := make([]OrientedEdge, len(edges))
	copy(cp, edges)
	return &Wire{id: identity.New(), edges: cp}, nil
}

// ID returns the wire's identity token.
func (w *Wire) ID() identity.Token { return w.id }

// Edges returns the wire's ordered edge sequence.
func (w *Wire) Edges() []OrientedEdge {
	cp := make([]OrientedEdge, len(w.edges))
	copy(cp, w.edges)
	return cp
}

// IsClosed reports whether the wire's last edge's Back coincides with its
// first edge's Front, forming a loop.
func (w *Wire) IsClosed() bool {
	return w.edges[len(w.edges)-1].Back().SameIdentity(w.edges[0].Front())
}

// VertexCount returns the number of distinct vertex identities visited,
// counting the closing vertex once for a closed wire.
func (w *Wire) VertexCount() int {
	seen := make(map[identity.Token]bool)
	for _, e := range w.edges {
		seen[e.Front().ID()] = true
	}
	if !w.IsClosed() {
		seen[w.edges[len(w.edges)-1].Back().ID()] = true
	}
	return len(seen)
}

// HomotopyCompatible reports whether w and other have the same edge
// count, the minimum structural requirement for model.TryWireHomotopy to
// attempt a vertex-to-vertex correspondence between them.
func (w *Wire) HomotopyCompatible(other *Wire) bool {
	return len(w.edges) == len(other.edges)
}
