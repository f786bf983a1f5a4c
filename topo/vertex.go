// Package topo implements the kernel's boundary-representation topology:
// Vertex, Edge, Wire, Face, Shell, and Solid, each carrying a process-
// unique identity.Token so that topology can be shared across multiple
// parent entities (an Edge used by two Faces, a Vertex used by several
// Edges) without duplicating geometry.
//
// NewEdge, NewWire, NewFace and NewSolid validate their invariants at
// build time and return kernelerr on violation, matching this kernel's
// "errors over panics" convention. NewShell checks nothing: closure and
// orientation are reported by the Shell's query methods.
package topo

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
)

// Vertex is a 0-dimensional topological entity: an identity paired with
// a position in model space.
type Vertex struct {
	id    identity.Token
	point geom.Point3
}

// NewVertex allocates a fresh identity for point.
func NewVertex(point geom.Point3) *Vertex {
	return &Vertex{id: identity.New(), point: point}
}

// ID returns the vertex's identity token.
func (v *Vertex) ID() identity.Token { return v.id }

// Point returns the vertex's position.
func (v *Vertex) Point() geom.Point3 { return v.point }

// SameIdentity reports whether v and other share the same identity token
// (i.e. are the same topological entity, possibly reached via different
// parent structures).
func (v *Vertex) SameIdentity(other *Vertex) bool {
	return v != nil && other != nil && v.id == other.id
}
