package topo

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/kernelerr"
)

// Face is a 2-dimensional topological entity: a surface bounded by an
// outer Wire and zero or more inner Wires (holes). Every boundary wire
// must be closed and every edge's curve must lie on the surface within
// the kernel's topological tolerance.
type Face struct {
	id         identity.Token
	surface    geom.Surface
	outer      *Wire
	holes      []*Wire
	orientation bool // true = surface normal points outward
}

// NewFace validates that outer and every hole are closed wires whose
// edges' curves lie on surface, returning kernelerr.ErrTopologyViolation
// on any open boundary and kernelerr.ErrMismatchedStructure if an edge's
// curve doesn't lie on the surface.
func NewFace(surface geom.Surface, outer *Wire, holes []*Wire, orientation bool) (*Face, error) {
	if !outer.IsClosed() {
		return nil, kernelerr.ErrTopologyViolation
	}
	if err := checkBoundaryOnSurface(surface, outer); err != nil {
		return nil, err
	}
	cp := make([]*Wire, len(holes))
	for i, h := range holes {
		if !h.IsClosed() {
			return nil, kernelerr.ErrTopologyViolation
		}
		if err := checkBoundaryOnSurface(surface, h); err != nil {
			return nil, err
		}
		cp[i] = h
	}
	return &Face{id: identity.New(), surface: surface, outer: outer, holes: cp, orientation: orientation}, nil
}

func checkBoundaryOnSurface(surface geom.Surface, w *Wire) error {
	for _, e := range w.Edges() {
		if !surface.Inclusion(e.Curve()) {
			return kernelerr.ErrMismatchedStructure
		}
	}
	return nil
}

// ID returns the face's identity token.
func (f *Face) ID() identity.Token { return f.id }

// Surface returns the face's underlying surface.
func (f *Face) Surface() geom.Surface { return f.surface }

// OuterBoundary returns the face's outer wire.
func (f *Face) OuterBoundary() *Wire { return f.outer }

// Holes returns the face's inner (hole) wires.
func (f *Face) Holes() []*Wire {
	cp := make([]*Wire, len(f.holes))
	copy(cp, f.holes)
	return cp
}

// Orientation reports whether the face's surface normal points outward
// relative to the solid it bounds.
func (f *Face) Orientation() bool { return f.orientation }

// Flipped returns a copy of f with orientation reversed, sharing the same
// identity, surface, and boundaries: used when a shell-repair step (e.g.
// fillet trimming) needs to present the same geometric face with the
// opposite sense.
func (f *Face) Flipped() *Face {
	return &Face{id: f.id, surface: f.surface, outer: f.outer, holes: f.holes, orientation: !f.orientation}
}
