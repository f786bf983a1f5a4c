package topo

import (
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/kernelerr"
)

// Solid is a 3-dimensional topological entity: an outer boundary Shell
// (normals pointing outward) and zero or more inner boundary shells
// describing internal voids (normals pointing inward, toward the void).
type Solid struct {
	id     identity.Token
	outer  *Shell
	voids  []*Shell
}

// NewSolid validates that outer and every void shell are Regular (closed,
// connected, consistently oriented), returning
// kernelerr.ErrTopologyViolation otherwise, optionally annotated with the
// count of offending edges via kernelerr.NonManifoldEdgeError when the
// shell is closed but not oriented.
func NewSolid(outer *Shell, voids []*Shell) (*Solid, error) {
	if err := validateBoundaryShell(outer); err != nil {
		return nil, err
	}
	cp := make([]*Shell, len(voids))
	for i, v := range voids {
		if err := validateBoundaryShell(v); err != nil {
			return nil, err
		}
		cp[i] = v
	}
	return &Solid{id: identity.New(), outer: outer, voids: cp}, nil
}

func validateBoundaryShell(s *Shell) error {
	if s.Disconnected() || s.Open() {
		return kernelerr.ErrTopologyViolation
	}
	if !s.Oriented() {
		nonManifold := 0
		for _, u := range s.edgeUses() {
			if u.faceCount == 2 && (u.forwardCount != 1 || u.backwardCount != 1) {
				nonManifold++
			}
		}
		return &kernelerr.NonManifoldEdgeError{Count: nonManifold}
	}
	return nil
}

// ID returns the solid's identity token.
func (s *Solid) ID() identity.Token { return s.id }

// OuterShell returns the solid's outer boundary shell.
func (s *Solid) OuterShell() *Shell { return s.outer }

// Voids returns the solid's inner boundary shells (internal cavities).
func (s *Solid) Voids() []*Shell {
	cp := make([]*Shell, len(s.voids))
	copy(cp, s.voids)
	return cp
}

// AllFaces returns every face across the outer shell and all voids, the
// flattened view the tessellator and mesh analyzers iterate over.
func (s *Solid) AllFaces() []*Face {
	out := append([]*Face{}, s.outer.Faces()...)
	for _, v := range s.voids {
		out = append(out, v.Faces()...)
	}
	return out
}
