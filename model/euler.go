package model

import (
	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/topo"
)

// CutFaceByEdge splits face's outer boundary into two faces along a new
// edge connecting two existing vertices already on the boundary,
// mirroring the classical Euler operator of the same name: the shared
// new edge appears once forward in one half and once reversed in the
// other, preserving Shell.Oriented() across the split.
func CutFaceByEdge(face *topo.Face, cut *topo.Edge) (left, right *topo.Face, err error) {
	outer := face.OuterBoundary().Edges()
	splitAt := indexOf(outer, cut.Front())
	rejoinAt := indexOf(outer, cut.Back())
	if splitAt < 0 || rejoinAt < 0 || splitAt == rejoinAt {
		return nil, nil, kernelerr.ErrTopologyViolation
	}

	n := len(outer)
	var firstHalf, secondHalf []topo.OrientedEdge
	for i := splitAt; i != rejoinAt; i = (i + 1) % n {
		firstHalf = append(firstHalf, outer[i])
	}
	firstHalf = append(firstHalf, topo.Reverse(cut))
	for i := rejoinAt; i != splitAt; i = (i + 1) % n {
		secondHalf = append(secondHalf, outer[i])
	}
	secondHalf = append(secondHalf, cut)

	leftWire, err := topo.NewWire(firstHalf)
	if err != nil {
		return nil, nil, err
	}
	rightWire, err := topo.NewWire(secondHalf)
	if err != nil {
		return nil, nil, err
	}
	left, err = topo.NewFace(face.Surface(), leftWire, nil, face.Orientation())
	if err != nil {
		return nil, nil, err
	}
	right, err = topo.NewFace(face.Surface(), rightWire, nil, face.Orientation())
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func indexOf(edges []topo.OrientedEdge, v *topo.Vertex) int {
	for i, e := range edges {
		if e.Front().SameIdentity(v) {
			return i
		}
	}
	return -1
}

// AddBoundary returns a copy of face with an additional hole wire, used
// after e.g. a sub-feature (boss, pocket outline) is trimmed into an
// existing face. The new boundary must be closed and lie on the face's
// surface, both enforced by topo.NewFace.
func AddBoundary(face *topo.Face, hole *topo.Wire) (*topo.Face, error) {
	holes := append(face.Holes(), hole)
	return topo.NewFace(face.Surface(), face.OuterBoundary(), holes, face.Orientation())
}

// TryWireHomotopy attempts to find a vertex-to-vertex correspondence
// between two wires of equal edge count, the structural precondition for
// treating them as two slices of a single swept/lofted solid (e.g. ruled-
// surface capping in the fillet engine's chamfer variant). It returns
// kernelerr.ErrMismatchedStructure when the wires don't have the same
// edge count; a successful match pairs edges by position starting from
// each wire's first edge.
func TryWireHomotopy(a, b *topo.Wire) ([][2]topo.OrientedEdge, error) {
	if !a.HomotopyCompatible(b) {
		return nil, kernelerr.ErrMismatchedStructure
	}
	ae, be := a.Edges(), b.Edges()
	pairs := make([][2]topo.OrientedEdge, len(ae))
	for i := range ae {
		pairs[i] = [2]topo.OrientedEdge{ae[i], be[i]}
	}
	return pairs, nil
}
