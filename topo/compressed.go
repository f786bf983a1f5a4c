package topo

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
)

// CompressedShell is a flattened, identity-deduplicated view of a Shell:
// each vertex, edge, and face identity appears exactly once regardless of
// how many times it is shared, and faces reference their boundary edges
// by index rather than by pointer. This is the representation
// serialize.Document encodes to JSON (through CompressedSolid) and
// rebuilds topology from when decoding.
type CompressedShell struct {
	Vertices []CompressedVertex
	Edges    []CompressedEdge
	Faces    []CompressedFace
}

// CompressedVertex is a deduplicated vertex: ID is the original
// identity.Token so Decompress can restore sharing.
type CompressedVertex struct {
	ID    identity.Token
	Point geom.Point3
}

// CompressedEdge references its endpoints by index into
// CompressedShell.Vertices.
type CompressedEdge struct {
	ID         identity.Token
	Curve      geom.Curve
	FrontIndex int
	BackIndex  int
}

// CompressedWire is an ordered sequence of (edge index, reversed) pairs.
type CompressedWire struct {
	EdgeIndices []int
	Reversed    []bool
}

// CompressedFace references its surface and boundary wires by edge index
// into CompressedShell.Edges.
type CompressedFace struct {
	ID          identity.Token
	Surface     geom.Surface
	Outer       CompressedWire
	Holes       []CompressedWire
	Orientation bool
}

// CompressShell flattens s into a CompressedShell, assigning each
// distinct vertex and edge identity a single slot.
func CompressShell(s *Shell) CompressedShell {
	vertexIndex := make(map[identity.Token]int)
	edgeIndex := make(map[identity.Token]int)
	var cs CompressedShell

	addVertex := func(v *Vertex) int {
		if i, ok := vertexIndex[v.ID()]; ok {
			return i
		}
		i := len(cs.Vertices)
		vertexIndex[v.ID()] = i
		cs.Vertices = append(cs.Vertices, CompressedVertex{ID: v.ID(), Point: v.Point()})
		return i
	}
	addEdge := func(e *Edge) int {
		if i, ok := edgeIndex[e.ID()]; ok {
			return i
		}
		i := len(cs.Edges)
		edgeIndex[e.ID()] = i
		cs.Edges = append(cs.Edges, CompressedEdge{
			ID:         e.ID(),
			Curve:      e.Curve(),
			FrontIndex: addVertex(e.Front()),
			BackIndex:  addVertex(e.Back()),
		})
		return i
	}
	compressWire := func(w *Wire) CompressedWire {
		var cw CompressedWire
		for _, oe := range w.Edges() {
			var e *Edge
			reversed := false
			if r, ok := oe.(Reversed); ok {
				e = r.inner
				reversed = true
			} else {
				e = oe.(*Edge)
			}
			cw.EdgeIndices = append(cw.EdgeIndices, addEdge(e))
			cw.Reversed = append(cw.Reversed, reversed)
		}
		return cw
	}

	for _, f := range s.faces {
		cf := CompressedFace{
			ID:          f.ID(),
			Surface:     f.Surface(),
			Outer:       compressWire(f.outer),
			Orientation: f.Orientation(),
		}
		for _, h := range f.holes {
			cf.Holes = append(cf.Holes, compressWire(h))
		}
		cs.Faces = append(cs.Faces, cf)
	}
	return cs
}

// Decompress rebuilds a Shell from a CompressedShell, restoring identity
// sharing by reusing the same *Vertex/*Edge pointer for every reference to
// a given slot, as opposed to allocating a fresh identity per occurrence.
func (cs CompressedShell) Decompress() *Shell {
	vertices := make([]*Vertex, len(cs.Vertices))
	for i, cv := range cs.Vertices {
		vertices[i] = &Vertex{id: cv.ID, point: cv.Point}
	}
	edges := make([]*Edge, len(cs.Edges))
	for i, ce := range cs.Edges {
		edges[i] = &Edge{id: ce.ID, curve: ce.Curve, front: vertices[ce.FrontIndex], back: vertices[ce.BackIndex]}
	}
	decompressWire := func(cw CompressedWire) *Wire {
		oes := make([]OrientedEdge, len(cw.EdgeIndices))
		for i, idx := range cw.EdgeIndices {
			if cw.Reversed[i] {
				oes[i] = Reverse(edges[idx])
			} else {
				oes[i] = edges[idx]
			}
		}
		return &Wire{id: identity.New(), edges: oes}
	}

	faces := make([]*Face, len(cs.Faces))
	for i, cf := range cs.Faces {
		holes := make([]*Wire, len(cf.Holes))
		for j, h := range cf.Holes {
			holes[j] = decompressWire(h)
		}
		faces[i] = &Face{
			id:          cf.ID,
			surface:     cf.Surface,
			outer:       decompressWire(cf.Outer),
			holes:       holes,
			orientation: cf.Orientation,
		}
	}
	return &Shell{id: identity.New(), faces: faces}
}

// CompressedSolid is the Solid analogue of CompressedShell.
type CompressedSolid struct {
	Outer CompressedShell
	Voids []CompressedShell
}

// CompressSolid flattens s.
func CompressSolid(s *Solid) CompressedSolid {
	voids := make([]CompressedShell, len(s.voids))
	for i, v := range s.voids {
		voids[i] = CompressShell(v)
	}
	return CompressedSolid{Outer: CompressShell(s.outer), Voids: voids}
}

// Decompress rebuilds a Solid from a CompressedSolid.
func (cs CompressedSolid) Decompress() *Solid {
	voids := make([]*Shell, len(cs.Voids))
	for i, v := range cs.Voids {
		voids[i] = v.Decompress()
	}
	return &Solid{id: identity.New(), outer: cs.Outer.Decompress(), voids: voids}
}
