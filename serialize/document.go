package serialize

import (
	"encoding/json"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/topo"
)

// formatVersion is bumped whenever Document's wire shape changes
// incompatibly; Decode rejects a payload from a newer major version.
const formatVersion = 1

// Document is the deterministic, versioned wire form of a topo.Solid.
// TryNewDocument is the only constructor: it revalidates the solid's
// geometry is entirely representable (see MarshalCurve/MarshalSurface)
// before returning a Document that Encode can never fail to marshal.
type Document struct {
	Version int      `json:"version"`
	Solid   SolidDTO `json:"solid"`
}

type VertexDTO struct {
	ID    identity.Token `json:"id"`
	Point geom.Point3    `json:"point"`
}

type EdgeDTO struct {
	ID    identity.Token `json:"id"`
	Curve CurveDTO       `json:"curve"`
	Front int            `json:"front"`
	Back  int            `json:"back"`
}

type WireDTO struct {
	EdgeIndices []int  `json:"edgeIndices"`
	Reversed    []bool `json:"reversed"`
}

type FaceDTO struct {
	ID          identity.Token `json:"id"`
	Surface     SurfaceDTO     `json:"surface"`
	Outer       WireDTO        `json:"outer"`
	Holes       []WireDTO      `json:"holes,omitempty"`
	Orientation bool           `json:"orientation"`
}

type ShellDTO struct {
	Vertices []VertexDTO `json:"vertices"`
	Edges    []EdgeDTO   `json:"edges"`
	Faces    []FaceDTO   `json:"faces"`
}

type SolidDTO struct {
	Outer ShellDTO   `json:"outer"`
	Voids []ShellDTO `json:"voids,omitempty"`
}

// TryNewDocument compresses solid and converts every curve and surface
// to its wire form, failing with the bare kernelerr.ErrIoFormat sentinel
// if any geometry variant has no static representation.
func TryNewDocument(solid *topo.Solid) (*Document, error) {
	compressed := topo.CompressSolid(solid)
	dto, err := solidToDTO(compressed)
	if err != nil {
		return nil, err
	}
	return &Document{Version: formatVersion, Solid: dto}, nil
}

// Encode marshals the document to deterministic, indented JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// DecodeDocument parses data into a Document and immediately rebuilds its
// topo.Solid, so a caller never holds a Document whose geometry doesn't
// actually reconstruct.
func DecodeDocument(data []byte) (*topo.Solid, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, kernelerr.ErrIoFormat
	}
	if d.Version > formatVersion {
		return nil, kernelerr.ErrIoFormat
	}
	compressed, err := dtoToSolid(d.Solid)
	if err != nil {
		return nil, err
	}
	outer := compressed.Outer.Decompress()
	voids := make([]*topo.Shell, len(compressed.Voids))
	for i, v := range compressed.Voids {
		voids[i] = v.Decompress()
	}
	solid, err := topo.NewSolid(outer, voids)
	if err != nil {
		return nil, err
	}
	return solid, nil
}

func solidToDTO(cs topo.CompressedSolid) (SolidDTO, error) {
	outer, err := shellToDTO(cs.Outer)
	if err != nil {
		return SolidDTO{}, err
	}
	voids := make([]ShellDTO, len(cs.Voids))
	for i, v := range cs.Voids {
		voids[i], err = shellToDTO(v)
		if err != nil {
			return SolidDTO{}, err
		}
	}
	return SolidDTO{Outer: outer, Voids: voids}, nil
}

func shellToDTO(cs topo.CompressedShell) (ShellDTO, error) {
	var out ShellDTO
	for _, v := range cs.Vertices {
		out.Vertices = append(out.Vertices, VertexDTO{ID: v.ID, Point: v.Point})
	}
	for _, e := range cs.Edges {
		curve, err := MarshalCurve(e.Curve)
		if err != nil {
			return ShellDTO{}, err
		}
		out.Edges = append(out.Edges, EdgeDTO{ID: e.ID, Curve: curve, Front: e.FrontIndex, Back: e.BackIndex})
	}
	for _, f := range cs.Faces {
		surface, err := MarshalSurface(f.Surface)
		if err != nil {
			return ShellDTO{}, err
		}
		face := FaceDTO{
			ID:          f.ID,
			Surface:     surface,
			Outer:       WireDTO{EdgeIndices: f.Outer.EdgeIndices, Reversed: f.Outer.Reversed},
			Orientation: f.Orientation,
		}
		for _, h := range f.Holes {
			face.Holes = append(face.Holes, WireDTO{EdgeIndices: h.EdgeIndices, Reversed: h.Reversed})
		}
		out.Faces = append(out.Faces, face)
	}
	return out, nil
}

func dtoToSolid(d SolidDTO) (topo.CompressedSolid, error) {
	outer, err := dtoToShell(d.Outer)
	if err != nil {
		return topo.CompressedSolid{}, err
	}
	voids := make([]topo.CompressedShell, len(d.Voids))
	for i, v := range d.Voids {
		voids[i], err = dtoToShell(v)
		if err != nil {
			return topo.CompressedSolid{}, err
		}
	}
	return topo.CompressedSolid{Outer: outer, Voids: voids}, nil
}

func dtoToShell(d ShellDTO) (topo.CompressedShell, error) {
	var cs topo.CompressedShell
	for _, v := range d.Vertices {
		cs.Vertices = append(cs.Vertices, topo.CompressedVertex{ID: v.ID, Point: v.Point})
	}
	for _, e := range d.Edges {
		curve, err := UnmarshalCurve(e.Curve)
		if err != nil {
			return topo.CompressedShell{}, err
		}
		cs.Edges = append(cs.Edges, topo.CompressedEdge{ID: e.ID, Curve: curve, FrontIndex: e.Front, BackIndex: e.Back})
	}
	for _, f := range d.Faces {
		surface, err := UnmarshalSurface(f.Surface)
		if err != nil {
			return topo.CompressedShell{}, err
		}
		cf := topo.CompressedFace{
			ID:          f.ID,
			Surface:     surface,
			Outer:       topo.CompressedWire{EdgeIndices: f.Outer.EdgeIndices, Reversed: f.Outer.Reversed},
			Orientation: f.Orientation,
		}
		for _, h := range f.Holes {
			cf.Holes = append(cf.Holes, topo.CompressedWire{EdgeIndices: h.EdgeIndices, Reversed: h.Reversed})
		}
		cs.Faces = append(cs.Faces, cf)
	}
	return cs, nil
}
