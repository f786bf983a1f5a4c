package serialize

import (
	"encoding/json"

	"github.com/go-brep/kernel/kernelerr"
	"github.com/go-brep/kernel/mesh"
)

// EncodeMesh marshals m to deterministic, indented JSON. mesh.PolygonMesh
// is already built entirely from exported, JSON-native fields, so no DTO
// layer is needed here the way geom.Curve/Surface required one.
func EncodeMesh(m *mesh.PolygonMesh) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// DecodeMesh parses data into a PolygonMesh and revalidates that every
// triangle corner's indices actually lie within the decoded attribute
// buffers (or are the -1 sentinel for an absent UV/normal), rejecting a
// truncated or hand-edited payload with kernelerr.ErrIoFormat rather than
// handing back a mesh that panics the first time a caller indexes it.
func DecodeMesh(data []byte) (*mesh.PolygonMesh, error) {
	var m mesh.PolygonMesh
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, kernelerr.ErrIoFormat
	}
	for _, tri := range m.Triangles {
		for _, c := range tri {
			if c.Position < 0 || c.Position >= len(m.Positions) {
				return nil, kernelerr.ErrIoFormat
			}
			if c.UV != -1 && (c.UV < 0 || c.UV >= len(m.UVs)) {
				return nil, kernelerr.ErrIoFormat
			}
			if c.Normal != -1 && (c.Normal < 0 || c.Normal >= len(m.Normals)) {
				return nil, kernelerr.ErrIoFormat
			}
		}
	}
	return &m, nil
}
