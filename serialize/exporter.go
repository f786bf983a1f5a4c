package serialize

import (
	"io"

	"github.com/go-brep/kernel/mesh"
	"github.com/go-brep/kernel/topo"
)

// StepExporter writes a solid's boundary representation to an external
// CAD interchange format (ISO 10303, colloquially STEP). The kernel
// ships no concrete implementation: a STEP writer is a large, narrowly
// scoped piece of machinery (AP203/AP214 entity schemas, an
// uncompressed-curve fallback for variants a receiving CAD package can't
// read back) that belongs in its own adapter module built against a
// specific downstream target, not baked into the kernel's core.
type StepExporter interface {
	ExportStep(w io.Writer, solid *topo.Solid) error
}

// MeshExporter writes a tessellated mesh to an external rendering or
// interchange format (Wavefront OBJ, binary STL, glTF). Like
// StepExporter, this is a contract for an adapter to implement against a
// concrete target; the kernel itself only produces the mesh.PolygonMesh
// the adapter consumes.
type MeshExporter interface {
	ExportMesh(w io.Writer, m *mesh.PolygonMesh) error
}
