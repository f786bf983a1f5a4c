// Command brepdemo builds a handful of solids through the kernel's
// modeling operators, tessellates each, and writes both the compressed
// B-rep document and the triangle mesh to the output directory as JSON.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	kernel "github.com/go-brep/kernel"
	"github.com/go-brep/kernel/fillet"
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/model"
	"github.com/go-brep/kernel/serialize"
	"github.com/go-brep/kernel/tessellate"
	"github.com/go-brep/kernel/topo"
)

func main() {
	outDir := flag.String("out", "out", "directory to write document/mesh pairs into")
	tol := flag.Float64("tol", kernel.TopoEpsilon, "topological tolerance used to build each solid")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("brepdemo: create output directory: %v", err)
	}

	cfg := kernel.New()

	demos := []struct {
		name string
		fn   func(tol float64) (*topo.Solid, error)
	}{
		{"cube", buildCube},
		{"torus", buildTorus},
		{"punched-cube", buildPunchedCube},
		{"filleted-cube", buildFilletedCube},
	}

	for _, d := range demos {
		solid, err := d.fn(*tol)
		if err != nil {
			log.Fatalf("brepdemo: %s: build: %v", d.name, err)
		}
		log.Printf("%s: %d face(s), regular=%v", d.name, len(solid.OuterShell().Faces()), solid.OuterShell().Regular())

		if err := writeDocument(*outDir, d.name, solid); err != nil {
			log.Fatalf("brepdemo: %s: write document: %v", d.name, err)
		}
		if err := writeMesh(*outDir, d.name, solid, *tol, cfg); err != nil {
			log.Fatalf("brepdemo: %s: write mesh: %v", d.name, err)
		}
	}

	log.Printf("wrote %d solids to %s", len(demos), *outDir)
}

func writeDocument(outDir, name string, solid *topo.Solid) error {
	doc, err := serialize.TryNewDocument(solid)
	if err != nil {
		return err
	}
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name+".brep.json"), data, 0o644)
}

func writeMesh(outDir, name string, solid *topo.Solid, tol float64, cfg kernel.Config) error {
	m, err := tessellate.Tessellate(solid.OuterShell(), tol, cfg)
	if err != nil {
		return err
	}
	data, err := serialize.EncodeMesh(m)
	if err != nil {
		return err
	}
	log.Printf("%s: %d triangles", name, len(m.Triangles))
	return os.WriteFile(filepath.Join(outDir, name+".mesh.json"), data, 0o644)
}

// squareProfile returns a closed square wire of the given side in the z=0 plane,
// counterclockwise when viewed from +Z, for TSweep to extrude.
func squareProfile(side, tol float64) (*topo.Wire, error) {
	a := topo.NewVertex(geom.Point3{})
	b := topo.NewVertex(geom.Point3{X: side})
	c := topo.NewVertex(geom.Point3{X: side, Y: side})
	d := topo.NewVertex(geom.Point3{Y: side})
	edge := func(from, to *topo.Vertex) (*topo.Edge, error) {
		return topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
	}
	ab, err := edge(a, b)
	if err != nil {
		return nil, err
	}
	bc, err := edge(b, c)
	if err != nil {
		return nil, err
	}
	cd, err := edge(c, d)
	if err != nil {
		return nil, err
	}
	da, err := edge(d, a)
	if err != nil {
		return nil, err
	}
	return topo.NewWire([]topo.OrientedEdge{ab, bc, cd, da})
}

// buildCube sweeps a unit square straight up by one unit.
func buildCube(tol float64) (*topo.Solid, error) {
	profile, err := squareProfile(1, tol)
	if err != nil {
		return nil, err
	}
	result, err := model.TSweep(profile, geom.Vector3{Z: 1}, tol)
	if err != nil {
		return nil, err
	}
	return result.(*topo.Solid), nil
}

// buildTorus revolves a small offset square profile, which lies in the
// z=0 plane, one full turn around the Y axis (an axis in that plane),
// giving a ring with a square cross-section.
func buildTorus(tol float64) (*topo.Solid, error) {
	profile, err := squareProfile(0.3, tol)
	if err != nil {
		return nil, err
	}
	// Offset the profile away from the axis so the revolved solid doesn't
	// self-intersect at the axis.
	offset, err := offsetProfile(profile, 1, tol)
	if err != nil {
		return nil, err
	}
	return model.RSweep(offset, geom.Point3{}, geom.Vector3{Y: 1}, 2*3.14159265358979, tol)
}

// offsetProfile rebuilds profile translated by dx along X, since TSweep
// and RSweep both consume a fresh wire rather than mutating one in
// place.
func offsetProfile(w *topo.Wire, dx, tol float64) (*topo.Wire, error) {
	edges := w.Edges()
	verts := make([]*topo.Vertex, 0, len(edges))
	for _, e := range edges {
		p := e.Front().Point()
		verts = append(verts, topo.NewVertex(geom.Point3{X: p.X + dx, Y: p.Y, Z: p.Z}))
	}
	oriented := make([]topo.OrientedEdge, len(verts))
	for i, from := range verts {
		to := verts[(i+1)%len(verts)]
		e, err := topo.NewEdge(geom.NewLine(from.Point(), to.Point().Sub(from.Point()), 0, 1), from, to, tol)
		if err != nil {
			return nil, err
		}
		oriented[i] = e
	}
	return topo.NewWire(oriented)
}

// buildPunchedCube subtracts a small interior box from a larger one,
// exercising model.Boolean's Subtract operator.
func buildPunchedCube(tol float64) (*topo.Solid, error) {
	outer := model.Box{Min: geom.Point3{X: -1, Y: -1, Z: -1}, Max: geom.Point3{X: 1, Y: 1, Z: 1}}
	hole := model.Box{Min: geom.Point3{X: -0.4, Y: -0.4, Z: -0.4}, Max: geom.Point3{X: 0.4, Y: 0.4, Z: 0.4}}
	return model.Boolean(outer, hole, model.Subtract, tol)
}

// buildFilletedCube rounds one edge of a unit box with a constant-radius
// blend.
func buildFilletedCube(tol float64) (*topo.Solid, error) {
	solid, err := model.NewBoxSolid(model.Box{Min: geom.Point3{}, Max: geom.Point3{X: 1, Y: 1, Z: 1}}, tol)
	if err != nil {
		return nil, err
	}
	shell := solid.OuterShell()
	edgeID := shell.Faces()[0].OuterBoundary().Edges()[0].ID()

	opts := fillet.DefaultOptions()
	opts.Radius = fillet.ConstantRadius(0.2)
	result, err := fillet.Run(shell, edgeID, opts)
	if err != nil {
		return nil, err
	}
	return topo.NewSolid(result.Shell, nil)
}
