// Package tessellate converts a topological shell into a rendering- and
// export-ready polygon mesh: each face's trimmed region is sampled and
// triangulated in its own parameter space, then the per-face results are
// merged into one mesh.PolygonMesh.
package tessellate

import (
	"fmt"

	kernel "github.com/go-brep/kernel"
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/mesh"
	"github.com/go-brep/kernel/topo"
)

// Tessellate samples and triangulates every face of shell, merging the
// results into a single mesh. Boundary sampling is driven by tolerance
// (the maximum chord-to-curve deviation allowed before an edge's
// polyline is refined further); faces are tessellated concurrently via
// Shell.FaceIterPar.
func Tessellate(shell *topo.Shell, tolerance float64, cfg kernel.Config) (*mesh.PolygonMesh, error) {
	if tolerance <= 0 {
		tolerance = cfg.Epsilon
	}

	cache := newPolylineCache()
	cache.build(shell, tolerance)

	faces := shell.Faces()
	editors := make([]*mesh.PolygonMeshEditor, len(faces))
	index := make(map[identity.Token]int, len(faces))
	for i, f := range faces {
		index[f.ID()] = i
	}

	err := shell.FaceIterPar(func(face *topo.Face) error {
		editor, err := tessellateFace(face, cache, tolerance)
		if err != nil {
			return fmt.Errorf("tessellate face %v: %w", face.ID(), err)
		}
		editors[index[face.ID()]] = editor
		return nil
	})
	if err != nil {
		return nil, err
	}

	merged := mesh.NewPolygonMeshEditor()
	for _, e := range editors {
		merged.Merge(e)
	}
	return merged.Build(), nil
}

// tessellateFace triangulates a single face's trimmed region and emits
// its own PolygonMeshEditor, merged into the shell-wide result by the
// caller. Each face builds an independent editor rather than sharing one
// so the per-face fan-out in Tessellate needs no locking.
func tessellateFace(face *topo.Face, cache *polylineCache, tol float64) (*mesh.PolygonMeshEditor, error) {
	surface := face.Surface()

	outerUV, outerDivisions, err := uvLoopFor(face.OuterBoundary(), surface, cache, tol)
	if err != nil {
		return nil, err
	}
	holes := face.Holes()
	holesUV := make([]uvLoop, 0, len(holes))
	for _, hole := range holes {
		uv, _, err := uvLoopFor(hole, surface, cache, tol)
		if err != nil {
			return nil, err
		}
		holesUV = append(holesUV, uv)
	}

	var corners []geom.Point2
	var tris [][3]int
	if grid, gridTris, ok := structuredGrid(outerUV, len(holesUV) > 0, outerDivisions); ok {
		corners, tris = grid, gridTris
	} else {
		corners, tris = triangulateFace(outerUV, holesUV)
	}

	editor := mesh.NewPolygonMeshEditor()
	flip := !face.Orientation()
	posIdx := make([]int, len(corners))
	uvIdx := make([]int, len(corners))
	normIdx := make([]int, len(corners))
	for i, uv := range corners {
		posIdx[i] = editor.AddPosition(surface.Evaluate(uv.X, uv.Y))
		uvIdx[i] = editor.AddUV(uv)
		if n, ok := surface.Normal(uv.X, uv.Y); ok {
			if flip {
				n = n.Neg()
			}
			normIdx[i] = editor.AddNormal(n)
		} else {
			normIdx[i] = -1
		}
	}

	corner := func(i int) mesh.Corner {
		return mesh.Corner{Position: posIdx[i], UV: uvIdx[i], Normal: normIdx[i]}
	}
	for _, tri := range tris {
		a, b, c := tri[0], tri[1], tri[2]
		if flip {
			b, c = c, b
		}
		editor.AddTriangle(corner(a), corner(b), corner(c))
	}
	return editor, nil
}

// uvLoopFor projects wire's sampled boundary into surface's parameter
// space, dropping each edge's final sample since it coincides with the
// next edge's first. It also returns the largest number of segments any
// one edge was sampled into (at least 1), a coarse resolution hint
// structuredGrid uses when the loop turns out to be a clean rectangle.
func uvLoopFor(wire *topo.Wire, surface geom.Surface, cache *polylineCache, tol float64) (uvLoop, int, error) {
	var loop uvLoop
	var hint *geom.UV
	maxSamples := 0
	for _, oe := range wire.Edges() {
		pts := cache.polyline(oe, tol)
		if len(pts) > maxSamples {
			maxSamples = len(pts)
		}
		for i, p := range pts {
			if i == len(pts)-1 {
				continue
			}
			uv, _ := surface.Invert(p, hint)
			hint = &uv
			loop = append(loop, geom.Point2{X: uv.U, Y: uv.V})
		}
	}
	divisions := maxSamples - 1
	if divisions < 1 {
		divisions = 1
	}
	return loop, divisions, nil
}
