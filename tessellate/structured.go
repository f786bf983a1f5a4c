package tessellate

import "github.com/go-brep/kernel/geom"

// structuredGrid recognizes the common case of an untrimmed rectangular
// patch -- a face whose outer boundary, once inverted into UV space, is
// an axis-aligned rectangle with no holes -- and emits a regular grid of
// quads (as triangle pairs) instead of running ear clipping. This avoids
// both the cost and the occasional sliver triangles of general
// triangulation on the shapes that dominate most solids: box faces,
// cylinder barrels, planar sweeps.
//
// It reports ok=false whenever the boundary isn't a clean UV rectangle,
// letting the caller fall back to the general boundary-conforming path.
func structuredGrid(loop uvLoop, hasHoles bool, divisions int) (corners []geom.Point2, tris [][3]int, ok bool) {
	if hasHoles || len(loop) != 4 || divisions < 1 {
		return nil, nil, false
	}

	const axisTol = 1e-7
	for i := 0; i < 4; i++ {
		a := loop[i]
		b := loop[(i+1)%4]
		if absf(a.X-b.X) > axisTol && absf(a.Y-b.Y) > axisTol {
			return nil, nil, false
		}
	}

	uMin, uMax := loop[0].X, loop[0].X
	vMin, vMax := loop[0].Y, loop[0].Y
	for _, p := range loop[1:] {
		uMin, uMax = minf2(uMin, p.X), maxf2(uMax, p.X)
		vMin, vMax = minf2(vMin, p.Y), maxf2(vMax, p.Y)
	}

	n := divisions + 1
	corners = make([]geom.Point2, 0, n*n)
	index := func(i, j int) int { return i*n + j }
	for i := 0; i < n; i++ {
		u := uMin + (uMax-uMin)*float64(i)/float64(divisions)
		for j := 0; j < n; j++ {
			v := vMin + (vMax-vMin)*float64(j)/float64(divisions)
			corners = append(corners, geom.Point2{X: u, Y: v})
		}
	}

	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			p00 := index(i, j)
			p10 := index(i+1, j)
			p11 := index(i+1, j+1)
			p01 := index(i, j+1)
			tris = append(tris, [3]int{p00, p10, p11}, [3]int{p00, p11, p01})
		}
	}
	return corners, tris, true
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func minf2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
