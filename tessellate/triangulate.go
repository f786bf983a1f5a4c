package tessellate

import "github.com/go-brep/kernel/geom"

// uvLoop is a closed polygon in a surface's parameter space, in the
// order the face's wire visits its vertices; that order may be clockwise
// in (u, v), and triangulateFace reverses such a loop before clipping.
type uvLoop []geom.Point2

// triangulateFace runs ear clipping over outer with inner stitched in as
// bridges, returning triangle corners as indices into a combined point
// list (outer followed by each inner loop in order). This is a
// boundary-conforming triangulation rather than a quality (Delaunay)
// one: every output triangle's vertices are drawn from the sampled
// boundary polylines, so the result never introduces new points, at the
// cost of occasional slivers on highly elongated trim regions.
func triangulateFace(outer uvLoop, inner []uvLoop) ([]geom.Point2, [][3]int) {
	points := append(uvLoop{}, outer...)
	// earClip only finds ears on a counterclockwise ring, so a clockwise
	// outer loop (and with it each hole) is walked in reverse.
	area := 0.0
	for i := range outer {
		area += cross2(outer[i], outer[(i+1)%len(outer)])
	}
	ring := make([]int, len(outer))
	for i := range ring {
		ring[i] = i
		if area < 0 {
			ring[i] = len(outer) - 1 - i
		}
	}

	for _, hole := range inner {
		if len(hole) < 3 {
			continue
		}
		holeStart := len(points)
		points = append(points, hole...)
		holeRing := make([]int, len(hole))
		for i := range holeRing {
			holeRing[i] = holeStart + i
			if area < 0 {
				holeRing[i] = holeStart + len(hole) - 1 - i
			}
		}
		ring = bridgeHole(ring, holeRing, points)
	}

	tris := earClip(ring, points)
	return points, tris
}

// bridgeHole splices holeRing into ring by connecting the hole's
// point nearest to any ring vertex to that ring vertex with a
// zero-area double edge, the standard technique for reducing a
// polygon-with-holes to a single simple ring ear clipping can consume.
func bridgeHole(ring, holeRing []int, points uvLoop) []int {
	bestRingPos, bestHolePos := 0, 0
	bestDist := 1e300
	for ri, rp := range ring {
		for hi, hp := range holeRing {
			d := lengthSq2(sub2(points[rp], points[hp]))
			if d < bestDist {
				bestDist = d
				bestRingPos, bestHolePos = ri, hi
			}
		}
	}

	rotatedHole := append(append([]int{}, holeRing[bestHolePos:]...), holeRing[:bestHolePos]...)

	out := make([]int, 0, len(ring)+len(rotatedHole)+2)
	out = append(out, ring[:bestRingPos+1]...)
	out = append(out, rotatedHole...)
	out = append(out, rotatedHole[0], ring[bestRingPos])
	out = append(out, ring[bestRingPos+1:]...)
	return out
}

// earClip triangulates a simple (possibly non-convex) polygon given as
// indices into points, by repeatedly clipping a convex, empty ear.
func earClip(ring []int, points uvLoop) [][3]int {
	n := len(ring)
	if n < 3 {
		return nil
	}
	remaining := append([]int{}, ring...)
	var tris [][3]int

	guard := 0
	for len(remaining) > 3 && guard < n*n+16 {
		guard++
		clipped := false
		for i := range remaining {
			a := remaining[(i-1+len(remaining))%len(remaining)]
			b := remaining[i]
			c := remaining[(i+1)%len(remaining)]
			if !isConvex(points[a], points[b], points[c]) {
				continue
			}
			if anyPointInside(remaining, points, a, b, c, i) {
				continue
			}
			tris = append(tris, [3]int{a, b, c})
			remaining = append(append([]int{}, remaining[:i]...), remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break // degenerate/self-intersecting input; emit what we have
		}
	}
	if len(remaining) == 3 {
		tris = append(tris, [3]int{remaining[0], remaining[1], remaining[2]})
	}
	return tris
}

func isConvex(a, b, c geom.Point2) bool {
	return cross2(sub2(b, a), sub2(c, b)) > 0
}

func anyPointInside(ring []int, points uvLoop, a, b, c int, skipIdx int) bool {
	for j, p := range ring {
		if j == skipIdx {
			continue
		}
		if p == a || p == b || p == c {
			continue
		}
		if pointInTriangle(points[p], points[a], points[b], points[c]) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c geom.Point2) bool {
	d1 := cross2(sub2(b, a), sub2(p, a))
	d2 := cross2(sub2(c, b), sub2(p, b))
	d3 := cross2(sub2(a, c), sub2(p, c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross2(a, b geom.Point2) float64 { return a.X*b.Y - a.Y*b.X }

func sub2(p, q geom.Point2) geom.Point2 { return geom.Point2{X: p.X - q.X, Y: p.Y - q.Y} }

func lengthSq2(v geom.Point2) float64 { return v.X*v.X + v.Y*v.Y }
