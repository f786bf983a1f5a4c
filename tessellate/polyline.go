package tessellate

import (
	"sync"

	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/topo"
)

// polylineCache holds one sampled point sequence per edge identity,
// populated in a sequential pre-pass over every face's boundary and read
// concurrently afterward by the per-face tessellation workers. Building
// it sequentially means an edge shared by two faces (the common case:
// every interior edge of a shell) is walked and sampled exactly once,
// and every face that borders it sees byte-identical boundary points --
// required for the two faces' meshes to share a seam rather than leave
// a tolerance-sized crack.
type polylineCache struct {
	mu      sync.RWMutex
	entries map[identity.Token]polylineEntry
}

type polylineEntry struct {
	points []geom.Point3 // sampled Front->Back along frontPoint's orientation
	front  geom.Point3
}

func newPolylineCache() *polylineCache {
	return &polylineCache{entries: make(map[identity.Token]polylineEntry)}
}

// build walks every wire of every face once, sequentially, sampling any
// edge identity not already present.
func (c *polylineCache) build(shell *topo.Shell, tol float64) {
	for _, face := range shell.Faces() {
		c.buildWire(face.OuterBoundary(), tol)
		for _, hole := range face.Holes() {
			c.buildWire(hole, tol)
		}
	}
}

func (c *polylineCache) buildWire(w *topo.Wire, tol float64) {
	if w == nil {
		return
	}
	for _, oe := range w.Edges() {
		id := oe.ID()
		if _, ok := c.entries[id]; ok {
			continue
		}
		pts := adaptiveSample(oe.Curve(), tol)
		c.entries[id] = polylineEntry{points: pts, front: oe.Front().Point()}
	}
}

// polyline returns oe's boundary points walked Front->Back in oe's own
// orientation, reversing the cached sequence if oe's orientation is
// flipped relative to whichever orientation populated the cache.
func (c *polylineCache) polyline(oe topo.OrientedEdge, tol float64) []geom.Point3 {
	c.mu.RLock()
	entry, ok := c.entries[oe.ID()]
	c.mu.RUnlock()
	if !ok {
		// Not reached when build has run first, but a direct caller (or a
		// unit test exercising a single edge) still gets a correct answer.
		pts := adaptiveSample(oe.Curve(), tol)
		c.mu.Lock()
		c.entries[oe.ID()] = polylineEntry{points: pts, front: oe.Front().Point()}
		c.mu.Unlock()
		return pts
	}
	if oe.Front().Point().ApproxEqual(entry.front, tol) {
		return entry.points
	}
	reversed := make([]geom.Point3, len(entry.points))
	for i, p := range entry.points {
		reversed[len(entry.points)-1-i] = p
	}
	return reversed
}

// adaptiveSample walks c's domain with a sagitta (chord-deviation) test:
// a span is bisected whenever its midpoint departs from the chord
// connecting its ends by more than tol, down to maxSagittaDepth levels.
// A straight Line converges after zero bisections since its midpoint
// always lies on the chord.
func adaptiveSample(c geom.Curve, tol float64) []geom.Point3 {
	bounds := c.Bounds()
	const maxSagittaDepth = 10

	var out []geom.Point3
	var walk func(tLo, tHi float64, pLo, pHi geom.Point3, depth int)
	walk = func(tLo, tHi float64, pLo, pHi geom.Point3, depth int) {
		tMid := (tLo + tHi) / 2
		pMid := c.Evaluate(tMid)
		if depth >= maxSagittaDepth || sagitta(pLo, pMid, pHi) <= tol {
			out = append(out, pLo)
			return
		}
		walk(tLo, tMid, pLo, pMid, depth+1)
		walk(tMid, tHi, pMid, pHi, depth+1)
	}

	pLo := c.Evaluate(bounds.Min)
	pHi := c.Evaluate(bounds.Max)
	walk(bounds.Min, bounds.Max, pLo, pHi, 0)
	out = append(out, pHi)
	return out
}

// sagitta is the perpendicular distance from mid to the chord lo-hi.
func sagitta(lo, mid, hi geom.Point3) float64 {
	chord := hi.Sub(lo)
	length := chord.Length()
	if length < 1e-15 {
		return mid.Sub(lo).Length()
	}
	dir := chord.Scale(1 / length)
	toMid := mid.Sub(lo)
	along := toMid.Dot(dir)
	proj := lo.Add(dir.Scale(along))
	return mid.Sub(proj).Length()
}
