package mask

import (
	"math"
	"sort"

	"github.com/xhgen/reticle/internal/path"
)

// epsilon is the minimum vertical extent of an edge.
const epsilon = 1e-9

// edge is a non-horizontal polygon side prepared for scanline conversion.
type edge struct {
	// yMin and yMax bound the edge vertically (yMin < yMax).
	yMin, yMax float64
	// xAtYMin is the X coordinate at yMin.
	xAtYMin float64
	// dxdy is the inverse slope: change in X per unit Y.
	dxdy float64
	// winding is +1 for edges that run downward and -1 for upward ones.
	winding int
}

// newEdge returns the edge from (x0, y0) to (x1, y1), or false if it is
// horizontal.
func newEdge(x0, y0, x1, y1 float64) (edge, bool) {
	winding := 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}
	dy := y1 - y0
	if dy < epsilon {
		return edge{}, false
	}
	return edge{
		yMin:    y0,
		yMax:    y1,
		xAtYMin: x0,
		dxdy:    (x1 - x0) / dy,
		winding: winding,
	}, true
}

// xAt returns the X coordinate of the edge at y.
func (e edge) xAt(y float64) float64 {
	return e.xAtYMin + (y-e.yMin)*e.dxdy
}

// active reports whether a scanline at y crosses the edge. The interval is
// half-open so shared vertices count once.
func (e edge) active(y float64) bool {
	return y >= e.yMin && y < e.yMax
}

// edgeList collects the edges of one fill together with their bounds.
type edgeList struct {
	edges      []edge
	minY, maxY float64
}

func buildEdges(polys []path.Polygon) edgeList {
	el := edgeList{minY: math.Inf(1), maxY: math.Inf(-1)}
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			a, b := poly[i], poly[(i+1)%n]
			e, ok := newEdge(a.X, a.Y, b.X, b.Y)
			if !ok {
				continue
			}
			el.edges = append(el.edges, e)
			el.minY = math.Min(el.minY, e.yMin)
			el.maxY = math.Max(el.maxY, e.yMax)
		}
	}
	return el
}

// crossing is one edge intersection on a scanline.
type crossing struct {
	x       float64
	winding int
}

// crossings returns the sorted intersections of the scanline at y.
func (el edgeList) crossings(y float64, buf []crossing) []crossing {
	buf = buf[:0]
	for _, e := range el.edges {
		if e.active(y) {
			buf = append(buf, crossing{x: e.xAt(y), winding: e.winding})
		}
	}
	sort.Slice(buf, func(i, j int) bool { return buf[i].x < buf[j].x })
	return buf
}
