// Package path flattens reticle outlines into polygons.
package path

import (
	"math"

	"github.com/xhgen/reticle"
)

// Tolerance is the default maximum distance, in output units, between a
// curve and its flattened polyline.
const Tolerance = 0.1

// maxDepth bounds recursive subdivision for degenerate curves.
const maxDepth = 16

// Options selects how curves are flattened. A positive Steps samples every
// quadratic at Steps uniform parameter values and ignores Tolerance.
type Options struct {
	Tolerance float64
	Steps     int
}

// Polygon is one closed ring of points. The last point is not repeated.
type Polygon []reticle.Point

// Flatten converts p into polygons, one per subpath. Every subpath is
// treated as closed, which is what a fill needs.
func Flatten(p *reticle.Path, opts Options) []Polygon {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = Tolerance
	}

	var (
		polys   []Polygon
		current Polygon
		last    reticle.Point
	)
	flush := func() {
		current = trimClosingPoint(current)
		if len(current) >= 3 {
			polys = append(polys, current)
		}
		current = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case reticle.MoveTo:
			flush()
			current = append(current, e.Point)
			last = e.Point

		case reticle.LineTo:
			current = append(current, e.Point)
			last = e.Point

		case reticle.QuadTo:
			if opts.Steps > 0 {
				current = append(current, sampleQuadratic(last, e.Control, e.Point, opts.Steps)...)
			} else {
				current = append(current, flattenQuadratic(last, e.Control, e.Point, tol)...)
			}
			last = e.Point

		case reticle.Close:
			flush()
		}
	}
	flush()
	return polys
}

// Scale returns a copy of polys with every coordinate multiplied by s.
func Scale(polys []Polygon, s float64) []Polygon {
	out := make([]Polygon, len(polys))
	for i, poly := range polys {
		scaled := make(Polygon, len(poly))
		for j, pt := range poly {
			scaled[j] = pt.Mul(s)
		}
		out[i] = scaled
	}
	return out
}

func trimClosingPoint(poly Polygon) Polygon {
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		return poly[:len(poly)-1]
	}
	return poly
}

// sampleQuadratic evaluates the curve at t = 1/steps, 2/steps, ..., 1.
func sampleQuadratic(p0, p1, p2 reticle.Point, steps int) []reticle.Point {
	points := make([]reticle.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		points = append(points, reticle.Point{
			X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
			Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
		})
	}
	return points
}

// flattenQuadratic flattens a quadratic Bezier curve into line segments.
func flattenQuadratic(p0, p1, p2 reticle.Point, tolerance float64) []reticle.Point {
	var points []reticle.Point
	flattenQuadraticRec(p0, p1, p2, tolerance, 0, &points)
	return points
}

// flattenQuadraticRec recursively subdivides a quadratic Bezier curve.
func flattenQuadraticRec(p0, p1, p2 reticle.Point, tolerance float64, depth int, points *[]reticle.Point) {
	// Distance from the control point to the chord bounds the curve's
	// deviation from it.
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, depth+1, points)
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b reticle.Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.X*ab.X + ab.Y*ab.Y
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / abLen2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
