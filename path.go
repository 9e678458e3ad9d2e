package reticle

import (
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered outline made of lines and quadratic curves.
// Spoke outlines are single closed subpaths suitable for non-zero fills.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

func (p *Path) moveToPt(pt Point)       { p.MoveTo(pt.X, pt.Y) }
func (p *Path) lineToPt(pt Point)       { p.LineTo(pt.X, pt.Y) }
func (p *Path) quadToPt(ctrl, pt Point) { p.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y) }

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.elements)
}

// Points returns the on-curve points of the path in order: the start of
// every subpath and the end point of every segment. Control points are
// omitted.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Closed reports whether the path ends with a Close element.
func (p *Path) Closed() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}

// SVGData serializes the path as SVG path data ("M x,y L x,y Q cx,cy x,y Z").
// Coordinates use the shortest decimal form that round-trips.
func (p *Path) SVGData() string {
	var sb strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteByte('M')
			writePoint(&sb, e.Point)
		case LineTo:
			sb.WriteByte('L')
			writePoint(&sb, e.Point)
		case QuadTo:
			sb.WriteByte('Q')
			writePoint(&sb, e.Control)
			sb.WriteByte(' ')
			writePoint(&sb, e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, pt Point) {
	sb.WriteString(FormatNumber(pt.X))
	sb.WriteByte(',')
	sb.WriteString(FormatNumber(pt.Y))
}

// FormatNumber formats v in the shortest decimal form that round-trips.
// Negative zero is written as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
