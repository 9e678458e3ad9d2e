package reticle

import "math"

// RazorThreshold is the tip width at or below which spokes use the razor
// taper instead of the beveled one.
const RazorThreshold = 0.01

// Razor taper cross-sections, as fractions of the base-to-tip distance
// (measured from the base) and of the base half-width.
const (
	razorShoulderDepth = 0.25
	razorMidDepth      = 0.6
	razorPinchDepth    = 0.9

	razorShoulderWidth = 0.9
	razorMidWidth      = 0.6
	razorPinchWidth    = 0.18
)

// SpokeGeometry positions one spoke around center.
type SpokeGeometry struct {
	Center    Point
	AngleDeg  float64
	TipRadius float64
	// BaseRadius may be smaller than TipRadius; the spoke then points
	// outward and its outline may self-intersect.
	BaseRadius float64
	BaseWidth  float64
	TipWidth   float64
}

// Razor reports whether the razor taper applies.
func (g SpokeGeometry) Razor() bool {
	return g.TipWidth <= RazorThreshold
}

// SpokeOutline builds the closed outline of one spoke. The outline starts
// at the base-left corner and runs base-right, down the right side, through
// the tip and back up the left side, so every spoke is wound the same way.
func SpokeOutline(g SpokeGeometry) *Path {
	if g.Razor() {
		return razorOutline(g)
	}
	return beveledOutline(g)
}

// section returns the left and right points of the cross-section at radius
// r with half-width half.
func (g SpokeGeometry) section(r, half float64) (left, right Point) {
	u, perp := polar(g.AngleDeg)
	mid := g.Center.Add(u.Mul(r))
	return mid.Sub(perp.Mul(half)), mid.Add(perp.Mul(half))
}

func (g SpokeGeometry) tip() Point {
	u, _ := polar(g.AngleDeg)
	return g.Center.Add(u.Mul(g.TipRadius))
}

// beveledOutline is a trapezoid whose long sides are quadratic curves with
// their control points on the straight side midpoints.
func beveledOutline(g SpokeGeometry) *Path {
	bl, br := g.section(g.BaseRadius, g.BaseWidth/2)
	tl, tr := g.section(g.TipRadius, g.TipWidth/2)

	p := NewPath()
	p.moveToPt(bl)
	p.lineToPt(br)
	p.quadToPt(br.Mid(tr), tr)
	p.lineToPt(tl)
	p.quadToPt(bl.Mid(tl), bl)
	p.Close()
	return p
}

// razorOutline narrows through shoulder, mid and pinch sections before
// converging on the exact tip point.
func razorOutline(g SpokeGeometry) *Path {
	dist := math.Abs(g.BaseRadius - g.TipRadius)
	baseHalf := g.BaseWidth / 2

	bl, br := g.section(g.BaseRadius, baseHalf)
	sl, sr := g.section(g.BaseRadius-dist*razorShoulderDepth, baseHalf*razorShoulderWidth)
	ml, mr := g.section(g.BaseRadius-dist*razorMidDepth, baseHalf*razorMidWidth)
	pl, pr := g.section(g.BaseRadius-dist*razorPinchDepth, baseHalf*razorPinchWidth)
	tip := g.tip()

	p := NewPath()
	p.moveToPt(bl)
	p.lineToPt(br)
	p.lineToPt(sr)
	p.quadToPt(sr.Mid(mr), mr)
	p.quadToPt(mr.Mid(pr), pr)
	p.quadToPt(pr.Mid(tip), tip)
	p.quadToPt(tip.Mid(pl), pl)
	p.quadToPt(pl.Mid(ml), ml)
	p.quadToPt(ml.Mid(sl), sl)
	p.lineToPt(bl)
	p.Close()
	return p
}

// SpokeCorners returns the straight-edge approximation of a spoke: base
// left, base right, tip right, tip left. The razor profile is not
// reproduced; a zero tip width collapses both tip corners onto the tip.
func SpokeCorners(g SpokeGeometry) []Point {
	bl, br := g.section(g.BaseRadius, g.BaseWidth/2)
	tl, tr := g.section(g.TipRadius, g.TipWidth/2)
	return []Point{bl, br, tr, tl}
}
