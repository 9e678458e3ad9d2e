package reticle

// Radii holds the values derived from a Config. All of them are clamped to
// be non-negative.
type Radii struct {
	// RingDraw is the radius of the ring's stroke centerline.
	RingDraw float64
	// RingInner is the inner edge of the ring.
	RingInner float64
	// SpokeBase is where spokes start, GapFromRing inside the ring.
	SpokeBase float64
	// SpokeTip is where spokes end, at the center gap.
	SpokeTip float64
}

// Radii derives the dependent radii of c. It never fails; negative results
// clamp to zero, as do NaN results. The result is recomputed on every call.
func (c Config) Radii() Radii {
	inner := RingInnerRadius(c)
	return Radii{
		RingDraw:  RingDrawRadius(c),
		RingInner: inner,
		SpokeBase: nonNegative(inner - c.GapFromRing),
		SpokeTip:  SpokeTipRadius(c),
	}
}

// Center returns the canvas center.
func (c Config) Center() Point {
	half := float64(c.Size) / 2
	return Pt(half, half)
}

// RingDrawRadius returns max(0, outer - thickness/2).
func RingDrawRadius(c Config) float64 {
	return nonNegative(c.RingOuterRadius - c.RingThickness/2)
}

// RingInnerRadius returns max(0, outer - thickness).
func RingInnerRadius(c Config) float64 {
	return nonNegative(c.RingOuterRadius - c.RingThickness)
}

// SpokeBaseRadius returns max(0, ring inner radius - gap).
func SpokeBaseRadius(c Config) float64 {
	return nonNegative(RingInnerRadius(c) - c.GapFromRing)
}

// SpokeTipRadius returns max(0, center gap radius).
func SpokeTipRadius(c Config) float64 {
	return nonNegative(c.CenterGapRadius)
}
