package reticle

import "math"

// Editable bounds for Config values.
const (
	MinCanvasSize        = 64
	MaxCanvasSize        = 8192
	MaxRingOuterRadius   = 4192.0
	DefaultSupersampling = 4
)

// Config describes one reticle: a ring and a set of radial spokes.
//
// Config is a plain value. Renderers never mutate it; use Clone before
// editing a copy that shares Angles with another Config.
type Config struct {
	// Size is the canvas edge length in pixels.
	Size int

	RingOuterRadius float64
	// RingThickness is the stroke width of the ring, centered on
	// RingOuterRadius - RingThickness/2.
	RingThickness float64

	RimColor Color
	ArmColor Color

	// GapFromRing is the radial gap between the ring's inner edge and the
	// base of every spoke.
	GapFromRing float64
	// CenterGapRadius is the radius of the empty disc at the canvas center
	// where spoke tips stop.
	CenterGapRadius float64

	SpokeBaseWidth float64
	// SpokeTipWidth at or below RazorThreshold selects the razor taper.
	SpokeTipWidth float64

	// Angles in degrees, drawn in order. Duplicates are drawn twice.
	Angles []float64

	// BlurRadius and GlowRadius are persisted but only consumed by the
	// optional raster post-process stage.
	BlurRadius float64
	GlowRadius float64
}

// DefaultConfig returns the stock four-spoke reticle.
func DefaultConfig() Config {
	return Config{
		Size:            256,
		RingOuterRadius: 118,
		RingThickness:   20,
		RimColor:        White,
		ArmColor:        Black,
		GapFromRing:     10,
		CenterGapRadius: 2,
		SpokeBaseWidth:  12,
		SpokeTipWidth:   1.5,
		Angles:          []float64{45, 135, 225, 315},
		BlurRadius:      1,
		GlowRadius:      2,
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	if c.Angles != nil {
		c.Angles = append([]float64(nil), c.Angles...)
	}
	return c
}

// WithColors returns a clone of c with the rim and arm colors replaced.
func (c Config) WithColors(rim, arm Color) Config {
	out := c.Clone()
	out.RimColor = rim
	out.ArmColor = arm
	return out
}

// Normalize returns a copy of c clamped to the editable bounds: the canvas
// size to [MinCanvasSize, MaxCanvasSize], the ring radius to
// [0, MaxRingOuterRadius], every other length to >= 0, opacities to [0, 1]
// and angles into [0, 360).
//
// Rendering does not require a normalized Config.
func (c Config) Normalize() Config {
	out := c.Clone()
	out.Size = clampInt(out.Size, MinCanvasSize, MaxCanvasSize)
	out.RingOuterRadius = clampFloat(out.RingOuterRadius, 0, MaxRingOuterRadius)
	out.RingThickness = nonNegative(out.RingThickness)
	out.GapFromRing = nonNegative(out.GapFromRing)
	out.CenterGapRadius = nonNegative(out.CenterGapRadius)
	out.SpokeBaseWidth = nonNegative(out.SpokeBaseWidth)
	out.SpokeTipWidth = nonNegative(out.SpokeTipWidth)
	out.BlurRadius = nonNegative(out.BlurRadius)
	out.GlowRadius = nonNegative(out.GlowRadius)
	out.RimColor = out.RimColor.Clamped()
	out.ArmColor = out.ArmColor.Clamped()
	for i, a := range out.Angles {
		out.Angles[i] = wrapDegrees(a)
	}
	return out
}

// CanvasBorderRadius returns the radius of the circle inscribed in a
// size x size canvas.
func CanvasBorderRadius(size int) float64 {
	return float64(size) / 2
}

// LinkRadiusToSize returns c with the ring outer radius snapped to the
// canvas border, for controls that chain the two values.
func (c Config) LinkRadiusToSize() Config {
	out := c.Clone()
	out.RingOuterRadius = clampFloat(CanvasBorderRadius(out.Size), 0, MaxRingOuterRadius)
	return out
}

// LinkSizeToRadius returns c with the canvas size grown or shrunk to fit
// the ring outer radius.
func (c Config) LinkSizeToRadius() Config {
	out := c.Clone()
	out.Size = clampInt(int(math.Round(out.RingOuterRadius*2)), MinCanvasSize, MaxCanvasSize)
	return out
}

func wrapDegrees(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
