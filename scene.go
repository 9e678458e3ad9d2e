package reticle

// Spoke is one arm of a scene: its outline and the straight-edge corners
// used by low-fidelity rasterization.
type Spoke struct {
	AngleDeg float64
	Outline  *Path
	Corners  []Point
}

// Ring is the stroked circle of a scene. Radius and Width describe the
// stroke; Inner and Outer are its clamped edges. Backends that fill an
// annulus use Inner and Outer so both renderers agree on degenerate rings.
type Ring struct {
	Center Point
	Radius float64
	Width  float64
	Inner  float64
	Outer  float64
}

// Contains reports whether p lies within the ring's annulus.
func (r Ring) Contains(p Point) bool {
	d2 := sq(p.X-r.Center.X) + sq(p.Y-r.Center.Y)
	return d2 >= sq(r.Inner) && d2 <= sq(r.Outer)
}

// Scene is the resolution-independent geometry of one reticle, built once
// per render and consumed by every backend.
type Scene struct {
	Size     int
	Center   Point
	Radii    Radii
	Spokes   []Spoke
	Ring     Ring
	ArmColor Color
	RimColor Color
}

// BuildScene derives the radii of cfg and builds one spoke per angle, in
// angle order, plus the ring.
func BuildScene(cfg Config) *Scene {
	radii := cfg.Radii()
	center := cfg.Center()

	s := &Scene{
		Size:     cfg.Size,
		Center:   center,
		Radii:    radii,
		Spokes:   make([]Spoke, 0, len(cfg.Angles)),
		ArmColor: cfg.ArmColor,
		RimColor: cfg.RimColor,
		Ring: Ring{
			Center: center,
			Radius: radii.RingDraw,
			Width:  cfg.RingThickness,
			Inner:  radii.RingInner,
			Outer:  nonNegative(cfg.RingOuterRadius),
		},
	}

	for _, angle := range cfg.Angles {
		g := SpokeGeometry{
			Center:     center,
			AngleDeg:   angle,
			TipRadius:  radii.SpokeTip,
			BaseRadius: radii.SpokeBase,
			BaseWidth:  cfg.SpokeBaseWidth,
			TipWidth:   cfg.SpokeTipWidth,
		}
		s.Spokes = append(s.Spokes, Spoke{
			AngleDeg: angle,
			Outline:  SpokeOutline(g),
			Corners:  SpokeCorners(g),
		})
	}

	Logger().Debug("reticle: scene built",
		"size", cfg.Size,
		"spokes", len(s.Spokes),
		"ring_radius", radii.RingDraw,
		"spoke_base", radii.SpokeBase,
		"spoke_tip", radii.SpokeTip)
	return s
}

func sq(v float64) float64 { return v * v }
