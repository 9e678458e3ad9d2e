package raster

import "github.com/xhgen/reticle/internal/path"

// Fidelity selects how spoke outlines are rasterized.
type Fidelity int

const (
	// FidelityOutline flattens the full spoke outline, curves included, so
	// the raster matches the vector output.
	FidelityOutline Fidelity = iota

	// FidelityCorners fills only the straight-edge polygon through the base
	// and tip corners. Razor spokes lose their shoulder and pinch profile.
	FidelityCorners
)

// String returns the fidelity name.
func (f Fidelity) String() string {
	switch f {
	case FidelityOutline:
		return "outline"
	case FidelityCorners:
		return "corners"
	default:
		return "unknown"
	}
}

// Option configures a Backend.
//
// Example:
//
//	b := raster.NewBackend(
//	    raster.WithSupersample(8),
//	    raster.WithColor(255, 0, 0),
//	)
type Option func(*options)

type options struct {
	supersample int
	color       *[3]uint8
	alpha       *uint8
	fidelity    Fidelity
	tolerance   float64
	steps       int
	blur        float64
	glow        float64
	workers     int
}

func defaultOptions() options {
	return options{
		supersample: DefaultSupersample,
		fidelity:    FidelityOutline,
		tolerance:   path.Tolerance,
		workers:     1,
	}
}

// WithSupersample sets the linear supersampling factor. Values below 1
// are treated as 1.
func WithSupersample(s int) Option {
	return func(o *options) {
		o.supersample = max(1, s)
	}
}

// WithColor sets the RGB used for the tinted output. The default is the
// scene's rim color.
func WithColor(r, g, b uint8) Option {
	return func(o *options) {
		o.color = &[3]uint8{r, g, b}
	}
}

// WithAlpha sets the global 0-255 alpha applied to downsampled coverage.
// The default is the scene's rim opacity.
func WithAlpha(a uint8) Option {
	return func(o *options) {
		o.alpha = &a
	}
}

// WithFidelity selects outline or corner rasterization of spokes.
func WithFidelity(f Fidelity) Option {
	return func(o *options) {
		o.fidelity = f
	}
}

// WithTolerance sets the curve flattening tolerance in output pixels.
func WithTolerance(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.tolerance = px
		}
	}
}

// WithSampleSteps flattens every curve at a fixed number of uniform
// samples instead of by tolerance. The live preview uses 6.
func WithSampleSteps(n int) Option {
	return func(o *options) {
		o.steps = n
	}
}

// WithPostProcess enables the blur and glow stage on the downsampled
// coverage. Zero radii disable the respective effect.
func WithPostProcess(blur, glow float64) Option {
	return func(o *options) {
		o.blur = blur
		o.glow = glow
	}
}

// WithWorkers splits downsampling across n goroutines. The output is the
// same for any n; n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
