package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/render"
)

// Result holds the images produced from one coverage computation.
type Result struct {
	// Coverage is the combined coverage after alpha scaling, row-major.
	Coverage  []uint8
	Tinted    *image.NRGBA
	Black     *image.NRGBA
	Composite *image.NRGBA
}

// Render rasterizes cfg.
func Render(cfg reticle.Config, opts ...Option) (*Result, error) {
	b := NewBackend(opts...)
	if err := render.Play(reticle.BuildScene(cfg), b); err != nil {
		return nil, err
	}
	return &Result{
		Coverage:  b.Coverage(),
		Tinted:    b.Tinted(),
		Black:     b.Black(),
		Composite: b.Composite(),
	}, nil
}

// Preview scales img to a side x side thumbnail with Catmull-Rom
// resampling. Sides below 1 are treated as 1.
func Preview(img image.Image, side int) *image.NRGBA {
	side = max(1, side)
	dst := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// RenderPreview rasterizes cfg at its own size and scales the composite to
// side pixels, using the fixed six-sample curve flattening of the live
// preview.
func RenderPreview(cfg reticle.Config, side int) (*image.NRGBA, error) {
	res, err := Render(cfg, WithSampleSteps(6))
	if err != nil {
		return nil, err
	}
	return Preview(res.Composite, side), nil
}
