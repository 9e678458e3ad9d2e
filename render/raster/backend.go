// Package raster provides the pixel backend: shapes are tagged into a
// supersampled binary mask, averaged down to 8-bit coverage and colorized.
//
// # Outputs
//
// One coverage computation yields two matched RGBA images with straight
// alpha: Tinted, using the configured color, and Black. This pair is what
// light/dark variants are cut from. Composite additionally overlays arms
// and ring in their own scene colors with simple unmultiplied-alpha
// blending, and is what WriteTo and SaveToFile encode as PNG.
//
// # Coverage
//
// For supersample factor S the mask is (size*S)^2 subpixels. A subpixel is
// covered by the ring when its center lies within [inner*S, outer*S] of the
// canvas center, and by a spoke when its center is inside the flattened
// outline (non-zero rule). Each output pixel is the rounded average of its
// S x S block, scaled by the global alpha with 255-denominator rounding.
//
// # Example
//
//	res, err := raster.Render(cfg, raster.WithSupersample(4))
//	if err != nil {
//	    return err
//	}
//	png.Encode(w, res.Tinted)
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/internal/filter"
	"github.com/xhgen/reticle/internal/mask"
	"github.com/xhgen/reticle/internal/path"
	"github.com/xhgen/reticle/render"
)

// Name is the registry name of this backend.
const Name = "raster"

// DefaultSupersample is the default linear supersampling factor.
const DefaultSupersample = reticle.DefaultSupersampling

func init() {
	render.Register(Name, func() render.Backend {
		return NewBackend()
	})
}

// Backend renders scenes into RGBA images.
type Backend struct {
	opts   options
	width  int
	height int
	mask   *mask.Mask

	rim reticle.Color
	arm reticle.Color

	coverage  *mask.Coverage
	tinted    *image.NRGBA
	black     *image.NRGBA
	composite *image.NRGBA
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
	_ render.Extensioner   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Begin allocates the supersampled mask for a width x height canvas.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas %dx%d", width, height)
	}
	s := b.opts.supersample
	b.width, b.height = width, height
	b.mask = mask.New(width*s, height*s)
	b.coverage, b.tinted, b.black, b.composite = nil, nil, nil, nil
	return nil
}

// BeginGroup is a no-op; coverage has no grouping.
func (b *Backend) BeginGroup() {}

// EndGroup is a no-op; coverage has no grouping.
func (b *Backend) EndGroup() {}

// FillSpoke covers the spoke at full coverage.
func (b *Backend) FillSpoke(s reticle.Spoke, c reticle.Color) {
	b.arm = c
	b.mask.FillPolygons(path.Scale(b.polygons(s), float64(b.opts.supersample)), mask.Arm)
}

func (b *Backend) polygons(s reticle.Spoke) []path.Polygon {
	if b.opts.fidelity == FidelityCorners || s.Outline == nil {
		return []path.Polygon{append(path.Polygon(nil), s.Corners...)}
	}
	return path.Flatten(s.Outline, path.Options{
		Tolerance: b.opts.tolerance,
		Steps:     b.opts.steps,
	})
}

// DrawRing covers the annulus between the ring's inner and outer edges.
// A ring with a zero stroke radius covers nothing, matching the vector
// output where a zero-radius circle is not drawn.
func (b *Backend) DrawRing(r reticle.Ring, c reticle.Color) {
	b.rim = c
	if r.Radius <= 0 {
		return
	}
	s := float64(b.opts.supersample)
	b.mask.FillAnnulus(r.Center.X*s, r.Center.Y*s, r.Inner*s, r.Outer*s, mask.Ring)
}

// End downsamples the mask and colorizes the results. The mask is released.
func (b *Backend) End() error {
	if b.mask == nil {
		return fmt.Errorf("raster: End called before Begin")
	}
	s, workers := b.opts.supersample, b.opts.workers

	alpha := b.rim.Alpha8()
	if b.opts.alpha != nil {
		alpha = *b.opts.alpha
	}
	tint := [3]uint8{b.rim.R, b.rim.G, b.rim.B}
	if b.opts.color != nil {
		tint = *b.opts.color
	}

	b.coverage = b.postProcess(b.mask.Downsample(s, mask.All, alpha, workers))
	b.tinted = Colorize(b.coverage, tint)
	b.black = Colorize(b.coverage, [3]uint8{})

	arms := b.postProcess(b.mask.Downsample(s, mask.Arm, 255, workers))
	ring := b.postProcess(b.mask.Downsample(s, mask.Ring, 255, workers))
	b.composite = Overlay(arms, b.arm, ring, b.rim)

	b.mask = nil
	reticle.Logger().Debug("raster: rendered",
		"size", b.width,
		"supersample", s,
		"fidelity", b.opts.fidelity.String(),
		"alpha", alpha)
	return nil
}

func (b *Backend) postProcess(c *mask.Coverage) *mask.Coverage {
	if b.opts.blur > 0 {
		c = filter.Blur(c, b.opts.blur)
	}
	if b.opts.glow > 0 {
		c = filter.Glow(c, b.opts.glow)
	}
	return c
}

// Coverage returns the combined coverage after alpha scaling, row-major.
func (b *Backend) Coverage() []uint8 {
	if b.coverage == nil {
		return nil
	}
	return b.coverage.Alpha
}

// Tinted returns the coverage colorized with the configured color.
func (b *Backend) Tinted() *image.NRGBA { return b.tinted }

// Black returns the coverage colorized with black.
func (b *Backend) Black() *image.NRGBA { return b.black }

// Composite returns arms and ring overlaid in their scene colors.
func (b *Backend) Composite() *image.NRGBA { return b.composite }

// Extension returns "png".
func (b *Backend) Extension() string { return "png" }

// WriteTo encodes the composite image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.composite == nil {
		return 0, fmt.Errorf("raster: WriteTo called before End")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.composite)
	return cw.n, err
}

// SaveToFile writes the composite image to path as PNG.
func (b *Backend) SaveToFile(filename string) error {
	return savePNG(filename, b.composite)
}

// SaveVariants writes the tinted and black images to tintedPath and
// blackPath.
func (b *Backend) SaveVariants(tintedPath, blackPath string) error {
	if err := savePNG(tintedPath, b.tinted); err != nil {
		return err
	}
	return savePNG(blackPath, b.black)
}

func savePNG(filename string, img image.Image) error {
	if img == nil {
		return fmt.Errorf("raster: nothing rendered for %s", filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return reticle.NewPathError("create", filename, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return reticle.NewPathError("write", filename, err)
	}
	if err := f.Close(); err != nil {
		return reticle.NewPathError("close", filename, err)
	}
	return nil
}

// Colorize turns coverage into an image of a single RGB with the coverage
// as straight alpha.
func Colorize(c *mask.Coverage, rgb [3]uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i, a := range c.Alpha {
		o := i * 4
		img.Pix[o+0] = rgb[0]
		img.Pix[o+1] = rgb[1]
		img.Pix[o+2] = rgb[2]
		img.Pix[o+3] = a
	}
	return img
}

// Overlay draws top over bottom, each a coverage buffer scaled by its
// color's opacity, using unmultiplied-alpha source-over.
func Overlay(bottom *mask.Coverage, bottomColor reticle.Color, top *mask.Coverage, topColor reticle.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, bottom.Width, bottom.Height))
	bc, tc := bottomColor.Clamped(), topColor.Clamped()
	for i := range bottom.Alpha {
		ab := float64(bottom.Alpha[i]) / 255 * bc.A
		at := float64(top.Alpha[i]) / 255 * tc.A
		out := at + ab*(1-at)
		if out <= 0 {
			continue
		}
		wb := ab * (1 - at) / out
		wt := at / out
		px := color.NRGBA{
			R: blend(bc.R, tc.R, wb, wt),
			G: blend(bc.G, tc.G, wb, wt),
			B: blend(bc.B, tc.B, wb, wt),
			A: uint8(out*255 + 0.5),
		}
		img.SetNRGBA(i%bottom.Width, i/bottom.Width, px)
	}
	return img
}

func blend(b, t uint8, wb, wt float64) uint8 {
	v := float64(b)*wb + float64(t)*wt
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
