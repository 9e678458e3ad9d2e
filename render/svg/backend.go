// Package svg provides the vector backend: a resolution-independent SVG
// document with one group of filled spoke paths followed by the stroked
// ring circle.
//
// Quadratic curves in spoke outlines are written as SVG "Q" commands, not
// flattened. Output is a pure function of the scene, so identical configs
// produce byte-identical documents.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/xhgen/reticle/render/svg"
//
//	data, err := svg.Render(reticle.DefaultConfig())
package svg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/render"
)

// Name is the registry name of this backend.
const Name = "svg"

func init() {
	render.Register(Name, func() render.Backend {
		return NewBackend()
	})
}

// Backend renders scenes to an SVG document.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	depth  int
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
	_ render.Extensioner   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document declaring width, height and a matching viewBox.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas %dx%d", width, height)
	}
	b.buf.Reset()
	b.depth = 0
	b.width, b.height = width, height
	b.canvas = svgo.New(&b.buf)
	b.canvas.Startview(width, height, 0, 0, width, height)
	return nil
}

// BeginGroup opens a <g> element.
func (b *Backend) BeginGroup() {
	b.canvas.Group()
	b.depth++
}

// EndGroup closes the innermost <g> element.
func (b *Backend) EndGroup() {
	if b.depth == 0 {
		return
	}
	b.canvas.Gend()
	b.depth--
}

// FillSpoke writes the spoke outline as a filled path without stroke.
func (b *Backend) FillSpoke(s reticle.Spoke, c reticle.Color) {
	if s.Outline == nil || s.Outline.Len() == 0 {
		return
	}
	b.canvas.Path(s.Outline.SVGData(),
		attr("fill", c.CSS()),
		attr("stroke", "none"))
}

// DrawRing writes the ring as a stroked circle with no fill.
func (b *Backend) DrawRing(r reticle.Ring, c reticle.Color) {
	// svgo's Circle takes integer geometry; ring radii are fractional.
	fmt.Fprintf(b.canvas.Writer, "<circle cx=%q cy=%q r=%q %s %s %s/>\n",
		reticle.FormatNumber(r.Center.X),
		reticle.FormatNumber(r.Center.Y),
		reticle.FormatNumber(r.Radius),
		attr("stroke-width", reticle.FormatNumber(r.Width)),
		attr("stroke", c.CSS()),
		attr("fill", "none"))
}

// End closes any open groups and the document.
func (b *Backend) End() error {
	for b.depth > 0 {
		b.EndGroup()
	}
	b.canvas.End()
	return nil
}

// Extension returns "svg".
func (b *Backend) Extension() string { return "svg" }

// Bytes returns the encoded document. Only valid after End.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return reticle.NewPathError("write", path, err)
	}
	return nil
}

// Render builds the scene for cfg and returns the SVG document.
func Render(cfg reticle.Config) ([]byte, error) {
	b := NewBackend()
	if err := render.Play(reticle.BuildScene(cfg), b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func attr(name, value string) string {
	return fmt.Sprintf("%s=%q", name, value)
}
