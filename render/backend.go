package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xhgen/reticle"
)

// Backend is the interface that every output backend implements.
//
// Playback calls Begin once, then a group of FillSpoke calls in angle
// order, then DrawRing, then End. Output methods of the optional
// interfaces below are only valid after End.
type Backend interface {
	// Begin initializes the backend for a width x height canvas.
	Begin(width, height int) error

	// BeginGroup opens a group of shapes drawn together.
	BeginGroup()

	// EndGroup closes the innermost open group.
	EndGroup()

	// FillSpoke fills one spoke outline with a solid color, no stroke.
	FillSpoke(s reticle.Spoke, c reticle.Color)

	// DrawRing strokes the ring with a solid color, no fill.
	DrawRing(r reticle.Ring, c reticle.Color)

	// End finalizes the rendering and prepares the output.
	End() error
}

// WriterBackend extends Backend with the ability to write its output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered content to path. Only valid after End.
	SaveToFile(path string) error
}

// Extensioner is implemented by backends that know the file extension of
// their output, without the leading dot.
type Extensioner interface {
	Extension() string
}

// Extension returns the file extension for b's output, or "out" when the
// backend does not report one.
func Extension(b Backend) string {
	if e, ok := b.(Extensioner); ok {
		return e.Extension()
	}
	return "out"
}

// Play renders scene into b.
func Play(scene *reticle.Scene, b Backend) error {
	if err := b.Begin(scene.Size, scene.Size); err != nil {
		return err
	}

	b.BeginGroup()
	for _, s := range scene.Spokes {
		b.FillSpoke(s, scene.ArmColor)
	}
	b.EndGroup()

	b.DrawRing(scene.Ring, scene.RimColor)

	return b.End()
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

// Save plays scene into a fresh backend by name and writes the result to
// path. Failures to write are reported as *reticle.PathError.
func Save(name string, scene *reticle.Scene, path string) error {
	b, err := NewBackend(name)
	if err != nil {
		return err
	}
	if err := Play(scene, b); err != nil {
		return err
	}
	fb, ok := b.(FileBackend)
	if !ok {
		return fmt.Errorf("render: backend %q cannot save files", name)
	}
	return fb.SaveToFile(path)
}

// Bytes plays scene into a fresh backend by name and returns its output.
func Bytes(name string, scene *reticle.Scene) ([]byte, error) {
	b, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	if err := Play(scene, b); err != nil {
		return nil, err
	}
	wb, ok := b.(WriterBackend)
	if !ok {
		return nil, fmt.Errorf("render: backend %q cannot write output", name)
	}
	var buf bytes.Buffer
	cw := &countingWriter{w: &buf}
	if _, err := wb.WriteTo(cw); err != nil {
		return nil, err
	}
	reticle.Logger().Debug("render: encoded", "backend", name, "bytes", cw.n)
	return buf.Bytes(), nil
}
