package mask

import (
	"bytes"
	"testing"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/internal/path"
)

func count(m *Mask, tag uint8) int {
	n := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y)&tag != 0 {
				n++
			}
		}
	}
	return n
}

func rect(x0, y0, x1, y1 float64) path.Polygon {
	return path.Polygon{reticle.Pt(x0, y0), reticle.Pt(x1, y0), reticle.Pt(x1, y1), reticle.Pt(x0, y1)}
}

func reversed(p path.Polygon) path.Polygon {
	out := make(path.Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func TestFillAnnulus(t *testing.T) {
	m := New(10, 10)
	m.FillAnnulus(5, 5, 0, 2, Ring)
	// Centers at offsets (±0.5, ±0.5) and (±1.5, ±0.5) in both orders.
	if n := count(m, Ring); n != 12 {
		t.Errorf("covered %d subpixels, want 12", n)
	}
	if m.At(5, 5)&Ring == 0 || m.At(0, 0) != 0 {
		t.Error("unexpected coverage at center or corner")
	}

	hole := New(10, 10)
	hole.FillAnnulus(5, 5, 1, 2, Ring)
	if n := count(hole, Ring); n != 8 {
		t.Errorf("annulus covered %d subpixels, want 8", n)
	}

	empty := New(10, 10)
	empty.FillAnnulus(5, 5, 3, 2, Ring)
	if n := count(empty, Ring); n != 0 {
		t.Errorf("inverted annulus covered %d subpixels", n)
	}
}

func TestFillAnnulusClipped(t *testing.T) {
	m := New(4, 4)
	m.FillAnnulus(0, 0, 0, 100, Ring)
	if n := count(m, Ring); n != 16 {
		t.Errorf("covered %d subpixels, want 16", n)
	}
}

func TestFillPolygons(t *testing.T) {
	tests := []struct {
		name  string
		polys []path.Polygon
		want  int
	}{
		{"square", []path.Polygon{rect(2, 2, 6, 6)}, 16},
		{"reversed square", []path.Polygon{reversed(rect(2, 2, 6, 6))}, 16},
		{"half pixel edges", []path.Polygon{rect(1.5, 1.5, 3.5, 3.5)}, 4},
		{"overlap same winding", []path.Polygon{rect(0, 0, 4, 4), rect(2, 2, 6, 6)}, 28},
		{"hole", []path.Polygon{rect(0, 0, 8, 8), reversed(rect(2, 2, 6, 6))}, 48},
		{"clipped", []path.Polygon{rect(-5, -5, 3, 3)}, 9},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(10, 10)
			m.FillPolygons(tt.polys, Arm)
			if n := count(m, Arm); n != tt.want {
				t.Errorf("covered %d subpixels, want %d", n, tt.want)
			}
		})
	}
}

func TestTagsCombine(t *testing.T) {
	m := New(4, 4)
	m.FillPolygons([]path.Polygon{rect(0, 0, 2, 4)}, Arm)
	m.FillAnnulus(0, 0, 0, 100, Ring)
	if m.At(0, 0) != All || m.At(3, 3) != Ring {
		t.Errorf("tags = %b / %b", m.At(0, 0), m.At(3, 3))
	}
}

func TestDownsampleRounding(t *testing.T) {
	tests := []struct {
		name    string
		covered int
		alpha   uint8
		want    uint8
	}{
		{"empty", 0, 255, 0},
		{"quarter", 1, 255, 64},
		{"half", 2, 255, 128},
		{"full", 4, 255, 255},
		{"quarter half alpha", 1, 128, 32},
		{"full zero alpha", 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(2, 2)
			for i := 0; i < tt.covered; i++ {
				m.pix[i] = Arm
			}
			c := m.Downsample(2, Arm, tt.alpha, 1)
			if c.Width != 1 || c.Height != 1 {
				t.Fatalf("coverage is %dx%d", c.Width, c.Height)
			}
			if got := c.At(0, 0); got != tt.want {
				t.Errorf("coverage = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDownsampleTags(t *testing.T) {
	m := New(4, 4)
	m.FillPolygons([]path.Polygon{rect(0, 0, 4, 4)}, Arm)
	if got := m.Downsample(2, Ring, 255, 1).At(0, 0); got != 0 {
		t.Errorf("ring coverage = %d, want 0", got)
	}
	if got := m.Downsample(2, All, 255, 1).At(1, 1); got != 255 {
		t.Errorf("combined coverage = %d, want 255", got)
	}
}

func TestDownsampleWorkersInvariant(t *testing.T) {
	m := New(64, 64)
	m.FillAnnulus(32, 32, 10, 28, Ring)
	m.FillPolygons([]path.Polygon{{reticle.Pt(32, 2), reticle.Pt(40, 60), reticle.Pt(20, 50)}}, Arm)

	want := m.Downsample(4, All, 200, 1)
	for _, workers := range []int{0, 2, 3, 7, 100} {
		got := m.Downsample(4, All, 200, workers)
		if !bytes.Equal(got.Alpha, want.Alpha) {
			t.Errorf("workers=%d: coverage differs from sequential", workers)
		}
	}
}
