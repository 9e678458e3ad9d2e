// Package mask implements the supersampled coverage mask behind the raster
// backend: binary subpixel coverage, tagged per shape kind, averaged down to
// 8-bit coverage.
package mask

import (
	"math"
	"runtime"
	"sync"

	"github.com/xhgen/reticle/internal/path"
)

// Shape tags stored per subpixel.
const (
	Arm  uint8 = 1 << iota // covered by a spoke
	Ring                   // covered by the ring
	All  = Arm | Ring
)

// Mask is a binary coverage grid at supersampled resolution. Each byte holds
// the tags of the shapes that cover that subpixel's center.
type Mask struct {
	width  int
	height int
	pix    []uint8
}

// New allocates a width x height mask with nothing covered.
func New(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the mask width in subpixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in subpixels.
func (m *Mask) Height() int { return m.height }

// At returns the tags at subpixel (x, y). Out-of-range reads return 0.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// FillAnnulus tags every subpixel whose center lies at a distance in
// [inner, outer] from (cx, cy). All values are in subpixel units.
func (m *Mask) FillAnnulus(cx, cy, inner, outer float64, tag uint8) {
	if outer < 0 || outer < inner {
		return
	}
	inner2 := inner * inner
	outer2 := outer * outer

	x0, x1 := m.clampX(math.Floor(cx-outer)), m.clampX(math.Ceil(cx+outer))
	y0, y1 := m.clampY(math.Floor(cy-outer)), m.clampY(math.Ceil(cy+outer))
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		row := m.pix[y*m.width : (y+1)*m.width]
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			if d2 := dx*dx + dy*dy; d2 >= inner2 && d2 <= outer2 {
				row[x] |= tag
			}
		}
	}
}

// FillPolygons tags every subpixel whose center is inside polys under the
// non-zero winding rule. Coordinates are in subpixel units.
func (m *Mask) FillPolygons(polys []path.Polygon, tag uint8) {
	el := buildEdges(polys)
	if len(el.edges) == 0 {
		return
	}

	y0 := m.clampY(math.Floor(el.minY))
	y1 := m.clampY(math.Ceil(el.maxY))
	var buf []crossing
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		buf = el.crossings(yc, buf)
		if len(buf) < 2 {
			continue
		}
		row := m.pix[y*m.width : (y+1)*m.width]
		winding := 0
		for i := 0; i < len(buf)-1; i++ {
			winding += buf[i].winding
			if winding == 0 {
				continue
			}
			m.fillSpan(row, buf[i].x, buf[i+1].x, tag)
		}
	}
}

// fillSpan tags the subpixels of row whose centers lie in [left, right).
func (m *Mask) fillSpan(row []uint8, left, right float64, tag uint8) {
	start := m.clampX(math.Ceil(left - 0.5))
	end := m.clampX(math.Ceil(right - 0.5))
	for x := start; x < end; x++ {
		row[x] |= tag
	}
}

func (m *Mask) clampX(v float64) int { return clampIndex(v, m.width) }
func (m *Mask) clampY(v float64) int { return clampIndex(v, m.height) }

func clampIndex(v float64, n int) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > float64(n):
		return n
	}
	return int(v)
}

// Coverage is an 8-bit single-channel coverage buffer at output resolution.
type Coverage struct {
	Width  int
	Height int
	Alpha  []uint8
}

// NewCoverage allocates an empty coverage buffer.
func NewCoverage(width, height int) *Coverage {
	return &Coverage{Width: width, Height: height, Alpha: make([]uint8, width*height)}
}

// At returns the coverage at (x, y).
func (c *Coverage) At(x, y int) uint8 {
	return c.Alpha[y*c.Width+x]
}

// Downsample averages factor x factor blocks of subpixels carrying any of
// tags into one output pixel, then scales by alpha:
//
//	avg = (covered*255 + area/2) / area
//	out = (avg*alpha + 127) / 255
//
// Rows are split across workers goroutines; the result does not depend on
// the worker count. workers <= 0 uses GOMAXPROCS.
func (m *Mask) Downsample(factor int, tags, alpha uint8, workers int) *Coverage {
	if factor < 1 {
		factor = 1
	}
	outW, outH := m.width/factor, m.height/factor
	out := NewCoverage(outW, outH)
	if outW == 0 || outH == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > outH {
		workers = outH
	}

	area := factor * factor
	rows := func(from, to int) {
		for oy := from; oy < to; oy++ {
			for ox := 0; ox < outW; ox++ {
				covered := 0
				for sy := oy * factor; sy < (oy+1)*factor; sy++ {
					row := m.pix[sy*m.width+ox*factor : sy*m.width+(ox+1)*factor]
					for _, v := range row {
						if v&tags != 0 {
							covered++
						}
					}
				}
				avg := (covered*255 + area/2) / area
				out.Alpha[oy*outW+ox] = uint8((avg*int(alpha) + 127) / 255)
			}
		}
	}

	if workers == 1 {
		rows(0, outH)
		return out
	}

	var wg sync.WaitGroup
	chunk := (outH + workers - 1) / workers
	for from := 0; from < outH; from += chunk {
		to := min(from+chunk, outH)
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows(from, to)
		}()
	}
	wg.Wait()
	return out
}
