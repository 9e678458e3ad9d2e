package raster

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/internal/mask"
	"github.com/xhgen/reticle/render"
	"github.com/xhgen/reticle/render/svg"
)

func mustRender(t *testing.T, cfg reticle.Config, opts ...Option) *Result {
	t.Helper()
	res, err := Render(cfg, opts...)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return res
}

func alphaAt(res *Result, x, y int) uint8 {
	return res.Tinted.NRGBAAt(x, y).A
}

func TestRenderCoverage(t *testing.T) {
	res := mustRender(t, reticle.DefaultConfig())

	if b := res.Tinted.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("bounds = %v", b)
	}
	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"ring midline", 236, 128, 255},
		{"ring top", 128, 20, 255},
		{"canvas corner", 0, 0, 0},
		{"center gap", 128, 128, 0},
		{"between ring and spokes", 221, 128, 0},
		{"spoke body", 163, 163, 255},
		{"between spokes", 128, 178, 0},
	}
	for _, tt := range tests {
		if got := alphaAt(res, tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d): alpha = %d, want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if len(res.Coverage) != 256*256 {
		t.Errorf("coverage length = %d", len(res.Coverage))
	}
}

func TestRenderTwinOutputs(t *testing.T) {
	res := mustRender(t, reticle.DefaultConfig(), WithColor(200, 10, 20))
	for i := 0; i < len(res.Coverage); i++ {
		tp := res.Tinted.Pix[i*4 : i*4+4]
		bp := res.Black.Pix[i*4 : i*4+4]
		if tp[3] != bp[3] || tp[3] != res.Coverage[i] {
			t.Fatalf("pixel %d: tinted alpha %d, black alpha %d, coverage %d", i, tp[3], bp[3], res.Coverage[i])
		}
		if tp[0] != 200 || tp[1] != 10 || tp[2] != 20 {
			t.Fatalf("pixel %d: tinted rgb %v", i, tp[:3])
		}
		if bp[0] != 0 || bp[1] != 0 || bp[2] != 0 {
			t.Fatalf("pixel %d: black rgb %v", i, bp[:3])
		}
	}
}

func TestRenderAlpha(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() reticle.Config
		opts []Option
		want uint8
	}{
		{"option", reticle.DefaultConfig, []Option{WithAlpha(128)}, 128},
		{"zero option", reticle.DefaultConfig, []Option{WithAlpha(0)}, 0},
		{"rim opacity", func() reticle.Config {
			c := reticle.DefaultConfig()
			c.RimColor.A = 0.5
			return c
		}, nil, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustRender(t, tt.cfg(), tt.opts...)
			if got := alphaAt(res, 236, 128); got != tt.want {
				t.Errorf("ring alpha = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderComposite(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.RimColor = reticle.RGB(255, 0, 0)
	cfg.ArmColor = reticle.RGB(0, 0, 255)
	res := mustRender(t, cfg)

	if got := res.Composite.NRGBAAt(236, 128); got.R != 255 || got.B != 0 || got.A != 255 {
		t.Errorf("ring pixel = %+v", got)
	}
	if got := res.Composite.NRGBAAt(163, 163); got.R != 0 || got.B != 255 || got.A != 255 {
		t.Errorf("spoke pixel = %+v", got)
	}
	if got := res.Composite.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("background pixel = %+v", got)
	}
}

func TestFidelity(t *testing.T) {
	equal := func(a, b *Result) bool { return bytes.Equal(a.Coverage, b.Coverage) }

	beveled := reticle.DefaultConfig()
	if !equal(mustRender(t, beveled), mustRender(t, beveled, WithFidelity(FidelityCorners))) {
		t.Error("beveled spokes should rasterize the same from outline or corners")
	}

	razor := reticle.DefaultConfig()
	razor.SpokeTipWidth = 0
	outline := mustRender(t, razor)
	corners := mustRender(t, razor, WithFidelity(FidelityCorners))
	if equal(outline, corners) {
		t.Error("razor outline should differ from the straight-edge polygon")
	}

	var covOutline, covCorners int
	for i := range outline.Coverage {
		covOutline += int(outline.Coverage[i])
		covCorners += int(corners.Coverage[i])
	}
	if covOutline <= covCorners {
		t.Errorf("razor outline coverage %d should exceed the linear taper %d", covOutline, covCorners)
	}
}

func TestWorkersInvariant(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.Angles = []float64{0, 33, 120, 270}
	want := mustRender(t, cfg)
	for _, n := range []int{0, 2, 5} {
		got := mustRender(t, cfg, WithWorkers(n))
		if !bytes.Equal(got.Composite.Pix, want.Composite.Pix) {
			t.Errorf("workers=%d: output differs", n)
		}
	}
}

func TestSupersample(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.Size = 64
	cfg.RingOuterRadius = 30
	cfg.RingThickness = 4
	for _, s := range []int{1, 2, 8} {
		res := mustRender(t, cfg, WithSupersample(s))
		if b := res.Tinted.Bounds(); b.Dx() != 64 {
			t.Errorf("S=%d: width = %d", s, b.Dx())
		}
		if got := alphaAt(res, 60, 32); got != 255 {
			t.Errorf("S=%d: ring alpha = %d, want 255", s, got)
		}
	}
}

func TestPostProcess(t *testing.T) {
	plain := mustRender(t, reticle.DefaultConfig())
	soft := mustRender(t, reticle.DefaultConfig(), WithPostProcess(1, 0))
	if bytes.Equal(plain.Coverage, soft.Coverage) {
		t.Error("blur had no effect")
	}
	if alphaAt(soft, 225, 128) == 0 {
		t.Error("blur did not soften the ring's inner edge")
	}
	if got := alphaAt(soft, 236, 128); got < 250 {
		t.Errorf("ring midline after blur = %d", got)
	}
}

func TestDegenerateConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*reticle.Config)
	}{
		{"thick ring", func(c *reticle.Config) { c.RingThickness = 500 }},
		{"zero base width", func(c *reticle.Config) { c.SpokeBaseWidth = 0 }},
		{"inverted spokes", func(c *reticle.Config) { c.CenterGapRadius = 110 }},
		{"no spokes", func(c *reticle.Config) { c.Angles = nil }},
		{"huge ring", func(c *reticle.Config) { c.RingOuterRadius = 4000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := reticle.DefaultConfig()
			cfg.Size = 64
			tt.mutate(&cfg)
			mustRender(t, cfg)
		})
	}
}

func TestThickRingMatchesSVG(t *testing.T) {
	tests := []struct {
		name      string
		thickness float64
		svgRadius string
		want      map[[2]int]uint8
	}{
		// The stroke radius clamps to zero and the SVG circle draws nothing.
		{"collapsed", 100, `r="0"`, map[[2]int]uint8{{128, 128}: 0, {168, 128}: 0, {177, 128}: 0}},
		// A stroke wider than the radius fills the disc out to the outer edge.
		{"filled disc", 80, `r="10"`, map[[2]int]uint8{{128, 128}: 255, {168, 128}: 255, {188, 128}: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := reticle.DefaultConfig()
			cfg.RingOuterRadius = 50
			cfg.RingThickness = tt.thickness
			cfg.Angles = nil

			doc, err := svg.Render(cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(doc), tt.svgRadius) {
				t.Errorf("svg ring lacks %s:\n%s", tt.svgRadius, doc)
			}
			res := mustRender(t, cfg)
			for pt, want := range tt.want {
				if got := alphaAt(res, pt[0], pt[1]); got != want {
					t.Errorf("(%d,%d): alpha = %d, want %d", pt[0], pt[1], got, want)
				}
			}
		})
	}
}

func TestRenderInvalidSize(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.Size = 0
	if _, err := Render(cfg); err == nil {
		t.Error("expected error for zero size")
	}
	if err := NewBackend().End(); err == nil {
		t.Error("expected error for End before Begin")
	}
}

func TestWriteAndSave(t *testing.T) {
	b := NewBackend()
	if err := render.Play(reticle.BuildScene(reticle.DefaultConfig()), b); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil || n != int64(buf.Len()) {
		t.Fatalf("WriteTo = %d, %v (buffer %d)", n, err, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 256 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}

	dir := t.TempDir()
	tinted, black := filepath.Join(dir, "light.png"), filepath.Join(dir, "dark.png")
	if err := b.SaveVariants(tinted, black); err != nil {
		t.Fatalf("SaveVariants: %v", err)
	}
	for _, p := range []string{tinted, black} {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}
}

func TestRegistered(t *testing.T) {
	b, err := render.NewBackend(Name)
	if err != nil {
		t.Fatal(err)
	}
	if render.Extension(b) != "png" {
		t.Errorf("Extension = %q", render.Extension(b))
	}
}

func TestPreview(t *testing.T) {
	img, err := RenderPreview(reticle.DefaultConfig(), 64)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("preview bounds = %v", b)
	}
	if img.NRGBAAt(59, 32).A == 0 {
		t.Error("preview lost the ring")
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("preview corner not transparent")
	}
}

func TestOverlay(t *testing.T) {
	bottom := mask.NewCoverage(2, 1)
	top := mask.NewCoverage(2, 1)
	bottom.Alpha[0], bottom.Alpha[1] = 255, 255
	top.Alpha[1] = 255

	img := Overlay(bottom, reticle.RGB(0, 0, 255), top, reticle.Color{R: 255, A: 0.5})
	if got := img.NRGBAAt(0, 0); got.B != 255 || got.A != 255 {
		t.Errorf("bottom only = %+v", got)
	}
	// Half-opaque red over opaque blue.
	if got := img.NRGBAAt(1, 0); got.R != 128 || got.B != 128 || got.A != 255 {
		t.Errorf("blend = %+v", got)
	}
}
