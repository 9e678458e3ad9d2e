package svg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/render"
)

func TestRenderDefault(t *testing.T) {
	data, err := Render(reticle.DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		`width="256"`,
		`height="256"`,
		`viewBox="0 0 256 256"`,
		`<circle cx="128" cy="128" r="108" stroke-width="20" stroke="rgba(255,255,255,1)" fill="none"/>`,
		`fill="rgba(0,0,0,1)"`,
		`stroke="none"`,
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %s:\n%s", want, doc)
		}
	}
	if n := strings.Count(doc, "<path "); n != 4 {
		t.Errorf("got %d paths, want 4", n)
	}
	if n := strings.Count(doc, "<circle "); n != 1 {
		t.Errorf("got %d circles, want 1", n)
	}
	if strings.Index(doc, "<circle") < strings.LastIndex(doc, "<path") {
		t.Error("ring drawn before spokes")
	}
	if strings.Count(doc, "<g") != strings.Count(doc, "</g>") {
		t.Error("unbalanced groups")
	}
	if strings.Count(doc, " Q") != 8 {
		t.Errorf("expected two quadratic commands per spoke, got %d", strings.Count(doc, " Q"))
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.SpokeTipWidth = 0
	a, err := Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(cfg.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical configs produced different documents")
	}
}

func TestRenderRazor(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.SpokeTipWidth = 0
	cfg.Angles = []float64{0}
	data, err := Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), " Q"); n != 6 {
		t.Errorf("razor spoke has %d quadratic commands, want 6", n)
	}
}

func TestRenderNoSpokes(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.Angles = nil
	data, err := Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "<path") {
		t.Error("empty angle list produced paths")
	}
	if !strings.Contains(string(data), "<circle") {
		t.Error("ring missing")
	}
}

func TestRenderFractional(t *testing.T) {
	cfg := reticle.DefaultConfig()
	cfg.Size = 101
	cfg.RingOuterRadius = 50.25
	cfg.RingThickness = 3.5
	cfg.RimColor = reticle.Color{R: 10, G: 20, B: 30, A: 0.5}
	data, err := Render(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := `<circle cx="50.5" cy="50.5" r="48.5" stroke-width="3.5" stroke="rgba(10,20,30,0.5)" fill="none"/>`
	if !strings.Contains(string(data), want) {
		t.Errorf("document missing %s:\n%s", want, data)
	}
}

func TestBeginInvalid(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestRegistered(t *testing.T) {
	b, err := render.NewBackend(Name)
	if err != nil {
		t.Fatalf("NewBackend(%q): %v", Name, err)
	}
	if ext := render.Extension(b); ext != "svg" {
		t.Errorf("Extension = %q, want svg", ext)
	}
}

func TestSaveToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.svg")
	if err := render.Save(Name, reticle.BuildScene(reticle.DefaultConfig()), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Render(reticle.DefaultConfig())
	if !bytes.Equal(data, want) {
		t.Error("saved document differs from Render output")
	}

	err = render.Save(Name, reticle.BuildScene(reticle.DefaultConfig()), filepath.Join(dir, "missing", "x.svg"))
	if !errors.Is(err, reticle.ErrIO) {
		t.Errorf("Save into missing dir = %v, want ErrIO", err)
	}
}
