package reticle

import "testing"

func TestPathBuild(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(10, 10, 0, 10)
	p.Close()

	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
	if !p.Closed() {
		t.Error("Closed() = false")
	}
	if p.CurrentPoint() != Pt(0, 0) {
		t.Errorf("CurrentPoint() after Close = %v, want start", p.CurrentPoint())
	}
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}
	got := p.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPathSVGData(t *testing.T) {
	p := NewPath()
	p.MoveTo(1.5, -2)
	p.LineTo(3, 0)
	p.QuadraticTo(4.25, 5, 6, 7)
	p.Close()

	want := "M1.5,-2 L3,0 Q4.25,5 6,7 Z"
	if got := p.SVGData(); got != want {
		t.Errorf("SVGData() = %q, want %q", got, want)
	}
	if got := NewPath().SVGData(); got != "" {
		t.Errorf("empty SVGData() = %q", got)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	c := p.Clone()
	c.LineTo(2, 2)
	if p.Len() != 1 || c.Len() != 2 {
		t.Errorf("Clone shares elements: %d / %d", p.Len(), c.Len())
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-0.25, "-0.25"},
		{108, "108"},
		{1.0 / 3, "0.3333333333333333"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.v); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
