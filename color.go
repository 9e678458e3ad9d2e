package reticle

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB color with a straight (unmultiplied) opacity in
// [0, 1]. Opacity outside that range is clamped wherever it is consumed.
type Color struct {
	R, G, B uint8
	A       float64
}

// Common colors.
var (
	White = Color{R: 255, G: 255, B: 255, A: 1}
	Black = Color{A: 1}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Clamped returns c with its opacity clamped to [0, 1].
func (c Color) Clamped() Color {
	c.A = clamp01(c.A)
	return c
}

// Opaque returns c at full opacity.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Alpha8 returns the clamped opacity scaled to 0-255 with rounding.
func (c Color) Alpha8() uint8 {
	return uint8(clamp01(c.A)*255 + 0.5)
}

// CSS formats the color as "rgba(r,g,b,a)" with a clamped opacity.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, FormatNumber(clamp01(c.A)))
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.Alpha8()}
}

// ColorSpec is a validated color token: its RGB value and canonical
// six-digit uppercase hex form without a leading '#'.
type ColorSpec struct {
	RGB [3]uint8
	Hex string
}

// ParseColorSpec parses a hex color token such as "#ffAA00" or "FFAA00".
// Surrounding whitespace and leading '#' characters are ignored; the rest
// must be exactly six hex digits.
func ParseColorSpec(raw string) (ColorSpec, error) {
	hex, err := normalizeHex(raw)
	if err != nil {
		return ColorSpec{}, err
	}
	var spec ColorSpec
	for i := range spec.RGB {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return ColorSpec{}, fmt.Errorf("%w: %q: %v", ErrInvalidHexColor, raw, err)
		}
		spec.RGB[i] = uint8(v)
	}
	spec.Hex = hex
	return spec, nil
}

// MustParseColorSpec is like ParseColorSpec but panics on error.
func MustParseColorSpec(raw string) ColorSpec {
	spec, err := ParseColorSpec(raw)
	if err != nil {
		panic(err)
	}
	return spec
}

func normalizeHex(raw string) (string, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(raw), "#")
	if len(trimmed) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHexColor, raw)
	}
	for i := 0; i < len(trimmed); i++ {
		if !isHexDigit(trimmed[i]) {
			return "", fmt.Errorf("%w: %q", ErrInvalidHexColor, raw)
		}
	}
	return strings.ToUpper(trimmed), nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Opaque returns s as a fully opaque Color.
func (s ColorSpec) Opaque() Color {
	return RGB(s.RGB[0], s.RGB[1], s.RGB[2])
}

// String returns the canonical hex form.
func (s ColorSpec) String() string {
	return s.Hex
}

func clamp01(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
