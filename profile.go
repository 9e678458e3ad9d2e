package reticle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// profile is the persisted form of a Config. Field names and the
// [r, g, b, a] color arrays follow the profile files written by earlier
// releases.
type profile struct {
	Size            int        `json:"size" yaml:"size" toml:"size"`
	RingOuterRadius float64    `json:"ring_outer_radius" yaml:"ring_outer_radius" toml:"ring_outer_radius"`
	RingThickness   float64    `json:"ring_thickness" yaml:"ring_thickness" toml:"ring_thickness"`
	RimColor        [4]float64 `json:"rim_color" yaml:"rim_color,flow" toml:"rim_color"`
	ArmColor        [4]float64 `json:"arm_color" yaml:"arm_color,flow" toml:"arm_color"`
	GapFromRing     float64    `json:"gap_from_ring" yaml:"gap_from_ring" toml:"gap_from_ring"`
	CenterGapRadius float64    `json:"center_gap_radius" yaml:"center_gap_radius" toml:"center_gap_radius"`
	SpokeBaseWidth  float64    `json:"spoke_base_width" yaml:"spoke_base_width" toml:"spoke_base_width"`
	SpokeTipWidth   float64    `json:"spoke_tip_width" yaml:"spoke_tip_width" toml:"spoke_tip_width"`
	Angles          []float64  `json:"angles" yaml:"angles,flow" toml:"angles"`
	BlurRadius      float64    `json:"blur_radius" yaml:"blur_radius" toml:"blur_radius"`
	GlowRadius      float64    `json:"glow_radius" yaml:"glow_radius" toml:"glow_radius"`
}

func colorArray(c Color) [4]float64 {
	return [4]float64{float64(c.R), float64(c.G), float64(c.B), c.A}
}

func arrayColor(field string, a [4]float64) (Color, error) {
	var c Color
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v := a[i]
		if v < 0 || v > 255 || v != float64(int(v)) {
			return Color{}, fmt.Errorf("reticle: %s component %d out of range: %v", field, i, v)
		}
		*dst = uint8(v)
	}
	c.A = clamp01(a[3])
	return c, nil
}

func toProfile(c Config) profile {
	return profile{
		Size:            c.Size,
		RingOuterRadius: c.RingOuterRadius,
		RingThickness:   c.RingThickness,
		RimColor:        colorArray(c.RimColor),
		ArmColor:        colorArray(c.ArmColor),
		GapFromRing:     c.GapFromRing,
		CenterGapRadius: c.CenterGapRadius,
		SpokeBaseWidth:  c.SpokeBaseWidth,
		SpokeTipWidth:   c.SpokeTipWidth,
		Angles:          append([]float64{}, c.Angles...),
		BlurRadius:      c.BlurRadius,
		GlowRadius:      c.GlowRadius,
	}
}

func (p profile) config() (Config, error) {
	rim, err := arrayColor("rim_color", p.RimColor)
	if err != nil {
		return Config{}, err
	}
	arm, err := arrayColor("arm_color", p.ArmColor)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Size:            p.Size,
		RingOuterRadius: p.RingOuterRadius,
		RingThickness:   p.RingThickness,
		RimColor:        rim,
		ArmColor:        arm,
		GapFromRing:     p.GapFromRing,
		CenterGapRadius: p.CenterGapRadius,
		SpokeBaseWidth:  p.SpokeBaseWidth,
		SpokeTipWidth:   p.SpokeTipWidth,
		Angles:          append([]float64{}, p.Angles...),
		BlurRadius:      p.BlurRadius,
		GlowRadius:      p.GlowRadius,
	}, nil
}

// Format selects a profile encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format with the given name ("json", "yaml",
// "yml" or "toml").
func ParseFormat(name string) (Format, error) {
	return FormatForPath("." + name)
}

// FormatForPath picks the format from the file extension. Files without an
// extension are JSON.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
}

// EncodeConfig writes c to w in the given format.
func EncodeConfig(w io.Writer, c Config, f Format) error {
	p := toProfile(c)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(p)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// DecodeConfig reads a Config in the given format.
func DecodeConfig(r io.Reader, f Format) (Config, error) {
	var p profile
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&p); err != nil {
			return Config{}, fmt.Errorf("reticle: decode json profile: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&p); err != nil {
			return Config{}, fmt.Errorf("reticle: decode yaml profile: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
			return Config{}, fmt.Errorf("reticle: decode toml profile: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return p.config()
}

// SaveConfig writes c to path, choosing the format from the extension.
// Missing parent directories are created.
func SaveConfig(path string, c Config) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, c, f); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewPathError("mkdir", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return NewPathError("write", path, err)
	}
	return nil
}

// LoadConfig reads a Config from path, choosing the format from the
// extension.
func LoadConfig(path string) (Config, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewPathError("read", path, err)
	}
	return DecodeConfig(bytes.NewReader(data), f)
}
