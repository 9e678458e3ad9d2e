// Package reticle builds procedural crosshair reticles: a stroked ring
// around a center point with tapered spokes pointing inward.
//
// # Overview
//
// A Config describes one reticle. BuildScene derives its radii and spoke
// outlines into a Scene, the single resolution-independent description
// that every output backend consumes:
//
//	cfg := reticle.DefaultConfig()
//	scene := reticle.BuildScene(cfg)
//	data, err := render.Bytes("svg", scene)
//
// # Geometry
//
// The ring stroke is centered on RingOuterRadius - RingThickness/2. Spokes
// start GapFromRing inside the ring's inner edge and stop at
// CenterGapRadius, never crossing the center. Spokes are beveled
// trapezoids whose tip is a flat edge, or razor needles when the tip width
// is at or below RazorThreshold.
//
// # Profiles
//
// Configs persist as JSON, YAML or TOML profiles (see SaveConfig and
// Workspace). Colors are stored as [r, g, b, a] arrays.
//
// # Architecture
//
// The module is organized into:
//   - reticle: Config, ColorSpec, Path, Scene and profiles
//   - render: the Backend interface, registry and scene playback
//   - render/svg, render/raster: vector and supersampled pixel output
//   - batch: CSV color pairs to one artifact per pair
//   - internal/path, internal/mask, internal/filter: flattening,
//     scanline coverage and blur
//
// # Logging
//
// The module logs through log/slog and is silent by default. Call
// SetLogger to enable output.
package reticle
