// Package render plays a reticle scene back to an output backend.
//
// A [reticle.Scene] holds the geometry of one reticle; backends turn it into
// an artifact. Two backends ship with this module:
//
//   - "svg" (package render/svg): a resolution-independent SVG document
//   - "raster" (package render/raster): supersampled coverage colorized into
//     RGBA images and encoded as PNG
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import (
//	    "github.com/xhgen/reticle/render"
//	    _ "github.com/xhgen/reticle/render/svg"
//	)
//
//	b, err := render.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := render.Play(reticle.BuildScene(cfg), b); err != nil {
//	    return err
//	}
//	err = b.(render.FileBackend).SaveToFile("reticle.svg")
//
// # Thread Safety
//
// A Backend instance is not safe for concurrent use; create one per render.
// Scenes are never modified by playback and can be shared.
package render
