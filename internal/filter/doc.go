// Package filter provides post-process effects over an 8-bit coverage
// buffer: separable gaussian blur and a screen-blended glow.
//
// None of these run unless a caller asks for them; the default raster
// output is the unfiltered coverage.
package filter
