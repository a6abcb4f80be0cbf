// Package icns reads and writes Apple Icon Image (.icns) files.
//
// An ICNS file is a small container format: a magic literal and a total
// length, followed by a stream of typed, length-prefixed elements. Each
// element holds either a raster icon at a particular size and encoding, an
// alpha mask for a paired color element, or an opaque block this package
// doesn't interpret but preserves byte-for-byte on round-trip.
//
// See https://en.wikipedia.org/wiki/Apple_Icon_Image_format for background
// on the file format this package implements.
package icns
