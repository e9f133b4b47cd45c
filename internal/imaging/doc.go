// Package imaging loads image tiles and composes them onto a single
// output canvas.
//
// All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward. Tiles are normalized to NRGBA at
// load time so mixed-format inputs (paletted PNG, YCbCr JPEG, 16-bit
// TIFF) composite uniformly.
//
// # Canvas Geometry
//
// Linear layouts sum tile extents along the stitch axis and take the
// maximum along the other. Grid layouts size each row independently: row
// height is the tallest tile in that row, row width the sum of its tile
// widths. Uncovered canvas area keeps the background color.
//
// # Error Handling
//
// Loading returns ErrUnsupportedFormat when a file cannot be decoded.
// Composition is all-or-nothing: the canvas is built fully in memory and
// written with a single save call, so a failed run never leaves a partial
// output file behind.
package imaging
