// Package geometry computes the vertex and parameter sets for logo shapes.
//
// # Overview
//
// Every shape is described in a local frame centred on the origin and scaled
// by a single size parameter s, which is half of the configured shape size.
// Renderers translate the result into their own coordinate space; the
// canonical SVG viewport places the shape group at (200, 200).
//
// [Compute] returns one of three variants of the sealed [Geometry] interface:
//
//   - [Circle]: centre (0, 0), radius s
//   - [RoundedRect]: the square from (−s, −s) to (s, s), corner radius 8
//   - [Polygon]: an ordered, implicitly closed vertex list whose first
//     vertex is the topmost one
//
// # Polygons
//
// Triangles point up, diamonds are squares rotated by 45°, hexagons use a
// horizontal half-width of s·0.866, and stars alternate between the outer
// radius s and the inner radius 0.4·s, starting straight up and stepping by
// 36°.
//
// # Errors
//
// An undefined [shape.Kind] fails with INVALID_SHAPE and a negative size with
// INVALID_INPUT. A size of zero is valid and yields a degenerate shape.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
package geometry
