// Package geom holds the small value types shared by layout algorithms and
// their hosts: rectangles in global coordinates, 2D vectors, and the four
// directions used by directional move commands.
//
// All coordinates are float64 in the host's global coordinate space. No
// rounding is applied anywhere in this package; hosts that place windows on
// an integer pixel grid are expected to round at the edge.
package geom
