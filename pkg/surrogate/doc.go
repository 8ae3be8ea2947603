// Package surrogate builds the conservative, cheap-to-test approximation of
// a polygon used for fail-fast collision rejection: an ordered set of
// interior poles (inscribed disks, largest first) plus an optional set of
// piers (internal edges between well-separated poles).
//
// Package surrogate depends only on pkg/geo's primitive types (Point, Rect,
// Circle, Edge, Transformation) and a small structural Polygon interface —
// never on geo.SimplePolygon directly — so that geo can in turn hold a
// *surrogate.Surrogate on every SimplePolygon without an import cycle.
package surrogate
