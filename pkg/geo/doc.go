// Package geo provides the geometric primitives shared by the rest of the
// core: points, edges, axis-aligned rectangles, circles, simple polygons and
// rigid transforms. Everything above this package (surrogate, quadtree, cde,
// entities...) builds on these types; geo itself has no dependencies on the
// rest of the module.
package geo
