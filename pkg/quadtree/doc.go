// Package quadtree implements the bounded-depth spatial index over a
// container's bounding rectangle. Each node stores a strongest-first sorted
// vector of hazard projections (Entire/Partial/None presence); queries
// descend from the root consulting the strongest non-filtered projection
// at each visited node.
package quadtree
