// Package entities holds the domain objects a packing problem is built
// from: the static Container (outer boundary, holes, quality zones, and
// a base CDE seeded with them as static hazards), the Item definitions
// placements are drawn from, and the mutable Layout that tracks placed
// items against a CDE cloned from the container's base.
package entities
