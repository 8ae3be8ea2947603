// Package cde implements the Collision Detection Engine: the component
// that ties a quadtree spatial index to a registry of hazards and answers
// "does this placement collide" queries against it.
//
// An Engine owns exactly one quadtree built over a fixed container bbox.
// Hazards are registered and deregistered through the engine rather than
// the tree directly, so the tree can be rebuilt lazily whenever its view
// of the hazard set goes stale. This trades the original's incremental
// per-hazard tree updates for a simpler rebuild-on-next-query model; see
// DESIGN.md for the tradeoff.
package cde
