// Package hazard defines the closed set of obstacles a placement must
// avoid (container exterior, holes, inferior quality zones, placed items)
// and the filter/collector capability used to make a subset of them
// irrelevant to a given query.
package hazard
