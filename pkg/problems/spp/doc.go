// Package spp implements the strip-packing problem driver: one strip
// container of fixed height and growable width, filled by placing items
// in descending-diameter order via the LBF search, growing the strip on
// failure and shrinking it to fit once every item is placed.
package spp
