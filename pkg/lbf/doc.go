// Package lbf implements the single-item Left-Bottom-Fill search: a
// budget-split sample-and-refine procedure that queries a collision
// detection engine for a feasible, low-loss placement of one item.
package lbf
