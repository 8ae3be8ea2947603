// Package bpp implements the bin-packing problem driver: many layouts
// over stock bin types, each with a quantity and cost, filled by trying
// already-open layouts first and opening a new bin from stock only when
// no open layout fits the current item.
package bpp
