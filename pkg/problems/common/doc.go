// Package common holds the item-ordering and quality-filter logic shared
// by both the strip-packing and bin-packing problem drivers.
package common
