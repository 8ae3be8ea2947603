// Package render draws a solved layout to SVG for visual inspection. It
// is a consumer-only package, outside the core geometric engine: nothing
// under pkg/cde, pkg/entities or pkg/problems imports it.
package render
