// Package ioformat implements the import/export boundary: wire-format
// shapes and instances that cross into domain objects (geo.SimplePolygon,
// entities.Item, entities.Container) and back out to a reported solution.
// Two wire formats are supported: legacy JSON (field names preserved
// exactly: "Name", "Items", "Objects", "Strip") and a flatter YAML
// representation. Both marshal the same wire types: struct tags select the
// field names, and ExtShape has its own encoding in each format (a
// Type/Data envelope in JSON, a flat object with a "type" field in YAML).
package ioformat
