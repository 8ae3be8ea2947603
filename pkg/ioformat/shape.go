package ioformat

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ShapeKind discriminates the four external shape variants. MultiPolygon
// is accepted for round-tripping Kind but always rejected by ToPoints.
type ShapeKind string

const (
	ShapeRectangle     ShapeKind = "Rectangle"
	ShapeSimplePolygon ShapeKind = "SimplePolygon"
	ShapePolygon       ShapeKind = "Polygon"
	ShapeMultiPolygon  ShapeKind = "MultiPolygon"
)

// ExtPoint is one (x, y) vertex, serialized as a two-element array in both
// wire formats to match the legacy JSON tuple encoding.
type ExtPoint [2]float64

// ExtRectangle is an axis-aligned rectangle given by its lower-left
// corner and extents.
type ExtRectangle struct {
	XMin   float64 `json:"x_min" yaml:"xMin"`
	YMin   float64 `json:"y_min" yaml:"yMin"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ExtPoly is an outer boundary plus zero or more hole boundaries.
type ExtPoly struct {
	Outer []ExtPoint   `json:"outer" yaml:"outer"`
	Inner [][]ExtPoint `json:"inner,omitempty" yaml:"inner,omitempty"`
}

// ExtShape is the closed variant of external shape representations:
// exactly one of Rectangle, SimplePolygon, Poly or MultiPolygon is set,
// selected by Kind.
type ExtShape struct {
	Kind          ShapeKind
	Rectangle     *ExtRectangle
	SimplePolygon []ExtPoint
	Poly          *ExtPoly
	MultiPolygon  []ExtPoly
}

type jsonShapeEnvelope struct {
	Type ShapeKind       `json:"Type"`
	Data json.RawMessage `json:"Data"`
}

// MarshalJSON emits the legacy {"Type": ..., "Data": ...} tagged-union
// envelope.
func (s ExtShape) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch s.Kind {
	case ShapeRectangle:
		data = s.Rectangle
	case ShapeSimplePolygon:
		data = s.SimplePolygon
	case ShapePolygon:
		data = s.Poly
	case ShapeMultiPolygon:
		data = s.MultiPolygon
	default:
		return nil, fmt.Errorf("ioformat: shape has no kind set")
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonShapeEnvelope{Type: s.Kind, Data: raw})
}

// UnmarshalJSON parses the legacy {"Type": ..., "Data": ...} envelope.
func (s *ExtShape) UnmarshalJSON(b []byte) error {
	var env jsonShapeEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	s.Kind = env.Type
	switch env.Type {
	case ShapeRectangle:
		var r ExtRectangle
		if err := json.Unmarshal(env.Data, &r); err != nil {
			return fmt.Errorf("ioformat: decoding Rectangle shape: %w", err)
		}
		s.Rectangle = &r
	case ShapeSimplePolygon:
		var pts []ExtPoint
		if err := json.Unmarshal(env.Data, &pts); err != nil {
			return fmt.Errorf("ioformat: decoding SimplePolygon shape: %w", err)
		}
		s.SimplePolygon = pts
	case ShapePolygon:
		var p ExtPoly
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return fmt.Errorf("ioformat: decoding Polygon shape: %w", err)
		}
		s.Poly = &p
	case ShapeMultiPolygon:
		var ps []ExtPoly
		if err := json.Unmarshal(env.Data, &ps); err != nil {
			return fmt.Errorf("ioformat: decoding MultiPolygon shape: %w", err)
		}
		s.MultiPolygon = ps
	default:
		return fmt.Errorf("ioformat: unknown shape Type %q", env.Type)
	}
	return nil
}

// yamlShape is the flatter alternate wire representation: a single flat
// object with a lowercase "type" tag and only the fields relevant to that
// type populated, rather than a nested tag/content envelope.
type yamlShape struct {
	Type   string       `yaml:"type"`
	XMin   float64      `yaml:"xMin,omitempty"`
	YMin   float64      `yaml:"yMin,omitempty"`
	Width  float64      `yaml:"width,omitempty"`
	Height float64      `yaml:"height,omitempty"`
	Points []ExtPoint   `yaml:"points,omitempty"`
	Outer  []ExtPoint   `yaml:"outer,omitempty"`
	Inner  [][]ExtPoint `yaml:"inner,omitempty"`
	Parts  []ExtPoly    `yaml:"parts,omitempty"`
}

// toYAMLShape builds the flatter alternate shape representation.
func (s ExtShape) toYAMLShape() (yamlShape, error) {
	switch s.Kind {
	case ShapeRectangle:
		if s.Rectangle == nil {
			return yamlShape{}, fmt.Errorf("ioformat: Rectangle shape missing its data")
		}
		return yamlShape{Type: "rectangle", XMin: s.Rectangle.XMin, YMin: s.Rectangle.YMin, Width: s.Rectangle.Width, Height: s.Rectangle.Height}, nil
	case ShapeSimplePolygon:
		return yamlShape{Type: "simplePolygon", Points: s.SimplePolygon}, nil
	case ShapePolygon:
		if s.Poly == nil {
			return yamlShape{}, fmt.Errorf("ioformat: Polygon shape missing its data")
		}
		return yamlShape{Type: "polygon", Outer: s.Poly.Outer, Inner: s.Poly.Inner}, nil
	case ShapeMultiPolygon:
		return yamlShape{Type: "multiPolygon", Parts: s.MultiPolygon}, nil
	default:
		return yamlShape{}, fmt.Errorf("ioformat: shape has no kind set")
	}
}

// MarshalYAML implements yaml.Marshaler, emitting the flatter alternate
// shape representation instead of the JSON tag/content envelope.
func (s ExtShape) MarshalYAML() (interface{}, error) {
	return s.toYAMLShape()
}

// UnmarshalYAML implements yaml.Unmarshaler for the flatter alternate
// shape representation.
func (s *ExtShape) UnmarshalYAML(value *yaml.Node) error {
	var y yamlShape
	if err := value.Decode(&y); err != nil {
		return err
	}
	shape, err := fromYAMLShape(y)
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

func fromYAMLShape(y yamlShape) (ExtShape, error) {
	switch y.Type {
	case "rectangle":
		return ExtShape{Kind: ShapeRectangle, Rectangle: &ExtRectangle{XMin: y.XMin, YMin: y.YMin, Width: y.Width, Height: y.Height}}, nil
	case "simplePolygon":
		return ExtShape{Kind: ShapeSimplePolygon, SimplePolygon: y.Points}, nil
	case "polygon":
		return ExtShape{Kind: ShapePolygon, Poly: &ExtPoly{Outer: y.Outer, Inner: y.Inner}}, nil
	case "multiPolygon":
		return ExtShape{Kind: ShapeMultiPolygon, MultiPolygon: y.Parts}, nil
	default:
		return ExtShape{}, fmt.Errorf("ioformat: unknown shape type %q", y.Type)
	}
}

// ToPoints converts a Rectangle or SimplePolygon shape to a vertex list
// for geo.NewSimplePolygon. A Rectangle yields its corners in CCW order; a
// SimplePolygon's vertices are returned as given, without reordering.
// Polygon and MultiPolygon are not convertible by this method: Polygon
// carries holes, whose outer ring and holes the container import reads
// separately, and MultiPolygon is never supported.
func (s ExtShape) ToPoints() ([]ExtPoint, error) {
	switch s.Kind {
	case ShapeRectangle:
		r := s.Rectangle
		return []ExtPoint{
			{r.XMin, r.YMin},
			{r.XMin + r.Width, r.YMin},
			{r.XMin + r.Width, r.YMin + r.Height},
			{r.XMin, r.YMin + r.Height},
		}, nil
	case ShapeSimplePolygon:
		return s.SimplePolygon, nil
	case ShapeMultiPolygon:
		return nil, fmt.Errorf("ioformat: MultiPolygon shapes are not supported")
	default:
		return nil, fmt.Errorf("ioformat: shape kind %q has no single boundary", s.Kind)
	}
}
