package ioformat

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

func TestParseInstanceJSONLegacyFieldNames(t *testing.T) {
	raw := []byte(`{
		"Name": "demo",
		"Items": [
			{"Demand": 2, "Shape": {"Type": "Rectangle", "Data": {"x_min": 0, "y_min": 0, "width": 4, "height": 2}}}
		],
		"Strip": {"Height": 10}
	}`)

	inst, err := ParseInstanceJSON(raw)
	if err != nil {
		t.Fatalf("ParseInstanceJSON: %v", err)
	}
	if inst.Name != "demo" {
		t.Fatalf("Name = %q, want %q", inst.Name, "demo")
	}
	if len(inst.Items) != 1 || inst.Items[0].Demand != 2 {
		t.Fatalf("Items = %+v, want one item with Demand 2", inst.Items)
	}
	if inst.Strip == nil || inst.Strip.Height != 10 {
		t.Fatalf("Strip = %+v, want Height 10", inst.Strip)
	}
	if inst.Items[0].Shape.Kind != ShapeRectangle || inst.Items[0].Shape.Rectangle.Width != 4 {
		t.Fatalf("Shape = %+v, want Rectangle width 4", inst.Items[0].Shape)
	}
}

func TestExtShapeJSONRoundTrip(t *testing.T) {
	shape := ExtShape{Kind: ShapeSimplePolygon, SimplePolygon: []ExtPoint{{0, 0}, {1, 0}, {1, 1}}}
	data, err := json.Marshal(shape)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got ExtShape
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Kind != ShapeSimplePolygon || len(got.SimplePolygon) != 3 {
		t.Fatalf("round-tripped shape = %+v", got)
	}
}

func TestExtShapeYAMLRoundTrip(t *testing.T) {
	shape := ExtShape{Kind: ShapeRectangle, Rectangle: &ExtRectangle{XMin: 1, YMin: 2, Width: 3, Height: 4}}
	data, err := shape.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	ys, ok := data.(yamlShape)
	if !ok {
		t.Fatalf("MarshalYAML returned %T, want yamlShape", data)
	}
	if ys.Type != "rectangle" || ys.Width != 3 {
		t.Fatalf("yamlShape = %+v", ys)
	}
	restored, err := fromYAMLShape(ys)
	if err != nil {
		t.Fatalf("fromYAMLShape: %v", err)
	}
	if restored.Kind != ShapeRectangle || restored.Rectangle.Height != 4 {
		t.Fatalf("restored shape = %+v", restored)
	}
}

func TestRejectsMultiPolygonOnImport(t *testing.T) {
	shape := ExtShape{Kind: ShapeMultiPolygon, MultiPolygon: []ExtPoly{{Outer: []ExtPoint{{0, 0}, {1, 0}, {1, 1}}}}}
	if _, err := buildPolygon(shape, surrogate.DefaultConfig()); err == nil {
		t.Fatalf("expected buildPolygon to reject MultiPolygon")
	}
}

func TestBuildSPPInstanceCentersItemsAndAssignsIndexIDs(t *testing.T) {
	inst := Instance{
		Items: []ExtItem{
			{Demand: 1, Shape: ExtShape{Kind: ShapeRectangle, Rectangle: &ExtRectangle{XMin: 10, YMin: 10, Width: 4, Height: 2}}},
		},
		Strip: &ExtStrip{Height: 20},
	}
	built, centroids, err := BuildSPPInstance(inst, surrogate.DefaultConfig())
	if err != nil {
		t.Fatalf("BuildSPPInstance: %v", err)
	}
	if len(built.Items) != 1 || built.Items[0].ID != 0 {
		t.Fatalf("expected one item with index-assigned ID 0, got %+v", built.Items)
	}
	c := built.Items[0].ShapeCD.Centroid()
	if math.Abs(float64(c.X)) > 1e-3 || math.Abs(float64(c.Y)) > 1e-3 {
		t.Fatalf("centered item centroid = %+v, want near origin", c)
	}
	if centroids[0].X != 12 || centroids[0].Y != 11 {
		t.Fatalf("stored centroid = %+v, want (12, 11)", centroids[0])
	}
}

func TestExternalTransformRecoversOriginalPlacement(t *testing.T) {
	centroid := geo.Point{X: 12, Y: 11}
	internal := geo.Transformation{Rotation: 0, Tx: 100, Ty: 50}
	ext := externalTransform(internal, centroid)

	centeredOrigin := geo.Point{}
	placedByInternal := internal.ApplyToPoint(centeredOrigin)

	originalCentroid := geo.Point{X: 12, Y: 11}
	placedByExternal := ext.ApplyToPoint(originalCentroid)

	if math.Abs(float64(placedByInternal.X-placedByExternal.X)) > 1e-3 ||
		math.Abs(float64(placedByInternal.Y-placedByExternal.Y)) > 1e-3 {
		t.Fatalf("external transform disagrees with internal: internal(origin)=%+v, external(centroid)=%+v", placedByInternal, placedByExternal)
	}
}
