package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jaguago/jaguago/pkg/cde"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

func mustRect(t *testing.T, x0, y0, x1, y1 float32) *geo.SimplePolygon {
	t.Helper()
	p, err := geo.NewSimplePolygon([]geo.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}, surrogate.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSimplePolygon: %v", err)
	}
	return p
}

func TestDrawLayoutProducesValidSVGDocument(t *testing.T) {
	container, err := entities.NewContainer(1, mustRect(t, 0, 0, 100, 100), nil, nil, cde.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	layout := entities.NewLayout(container)
	item := &entities.Item{ID: 1, ShapeCD: mustRect(t, 0, 0, 10, 10), Rotation: geo.NoRotation()}
	if _, err := layout.PlaceItem(item, geo.DTransformation{Tx: 5, Ty: 5}); err != nil {
		t.Fatalf("PlaceItem: %v", err)
	}

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowQuadtree = true
	opts.ShowCollisions = true
	if err := DrawLayout(&buf, container, layout.Save(), layout.CDE, opts); err != nil {
		t.Fatalf("DrawLayout: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not a well-formed SVG document:\n%s", out)
	}
	if !strings.Contains(out, "<polygon") {
		t.Fatalf("expected at least one <polygon> element for the container/item shapes")
	}
}

func TestDrawLayoutWithEmptyLayoutStillProducesSVG(t *testing.T) {
	container, err := entities.NewContainer(1, mustRect(t, 0, 0, 50, 50), nil, nil, cde.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	layout := entities.NewLayout(container)

	var buf bytes.Buffer
	if err := DrawLayout(&buf, container, layout.Save(), layout.CDE, DefaultOptions()); err != nil {
		t.Fatalf("DrawLayout: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("expected an <svg> root element")
	}
}
