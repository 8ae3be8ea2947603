package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/jaguago/jaguago/pkg/cde"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
	"github.com/jaguago/jaguago/pkg/quadtree"
)

// Options configures layout visualization.
type Options struct {
	Width, Height int
	Margin        int
	Title         string
	ShowQuadtree  bool
	ShowCollisions bool
}

// DefaultOptions returns sensible default rendering options.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 800, Margin: 40, Title: "Layout"}
}

// DrawLayout draws one solved layout: the container's outer boundary and
// holes, its quality zones, every placed item at its final position (via
// the snapshot's already-transformed shapes), and optionally a quadtree
// grid overlay and highlighted collisions (queried fresh against eng,
// which must be the engine the layout was placed against).
func DrawLayout(w io.Writer, container *entities.Container, snap entities.LayoutSnapshot, eng *cde.Engine, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	bbox := container.Outer.BBox()
	proj := newProjector(bbox, opts.Width, opts.Height, opts.Margin)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#111418")

	if opts.ShowQuadtree && eng != nil {
		drawQuadtree(canvas, eng.QuadtreeRoot(), proj)
	}

	drawPolygon(canvas, container.Outer, proj, "fill:#22313f;stroke:#8ea9c1;stroke-width:2")
	for _, hole := range container.Holes {
		drawPolygon(canvas, hole, proj, "fill:#111418;stroke:#5a6b78;stroke-width:1")
	}
	for _, z := range container.Zones {
		drawPolygon(canvas, z.Shape, proj, zoneStyle(z.Quality))
	}

	collisions := map[int]bool{}
	if opts.ShowCollisions && eng != nil {
		for _, pi := range snap.Items {
			collector := hazard.NewBasicCollector()
			eng.CollectPolyCollisions(pi.TransformedShape, collector)
			for _, e := range collector.Entities() {
				if e.Kind == hazard.KindPlacedItem && e.ItemID != pi.ItemID {
					collisions[pi.ItemID] = true
				}
			}
		}
	}

	for _, pi := range snap.Items {
		style := "fill:#4c8bf5;stroke:#dfe8f5;stroke-width:1;opacity:0.85"
		if collisions[pi.ItemID] {
			style = "fill:#e24b4b;stroke:#fff;stroke-width:2"
		}
		drawPolygon(canvas, pi.TransformedShape, proj, style)
	}

	if opts.Title != "" {
		canvas.Text(opts.Width/2, 20, opts.Title, "text-anchor:middle;font-size:16px;fill:#e2e8f0;font-family:sans-serif")
	}

	canvas.End()
	return nil
}

// zoneStyle picks a fill for a quality zone: worse quality, more opaque
// red overlay.
func zoneStyle(quality int) string {
	return fmt.Sprintf("fill:#b34747;opacity:%.2f;stroke:none", qualityAlpha(quality))
}

func qualityAlpha(quality int) float64 {
	if quality < 0 {
		return 0.35
	}
	alpha := 0.5 - float64(quality)*0.05
	if alpha < 0.1 {
		return 0.1
	}
	return alpha
}

func drawQuadtree(canvas *svg.SVG, node *quadtree.Node, proj projector) {
	if node == nil {
		return
	}
	x0, y0 := proj.point(geo.Point{X: node.Rect.XMin, Y: node.Rect.YMin})
	x1, y1 := proj.point(geo.Point{X: node.Rect.XMax, Y: node.Rect.YMax})
	left, top := x0, y1
	right, bottom := x1, y0
	canvas.Rect(left, top, right-left, bottom-top, "fill:none;stroke:#3a4650;stroke-width:1;opacity:0.5")
	if node.Children == nil {
		return
	}
	for _, child := range node.Children {
		drawQuadtree(canvas, child, proj)
	}
}

func drawPolygon(canvas *svg.SVG, p *geo.SimplePolygon, proj projector, style string) {
	if p == nil {
		return
	}
	vs := p.Vertices()
	xs := make([]int, len(vs))
	ys := make([]int, len(vs))
	for i, v := range vs {
		xs[i], ys[i] = proj.point(v)
	}
	canvas.Polygon(xs, ys, style)
}

// projector maps world-space points (Y-up) to pixel-space coordinates
// (Y-down), uniformly scaled to fit within the canvas margin.
type projector struct {
	bbox   geo.Rect
	scale  float32
	margin int
	height int
}

func newProjector(bbox geo.Rect, width, height, margin int) projector {
	availW := float32(width - 2*margin)
	availH := float32(height - 2*margin)
	scale := float32(1)
	if bbox.Width() > 0 && bbox.Height() > 0 {
		sx := availW / bbox.Width()
		sy := availH / bbox.Height()
		if sx < sy {
			scale = sx
		} else {
			scale = sy
		}
	}
	return projector{bbox: bbox, scale: scale, margin: margin, height: height}
}

func (pr projector) point(p geo.Point) (int, int) {
	px := float32(pr.margin) + (p.X-pr.bbox.XMin)*pr.scale
	py := float32(pr.height-pr.margin) - (p.Y-pr.bbox.YMin)*pr.scale
	return int(px), int(py)
}
