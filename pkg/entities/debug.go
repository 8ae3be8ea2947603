package entities

import (
	"fmt"
	"strings"
)

// DebugString renders a plain-text summary of the layout: container
// stats followed by one line per placed item. It is independent of the
// SVG renderer and intended for debug output and golden-file comparisons,
// not for end-user display.
func (l *Layout) DebugString() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Layout[container=%d]\n", l.Container.ID)
	fmt.Fprintf(&sb, "  outer area:  %.3f\n", l.Container.Outer.Area())
	fmt.Fprintf(&sb, "  usable area: %.3f\n", l.Container.UsableArea())
	fmt.Fprintf(&sb, "  holes:       %d\n", len(l.Container.Holes))
	fmt.Fprintf(&sb, "  zones:       %d\n", len(l.Container.Zones))
	fmt.Fprintf(&sb, "  density:     %.4f\n", l.Density())
	fmt.Fprintf(&sb, "  items:       %d\n", len(l.order))

	for _, k := range l.order {
		p := l.items[k]
		bbox := p.TransformedShape.BBox()
		fmt.Fprintf(&sb, "    #%-4d item=%-4d rot=%6.2f tx=%8.3f ty=%8.3f bbox=[%.3f,%.3f .. %.3f,%.3f]\n",
			p.Key, p.ItemID, p.DTransf.Rotation, p.DTransf.Tx, p.DTransf.Ty,
			bbox.XMin, bbox.YMin, bbox.XMax, bbox.YMax)
	}

	return sb.String()
}
