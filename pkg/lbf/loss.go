package lbf

import "github.com/jaguago/jaguago/pkg/geo"

const xMultiplier = 10.0

// Loss is the cost LBF assigns to a candidate placement: a weighted sum
// of the transformed shape's bbox x_max and y_max, with the horizontal
// dimension weighted more heavily. A pure lexicographic comparison
// (always prioritizing the x axis) produces undesirable results given the
// continuous nature of the values, so a weighted sum is used instead.
type Loss struct {
	XMax, YMax float32
}

// FromBBox builds a Loss from a transformed shape's bounding box.
func FromBBox(bbox geo.Rect) Loss {
	return Loss{XMax: bbox.XMax, YMax: bbox.YMax}
}

// Cost returns the scalar loss value used for comparison.
func (l Loss) Cost() float32 {
	return l.XMax*xMultiplier + l.YMax
}

// Less reports whether l is a strict improvement over other.
func (l Loss) Less(other Loss) bool {
	return l.Cost() < other.Cost()
}

// TightenSampleBBox narrows bbox's x_max to the largest value that could
// still possibly beat l: any shape with a lower cost must satisfy
// 10*x_max + y_max < l.Cost(), so x_max can never exceed l.Cost()/10. The
// y-axis bound cannot be tightened the same way, since y's cost
// coefficient is 1, not 10.
func (l Loss) TightenSampleBBox(bbox geo.Rect) geo.Rect {
	bound := l.Cost() / xMultiplier
	if bbox.XMax > bound {
		bbox.XMax = bound
	}
	return bbox
}
