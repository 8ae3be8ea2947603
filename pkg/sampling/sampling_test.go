package sampling

import (
	"math"
	"testing"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/randsrc"
)

func TestUniformRectSamplerStaysInBounds(t *testing.T) {
	bbox := geo.NewRect(10, 20, 110, 220)
	s := NewUniformRectSampler(bbox, geo.ContinuousRotation())
	rng := randsrc.New(1, "test", nil)

	for i := 0; i < 200; i++ {
		d := s.Sample(rng)
		if d.Tx < bbox.XMin || d.Tx >= bbox.XMax {
			t.Fatalf("Tx = %f out of bounds %v", d.Tx, bbox)
		}
		if d.Ty < bbox.YMin || d.Ty >= bbox.YMax {
			t.Fatalf("Ty = %f out of bounds %v", d.Ty, bbox)
		}
		if d.Rotation < 0 || d.Rotation >= twoPi {
			t.Fatalf("Rotation = %f out of [0, 2pi)", d.Rotation)
		}
	}
}

func TestUniformRectSamplerNoRotation(t *testing.T) {
	bbox := geo.NewRect(0, 0, 1, 1)
	s := NewUniformRectSampler(bbox, geo.NoRotation())
	rng := randsrc.New(2, "test", nil)

	for i := 0; i < 20; i++ {
		if d := s.Sample(rng); d.Rotation != 0 {
			t.Fatalf("Rotation = %f, want 0 for NoRotation", d.Rotation)
		}
	}
}

func TestUniformRectSamplerDiscreteRotation(t *testing.T) {
	angles := []float32{0, 1.5707963, 3.1415927}
	bbox := geo.NewRect(0, 0, 1, 1)
	s := NewUniformRectSampler(bbox, geo.DiscreteRotation(angles))
	rng := randsrc.New(3, "test", nil)

	for i := 0; i < 50; i++ {
		d := s.Sample(rng)
		found := false
		for _, a := range angles {
			if d.Rotation == a {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Rotation = %f not in allowed discrete set %v", d.Rotation, angles)
		}
	}
}

func TestUniformRectSamplerTighten(t *testing.T) {
	s := NewUniformRectSampler(geo.NewRect(0, 0, 100, 100), geo.NoRotation())
	s.Tighten(geo.NewRect(5, 5, 6, 6))
	rng := randsrc.New(4, "test", nil)

	d := s.Sample(rng)
	if d.Tx < 5 || d.Tx >= 6 || d.Ty < 5 || d.Ty >= 6 {
		t.Fatalf("Sample after Tighten = %+v, want within [5,6)x[5,6)", d)
	}
}

func TestLocalSearchSamplerConvergesAroundMean(t *testing.T) {
	ref := geo.DTransformation{Tx: 50, Ty: 50, Rotation: 0}
	bbox := geo.NewRect(0, 0, 100, 100)
	s := NewLocalSearchSampler(geo.ContinuousRotation(), ref, bbox)
	rng := randsrc.New(5, "test", nil)

	var sumTx, sumTy float64
	const n = 2000
	for i := 0; i < n; i++ {
		d := s.Sample(rng)
		sumTx += float64(d.Tx)
		sumTy += float64(d.Ty)
	}
	meanTx, meanTy := sumTx/n, sumTy/n
	if meanTx < 45 || meanTx > 55 {
		t.Fatalf("mean Tx = %f, want close to 50", meanTx)
	}
	if meanTy < 45 || meanTy > 55 {
		t.Fatalf("mean Ty = %f, want close to 50", meanTy)
	}
}

func TestLocalSearchSamplerDecayNarrowsSpread(t *testing.T) {
	ref := geo.DTransformation{Tx: 0, Ty: 0}
	bbox := geo.NewRect(0, 0, 1000, 1000)
	s := NewLocalSearchSampler(geo.NoRotation(), ref, bbox)
	rng := randsrc.New(6, "test", nil)

	spread := func() float64 {
		var maxAbs float64
		for i := 0; i < 500; i++ {
			d := s.Sample(rng)
			if v := math.Abs(float64(d.Tx)); v > maxAbs {
				maxAbs = v
			}
		}
		return maxAbs
	}

	early := spread()
	s.DecayStddev(1.0)
	late := spread()

	if late >= early {
		t.Fatalf("expected decayed spread (%f) to be smaller than initial spread (%f)", late, early)
	}
}

func TestLocalSearchSamplerShiftMean(t *testing.T) {
	ref := geo.DTransformation{Tx: 0, Ty: 0}
	bbox := geo.NewRect(0, 0, 10, 10)
	s := NewLocalSearchSampler(geo.NoRotation(), ref, bbox)
	s.ShiftMean(geo.DTransformation{Tx: 500, Ty: -500})
	rng := randsrc.New(7, "test", nil)

	d := s.Sample(rng)
	if d.Tx < 400 || d.Tx > 600 {
		t.Fatalf("Tx = %f, want close to shifted mean 500", d.Tx)
	}
	if d.Ty > -400 || d.Ty < -600 {
		t.Fatalf("Ty = %f, want close to shifted mean -500", d.Ty)
	}
}
