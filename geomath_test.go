package guidance

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestAngularDeviation(t *testing.T) {
	cases := []struct {
		angle   float64
		from    float64
		correct float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{90, 270, 180},
		{45, 0, 45},
	}
	for _, c := range cases {
		got := AngularDeviation(c.angle, c.from)
		if got != c.correct {
			t.Errorf("Angular deviation between %f and %f must be %f, but got %f", c.angle, c.from, c.correct, got)
		}
	}
}

func TestBearing(t *testing.T) {
	cases := []struct {
		from    orb.Point
		to      orb.Point
		correct float64
	}{
		{orb.Point{0, 0}, orb.Point{1, 0}, 90},
		{orb.Point{0, 0}, orb.Point{-1, 0}, 270},
		{orb.Point{0, 0}, orb.Point{0, 1}, 0},
		{orb.Point{0, 0}, orb.Point{0, -1}, 180},
	}
	for _, c := range cases {
		got := Bearing(c.from, c.to)
		if math.Abs(got-c.correct) > 1e-6 {
			t.Errorf("Bearing from %v to %v must be %f, but got %f", c.from, c.to, c.correct, got)
		}
	}
}

func TestPointOnSegmentByFraction(t *testing.T) {
	p := orb.Point{37.6417350769043, 55.751849391735284}
	q := orb.Point{37.668514251708984, 55.73261980350401}
	mid := pointOnSegmentByFraction(p, q, 0.5)
	correct := orb.Point{(p.Lon() + q.Lon()) / 2.0, (p.Lat() + q.Lat()) / 2.0}
	if mid != correct {
		t.Errorf("Middle point must be %v, but got %v", correct, mid)
	}
	if pointOnSegmentByFraction(p, q, 0) != p {
		t.Errorf("Zero fraction must yield the segment start")
	}
	if pointOnSegmentByFraction(p, q, 1) != q {
		t.Errorf("Full fraction must yield the segment end")
	}
}
