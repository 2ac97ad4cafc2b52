package planarmath

import (
	"fmt"
	"math"

	"github.com/routelab/boardmath/utils"
)

// Seg is a zero-width line segment between two integer points. Thick
// (capsule-like) segments are represented by the Segment shape, which wraps a
// Seg with a width.
type Seg struct {
	A, B Vec
}

// NearestPoint returns the point on the segment closest to p.
func (s Seg) NearestPoint(p Vec) Vec {
	d := s.B.Sub(s.A)
	l2 := d.SquaredNorm()
	if l2 == 0 {
		return s.A
	}
	t := d.Dot(p.Sub(s.A))
	if t <= 0 {
		return s.A
	}
	if t >= l2 {
		return s.B
	}
	r := float64(t) / float64(l2)
	return Vec{
		X: s.A.X + int(math.Round(r*float64(d.X))),
		Y: s.A.Y + int(math.Round(r*float64(d.Y))),
	}
}

// SquaredDistance returns the squared distance from p to the segment.
func (s Seg) SquaredDistance(p Vec) int64 {
	return s.NearestPoint(p).Sub(p).SquaredNorm()
}

// Distance returns the distance from p to the segment, rounded down.
func (s Seg) Distance(p Vec) int {
	return int(math.Sqrt(float64(s.SquaredDistance(p))))
}

// Intersects reports whether the two segments share at least one point,
// endpoints and collinear overlap included.
func (s Seg) Intersects(o Seg) bool {
	d1 := o.B.Sub(o.A).Cross(s.A.Sub(o.A))
	d2 := o.B.Sub(o.A).Cross(s.B.Sub(o.A))
	d3 := s.B.Sub(s.A).Cross(o.A.Sub(s.A))
	d4 := s.B.Sub(s.A).Cross(o.B.Sub(s.A))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onCollinearSegment(o, s.A) {
		return true
	}
	if d2 == 0 && onCollinearSegment(o, s.B) {
		return true
	}
	if d3 == 0 && onCollinearSegment(s, o.A) {
		return true
	}
	if d4 == 0 && onCollinearSegment(s, o.B) {
		return true
	}
	return false
}

// onCollinearSegment reports whether p, known to be collinear with s, lies
// within its extent.
func onCollinearSegment(s Seg, p Vec) bool {
	return p.X >= utils.MinInt(s.A.X, s.B.X) && p.X <= utils.MaxInt(s.A.X, s.B.X) &&
		p.Y >= utils.MinInt(s.A.Y, s.B.Y) && p.Y <= utils.MaxInt(s.A.Y, s.B.Y)
}

// SquaredDistanceToSeg returns the squared distance between the two segments,
// 0 if they intersect.
func (s Seg) SquaredDistanceToSeg(o Seg) int64 {
	if s.Intersects(o) {
		return 0
	}
	d := s.SquaredDistance(o.A)
	if d2 := s.SquaredDistance(o.B); d2 < d {
		d = d2
	}
	if d2 := o.SquaredDistance(s.A); d2 < d {
		d = d2
	}
	if d2 := o.SquaredDistance(s.B); d2 < d {
		d = d2
	}
	return d
}

// NearestPointToSeg returns the point on s closest to any point of o. When
// the segments intersect, the crossing point is returned.
func (s Seg) NearestPointToSeg(o Seg) Vec {
	if s.Intersects(o) {
		return s.intersectionPoint(o)
	}
	best := s.NearestPoint(o.A)
	bestDist := best.Sub(o.A).SquaredNorm()
	if p := s.NearestPoint(o.B); p.Sub(o.B).SquaredNorm() < bestDist {
		best = p
		bestDist = p.Sub(o.B).SquaredNorm()
	}
	if d := o.SquaredDistance(s.A); d < bestDist {
		best = s.A
		bestDist = d
	}
	if d := o.SquaredDistance(s.B); d < bestDist {
		best = s.B
	}
	return best
}

// intersectionPoint assumes the segments intersect. For collinear overlap any
// shared point is acceptable.
func (s Seg) intersectionPoint(o Seg) Vec {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)
	den := d1.Cross(d2)
	if den == 0 {
		return s.NearestPoint(o.A)
	}
	t := float64(o.A.Sub(s.A).Cross(d2)) / float64(den)
	return Vec{
		X: s.A.X + int(math.Round(t*float64(d1.X))),
		Y: s.A.Y + int(math.Round(t*float64(d1.Y))),
	}
}

// String returns a human readable string that represents the segment.
func (s Seg) String() string {
	return fmt.Sprintf("%s - %s", s.A, s.B)
}
