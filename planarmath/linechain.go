package planarmath

import (
	"fmt"
	"math"
)

// LineChain is an ordered polyline. A closed chain has an implicit segment
// from the last point back to the first. A chain with no points is degenerate
// and matches nothing, like the null shape.
type LineChain struct {
	points []Vec
	closed bool
}

// NewLineChain instantiates a new line chain from a copy of the given points.
func NewLineChain(points []Vec, closed bool) *LineChain {
	pts := make([]Vec, len(points))
	copy(pts, points)
	return &LineChain{points: pts, closed: closed}
}

// Type returns the variant tag of the line chain.
func (l *LineChain) Type() ShapeType {
	return TypeLineChain
}

// PointCount returns the number of points in the chain.
func (l *LineChain) PointCount() int {
	return len(l.points)
}

// Point returns the i-th point of the chain.
func (l *LineChain) Point(i int) Vec {
	return l.points[i]
}

// Points returns a copy of the chain's points.
func (l *LineChain) Points() []Vec {
	pts := make([]Vec, len(l.points))
	copy(pts, l.points)
	return pts
}

// Append adds a point to the end of the chain.
func (l *LineChain) Append(p Vec) {
	l.points = append(l.points, p)
}

// IsClosed reports whether the chain wraps from its last point to its first.
func (l *LineChain) IsClosed() bool {
	return l.closed
}

// SegmentCount returns the number of consecutive segments the chain
// decomposes into.
func (l *LineChain) SegmentCount() int {
	n := len(l.points)
	if n == 0 {
		return 0
	}
	if l.closed {
		return n
	}
	return n - 1
}

// Segment returns the i-th segment of the chain; for a closed chain the last
// segment wraps back to the first point.
func (l *LineChain) Segment(i int) Seg {
	n := len(l.points)
	return Seg{A: l.points[i], B: l.points[(i+1)%n]}
}

// BBox returns the bounding box of the chain's points.
func (l *LineChain) BBox() BBox {
	return bboxFromPoints(l.points)
}

// PointInside reports whether p lies within a closed chain, using an integer
// ray cast. Points exactly on an edge count as inside. Open chains contain
// nothing.
func (l *LineChain) PointInside(p Vec) bool {
	n := len(l.points)
	if !l.closed || n < 3 {
		return false
	}

	inside := false
	for i := 0; i < n; i++ {
		a := l.points[i]
		b := l.points[(i+1)%n]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Compare p against the edge's ray crossing without division.
		lhs := int64(p.X-a.X) * int64(b.Y-a.Y)
		rhs := int64(b.X-a.X) * int64(p.Y-a.Y)
		if b.Y > a.Y {
			if lhs < rhs {
				inside = !inside
			}
		} else if lhs > rhs {
			inside = !inside
		}
	}

	if !inside && l.PointOnEdge(p) {
		return true
	}
	return inside
}

// PointOnEdge reports whether p lies exactly on one of the chain's segments.
func (l *LineChain) PointOnEdge(p Vec) bool {
	for i := 0; i < l.SegmentCount(); i++ {
		if l.Segment(i).SquaredDistance(p) == 0 {
			return true
		}
	}
	return false
}

// CollideSeg reports whether the segment passes within clearance of the
// chain. For a closed chain a segment starting inside collides at distance 0.
func (l *LineChain) CollideSeg(seg Seg, clearance int, actual *int, location *Vec) bool {
	if l.SegmentCount() == 0 {
		return false
	}

	if l.closed && l.PointInside(seg.A) {
		if location != nil {
			*location = seg.A
		}
		if actual != nil {
			*actual = 0
		}
		return true
	}

	closestDistSq := ecoordMax
	var nearest Vec

	for i := 0; i < l.SegmentCount(); i++ {
		s := l.Segment(i)
		distSq := s.SquaredDistanceToSeg(seg)
		if distSq < closestDistSq {
			closestDistSq = distSq
			nearest = s.NearestPointToSeg(seg)
			if closestDistSq == 0 {
				break
			}
		}
	}

	if closestDistSq == 0 || closestDistSq < sq(clearance) {
		if location != nil {
			*location = nearest
		}
		if actual != nil {
			*actual = int(math.Sqrt(float64(closestDistSq)))
		}
		return true
	}
	return false
}

// String returns a human readable string that represents the chain.
func (l *LineChain) String() string {
	return fmt.Sprintf("Type: LineChain | Points: %d | Closed: %t", len(l.points), l.closed)
}

// MarshalJSON writes the shape as a ShapeConfig.
func (l *LineChain) MarshalJSON() ([]byte, error) {
	return marshalShape(l)
}
