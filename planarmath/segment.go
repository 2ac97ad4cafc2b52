package planarmath

import (
	"fmt"
	"math"

	"github.com/routelab/boardmath/utils"
)

// Segment is a thick line segment: the Minkowski sum of a zero-width segment
// with a disc of radius width/2, so it collides like a capsule.
type Segment struct {
	seg   Seg
	width int
}

// NewSegment instantiates a new thick segment.
func NewSegment(a, b Vec, width int) (*Segment, error) {
	if width < 0 {
		return nil, newBadShapeDimensionsError(&Segment{})
	}
	return &Segment{seg: Seg{A: a, B: b}, width: width}, nil
}

// Type returns the variant tag of the thick segment.
func (s *Segment) Type() ShapeType {
	return TypeSegment
}

// Seg returns the zero-width centerline of the segment.
func (s *Segment) Seg() Seg {
	return s.seg
}

// Width returns the full width of the segment.
func (s *Segment) Width() int {
	return s.width
}

// BBox returns the bounding box of the segment, including its width.
func (s *Segment) BBox() BBox {
	return NewBBox(s.seg.A, s.seg.B).Inflate(s.width / 2)
}

// CollideSeg reports whether the zero-width segment passes within clearance
// of this thick segment. The reported actual distance is measured from the
// thick segment's boundary, never below 0.
func (s *Segment) CollideSeg(seg Seg, clearance int, actual *int, location *Vec) bool {
	minDist := clearance + s.width/2
	distSq := s.seg.SquaredDistanceToSeg(seg)

	if distSq == 0 || distSq < sq(minDist) {
		if location != nil {
			*location = s.seg.NearestPointToSeg(seg)
		}
		if actual != nil {
			*actual = utils.MaxInt(0, int(math.Sqrt(float64(distSq)))-s.width/2)
		}
		return true
	}
	return false
}

// String returns a human readable string that represents the segment.
func (s *Segment) String() string {
	return fmt.Sprintf("Type: Segment | %s | Width: %d", s.seg, s.width)
}

// MarshalJSON writes the shape as a ShapeConfig.
func (s *Segment) MarshalJSON() ([]byte, error) {
	return marshalShape(s)
}
