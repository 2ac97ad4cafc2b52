package planarmath

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle defined by its origin corner and a
// non-negative size. A zero-size rectangle behaves as a point.
type Rect struct {
	pos  Vec
	size Vec
}

// NewRect instantiates a new axis-aligned rectangle.
func NewRect(pos Vec, w, h int) (*Rect, error) {
	if w < 0 || h < 0 {
		return nil, newBadShapeDimensionsError(&Rect{})
	}
	return &Rect{pos: pos, size: Vec{w, h}}, nil
}

// Type returns the variant tag of the rectangle.
func (r *Rect) Type() ShapeType {
	return TypeRect
}

// Position returns the origin corner of the rectangle.
func (r *Rect) Position() Vec {
	return r.pos
}

// Size returns the width and height of the rectangle.
func (r *Rect) Size() Vec {
	return r.size
}

// Centre returns the center point of the rectangle.
func (r *Rect) Centre() Vec {
	return Vec{r.pos.X + r.size.X/2, r.pos.Y + r.size.Y/2}
}

// BBox returns the rectangle itself as a bounding box.
func (r *Rect) BBox() BBox {
	return BBox{Min: r.pos, Max: r.pos.Add(r.size)}
}

// Contains reports whether the point lies inside the rectangle, boundary
// included.
func (r *Rect) Contains(p Vec) bool {
	return r.BBox().Contains(p)
}

// Outline returns the boundary of the rectangle as a closed line chain.
func (r *Rect) Outline() *LineChain {
	p0 := r.pos
	return NewLineChain([]Vec{
		p0,
		{p0.X, p0.Y + r.size.Y},
		{p0.X + r.size.X, p0.Y + r.size.Y},
		{p0.X + r.size.X, p0.Y},
	}, true)
}

// CollideSeg reports whether the segment passes within clearance of the
// rectangle and optionally fills the actual distance and a witness point.
func (r *Rect) CollideSeg(seg Seg, clearance int, actual *int, location *Vec) bool {
	if r.Contains(seg.A) {
		if location != nil {
			*location = seg.A
		}
		if actual != nil {
			*actual = 0
		}
		return true
	}
	if r.Contains(seg.B) {
		if location != nil {
			*location = seg.B
		}
		if actual != nil {
			*actual = 0
		}
		return true
	}

	closestDistSq := ecoordMax
	var nearest Vec

	outline := r.Outline()
	for i := 0; i < outline.SegmentCount(); i++ {
		side := outline.Segment(i)
		distSq := side.SquaredDistanceToSeg(seg)
		if distSq < closestDistSq {
			closestDistSq = distSq
			nearest = side.NearestPointToSeg(seg)
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

// String returns a human readable string that represents the rectangle.
func (r *Rect) String() string {
	return fmt.Sprintf("Type: Rect | Position: %s | Size: %s", r.pos, r.size)
}

// MarshalJSON writes the shape as a ShapeConfig.
func (r *Rect) MarshalJSON() ([]byte, error) {
	return marshalShape(r)
}
