package planarmath

import (
	"fmt"

	"github.com/routelab/boardmath/utils"
)

// BBox is an axis-aligned integer bounding box. A zero BBox is a single point
// at the origin; degenerate shapes report a zero BBox.
type BBox struct {
	Min, Max Vec
}

// NewBBox constructs a bounding box from two opposite corners, which may be
// given in any order.
func NewBBox(a, b Vec) BBox {
	return BBox{
		Min: Vec{utils.MinInt(a.X, b.X), utils.MinInt(a.Y, b.Y)},
		Max: Vec{utils.MaxInt(a.X, b.X), utils.MaxInt(a.Y, b.Y)},
	}
}

func bboxFromPoints(pts []Vec) BBox {
	if len(pts) == 0 {
		return BBox{}
	}
	bb := BBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bb = bb.union(BBox{Min: p, Max: p})
	}
	return bb
}

func (b BBox) union(o BBox) BBox {
	return BBox{
		Min: Vec{utils.MinInt(b.Min.X, o.Min.X), utils.MinInt(b.Min.Y, o.Min.Y)},
		Max: Vec{utils.MaxInt(b.Max.X, o.Max.X), utils.MaxInt(b.Max.Y, o.Max.Y)},
	}
}

// Inflate grows the box by d in every direction.
func (b BBox) Inflate(d int) BBox {
	return BBox{
		Min: Vec{b.Min.X - d, b.Min.Y - d},
		Max: Vec{b.Max.X + d, b.Max.Y + d},
	}
}

// Contains reports whether the point lies inside the box, boundary included.
func (b BBox) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether the two boxes share at least one point.
func (b BBox) Intersects(o BBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Centre returns the center point of the box.
func (b BBox) Centre() Vec {
	return Vec{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// String returns a human readable string that represents the box.
func (b BBox) String() string {
	return fmt.Sprintf("[%s - %s]", b.Min, b.Max)
}
