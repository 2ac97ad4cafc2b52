package planarmath

import (
	"fmt"
	"math"

	"github.com/routelab/boardmath/utils"
)

// Circle is a filled disc with an integer center and non-negative radius.
// A zero-radius circle behaves as a point.
type Circle struct {
	center Vec
	radius int
}

// NewCircle instantiates a new circle.
func NewCircle(center Vec, radius int) (*Circle, error) {
	if radius < 0 {
		return nil, newBadShapeDimensionsError(&Circle{})
	}
	return &Circle{center: center, radius: radius}, nil
}

// Type returns the variant tag of the circle.
func (c *Circle) Type() ShapeType {
	return TypeCircle
}

// Centre returns the center point of the circle.
func (c *Circle) Centre() Vec {
	return c.center
}

// Radius returns the radius of the circle.
func (c *Circle) Radius() int {
	return c.radius
}

// BBox returns the bounding box of the circle.
func (c *Circle) BBox() BBox {
	return BBox{
		Min: Vec{c.center.X - c.radius, c.center.Y - c.radius},
		Max: Vec{c.center.X + c.radius, c.center.Y + c.radius},
	}
}

// CollideSeg reports whether the segment passes within clearance of the
// circle and optionally fills the actual distance and a witness point.
func (c *Circle) CollideSeg(seg Seg, clearance int, actual *int, location *Vec) bool {
	minDist := clearance + c.radius
	pn := seg.NearestPoint(c.center)
	distSq := pn.Sub(c.center).SquaredNorm()

	if distSq == 0 || distSq < sq(minDist) {
		if location != nil {
			*location = pn
		}
		if actual != nil {
			*actual = utils.MaxInt(0, int(math.Sqrt(float64(distSq)))-c.radius)
		}
		return true
	}
	return false
}

// String returns a human readable string that represents the circle.
func (c *Circle) String() string {
	return fmt.Sprintf("Type: Circle | Center: %s | Radius: %d", c.center, c.radius)
}

// MarshalJSON writes the shape as a ShapeConfig.
func (c *Circle) MarshalJSON() ([]byte, error) {
	return marshalShape(c)
}
