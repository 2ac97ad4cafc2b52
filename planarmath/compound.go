package planarmath

import (
	"fmt"
	"sync"
)

// Compound is an ordered collection of sub-shapes treated as one logical
// shape. Nested compounds are flattened at construction, so collision
// aggregation only ever sees primitive sub-shapes.
type Compound struct {
	shapes []Shape

	bbox BBox
	once sync.Once
}

// NewCompound instantiates a new compound shape, flattening any nested
// compounds and dropping nil entries.
func NewCompound(shapes []Shape) *Compound {
	flat := make([]Shape, 0, len(shapes))
	for _, s := range shapes {
		switch sub := s.(type) {
		case nil:
		case *Compound:
			flat = append(flat, sub.Shapes()...)
		default:
			flat = append(flat, s)
		}
	}
	return &Compound{shapes: flat}
}

// Type returns the variant tag of the compound.
func (c *Compound) Type() ShapeType {
	return TypeCompound
}

// Shapes returns the flattened sub-shapes of the compound.
func (c *Compound) Shapes() []Shape {
	return c.shapes
}

// Size returns the number of sub-shapes.
func (c *Compound) Size() int {
	return len(c.shapes)
}

// BBox returns the memoized union of the sub-shape bounding boxes. Null
// sub-shapes contribute no extent.
func (c *Compound) BBox() BBox {
	c.once.Do(func() {
		first := true
		for _, s := range c.shapes {
			if s.Type() == TypeEmpty {
				continue
			}
			if first {
				c.bbox = s.BBox()
				first = false
				continue
			}
			c.bbox = c.bbox.union(s.BBox())
		}
	})
	return c.bbox
}

// String returns a human readable string that represents the compound.
func (c *Compound) String() string {
	return fmt.Sprintf("Type: Compound | Shapes: %d", len(c.shapes))
}

// MarshalJSON writes the shape as a ShapeConfig.
func (c *Compound) MarshalJSON() ([]byte, error) {
	return marshalShape(c)
}
