package planarmath

// Empty is the null shape. It matches nothing: collision queries against it
// short-circuit to "no collision" before any dispatch.
type Empty struct{}

// NewEmpty instantiates a new null shape.
func NewEmpty() *Empty {
	return &Empty{}
}

// Type returns the variant tag of the null shape.
func (e *Empty) Type() ShapeType {
	return TypeEmpty
}

// BBox returns a zero box; the null shape has no extent.
func (e *Empty) BBox() BBox {
	return BBox{}
}

// String returns a human readable string that represents the null shape.
func (e *Empty) String() string {
	return "Type: Empty"
}

// MarshalJSON writes the shape as a ShapeConfig.
func (e *Empty) MarshalJSON() ([]byte, error) {
	return marshalShape(e)
}
