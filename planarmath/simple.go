package planarmath

import "fmt"

// SimplePolygon is a closed outline interpreted as a filled region. It
// collides through its boundary chain and supports point containment.
type SimplePolygon struct {
	chain *LineChain
}

// NewSimplePolygon instantiates a new filled polygon outline.
func NewSimplePolygon(points []Vec) (*SimplePolygon, error) {
	if len(points) < 3 {
		return nil, newBadShapeDimensionsError(&SimplePolygon{})
	}
	return &SimplePolygon{chain: NewLineChain(points, true)}, nil
}

// Type returns the variant tag of the polygon.
func (p *SimplePolygon) Type() ShapeType {
	return TypeSimplePolygon
}

// PointCount returns the number of outline points.
func (p *SimplePolygon) PointCount() int {
	return p.chain.PointCount()
}

// Point returns the i-th outline point.
func (p *SimplePolygon) Point(i int) Vec {
	return p.chain.Point(i)
}

// Points returns a copy of the outline points.
func (p *SimplePolygon) Points() []Vec {
	return p.chain.Points()
}

// SegmentCount returns the number of outline segments.
func (p *SimplePolygon) SegmentCount() int {
	return p.chain.SegmentCount()
}

// Segment returns the i-th outline segment.
func (p *SimplePolygon) Segment(i int) Seg {
	return p.chain.Segment(i)
}

// IsClosed always reports true; a polygon outline is closed by definition.
func (p *SimplePolygon) IsClosed() bool {
	return true
}

// PointInside reports whether the point lies within the filled region,
// boundary included.
func (p *SimplePolygon) PointInside(pt Vec) bool {
	return p.chain.PointInside(pt)
}

// CollideSeg reports whether the segment passes within clearance of the
// polygon; a segment starting inside the region collides at distance 0.
func (p *SimplePolygon) CollideSeg(seg Seg, clearance int, actual *int, location *Vec) bool {
	return p.chain.CollideSeg(seg, clearance, actual, location)
}

// BBox returns the bounding box of the outline.
func (p *SimplePolygon) BBox() BBox {
	return p.chain.BBox()
}

// String returns a human readable string that represents the polygon.
func (p *SimplePolygon) String() string {
	return fmt.Sprintf("Type: SimplePolygon | Points: %d", p.chain.PointCount())
}

// MarshalJSON writes the shape as a ShapeConfig.
func (p *SimplePolygon) MarshalJSON() ([]byte, error) {
	return marshalShape(p)
}
