package planarmath

import "encoding/json"

// ShapeType is the runtime variant tag of a Shape. The tag is fixed at
// construction time; geometry may move or resize but never changes kind.
type ShapeType int

// The closed set of shape variants the engine dispatches over.
const (
	TypeEmpty ShapeType = iota
	TypeRect
	TypeCircle
	TypeSegment
	TypeLineChain
	TypeSimplePolygon
	TypeArc
	TypeCompound
)

// String returns the config name of the shape type.
func (t ShapeType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeRect:
		return "rect"
	case TypeCircle:
		return "circle"
	case TypeSegment:
		return "segment"
	case TypeLineChain:
		return "linechain"
	case TypeSimplePolygon:
		return "polygon"
	case TypeArc:
		return "arc"
	case TypeCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Shape is one geometric operand of a collision query. The engine reads
// shapes for the duration of a single call and never retains them; callers
// must not mutate a shape concurrently with a query that uses it.
type Shape interface {
	json.Marshaler

	// Type returns the variant tag used by collision dispatch.
	Type() ShapeType
	// BBox returns the axis-aligned bounding box of the shape.
	BBox() BBox
	String() string
}

// chainLike is the shared surface of the polyline-backed shapes (LineChain
// and SimplePolygon); the segment-sweep collision routines operate on it.
type chainLike interface {
	Shape
	SegmentCount() int
	Segment(i int) Seg
	IsClosed() bool
	PointInside(p Vec) bool
	CollideSeg(seg Seg, clearance int, actual *int, location *Vec) bool
}

func asChain(s Shape) (chainLike, bool) {
	switch c := s.(type) {
	case *LineChain:
		return c, true
	case *SimplePolygon:
		return c, true
	default:
		return nil, false
	}
}
