package planarmath

import "github.com/pkg/errors"

// errShapeTypeUnsupported is returned when a config names a shape type the
// engine does not know.
var errShapeTypeUnsupported = errors.New("shape type unsupported")

// newCollisionTypeUnsupportedError is a programming defect: every pair of
// shape variants must resolve to a collision routine, and a gap must surface
// loudly rather than read as "no collision".
func newCollisionTypeUnsupportedError(a, b Shape) error {
	return errors.Errorf("collisions between %T and %T are not supported", a, b)
}

// newBadShapeDimensionsError is returned for negative dimensions. Zero
// dimensions are allowed; they degrade to points and zero-width segments.
func newBadShapeDimensionsError(s Shape) error {
	return errors.Errorf("invalid dimensions for shape %T", s)
}
