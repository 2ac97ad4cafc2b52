package planarmath

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/geo/r2"

	"github.com/routelab/boardmath/utils"
)

// DefaultArcAccuracy is the maximum chord error, in board units, of the
// polyline approximation used for arc collisions.
const DefaultArcAccuracy = 5000

// Arc is a circular arc swept counter-clockwise from its start angle to its
// end angle. Arcs are never collided directly: every collision routine goes
// through the polyline proxy built at the configured accuracy.
type Arc struct {
	center     Vec
	radius     int
	startAngle float64 // degrees
	endAngle   float64 // degrees
	accuracy   int

	poly *LineChain
	once sync.Once
}

// NewArc instantiates a new arc with the default chord accuracy. Equal start
// and end angles describe a full circle.
func NewArc(center Vec, radius int, startAngle, endAngle float64) (*Arc, error) {
	return NewArcWithAccuracy(center, radius, startAngle, endAngle, DefaultArcAccuracy)
}

// NewArcWithAccuracy instantiates a new arc whose polyline proxy keeps the
// chord error within the given accuracy.
func NewArcWithAccuracy(center Vec, radius int, startAngle, endAngle float64, accuracy int) (*Arc, error) {
	if radius < 0 || accuracy <= 0 {
		return nil, newBadShapeDimensionsError(&Arc{})
	}
	return &Arc{
		center:     center,
		radius:     radius,
		startAngle: startAngle,
		endAngle:   endAngle,
		accuracy:   accuracy,
	}, nil
}

// Type returns the variant tag of the arc.
func (a *Arc) Type() ShapeType {
	return TypeArc
}

// Centre returns the center point of the arc.
func (a *Arc) Centre() Vec {
	return a.center
}

// Radius returns the radius of the arc.
func (a *Arc) Radius() int {
	return a.radius
}

// StartAngle returns the start angle of the arc in degrees.
func (a *Arc) StartAngle() float64 {
	return a.startAngle
}

// EndAngle returns the end angle of the arc in degrees.
func (a *Arc) EndAngle() float64 {
	return a.endAngle
}

// CentralAngle returns the counter-clockwise sweep in degrees, in (0, 360].
func (a *Arc) CentralAngle() float64 {
	sweep := math.Mod(a.endAngle-a.startAngle, 360)
	if sweep <= 0 {
		sweep += 360
	}
	return sweep
}

// Polyline returns the memoized polyline proxy of the arc. The proxy is
// computed from the arc parameters alone, so a concurrent first touch is
// harmless.
func (a *Arc) Polyline() *LineChain {
	a.once.Do(func() { a.poly = a.buildPolyline() })
	return a.poly
}

func (a *Arc) buildPolyline() *LineChain {
	if a.radius == 0 {
		return NewLineChain([]Vec{a.center, a.center}, false)
	}

	sweep := a.CentralAngle()

	// Chord count from the sagitta bound: a chord subtending step radians
	// deviates from the circle by r*(1-cos(step/2)).
	maxStep := math.Pi / 2
	if a.accuracy < a.radius {
		maxStep = 2 * math.Acos(1-float64(a.accuracy)/float64(a.radius))
	}
	steps := int(math.Ceil(utils.DegToRad(sweep) / maxStep))
	if steps < 1 {
		steps = 1
	}

	pts := make([]Vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := utils.DegToRad(a.startAngle + sweep*float64(i)/float64(steps))
		p := r2.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(float64(a.radius))
		pts = append(pts, a.center.Add(vecFromR2(p)))
	}
	return NewLineChain(pts, false)
}

// BBox returns the bounding box of the arc's polyline proxy.
func (a *Arc) BBox() BBox {
	return a.Polyline().BBox()
}

// String returns a human readable string that represents the arc.
func (a *Arc) String() string {
	return fmt.Sprintf("Type: Arc | Center: %s | Radius: %d | Angles: %.1f - %.1f",
		a.center, a.radius, a.startAngle, a.endAngle)
}

// MarshalJSON writes the shape as a ShapeConfig.
func (a *Arc) MarshalJSON() ([]byte, error) {
	return marshalShape(a)
}
