// Package planarmath implements the 2-D collision and separation geometry used
// by push-and-shove trace routing. Coordinates are integers in board units;
// every squared magnitude is accumulated in int64 so that squaring large board
// coordinates cannot overflow.
package planarmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Vec is an integer point or displacement on the board plane.
type Vec struct {
	X, Y int
}

// ecoordMax is the saturation value for squared-distance accumulators.
const ecoordMax = int64(math.MaxInt64)

// sq widens before squaring so coordinate-sized inputs cannot overflow.
func sq(x int) int64 {
	return int64(x) * int64(x)
}

// Add returns the vector sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns the vector difference.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// Dot returns the dot product in the widened accumulator domain.
func (v Vec) Dot(o Vec) int64 {
	return int64(v.X)*int64(o.X) + int64(v.Y)*int64(o.Y)
}

// Cross returns the z component of the cross product in the widened
// accumulator domain. Its sign gives the orientation of o relative to v.
func (v Vec) Cross(o Vec) int64 {
	return int64(v.X)*int64(o.Y) - int64(v.Y)*int64(o.X)
}

// SquaredNorm returns the squared Euclidean length.
func (v Vec) SquaredNorm() int64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length rounded down to an integer.
func (v Vec) Norm() int {
	return int(math.Sqrt(float64(v.SquaredNorm())))
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Resize returns a vector with the same direction and the given length,
// rounded to the integer grid. Resizing the zero vector yields the zero
// vector since it carries no direction.
func (v Vec) Resize(length int) Vec {
	if v.IsZero() {
		return Vec{}
	}
	p := v.r2().Normalize().Mul(float64(length))
	return vecFromR2(p)
}

func (v Vec) r2() r2.Point {
	return r2.Point{X: float64(v.X), Y: float64(v.Y)}
}

func vecFromR2(p r2.Point) Vec {
	return Vec{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// String returns a human readable string that represents the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
