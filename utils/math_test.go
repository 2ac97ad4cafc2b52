package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegToRad(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(90), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
}

func TestIntHelpers(t *testing.T) {
	test.That(t, AbsInt(-5), test.ShouldEqual, 5)
	test.That(t, AbsInt(5), test.ShouldEqual, 5)
	test.That(t, MaxInt(2, 3), test.ShouldEqual, 3)
	test.That(t, MinInt(2, 3), test.ShouldEqual, 2)
}
