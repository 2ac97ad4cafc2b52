package planarmath

import (
	"testing"

	"go.viam.com/test"
)

func TestBBox(t *testing.T) {
	b := NewBBox(Vec{10, 0}, Vec{0, 10})
	test.That(t, b, test.ShouldResemble, BBox{Min: Vec{0, 0}, Max: Vec{10, 10}})
	test.That(t, b.Centre(), test.ShouldResemble, Vec{5, 5})

	test.That(t, b.Contains(Vec{5, 5}), test.ShouldBeTrue)
	test.That(t, b.Contains(Vec{10, 10}), test.ShouldBeTrue)
	test.That(t, b.Contains(Vec{11, 5}), test.ShouldBeFalse)

	test.That(t, b.Intersects(NewBBox(Vec{5, 5}, Vec{20, 20})), test.ShouldBeTrue)
	test.That(t, b.Intersects(NewBBox(Vec{10, 10}, Vec{20, 20})), test.ShouldBeTrue)
	test.That(t, b.Intersects(NewBBox(Vec{11, 0}, Vec{20, 10})), test.ShouldBeFalse)

	inflated := b.Inflate(2)
	test.That(t, inflated, test.ShouldResemble, BBox{Min: Vec{-2, -2}, Max: Vec{12, 12}})
}
