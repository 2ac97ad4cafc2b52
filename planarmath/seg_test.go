package planarmath

import (
	"testing"

	"go.viam.com/test"
)

func TestSegNearestPoint(t *testing.T) {
	s := Seg{Vec{0, 0}, Vec{10, 0}}
	test.That(t, s.NearestPoint(Vec{5, 5}), test.ShouldResemble, Vec{5, 0})
	test.That(t, s.NearestPoint(Vec{-3, 4}), test.ShouldResemble, Vec{0, 0})
	test.That(t, s.NearestPoint(Vec{20, 7}), test.ShouldResemble, Vec{10, 0})

	// degenerate segment collapses to its endpoint
	pt := Seg{Vec{2, 2}, Vec{2, 2}}
	test.That(t, pt.NearestPoint(Vec{5, 6}), test.ShouldResemble, Vec{2, 2})
}

func TestSegDistance(t *testing.T) {
	s := Seg{Vec{0, 0}, Vec{10, 0}}
	test.That(t, s.SquaredDistance(Vec{5, 5}), test.ShouldEqual, int64(25))
	test.That(t, s.Distance(Vec{5, 5}), test.ShouldEqual, 5)
	test.That(t, s.Distance(Vec{20, 0}), test.ShouldEqual, 10)
	test.That(t, s.Distance(Vec{7, 0}), test.ShouldEqual, 0)
}

func TestSegIntersects(t *testing.T) {
	for _, c := range []struct {
		name       string
		a, b       Seg
		intersects bool
	}{
		{"crossing", Seg{Vec{0, 0}, Vec{10, 10}}, Seg{Vec{0, 10}, Vec{10, 0}}, true},
		{"shared endpoint", Seg{Vec{0, 0}, Vec{5, 5}}, Seg{Vec{5, 5}, Vec{10, 0}}, true},
		{"collinear overlap", Seg{Vec{0, 0}, Vec{10, 0}}, Seg{Vec{5, 0}, Vec{15, 0}}, true},
		{"collinear disjoint", Seg{Vec{0, 0}, Vec{10, 0}}, Seg{Vec{12, 0}, Vec{15, 0}}, false},
		{"parallel", Seg{Vec{0, 0}, Vec{10, 0}}, Seg{Vec{0, 5}, Vec{10, 5}}, false},
		{"near miss", Seg{Vec{0, 0}, Vec{10, 0}}, Seg{Vec{5, 1}, Vec{5, 10}}, false},
	} {
		t.Run(c.name, func(t *testing.T) {
			test.That(t, c.a.Intersects(c.b), test.ShouldEqual, c.intersects)
			test.That(t, c.b.Intersects(c.a), test.ShouldEqual, c.intersects)
		})
	}
}

func TestSegDistanceToSeg(t *testing.T) {
	a := Seg{Vec{0, 0}, Vec{10, 0}}
	b := Seg{Vec{0, 5}, Vec{10, 5}}
	test.That(t, a.SquaredDistanceToSeg(b), test.ShouldEqual, int64(25))

	crossing := Seg{Vec{5, -5}, Vec{5, 5}}
	test.That(t, a.SquaredDistanceToSeg(crossing), test.ShouldEqual, int64(0))

	diagonalAway := Seg{Vec{20, 5}, Vec{20, 15}}
	test.That(t, a.SquaredDistanceToSeg(diagonalAway), test.ShouldEqual, Vec{10, 5}.SquaredNorm())
	test.That(t, a.NearestPointToSeg(diagonalAway), test.ShouldResemble, Vec{10, 0})
}
