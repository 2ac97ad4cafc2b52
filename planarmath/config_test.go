package planarmath

import (
	"encoding/json"
	"testing"

	"go.viam.com/test"
)

func TestShapeConfigParse(t *testing.T) {
	testCases := []struct {
		name    string
		config  ShapeConfig
		success bool
	}{
		{"empty", ShapeConfig{Type: "empty"}, true},
		{"rect", ShapeConfig{Type: "rect", X: 1, Y: 2, W: 3, H: 4}, true},
		{"zero size rect", ShapeConfig{Type: "rect", X: 1, Y: 2}, true},
		{"negative rect", ShapeConfig{Type: "rect", W: -1, H: 4}, false},
		{"circle", ShapeConfig{Type: "circle", CX: 4, CY: 5, R: 6}, true},
		{"negative circle", ShapeConfig{Type: "circle", R: -6}, false},
		{"segment", ShapeConfig{Type: "segment", AX: 1, AY: 2, BX: 30, BY: 40, Width: 4}, true},
		{"negative width segment", ShapeConfig{Type: "segment", BX: 30, Width: -4}, false},
		{"open linechain", ShapeConfig{Type: "linechain", Points: [][2]int{{0, 0}, {10, 0}, {10, 10}}}, true},
		{"closed linechain", ShapeConfig{Type: "linechain", Points: [][2]int{{0, 0}, {10, 0}, {10, 10}}, Closed: true}, true},
		{"polygon", ShapeConfig{Type: "polygon", Points: [][2]int{{0, 0}, {10, 0}, {10, 10}}}, true},
		{"degenerate polygon", ShapeConfig{Type: "polygon", Points: [][2]int{{0, 0}, {10, 0}}}, false},
		{"arc", ShapeConfig{Type: "arc", CX: 1, CY: 2, R: 100, StartAngle: 45, EndAngle: 180}, true},
		{"negative arc", ShapeConfig{Type: "arc", R: -100}, false},
		{"compound", ShapeConfig{Type: "compound", Shapes: []ShapeConfig{
			{Type: "circle", CX: 4, CY: 5, R: 6},
			{Type: "rect", X: 1, Y: 2, W: 3, H: 4},
		}}, true},
		{"compound with bad member", ShapeConfig{Type: "compound", Shapes: []ShapeConfig{
			{Type: "circle", R: -6},
		}}, false},
		{"unknown type", ShapeConfig{Type: "trapezoid"}, false},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			shape, err := c.config.ParseConfig()
			if !c.success {
				test.That(t, err, test.ShouldNotBeNil)
				return
			}
			test.That(t, err, test.ShouldBeNil)

			// the shape must survive a JSON round trip unchanged
			data, err := json.Marshal(shape)
			test.That(t, err, test.ShouldBeNil)
			var decoded ShapeConfig
			test.That(t, json.Unmarshal(data, &decoded), test.ShouldBeNil)
			reparsed, err := decoded.ParseConfig()
			test.That(t, err, test.ShouldBeNil)

			want, err := NewShapeConfig(shape)
			test.That(t, err, test.ShouldBeNil)
			got, err := NewShapeConfig(reparsed)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, got, test.ShouldResemble, want)
		})
	}
}

func TestShapeConfigTypeNames(t *testing.T) {
	shapes := []Shape{
		NewEmpty(),
		makeRect(t, Vec{0, 0}, 1, 1),
		makeCircle(t, Vec{0, 0}, 1),
		makeSegment(t, Vec{0, 0}, Vec{1, 0}, 1),
		NewLineChain([]Vec{{0, 0}, {1, 0}}, false),
		makePolygon(t, []Vec{{0, 0}, {1, 0}, {1, 1}}),
		makeArc(t, Vec{0, 0}, 1, 0, 90),
		NewCompound([]Shape{makeCircle(t, Vec{0, 0}, 1)}),
	}
	for _, s := range shapes {
		config, err := NewShapeConfig(s)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, config.Type, test.ShouldEqual, s.Type().String())

		reparsed, err := config.ParseConfig()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, reparsed.Type(), test.ShouldEqual, s.Type())
	}
}
