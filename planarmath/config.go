package planarmath

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ShapeConfig is the JSON description of a shape. Only the fields relevant
// to the named type are read; the rest stay at their zero values.
type ShapeConfig struct {
	Type string `json:"type"`

	// rect origin and size
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
	W int `json:"w,omitempty"`
	H int `json:"h,omitempty"`

	// circle and arc center and radius
	CX int `json:"cx,omitempty"`
	CY int `json:"cy,omitempty"`
	R  int `json:"r,omitempty"`

	// thick segment endpoints and width
	AX    int `json:"ax,omitempty"`
	AY    int `json:"ay,omitempty"`
	BX    int `json:"bx,omitempty"`
	BY    int `json:"by,omitempty"`
	Width int `json:"width,omitempty"`

	// line chain and polygon points
	Points [][2]int `json:"points,omitempty"`
	Closed bool     `json:"closed,omitempty"`

	// arc angles in degrees
	StartAngle float64 `json:"start_angle,omitempty"`
	EndAngle   float64 `json:"end_angle,omitempty"`

	// compound sub-shapes
	Shapes []ShapeConfig `json:"shapes,omitempty"`
}

// ParseConfig instantiates the shape the config describes.
func (c *ShapeConfig) ParseConfig() (Shape, error) {
	switch c.Type {
	case "empty":
		return NewEmpty(), nil
	case "rect":
		return NewRect(Vec{c.X, c.Y}, c.W, c.H)
	case "circle":
		return NewCircle(Vec{c.CX, c.CY}, c.R)
	case "segment":
		return NewSegment(Vec{c.AX, c.AY}, Vec{c.BX, c.BY}, c.Width)
	case "linechain":
		return NewLineChain(c.parsePoints(), c.Closed), nil
	case "polygon":
		return NewSimplePolygon(c.parsePoints())
	case "arc":
		return NewArc(Vec{c.CX, c.CY}, c.R, c.StartAngle, c.EndAngle)
	case "compound":
		shapes := make([]Shape, 0, len(c.Shapes))
		for i := range c.Shapes {
			s, err := c.Shapes[i].ParseConfig()
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, s)
		}
		return NewCompound(shapes), nil
	default:
		return nil, errors.Wrap(errShapeTypeUnsupported, c.Type)
	}
}

func (c *ShapeConfig) parsePoints() []Vec {
	pts := make([]Vec, 0, len(c.Points))
	for _, p := range c.Points {
		pts = append(pts, Vec{p[0], p[1]})
	}
	return pts
}

func configPoints(pts []Vec) [][2]int {
	out := make([][2]int, 0, len(pts))
	for _, p := range pts {
		out = append(out, [2]int{p.X, p.Y})
	}
	return out
}

// NewShapeConfig converts a shape to its config representation.
func NewShapeConfig(s Shape) (*ShapeConfig, error) {
	config := &ShapeConfig{Type: s.Type().String()}
	switch sh := s.(type) {
	case *Empty:
	case *Rect:
		config.X, config.Y = sh.pos.X, sh.pos.Y
		config.W, config.H = sh.size.X, sh.size.Y
	case *Circle:
		config.CX, config.CY = sh.center.X, sh.center.Y
		config.R = sh.radius
	case *Segment:
		config.AX, config.AY = sh.seg.A.X, sh.seg.A.Y
		config.BX, config.BY = sh.seg.B.X, sh.seg.B.Y
		config.Width = sh.width
	case *LineChain:
		config.Points = configPoints(sh.points)
		config.Closed = sh.closed
	case *SimplePolygon:
		config.Points = configPoints(sh.chain.points)
	case *Arc:
		config.CX, config.CY = sh.center.X, sh.center.Y
		config.R = sh.radius
		config.StartAngle = sh.startAngle
		config.EndAngle = sh.endAngle
	case *Compound:
		for _, sub := range sh.shapes {
			subConfig, err := NewShapeConfig(sub)
			if err != nil {
				return nil, err
			}
			config.Shapes = append(config.Shapes, *subConfig)
		}
	default:
		return nil, errors.Wrapf(errShapeTypeUnsupported, "%T", s)
	}
	return config, nil
}

func marshalShape(s Shape) ([]byte, error) {
	config, err := NewShapeConfig(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(config)
}
