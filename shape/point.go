package shape

import (
	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
)

// Pt is a dynamic location in 2D space, realized per timepoint.
// Implementations cache their value for each timepoint so that all
// references to a point within a frame agree.
type Pt interface {
	At(t int) geom.Point
}

type fixedPt geom.Point

func (p fixedPt) At(int) geom.Point { return geom.Point(p) }

// XY returns the static point (x, y).
func XY(x, y float64) Pt { return fixedPt{X: x, Y: y} }

// P returns the static point p.
func P(p geom.Point) Pt { return fixedPt(p) }

type ptCache struct {
	tPrev int
	valid bool
	value geom.Point
}

func (c *ptCache) at(t int, compute func(int) geom.Point) geom.Point {
	if !c.valid || t != c.tPrev {
		c.value = compute(t)
		c.tPrev = t
		c.valid = true
	}
	return c.value
}

// ParamPt is a point whose coordinates are parameters.
type ParamPt struct {
	X, Y param.Param
	c    ptCache
}

func (p *ParamPt) At(t int) geom.Point {
	return p.c.at(t, func(t int) geom.Point {
		return geom.Point{X: p.X.At(t), Y: p.Y.At(t)}
	})
}

// Move is a point at a parameterized polar offset from a reference
// point. With a nil Direction the direction is uniformly random.
type Move struct {
	Ref       Pt
	Direction param.Param // degrees
	Distance  param.Param
	c         ptCache
}

// NewMove returns a point at the given direction (degrees) and
// distance from ref. Pass nil for direction to move in a uniformly
// random direction.
func NewMove(ref Pt, direction, distance param.Param) *Move {
	return &Move{Ref: ref, Direction: direction, Distance: distance}
}

func (m *Move) At(t int) geom.Point {
	return m.c.at(t, func(t int) geom.Point {
		dir := m.Direction
		if dir == nil {
			dir = &param.Uniform{Min: 0, Max: 360}
			m.Direction = dir
		}
		return geom.Endpoint(m.Ref.At(t), geom.Rad(dir.At(t)), m.Distance.At(t))
	})
}

// Translation is a point shifted by the coordinates of another dynamic
// point.
type Translation struct {
	Start, Offset Pt
	c             ptCache
}

func (p *Translation) At(t int) geom.Point {
	return p.c.at(t, func(t int) geom.Point {
		a, b := p.Start.At(t), p.Offset.At(t)
		return geom.Point{X: a.X + b.X, Y: a.Y + b.Y}
	})
}

// Rotation is a point rotated around a pivot by a parameterized angle
// in radians.
type Rotation struct {
	Start, Pivot Pt
	Angle        param.Param // radians
	c            ptCache
}

func (p *Rotation) At(t int) geom.Point {
	return p.c.at(t, func(t int) geom.Point {
		return geom.Rotated(p.Start.At(t), p.Pivot.At(t), p.Angle.At(t))
	})
}

// Scaling is a point with parameterized coordinate scaling.
type Scaling struct {
	Start  Pt
	Cx, Cy param.Param
	c      ptCache
}

func (p *Scaling) At(t int) geom.Point {
	return p.c.at(t, func(t int) geom.Point {
		return geom.Scaled(p.Start.At(t), p.Cx.At(t), p.Cy.At(t))
	})
}

// PointsAt realizes a slice of dynamic points at time t.
func PointsAt(points []Pt, t int) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = p.At(t)
	}
	return out
}

// FromPoints wraps static points as dynamic points.
func FromPoints(points []geom.Point) []Pt {
	out := make([]Pt, len(points))
	for i, p := range points {
		out[i] = P(p)
	}
	return out
}
