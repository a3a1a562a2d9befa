package mazes

import (
	"math"
	"math/rand"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

// Pipes draws the maze as curved pipes rendered with a spline.
// RelThickness is the channel width relative to the cell width, from
// 0 to 1.
type Pipes struct {
	RelThickness float64
}

func (p Pipes) w() float64 { return p.RelThickness / 2 }

func (p Pipes) Output(points []geom.Point) shape.Shape {
	return &shape.Spline{Points: shape.FromPoints(points)}
}

// rightTurn traces the inner edge of a right turn.
func (p Pipes) rightTurn() []geom.Point {
	w := p.w()
	rIn := (0.5 - w) * p.RelThickness
	x := trim(geom.PointsOnLine(geom.Pt(0.5+w, 0), geom.Pt(0.5+w, 0.5-w-rIn), 0.1))
	c := geom.Pt(0.5+w+rIn, 0.5-w-rIn)
	x = append(x, trim(geom.PointsOnArc(c, rIn, 180, 90, 0.03))...)
	x = append(x, trim(geom.PointsOnLine(geom.Pt(0.5+w+rIn, 0.5-w), geom.Pt(1, 0.5-w), 0.1))...)
	return x
}

func (p Pipes) Tip() []geom.Point {
	w := p.w()
	x := trim(geom.PointsOnLine(geom.Pt(0.5+w, 0), geom.Pt(0.5+w, 0.5), w/2))
	x = append(x, trim(geom.PointsOnArc(geom.Pt(0.5, 0.5), w, 0, 180, w/2))...)
	x = append(x, trim(geom.PointsOnLine(geom.Pt(0.5-w, 0.5), geom.Pt(0.5-w, 0), w/2))...)
	return x
}

func (p Pipes) Turn() (inner, outer []geom.Point) {
	w := p.w()
	inner = p.rightTurn()
	outer = trim(geom.PointsOnLine(geom.Pt(1, 0.5+w), geom.Pt(0.5, 0.5+w), 0.1))
	outer = append(outer, trim(geom.PointsOnArc(geom.Pt(0.5, 0.5), w, 90, 180, w/2))...)
	outer = append(outer, trim(geom.PointsOnLine(geom.Pt(0.5-w, 0.5), geom.Pt(0.5-w, 0), 0.1))...)
	return inner, outer
}

func (p Pipes) Straight() (right, left []geom.Point) {
	w := p.w()
	right = []geom.Point{geom.Pt(0.5+w, 0.1), geom.Pt(0.5+w, 0.9)}
	left = []geom.Point{geom.Pt(0.5-w, 0.9), geom.Pt(0.5-w, 0.1)}
	return right, left
}

func (p Pipes) T() (right, top, left []geom.Point) {
	w := p.w()
	right = p.rightTurn()
	top = []geom.Point{geom.Pt(0.9, 0.5 + w), geom.Pt(0.1, 0.5 + w)}
	left = rotatedPiece(p.rightTurn(), 3)
	return right, top, left
}

func (p Pipes) Cross() [4][]geom.Point {
	x := p.rightTurn()
	return [4][]geom.Point{
		x, rotatedPiece(x, 1), rotatedPiece(x, 2), rotatedPiece(x, 3),
	}
}

// Round draws the maze as very curvy pipes rendered with a spline.
type Round struct {
	RelThickness float64
}

func (r Round) w() float64 { return r.RelThickness / 2 }

func (r Round) Output(points []geom.Point) shape.Shape {
	return &shape.Spline{Points: shape.FromPoints(points)}
}

func (r Round) rightTurn() []geom.Point {
	w := r.w()
	return trim(geom.PointsOnArc(geom.Pt(1, 0), 0.5-w, 180, 90, (0.5-w)/2))
}

func (r Round) Tip() []geom.Point {
	w := r.w()
	x := trim(geom.PointsOnLine(geom.Pt(0.5+w, 0), geom.Pt(0.5+w, 0.5), 0.2))
	x = append(x, trim(geom.PointsOnArc(geom.Pt(0.5, 0.5), w, 0, 180, w/4))...)
	x = append(x, trim(geom.PointsOnLine(geom.Pt(0.5-w, 0.5), geom.Pt(0.5-w, 0), 0.2))...)
	return x
}

func (r Round) Turn() (inner, outer []geom.Point) {
	w := r.w()
	inner = r.rightTurn()
	outer = trim(geom.PointsOnArc(geom.Pt(1, 0), 0.5+w, 90, 180, 0.2))
	return inner, outer
}

func (r Round) Straight() (right, left []geom.Point) {
	w := r.w()
	right = []geom.Point{geom.Pt(0.5+w, 0.1), geom.Pt(0.5+w, 0.9)}
	left = []geom.Point{geom.Pt(0.5-w, 0.9), geom.Pt(0.5-w, 0.1)}
	return right, left
}

func (r Round) T() (right, top, left []geom.Point) {
	w := r.w()
	right = r.rightTurn()
	theta := geom.Deg(math.Acos(0.5 / (0.5 + w)))
	top = geom.PointsOnArc(geom.Pt(1, 0), 0.5+w, 90, 180-theta, 0.2)
	top = append(top, trim(geom.PointsOnArc(geom.Pt(0, 0), 0.5+w, theta, 90, 0.2))...)
	left = rotatedPiece(right, 3)
	return right, top, left
}

func (r Round) Cross() [4][]geom.Point {
	w := r.w()
	p1 := geom.PointsOnLine(geom.Pt(0.5+w, 0), geom.Pt(0.5+w, 0.5-w), 0.2)
	p1 = append(p1, geom.PointsOnLine(geom.Pt(0.5+w, 0.5-w), geom.Pt(1, 0.5-w), 0.2)...)
	return [4][]geom.Point{
		p1, rotatedPiece(p1, 1), rotatedPiece(p1, 2), rotatedPiece(p1, 3),
	}
}

// StraightStyle draws a simple right-angle maze rendered as a polygon.
type StraightStyle struct {
	RelThickness float64
}

func (s StraightStyle) w() float64 { return s.RelThickness / 2 }

func (s StraightStyle) Output(points []geom.Point) shape.Shape {
	return &shape.Polygon{Points: shape.FromPoints(points)}
}

func (s StraightStyle) Tip() []geom.Point {
	w := s.w()
	return []geom.Point{geom.Pt(0.5+w, 0.5+w), geom.Pt(0.5-w, 0.5+w)}
}

func (s StraightStyle) Turn() (inner, outer []geom.Point) {
	w := s.w()
	return []geom.Point{geom.Pt(0.5+w, 0.5-w)}, []geom.Point{geom.Pt(0.5-w, 0.5+w)}
}

func (s StraightStyle) Straight() (right, left []geom.Point) {
	return nil, nil
}

func (s StraightStyle) T() (right, top, left []geom.Point) {
	w := s.w()
	return []geom.Point{geom.Pt(0.5+w, 0.5-w)}, nil, []geom.Point{geom.Pt(0.5-w, 0.5-w)}
}

func (s StraightStyle) Cross() [4][]geom.Point {
	w := s.w()
	return [4][]geom.Point{
		{geom.Pt(0.5+w, 0.5-w)},
		{geom.Pt(0.5+w, 0.5+w)},
		{geom.Pt(0.5-w, 0.5+w)},
		{geom.Pt(0.5-w, 0.5-w)},
	}
}

// Jagged draws a maze with randomly varying channel widths rendered
// as a polygon. MinW and MaxW are the minimum and maximum widths of a
// channel segment relative to the cell width.
type Jagged struct {
	MinW, MaxW float64
}

func (j Jagged) Output(points []geom.Point) shape.Shape {
	return &shape.Polygon{Points: shape.FromPoints(points)}
}

func (j Jagged) dev() float64 {
	return j.MinW/2 + rand.Float64()*(j.MaxW-j.MinW)/2
}

func (j Jagged) bigDev() float64 {
	return -j.MaxW/2 + rand.Float64()*j.MaxW
}

func (j Jagged) Tip() []geom.Point {
	return []geom.Point{
		geom.Pt(0.5+j.dev(), 0.5+j.dev()),
		geom.Pt(0.5-j.dev(), 0.5+j.dev()),
	}
}

func (j Jagged) Turn() (inner, outer []geom.Point) {
	return []geom.Point{geom.Pt(0.5 + j.dev(), 0.5 - j.dev())},
		[]geom.Point{geom.Pt(0.5 - j.dev(), 0.5 + j.dev())}
}

func (j Jagged) Straight() (right, left []geom.Point) {
	return []geom.Point{geom.Pt(0.5 + j.dev(), 0.5 + j.bigDev())},
		[]geom.Point{geom.Pt(0.5 - j.dev(), 0.5 + j.bigDev())}
}

func (j Jagged) T() (right, top, left []geom.Point) {
	return []geom.Point{geom.Pt(0.5 + j.dev(), 0.5 - j.dev())},
		[]geom.Point{geom.Pt(0.5 + j.bigDev(), 0.5 + j.dev())},
		[]geom.Point{geom.Pt(0.5 - j.dev(), 0.5 - j.dev())}
}

func (j Jagged) Cross() [4][]geom.Point {
	return [4][]geom.Point{
		{geom.Pt(0.5 + j.dev(), 0.5 - j.dev())},
		{geom.Pt(0.5 + j.dev(), 0.5 + j.dev())},
		{geom.Pt(0.5 - j.dev(), 0.5 + j.dev())},
		{geom.Pt(0.5 - j.dev(), 0.5 - j.dev())},
	}
}

// trim drops the last point of a piece so that it is not duplicated
// by the start of the next piece.
func trim(points []geom.Point) []geom.Point {
	return points[:len(points)-1]
}
