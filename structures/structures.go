// Package structures generates organic structures such as filaments,
// tentacles, trees and blow-paint effects.
package structures

import (
	"math"
	"math/rand"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/param"
	"github.com/daniel-munro/algoraphics/shape"
)

// Backbone generates a meandering chain of points for a filament or
// tentacle. direction gives the direction (in degrees) of each
// successive segment; a random walk like param.Delta produces
// meandering, and nesting walks produces meandering from higher-order
// random walks. The walk is realized once per joint at construction,
// so each backbone takes its own course.
func Backbone(start shape.Pt, direction, segLength param.Param, nSegments int) []*shape.Move {
	dir := param.Clone(direction)
	length := param.Clone(segLength)
	joints := make([]*shape.Move, nSegments+1)
	d0 := dir.At(0)
	joints[0] = shape.NewMove(start, param.Num(d0), param.Num(0))
	var prev shape.Pt = start
	for i := 1; i <= nSegments; i++ {
		// The walk is indexed by joint, not by render time.
		d := dir.At(i - 1)
		m := shape.NewMove(prev, param.Num(d), param.Num(length.At(i-1)))
		joints[i] = m
		prev = m
	}
	return joints
}

func jointDir(m *shape.Move) float64 { return m.Direction.At(0) }

// Filament generates a meandering segmented filament along a
// backbone. width gives the filament width at segment joining edges,
// cloned per edge so that it can vary along the filament.
func Filament(backbone []*shape.Move, width param.Param) []*shape.Polygon {
	n := len(backbone) - 1
	widths := make([]param.Param, n+1)
	for i := range widths {
		widths[i] = param.Clone(width)
	}
	pairs := make([][2]shape.Pt, n+1)
	// The filament starts and ends with right angles.
	pairs[0] = edgePair(backbone[0], jointDir(backbone[1])+90, widths[0])
	for i := 1; i < n; i++ {
		angle := (180 + jointDir(backbone[i]) - jointDir(backbone[i+1])) / 2
		pairs[i] = edgePair(backbone[i], jointDir(backbone[i+1])+angle, widths[i])
	}
	pairs[n] = edgePair(backbone[n], jointDir(backbone[n])+90, widths[n])

	segments := make([]*shape.Polygon, n)
	for i := range segments {
		segments[i] = &shape.Polygon{Points: []shape.Pt{
			pairs[i][0], pairs[i][1], pairs[i+1][1], pairs[i+1][0],
		}}
	}
	return segments
}

// edgePair returns the two points half a width to either side of a
// joint along the given direction in degrees.
func edgePair(joint shape.Pt, direction float64, width param.Param) [2]shape.Pt {
	half := param.Scale(width, 0.5)
	return [2]shape.Pt{
		shape.NewMove(joint, param.Num(direction), half),
		shape.NewMove(joint, param.Num(direction+180), half),
	}
}

// Tentacle generates a tapering closed spline along a backbone. width
// is the width of the tentacle base.
func Tentacle(backbone []*shape.Move, width param.Param) *shape.Spline {
	n := len(backbone) - 1
	side1 := []shape.Pt{}
	side2 := []shape.Pt{}
	p := edgePair(backbone[0], jointDir(backbone[1])+90, width)
	side1 = append(side1, p[0])
	side2 = append(side2, p[1])
	for i := 1; i < n; i++ {
		w := param.Scale(param.Clone(width), 1-float64(i)/float64(n))
		angle := (180 + jointDir(backbone[i]) - jointDir(backbone[i+1])) / 2
		p := edgePair(backbone[i], jointDir(backbone[i+1])+angle, w)
		side1 = append(side1, p[0])
		side2 = append(side2, p[1])
	}
	points := append([]shape.Pt{}, side1...)
	points = append(points, backbone[n])
	for i := len(side2) - 1; i >= 0; i-- {
		points = append(points, side2[i])
	}
	return &shape.Spline{Points: points, Circular: true}
}

// Tree generates a tree of lines with randomly terminating branches.
// direction is the starting direction in degrees, theta the angle
// between sibling branches, and p the probability that a branch splits
// instead of terminating. deltaP is added to p at each branching;
// keep it negative so that the tree terminates.
func Tree(start shape.Pt, direction, branchLength, theta param.Param, p, deltaP float64) []shape.Shape {
	branchLength = param.Clone(branchLength)
	theta = param.Clone(theta)
	end := shape.NewMove(start, direction, branchLength)
	x := []shape.Shape{shape.NewLine(start, end)}
	if rand.Float64() < p {
		p += deltaP
		half := param.Scale(theta, 0.5)
		x = append(x, Tree(end, param.Sum(direction, half), branchLength, theta, p, deltaP)...)
		x = append(x, Tree(end, param.Diff(direction, half), branchLength, theta, p, deltaP)...)
	}
	return x
}

// blowPaintEdge draws paint fingers along an edge, as if paint were
// blown along the page perpendicular to the edge. It draws toward the
// right when facing start to end.
func blowPaintEdge(start, end geom.Point, spacing, length, lenDev, width float64) []geom.Point {
	locs := geom.Interpolate([]geom.Point{start, end}, spacing)
	for i := 1; i < len(locs)-1; i++ {
		r := (rand.Float64() - 0.5) * spacing / 2
		locs[i] = geom.MoveToward(locs[i], start, r)
	}
	pts := []geom.Point{start}
	for _, loc := range locs[1 : len(locs)-1] {
		le := math.Max(5, rand.NormFloat64()*length*lenDev+length)

		p1 := geom.MoveToward(loc, start, width/2)
		p2 := geom.RotateAndMove(p1, loc, -math.Pi/2, le)
		out := geom.Interpolate([]geom.Point{p1, p2}, math.Min(20, le/3))
		// Spread the base and the bulb at the tip.
		out[0] = geom.MoveToward(out[0], start, width/2)
		out[len(out)-1] = geom.RotateAndMove(out[len(out)-1], out[0], math.Pi/2, width/6)
		geom.Jitter(out[1:len(out)-1], width/3)

		p3 := geom.MoveToward(loc, end, width/2)
		p4 := geom.RotateAndMove(p3, loc, math.Pi/2, le)
		in := geom.Interpolate([]geom.Point{p4, p3}, math.Min(20, le/3))
		in[len(in)-1] = geom.MoveToward(in[len(in)-1], end, width/2)
		in[0] = geom.RotateAndMove(in[0], in[len(in)-1], -math.Pi/2, width/6)
		geom.Jitter(in[1:len(in)-1], width/3)

		pts = append(pts, out...)
		pts = append(pts, in...)
		// The end point is left off since it is redundant with the
		// start of the next edge in the shape.
	}
	return pts
}

// BlowPaintArea draws a blow-paint effect around a polygonal area,
// with fingers of paint projecting outward from each edge.
func BlowPaintArea(points []geom.Point, spacing, length, lenDev, width float64) *shape.Spline {
	if geom.IsClockwise(points) {
		rev := make([]geom.Point, len(points))
		for i, p := range points {
			rev[len(points)-1-i] = p
		}
		points = rev
	}
	closed := append(append([]geom.Point{}, points...), points[0])
	var pts []geom.Point
	for i := 0; i < len(closed)-1; i++ {
		pts = append(pts, blowPaintEdge(closed[i], closed[i+1], spacing, length, lenDev, width)...)
	}
	return &shape.Spline{Points: shape.FromPoints(pts), Circular: true, Smoothing: 0.4}
}

// BlowPaintLine draws a blow-paint effect connecting a sequence of
// points, with fingers projecting to both sides of the line.
func BlowPaintLine(points []geom.Point, lineWidth, spacing, length, lenDev, width float64) *shape.Spline {
	return BlowPaintArea(geom.LineToPolygon(points, lineWidth), spacing, length, lenDev, width)
}

// BlowPaintSpot draws a paint splatter with fingers projecting from a
// point.
func BlowPaintSpot(point geom.Point, length, lenDev, width float64) *shape.Spline {
	const edge = 10.0
	offset := rand.Float64() * 60
	pts := make([]geom.Point, 6)
	for i := range pts {
		pts[i] = geom.Endpoint(point, geom.Rad(float64(i)*60+offset), edge)
	}
	return BlowPaintArea(pts, edge-1, length, lenDev, width)
}
