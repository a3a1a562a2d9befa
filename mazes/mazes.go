// Package mazes assembles maze-like patterns from random spanning
// trees over a grid. The maze channel is traced as one continuous
// outline whose pieces come from a pluggable style.
package mazes

import (
	"math"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/grid"
	"github.com/daniel-munro/algoraphics/shape"
)

// Style describes how each component of a maze is drawn. Each method
// generates pieces for one cell in unit coordinates, which are
// stitched together as the maze is assembled. For every method the
// edge enters from below and draws the component counter-clockwise;
// pieces are rotated as needed for other entry directions.
type Style interface {
	// Tip generates a dead-end cell.
	Tip() []geom.Point
	// Turn generates a right-turn cell: the inner and then outer edge
	// of the curve. Left turns reuse it with rotation.
	Turn() (inner, outer []geom.Point)
	// Straight generates a non-turning cell: the right and then left
	// edge.
	Straight() (right, left []geom.Point)
	// T generates a T-shaped cell: the right inner edge, top edge,
	// and left inner edge.
	T() (right, top, left []geom.Point)
	// Cross generates a cell connecting in all directions: the
	// lower-right, upper-right, upper-left and lower-left inner edges.
	Cross() [4][]geom.Point
	// Output makes the final shape from the assembled outline points.
	Output(points []geom.Point) shape.Shape
}

// rotateCell rotates pieces at right angles within their grid cell.
func rotateCell(times int, pieces ...[]geom.Point) {
	times = ((times % 4) + 4) % 4
	if times == 0 {
		return
	}
	for _, p := range pieces {
		geom.RotatePoints(p, geom.Pt(0.5, 0.5), geom.Rad(float64(times)*90))
	}
}

// rotatedPiece returns a rotated copy of a maze piece.
func rotatedPiece(piece []geom.Point, times int) []geom.Point {
	out := append([]geom.Point{}, piece...)
	rotateCell(times, out)
	return out
}

func translateCell(coords grid.Cell, pieces ...[]geom.Point) {
	for _, p := range pieces {
		geom.TranslatePoints(p, float64(coords.Col), float64(coords.Row))
	}
}

func newCoords(c grid.Cell, direction int) grid.Cell {
	switch direction % 4 {
	case grid.Down:
		c.Row--
	case grid.Right:
		c.Col++
	case grid.Up:
		c.Row++
	case grid.Left:
		c.Col--
	}
	return c
}

type builder struct {
	neighbors [][][4]bool
	style     Style
}

// neighbor recurses into the cell in the given direction.
func (b *builder) neighbor(coords grid.Cell, direc int) []geom.Point {
	return b.cell(newCoords(coords, direc%4), (direc+2)%4)
}

// cell returns the outline points for the subtree rooted at coords,
// excluding everything in the direction the cell was entered from.
func (b *builder) cell(coords grid.Cell, dirFrom int) []geom.Point {
	n := b.neighbors[coords.Row][coords.Col]
	r := n[(dirFrom+1)%4]
	s := n[(dirFrom+2)%4]
	l := n[(dirFrom+3)%4]

	var path []geom.Point
	cat := func(pieces ...[]geom.Point) {
		for _, p := range pieces {
			path = append(path, p...)
		}
	}
	switch {
	case !r && !s && !l: // dead end
		tip := b.style.Tip()
		rotateCell(dirFrom, tip)
		translateCell(coords, tip)
		path = tip
	case r && !s && !l: // right turn
		inner, outer := b.style.Turn()
		rotateCell(dirFrom, inner, outer)
		translateCell(coords, inner, outer)
		cat(inner, b.neighbor(coords, dirFrom+1), outer)
	case !r && !s && l: // left turn
		inner, outer := b.style.Turn()
		rotateCell(dirFrom+3, inner, outer)
		translateCell(coords, inner, outer)
		cat(outer, b.neighbor(coords, dirFrom+3), inner)
	case !r && s && !l: // straight
		right, left := b.style.Straight()
		rotateCell(dirFrom, right, left)
		translateCell(coords, right, left)
		cat(right, b.neighbor(coords, dirFrom+2), left)
	case r && !s && l: // T opening right and left
		right, top, left := b.style.T()
		rotateCell(dirFrom, right, top, left)
		translateCell(coords, right, top, left)
		cat(right, b.neighbor(coords, dirFrom+1), top, b.neighbor(coords, dirFrom+3), left)
	case r && s && !l: // T opening right and ahead
		right, top, left := b.style.T()
		rotateCell(dirFrom+1, right, top, left)
		translateCell(coords, right, top, left)
		cat(left, b.neighbor(coords, dirFrom+1), right, b.neighbor(coords, dirFrom+2), top)
	case !r && s && l: // T opening ahead and left
		right, top, left := b.style.T()
		rotateCell(dirFrom+3, right, top, left)
		translateCell(coords, right, top, left)
		cat(top, b.neighbor(coords, dirFrom+2), left, b.neighbor(coords, dirFrom+3), right)
	default: // cross
		p := b.style.Cross()
		rotateCell(dirFrom, p[0], p[1], p[2], p[3])
		translateCell(coords, p[0], p[1], p[2], p[3])
		cat(p[0], b.neighbor(coords, dirFrom+1), p[1], b.neighbor(coords, dirFrom+2),
			p[2], b.neighbor(coords, dirFrom+3), p[3])
	}
	return path
}

// Maze generates a maze-like pattern spanning a rows x cols grid with
// the given cell width, its bottom-left corner at start.
func Maze(rows, cols int, spacing float64, start geom.Point, style Style) shape.Shape {
	b := &builder{neighbors: grid.TreeNeighbors(rows, cols), style: style}
	origin := grid.Cell{Row: 0, Col: 0}
	r := b.neighbors[0][0][grid.Right]
	u := b.neighbors[0][0][grid.Up]

	var path []geom.Point
	switch {
	case r && !u:
		tip := b.style.Tip()
		rotateCell(1, tip)
		path = append(tip, b.neighbor(origin, grid.Right)...)
	case u && !r:
		tip := b.style.Tip()
		rotateCell(2, tip)
		path = append(tip, b.neighbor(origin, grid.Up)...)
	default:
		inner, outer := b.style.Turn()
		rotateCell(1, inner, outer)
		path = append(outer, b.neighbor(origin, grid.Right)...)
		path = append(path, inner...)
		path = append(path, b.neighbor(origin, grid.Up)...)
	}

	geom.ScalePoints(path, spacing, spacing)
	geom.TranslatePoints(path, start.X, start.Y)
	return style.Output(path)
}

// FillMaze fills a region with a maze pattern clipped to the outline.
// rotation gives the orientation of the maze grid in degrees.
func FillMaze(outline shape.Shape, spacing float64, style Style, rotation float64) *shape.Group {
	var bounds geom.Bounds
	if rotation != 0 {
		bounds = shape.RotatedBoundingBox(outline, rotation)
	} else {
		bounds = shape.BoundingBox(outline)
	}
	bounds = bounds.AddMargin(20)

	rows := int(math.Ceil(bounds.H() / spacing))
	cols := int(math.Ceil(bounds.W() / spacing))
	fill := Maze(rows, cols, spacing, geom.Pt(bounds.XMin, bounds.YMin), style)
	if rotation != 0 {
		shape.Rotate(fill, rotation, geom.Pt(0, 0))
	}
	return shape.Clipped(shape.List{fill}, outline)
}
