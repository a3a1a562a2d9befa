package shape

import "github.com/daniel-munro/algoraphics/geom"

// Cover is an occupancy grid that accumulates the footprint of shapes
// over a region. It backs coverage accounting when filling regions
// with randomly placed objects and when removing hidden shapes.
type Cover struct {
	b          geom.Bounds
	cw, ch     float64
	cols, rows int
	filled     []bool
	count      int
}

// NewCover returns an empty grid over b, with roughly cells cells
// along the longer side.
func NewCover(b geom.Bounds, cells int) *Cover {
	cols, rows := cells, cells
	if b.W() > b.H() {
		rows = int(float64(cells) * b.H() / b.W())
	} else {
		cols = int(float64(cells) * b.W() / b.H())
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Cover{
		b:      b,
		cw:     b.W() / float64(cols),
		ch:     b.H() / float64(rows),
		cols:   cols,
		rows:   rows,
		filled: make([]bool, cols*rows),
	}
}

// cells calls f with the index of each grid cell touched by the
// outline: cells whose center is inside the polygon, plus the cells
// containing its vertices so that thin shapes are not missed.
func (c *Cover) cells(outline []geom.Point, f func(int)) {
	seen := make(map[int]bool)
	visit := func(col, row int) {
		if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
			return
		}
		i := row*c.cols + col
		if !seen[i] {
			seen[i] = true
			f(i)
		}
	}
	for _, p := range outline {
		visit(int((p.X-c.b.XMin)/c.cw), int((p.Y-c.b.YMin)/c.ch))
	}
	ob := geom.BoundsOf(outline)
	colMin := int((ob.XMin - c.b.XMin) / c.cw)
	colMax := int((ob.XMax - c.b.XMin) / c.cw)
	rowMin := int((ob.YMin - c.b.YMin) / c.ch)
	rowMax := int((ob.YMax - c.b.YMin) / c.ch)
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			center := geom.Pt(
				c.b.XMin+(float64(col)+0.5)*c.cw,
				c.b.YMin+(float64(row)+0.5)*c.ch,
			)
			if geom.ContainsPoint(outline, center) {
				visit(col, row)
			}
		}
	}
}

// Add marks the cells touched by the outline as covered.
func (c *Cover) Add(outline []geom.Point) {
	c.cells(outline, func(i int) {
		if !c.filled[i] {
			c.filled[i] = true
			c.count++
		}
	})
}

// AddShape marks the footprint of a shape or collection as covered.
func (c *Cover) AddShape(s Shape) {
	for _, o := range outlines(s, 0) {
		c.Add(o)
	}
}

// Covers reports whether every cell touched by the outline is already
// covered.
func (c *Cover) Covers(outline []geom.Point) bool {
	covered := true
	any := false
	c.cells(outline, func(i int) {
		any = true
		if !c.filled[i] {
			covered = false
		}
	})
	return any && covered
}

// Fraction returns the covered fraction of the grid.
func (c *Cover) Fraction() float64 {
	return float64(c.count) / float64(len(c.filled))
}

// Count returns the number of covered cells.
func (c *Cover) Count() int { return c.count }

// AddShapeWithin marks the footprint of a shape or collection as
// covered and reports how many newly covered cells are also covered in
// ref. ref must have the same bounds and resolution; it typically
// holds the footprint of a region being filled, so the return value is
// the area of the region newly claimed by the shape.
func (c *Cover) AddShapeWithin(s Shape, ref *Cover) int {
	added := 0
	for _, o := range outlines(s, 0) {
		c.cells(o, func(i int) {
			if !c.filled[i] {
				c.filled[i] = true
				c.count++
				if ref.filled[i] {
					added++
				}
			}
		})
	}
	return added
}
