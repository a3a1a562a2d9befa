package shape

import (
	"github.com/daniel-munro/algoraphics/color"
	"github.com/daniel-munro/algoraphics/param"
)

// Pattern is a fill or stroke specification that can be realized as an
// SVG paint value per timepoint. color.Color implements it; None and
// Match are special values.
type Pattern interface {
	Hex(t int) string
}

type plain string

func (p plain) Hex(int) string { return string(p) }

// Plain returns a literal paint value such as "none" or an SVG color
// name.
func Plain(s string) Pattern { return plain(s) }

// None disables fill or stroke.
var None = Plain("none")

// Match sets the stroke to match the fill. Used to slightly expand
// filled shapes to prevent gap artifacts between adjacent shapes.
var Match = Plain("match")

// Style holds the visual attributes of a shape. Nil fields are
// omitted, leaving SVG defaults, except that shapes with no fill
// default to an unfilled black outline at serialization.
type Style struct {
	Fill          Pattern
	Stroke        Pattern
	StrokeWidth   param.Param
	Opacity       param.Param
	FillOpacity   param.Param
	StrokeOpacity param.Param
	Dash          string
}

func styleOf(s Shape) *Style {
	switch x := s.(type) {
	case *Polygon:
		return &x.Style
	case *Spline:
		return &x.Style
	case *Line:
		return &x.Style
	case *Circle:
		return &x.Style
	}
	return nil
}

// eachStyle applies f to the style of every styled shape in a nested
// collection, descending into groups.
func eachStyle(s Shape, f func(*Style)) {
	switch x := s.(type) {
	case List:
		for _, m := range x {
			eachStyle(m, f)
		}
	case *Group:
		eachStyle(x.Members, f)
	default:
		if st := styleOf(s); st != nil {
			f(st)
		}
	}
}

// SetFill sets the fill of one or more shapes. The same pattern is
// shared, so a parameterized color gives all shapes the same
// realization within a frame.
func SetFill(s Shape, p Pattern) {
	eachStyle(s, func(st *Style) { st.Fill = p })
}

// SetFillEach sets the fill of one or more shapes, giving each shape
// its own copy of the color so that there is variation across shapes.
func SetFillEach(s Shape, c color.Color) {
	eachStyle(s, func(st *Style) { st.Fill = c.Clone() })
}

// SetStroke sets the stroke of one or more shapes.
func SetStroke(s Shape, p Pattern) {
	eachStyle(s, func(st *Style) { st.Stroke = p })
}

// SetStrokeEach sets the stroke of one or more shapes with a separate
// copy of the color for each shape.
func SetStrokeEach(s Shape, c color.Color) {
	eachStyle(s, func(st *Style) { st.Stroke = c.Clone() })
}

// SetStrokeWidth sets the stroke width of one or more shapes.
func SetStrokeWidth(s Shape, w param.Param) {
	eachStyle(s, func(st *Style) { st.StrokeWidth = w })
}

// SetOpacity sets the opacity of one or more shapes.
func SetOpacity(s Shape, o param.Param) {
	eachStyle(s, func(st *Style) { st.Opacity = o })
}
