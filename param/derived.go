package param

// Arithmetic combinators over params. Derived params share the
// underlying params, so two derivations of the same Uniform seen at
// the same timepoint observe the same draw.

type sum struct{ a, b Param }

func (s sum) At(t int) float64 { return s.a.At(t) + s.b.At(t) }

func (s sum) mean() float64 { return Mean(s.a) + Mean(s.b) }

func (s sum) clone() Param { return sum{Clone(s.a), Clone(s.b)} }

type diff struct{ a, b Param }

func (d diff) At(t int) float64 { return d.a.At(t) - d.b.At(t) }

func (d diff) mean() float64 { return Mean(d.a) - Mean(d.b) }

func (d diff) clone() Param { return diff{Clone(d.a), Clone(d.b)} }

type scale struct {
	p Param
	x float64
}

func (s scale) At(t int) float64 { return s.p.At(t) * s.x }

func (s scale) mean() float64 { return Mean(s.p) * s.x }

func (s scale) clone() Param { return scale{Clone(s.p), s.x} }

// Add returns p + x.
func Add(p Param, x float64) Param { return sum{p, Constant(x)} }

// Scale returns p * x.
func Scale(p Param, x float64) Param { return scale{p, x} }

// Sum returns a + b.
func Sum(a, b Param) Param { return sum{a, b} }

// Diff returns a - b.
func Diff(a, b Param) Param { return diff{a, b} }
