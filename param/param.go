// Package param defines parameter objects that incorporate randomness.
// A Param produces one value per timepoint, so that a drawing rendered
// at timepoint t sees a consistent sample, and re-rendering at t+1
// yields fresh variation (used for animated graphics).
package param

import (
	"math"
	"math/rand"
)

// Param is a scalar value that may change from one timepoint to the
// next. At must return the same value when called repeatedly with the
// same t.
type Param interface {
	At(t int) float64
}

// cache memoizes one value per timepoint.
type cache struct {
	t   int
	val float64
	ok  bool
}

func (c *cache) at(t int, draw func() float64) float64 {
	if !c.ok || c.t != t {
		c.val = draw()
		c.t = t
		c.ok = true
	}
	return c.val
}

// Constant is a fixed value.
type Constant float64

func (c Constant) At(int) float64 { return float64(c) }

func (c Constant) mean() float64 { return float64(c) }

func (c Constant) clone() Param { return c }

// Num wraps a literal number as a Param.
func Num(x float64) Param { return Constant(x) }

// Uniform samples uniformly between Min and Max.
type Uniform struct {
	Min, Max float64
	c        cache
}

func (u *Uniform) At(t int) float64 {
	return u.c.at(t, func() float64 {
		return u.Min + rand.Float64()*(u.Max-u.Min)
	})
}

func (u *Uniform) mean() float64 { return (u.Min + u.Max) / 2 }

func (u *Uniform) clone() Param { return &Uniform{Min: u.Min, Max: u.Max} }

// Normal samples from a normal distribution.
type Normal struct {
	Mean, Stdev float64
	c           cache
}

func (n *Normal) At(t int) float64 {
	return n.c.at(t, func() float64 {
		return n.Mean + rand.NormFloat64()*n.Stdev
	})
}

func (n *Normal) mean() float64 { return n.Mean }

func (n *Normal) clone() Param { return &Normal{Mean: n.Mean, Stdev: n.Stdev} }

// Exponential samples from an exponential distribution shifted so that
// its mean is Mean and its minimum is Mean - Stdev.
type Exponential struct {
	Mean, Stdev float64
	c           cache
}

func (e *Exponential) At(t int) float64 {
	return e.c.at(t, func() float64 {
		return (e.Mean - e.Stdev) + rand.ExpFloat64()*e.Stdev
	})
}

func (e *Exponential) mean() float64 { return e.Mean }

func (e *Exponential) clone() Param { return &Exponential{Mean: e.Mean, Stdev: e.Stdev} }

// Choice samples uniformly from a fixed set of options.
type Choice struct {
	Options []float64
	c       cache
}

func (ch *Choice) At(t int) float64 {
	return ch.c.at(t, func() float64 {
		return ch.Options[rand.Intn(len(ch.Options))]
	})
}

func (ch *Choice) mean() float64 {
	var sum float64
	for _, x := range ch.Options {
		sum += x
	}
	return sum / float64(len(ch.Options))
}

func (ch *Choice) clone() Param {
	return &Choice{Options: ch.Options}
}

// Func adapts an arbitrary generator function. The function is called
// once per timepoint.
type Func struct {
	F func() float64
	c cache
}

func (f *Func) At(t int) float64 { return f.c.at(t, f.F) }

func (f *Func) clone() Param { return &Func{F: f.F} }

// Delta is an additive random walk: each timepoint's value is the
// previous value plus a draw from Step, clamped to [Min, Max].
// Nesting a Delta inside Step produces higher-order walks.
type Delta struct {
	start   Param
	Step    Param
	Min     float64
	Max     float64
	last    float64
	started bool
	c       cache
}

// NewDelta returns an unbounded additive walk starting from start.
func NewDelta(start, step Param) *Delta {
	return &Delta{start: start, Step: step, Min: math.Inf(-1), Max: math.Inf(1)}
}

func (d *Delta) At(t int) float64 {
	return d.c.at(t, func() float64 {
		if !d.started {
			d.last = d.start.At(t)
			d.started = true
		}
		v := d.last + d.Step.At(t)
		v = math.Max(d.Min, math.Min(d.Max, v))
		d.last = v
		return v
	})
}

func (d *Delta) clone() Param {
	return &Delta{start: Clone(d.start), Step: Clone(d.Step), Min: d.Min, Max: d.Max}
}

// Ratio is a multiplicative random walk: each timepoint's value is the
// previous value times a draw from Factor, clamped to [Min, Max].
type Ratio struct {
	start   Param
	Factor  Param
	Min     float64
	Max     float64
	last    float64
	started bool
	c       cache
}

// NewRatio returns an unbounded multiplicative walk starting from start.
func NewRatio(start, factor Param) *Ratio {
	return &Ratio{start: start, Factor: factor, Min: math.Inf(-1), Max: math.Inf(1)}
}

func (r *Ratio) At(t int) float64 {
	return r.c.at(t, func() float64 {
		if !r.started {
			r.last = r.start.At(t)
			r.started = true
		}
		v := r.last * r.Factor.At(t)
		v = math.Max(r.Min, math.Min(r.Max, v))
		r.last = v
		return v
	})
}

func (r *Ratio) clone() Param {
	return &Ratio{start: Clone(r.start), Factor: Clone(r.Factor), Min: r.Min, Max: r.Max}
}

type meaner interface{ mean() float64 }

// Mean reports the expected value of p if it is known, falling back to
// a draw at timepoint 0.
func Mean(p Param) float64 {
	if m, ok := p.(meaner); ok {
		return m.mean()
	}
	return p.At(0)
}

type cloner interface{ clone() Param }

// Clone returns an independent copy of p: the copy draws its own
// values and, for walks, carries its own state. Params without
// internal state are returned as is.
func Clone(p Param) Param {
	if c, ok := p.(cloner); ok {
		return c.clone()
	}
	return p
}
