// Package ripples fills a canvas with space-filling ripple curves.
// Ripple behavior is driven by a first-order Markov chain whose events
// are points along splines. The states are "S" (start off in a random
// direction), "R" (turn right sharply until hitting a barrier, then
// follow along it), "L" (the same turning left), and "X" (move ahead
// plus or minus up to 60 degrees). Higher state-changing transition
// probabilities give more erratic ripples.
package ripples

import (
	"math/rand"
	"sort"

	"github.com/daniel-munro/algoraphics/geom"
	"github.com/daniel-munro/algoraphics/shape"
)

// TransProbs holds Markov chain transition probabilities from one
// state (first key) to another (second key).
type TransProbs map[string]map[string]float64

func markovNext(state string, probs TransProbs) string {
	next := probs[state]
	states := make([]string, 0, len(next))
	for s := range next {
		states = append(states, s)
	}
	sort.Strings(states)
	r := rand.Float64()
	for _, s := range states {
		if r < next[s] {
			return s
		}
		r -= next[s]
	}
	return states[len(states)-1]
}

// nextPoint continues a ripple from its last two points, or returns
// false when the curve is boxed in.
func nextPoint(index *geom.Index, prev, last geom.Point, spacing float64, mode string) (geom.Point, bool) {
	var angle, angleInc, stopAngle float64
	var at func(ang float64) geom.Point
	switch mode {
	case "R":
		angle, angleInc, stopAngle = 60, 5, 300
		at = func(ang float64) geom.Point { return geom.Rotated(prev, last, geom.Rad(ang)) }
	case "L":
		angle, angleInc, stopAngle = 300, -5, 60
		at = func(ang float64) geom.Point { return geom.Rotated(prev, last, geom.Rad(ang)) }
	case "X":
		angle = float64(120 + rand.Intn(121))
		dir := float64(1 - 2*rand.Intn(2))
		angleInc, stopAngle = dir, angle+dir*359
		at = func(ang float64) geom.Point { return geom.Rotated(prev, last, geom.Rad(ang)) }
	default: // S
		angle = float64(rand.Intn(360))
		dir := float64(1 - 2*rand.Intn(2))
		angleInc, stopAngle = dir, angle+dir*359
		at = func(ang float64) geom.Point { return geom.Endpoint(last, geom.Rad(ang), spacing) }
	}

	for {
		newpt := at(angle)
		// 0.999 allows the previous point itself.
		if near, ok := index.Nearest(newpt); !ok || geom.Distance(newpt, near) >= spacing*0.999 {
			return newpt, true
		}
		if angle == stopAngle {
			return geom.Point{}, false
		}
		angle += angleInc
	}
}

// scanForSpace pops candidate starting points until one has room for
// a new ripple. A new ripple needs spacing on either side, so there
// must be fewer than 6 existing points within 2*spacing of the start.
func scanForSpace(openSpace *[]geom.Point, index *geom.Index, spacing float64) (geom.Point, bool) {
	for len(*openSpace) > 0 {
		n := len(*openSpace) - 1
		newpt := (*openSpace)[n]
		*openSpace = (*openSpace)[:n]
		neighbors := index.NearestN(newpt, 6)
		if len(neighbors) == 0 {
			return newpt, true
		}
		// 5 or fewer in the vicinity still leaves somewhere to go.
		if geom.Distance(newpt, neighbors[len(neighbors)-1]) >= spacing*2 &&
			geom.Distance(newpt, neighbors[0]) >= spacing {
			return newpt, true
		}
	}
	return geom.Point{}, false
}

// Canvas fills a w x h canvas with ripple splines spaced spacing
// apart. transProbs gives the Markov transition probabilities (nil
// for the default of always turning right), and existing lists points
// the ripples will avoid.
func Canvas(w, h, spacing float64, transProbs TransProbs, existing []geom.Point) []shape.Shape {
	if transProbs == nil {
		transProbs = TransProbs{"S": {"R": 1}, "R": {"R": 1}}
	}
	bounds := geom.Bounds{XMin: 0, YMin: 0, XMax: w, YMax: h}.AddMargin(3)

	index := geom.NewIndex(spacing)
	index.AddAll(existing)

	// The boundary is itself a curve so that ripples keep their
	// distance from the canvas edge.
	var pts []geom.Point
	for x := bounds.XMin; x < bounds.XMax; x += spacing {
		pts = append(pts, geom.Pt(x, bounds.YMin))
	}
	for y := bounds.YMin; y < bounds.YMax; y += spacing {
		pts = append(pts, geom.Pt(bounds.XMax, y))
	}
	for x := bounds.XMax; x > bounds.XMin; x -= spacing {
		pts = append(pts, geom.Pt(x, bounds.YMax))
	}
	for y := bounds.YMax; y > bounds.YMin; y -= spacing {
		pts = append(pts, geom.Pt(bounds.XMin, y))
	}
	curves := [][]geom.Point{pts}
	index.AddAll(pts)

	const precision = 5
	var openSpace []geom.Point
	for x := bounds.XMin; x < bounds.XMax; x += precision {
		for y := bounds.YMin; y < bounds.YMax; y += precision {
			openSpace = append(openSpace, geom.Pt(x, y))
		}
	}
	rand.Shuffle(len(openSpace), func(i, j int) {
		openSpace[i], openSpace[j] = openSpace[j], openSpace[i]
	})

	start, ok := scanForSpace(&openSpace, index, spacing)
	if ok {
		pts = []geom.Point{start}
		index.Add(start)
		mode := "S"
		for {
			prev := pts[len(pts)-1]
			if len(pts) > 1 {
				prev = pts[len(pts)-2]
			}
			newpt, found := nextPoint(index, prev, pts[len(pts)-1], spacing, mode)
			if found {
				pts = append(pts, newpt)
				index.Add(newpt)
				mode = markovNext(mode, transProbs)
				continue
			}
			curves = append(curves, pts)
			newStart, more := scanForSpace(&openSpace, index, spacing)
			if !more {
				break
			}
			pts = []geom.Point{newStart}
			index.Add(newStart)
			mode = "S"
		}
	}

	out := make([]shape.Shape, len(curves))
	for i, c := range curves {
		out[i] = &shape.Spline{
			Points: shape.FromPoints(c),
			Style:  shape.Style{Fill: shape.None, Stroke: shape.Plain("black")},
		}
	}
	return out
}
