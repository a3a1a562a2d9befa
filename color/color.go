// Package color represents colors and distributions of colors in HSL
// space, with components that can vary over time or across shapes.
package color

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/daniel-munro/algoraphics/param"
)

// Color is a color or distribution of colors. Each HSL component is a
// parameter ranging from 0 to 1; hue wraps around, saturation and
// lightness are clamped.
type Color struct {
	Hue, Sat, Li param.Param
}

// HSL returns a color with fixed hue, saturation and lightness, each
// from 0 to 1.
func HSL(hue, sat, li float64) Color {
	return Color{Hue: param.Num(hue), Sat: param.Num(sat), Li: param.Num(li)}
}

// HSLP returns a color with parameterized components.
func HSLP(hue, sat, li param.Param) Color {
	return Color{Hue: hue, Sat: sat, Li: li}
}

// RGB returns the color with the given red, green and blue components,
// each from 0 to 255.
func RGB(r, g, b int) Color {
	hue, sat, li := rgbToHSL(float64(r)/255, float64(g)/255, float64(b)/255)
	return HSL(hue, sat, li)
}

// Named returns the SVG 1.1 color with the given name, like
// "darkolivegreen". ok is false for unknown names.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	hue, sat, li := rgbToHSL(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	return HSL(hue, sat, li), true
}

// At returns the HSL components at time t, with hue wrapped to [0, 1)
// and saturation and lightness clamped to [0, 1].
func (c Color) At(t int) (hue, sat, li float64) {
	hue = math.Mod(c.Hue.At(t), 1)
	if hue < 0 {
		hue++
	}
	sat = clamp01(c.Sat.At(t))
	li = clamp01(c.Li.At(t))
	return
}

// RGBAt returns the red, green and blue components at time t, each
// from 0 to 1.
func (c Color) RGBAt(t int) (r, g, b float64) {
	hue, sat, li := c.At(t)
	return hslToRGB(hue, sat, li)
}

// NRGBA returns the color at time t as a standard image color.
func (c Color) NRGBA(t int) color.NRGBA {
	r, g, b := c.RGBAt(t)
	return color.NRGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

// Hex returns the hex specification of the color at time t, drawing
// one fixed specification if the color is parameterized.
func (c Color) Hex(t int) string {
	v := c.NRGBA(t)
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
}

// Clone returns a copy of the color whose parameter state is
// independent of the original. Used to give each of several shapes its
// own realization of a color distribution.
func (c Color) Clone() Color {
	return Color{
		Hue: param.Clone(c.Hue),
		Sat: param.Clone(c.Sat),
		Li:  param.Clone(c.Li),
	}
}

// Average returns the arithmetic mean of colors in RGB space.
// Averaging hues directly has unexpected results with black, white and
// gray.
func Average(colors ...Color) Color {
	var r, g, b float64
	for _, c := range colors {
		cr, cg, cb := c.RGBAt(0)
		r += cr
		g += cg
		b += cb
	}
	n := float64(len(colors))
	hue, sat, li := rgbToHSL(r/n, g/n, b/n)
	return HSL(hue, sat, li)
}

// Mix returns the blend of a and b at time t, with f giving the weight
// of b from 0 to 1. Blending is done in RGB space.
func Mix(a, b Color, f float64, t int) Color {
	ar, ag, ab := a.RGBAt(t)
	br, bg, bb := b.RGBAt(t)
	hue, sat, li := rgbToHSL(ar+f*(br-ar), ag+f*(bg-ag), ab+f*(bb-ab))
	return HSL(hue, sat, li)
}

// ContrastingLightness returns c with its lightness shifted by
// lightDiff: lighter if the original lightness is below 0.5, darker
// otherwise. Used to create pairs of light and dark colors.
func ContrastingLightness(c Color, lightDiff float64) Color {
	hue, sat, li := c.At(0)
	if li < 0.5 {
		li = math.Min(li+lightDiff, 1)
	} else {
		li = math.Max(li-lightDiff, 0)
	}
	return HSL(hue, sat, li)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// hslToRGB converts HSL components to RGB, all from 0 to 1.
func hslToRGB(hue, sat, li float64) (r, g, b float64) {
	c := (1 - math.Abs(2*li-1)) * sat
	h := hue * 6
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := li - c/2
	return r + m, g + m, b + m
}

// rgbToHSL converts RGB components to HSL, all from 0 to 1.
func rgbToHSL(r, g, b float64) (hue, sat, li float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	li = (max + min) / 2
	if max == min {
		return 0, 0, li
	}
	d := max - min
	if li > 0.5 {
		sat = d / (2 - max - min)
	} else {
		sat = d / (max + min)
	}
	switch max {
	case r:
		hue = math.Mod((g-b)/d, 6) / 6
		if hue < 0 {
			hue++
		}
	case g:
		hue = ((b-r)/d + 2) / 6
	default:
		hue = ((r-g)/d + 4) / 6
	}
	return hue, sat, li
}
