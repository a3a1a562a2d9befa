package images

import (
	"image"
	"math"
)

// lab is a CIELAB color, used so that segment distances follow
// perceived color difference.
type lab struct {
	l, a, b float64
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > 216.0/24389.0 {
		return math.Cbrt(t)
	}
	return (24389.0/27.0*t + 16) / 116
}

// rgbToLab converts an sRGB color (components 0 to 1) to CIELAB with
// the D65 white point.
func rgbToLab(r, g, b float64) lab {
	r = srgbToLinear(r)
	g = srgbToLinear(g)
	b = srgbToLinear(b)
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b
	fx := labF(x / 0.95047)
	fy := labF(y)
	fz := labF(z / 1.08883)
	return lab{l: 116*fy - 16, a: 500 * (fx - fy), b: 200 * (fy - fz)}
}

func labPlane(img image.Image, smoothness float64) [][]lab {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	px := make([][]lab, h)
	for y := range px {
		px[y] = make([]lab, w)
		for x := range px[y] {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			px[y][x] = rgbToLab(float64(r)/65535, float64(g)/65535, float64(bl)/65535)
		}
	}
	if smoothness > 0 {
		px = blurLab(px, smoothness)
	}
	return px
}

// blurLab applies a separable gaussian blur with the given standard
// deviation.
func blurLab(px [][]lab, sigma float64) [][]lab {
	radius := int(3 * sigma)
	if radius < 1 {
		return px
	}
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	h, w := len(px), len(px[0])
	tmp := make([][]lab, h)
	for y := 0; y < h; y++ {
		tmp[y] = make([]lab, w)
		for x := 0; x < w; x++ {
			var c lab
			for i, k := range kernel {
				xx := clampInt(x+i-radius, 0, w-1)
				c.l += k * px[y][xx].l
				c.a += k * px[y][xx].a
				c.b += k * px[y][xx].b
			}
			tmp[y][x] = c
		}
	}
	out := make([][]lab, h)
	for y := 0; y < h; y++ {
		out[y] = make([]lab, w)
		for x := 0; x < w; x++ {
			var c lab
			for i, k := range kernel {
				yy := clampInt(y+i-radius, 0, h-1)
				c.l += k * tmp[yy][x].l
				c.a += k * tmp[yy][x].a
				c.b += k * tmp[yy][x].b
			}
			out[y][x] = c
		}
	}
	return out
}

type slicCenter struct {
	lab
	x, y float64
}

// Segment divides an image into roughly nSegments superpixels using
// SLIC clustering in CIELAB space and returns a label per pixel.
// Higher compactness produces more compact, square-like segments; try
// values along a log scale such as 0.1, 1, 10, 100. smoothness is the
// standard deviation of a gaussian blur applied before segmentation.
func Segment(img image.Image, nSegments int, compactness, smoothness float64) [][]int {
	px := labPlane(img, smoothness)
	h, w := len(px), len(px[0])
	if nSegments < 1 {
		nSegments = 1
	}

	// Initialize cluster centers on a regular grid.
	step := math.Sqrt(float64(w*h) / float64(nSegments))
	var centers []slicCenter
	for y := step / 2; y < float64(h); y += step {
		for x := step / 2; x < float64(w); x += step {
			c := px[int(y)][int(x)]
			centers = append(centers, slicCenter{lab: c, x: x, y: y})
		}
	}

	labels := make([][]int, h)
	dists := make([][]float64, h)
	for y := range labels {
		labels[y] = make([]int, w)
		dists[y] = make([]float64, w)
	}

	const iterations = 10
	invS2 := compactness * compactness / (step * step)
	for it := 0; it < iterations; it++ {
		for y := range dists {
			for x := range dists[y] {
				dists[y][x] = math.Inf(1)
				if it == 0 {
					labels[y][x] = -1
				}
			}
		}
		// Assign pixels within a 2*step window of each center.
		for ci, c := range centers {
			x0 := clampInt(int(c.x-step), 0, w-1)
			x1 := clampInt(int(c.x+step), 0, w-1)
			y0 := clampInt(int(c.y-step), 0, h-1)
			y1 := clampInt(int(c.y+step), 0, h-1)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					p := px[y][x]
					dl := p.l - c.l
					da := p.a - c.a
					db := p.b - c.b
					dx := float64(x) - c.x
					dy := float64(y) - c.y
					d := dl*dl + da*da + db*db + (dx*dx+dy*dy)*invS2
					if d < dists[y][x] {
						dists[y][x] = d
						labels[y][x] = ci
					}
				}
			}
		}
		// Move each center to the mean of its pixels.
		sums := make([]slicCenter, len(centers))
		counts := make([]int, len(centers))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				ci := labels[y][x]
				if ci < 0 {
					continue
				}
				p := px[y][x]
				sums[ci].l += p.l
				sums[ci].a += p.a
				sums[ci].b += p.b
				sums[ci].x += float64(x)
				sums[ci].y += float64(y)
				counts[ci]++
			}
		}
		for ci := range centers {
			if counts[ci] == 0 {
				continue
			}
			n := float64(counts[ci])
			centers[ci] = slicCenter{
				lab: lab{l: sums[ci].l / n, a: sums[ci].a / n, b: sums[ci].b / n},
				x:   sums[ci].x / n,
				y:   sums[ci].y / n,
			}
		}
	}

	return enforceConnectivity(labels, int(0.1*step*step))
}

// enforceConnectivity relabels each connected component, absorbing
// components smaller than minSize into an adjacent segment so that
// every label forms one contiguous region.
func enforceConnectivity(labels [][]int, minSize int) [][]int {
	h, w := len(labels), len(labels[0])
	out := make([][]int, h)
	for y := range out {
		out[y] = make([]int, w)
		for x := range out[y] {
			out[y][x] = -1
		}
	}
	next := 0
	dx4 := []int{0, 1, 0, -1}
	dy4 := []int{-1, 0, 1, 0}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if out[y][x] >= 0 {
				continue
			}
			// Flood-fill this component.
			adjacent := -1
			component := [][2]int{{x, y}}
			out[y][x] = next
			for i := 0; i < len(component); i++ {
				cx, cy := component[i][0], component[i][1]
				for d := 0; d < 4; d++ {
					nx, ny := cx+dx4[d], cy+dy4[d]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					if out[ny][nx] >= 0 && out[ny][nx] != next {
						adjacent = out[ny][nx]
					}
					if out[ny][nx] < 0 && labels[ny][nx] == labels[y][x] {
						out[ny][nx] = next
						component = append(component, [2]int{nx, ny})
					}
				}
			}
			if len(component) < minSize && adjacent >= 0 {
				for _, p := range component {
					out[p[1]][p[0]] = adjacent
				}
			} else {
				next++
			}
		}
	}
	return out
}
