package raster

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/daniel-munro/algoraphics/svg"
)

// WritePNG renders the canvas at its current timepoint and writes it
// to a PNG file.
func WritePNG(path string, c *svg.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, Draw(c)); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// WriteGIF renders frames at consecutive timepoints of the canvas and
// writes them as an animated GIF at fps frames per second. The
// canvas's timepoint is advanced across frames so that dynamic
// parameters evolve.
func WriteGIF(path string, c *svg.Canvas, fps, frames int) error {
	if fps <= 0 || frames <= 0 {
		return fmt.Errorf("writing %s: fps and frames must be positive", path)
	}
	anim := &gif.GIF{}
	delay := 100 / fps
	for i := 0; i < frames; i++ {
		c.T = i
		frame := Draw(c)
		pal := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
