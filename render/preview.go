// Package render rasterizes reconstructed layer surfaces into images,
// mainly for debugging slicer input.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/printforge/lamina/geom"
)

// Options control surface rendering.
type Options struct {
	Scale      float64     // device pixels per model unit (default 10)
	Margin     int         // border around the geometry in pixels (default 8)
	Background color.Color // default white
	Fill       color.Color // default dark gray
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 10
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Fill == nil {
		o.Fill = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	}
	return o
}

// Surfaces renders the layer's surfaces: each contour is filled and its
// holes are carved out with the background color. Model Y grows upward, so
// the image is flipped vertically. A layer without surfaces yields a blank
// margin-sized image.
func Surfaces(l *geom.Layer, opts Options) *image.RGBA {
	opts = opts.withDefaults()

	minX, minY, maxX, maxY, ok := surfaceBounds(l)
	if !ok {
		img := image.NewRGBA(image.Rect(0, 0, 2*opts.Margin+1, 2*opts.Margin+1))
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
		return img
	}

	w := int(math.Ceil((maxX-minX)*opts.Scale)) + 2*opts.Margin
	h := int(math.Ceil((maxY-minY)*opts.Scale)) + 2*opts.Margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	toDevice := func(p *geom.Point) (float32, float32) {
		x := (p.X-minX)*opts.Scale + float64(opts.Margin)
		y := (maxY-p.Y)*opts.Scale + float64(opts.Margin)
		return float32(x), float32(y)
	}
	for _, s := range l.Surfaces() {
		fillPolyline(img, s.Contour, toDevice, opts.Fill)
		for _, hole := range s.Holes() {
			fillPolyline(img, hole, toDevice, opts.Background)
		}
	}
	return img
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func fillPolyline(dst *image.RGBA, pl *geom.Polyline, toDevice func(*geom.Point) (float32, float32), c color.Color) {
	pts := pl.Points()
	if len(pts) < 3 {
		return
	}
	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.DrawOp = draw.Over
	r.MoveTo(toDevice(pts[0]))
	for _, p := range pts[1:] {
		r.LineTo(toDevice(p))
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func surfaceBounds(l *geom.Layer) (minX, minY, maxX, maxY float64, ok bool) {
	for _, s := range l.Surfaces() {
		for _, p := range s.Contour.Points() {
			if !ok || p.X < minX {
				minX = p.X
			}
			if !ok || p.Y < minY {
				minY = p.Y
			}
			if !ok || p.X > maxX {
				maxX = p.X
			}
			if !ok || p.Y > maxY {
				maxY = p.Y
			}
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}
