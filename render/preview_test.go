package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/printforge/lamina/geom"
)

// ringLayer reconstructs a 30x30 square with a 10x10 hole in the middle.
func ringLayer(t *testing.T) *geom.Layer {
	t.Helper()
	l := geom.NewLayer()
	for _, sq := range [][3]float64{{0, 0, 30}, {10, 10, 10}} {
		x0, y0, size := sq[0], sq[1], sq[2]
		l.AddSegment(x0, y0, x0+size, y0)
		l.AddSegment(x0+size, y0, x0+size, y0+size)
		l.AddSegment(x0+size, y0+size, x0, y0+size)
		l.AddSegment(x0, y0+size, x0, y0)
	}
	if _, ws := l.MakePolylines(); len(ws) != 0 {
		t.Fatalf("MakePolylines() warnings: %v", ws)
	}
	if ws := l.MakeSurfaces(); len(ws) != 0 {
		t.Fatalf("MakeSurfaces() warnings: %v", ws)
	}
	return l
}

func TestSurfaces_FillAndHole(t *testing.T) {
	l := ringLayer(t)

	fill := color.RGBA{R: 0xff, A: 0xff}
	bg := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	img := Surfaces(l, Options{Scale: 2, Margin: 4, Fill: fill, Background: bg})

	wantW := 30*2 + 2*4
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantW {
		t.Fatalf("image size = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantW)
	}

	// Model (5, 15) is in the solid ring; (15, 15) is inside the hole.
	// Device coordinates: x = modelX*2+4, y = (30-modelY)*2+4.
	if got := img.RGBAAt(5*2+4, (30-15)*2+4); got != fill {
		t.Errorf("ring pixel = %v, want %v", got, fill)
	}
	if got := img.RGBAAt(15*2+4, (30-15)*2+4); got != bg {
		t.Errorf("hole pixel = %v, want %v", got, bg)
	}
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("margin pixel = %v, want %v", got, bg)
	}
}

func TestSurfaces_EmptyLayer(t *testing.T) {
	img := Surfaces(geom.NewLayer(), Options{Margin: 3})
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 7 {
		t.Errorf("empty layer image size = %dx%d, want 7x7", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestWritePNG(t *testing.T) {
	l := ringLayer(t)
	img := Surfaces(l, Options{})

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Errorf("output does not start with the PNG signature")
	}
}
