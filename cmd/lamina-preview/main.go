// Command lamina-preview reconstructs one slicer layer from a segment soup
// and writes a raster preview of the resulting surfaces.
//
// The input file is a JSON array of [x1, y1, x2, y2] segments:
//
//	[[0, 0, 10, 0], [10, 0, 10, 10], [10, 10, 0, 10], [0, 10, 0, 0]]
//
// Usage:
//
//	lamina-preview -in layer.json -out layer.png -scale 20
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/printforge/lamina"
	"github.com/printforge/lamina/render"
)

func main() {
	in := flag.String("in", "", "segment soup JSON file")
	out := flag.String("out", "preview.png", "output PNG file")
	scale := flag.Float64("scale", 10, "device pixels per model unit")
	strict := flag.Bool("strict", false, "treat data-quality warnings as errors")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	segments, err := readSegments(*in)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}

	pipeline := lamina.Reconstruct(segments)
	if *strict {
		pipeline = pipeline.Strict()
	}
	layer, warnings, err := pipeline.Layer()
	if err != nil {
		log.Fatalf("reconstructing layer: %v", err)
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}

	surfaces := layer.Surfaces()
	holes := 0
	for _, s := range surfaces {
		holes += len(s.Holes())
	}
	fmt.Printf("%d segment(s) -> %d surface(s), %d hole(s)\n", len(segments), len(surfaces), holes)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer f.Close()

	img := render.Surfaces(layer, render.Options{Scale: *scale})
	if err := render.WritePNG(f, img); err != nil {
		log.Fatalf("encoding %s: %v", *out, err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, img.Bounds().Dx(), img.Bounds().Dy())
}

// readSegments parses the JSON segment soup.
func readSegments(path string) ([]lamina.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw [][4]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing segments: %w", err)
	}
	segments := make([]lamina.Segment, len(raw))
	for i, s := range raw {
		segments[i] = lamina.Segment{X1: s[0], Y1: s[1], X2: s[2], Y2: s[3]}
	}
	return segments, nil
}
