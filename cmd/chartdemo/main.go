// Command chartdemo renders sample charts with the software tier.
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/chart"
	_ "github.com/gogpu/chart/backend/software"
	"github.com/gogpu/chart/surface"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		kind   = flag.String("kind", "line", "chart kind: line, area or bar")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	var k chart.Kind
	switch *kind {
	case "line":
		k = chart.KindLine
	case "area":
		k = chart.KindArea
	case "bar":
		k = chart.KindBar
	default:
		log.Fatalf("Unknown kind %q", *kind)
	}

	target, err := surface.NewImageSurface(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}

	c := chart.New(k, chart.Options{})
	defer c.Destroy()

	if err := c.Render(demoProps(k, target, *width, *height)); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, target.RGBA()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func demoProps(k chart.Kind, target *surface.ImageSurface, w, h int) *chart.RenderProps {
	series := []chart.Series{
		{
			ID:          "wave",
			Points:      wave(48, 1, 0),
			Color:       chart.RGBA{0.85, 0.25, 0.2, 1},
			StrokeWidth: 2,
			FillOpacity: 0.4,
		},
		{
			ID:          "wave-offset",
			Points:      wave(48, 0.6, math.Pi/3),
			Color:       chart.RGBA{0.2, 0.45, 0.85, 1},
			StrokeWidth: 2,
			FillOpacity: 0.4,
		},
	}

	props := &chart.RenderProps{
		Surface:          target,
		Series:           series,
		XDomain:          chart.Domain{0, 47},
		YDomain:          chart.Domain{-1.2, 2.2},
		XTicks:           []float32{0, 12, 24, 36, 47},
		YTicks:           []float32{-1, 0, 1, 2},
		Width:            float32(w),
		Height:           float32(h),
		Margin:           chart.Margin{Top: 20, Right: 20, Bottom: 30, Left: 40},
		DevicePixelRatio: 1,
		ShowGrid:         true,
		Background:       chart.RGBA{0.98, 0.98, 0.98, 1},
	}
	if k == chart.KindArea {
		props.Stacked = true
		props.YDomain = chart.Domain{-2.5, 3.5}
	}
	if k == chart.KindBar {
		// Fewer, coarser categories read better as bars.
		for i := range props.Series {
			props.Series[i].Points = props.Series[i].Points[:12]
		}
		props.XDomain = chart.Domain{-1, 12}
	}
	return props
}

// wave produces a damped sine series for the demo.
func wave(n int, amp, phase float64) []chart.Point {
	pts := make([]chart.Point, n)
	for i := range pts {
		x := float64(i)
		y := amp * math.Sin(x/4+phase) * math.Exp(-x/96)
		pts[i] = chart.Point{X: float32(x), Y: float32(y) + 0.5}
	}
	return pts
}
