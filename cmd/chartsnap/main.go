// Command chartsnap renders demo charts headlessly to PNG and reports
// spatial-index query timings.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"chart-grid/internal/axis"
	"chart-grid/internal/chart"
	"chart-grid/internal/projection"
	"chart-grid/internal/render"
	"chart-grid/internal/selection"
	"chart-grid/pkg/geometry"
)

func main() {
	outDir := flag.String("out", ".", "Output directory for PNG snapshots")
	width := flag.Int("width", 800, "Snapshot width in pixels")
	height := flag.Int("height", 600, "Snapshot height in pixels")
	points := flag.Int("points", 5000, "Number of demo points per chart")
	seed := flag.Int64("seed", 1, "Random seed for demo data")
	flag.Parse()

	sel := selection.NewController()
	rng := rand.New(rand.NewSource(*seed))

	scatter, err := buildScatter(sel, rng, *points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scatter chart: %v\n", err)
		os.Exit(1)
	}
	polar, err := buildPolar(sel, rng, *points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build polar chart: %v\n", err)
		os.Exit(1)
	}

	for _, c := range []*chart.Chart{scatter, polar} {
		// Index at interactive-view resolution; the renderer refits the
		// viewport onto the snapshot's plot area.
		c.SetViewport(geometry.NewRect(0, 0, 400, 300))
		reportQueries(c)

		img := render.Render(c, render.DefaultOptions(*width, *height))
		path := filepath.Join(*outDir, c.ID()+".png")
		if err := writePNG(path, img); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%dx%d, %d points)\n", path, *width, *height, *points)
	}
}

func buildScatter(sel *selection.Controller, rng *rand.Rand, n int) (*chart.Chart, error) {
	group, err := projection.NewCartesian(axis.NewLinear("x"), axis.NewLinear("y"))
	if err != nil {
		return nil, err
	}

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * 1000
		y[i] = 200 + 80*math.Sin(x[i]/100) + rng.NormFloat64()*20
	}

	s, err := chart.NewSeries("demo", "demo scatter", x, y)
	if err != nil {
		return nil, err
	}

	c := chart.New("scatter", group, sel)
	if err := c.AddSeries(s); err != nil {
		return nil, err
	}
	return c, nil
}

func buildPolar(sel *selection.Controller, rng *rand.Rand, n int) (*chart.Chart, error) {
	group, err := projection.NewPolar(axis.NewLinear("r"), axis.NewLinear("theta"))
	if err != nil {
		return nil, err
	}

	r := make([]float64, n)
	theta := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		r[i] = t*8 + rng.Float64()*0.5
		theta[i] = math.Mod(t*1080, 360)
	}

	s, err := chart.NewSeries("demo", "demo spiral", r, theta)
	if err != nil {
		return nil, err
	}

	c := chart.New("polar", group, sel)
	if err := c.AddSeries(s); err != nil {
		return nil, err
	}
	return c, nil
}

// reportQueries exercises the spatial index and prints build/query timings.
func reportQueries(c *chart.Chart) {
	start := time.Now()
	tree := c.Index()
	buildTime := time.Since(start)

	vp := c.Projection().Viewport()
	center := vp.Center()

	start = time.Now()
	all := tree.QueryRect(vp)
	rectTime := time.Since(start)

	start = time.Now()
	_, hit := tree.QueryNearest(center, 50)
	nearTime := time.Since(start)

	fmt.Printf("%s: indexed %d points in %v; full-rect query %d hits in %v; nearest(50px) hit=%v in %v\n",
		c.ID(), tree.Len(), buildTime, len(all), rectTime, hit, nearTime)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
