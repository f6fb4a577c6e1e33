// Package main provides the entry point for the Chart Grid application.
package main

import (
	"log"
	"math"
	"math/rand"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"chart-grid/internal/app"
	"chart-grid/internal/axis"
	"chart-grid/internal/chart"
	"chart-grid/internal/projection"
	"chart-grid/internal/version"
	"chart-grid/ui/mainwindow"
	"chart-grid/ui/prefs"
)

const appTitle = "Chart Grid"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s (%s)", appTitle, version.Version, version.GitCommit)

	fyneApp := fyneapp.NewWithID("io.chartgrid.app")
	fyneApp.Settings().SetTheme(&app.ChartGridTheme{})

	state := app.NewState()
	if err := seedDemoCharts(state); err != nil {
		log.Fatalf("Failed to build demo charts: %v", err)
	}

	appPrefs := prefs.Load()
	win := mainwindow.New(fyneApp, state, appPrefs)

	setupHotReload()

	win.SetOnClosed(func() {
		win.SavePreferences()
		state.Dispose()
	})
	win.ShowAndRun()
}

// seedDemoCharts populates the workspace with a Cartesian scatter and a
// polar chart over related data, wired to the shared selection.
func seedDemoCharts(state *app.State) error {
	rng := rand.New(rand.NewSource(42))

	n := 400
	x := make([]float64, n)
	y := make([]float64, n)
	r := make([]float64, n)
	theta := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		x[i] = t * 100
		y[i] = 40 + 30*math.Sin(t*4*math.Pi) + rng.NormFloat64()*4
		r[i] = t * 10
		theta[i] = math.Mod(t*720, 360)
	}

	cartGroup, err := projection.NewCartesian(axis.NewLinear("x"), axis.NewLinear("y"))
	if err != nil {
		return err
	}
	scatter := chart.New("scatter", cartGroup, state.Selection)
	wave, err := chart.NewSeries("scatter", "noisy wave", x, y)
	if err != nil {
		return err
	}
	if err := scatter.AddSeries(wave); err != nil {
		return err
	}

	polarGroup, err := projection.NewPolar(axis.NewLinear("r"), axis.NewLinear("theta"))
	if err != nil {
		return err
	}
	polar := chart.New("polar", polarGroup, state.Selection)
	spiral, err := chart.NewSeries("scatter", "spiral", r, theta)
	if err != nil {
		return err
	}
	if err := polar.AddSeries(spiral); err != nil {
		return err
	}

	if err := state.AddChart(scatter); err != nil {
		return err
	}
	return state.AddChart(polar)
}

// setupHotReload logs when a newer binary lands, for the dev loop.
func setupHotReload() {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: new binary detected, restart to pick it up")
	})
	reloader.Start()
}
