// Package mainwindow provides the main application window hosting the
// linked chart grid.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"chart-grid/internal/app"
	"chart-grid/ui/chartview"
	"chart-grid/ui/prefs"
)

// MainWindow is the primary application window. Every hosted chart shares
// the workspace's selection controller, so selecting in one highlights the
// same rows in all of them.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	views     []*chartview.ChartView
	statusBar *widget.Label
}

// New creates the main window over an already-populated workspace state.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Chart Grid")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.restoreGeometry()

	return mw
}

func (mw *MainWindow) setupUI() {
	mw.statusBar = widget.NewLabel("ready")

	for _, c := range mw.state.Charts() {
		view := chartview.New(c)
		view.OnStatus(mw.updateStatus)
		mw.views = append(mw.views, view)
	}

	items := make([]fyne.CanvasObject, len(mw.views))
	for i, v := range mw.views {
		items[i] = v
	}
	grid := container.NewGridWithColumns(max(1, len(items)), items...)

	content := container.NewBorder(mw.createToolbar(), mw.statusBar, nil, nil, grid)
	mw.SetContent(content)
}

func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() {
			mw.setTool(chartview.ToolPan)
			mw.updateStatus("pan: drag to move, wheel to zoom")
		}),
		widget.NewToolbarAction(theme.CheckButtonCheckedIcon(), func() {
			mw.setTool(chartview.ToolSelect)
			mw.updateStatus("select: drag a rectangle over points")
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			for _, c := range mw.state.Charts() {
				c.Projection().ResetView()
				c.Invalidate()
			}
			for _, v := range mw.views {
				v.Refresh()
			}
			mw.updateStatus("view reset")
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			mw.state.Selection.ClearAll()
			for _, v := range mw.views {
				v.Refresh()
			}
			mw.updateStatus("selection cleared")
		}),
	)
}

func (mw *MainWindow) setTool(tool chartview.Tool) {
	for _, v := range mw.views {
		v.SetTool(tool)
	}
	mw.prefs.SetInt(prefs.KeyLastTool, int(tool))
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// restoreGeometry applies the persisted window size and tool.
func (mw *MainWindow) restoreGeometry() {
	w := mw.prefs.Float(prefs.KeyWindowWidth, 1000)
	h := mw.prefs.Float(prefs.KeyWindowHeight, 600)
	mw.Resize(fyne.NewSize(float32(w), float32(h)))
	mw.setTool(chartview.Tool(mw.prefs.Int(prefs.KeyLastTool, int(chartview.ToolPan))))
}

// SavePreferences persists window geometry. Called on shutdown.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus(fmt.Sprintf("failed to save preferences: %v", err))
	}
}
