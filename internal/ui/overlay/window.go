// Package overlay renders the visible stage text elements in a frameless
// always-on-top style window, the on-screen face of the countdown.
package overlay

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"livecount/internal/stage"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
}

const defaultOpacity = 0.8

// AlphaFromSpec converts the overlay opacity preference (a 0 to 1 fraction)
// into a background alpha. Unparseable input falls back to the default.
func AlphaFromSpec(spec string) uint8 {
	opacity, err := strconv.ParseFloat(strings.TrimSpace(spec), 64)
	if err != nil {
		opacity = defaultOpacity
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}

const (
	overlayTextSize = float32(48)
	overlayPadding  = float32(24)
	labelSpacing    = float32(8)
)

var overlayTextColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window manages the overlay UI. All mutation happens on the fyne UI thread;
// the stage subscription hops there itself.
type Window struct {
	window     fyne.Window
	graph      *stage.Stage
	config     Config
	background *canvas.Rectangle
	labels     *fyne.Container
	shown      bool
}

// New creates the overlay window and wires it to stage updates.
func New(app fyne.App, graph *stage.Stage, config Config) *Window {
	window := app.NewWindow("LiveCount")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity})
	labels := container.New(&stackedLabelLayout{})
	window.SetContent(container.NewStack(background, labels))

	overlay := &Window{
		window:     window,
		graph:      graph,
		config:     config,
		background: background,
		labels:     labels,
	}

	graph.Subscribe(func(stage.Signal) {
		fyne.Do(overlay.refresh)
	})

	return overlay
}

// Canvas exposes the window canvas for shortcut registration.
func (overlay *Window) Canvas() fyne.Canvas {
	return overlay.window.Canvas()
}

// Refresh rebuilds the overlay from the current stage state.
func (overlay *Window) Refresh() {
	fyne.Do(overlay.refresh)
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.background.FillColor = color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity}
	canvas.Refresh(overlay.background)
	if overlay.shown {
		overlay.applyNativeOpacity(config.Opacity)
	}
}

func (overlay *Window) refresh() {
	overlay.labels.Objects = overlay.labels.Objects[:0]
	for _, info := range overlay.graph.Elements() {
		if info.Kind != stage.KindText || !info.Visible {
			continue
		}
		label := canvas.NewText(info.Text, overlayTextColor)
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.TextSize = overlayTextSize
		label.Alignment = fyne.TextAlignCenter
		overlay.labels.Objects = append(overlay.labels.Objects, label)
	}

	if len(overlay.labels.Objects) == 0 {
		if overlay.shown {
			overlay.window.Hide()
			overlay.shown = false
		}
		return
	}

	overlay.labels.Refresh()
	overlay.resizeToContent()
	if !overlay.shown {
		overlay.window.Show()
		overlay.shown = true
		overlay.applyNativeOpacity(overlay.config.Opacity)
	}
}

func (overlay *Window) resizeToContent() {
	minSize := overlay.labels.MinSize()
	overlay.window.Resize(fyne.NewSize(
		minSize.Width+overlayPadding*2,
		minSize.Height+overlayPadding*2,
	))
	overlay.window.CenterOnScreen()
}

// stackedLabelLayout centers the labels as one vertical stack.
type stackedLabelLayout struct{}

func (layout *stackedLabelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	totalHeight := float32(0)
	for _, object := range objects {
		totalHeight += object.MinSize().Height
	}
	if len(objects) > 1 {
		totalHeight += labelSpacing * float32(len(objects)-1)
	}

	y := (size.Height - totalHeight) / 2
	if y < 0 {
		y = 0
	}
	for _, object := range objects {
		objectSize := object.MinSize()
		object.Resize(fyne.NewSize(size.Width, objectSize.Height))
		object.Move(fyne.NewPos(0, y))
		y += objectSize.Height + labelSpacing
	}
}

func (layout *stackedLabelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		objectSize := object.MinSize()
		if objectSize.Width > width {
			width = objectSize.Width
		}
		height += objectSize.Height
	}
	if len(objects) > 1 {
		height += labelSpacing * float32(len(objects)-1)
	}
	return fyne.NewSize(width, height)
}
