package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"livecount/internal/core/clock"
	"livecount/internal/core/controller"
	"livecount/internal/hotkey"
	"livecount/internal/platform"
	"livecount/internal/prefs"
	"livecount/internal/sound"
	"livecount/internal/stage"
	"livecount/internal/storage"
	"livecount/internal/ui/overlay"
	"livecount/internal/ui/panel"
	"livecount/internal/ui/tray"
)

const (
	appName          = "LiveCount"
	countdownElement = "Countdown"
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("io.livecount.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("LiveCount is running in the system tray."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	graph := stage.New()
	defer graph.Close()
	if err := graph.CreateElement(countdownElement, stage.KindText, true); err != nil {
		log.Printf("create countdown element: %v", err)
	}

	set := prefs.DefaultSet(graph.TextElements)

	settingsPath, err := storage.DefaultPath(appName)
	if err != nil {
		log.Printf("settings path: %v", err)
	}
	chord := hotkey.Default()
	if settingsPath != "" {
		snap, storedChord, err := storage.Load(settingsPath, set.Snapshot())
		if err != nil {
			log.Printf("load settings: %v", err)
		}
		set.Apply(snap)
		if storedChord != "" {
			parsed, err := hotkey.Parse(storedChord)
			if err != nil {
				log.Printf("stored hotkey: %v", err)
			} else {
				chord = parsed
			}
		}
	}
	if set.String(prefs.KeyTextSource) == "" {
		// First run: bind the built-in countdown element.
		set.Apply(prefs.Snapshot{Text: map[string]string{
			prefs.KeyTextSource: countdownElement + " (" + string(stage.KindText) + ")",
		}})
	}

	chime := sound.NewChime()
	ctrl := controller.New(graph, clock.New(), set, chime.Play)
	graph.Subscribe(ctrl.HandleSignal)

	overlayWindow := overlay.New(fyneApp, graph, overlay.Config{
		Opacity: overlay.AlphaFromSpec(set.String(prefs.KeyOpacity)),
	})

	restart := func() {
		graph.Do(func() {
			ctrl.Restart(true)
		})
	}

	panelWindow := panel.New(fyneApp, set.Descriptors(), map[string]func(){
		prefs.KeyRestart: restart,
	}, func(snap prefs.Snapshot) {
		graph.Do(func() {
			ctrl.ApplySettings(snap)
			alpha := overlay.AlphaFromSpec(set.String(prefs.KeyOpacity))
			fyne.Do(func() {
				overlayWindow.UpdateConfig(overlay.Config{Opacity: alpha})
			})
			if settingsPath == "" {
				return
			}
			if err := storage.Save(settingsPath, set.Snapshot(), chord.String()); err != nil {
				log.Printf("save settings: %v", err)
			}
		})
	})
	showPanel := func() {
		graph.Do(func() {
			snap := set.Snapshot()
			fyne.Do(func() {
				panelWindow.Show(snap)
			})
		})
	}

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnPreferences: showPanel,
		OnRestart:     restart,
		OnToggleElement: func() {
			var err error
			if graph.IsActive(countdownElement) {
				err = graph.HideElement(countdownElement)
			} else {
				err = graph.ShowElement(countdownElement)
			}
			if err != nil {
				log.Printf("toggle countdown element: %v", err)
			}
		},
		OnQuit: fyneApp.Quit,
	})

	graph.Subscribe(func(sig stage.Signal) {
		if sig.Name != countdownElement {
			return
		}
		switch sig.Type {
		case stage.SignalShown:
			fyne.Do(func() { trayManager.SetElementVisible(true) })
		case stage.SignalHidden:
			fyne.Do(func() { trayManager.SetElementVisible(false) })
		case stage.SignalTextChanged:
			fyne.Do(func() { trayManager.SetStatus(sig.Text) })
		}
	})

	hotkey.Register(trayWindow.Canvas(), chord, restart)
	hotkey.Register(overlayWindow.Canvas(), chord, restart)

	graph.Do(func() {
		ctrl.Restart(true)
	})
	overlayWindow.Refresh()

	fyneApp.Run()
}
