package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"livecount/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPreferences   func()
	OnRestart       func()
	OnToggleElement func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	callbacks   Callbacks
	visible     bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		visible:   true,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(i18n.T("Hide Countdown"), func() {
		if manager.callbacks.OnToggleElement != nil {
			manager.callbacks.OnToggleElement()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetElementVisible flips the show/hide item label.
func (manager *Manager) SetElementVisible(visible bool) {
	manager.visible = visible
	if visible {
		manager.toggleItem.Label = i18n.T("Hide Countdown")
	} else {
		manager.toggleItem.Label = i18n.T("Show Countdown")
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("LiveCount",
		manager.statusItem,
		manager.toggleItem,
		fyne.NewMenuItem(i18n.T("Restart Timer"), func() {
			if manager.callbacks.OnRestart != nil {
				manager.callbacks.OnRestart()
			}
		}),
		fyne.NewMenuItem(i18n.T("Preferences"), func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem(i18n.T("Quit"), func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
