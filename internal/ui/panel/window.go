// Package panel is the preferences window, generated from the preference
// descriptor set.
package panel

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"livecount/internal/i18n"
	"livecount/internal/prefs"
)

// noneSelected is the selector entry for an empty element binding.
const noneSelected = "<None selected>"

// Window handles the preferences UI. It never touches live preference state:
// values arrive as a snapshot on Show and leave as a snapshot on save.
type Window struct {
	window  fyne.Window
	onSave  func(prefs.Snapshot)
	actions map[string]func()
	current prefs.Snapshot

	entries map[string]*widget.Entry
	checks  map[string]*widget.Check
	selects map[string]*widget.Select
	options map[string]func() []string
}

// New creates the preferences window from the descriptor list. actions backs
// the button descriptors, keyed by preference key. onSave receives the
// edited snapshot.
func New(app fyne.App, descriptors []prefs.Descriptor, actions map[string]func(), onSave func(prefs.Snapshot)) *Window {
	window := app.NewWindow("LiveCount " + i18n.T("Preferences"))

	editor := &Window{
		window:  window,
		onSave:  onSave,
		actions: actions,
		entries: make(map[string]*widget.Entry),
		checks:  make(map[string]*widget.Check),
		selects: make(map[string]*widget.Select),
		options: make(map[string]func() []string),
	}

	form := container.NewVBox()
	for _, descriptor := range descriptors {
		form.Add(editor.buildRow(descriptor))
	}

	saveButton := widget.NewButton(i18n.T("Save"), editor.handleSave)
	closeButton := widget.NewButton(i18n.T("Close"), window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), closeButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 520))
	window.SetCloseIntercept(window.Hide)

	return editor
}

// Show loads the snapshot into the widgets, refreshes dynamic choices and
// displays the window.
func (editor *Window) Show(snap prefs.Snapshot) {
	editor.current = snap
	editor.reloadValues()
	editor.window.Show()
	editor.window.RequestFocus()
}

func (editor *Window) buildRow(descriptor prefs.Descriptor) fyne.CanvasObject {
	meta := descriptor.Meta()
	switch concrete := descriptor.(type) {
	case prefs.Text:
		entry := widget.NewEntry()
		entry.SetPlaceHolder(meta.Tooltip)
		editor.entries[meta.Key] = entry
		return container.NewBorder(nil, nil, widget.NewLabel(i18n.T(meta.Label)), nil, entry)

	case prefs.Bool:
		check := widget.NewCheck(i18n.T(meta.Label), nil)
		editor.checks[meta.Key] = check
		return check

	case prefs.Choice:
		selector := widget.NewSelect(nil, nil)
		editor.selects[meta.Key] = selector
		if concrete.OptionsFunc != nil {
			editor.options[meta.Key] = concrete.OptionsFunc
			reload := widget.NewButton(i18n.T("Reload"), func() {
				editor.reloadOptions(meta.Key)
			})
			return container.NewBorder(nil, nil, widget.NewLabel(i18n.T(meta.Label)), reload, selector)
		}
		selector.SetOptions(concrete.Options)
		return container.NewBorder(nil, nil, widget.NewLabel(i18n.T(meta.Label)), nil, selector)

	case prefs.Button:
		action := editor.actions[meta.Key]
		return widget.NewButton(i18n.T(meta.Label), func() {
			if action != nil {
				action()
			}
		})

	case prefs.Info:
		info := widget.NewLabel(concrete.Text)
		info.Wrapping = fyne.TextWrapWord
		return info

	default:
		return widget.NewLabel(i18n.T(meta.Label))
	}
}

// reloadOptions rebuilds a dynamic selector, keeping the current binding
// selected when it still exists.
func (editor *Window) reloadOptions(key string) {
	selector := editor.selects[key]
	choices := append([]string{i18n.T(noneSelected)}, editor.options[key]()...)
	selector.SetOptions(choices)

	current := editor.current.Text[key]
	if current == "" {
		selector.SetSelected(i18n.T(noneSelected))
		return
	}
	for _, choice := range choices {
		if choice == current {
			selector.SetSelected(choice)
			return
		}
	}
	selector.SetSelected(i18n.T(noneSelected))
}

func (editor *Window) reloadValues() {
	for key, entry := range editor.entries {
		entry.SetText(editor.current.Text[key])
	}
	for key, check := range editor.checks {
		check.SetChecked(editor.current.Flags[key])
	}
	for key, selector := range editor.selects {
		if _, dynamic := editor.options[key]; dynamic {
			editor.reloadOptions(key)
			continue
		}
		selector.SetSelected(editor.current.Text[key])
	}
}

func (editor *Window) handleSave() {
	snap := prefs.Snapshot{
		Text:  make(map[string]string),
		Flags: make(map[string]bool),
	}
	for key, entry := range editor.entries {
		snap.Text[key] = entry.Text
	}
	for key, check := range editor.checks {
		snap.Flags[key] = check.Checked
	}
	for key, selector := range editor.selects {
		value := selector.Selected
		if _, dynamic := editor.options[key]; dynamic && value == i18n.T(noneSelected) {
			value = ""
		}
		snap.Text[key] = value
	}

	if editor.onSave != nil {
		editor.onSave(snap)
	}
	editor.window.Hide()
}
