// Package hotkey models the restart shortcut chord and its textual form used
// in the settings file.
package hotkey

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Binding is one key plus modifier mask.
type Binding struct {
	Key      fyne.KeyName
	Modifier fyne.KeyModifier
}

// Default is the out-of-the-box restart chord.
func Default() Binding {
	return Binding{Key: fyne.KeyR, Modifier: fyne.KeyModifierControl}
}

var modifierNames = []struct {
	mask fyne.KeyModifier
	name string
}{
	{fyne.KeyModifierControl, "Control"},
	{fyne.KeyModifierShift, "Shift"},
	{fyne.KeyModifierAlt, "Alt"},
	{fyne.KeyModifierSuper, "Super"},
}

// String renders the chord as "Control+Shift+R".
func (binding Binding) String() string {
	var parts []string
	for _, modifier := range modifierNames {
		if binding.Modifier&modifier.mask != 0 {
			parts = append(parts, modifier.name)
		}
	}
	parts = append(parts, string(binding.Key))
	return strings.Join(parts, "+")
}

// Parse reads a chord back from its textual form. An empty chord is an
// error; callers fall back to Default.
func Parse(chord string) (Binding, error) {
	tokens := strings.Split(chord, "+")
	if len(tokens) == 0 || tokens[len(tokens)-1] == "" {
		return Binding{}, fmt.Errorf("empty hotkey chord %q", chord)
	}

	var binding Binding
	for _, token := range tokens[:len(tokens)-1] {
		matched := false
		for _, modifier := range modifierNames {
			if token == modifier.name {
				binding.Modifier |= modifier.mask
				matched = true
				break
			}
		}
		if !matched {
			return Binding{}, fmt.Errorf("unknown modifier %q in chord %q", token, chord)
		}
	}
	binding.Key = fyne.KeyName(tokens[len(tokens)-1])
	return binding, nil
}

// Shortcut adapts the chord to fyne's desktop shortcut type.
func (binding Binding) Shortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: binding.Key, Modifier: binding.Modifier}
}

// Register attaches the chord to a canvas.
func Register(target fyne.Canvas, binding Binding, action func()) {
	target.AddShortcut(binding.Shortcut(), func(fyne.Shortcut) {
		action()
	})
}
