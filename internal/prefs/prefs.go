// Package prefs defines the countdown's preference descriptors and their live
// values. The descriptor set is fixed at construction; only current values
// change, driven by settings-panel edits.
package prefs

// Meta holds the fields every preference variant shares.
type Meta struct {
	// Key uniquely identifies the preference across the ordered set.
	Key   string
	Label string
	// Tooltip is extra help text shown alongside the widget, may be empty.
	Tooltip string
	// InducesReset marks preferences whose change also resets the
	// duration-mode reference timestamp.
	InducesReset bool
}

// Descriptor is implemented by every preference variant. The settings panel
// dispatches on the concrete type exactly once, at widget-building time.
type Descriptor interface {
	Meta() Meta
}

// Text is a free-form string preference.
type Text struct {
	M       Meta
	Default string
}

// Bool is an on/off preference.
type Bool struct {
	M       Meta
	Default bool
}

// Choice is a single-selection preference. Options is a static list;
// OptionsFunc, when set, regenerates the list on demand and the panel offers
// a reload affordance for it.
type Choice struct {
	M           Meta
	Default     string
	Options     []string
	OptionsFunc func() []string
}

// Button is an action trigger with no stored value.
type Button struct {
	M Meta
}

// Info is a read-only label.
type Info struct {
	M    Meta
	Text string
}

func (p Text) Meta() Meta   { return p.M }
func (p Bool) Meta() Meta   { return p.M }
func (p Choice) Meta() Meta { return p.M }
func (p Button) Meta() Meta { return p.M }
func (p Info) Meta() Meta   { return p.M }
