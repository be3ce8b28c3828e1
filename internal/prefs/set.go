package prefs

// Snapshot is a copy of the live values, used for panel editing, persistence
// and change detection.
type Snapshot struct {
	Text  map[string]string
	Flags map[string]bool
}

// Clone returns an independent copy of the snapshot.
func (snap Snapshot) Clone() Snapshot {
	copied := Snapshot{
		Text:  make(map[string]string, len(snap.Text)),
		Flags: make(map[string]bool, len(snap.Flags)),
	}
	for key, value := range snap.Text {
		copied.Text[key] = value
	}
	for key, value := range snap.Flags {
		copied.Flags[key] = value
	}
	return copied
}

// Diff reports the outcome of applying a snapshot.
type Diff struct {
	// Changed lists the keys whose value differs, in descriptor order.
	Changed []string
	// ResetInducing is true when at least one changed key carries the
	// InducesReset flag.
	ResetInducing bool
}

// Set is the fixed, ordered collection of preference descriptors together
// with their current values.
type Set struct {
	order []Descriptor
	text  map[string]string
	flags map[string]bool
}

// NewSet builds a set from descriptors, seeding current values from defaults.
// Descriptor keys must be unique.
func NewSet(descriptors ...Descriptor) *Set {
	set := &Set{
		order: descriptors,
		text:  make(map[string]string),
		flags: make(map[string]bool),
	}
	for _, descriptor := range descriptors {
		key := descriptor.Meta().Key
		if _, dup := set.text[key]; dup {
			panic("prefs: duplicate key " + key)
		}
		if _, dup := set.flags[key]; dup {
			panic("prefs: duplicate key " + key)
		}
		switch concrete := descriptor.(type) {
		case Text:
			set.text[key] = concrete.Default
		case Bool:
			set.flags[key] = concrete.Default
		case Choice:
			set.text[key] = concrete.Default
		}
	}
	return set
}

// Descriptors returns the ordered descriptor list.
func (set *Set) Descriptors() []Descriptor {
	return set.order
}

// String returns the current value of a text or choice preference.
func (set *Set) String(key string) string {
	return set.text[key]
}

// Bool returns the current value of a boolean preference.
func (set *Set) Bool(key string) bool {
	return set.flags[key]
}

// Snapshot copies the current values.
func (set *Set) Snapshot() Snapshot {
	return Snapshot{Text: set.text, Flags: set.flags}.Clone()
}

// Apply replaces current values with those present in the snapshot and
// reports which keys changed. Keys absent from the snapshot keep their
// current value; keys not in the descriptor set are ignored.
func (set *Set) Apply(snap Snapshot) Diff {
	var diff Diff
	for _, descriptor := range set.order {
		meta := descriptor.Meta()
		changed := false

		if value, ok := snap.Text[meta.Key]; ok {
			if _, holds := set.text[meta.Key]; holds && set.text[meta.Key] != value {
				set.text[meta.Key] = value
				changed = true
			}
		}
		if value, ok := snap.Flags[meta.Key]; ok {
			if _, holds := set.flags[meta.Key]; holds && set.flags[meta.Key] != value {
				set.flags[meta.Key] = value
				changed = true
			}
		}

		if changed {
			diff.Changed = append(diff.Changed, meta.Key)
			if meta.InducesReset {
				diff.ResetInducing = true
			}
		}
	}
	return diff
}
