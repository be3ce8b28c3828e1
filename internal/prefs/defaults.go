package prefs

// Preference keys.
const (
	KeyClockType  = "clock_type"
	KeyFormat     = "format"
	KeyHideZero   = "hide_zero_units"
	KeyRoundUp    = "round_up"
	KeyDuration   = "duration"
	KeyDate       = "date"
	KeyTime       = "time"
	KeyEndText    = "end_text"
	KeyEndChime   = "end_chime"
	KeyOpacity    = "overlay_opacity"
	KeyTextSource = "text_source"
	KeyRestart    = "restart_timer"
	KeyHelp       = "format_help"
)

// Clock type choice values.
const (
	ClockTypeDuration = "Duration"
	ClockTypeTarget   = "Date/Time"
)

// DefaultSet builds the countdown preference set. textSources regenerates the
// bindable text element list for the source selector.
func DefaultSet(textSources func() []string) *Set {
	return NewSet(
		Choice{
			M:       Meta{Key: KeyClockType, Label: "Clock Type", InducesReset: true},
			Default: ClockTypeDuration,
			Options: []string{ClockTypeDuration, ClockTypeTarget},
		},
		Text{
			M:       Meta{Key: KeyFormat, Label: "Format", Tooltip: "Output time format"},
			Default: "%H:%M:%S",
		},
		Bool{
			M: Meta{Key: KeyHideZero, Label: "Hide Zero Units"},
		},
		Bool{
			M: Meta{Key: KeyRoundUp, Label: "Round Up"},
		},
		Text{
			M:       Meta{Key: KeyDuration, Label: "Duration", Tooltip: "Minutes or H:M:S", InducesReset: true},
			Default: "1000",
		},
		Text{
			M:       Meta{Key: KeyDate, Label: "Date", Tooltip: "M/D/Y, TODAY or TOMORROW", InducesReset: true},
			Default: "TODAY",
		},
		Text{
			M:       Meta{Key: KeyTime, Label: "Time", Tooltip: "H:M:S, am/pm for 12-hour", InducesReset: true},
			Default: "12:00:00 pm",
		},
		Text{
			M:       Meta{Key: KeyEndText, Label: "End Text", Tooltip: "Shown after the countdown"},
			Default: "Live Now!",
		},
		Bool{
			M: Meta{Key: KeyEndChime, Label: "End Chime", Tooltip: "Play a tone when the countdown ends"},
		},
		Text{
			M:       Meta{Key: KeyOpacity, Label: "Overlay Opacity", Tooltip: "Background opacity, 0 to 1"},
			Default: "0.8",
		},
		Choice{
			M:           Meta{Key: KeyTextSource, Label: "Text Source"},
			OptionsFunc: textSources,
		},
		Button{
			M: Meta{Key: KeyRestart, Label: "Restart Timer"},
		},
		Info{
			M:    Meta{Key: KeyHelp, Label: "Help"},
			Text: "Placeholders: %d days, %H hours, %M minutes, %S seconds.",
		},
	)
}
