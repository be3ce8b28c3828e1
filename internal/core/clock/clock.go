// Package clock owns countdown arithmetic: target-time computation and the
// rendering of the remaining span into a display string.
package clock

import "time"

// Mode selects which countdown computation is authoritative.
type Mode int

const (
	// ModeDuration counts down a fixed span from the last reset.
	ModeDuration Mode = iota
	// ModeTarget counts down to an absolute timestamp.
	ModeTarget
)

// Clock manages the current countdown state. Exactly one of the duration
// (relative to the reference time) or the target timestamp is authoritative,
// selected by the mode.
type Clock struct {
	now       func() time.Time
	mode      Mode
	reference time.Time
	duration  float64
	target    time.Time
}

// New creates a duration-mode clock referenced to the present.
func New() *Clock {
	return NewWithNow(time.Now)
}

// NewWithNow creates a clock with an injected time source.
func NewWithNow(now func() time.Time) *Clock {
	keeper := &Clock{now: now, mode: ModeDuration}
	keeper.Reset()
	return keeper
}

// Mode returns the active countdown mode.
func (keeper *Clock) Mode() Mode {
	return keeper.mode
}

// Reset moves the duration reference point to the present. Only meaningful in
// duration mode; target mode ignores the reference time entirely.
func (keeper *Clock) Reset() {
	keeper.reference = keeper.now()
}

// SetDuration switches to duration mode and parses the interval preference.
// Malformed input yields a zero duration; the parse error is returned so the
// caller can log it, never so it can fail.
func (keeper *Clock) SetDuration(spec string) error {
	seconds, err := ParseDurationSpec(spec)
	keeper.mode = ModeDuration
	keeper.duration = seconds
	return err
}

// SetTarget switches to target mode and resolves the date and time
// preferences into an absolute local timestamp. Malformed input leaves the
// target unset, which reads back as zero remaining seconds.
func (keeper *Clock) SetTarget(dateSpec, timeSpec string) error {
	keeper.mode = ModeTarget
	target, err := ParseTarget(dateSpec, timeSpec, keeper.now())
	if err != nil {
		keeper.target = time.Time{}
		return err
	}
	keeper.target = target
	return nil
}

// Remaining reports the countdown seconds left, floored at zero.
func (keeper *Clock) Remaining() float64 {
	current := keeper.now()

	if keeper.mode == ModeTarget {
		if keeper.target.IsZero() || !current.Before(keeper.target) {
			return 0
		}
		return keeper.target.Sub(current).Seconds()
	}

	left := keeper.duration - current.Sub(keeper.reference).Seconds()
	if left < 0 {
		return 0
	}
	return left
}

// Render formats the remaining time according to the display format and
// returns both the string and the un-rounded remaining seconds. Callers use
// the seconds value to detect expiry independent of display rounding.
func (keeper *Clock) Render(format string, hideZeroUnits, roundUp bool) (string, float64) {
	remaining := keeper.Remaining()
	return renderRemaining(format, remaining, hideZeroUnits, roundUp), remaining
}
