// Package controller ties the countdown clock to a bound stage element. It
// reacts to element signals, drives the once-per-second tick, and applies
// preference changes.
package controller

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"livecount/internal/core/clock"
	"livecount/internal/prefs"
	"livecount/internal/stage"
)

// Host is the slice of the stage the controller needs: text output, element
// lookups and tick scheduling.
type Host interface {
	SetText(name, text string) error
	IsActive(name string) bool
	ElementKind(name string) (stage.Kind, bool)
	Every(period time.Duration, fn func()) stage.Task
}

const tickPeriod = time.Second

// Source selector values carry a trailing kind tag, e.g. "Countdown (text)".
var kindTag = regexp.MustCompile(` \([^()]+\)$`)

// Controller runs the countdown against one bound text element. It is not
// safe for concurrent use; every method must be called on the stage dispatch
// goroutine, which is also where scheduled ticks arrive.
type Controller struct {
	host   Host
	keeper *clock.Clock
	set    *prefs.Set
	chime  func()

	active bool
	ticker stage.Task
}

// New wires a controller and configures the clock from the current
// preference values. chime may be nil when no end tone is available.
func New(host Host, keeper *clock.Clock, set *prefs.Set, chime func()) *Controller {
	ctrl := &Controller{host: host, keeper: keeper, set: set, chime: chime}
	ctrl.configureClock()
	return ctrl
}

// Active reports whether the countdown is currently running.
func (ctrl *Controller) Active() bool {
	return ctrl.active
}

// Source returns the bound element name, stripped of the selector kind tag.
func (ctrl *Controller) Source() string {
	return kindTag.ReplaceAllString(ctrl.set.String(prefs.KeyTextSource), "")
}

// Activate starts the countdown if it is not already running. Repeated calls
// are no-ops, so a burst of shown signals schedules exactly one ticker. The
// clock is not reset here: a duration countdown keeps elapsing while the
// element is hidden, and only Restart moves the reference.
func (ctrl *Controller) Activate() {
	if ctrl.active {
		return
	}
	ctrl.active = true
	ctrl.startTicking()
	ctrl.writeTick()
}

// Deactivate stops the countdown and its ticker. The bound element keeps
// whatever text it last showed.
func (ctrl *Controller) Deactivate() {
	if !ctrl.active {
		return
	}
	ctrl.active = false
	ctrl.stopTicking()
}

// Restart deactivates, optionally moves the countdown reference to now, then
// re-evaluates the binding: the countdown comes back only when the bound
// element exists and is visible. The restart button and the global hotkey go
// through induceReset=true; settings changes pass whether a reset-inducing
// key changed. Reviving an expired countdown is the induceReset=true path.
func (ctrl *Controller) Restart(induceReset bool) {
	ctrl.stopTicking()
	ctrl.active = false
	if induceReset {
		ctrl.keeper.Reset()
	}

	bound := ctrl.Source()
	if bound == "" || !ctrl.host.IsActive(bound) {
		return
	}
	ctrl.active = true
	ctrl.startTicking()
	ctrl.writeTick()
}

// ApplySettings folds edited values into the preference set, reconfigures
// the clock and restarts against the possibly changed binding. Only a
// reset-inducing key moves the clock reference.
func (ctrl *Controller) ApplySettings(snap prefs.Snapshot) prefs.Diff {
	diff := ctrl.set.Apply(snap)
	if len(diff.Changed) == 0 {
		return diff
	}
	ctrl.configureClock()
	ctrl.Restart(diff.ResetInducing)
	return diff
}

// HandleSignal reacts to stage element events. Visibility of the bound
// element starts and stops the countdown; renames keep the binding attached.
func (ctrl *Controller) HandleSignal(sig stage.Signal) {
	bound := ctrl.Source()
	switch sig.Type {
	case stage.SignalShown:
		if sig.Name == bound {
			ctrl.Activate()
		}
	case stage.SignalHidden:
		if sig.Name == bound {
			ctrl.Deactivate()
		}
	case stage.SignalRenamed:
		if sig.PrevName == bound {
			ctrl.set.Apply(prefs.Snapshot{Text: map[string]string{
				prefs.KeyTextSource: fmt.Sprintf("%s (%s)", sig.Name, sig.Kind),
			}})
		}
	case stage.SignalDestroyed:
		if sig.Name == bound {
			ctrl.Deactivate()
		}
	}
}

func (ctrl *Controller) startTicking() {
	if ctrl.ticker != nil {
		return
	}
	ctrl.ticker = ctrl.host.Every(tickPeriod, ctrl.writeTick)
}

func (ctrl *Controller) stopTicking() {
	if ctrl.ticker == nil {
		return
	}
	ctrl.ticker.Cancel()
	ctrl.ticker = nil
}

// writeTick renders the remaining time into the bound element. With no
// element bound the countdown keeps running silently. On expiry it writes
// the end text once, plays the chime and stops ticking.
func (ctrl *Controller) writeTick() {
	bound := ctrl.Source()
	if bound == "" {
		return
	}
	if kind, ok := ctrl.host.ElementKind(bound); ok && kind != stage.KindText {
		// Text can only go into a text element.
		ctrl.Deactivate()
		return
	}

	text, remaining := ctrl.keeper.Render(
		ctrl.set.String(prefs.KeyFormat),
		ctrl.set.Bool(prefs.KeyHideZero),
		ctrl.set.Bool(prefs.KeyRoundUp),
	)
	if remaining <= 0 {
		ctrl.finish(bound)
		return
	}
	if err := ctrl.host.SetText(bound, text); err != nil {
		log.Printf("countdown: write to %q: %v", bound, err)
	}
}

func (ctrl *Controller) finish(bound string) {
	if err := ctrl.host.SetText(bound, ctrl.set.String(prefs.KeyEndText)); err != nil {
		log.Printf("countdown: write to %q: %v", bound, err)
	}
	if ctrl.set.Bool(prefs.KeyEndChime) && ctrl.chime != nil {
		ctrl.chime()
	}
	ctrl.active = false
	ctrl.stopTicking()
}

// configureClock pushes the clock type and its inputs into the clock. Parse
// failures are logged and leave the countdown at zero remaining.
func (ctrl *Controller) configureClock() {
	if ctrl.set.String(prefs.KeyClockType) == prefs.ClockTypeTarget {
		if err := ctrl.keeper.SetTarget(
			ctrl.set.String(prefs.KeyDate),
			ctrl.set.String(prefs.KeyTime),
		); err != nil {
			log.Printf("countdown: target: %v", err)
		}
		return
	}
	if err := ctrl.keeper.SetDuration(ctrl.set.String(prefs.KeyDuration)); err != nil {
		log.Printf("countdown: duration: %v", err)
	}
}
