package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlainFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		remaining float64
		want      string
	}{
		{name: "hours minutes seconds", format: "%H:%M:%S", remaining: 5400, want: "01:30:00"},
		{name: "seconds only", format: "%S", remaining: 45, want: "45"},
		{name: "zero", format: "%H:%M:%S", remaining: 0, want: "00:00:00"},
		{name: "literal tail", format: "%M min %S sec", remaining: 90, want: "01 min 30 sec"},
		{name: "days prepended", format: "%d days %H:%M:%S", remaining: 2*secondsPerDay + 3661, want: "2 days 01:01:01"},
		{name: "hours wrap at a day", format: "%H:%M:%S", remaining: secondsPerDay + 60, want: "00:01:00"},
		{name: "leading literal", format: "T-%M:%S", remaining: 61, want: "T-01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderRemaining(tt.format, tt.remaining, false, false))
		})
	}
}

func TestRenderHideZeroUnits(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		remaining float64
		want      string
	}{
		// Under a minute both hour and minute clauses drop.
		{name: "seconds alone", format: "%H:%M:%S", remaining: 45, want: "45"},
		// Under an hour only the hour clause drops.
		{name: "minutes kept", format: "%H:%M:%S", remaining: 90, want: "01:30"},
		{name: "above an hour keeps all", format: "%H:%M:%S", remaining: 3700, want: "01:01:40"},
		// The final clause survives even at zero.
		{name: "trailing minutes kept", format: "%H:%M", remaining: 45, want: "00"},
		{name: "trailing hours kept", format: "%d %H", remaining: 120, want: "00"},
		// Minutes stay when the format ends on hours.
		{name: "minutes before trailing hours", format: "%M:%H", remaining: 30, want: "00:00"},
		{name: "zero days dropped", format: "%d days %H:%M:%S", remaining: 3661, want: "01:01:01"},
		{name: "nonzero days shown", format: "%d days %H:%M:%S", remaining: secondsPerDay + 61, want: "1 days 00:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderRemaining(tt.format, tt.remaining, true, false))
		})
	}
}

func TestRenderRoundUp(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		remaining float64
		want      string
	}{
		// The constant follows the smallest displayed unit: seconds here.
		{name: "seconds displayed", format: "%M:%S", remaining: 61, want: "01:02"},
		{name: "minutes displayed", format: "%M", remaining: 61, want: "02"},
		{name: "hours displayed", format: "%H", remaining: 3601, want: "02"},
		{name: "fractional second rounds", format: "%S", remaining: 0.4, want: "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderRemaining(tt.format, tt.remaining, false, true))
		})
	}
}

func TestRenderRoundUpFollowsFilteredClauses(t *testing.T) {
	// With hiding active and 45 seconds left, %H:%M drops hours, keeps the
	// trailing minutes clause, and rounds by minutes.
	assert.Equal(t, "01", renderRemaining("%H:%M", 45, true, true))
}

func TestRenderPassthroughPlaceholders(t *testing.T) {
	// Placeholders outside the unit set go to the strftime pass verbatim.
	got := renderRemaining("%H:%M:%S %j", 3661, false, false)
	assert.Equal(t, "01:01:01 001", got)
}
