package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualNow is a settable time source for deterministic clock tests.
type manualNow struct {
	current time.Time
}

func (m *manualNow) now() time.Time {
	return m.current
}

func (m *manualNow) advance(d time.Duration) {
	m.current = m.current.Add(d)
}

func newTestClock(t *testing.T) (*Clock, *manualNow) {
	t.Helper()
	source := &manualNow{current: time.Date(2024, time.March, 5, 8, 0, 0, 0, time.Local)}
	return NewWithNow(source.now), source
}

func TestDurationRemainingMatchesParsedTotal(t *testing.T) {
	specs := map[string]float64{
		"1000":    60000,
		"1:30:00": 5400,
		"0:0:45":  45,
		"2:30":    150,
	}

	for spec, want := range specs {
		keeper, _ := newTestClock(t)
		require.NoError(t, keeper.SetDuration(spec))
		keeper.Reset()
		assert.InDelta(t, want, keeper.Remaining(), 1e-6, "spec %q", spec)
	}
}

func TestDurationRemainingNeverNegative(t *testing.T) {
	keeper, source := newTestClock(t)
	require.NoError(t, keeper.SetDuration("0:0:10"))
	keeper.Reset()

	source.advance(11 * time.Second)
	assert.Equal(t, 0.0, keeper.Remaining())

	source.advance(time.Hour)
	assert.Equal(t, 0.0, keeper.Remaining())
}

func TestDurationCountsFromReference(t *testing.T) {
	keeper, source := newTestClock(t)
	require.NoError(t, keeper.SetDuration("0:1:40"))
	keeper.Reset()

	source.advance(40 * time.Second)
	assert.InDelta(t, 60, keeper.Remaining(), 1e-6)

	// A reset restarts the span from the present.
	keeper.Reset()
	assert.InDelta(t, 100, keeper.Remaining(), 1e-6)
}

func TestTargetRemaining(t *testing.T) {
	keeper, source := newTestClock(t)
	require.NoError(t, keeper.SetTarget("TODAY", "11:00:00 pm"))
	assert.Equal(t, ModeTarget, keeper.Mode())

	// 08:00 -> 23:00 is fifteen hours out.
	assert.InDelta(t, 15*3600, keeper.Remaining(), 1e-6)

	source.advance(16 * time.Hour)
	assert.Equal(t, 0.0, keeper.Remaining(), "passed target reads zero")
}

func TestTargetMidnightConventions(t *testing.T) {
	keeper, _ := newTestClock(t)
	require.NoError(t, keeper.SetTarget("TOMORROW", "12:00:00 am"))

	// 08:00 today to 00:00 tomorrow.
	assert.InDelta(t, 16*3600, keeper.Remaining(), 1e-6)
}

func TestMalformedTargetReadsZero(t *testing.T) {
	keeper, _ := newTestClock(t)
	err := keeper.SetTarget("never", "1:00")
	require.Error(t, err)
	assert.Equal(t, ModeTarget, keeper.Mode())
	assert.Equal(t, 0.0, keeper.Remaining())
}

func TestMalformedDurationReadsZero(t *testing.T) {
	keeper, _ := newTestClock(t)
	err := keeper.SetDuration("ten minutes")
	require.Error(t, err)
	keeper.Reset()
	assert.Equal(t, 0.0, keeper.Remaining())
}

func TestResetDoesNotAffectTargetMode(t *testing.T) {
	keeper, source := newTestClock(t)
	require.NoError(t, keeper.SetTarget("TODAY", "9:00"))

	source.advance(30 * time.Minute)
	keeper.Reset()
	assert.InDelta(t, 30*60, keeper.Remaining(), 1e-6)
}
