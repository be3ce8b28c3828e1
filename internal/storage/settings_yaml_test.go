package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livecount/internal/prefs"
)

func defaultSnapshot() prefs.Snapshot {
	return prefs.DefaultSet(func() []string { return nil }).Snapshot()
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	snap, hotkey, err := Load(path, defaultSnapshot())
	require.NoError(t, err)
	assert.Empty(t, hotkey)
	assert.Equal(t, defaultSnapshot(), snap)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	edited := defaultSnapshot()
	edited.Text[prefs.KeyClockType] = prefs.ClockTypeTarget
	edited.Text[prefs.KeyDuration] = "5:00"
	edited.Text[prefs.KeyEndText] = "We are live"
	edited.Text[prefs.KeyOpacity] = "0.5"
	edited.Flags[prefs.KeyRoundUp] = true
	edited.Flags[prefs.KeyEndChime] = true

	require.NoError(t, Save(path, edited, "Control+Shift+R"))

	snap, hotkey, err := Load(path, defaultSnapshot())
	require.NoError(t, err)
	assert.Equal(t, edited, snap)
	assert.Equal(t, "Control+Shift+R", hotkey)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: \"2:30\"\nround_up: true\n"), 0o644))

	snap, _, err := Load(path, defaultSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "2:30", snap.Text[prefs.KeyDuration])
	assert.True(t, snap.Flags[prefs.KeyRoundUp])
	assert.Equal(t, "%H:%M:%S", snap.Text[prefs.KeyFormat])
	assert.Equal(t, "Live Now!", snap.Text[prefs.KeyEndText])
}

func TestLoadEmptyTextSourceIsPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	edited := defaultSnapshot()
	edited.Text[prefs.KeyTextSource] = ""
	require.NoError(t, Save(path, edited, ""))

	withBinding := defaultSnapshot()
	withBinding.Text[prefs.KeyTextSource] = "Countdown (text)"
	snap, _, err := Load(path, withBinding)
	require.NoError(t, err)
	assert.Empty(t, snap.Text[prefs.KeyTextSource])
}

func TestLoadCorruptFileFailsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	snap, _, err := Load(path, defaultSnapshot())
	assert.Error(t, err)
	assert.Equal(t, defaultSnapshot(), snap)
}
