package hotkey

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParseRoundTrip(t *testing.T) {
	chords := []Binding{
		Default(),
		{Key: fyne.KeyF5, Modifier: 0},
		{Key: fyne.KeyR, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift},
	}
	for _, chord := range chords {
		parsed, err := Parse(chord.String())
		require.NoError(t, err)
		assert.Equal(t, chord, parsed)
	}
}

func TestParseChords(t *testing.T) {
	parsed, err := Parse("Control+Shift+R")
	require.NoError(t, err)
	assert.Equal(t, fyne.KeyR, parsed.Key)
	assert.Equal(t, fyne.KeyModifierControl|fyne.KeyModifierShift, parsed.Modifier)
}

func TestParseRejectsBadChords(t *testing.T) {
	for _, chord := range []string{"", "Control+", "Ctrl+R"} {
		_, err := Parse(chord)
		assert.Error(t, err, chord)
	}
}

func TestDefaultChordText(t *testing.T) {
	assert.Equal(t, "Control+R", Default().String())
}
