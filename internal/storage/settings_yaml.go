// Package storage persists countdown preferences as a YAML file in the user
// config directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"livecount/internal/prefs"
)

const settingsFileName = "settings.yaml"

// Pointer fields so keys absent from the file keep their defaults.
type yamlSettings struct {
	ClockType     *string `yaml:"clock_type"`
	Format        *string `yaml:"format"`
	HideZeroUnits *bool   `yaml:"hide_zero_units"`
	RoundUp       *bool   `yaml:"round_up"`
	Duration      *string `yaml:"duration"`
	Date          *string `yaml:"date"`
	Time          *string `yaml:"time"`
	EndText       *string `yaml:"end_text"`
	EndChime      *bool   `yaml:"end_chime"`
	Opacity       *string `yaml:"overlay_opacity"`
	TextSource    *string `yaml:"text_source"`
	ResetHotkey   *string `yaml:"reset_hotkey"`
}

// DefaultPath resolves the settings file location for the app.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// Load reads saved preferences and merges them over the defaults. A missing
// file returns the defaults unchanged. The second result is the stored
// restart hotkey chord, empty when none was saved.
func Load(path string, defaults prefs.Snapshot) (prefs.Snapshot, string, error) {
	snap := defaults.Clone()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return snap, "", nil
		}
		return snap, "", fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return snap, "", fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(snap, fileData)
	hotkey := ""
	if fileData.ResetHotkey != nil {
		hotkey = *fileData.ResetHotkey
	}
	return snap, hotkey, nil
}

// Save writes preferences and the restart hotkey chord to the settings file,
// creating the config directory as needed.
func Save(path string, snap prefs.Snapshot, hotkey string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		ClockType:     textField(snap, prefs.KeyClockType),
		Format:        textField(snap, prefs.KeyFormat),
		HideZeroUnits: flagField(snap, prefs.KeyHideZero),
		RoundUp:       flagField(snap, prefs.KeyRoundUp),
		Duration:      textField(snap, prefs.KeyDuration),
		Date:          textField(snap, prefs.KeyDate),
		Time:          textField(snap, prefs.KeyTime),
		EndText:       textField(snap, prefs.KeyEndText),
		EndChime:      flagField(snap, prefs.KeyEndChime),
		Opacity:       textField(snap, prefs.KeyOpacity),
		TextSource:    textField(snap, prefs.KeyTextSource),
		ResetHotkey:   &hotkey,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func textField(snap prefs.Snapshot, key string) *string {
	if value, ok := snap.Text[key]; ok {
		return &value
	}
	return nil
}

func flagField(snap prefs.Snapshot, key string) *bool {
	if value, ok := snap.Flags[key]; ok {
		return &value
	}
	return nil
}

func applyYamlSettings(snap prefs.Snapshot, fileData yamlSettings) {
	setText := func(key string, value *string) {
		if value != nil {
			snap.Text[key] = *value
		}
	}
	setFlag := func(key string, value *bool) {
		if value != nil {
			snap.Flags[key] = *value
		}
	}

	setText(prefs.KeyClockType, fileData.ClockType)
	setText(prefs.KeyFormat, fileData.Format)
	setFlag(prefs.KeyHideZero, fileData.HideZeroUnits)
	setFlag(prefs.KeyRoundUp, fileData.RoundUp)
	setText(prefs.KeyDuration, fileData.Duration)
	setText(prefs.KeyDate, fileData.Date)
	setText(prefs.KeyTime, fileData.Time)
	setText(prefs.KeyEndText, fileData.EndText)
	setFlag(prefs.KeyEndChime, fileData.EndChime)
	setText(prefs.KeyOpacity, fileData.Opacity)
	setText(prefs.KeyTextSource, fileData.TextSource)
}
