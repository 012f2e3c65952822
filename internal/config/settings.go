package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yoinktube/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir    = "output_dir"
	KeyFormat       = "format"
	KeyQuality      = "quality"
	KeyAudioBitrate = "audio_bitrate"
	KeyAudioOnly    = "audio_only"
)

// Stored textual forms of the audio-only flag
const (
	StoredTrue  = "true"
	StoredFalse = "false"
)

// Settings loads and saves the preferences record on a Fyne preference store.
// The store is namespaced by the application ID.
type Settings struct {
	store fyne.Preferences
}

// NewSettings creates a new settings manager
func NewSettings(store fyne.Preferences) *Settings {
	return &Settings{store: store}
}

// Load reads every field independently, substituting its default when absent.
// The audio-only flag is true only when the stored text is exactly "true".
func (s *Settings) Load() model.Preferences {
	defaults := model.DefaultPreferences()

	return model.Preferences{
		OutputDir:    s.store.StringWithFallback(KeyOutputDir, defaults.OutputDir),
		Format:       model.Container(s.store.StringWithFallback(KeyFormat, string(defaults.Format))),
		Quality:      model.VideoQuality(s.store.StringWithFallback(KeyQuality, string(defaults.Quality))),
		AudioBitrate: model.AudioBitrate(s.store.StringWithFallback(KeyAudioBitrate, string(defaults.AudioBitrate))),
		AudioOnly:    s.store.StringWithFallback(KeyAudioOnly, StoredFalse) == StoredTrue,
	}
}

// Save overwrites every field of the stored record
func (s *Settings) Save(prefs model.Preferences) {
	s.store.SetString(KeyOutputDir, prefs.OutputDir)
	s.store.SetString(KeyFormat, string(prefs.Format))
	s.store.SetString(KeyQuality, string(prefs.Quality))
	s.store.SetString(KeyAudioBitrate, string(prefs.AudioBitrate))
	s.store.SetString(KeyAudioOnly, formatBool(prefs.AudioOnly))
}

func formatBool(v bool) string {
	if v {
		return StoredTrue
	}
	return StoredFalse
}
