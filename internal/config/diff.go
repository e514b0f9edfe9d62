package config

import "slices"

// ConfigDiff describes what changed between two configs.
// Only fields that can be safely hot-reloaded are tracked.
type ConfigDiff struct {
	LogLevelChanged bool
	NewLogLevel     LogLevel

	// LocationsChanged is true when the suggested-location list differs.
	LocationsChanged bool
	NewLocations     []string

	// DefaultsChanged is true when default_language or default_voice differ.
	DefaultsChanged    bool
	NewDefaultLanguage string
	NewDefaultVoice    VoicePreference
}

// Any reports whether the diff carries at least one change.
func (d ConfigDiff) Any() bool {
	return d.LogLevelChanged || d.LocationsChanged || d.DefaultsChanged
}

// Diff compares old and new configs and returns what changed.
// Only tracks changes that are safe to apply without restart: provider and
// server settings require a restart and are deliberately ignored here.
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.Server.LogLevel != new.Server.LogLevel {
		d.LogLevelChanged = true
		d.NewLogLevel = new.Server.LogLevel
	}

	if !slices.Equal(old.Podcast.Locations, new.Podcast.Locations) {
		d.LocationsChanged = true
		d.NewLocations = new.Podcast.Locations
	}

	if old.Podcast.DefaultLanguage != new.Podcast.DefaultLanguage ||
		old.Podcast.DefaultVoice != new.Podcast.DefaultVoice {
		d.DefaultsChanged = true
		d.NewDefaultLanguage = new.Podcast.DefaultLanguage
		d.NewDefaultVoice = new.Podcast.DefaultVoice
	}

	return d
}
