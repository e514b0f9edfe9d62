package config_test

import (
	"testing"

	"github.com/wandercast/wandercast/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			ListenAddr: ":3000",
			LogLevel:   config.LogInfo,
		},
		Podcast: config.PodcastConfig{
			DefaultLanguage: "en",
			DefaultVoice:    config.VoiceFemale,
			Locations:       []string{"Tokyo, Japan", "Paris, France"},
		},
	}
}

func TestDiff_NoChanges(t *testing.T) {
	t.Parallel()
	old, new := baseConfig(), baseConfig()

	d := config.Diff(old, new)
	if d.Any() {
		t.Errorf("Diff of identical configs reported changes: %+v", d)
	}
}

func TestDiff_LogLevel(t *testing.T) {
	t.Parallel()
	old, new := baseConfig(), baseConfig()
	new.Server.LogLevel = config.LogDebug

	d := config.Diff(old, new)
	if !d.LogLevelChanged {
		t.Fatal("LogLevelChanged = false, want true")
	}
	if d.NewLogLevel != config.LogDebug {
		t.Errorf("NewLogLevel = %q, want debug", d.NewLogLevel)
	}
	if d.LocationsChanged || d.DefaultsChanged {
		t.Errorf("unrelated changes reported: %+v", d)
	}
}

func TestDiff_Locations(t *testing.T) {
	t.Parallel()
	old, new := baseConfig(), baseConfig()
	new.Podcast.Locations = append(new.Podcast.Locations, "Cairo, Egypt")

	d := config.Diff(old, new)
	if !d.LocationsChanged {
		t.Fatal("LocationsChanged = false, want true")
	}
	if len(d.NewLocations) != 3 {
		t.Errorf("NewLocations = %v", d.NewLocations)
	}
}

func TestDiff_LocationOrderMatters(t *testing.T) {
	t.Parallel()
	old, new := baseConfig(), baseConfig()
	new.Podcast.Locations = []string{"Paris, France", "Tokyo, Japan"}

	if d := config.Diff(old, new); !d.LocationsChanged {
		t.Error("reordered locations should count as a change")
	}
}

func TestDiff_Defaults(t *testing.T) {
	t.Parallel()
	old, new := baseConfig(), baseConfig()
	new.Podcast.DefaultLanguage = "fr"
	new.Podcast.DefaultVoice = config.VoiceMale

	d := config.Diff(old, new)
	if !d.DefaultsChanged {
		t.Fatal("DefaultsChanged = false, want true")
	}
	if d.NewDefaultLanguage != "fr" || d.NewDefaultVoice != config.VoiceMale {
		t.Errorf("new defaults = %q/%q", d.NewDefaultLanguage, d.NewDefaultVoice)
	}
}

func TestDiff_ProviderChangesIgnored(t *testing.T) {
	t.Parallel()
	// Provider swaps need a restart, so the hot-reload diff must not
	// report them.
	old, new := baseConfig(), baseConfig()
	new.Providers.Script.Name = "anthropic"
	new.Providers.Speech.APIKey = "rotated"

	if d := config.Diff(old, new); d.Any() {
		t.Errorf("provider-only change reported as hot-reloadable: %+v", d)
	}
}
