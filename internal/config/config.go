// Package config provides the configuration schema, loader, file watcher, and
// provider registry for the Wandercast podcast generator.
package config

// LogLevel controls log verbosity for the Wandercast server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// VoicePreference selects the host voice pair offered as a generation default.
type VoicePreference string

const (
	// VoiceFemale pairs the Alex and Sarah voices.
	VoiceFemale VoicePreference = "female"

	// VoiceMale pairs the Sam and James voices.
	VoiceMale VoicePreference = "male"
)

// IsValid reports whether v is a recognised voice preference.
func (v VoicePreference) IsValid() bool {
	return v == VoiceFemale || v == VoiceMale
}

// Config is the root configuration structure for Wandercast.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Podcast   PodcastConfig   `yaml:"podcast"`
}

// ServerConfig holds network, logging, and file-serving settings for the
// Wandercast server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":3000").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// TLS configures TLS for the server. When nil, the server runs plain HTTP.
	TLS *TLSConfig `yaml:"tls"`

	// AudioDir is the directory generated episodes are written to and served
	// from under /audio/. Defaults to "audio" when empty.
	AudioDir string `yaml:"audio_dir"`

	// PublicDir is an optional directory of static frontend assets served at
	// the site root. When empty, no frontend is served.
	PublicDir string `yaml:"public_dir"`
}

// TLSConfig holds TLS certificate paths for enabling HTTPS.
type TLSConfig struct {
	// CertFile is the path to the PEM-encoded TLS certificate.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the path to the PEM-encoded TLS private key.
	KeyFile string `yaml:"key_file"`
}

// ProvidersConfig declares which provider implementation to use for each
// pipeline stage. Each field selects a named provider registered in the [Registry].
type ProvidersConfig struct {
	// Script generates the dialogue transcript for an episode.
	Script ProviderEntry `yaml:"script"`

	// Speech turns dialogue segments into audio.
	Speech ProviderEntry `yaml:"speech"`
}

// ProviderEntry is the common configuration block shared by all provider types.
// The Name field is used to look up the constructor in the [Registry].
type ProviderEntry struct {
	// Name selects the registered provider implementation (e.g., "openai", "elevenlabs").
	Name string `yaml:"name"`

	// APIKey is the authentication key for the provider's API if any.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the provider's default API endpoint.
	// Leave empty to use the provider's built-in default.
	BaseURL string `yaml:"base_url"`

	// Model selects a specific model within the provider (e.g., "gpt-3.5-turbo").
	Model string `yaml:"model"`

	// Options holds provider-specific configuration values not covered by the
	// standard fields above. Values may be strings, numbers, booleans, or nested maps.
	Options map[string]any `yaml:"options"`

	// Fallbacks lists additional backends tried in order when this provider
	// fails or its circuit breaker is open. Fallback entries may not nest
	// further fallbacks.
	Fallbacks []ProviderEntry `yaml:"fallbacks"`
}

// PodcastConfig holds generation defaults and the suggested-location list.
type PodcastConfig struct {
	// DefaultLanguage is the ISO 639-1 code used when a request names none.
	// Defaults to "en".
	DefaultLanguage string `yaml:"default_language"`

	// DefaultVoice is the host gender preference used when a request names
	// none. Defaults to "female".
	DefaultVoice VoicePreference `yaml:"default_voice"`

	// MaxConcurrentSynthesis bounds parallel synthesis calls per generation.
	// 0 or 1 keeps synthesis strictly sequential.
	MaxConcurrentSynthesis int `yaml:"max_concurrent_synthesis"`

	// Locations overrides the built-in suggested destination list served by
	// the locations endpoint. Empty keeps the built-in list.
	Locations []string `yaml:"locations"`
}
