package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidProviderNames lists known provider names per provider kind.
// Used by [Validate] to warn about unrecognised provider names.
var ValidProviderNames = map[string][]string{
	"script": {"openai", "anthropic", "gemini", "ollama", "deepseek", "mistral", "groq"},
	"speech": {"elevenlabs"},
}

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, applies defaults, and validates
// the result. Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields with their documented defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":3000"
	}
	if cfg.Server.AudioDir == "" {
		cfg.Server.AudioDir = "audio"
	}
	if cfg.Podcast.DefaultLanguage == "" {
		cfg.Podcast.DefaultLanguage = "en"
	}
	if cfg.Podcast.DefaultVoice == "" {
		cfg.Podcast.DefaultVoice = VoiceFemale
	}
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	// Server
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if tls := cfg.Server.TLS; tls != nil {
		if tls.CertFile == "" || tls.KeyFile == "" {
			errs = append(errs, errors.New("server.tls requires both cert_file and key_file"))
		}
	}

	// Provider name validation — warn for unknown provider names.
	validateProviderName("script", cfg.Providers.Script.Name)
	validateProviderName("speech", cfg.Providers.Speech.Name)

	// Fallback chains
	errs = append(errs, validateFallbacks("script", cfg.Providers.Script)...)
	errs = append(errs, validateFallbacks("speech", cfg.Providers.Speech)...)

	// Provider availability warnings
	if cfg.Providers.Script.Name == "" {
		slog.Warn("no script provider configured; podcast generation will be unavailable")
	}
	if cfg.Providers.Speech.Name == "" {
		slog.Warn("no speech provider configured; podcast generation will be unavailable")
	}

	// Podcast
	if !cfg.Podcast.DefaultVoice.IsValid() {
		errs = append(errs, fmt.Errorf("podcast.default_voice %q is invalid; valid values: female, male", cfg.Podcast.DefaultVoice))
	}
	if cfg.Podcast.MaxConcurrentSynthesis < 0 {
		errs = append(errs, fmt.Errorf("podcast.max_concurrent_synthesis %d must not be negative", cfg.Podcast.MaxConcurrentSynthesis))
	}
	seen := make(map[string]int, len(cfg.Podcast.Locations))
	for i, loc := range cfg.Podcast.Locations {
		if strings.TrimSpace(loc) == "" {
			errs = append(errs, fmt.Errorf("podcast.locations[%d] is empty", i))
			continue
		}
		if prev, ok := seen[loc]; ok {
			errs = append(errs, fmt.Errorf("podcast.locations[%d] %q is a duplicate of podcast.locations[%d]", i, loc, prev))
		}
		seen[loc] = i
	}

	return errors.Join(errs...)
}

// validateFallbacks checks the fallback chain of a provider entry. Fallbacks
// need a primary to fall back from, a name each, and may not nest further
// fallbacks.
func validateFallbacks(kind string, entry ProviderEntry) []error {
	if len(entry.Fallbacks) == 0 {
		return nil
	}
	var errs []error
	if entry.Name == "" {
		errs = append(errs, fmt.Errorf("providers.%s.fallbacks requires a primary provider name", kind))
	}
	for i, fb := range entry.Fallbacks {
		if fb.Name == "" {
			errs = append(errs, fmt.Errorf("providers.%s.fallbacks[%d] has no name", kind, i))
			continue
		}
		if len(fb.Fallbacks) > 0 {
			errs = append(errs, fmt.Errorf("providers.%s.fallbacks[%d] %q must not nest fallbacks", kind, i, fb.Name))
		}
		validateProviderName(kind, fb.Name)
	}
	return errs
}

// validateProviderName logs a warning if name is non-empty and not found in
// the [ValidProviderNames] list for the given kind.
func validateProviderName(kind, name string) {
	if name == "" {
		return
	}
	known, ok := ValidProviderNames[kind]
	if !ok {
		return
	}
	if slices.Contains(known, name) {
		return
	}
	slog.Warn("unknown provider name — may be a typo or third-party provider",
		"kind", kind,
		"name", name,
		"known", known,
	)
}
