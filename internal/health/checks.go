package health

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wandercast/wandercast/pkg/provider/speech"
)

// ScriptConfigured returns a checker that passes when a script provider has
// been wired. It performs no network call: script generation is billed per
// token, so readiness only asserts the provider exists.
func ScriptConfigured(configured func() bool) Checker {
	return Checker{
		Name: "script",
		Check: func(context.Context) error {
			if !configured() {
				return errors.New("script provider not configured")
			}
			return nil
		},
	}
}

// SpeechReachable returns a checker that probes the speech provider by
// listing its voices. A failure means synthesis calls would fail too.
func SpeechReachable(p speech.Provider) Checker {
	return Checker{
		Name: "speech",
		Check: func(ctx context.Context) error {
			if p == nil {
				return errors.New("speech provider not configured")
			}
			if _, err := p.ListVoices(ctx); err != nil {
				return fmt.Errorf("list voices: %w", err)
			}
			return nil
		},
	}
}

// AudioDirWritable returns a checker that verifies episodes can actually be
// written: it creates the directory if missing and writes and removes a
// probe file.
func AudioDirWritable(dir string) Checker {
	return Checker{
		Name: "audio_dir",
		Check: func(context.Context) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %q: %w", dir, err)
			}
			probe := filepath.Join(dir, ".healthcheck")
			if err := os.WriteFile(probe, nil, 0o644); err != nil {
				return fmt.Errorf("write probe in %q: %w", dir, err)
			}
			return os.Remove(probe)
		},
	}
}
