package resilience

import (
	"context"

	"github.com/wandercast/wandercast/pkg/provider/speech"
)

// SpeechFallback implements [speech.Provider] with automatic failover across
// multiple synthesis backends. Each backend has its own circuit breaker; when
// the primary fails or its breaker is open, the next healthy fallback is
// tried.
//
// Voice profiles are provider-specific, so failover only makes sense between
// backends that resolve the same voice IDs (e.g., two ElevenLabs accounts or
// an ElevenLabs-compatible proxy).
type SpeechFallback struct {
	group *FallbackGroup[speech.Provider]
}

// Compile-time interface assertion.
var _ speech.Provider = (*SpeechFallback)(nil)

// NewSpeechFallback creates a [SpeechFallback] with primary as the preferred
// backend.
func NewSpeechFallback(primary speech.Provider, primaryName string, cfg FallbackConfig) *SpeechFallback {
	return &SpeechFallback{
		group: NewFallbackGroup(primary, primaryName, cfg),
	}
}

// AddFallback registers an additional speech provider as a fallback.
func (f *SpeechFallback) AddFallback(name string, provider speech.Provider) {
	f.group.AddFallback(name, provider)
}

// Synthesize renders req with the first healthy provider. If the primary
// fails, subsequent fallbacks are tried in registration order.
func (f *SpeechFallback) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	return ExecuteWithResult(f.group, func(p speech.Provider) ([]byte, error) {
		return p.Synthesize(ctx, req)
	})
}

// ListVoices returns the voice catalogue of the first healthy provider.
func (f *SpeechFallback) ListVoices(ctx context.Context) ([]speech.VoiceProfile, error) {
	return ExecuteWithResult(f.group, func(p speech.Provider) ([]speech.VoiceProfile, error) {
		return p.ListVoices(ctx)
	})
}
