// Package speech defines the Provider interface for speech synthesis backends.
//
// A speech provider wraps a remote Text-to-Speech service (e.g., ElevenLabs)
// and renders one utterance per call, returning the encoded audio as a single
// byte slice. There is no streaming: the podcast pipeline synthesises whole
// dialogue segments and concatenates the resulting buffers, so a
// request/response shape matches the workload exactly.
//
// Implementations must be safe for concurrent use. Multiple podcast
// generations may be in flight at once, each issuing its own synthesis calls.
package speech

import "context"

// Request carries everything a provider needs to render one utterance.
type Request struct {
	// Text is the utterance to synthesise. Must be non-empty.
	Text string

	// Voice selects the voice used to render the utterance.
	Voice VoiceProfile

	// Language is the BCP-47-ish language code of the text (e.g., "en",
	// "es"). Providers may use it to pick a model variant; "" means the
	// provider default (English).
	Language string
}

// Provider is the abstraction over any speech synthesis backend.
//
// Implementations must be safe for concurrent use and must propagate context
// cancellation promptly.
type Provider interface {
	// Synthesize renders req.Text with req.Voice and returns the encoded
	// audio bytes (format is provider-specific; ElevenLabs returns MP3).
	// Exactly one upstream call is made per invocation — no batching, no
	// chunking, no internal retry. A provider failure is returned as-is for
	// the caller to surface.
	Synthesize(ctx context.Context, req Request) ([]byte, error)

	// ListVoices returns the voice profiles available from this provider.
	// Used for diagnostics and readiness probes; the list reflects the
	// provider's current catalogue and may change between calls.
	ListVoices(ctx context.Context) ([]VoiceProfile, error)
}
