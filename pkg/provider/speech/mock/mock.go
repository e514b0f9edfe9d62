// Package mock provides a test double for the speech.Provider interface.
//
// Use Provider to feed controlled audio buffers to consumers and to verify
// which text, voice, and language each synthesis call carried.
//
// Example:
//
//	p := &mock.Provider{SynthesizeResult: []byte("mp3-bytes")}
//	audio, _ := p.Synthesize(ctx, speech.Request{Text: "Hi", Voice: v})
package mock

import (
	"context"
	"sync"

	"github.com/wandercast/wandercast/pkg/provider/speech"
)

// SynthesizeCall records a single invocation of Synthesize.
type SynthesizeCall struct {
	// Ctx is the context passed to Synthesize.
	Ctx context.Context
	// Req is the request passed to Synthesize.
	Req speech.Request
}

// Provider is a mock implementation of speech.Provider.
// Zero values for response fields cause methods to return zero values and nil
// errors. Set Err fields to inject failures.
type Provider struct {
	mu sync.Mutex

	// --- Configurable responses ---

	// SynthesizeResult is returned from every Synthesize call when
	// SynthesizeFunc is nil.
	SynthesizeResult []byte

	// SynthesizeErr, if non-nil, is returned from Synthesize.
	SynthesizeErr error

	// SynthesizeFunc, if non-nil, computes the result per call. It overrides
	// SynthesizeResult and SynthesizeErr, and receives the 1-based call number.
	SynthesizeFunc func(call int, req speech.Request) ([]byte, error)

	// ListVoicesResult is returned by ListVoices.
	ListVoicesResult []speech.VoiceProfile

	// ListVoicesErr, if non-nil, is returned as the error from ListVoices.
	ListVoicesErr error

	// --- Call records ---

	// SynthesizeCalls records every call to Synthesize in order.
	SynthesizeCalls []SynthesizeCall
}

// Synthesize records the call and returns the configured result.
func (p *Provider) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	p.mu.Lock()
	p.SynthesizeCalls = append(p.SynthesizeCalls, SynthesizeCall{Ctx: ctx, Req: req})
	n := len(p.SynthesizeCalls)
	fn := p.SynthesizeFunc
	result, err := p.SynthesizeResult, p.SynthesizeErr
	p.mu.Unlock()

	if fn != nil {
		return fn(n, req)
	}
	return result, err
}

// ListVoices returns ListVoicesResult, ListVoicesErr.
func (p *Provider) ListVoices(context.Context) ([]speech.VoiceProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ListVoicesResult, p.ListVoicesErr
}

// Calls returns a copy of the recorded Synthesize calls. Thread-safe.
func (p *Provider) Calls() []SynthesizeCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	calls := make([]SynthesizeCall, len(p.SynthesizeCalls))
	copy(calls, p.SynthesizeCalls)
	return calls
}

// Reset clears all recorded calls. Thread-safe.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.SynthesizeCalls = nil
}

// Ensure Provider implements speech.Provider at compile time.
var _ speech.Provider = (*Provider)(nil)
