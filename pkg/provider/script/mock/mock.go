// Package mock provides a test double for the script.Provider interface.
//
// Example:
//
//	p := &mock.Provider{GenerateResult: "Alex: Hello!\nSam: Hi there."}
//	transcript, _ := p.GenerateScript(ctx, "Paris, France", "en")
package mock

import (
	"context"
	"sync"

	"github.com/wandercast/wandercast/pkg/provider/script"
)

// GenerateCall records a single invocation of GenerateScript.
type GenerateCall struct {
	// Ctx is the context passed to GenerateScript.
	Ctx context.Context
	// Location is the location passed to GenerateScript.
	Location string
	// Language is the language passed to GenerateScript.
	Language string
}

// Provider is a mock implementation of script.Provider.
type Provider struct {
	mu sync.Mutex

	// GenerateResult is returned from every GenerateScript call.
	GenerateResult string

	// GenerateErr, if non-nil, is returned from GenerateScript.
	GenerateErr error

	// GenerateCalls records every call to GenerateScript in order.
	GenerateCalls []GenerateCall
}

// GenerateScript records the call and returns GenerateResult, GenerateErr.
func (p *Provider) GenerateScript(ctx context.Context, location, language string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.GenerateCalls = append(p.GenerateCalls, GenerateCall{Ctx: ctx, Location: location, Language: language})
	return p.GenerateResult, p.GenerateErr
}

// Reset clears all recorded calls. Thread-safe.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.GenerateCalls = nil
}

// Ensure Provider implements script.Provider at compile time.
var _ script.Provider = (*Provider)(nil)
