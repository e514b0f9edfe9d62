// Package script defines the Provider interface for podcast script
// generation backends.
//
// A script provider wraps a remote or local language model API (e.g., OpenAI
// GPT, Anthropic Claude, or a local Ollama instance) and produces a free-text
// two-host dialogue transcript for a travel destination. The transcript uses
// "Alex:" and "Sam:" line prefixes so the downstream segmenter can attribute
// each turn to a host.
//
// Implementations must be safe for concurrent use.
package script

import "context"

// Provider is the abstraction over any script generation backend.
type Provider interface {
	// GenerateScript produces a dialogue transcript about location in the
	// requested language. Exactly one upstream call is made per invocation;
	// failures are returned as-is for the caller to surface. The returned
	// transcript is raw model output — callers must not assume well-formed
	// speaker prefixes on every line.
	GenerateScript(ctx context.Context, location, language string) (string, error)
}
