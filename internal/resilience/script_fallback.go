package resilience

import (
	"context"

	"github.com/wandercast/wandercast/pkg/provider/script"
)

// ScriptFallback implements [script.Provider] with automatic failover across
// multiple script generation backends. Each backend has its own circuit
// breaker; when the primary fails or its breaker is open, the next healthy
// fallback is tried.
type ScriptFallback struct {
	group *FallbackGroup[script.Provider]
}

// Compile-time interface assertion.
var _ script.Provider = (*ScriptFallback)(nil)

// NewScriptFallback creates a [ScriptFallback] with primary as the preferred
// backend.
func NewScriptFallback(primary script.Provider, primaryName string, cfg FallbackConfig) *ScriptFallback {
	return &ScriptFallback{
		group: NewFallbackGroup(primary, primaryName, cfg),
	}
}

// AddFallback registers an additional script provider as a fallback.
func (f *ScriptFallback) AddFallback(name string, provider script.Provider) {
	f.group.AddFallback(name, provider)
}

// GenerateScript asks the first healthy provider for a transcript. If the
// primary fails, subsequent fallbacks are tried in registration order.
func (f *ScriptFallback) GenerateScript(ctx context.Context, location, language string) (string, error) {
	return ExecuteWithResult(f.group, func(p script.Provider) (string, error) {
		return p.GenerateScript(ctx, location, language)
	})
}
