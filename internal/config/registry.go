package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/wandercast/wandercast/pkg/provider/script"
	"github.com/wandercast/wandercast/pkg/provider/speech"
)

// ErrProviderNotRegistered is returned by Create* methods when no factory has
// been registered under the requested provider name.
var ErrProviderNotRegistered = errors.New("config: provider not registered")

// Registry maps provider names to their constructor functions for each
// provider type. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	script map[string]func(ProviderEntry) (script.Provider, error)
	speech map[string]func(ProviderEntry) (speech.Provider, error)
}

// NewRegistry returns an empty, ready-to-use [Registry].
func NewRegistry() *Registry {
	return &Registry{
		script: make(map[string]func(ProviderEntry) (script.Provider, error)),
		speech: make(map[string]func(ProviderEntry) (speech.Provider, error)),
	}
}

// RegisterScript registers a script provider factory under name.
// Subsequent calls with the same name overwrite the previous registration.
func (r *Registry) RegisterScript(name string, factory func(ProviderEntry) (script.Provider, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.script[name] = factory
}

// RegisterSpeech registers a speech provider factory under name.
func (r *Registry) RegisterSpeech(name string, factory func(ProviderEntry) (speech.Provider, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.speech[name] = factory
}

// CreateScript instantiates a script provider using the factory registered under entry.Name.
// Returns [ErrProviderNotRegistered] if no factory has been registered for that name.
func (r *Registry) CreateScript(entry ProviderEntry) (script.Provider, error) {
	r.mu.RLock()
	factory, ok := r.script[entry.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: script/%q", ErrProviderNotRegistered, entry.Name)
	}
	return factory(entry)
}

// CreateSpeech instantiates a speech provider using the factory registered under entry.Name.
func (r *Registry) CreateSpeech(entry ProviderEntry) (speech.Provider, error) {
	r.mu.RLock()
	factory, ok := r.speech[entry.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: speech/%q", ErrProviderNotRegistered, entry.Name)
	}
	return factory(entry)
}
