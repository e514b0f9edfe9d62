// Package elevenlabs provides an ElevenLabs-backed speech provider using the
// ElevenLabs REST text-to-speech API. It implements the speech.Provider
// interface.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wandercast/wandercast/pkg/provider/speech"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io/v1"

	// monolingualModel is used for English text, multilingualModel for
	// everything else.
	monolingualModel  = "eleven_monolingual_v1"
	multilingualModel = "eleven_multilingual_v2"
)

// Option is a functional option for configuring the ElevenLabs Provider.
type Option func(*Provider)

// WithModel pins the ElevenLabs model ID for every request, overriding the
// per-language selection (e.g., "eleven_turbo_v2").
func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithBaseURL overrides the default API base URL. Useful for tests and proxies.
func WithBaseURL(url string) Option {
	return func(p *Provider) {
		p.baseURL = url
	}
}

// WithTimeout sets a per-request HTTP timeout. Zero means no timeout, which
// matches the upstream default.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		p.httpClient.Timeout = d
	}
}

// Provider implements speech.Provider backed by the ElevenLabs REST API.
type Provider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// New creates a new ElevenLabs Provider. apiKey must be non-empty.
func New(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, errors.New("elevenlabs: apiKey must not be empty")
	}
	p := &Provider{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// ---- Request types ----

// ttsRequest is the JSON payload for POST /text-to-speech/{voice_id}.
type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// voiceSettings mirrors the ElevenLabs voice_settings object.
type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize renders req.Text with the given voice via one POST to
// /text-to-speech/{voice_id} and returns the MP3 bytes.
func (p *Provider) Synthesize(ctx context.Context, req speech.Request) ([]byte, error) {
	if req.Voice.ID == "" {
		return nil, errors.New("elevenlabs: voice.ID must not be empty")
	}

	body, err := json.Marshal(ttsRequest{
		Text:    req.Text,
		ModelID: p.modelFor(req.Language),
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: encode request: %w", err)
	}

	url := p.baseURL + "/text-to-speech/" + req.Voice.ID
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: build request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: synthesize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("elevenlabs: synthesize voice %s: unexpected status %d: %s",
			req.Voice.ID, resp.StatusCode, bytes.TrimSpace(detail))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: read audio: %w", err)
	}
	return audio, nil
}

// modelFor selects the model ID for a language code. An explicitly configured
// model always wins.
func (p *Provider) modelFor(language string) string {
	if p.model != "" {
		return p.model
	}
	if language == "" || language == "en" {
		return monolingualModel
	}
	return multilingualModel
}

// ---- ListVoices ----

// voicesResponse is the top-level response from GET /voices.
type voicesResponse struct {
	Voices []elevenLabsVoice `json:"voices"`
}

// elevenLabsVoice is a single voice entry from the ElevenLabs API.
type elevenLabsVoice struct {
	VoiceID  string            `json:"voice_id"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Labels   map[string]string `json:"labels"`
}

// ListVoices returns all voices available from ElevenLabs for the configured API key.
func (p *Provider) ListVoices(ctx context.Context) ([]speech.VoiceProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: list voices: %w", err)
	}
	req.Header.Set("xi-api-key", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: list voices HTTP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elevenlabs: list voices: unexpected status %d", resp.StatusCode)
	}

	var vr voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("elevenlabs: list voices decode: %w", err)
	}
	return profilesFromResponse(vr), nil
}

// ---- helpers ----

// buildTTSRequest constructs the JSON body for a synthesis call. Used by
// tests to verify the payload shape without hitting the API.
func buildTTSRequest(text, modelID string) ([]byte, error) {
	return json.Marshal(ttsRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	})
}

// profilesFromResponse converts an API voices listing into VoiceProfile values.
func profilesFromResponse(vr voicesResponse) []speech.VoiceProfile {
	profiles := make([]speech.VoiceProfile, 0, len(vr.Voices))
	for _, v := range vr.Voices {
		meta := make(map[string]string, len(v.Labels)+1)
		for k, val := range v.Labels {
			meta[k] = val
		}
		if v.Category != "" {
			meta["category"] = v.Category
		}
		profiles = append(profiles, speech.VoiceProfile{
			ID:       v.VoiceID,
			Name:     v.Name,
			Provider: "elevenlabs",
			Metadata: meta,
		})
	}
	return profiles
}
