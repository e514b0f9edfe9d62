package elevenlabs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wandercast/wandercast/pkg/provider/speech"
)

// ---- Request body construction ----

func TestBuildTTSRequest(t *testing.T) {
	data, err := buildTTSRequest("Hello there", monolingualModel)
	if err != nil {
		t.Fatalf("buildTTSRequest: %v", err)
	}

	var req ttsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Text != "Hello there" {
		t.Errorf("expected text 'Hello there', got %q", req.Text)
	}
	if req.ModelID != "eleven_monolingual_v1" {
		t.Errorf("expected monolingual model, got %q", req.ModelID)
	}
	if req.VoiceSettings.Stability != 0.5 {
		t.Errorf("expected stability 0.5, got %f", req.VoiceSettings.Stability)
	}
	if req.VoiceSettings.SimilarityBoost != 0.5 {
		t.Errorf("expected similarity_boost 0.5, got %f", req.VoiceSettings.SimilarityBoost)
	}
}

// ---- Model selection ----

func TestModelFor_LanguageSelection(t *testing.T) {
	p, err := New("test-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		language string
		want     string
	}{
		{"", monolingualModel},
		{"en", monolingualModel},
		{"es", multilingualModel},
		{"ja", multilingualModel},
		{"fr", multilingualModel},
	}
	for _, tt := range tests {
		if got := p.modelFor(tt.language); got != tt.want {
			t.Errorf("modelFor(%q) = %q, want %q", tt.language, got, tt.want)
		}
	}
}

func TestModelFor_ExplicitModelWins(t *testing.T) {
	p, err := New("test-key", WithModel("eleven_turbo_v2"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := p.modelFor("es"); got != "eleven_turbo_v2" {
		t.Errorf("explicit model should override language selection, got %q", got)
	}
	if got := p.modelFor("en"); got != "eleven_turbo_v2" {
		t.Errorf("explicit model should override language selection, got %q", got)
	}
}

// ---- Synthesize ----

func TestSynthesize_RequestShape(t *testing.T) {
	var gotPath, gotKey, gotAccept string
	var gotBody ttsRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		gotAccept = r.Header.Get("Accept")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer srv.Close()

	p, err := New("secret-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	audio, err := p.Synthesize(context.Background(), speech.Request{
		Text:     "Welcome to the show.",
		Voice:    speech.VoiceProfile{ID: "voice-abc123"},
		Language: "es",
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if string(audio) != "fake-mp3-bytes" {
		t.Errorf("expected response body passthrough, got %q", audio)
	}
	if gotPath != "/text-to-speech/voice-abc123" {
		t.Errorf("expected voice ID in path, got %q", gotPath)
	}
	if gotKey != "secret-key" {
		t.Errorf("expected xi-api-key header, got %q", gotKey)
	}
	if gotAccept != "audio/mpeg" {
		t.Errorf("expected Accept audio/mpeg, got %q", gotAccept)
	}
	if gotBody.Text != "Welcome to the show." {
		t.Errorf("expected text in body, got %q", gotBody.Text)
	}
	if gotBody.ModelID != multilingualModel {
		t.Errorf("expected multilingual model for 'es', got %q", gotBody.ModelID)
	}
}

func TestSynthesize_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"invalid voice"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p, err := New("bad-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = p.Synthesize(context.Background(), speech.Request{
		Text:  "Hello",
		Voice: speech.VoiceProfile{ID: "v1"},
	})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should mention the status code, got: %v", err)
	}
}

func TestSynthesize_EmptyVoiceID(t *testing.T) {
	p, err := New("key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.Synthesize(context.Background(), speech.Request{Text: "Hi"}); err == nil {
		t.Fatal("expected error for empty voice ID")
	}
}

func TestNew_EmptyAPIKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

// ---- ListVoices ----

func TestListVoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voices" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"voices": [
				{"voice_id": "abc123", "name": "Rachel", "category": "premade", "labels": {"gender": "female"}},
				{"voice_id": "def456", "name": "Adam", "category": "premade", "labels": {"gender": "male"}}
			]
		}`)
	}))
	defer srv.Close()

	p, err := New("key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	profiles, err := p.ListVoices(context.Background())
	if err != nil {
		t.Fatalf("ListVoices: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	rachel := profiles[0]
	if rachel.ID != "abc123" {
		t.Errorf("expected ID 'abc123', got %q", rachel.ID)
	}
	if rachel.Provider != "elevenlabs" {
		t.Errorf("expected Provider 'elevenlabs', got %q", rachel.Provider)
	}
	if rachel.Metadata["gender"] != "female" {
		t.Errorf("expected gender 'female', got %q", rachel.Metadata["gender"])
	}
	if rachel.Metadata["category"] != "premade" {
		t.Errorf("expected category 'premade', got %q", rachel.Metadata["category"])
	}
}

func TestListVoices_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p, err := New("key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.ListVoices(context.Background()); err == nil {
		t.Fatal("expected error for 401 response")
	}
}
