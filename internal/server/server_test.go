package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/wandercast/wandercast/internal/config"
	"github.com/wandercast/wandercast/internal/health"
	"github.com/wandercast/wandercast/internal/observe"
	"github.com/wandercast/wandercast/internal/podcast"
	"github.com/wandercast/wandercast/internal/server"
)

// generatorStub satisfies server.Generator with a canned result or error.
type generatorStub struct {
	result *podcast.Result
	err    error

	lastReq podcast.Request
}

func (g *generatorStub) Generate(_ context.Context, req podcast.Request) (*podcast.Result, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func testMetrics(t *testing.T) *observe.Metrics {
	t.Helper()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Providers.Script.Name = "openai"
	cfg.Providers.Speech.Name = "elevenlabs"
	config.ApplyDefaults(cfg)
	return cfg
}

func newTestServer(t *testing.T, gen server.Generator, cfg *config.Config) http.Handler {
	t.Helper()
	s := server.New(gen, cfg, server.WithMetrics(testMetrics(t)))
	return s.Routes()
}

func TestGeneratePodcast_Success(t *testing.T) {
	gen := &generatorStub{
		result: &podcast.Result{
			Location: "Tokyo, Japan",
			Script:   "Alex: Welcome!\nSam: Hello!",
			FileName: "podcast_tokyo__japan_en_female_abc.mp3",
		},
	}
	h := newTestServer(t, gen, testConfig())

	body := `{"location": "Tokyo, Japan"}`
	req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool   `json:"success"`
		Location string `json:"location"`
		Script   string `json:"script"`
		AudioURL string `json:"audioUrl"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Location != "Tokyo, Japan" {
		t.Errorf("location = %q", resp.Location)
	}
	if resp.AudioURL != "/audio/podcast_tokyo__japan_en_female_abc.mp3" {
		t.Errorf("audioUrl = %q", resp.AudioURL)
	}
	if !strings.Contains(resp.Script, "Welcome") {
		t.Errorf("script = %q", resp.Script)
	}
}

func TestGeneratePodcast_DefaultsApplied(t *testing.T) {
	gen := &generatorStub{result: &podcast.Result{FileName: "x.mp3"}}
	h := newTestServer(t, gen, testConfig())

	req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(`{"location": "Oslo"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gen.lastReq.Language != "en" {
		t.Errorf("language = %q, want default en", gen.lastReq.Language)
	}
	if gen.lastReq.Voice != podcast.GenderFemale {
		t.Errorf("voice = %q, want default female", gen.lastReq.Voice)
	}
}

func TestGeneratePodcast_ExplicitLanguageAndVoice(t *testing.T) {
	gen := &generatorStub{result: &podcast.Result{FileName: "x.mp3"}}
	h := newTestServer(t, gen, testConfig())

	body := `{"location": "Oslo", "language": "ja", "voice": "male"}`
	req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if gen.lastReq.Language != "ja" {
		t.Errorf("language = %q, want ja", gen.lastReq.Language)
	}
	if gen.lastReq.Voice != podcast.GenderMale {
		t.Errorf("voice = %q, want male", gen.lastReq.Voice)
	}
}

func TestGeneratePodcast_MissingLocation(t *testing.T) {
	gen := &generatorStub{result: &podcast.Result{}}
	h := newTestServer(t, gen, testConfig())

	for name, body := range map[string]string{
		"empty object": `{}`,
		"blank string": `{"location": "   "}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != "Location is required" {
				t.Errorf("error = %q", resp.Error)
			}
		})
	}
}

func TestGeneratePodcast_InvalidJSON(t *testing.T) {
	gen := &generatorStub{result: &podcast.Result{}}
	h := newTestServer(t, gen, testConfig())

	req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGeneratePodcast_PipelineError(t *testing.T) {
	gen := &generatorStub{err: errors.New("synthesis blew up")}
	h := newTestServer(t, gen, testConfig())

	req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(`{"location": "Rome"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Failed to generate podcast" {
		t.Errorf("error = %q", resp.Error)
	}
	if !strings.Contains(resp.Message, "synthesis blew up") {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGeneratePodcast_NotConfigured(t *testing.T) {
	gen := &generatorStub{err: podcast.ErrNotConfigured}
	h := newTestServer(t, gen, testConfig())

	req := httptest.NewRequest("POST", "/api/generate-podcast", strings.NewReader(`{"location": "Rome"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestLocations_Default(t *testing.T) {
	h := newTestServer(t, &generatorStub{}, testConfig())

	req := httptest.NewRequest("GET", "/api/locations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var locations []string
	if err := json.NewDecoder(rec.Body).Decode(&locations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(locations) != 15 {
		t.Errorf("got %d locations, want 15", len(locations))
	}
	if locations[0] != "Paris, France" {
		t.Errorf("first location = %q", locations[0])
	}
}

func TestLocations_ConfigOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Podcast.Locations = []string{"Tromsø, Norway"}
	h := newTestServer(t, &generatorStub{}, cfg)

	req := httptest.NewRequest("GET", "/api/locations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var locations []string
	if err := json.NewDecoder(rec.Body).Decode(&locations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(locations) != 1 || locations[0] != "Tromsø, Norway" {
		t.Errorf("locations = %v", locations)
	}
}

func TestLocations_HotReload(t *testing.T) {
	s := server.New(&generatorStub{}, testConfig(), server.WithMetrics(testMetrics(t)))
	h := s.Routes()

	s.ApplyDiff(config.ConfigDiff{
		LocationsChanged: true,
		NewLocations:     []string{"Reykjavík, Iceland", "Ushuaia, Argentina"},
	})

	req := httptest.NewRequest("GET", "/api/locations", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var locations []string
	if err := json.NewDecoder(rec.Body).Decode(&locations); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(locations) != 2 {
		t.Errorf("locations after reload = %v", locations)
	}
}

func TestAPIHealth(t *testing.T) {
	h := newTestServer(t, &generatorStub{}, testConfig())

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Status    string          `json:"status"`
		Timestamp string          `json:"timestamp"`
		Services  map[string]bool `json:"services"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Timestamp == "" {
		t.Error("timestamp missing")
	}
	if !resp.Services["script"] || !resp.Services["speech"] {
		t.Errorf("services = %v, want both true", resp.Services)
	}
}

func TestAPIHealth_UnconfiguredProviders(t *testing.T) {
	cfg := testConfig()
	cfg.Providers.Script.Name = ""
	h := newTestServer(t, &generatorStub{}, cfg)

	req := httptest.NewRequest("GET", "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp struct {
		Services map[string]bool `json:"services"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Services["script"] {
		t.Error("script reported configured")
	}
	if !resp.Services["speech"] {
		t.Error("speech reported unconfigured")
	}
}

func TestAudioFileServing(t *testing.T) {
	cfg := testConfig()
	cfg.Server.AudioDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(cfg.Server.AudioDir, "ep.mp3"), []byte("mp3-bytes"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	h := newTestServer(t, &generatorStub{}, cfg)

	req := httptest.NewRequest("GET", "/audio/ep.mp3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "mp3-bytes" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHealthzAndReadyz(t *testing.T) {
	s := server.New(&generatorStub{}, testConfig(),
		server.WithMetrics(testMetrics(t)),
		server.WithHealthHandler(health.New(
			health.ScriptConfigured(func() bool { return true }),
		)),
	)
	h := s.Routes()

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, &generatorStub{}, testConfig())

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("/metrics status = %d", rec.Code)
	}
}
