package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/wandercast/wandercast/internal/observe"
	"github.com/wandercast/wandercast/internal/podcast"
)

// generateRequest is the POST /api/generate-podcast body. Language and voice
// are optional; the configured defaults apply when they are empty.
type generateRequest struct {
	Location string `json:"location"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

// generateResponse is the success body for POST /api/generate-podcast.
type generateResponse struct {
	Success  bool   `json:"success"`
	Location string `json:"location"`
	Script   string `json:"script"`
	AudioURL string `json:"audioUrl"`
}

// errorResponse is the body for 4xx/5xx API responses.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// healthResponse is the GET /api/health body.
type healthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Services  map[string]bool `json:"services"`
}

func (s *Server) handleGeneratePodcast(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	req.Location = strings.TrimSpace(req.Location)
	if req.Location == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Location is required"})
		return
	}

	s.mu.RLock()
	language, voice := s.defaultLanguage, s.defaultVoice
	s.mu.RUnlock()
	if req.Language != "" {
		language = req.Language
	}
	if req.Voice != "" {
		voice = podcast.GenderPreference(req.Voice)
	}

	log := observe.Logger(r.Context()).With("location", req.Location)
	log.Info("generating podcast")

	res, err := s.generator.Generate(r.Context(), podcast.Request{
		Location: req.Location,
		Language: language,
		Voice:    voice,
	})
	if err != nil {
		log.Error("podcast generation failed", "err", err)
		status := http.StatusInternalServerError
		if errors.Is(err, podcast.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, errorResponse{
			Error:   "Failed to generate podcast",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:  true,
		Location: res.Location,
		Script:   res.Script,
		AudioURL: "/audio/" + res.FileName,
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	locations := s.locations
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, locations)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services: map[string]bool{
			"script": s.scriptConfigured,
			"speech": s.speechConfigured,
		},
	})
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
