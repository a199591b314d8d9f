package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lexbridge/lexbridge/internal/config"
)

const healthProbeTimeout = 30 * time.Second

type healthResponse struct {
	Status          string            `json:"status"`
	Service         string            `json:"service"`
	Message         string            `json:"message"`
	Timestamp       time.Time         `json:"timestamp"`
	TestResponse    string            `json:"testResponse,omitempty"`
	Error           string            `json:"error,omitempty"`
	APIKeyLength    int               `json:"apiKeyLength,omitempty"`
	Debug           *config.KeyStatus `json:"debug,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// health probes the translation provider. Concurrent requests share one
// in-flight probe.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Service: "translation", Timestamp: time.Now().UTC()}

	if s.translator == nil {
		keys := s.cfg.Keys()
		resp.Status = "configuration_error"
		resp.Message = "API key not configured in deployment environment"
		resp.Debug = &keys
		resp.Recommendations = []string{
			"Configure GOOGLE_GENAI_API_KEY environment variable",
			"Ensure API key has proper permissions",
			"Check deployment platform environment settings",
			"Contact " + s.cfg.Support.Email + " for assistance",
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.APIKeyLength = len(s.cfg.Translation.APIKey)

	v, err, shared := s.probes.Do("health", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), healthProbeTimeout)
		defer cancel()
		return s.translator.Probe(ctx)
	})
	if err != nil {
		slog.Error("health probe failed", "err", err, "shared", shared)
		resp.Status = "api_error"
		resp.Message = "Google AI API error"
		resp.Error = err.Error()
		resp.Recommendations = []string{
			"Verify API key is valid and active",
			"Check Google AI API quotas and billing",
			"Ensure API key has Generative AI permissions",
			"Try regenerating the API key",
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	text, _ := v.(string)
	if text == "" {
		resp.Status = "degraded"
		resp.Message = "API responding but with empty results"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Status = "operational"
	resp.Message = "Service is working correctly"
	resp.TestResponse = text
	writeJSON(w, http.StatusOK, resp)
}

type configResponse struct {
	Status string `json:"status"`
	Config struct {
		config.KeyStatus
		Timestamp time.Time `json:"timestamp"`
	} `json:"config"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

// configStatus reports which provider keys are present, never the keys.
func (s *Server) configStatus(w http.ResponseWriter, r *http.Request) {
	keys := s.cfg.Keys()

	var resp configResponse
	resp.Config.KeyStatus = keys
	resp.Config.Timestamp = time.Now().UTC()
	resp.Recommendations = []string{}

	if keys.Configured() {
		resp.Status = "configured"
		resp.Message = "API keys are properly configured"
	} else {
		resp.Status = "missing_keys"
		resp.Message = "Missing required Google AI API keys"
		resp.Recommendations = []string{
			"Set GOOGLE_GENAI_API_KEY environment variable",
			"Or set GOOGLE_API_KEY as fallback",
			"Ensure keys are valid and have proper permissions",
			"Check deployment environment configuration",
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
