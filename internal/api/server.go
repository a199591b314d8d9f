package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/singleflight"

	"github.com/lexbridge/lexbridge/internal/config"
	"github.com/lexbridge/lexbridge/internal/extract"
	"github.com/lexbridge/lexbridge/internal/translate"
)

type Server struct {
	cfg        *config.Config
	extractor  *extract.Extractor
	translator *translate.Translator
	probes     singleflight.Group
}

// NewServer creates the HTTP server. translator may be nil when no provider
// key is configured; translation and health endpoints then report a
// configuration error.
func NewServer(cfg *config.Config, translator *translate.Translator) *Server {
	return &Server{
		cfg:        cfg,
		extractor:  extract.New(),
		translator: translator,
	}
}

// SetExtractor replaces the document extractor.
func (s *Server) SetExtractor(e *extract.Extractor) {
	s.extractor = e
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Route("/api", func(r chi.Router) {
		r.Post("/extract-text", s.extractText)
		r.Post("/upload", s.uploadFile)
		r.Post("/translate", s.translateText)
		r.Get("/health", s.health)
		r.Get("/config", s.configStatus)
	})

	if s.cfg.Server.StaticDir != "" {
		r.Handle("/*", StaticHandler(s.cfg.Server.StaticDir))
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writeJSON: encode failed", "err", err)
	}
}
