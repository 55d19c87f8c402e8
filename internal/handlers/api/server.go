// Package api serves the bowling scorer over HTTP.
//
// Routes:
//   - GET  /health
//   - POST /games, GET /games/{id}
//   - POST /games/{id}/roll, POST /games/{id}/rolls
//   - GET  /games/{id}/score, /games/{id}/statistics, /games/{id}/summary
//   - GET  /players/{id}/game, /players/{id}/statistics
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/strikeout/internal/services/game"
	"github.com/KirkDiggler/strikeout/internal/services/summary"
)

const defaultRequestTimeout = 30 * time.Second

var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilGameService    = errors.New("game service cannot be nil")
	ErrNilSummaryService = errors.New("summary service cannot be nil")
)

// Config holds configuration for the HTTP server
type Config struct {
	GameService    game.Service
	SummaryService summary.Service
	Logger         zerolog.Logger

	// CORSOrigin is the single browser origin allowed to call the API
	CORSOrigin string

	// RequestTimeout bounds handler time
	RequestTimeout time.Duration
}

// Server bundles the router and the services it calls
type Server struct {
	r         *chi.Mux
	games     game.Service
	summaries summary.Service
	logger    zerolog.Logger
}

// New constructs a Server, installs middleware, and registers routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.SummaryService == nil {
		return nil, ErrNilSummaryService
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	s := &Server{
		r:         chi.NewRouter(),
		games:     cfg.GameService,
		summaries: cfg.SummaryService,
		logger:    cfg.Logger.With().Str("component", "http").Logger(),
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.CORSOrigin))

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleCreateGame)
		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Post("/roll", s.handleRecordRoll)
			r.Post("/rolls", s.handleReplaceFrames)
			r.Get("/score", s.handleGetScore)
			r.Get("/statistics", s.handleGetStatistics)
			r.Get("/summary", s.handleGetSummary)
		})
	})

	s.r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/game", s.handleGetCurrentGame)
		r.Get("/statistics", s.handleGetPlayerStatistics)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method_not_allowed"})
	})

	return s, nil
}

// Router exposes the router for the HTTP server and tests
func (s *Server) Router() chi.Router { return s.r }

// requestLogger logs one line per request
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		event := s.logger.Info()
		if status >= http.StatusInternalServerError {
			event = s.logger.Error()
		}
		event.
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// jsonContentType sets a default JSON Content-Type header on all responses
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single browser origin
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
