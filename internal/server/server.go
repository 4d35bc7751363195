// Package server provides the local HTTP API backing the chat UI:
// résumé upload, employer scraping, and career-fit analysis.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jordan/career-compass/internal/analysis"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/fetch"
	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/parsing"
	"github.com/jordan/career-compass/internal/pdftext"
	"github.com/jordan/career-compass/internal/scraping"
	"github.com/jordan/career-compass/internal/types"
)

// resumeParser parses a résumé PDF on disk.
type resumeParser interface {
	Parse(ctx context.Context, path string) (*types.ParsedResume, error)
}

// employerScraper fetches and scrapes one employer page.
type employerScraper func(ctx context.Context, pageURL string, opts *fetch.Options) (*types.EmployerProfile, error)

// advisor produces career-fit advice from formatted document texts.
type advisor interface {
	AnalyzeTexts(ctx context.Context, resumeText, companyText string) (string, error)
}

// sessionState mirrors the single active session the chat UI works
// with. Postgres persistence, when configured, is layered on top.
type sessionState struct {
	mu           sync.RWMutex
	sessionID    uuid.UUID
	resume       *types.ParsedResume
	resumeText   string
	employer     *types.EmployerProfile
	employerText string
	analysis     string
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	parser     resumeParser
	scrape     employerScraper
	advisor    advisor
	useBrowser bool
	session    sessionState
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
	APIKey      string
	Models      []string
	UseBrowser  bool
	UseNLP      bool
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	modelConfig := llm.DefaultConfig()
	if len(cfg.Models) > 0 {
		modelConfig = modelConfig.WithModels(cfg.Models...)
	}
	client, err := llm.NewClient(ctx, modelConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	s := &Server{
		scrape:     scraping.Scrape,
		advisor:    analysis.NewAnalyzer(client),
		useBrowser: cfg.UseBrowser,
	}

	if cfg.UseNLP {
		s.parser = parsing.NewParser(pdftext.NewSource(),
			parsing.WithOptionalBackend(llm.NewResumeBackend(client)))
	} else {
		s.parser = parsing.NewParser(pdftext.NewSource())
	}

	// The server runs without Postgres; sessions then live in memory
	// only, like the original single-session design.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Analysis calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /scrape-companies", s.handleScrapeCompanies)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /get-session-data", s.handleGetSessionData)
	mux.HandleFunc("GET /sessions", s.handleListSessions)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
