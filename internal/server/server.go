// Package server exposes the analyzer as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze            body: {"sentence":"..."}
//	GET  /api/lookup/{predicate} optional ?limit=N
//	GET  /api/categories
//	GET  /api/health
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/cors"

	"github.com/ppiankov/duilens/internal/content"
	"github.com/ppiankov/duilens/internal/model"
	"github.com/ppiankov/duilens/internal/pipeline"
)

const (
	maxAnalyzeBody      = 1 << 20
	defaultSimilarLimit = 8
	maxSimilarLimit     = 50
)

// Server serves analysis requests over HTTP. The analyzer is shared by
// all handlers; it is immutable after construction so no locking is
// needed.
type Server struct {
	analyzer *pipeline.Analyzer
	addr     string
}

// New creates a server around an analyzer
func New(analyzer *pipeline.Analyzer, addr string) *Server {
	return &Server{analyzer: analyzer, addr: addr}
}

// Addr returns the configured listen address
func (s *Server) Addr() string {
	return s.addr
}

// Handler returns the full API handler with CORS middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/lookup/", s.handleLookup)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/health", s.handleHealth)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// ListenAndServe blocks serving the API on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.addr, s.Handler())
}

// ---- JSON types ---------------------------------------------------------

type analyzeRequest struct {
	Sentence string `json:"sentence"`
}

type lookupResponse struct {
	Predicate string                   `json:"predicate"`
	Stat      model.PredicateStat      `json:"stat"`
	Similar   []model.SimilarPredicate `json:"similar"`
}

type categoriesResponse struct {
	Categories []content.Card `json:"categories"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBody)

	var body analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Sentence) == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentence' field")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), body.Sentence)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoDui) {
			writeError(w, http.StatusUnprocessableEntity, "sentence contains no 对")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	predicate := strings.TrimPrefix(r.URL.Path, "/api/lookup/")
	if predicate == "" || strings.Contains(predicate, "/") {
		writeError(w, http.StatusBadRequest, "missing predicate in path")
		return
	}

	limit := defaultSimilarLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n > maxSimilarLimit {
			n = maxSimilarLimit
		}
		limit = n
	}

	stat, ok := s.analyzer.Table().Lookup(predicate)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("predicate %q not found in corpus", predicate))
		return
	}
	stat.Predicate = predicate

	similar := s.analyzer.Table().Similar(predicate, limit)
	if similar == nil {
		similar = []model.SimilarPredicate{}
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Predicate: predicate,
		Stat:      stat,
		Similar:   similar,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: content.Cards()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: encode response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
