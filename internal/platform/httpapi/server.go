// Package httpapi serves scores and aggregate statistics over HTTP.
// The endpoints are read-only; boards are still played through the TUI.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BruceRanger/rockswap/internal/registry"
	"github.com/BruceRanger/rockswap/internal/storage"
)

const (
	defaultScoreLimit = 10
	maxScoreLimit     = 100
)

// Config holds configuration for the API server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DBPath is the path to the scores database.
	DBPath string
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		DBPath:  "~/.rockswap/scores.db",
	}
}

// Server exposes the score database over a small JSON API.
type Server struct {
	config Config
	store  *storage.Store
	logger *log.Logger
	router chi.Router
	http   *http.Server
}

// NewServer creates an API server with the given configuration.
// If the scores database cannot be opened the server still starts;
// score endpoints then report 503.
func NewServer(cfg Config) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockswap-api",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.handleGames)
		r.Get("/games/{id}/scores", s.handleScores)
		r.Get("/games/{id}/stats", s.handleGameStats)
		r.Get("/stats", s.handleAllStats)
	})

	s.router = r
	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Handler returns the route handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// ListenAndServe starts the API server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting API server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.http.Shutdown(ctx)
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// accessLog emits one log line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// gameInfo describes a registered board variant.
type gameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// scoreEntry is one row of a variant's scoreboard.
type scoreEntry struct {
	Rank      int       `json:"rank"`
	Score     int       `json:"score"`
	Moves     int       `json:"moves"`
	MaxChain  int       `json:"max_chain"`
	CreatedAt time.Time `json:"created_at"`
}

// gameStats aggregates all recorded runs of one variant.
type gameStats struct {
	GameID     string    `json:"game_id"`
	GamesCount int       `json:"games_played"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalScore int64     `json:"total_score"`
	BestChain  int       `json:"best_chain"`
	LastPlayed time.Time `json:"last_played"`
}

func toGameStats(st *storage.GameStats) gameStats {
	return gameStats{
		GameID:     st.GameID,
		GamesCount: st.GamesCount,
		HighScore:  st.HighScore,
		AvgScore:   st.AvgScore,
		TotalScore: st.TotalScore,
		BestChain:  st.BestChain,
		LastPlayed: st.LastPlayed,
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	out := make([]gameInfo, 0, len(games))
	for _, g := range games {
		out = append(out, gameInfo{ID: g.ID, Title: g.Title})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !registry.Exists(id) {
		writeError(w, http.StatusNotFound, "unknown game "+strconv.Quote(id))
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scores database unavailable")
		return
	}

	limit := defaultScoreLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxScoreLimit)
	}

	scores, err := s.store.TopScores(id, limit)
	if err != nil {
		s.logger.Error("loading scores", "game", id, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}

	out := make([]scoreEntry, 0, len(scores))
	for i, sc := range scores {
		out = append(out, scoreEntry{
			Rank:      i + 1,
			Score:     sc.Score,
			Moves:     sc.Moves,
			MaxChain:  sc.MaxChain,
			CreatedAt: sc.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGameStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !registry.Exists(id) {
		writeError(w, http.StatusNotFound, "unknown game "+strconv.Quote(id))
		return
	}
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scores database unavailable")
		return
	}

	stats, err := s.store.GetGameStats(id)
	if err != nil {
		s.logger.Error("loading stats", "game", id, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}
	writeJSON(w, http.StatusOK, toGameStats(stats))
}

func (s *Server) handleAllStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "scores database unavailable")
		return
	}

	all, err := s.store.GetAllGamesStats()
	if err != nil {
		s.logger.Error("loading stats", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]gameStats, 0, len(ids))
	for _, id := range ids {
		out = append(out, toGameStats(all[id]))
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Response writes are best-effort
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
