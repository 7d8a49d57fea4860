// Package server serves the search and profile views as JSON.
//
// Each request gets its own [store.Store]: the response is the store slice the
// request populated, together with the derived getters a view would read.
//
//	GET /healthz                 liveness probe
//	GET /api/search?q=           search slice + has_search_results
//	GET /api/users/{username}    profile slice + has_selected_user + top_repositories
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ghfinder/pkg/integrations/github"
	"github.com/matzehuels/ghfinder/pkg/store"
)

// Config holds server configuration.
type Config struct {
	Addr    string
	PerPage int
}

// Server exposes store operations over HTTP.
type Server struct {
	router *chi.Mux
	config Config
	api    store.API
	logger *log.Logger
}

// New creates a Server backed by api.
func New(cfg Config, api store.API, logger *log.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		api:    api,
		logger: logger,
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(requestLogger(s.logger))

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/users/{username}", s.handleProfile)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Addr,
		Handler: s.router,
		// Profile loads are bounded by the 10s client timeout per request.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.config.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) newStore() *store.Store {
	return store.New(s.api, store.WithPerPage(s.config.PerPage))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	st := s.newStore()
	st.SearchUsers(r.Context(), r.URL.Query().Get("q"))

	snap := st.Snapshot()
	status := http.StatusOK
	switch {
	case snap.Search.Error == store.MsgEmptyQuery:
		status = http.StatusBadRequest
	case snap.Search.Error != "":
		status = http.StatusBadGateway
	}
	writeJSON(w, status, snap.SearchView())
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := github.ValidateUsername(username); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	st := s.newStore()
	st.LoadUserProfile(r.Context(), username)

	snap := st.Snapshot()
	status := http.StatusOK
	if snap.Profile.Error != "" {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, snap.ProfileView())
}
