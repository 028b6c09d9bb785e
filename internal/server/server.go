// Package server exposes the render pipeline over HTTP for `plantview serve`.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/five82/plantview/internal/encoder"
	"github.com/five82/plantview/internal/render"
	"github.com/five82/plantview/internal/session"
)

// Config holds server configuration.
type Config struct {
	Addr     string
	AllowAll bool // allow all CORS origins
}

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server serves render results and redirects to the rendering service.
type Server struct {
	cfg        Config
	pipeline   render.Pipeline
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around pipeline.
func New(cfg Config, pipeline render.Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		logger:   logger,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/render", s.handleRender)
	r.Get("/decode/{id}", s.handleDecode)
	r.Get("/{format}", s.handleRedirect)

	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("plantview server listening", "addr", s.cfg.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info("plantview server stopped")
		return nil
	})
	return g.Wait()
}

// renderResponse is the JSON form of a render.Result.
type renderResponse struct {
	Kind       string     `json:"kind"`
	Identifier string     `json:"identifier,omitempty"`
	Image      string     `json:"image,omitempty"`
	Links      []linkJSON `json:"links,omitempty"`
	Message    string     `json:"message,omitempty"`
}

type linkJSON struct {
	Format string `json:"format"`
	URL    string `json:"url"`
}

func newRenderResponse(res render.Result) renderResponse {
	out := renderResponse{
		Kind:       res.Kind.String(),
		Identifier: res.Identifier,
		Image:      res.ImageRef,
		Message:    res.Message,
	}
	for _, l := range res.Links {
		out.Links = append(out.Links, linkJSON{Format: string(l.Format), URL: l.URL})
	}
	return out
}

// codeParam reads the code parameter the same way the editor bootstraps
// from a URL, including the second URI-component decode.
func codeParam(r *http.Request) string {
	return session.CodeFromURL("?" + r.URL.RawQuery)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	res := s.pipeline.Render(codeParam(r))
	writeJSON(w, http.StatusOK, newRenderResponse(res))
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(chi.URLParam(r, "format"))
	if err != nil || !s.servesFormat(format) {
		http.Error(w, "unknown format", http.StatusNotFound)
		return
	}

	res := s.pipeline.Render(codeParam(r))
	switch res.Kind {
	case render.KindEmpty:
		http.Error(w, "code parameter is empty", http.StatusUnprocessableEntity)
		return
	case render.KindFailure:
		http.Error(w, res.Message, http.StatusUnprocessableEntity)
		return
	}
	http.Redirect(w, r, s.pipeline.Links().URL(format, res.Identifier), http.StatusFound)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	text, err := encoder.Decode(chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, encoder.ErrInvalidSource) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *Server) servesFormat(f render.Format) bool {
	for _, have := range s.pipeline.Links().Formats() {
		if have == f {
			return true
		}
	}
	return false
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
