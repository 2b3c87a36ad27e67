// Package server exposes a service.RecipeStore over the /api/recipes JSON API
// that recipeapi.Client consumes.
package server

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Veraticus/pantry-genius/internal/common"
	"github.com/Veraticus/pantry-genius/internal/model"
	"github.com/Veraticus/pantry-genius/internal/recipeapi"
	"github.com/Veraticus/pantry-genius/internal/service"
)

// maxBodyBytes bounds the size of a submitted recipe.
const maxBodyBytes = 1 << 20

// createRequest is the POST body.
type createRequest struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the recipe API.
type Server struct {
	store service.RecipeStore
	mux   *http.ServeMux
}

// New creates a server backed by store.
func New(store service.RecipeStore) *Server {
	s := &Server{
		store: store,
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("GET "+recipeapi.RecipesPath, s.handleList)
	s.mux.HandleFunc("POST "+recipeapi.RecipesPath, s.handleCreate)
	s.mux.HandleFunc("GET "+recipeapi.RecipesPath+"/{id}", s.handleGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	slog.Debug("HTTP request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start))
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// ListenAndServeTLS is ListenAndServe over HTTPS using cert.
func (s *Server) ListenAndServeTLS(ctx context.Context, addr string, cert tls.Certificate) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.ServeTLS(ctx, ln, cert)
}

// ServeTLS wraps ln in TLS and serves on it until ctx is canceled.
func (s *Server) ServeTLS(ctx context.Context, ln net.Listener, cert tls.Certificate) error {
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}
	return s.Serve(ctx, tls.NewListener(ln, tlsConfig))
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Recipe API listening", "addr", ln.Addr().String())
		errChan <- srv.Serve(ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("Shutting down recipe API")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.store.ListRecipes(r.Context())
	if err != nil {
		common.LogError(err, "Failed to list recipes", nil)
		writeError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.store.GetRecipe(r.Context(), r.PathValue("id"))
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	if err != nil {
		common.LogError(err, "Failed to get recipe", common.Fields{"id": r.PathValue("id")})
		writeError(w, http.StatusInternalServerError, "failed to get recipe")
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	draft, err := model.NewDraft(req.Name, req.Ingredients, req.Instructions)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	recipe, err := s.store.CreateRecipe(r.Context(), draft)
	if err != nil {
		common.LogError(err, "Failed to create recipe", common.Fields{"name": draft.Name})
		writeError(w, http.StatusInternalServerError, "failed to create recipe")
		return
	}
	slog.Info("Recipe created", "id", recipe.ID, "name", recipe.Name)
	writeJSON(w, http.StatusCreated, recipe)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
