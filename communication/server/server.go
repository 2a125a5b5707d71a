package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"wolfhunt/communication"
	"wolfhunt/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// AgentServer answers move requests over HTTP.
type AgentServer struct {
	driver *searcher.Driver
	router chi.Router
}

func NewAgentServer(driver *searcher.Driver) *AgentServer {
	s := &AgentServer{driver: driver}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post(communication.FindMovePath, s.handleFindMove)

	s.router = r
	return s
}

func (s *AgentServer) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *AgentServer) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Msgf("agent server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Msgf("graceful shutdown failed: %v", err)
			return server.Close()
		}
		log.Info().Msg("agent server stopped")
		return nil
	})
	return g.Wait()
}

func (s *AgentServer) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var req communication.FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: "bad request: " + err.Error()})
		return
	}
	params, err := req.Params()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse{Error: err.Error()})
		return
	}

	reply := <-s.driver.RequestMove(r.Context(), req.Board, params)

	resp := communication.FindMoveResponse{Found: reply.OK}
	if reply.OK {
		resp.Move = &reply.Move
		resp.Score = reply.Score
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Msgf("failed to encode response: %v", err)
	}
}
