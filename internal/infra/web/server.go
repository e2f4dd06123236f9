package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server exposes the ops endpoints: liveness and prometheus metrics.
type Server struct {
	ping func(ctx context.Context) error
	log  *zerolog.Logger
}

// NewServer takes a ping probe (the redis client's Ping) so health reflects
// the one dependency the bot cannot run without.
func NewServer(ping func(ctx context.Context) error, logger *zerolog.Logger) *Server {
	return &Server{ping: ping, log: logger}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			s.log.Warn().Err(err).Msg("healthz probe failed")
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
