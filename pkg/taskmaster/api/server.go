package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type ServerConfig struct {
	Host string
	Port int
	// RateLimit is requests per second per client; 0 disables limiting.
	RateLimit float64
	Burst     int
}

type Server struct {
	handler *Handler
	router  chi.Router
	limiter *RateLimiter
	server  *http.Server
}

func NewServer(handler *Handler, cfg ServerConfig) *Server {
	s := &Server{handler: handler}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = NewRateLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	s.router = s.routes()
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	r.Get("/healthz", s.handler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.limiter.RateLimit)
		}
		r.Get("/nonce", s.handler.GetNonce)
		r.Post("/screenings", s.handler.CreateScreening)
		r.Post("/screenings/verify", s.handler.VerifyScreening)
		r.Post("/reward-claims", s.handler.CreateRewardClaim)
		r.Post("/reward-claims/verify", s.handler.VerifyRewardClaim)
		r.Get("/participants/{address}", s.handler.GetParticipant)
		r.Get("/records/{id}", s.handler.GetRecord)
		r.Patch("/records/{id}", s.handler.UpdateRecord)
	})
	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("[API] Starting API server")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Close()
	}
	return s.server.Shutdown(ctx)
}
