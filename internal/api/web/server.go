// Package web serves the remote's browser page, the player host event
// stream and the RPC endpoints on one chi router.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	zlog "github.com/rs/zerolog/log"

	connectapi "github.com/osa030/moodbox/internal/api/connect"
	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
	"github.com/osa030/moodbox/internal/app/session"
)

// Config configures the web server.
type Config struct {
	Session   *session.Manager
	Title     string
	ElementID string        // Player container id, must match the player options
	Token     string        // Remote token; empty disables the check
	KeepAlive time.Duration // Interval of event stream comments, 15s when zero
}

// Server is the HTTP front of a session.
type Server struct {
	router    chi.Router
	session   *session.Manager
	title     string
	elementID string
	token     string
	keepAlive time.Duration
}

// New creates a new server.
func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	keepAlive := cfg.KeepAlive
	if keepAlive <= 0 {
		keepAlive = 15 * time.Second
	}

	s := &Server{
		router:    r,
		session:   cfg.Session,
		title:     cfg.Title,
		elementID: cfg.ElementID,
		token:     cfg.Token,
		keepAlive: keepAlive,
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/events", s.handleEvents)
	s.router.With(securityHeaders).Get("/", s.handlePage)

	path, handler := remotev1.NewRemoteServiceHandler(
		connectapi.NewRemoteService(s.session),
		connect.WithInterceptors(connectapi.NewTokenInterceptor(s.token)),
	)
	s.router.Mount(path, handler)
}

type healthResponse struct {
	Status    string    `json:"status"`
	SessionID string    `json:"sessionId"`
	StartedAt time.Time `json:"startedAt"`
	Hosts     int       `json:"hosts"`
	Watchers  int       `json:"watchers"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.session.GetStatus()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResponse{
		Status:    "ok",
		SessionID: status.SessionID,
		StartedAt: status.StartedAt,
		Hosts:     status.Hosts,
		Watchers:  status.Watchers,
	}); err != nil {
		zlog.Debug().Msgf("failed to write health response: %v", err)
	}
}
