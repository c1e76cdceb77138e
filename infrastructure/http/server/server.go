// Package server exposes the party services over HTTP with JSON bodies.
package server

import (
	"log/slog"
	"net/http"
	"party-lab/auth"
	"party-lab/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	sessionCookie  = "session"
	maxRequestBody = 1 << 20
)

type Server struct {
	authService      services.IAuthService
	characterService services.ICharacterService
	partyService     services.IPartyService
	issuer           *auth.TokenIssuer
	gatherer         prometheus.Gatherer
	frontendPath     string
	log              *slog.Logger
}

func NewServer(
	authService services.IAuthService,
	characterService services.ICharacterService,
	partyService services.IPartyService,
	issuer *auth.TokenIssuer,
	gatherer prometheus.Gatherer,
	log *slog.Logger,
) *Server {
	return &Server{
		authService:      authService,
		characterService: characterService,
		partyService:     partyService,
		issuer:           issuer,
		gatherer:         gatherer,
		log:              log,
	}
}

// WithFrontend serves the browser client from dir on every GET path the API does not claim.
func (s *Server) WithFrontend(dir string) *Server {
	s.frontendPath = dir
	return s
}

// Handler returns the routed API wrapped in its middlewares.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /logout", s.logout)
	mux.HandleFunc("GET /profile", s.profile)
	mux.HandleFunc("GET /characters", s.listCharacters)
	mux.HandleFunc("POST /characters", s.createCharacter)
	mux.HandleFunc("PUT /characters/{id}", s.updateCharacter)
	mux.HandleFunc("DELETE /characters/{id}", s.deleteCharacter)
	mux.HandleFunc("POST /generate-parties", s.generateParties)
	mux.HandleFunc("GET /healthz", s.healthz)
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.frontendPath != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.frontendPath)))
	}

	return s.cors(s.recoverPanic(s.logRequests(s.withSession(mux))))
}
