// Package api exposes document generation over HTTP. Requests carry the
// same shapes the YAML files do; responses return the stored document
// record with its rendered HTML.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/buelldocs/docgen/internal/config"
	"github.com/buelldocs/docgen/internal/store/sqlite"
)

// Server wires the HTTP routes to the engines and the document store.
type Server struct {
	store  *sqlite.Store
	parser *config.InputParser
	router *chi.Mux
	log    zerolog.Logger
}

// NewServer creates a server around the given store.
func NewServer(store *sqlite.Store, log zerolog.Logger) *Server {
	s := &Server{
		store:  store,
		parser: config.NewInputParser(),
		router: chi.NewRouter(),
		log:    log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/paystubs", s.handleGeneratePaystubs)
		r.Post("/statements", s.handleGenerateStatement)
		r.Get("/documents", s.handleListDocuments)
		r.Get("/documents/{id}", s.handleGetDocument)
	})
}

// Router returns the http.Handler for mounting or serving.
func (s *Server) Router() http.Handler {
	return s.router
}
