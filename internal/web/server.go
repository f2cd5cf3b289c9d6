// ===== internal/web/server.go =====
package web

import (
	"html/template"
	"net/http"

	"ulagen/internal/config"
	"ulagen/internal/oui"
	"ulagen/internal/ula"
)

// Server represents the HTTP server for long-running mode
type Server struct {
	cfg   *config.Config
	gen   *ula.Generator
	store *oui.Store
	tmpl  *template.Template
	mux   *http.ServeMux
}

// NewServer creates a new web server
func NewServer(cfg *config.Config, gen *ula.Generator, store *oui.Store) *Server {
	server := &Server{
		cfg:   cfg,
		gen:   gen,
		store: store,
		tmpl:  template.Must(template.New("page").Parse(pageTemplate)),
		mux:   http.NewServeMux(),
	}

	server.setupRoutes()
	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return http.ListenAndServe(s.cfg.HTTPListen, s.mux)
}

// Handler exposes the route mux, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

// setupRoutes configures HTTP routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/api/ula", s.handleULAAPI)
	s.mux.HandleFunc("/api/registry", s.handleRegistryAPI)
}
