// Package server implements the HTTP API for computing and storing
// constellation layouts.
//
// The API is a thin shell over the pipeline Runner and the layout store;
// all computation semantics live in the pkg packages.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/spherelab/constellation/pkg/pipeline"
	"github.com/spherelab/constellation/pkg/store"
)

// Server wires the pipeline runner and layout store into an HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store disables the persistence endpoints'
// backing and is replaced by an in-memory store.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleComputeLayout)

		r.Route("/layouts", func(r chi.Router) {
			r.Post("/", s.handleCreateLayout)
			r.Get("/", s.handleListLayouts)
			r.Get("/{id}", s.handleGetLayout)
			r.Delete("/{id}", s.handleDeleteLayout)
		})
	})

	return r
}
