package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spherelab/constellation/pkg/errors"
	"github.com/spherelab/constellation/pkg/export"
	"github.com/spherelab/constellation/pkg/graph"
	"github.com/spherelab/constellation/pkg/pipeline"
	"github.com/spherelab/constellation/pkg/store"
)

// layoutRequest is the payload for layout computation endpoints.
type layoutRequest struct {
	// Name labels the stored record; ignored by the stateless endpoint.
	Name string `json:"name,omitempty"`

	// Nodes and Edges describe the input graph.
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges,omitempty"`

	// AllNodes optionally lists node IDs that must receive positions even
	// when absent from the graph. Defaults to the graph's own nodes.
	AllNodes []string `json:"all_nodes,omitempty"`

	// Options tunes the pipeline.
	Options pipeline.Options `json:"options"`
}

// layoutResponse is the stateless computation result.
type layoutResponse struct {
	Document  export.Document `json:"document"`
	GraphHash string          `json:"graph_hash"`
	Cached    bool            `json:"cached"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleComputeLayout computes a layout without persisting it.
func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	g := graph.New(req.Nodes, req.Edges)
	allNodes := req.AllNodes
	if len(allNodes) == 0 {
		allNodes = g.NodeIDs()
	}

	result, err := s.runner.Execute(r.Context(), g, allNodes, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Document:  result.Document,
		GraphHash: result.GraphHash,
		Cached:    result.CacheInfo.LayoutHit,
	})
}

// handleCreateLayout computes a layout and stores it under a fresh ID.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	g := graph.New(req.Nodes, req.Edges)
	allNodes := req.AllNodes
	if len(allNodes) == 0 {
		allNodes = g.NodeIDs()
	}

	result, err := s.runner.Execute(r.Context(), g, allNodes, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := store.NewRecord(req.Name, g, result.Document)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) decodeLayoutRequest(w http.ResponseWriter, r *http.Request) (layoutRequest, bool) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return layoutRequest{}, false
	}
	if len(req.Nodes) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidGraph, "request graph has no nodes"))
		return layoutRequest{}, false
	}
	return req, true
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}

func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
