package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dgallion1/docrank/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

type submitRequest struct {
	CollectionDir string `json:"collection_dir"`
}

// handleSubmitCollection queues a collection directory for processing.
// The directory must be reachable from the server and contain the input
// spec; results are polled via the status endpoint.
func (s *Server) handleSubmitCollection(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.CollectionDir == "" {
		jsonError(w, "collection_dir is required", http.StatusBadRequest)
		return
	}

	dir := filepath.Clean(req.CollectionDir)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		jsonError(w, "collection_dir is not a readable directory", http.StatusBadRequest)
		return
	}
	if _, err := os.Stat(filepath.Join(dir, pipeline.InputFileName)); err != nil {
		jsonError(w, "collection_dir has no "+pipeline.InputFileName, http.StatusBadRequest)
		return
	}

	job := pipeline.NewJob(dir)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"job_id": job.ID,
		"status": string(pipeline.StatusQueued),
	})
}

// handleCollectionStatus reports a job's state, including the result once
// completed.
func (s *Server) handleCollectionStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.Job(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snapshot := job.Snapshot()
	writeJSON(w, http.StatusOK, &snapshot)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
