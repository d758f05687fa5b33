package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bnbowman/gffio/pkg/index"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")
	if id == "" {
		sendError(w, "Feature ID is required", http.StatusBadRequest)
		return
	}

	rec, err := s.index.Get(id)
	if s.metrics != nil {
		s.metrics.RecordLookup("get", err == nil, time.Since(start))
	}
	if err != nil {
		if errors.Is(err, index.ErrNotFound) {
			sendError(w, "Feature not found: "+id, http.StatusNotFound)
			return
		}
		sendError(w, "Error looking up feature: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, NewFeatureView(rec))
}

func (s *Server) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	prefix := r.URL.Query().Get("prefix")

	keys, err := s.index.Keys(prefix)
	if s.metrics != nil {
		s.metrics.RecordLookup("keys", err == nil, time.Since(start))
	}
	if err != nil {
		sendError(w, "Error listing features: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if keys == nil {
		keys = []string{}
	}

	sendSuccess(w, map[string]interface{}{"ids": keys, "count": len(keys)})
}

func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data}) //nolint:errcheck
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(APIResponse{Success: false, Error: message}) //nolint:errcheck
}
