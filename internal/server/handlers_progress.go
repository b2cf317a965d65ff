package server

import (
	"encoding/json"
	"net/http"

	"github.com/priyansh/career-compass/internal/types"
)

// ProgressRequest is the body for POST /api/progress. A single flag is
// submitted as {week, topic, type, completed}; a partial nested map in
// progress folds several flags at once. Either form merges into the
// stored map.
type ProgressRequest struct {
	UID       string         `json:"uid"`
	Week      string         `json:"week"`
	Topic     string         `json:"topic"`
	Type      string         `json:"type"`
	Completed bool           `json:"completed"`
	Progress  types.Progress `json:"progress"`
}

// ProgressResponse echoes the merged completion map.
type ProgressResponse struct {
	Success  bool           `json:"success"`
	Progress types.Progress `json:"progress"`
}

// handleProgress merges submitted completion flags into the user's
// stored progress.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	uid := s.requestUID(r, req.UID)
	if uid == "" {
		s.errorResponse(w, http.StatusBadRequest, "uid is required")
		return
	}

	delta := req.Progress
	if req.Week != "" && req.Topic != "" && req.Type != "" {
		if delta == nil {
			delta = types.Progress{}
		}
		if delta[req.Week] == nil {
			delta[req.Week] = map[string]map[string]bool{}
		}
		if delta[req.Week][req.Topic] == nil {
			delta[req.Week][req.Topic] = map[string]bool{}
		}
		delta[req.Week][req.Topic][req.Type] = req.Completed
	}
	if len(delta) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "progress is required")
		return
	}

	user, err := s.store.GetUser(r.Context(), uid)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load user: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "user not found: "+uid)
		return
	}

	merged, err := s.store.MergeProgress(r.Context(), uid, delta)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save progress: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProgressResponse{Success: true, Progress: merged})
}
