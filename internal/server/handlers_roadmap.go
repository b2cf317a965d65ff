package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/priyansh/career-compass/internal/types"
)

// GenerateRoadmapRequest is the body for POST /api/generate-roadmap.
type GenerateRoadmapRequest struct {
	UID string `json:"uid"`
}

// handleGenerateRoadmap runs the full generation pipeline for a stored
// profile and persists the result. Generation failures degrade to
// fallback plans inside the pipeline; only an unknown uid or a
// persistence failure surfaces as an error.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req GenerateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	uid := s.requestUID(r, req.UID)
	if uid == "" {
		s.errorResponse(w, http.StatusBadRequest, "uid is required")
		return
	}

	result, err := s.generator.Generate(r.Context(), uid)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// LightRoadmapRequest is the body for POST /api/roadmap: the
// lighter-weight variant that takes its inputs directly and persists
// nothing.
type LightRoadmapRequest struct {
	UID    string   `json:"uid"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Goals  string   `json:"goals"`
}

// LightRoadmapResponse pairs the plan with tutorial videos for the
// requested skills.
type LightRoadmapResponse struct {
	Roadmap []types.WeekEntry `json:"roadmap"`
	Videos  []types.VideoLink `json:"videos"`
}

const (
	lightVideoSkills   = 3
	lightVideosPerSkil = 2
)

// handleLightRoadmap generates an ad-hoc plan plus video suggestions.
func (s *Server) handleLightRoadmap(w http.ResponseWriter, r *http.Request) {
	var req LightRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" && len(req.Skills) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "name or skills is required")
		return
	}

	weeks := s.generator.GenerateLight(r.Context(), req.Name, req.Skills, req.Goals)

	videos := []types.VideoLink{}
	for i, skill := range req.Skills {
		if i == lightVideoSkills {
			break
		}
		found, err := s.enricher.SearchVideos(r.Context(), skill, lightVideosPerSkil)
		if err != nil {
			log.Printf("[server] video lookup for %q failed: %v", skill, err)
			continue
		}
		videos = append(videos, found...)
	}

	s.jsonResponse(w, http.StatusOK, LightRoadmapResponse{Roadmap: weeks, Videos: videos})
}

// PlanResponse is the stored plan view for GET /api/user/{uid}/plan.
type PlanResponse struct {
	Profile       types.Profile                   `json:"profile"`
	Roadmap       []types.WeekEntry               `json:"roadmap"`
	AIPlan        *types.AIPlan                   `json:"aiPlan,omitempty"`
	SkillAnalysis string                          `json:"skillAnalysis,omitempty"`
	Resources     map[string]types.TopicResources `json:"resources,omitempty"`
	Progress      types.Progress                  `json:"progress,omitempty"`
}

// handleGetPlan returns the persisted plan for a user.
func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	user, err := s.store.GetUser(r.Context(), uid)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load user: "+err.Error())
		return
	}
	if user == nil {
		s.errorResponse(w, http.StatusNotFound, "user not found: "+uid)
		return
	}

	roadmapWeeks := user.Roadmap
	if roadmapWeeks == nil {
		roadmapWeeks = []types.WeekEntry{}
	}

	s.jsonResponse(w, http.StatusOK, PlanResponse{
		Profile:       user.Profile,
		Roadmap:       roadmapWeeks,
		AIPlan:        user.AIPlan,
		SkillAnalysis: user.SkillAnalysis,
		Resources:     user.Resources,
		Progress:      user.Progress,
	})
}
