package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/priyansh/career-compass/internal/profile"
	"github.com/priyansh/career-compass/internal/resume"
	"github.com/priyansh/career-compass/internal/server/middleware"
	"github.com/priyansh/career-compass/internal/types"
)

// OnboardingRequest is the body for POST /api/onboarding. Every field
// except uid is optional; omitted fields leave the stored value alone.
type OnboardingRequest struct {
	UID        string   `json:"uid" validate:"omitempty,max=128"`
	Name       string   `json:"name" validate:"omitempty,max=200"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Education  string   `json:"education"`
	Role       string   `json:"role"`
	TargetRole string   `json:"targetRole"`
	Goals      string   `json:"goals"`
	Preference string   `json:"preference"`
	Mode       string   `json:"mode"`
	ResumeURL  string   `json:"resumeUrl"`
	ResumeText string   `json:"resumeText"`
	Skills     []string `json:"skills"`

	PrimarySkill     string `json:"primarySkill"`
	LearningGoal     string `json:"learningGoal"`
	ExperienceLevel  string `json:"experienceLevel"`
	CareerAspiration string `json:"careerAspiration"`
	LearningStyle    string `json:"learningStyle"`
}

// OnboardingResponse echoes success plus any skills parsed from the
// submitted resume text.
type OnboardingResponse struct {
	Success      bool     `json:"success"`
	ParsedSkills []string `json:"parsedSkills"`
}

// handleOnboarding merges an intake submission into the user's profile,
// creating the user row on first contact.
func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	var req OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	uid := s.requestUID(r, req.UID)
	if uid == "" {
		s.errorResponse(w, http.StatusBadRequest, "uid is required")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing := types.Profile{}
	user, err := s.store.GetUser(r.Context(), uid)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load user: "+err.Error())
		return
	}
	if user != nil {
		existing = user.Profile
	}

	parsedSkills := resume.ExtractSkills(req.ResumeText)

	merged := profile.Merge(existing, uid, profile.Update{
		Name:             req.Name,
		Email:            req.Email,
		Education:        req.Education,
		Role:             req.Role,
		TargetRole:       req.TargetRole,
		Goals:            req.Goals,
		Preference:       req.Preference,
		Mode:             req.Mode,
		ResumeURL:        req.ResumeURL,
		Skills:           req.Skills,
		PrimarySkill:     req.PrimarySkill,
		LearningGoal:     req.LearningGoal,
		ExperienceLevel:  req.ExperienceLevel,
		CareerAspiration: req.CareerAspiration,
		LearningStyle:    req.LearningStyle,
	}, parsedSkills, time.Now().UTC())

	if err := s.store.SaveProfile(r.Context(), merged); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, OnboardingResponse{
		Success:      true,
		ParsedSkills: parsedSkills,
	})
}

// requestUID resolves the acting uid: an explicit body/path value wins,
// otherwise the uid from a bearer token if one was presented.
func (s *Server) requestUID(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	uid, err := middleware.GetUserID(r)
	if err != nil {
		return ""
	}
	return uid
}
