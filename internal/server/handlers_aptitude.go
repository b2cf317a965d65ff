package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/priyansh/career-compass/internal/aptitude"
	"github.com/priyansh/career-compass/internal/types"
)

const defaultQuestionCount = 10

// AptitudeQuestionsRequest is the body for POST /api/aptitude-questions.
type AptitudeQuestionsRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// handleAptitudeQuestions deals a random question set without opening
// a session (practice mode).
func (s *Server) handleAptitudeQuestions(w http.ResponseWriter, r *http.Request) {
	var req AptitudeQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Category == "" {
		s.errorResponse(w, http.StatusBadRequest, "category is required")
		return
	}

	questions, err := s.sampleQuestions(r, req.Category, req.Count)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load questions: "+err.Error())
		return
	}
	if len(questions) == 0 {
		s.errorResponse(w, http.StatusNotFound, "no questions for category: "+req.Category)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": questions})
}

// handleAptitudeStatus reports the question counts per category.
func (s *Server) handleAptitudeStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CategoryCounts(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load categories: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": counts})
}

// handleAptitudeHistory returns the per-category quiz history.
func (s *Server) handleAptitudeHistory(w http.ResponseWriter, r *http.Request) {
	uid := s.requestUID(r, r.URL.Query().Get("uid"))
	category := r.URL.Query().Get("category")
	if uid == "" || category == "" {
		s.errorResponse(w, http.StatusBadRequest, "uid and category are required")
		return
	}

	history, err := s.store.GetHistory(r.Context(), uid, category)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load history: "+err.Error())
		return
	}
	if history == nil {
		history = []types.HistoryEntry{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"history": history})
}

// QuizRequest is the shared body for the aptitude session endpoints.
type QuizRequest struct {
	UID      string `json:"uid"`
	Category string `json:"category"`
	Count    int    `json:"count"`
	Option   string `json:"option"`
	// Seconds elapsed on the client since the last state change.
	TimeSpent int `json:"timeSpent"`
}

// QuizResponse wraps a session snapshot; Correct is set on check and
// History on completion.
type QuizResponse struct {
	Session *types.QuizSession   `json:"session"`
	Correct *bool                `json:"correct,omitempty"`
	History []types.HistoryEntry `json:"history,omitempty"`
}

// handleQuizStart deals a fresh question set and opens a session,
// replacing any abandoned one for the same (uid, category).
func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuizRequest(w, r)
	if !ok {
		return
	}

	questions, err := s.sampleQuestions(r, req.Category, req.Count)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load questions: "+err.Error())
		return
	}

	session, err := aptitude.NewSession(req.Category, questions)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "no questions for category: "+req.Category)
		return
	}

	if err := s.store.PutQuizSession(r.Context(), req.UID, session); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save session: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, QuizResponse{Session: session})
}

// handleQuizAnswer records the picked option.
func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuizRequest(w, r)
	if !ok {
		return
	}
	session, ok := s.loadSession(w, r, req)
	if !ok {
		return
	}

	if err := aptitude.Select(session, req.Option); err != nil {
		s.errorResponse(w, quizStatus(err), err.Error())
		return
	}
	s.persistSession(w, r, req.UID, session, QuizResponse{Session: session})
}

// handleQuizCheck grades the selected option against the answer.
func (s *Server) handleQuizCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuizRequest(w, r)
	if !ok {
		return
	}
	session, ok := s.loadSession(w, r, req)
	if !ok {
		return
	}

	aptitude.AddTime(session, req.TimeSpent)
	correct, err := aptitude.Check(session)
	if err != nil {
		s.errorResponse(w, quizStatus(err), err.Error())
		return
	}
	s.persistSession(w, r, req.UID, session, QuizResponse{Session: session, Correct: &correct})
}

// handleQuizNext advances to the following question, or completes the
// quiz: the snapshot is deleted and a history entry recorded.
func (s *Server) handleQuizNext(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuizRequest(w, r)
	if !ok {
		return
	}
	session, ok := s.loadSession(w, r, req)
	if !ok {
		return
	}

	aptitude.AddTime(session, req.TimeSpent)
	if err := aptitude.Next(session); err != nil {
		s.errorResponse(w, quizStatus(err), err.Error())
		return
	}

	if !session.ShowSummary {
		s.persistSession(w, r, req.UID, session, QuizResponse{Session: session})
		return
	}

	// Quiz complete: replace the snapshot with a history entry.
	history, err := s.store.GetHistory(r.Context(), req.UID, req.Category)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load history: "+err.Error())
		return
	}
	history = aptitude.RecordHistory(history, aptitude.Summary(session), time.Now().UTC())
	if err := s.store.PutHistory(r.Context(), req.UID, req.Category, history); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save history: "+err.Error())
		return
	}
	if err := s.store.DeleteQuizSession(r.Context(), req.UID, req.Category); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to close session: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, QuizResponse{Session: session, History: history})
}

// handleQuizResume returns the saved snapshot so the client can pick
// up where it left off.
func (s *Server) handleQuizResume(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuizRequest(w, r)
	if !ok {
		return
	}
	session, ok := s.loadSession(w, r, req)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, QuizResponse{Session: session})
}

// handleQuizDiscard drops the saved snapshot and deals a fresh set.
func (s *Server) handleQuizDiscard(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeQuizRequest(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteQuizSession(r.Context(), req.UID, req.Category); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to discard session: "+err.Error())
		return
	}
	s.handleQuizStart(w, cloneQuizRequest(r, req))
}

// decodeQuizRequest parses and validates the shared session body.
func (s *Server) decodeQuizRequest(w http.ResponseWriter, r *http.Request) (QuizRequest, bool) {
	var req QuizRequest
	if body, ok := r.Context().Value(quizBodyKey{}).(QuizRequest); ok {
		req = body
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, false
	}

	req.UID = s.requestUID(r, req.UID)
	if req.UID == "" || req.Category == "" {
		s.errorResponse(w, http.StatusBadRequest, "uid and category are required")
		return req, false
	}
	return req, true
}

// quizBodyKey carries an already-decoded body across the discard ->
// start hand-off (the original body reader is spent by then).
type quizBodyKey struct{}

func cloneQuizRequest(r *http.Request, req QuizRequest) *http.Request {
	return r.WithContext(contextWithQuizBody(r, req))
}

func contextWithQuizBody(r *http.Request, req QuizRequest) context.Context {
	return context.WithValue(r.Context(), quizBodyKey{}, req)
}

// loadSession fetches the snapshot, answering 404 when none exists.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request, req QuizRequest) (*types.QuizSession, bool) {
	session, err := s.store.GetQuizSession(r.Context(), req.UID, req.Category)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load session: "+err.Error())
		return nil, false
	}
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "no quiz in progress for category: "+req.Category)
		return nil, false
	}
	return session, true
}

// persistSession saves the snapshot and, on success, writes the reply.
func (s *Server) persistSession(w http.ResponseWriter, r *http.Request, uid string, session *types.QuizSession, resp QuizResponse) {
	if err := s.store.PutQuizSession(r.Context(), uid, session); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save session: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// sampleQuestions applies the default count and samples the bank.
func (s *Server) sampleQuestions(r *http.Request, category string, count int) ([]types.Question, error) {
	if count <= 0 {
		count = defaultQuestionCount
	}
	return s.store.SampleQuestions(r.Context(), category, count)
}

// quizStatus maps state machine violations to HTTP statuses.
func quizStatus(err error) int {
	switch {
	case errors.Is(err, aptitude.ErrNothingSelected):
		return http.StatusBadRequest
	case errors.Is(err, aptitude.ErrAlreadyChecked),
		errors.Is(err, aptitude.ErrNotChecked),
		errors.Is(err, aptitude.ErrQuizComplete):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
