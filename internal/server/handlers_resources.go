package server

import (
	"net/http"
	"strconv"

	"github.com/priyansh/career-compass/internal/news"
	"github.com/priyansh/career-compass/internal/types"
)

// handleResources enriches every topic of the user's stored roadmap
// and persists the result back onto the user row.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
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

	var topics []string
	for _, week := range user.Roadmap {
		topics = append(topics, week.Topics...)
	}
	if len(topics) == 0 {
		s.jsonResponse(w, http.StatusOK, map[string]types.TopicResources{})
		return
	}

	enriched := s.enricher.EnrichTopics(r.Context(), topics)

	if err := s.store.SaveResources(r.Context(), uid, enriched); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resources: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, enriched)
}

// handleNews serves the career news feed. Upstream failures degrade to
// the stub article inside the service, so this always answers 200.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := news.Query{
		Q:        r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Language: r.URL.Query().Get("language"),
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			q.PageSize = n
		}
	}

	s.jsonResponse(w, http.StatusOK, s.news.Get(r.Context(), q))
}
