// Package server provides the HTTP REST API for the career compass service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/priyansh/career-compass/internal/config"
	"github.com/priyansh/career-compass/internal/db"
	"github.com/priyansh/career-compass/internal/llm"
	"github.com/priyansh/career-compass/internal/news"
	"github.com/priyansh/career-compass/internal/resources"
	"github.com/priyansh/career-compass/internal/roadmap"
	"github.com/priyansh/career-compass/internal/server/middleware"
	"github.com/priyansh/career-compass/internal/server/ratelimit"
	"github.com/priyansh/career-compass/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies
// it; tests substitute an in-memory fake.
type Store interface {
	GetUser(ctx context.Context, uid string) (*types.UserRecord, error)
	SaveProfile(ctx context.Context, profile types.Profile) error
	SavePlan(ctx context.Context, uid string, plan types.AIPlan, weeks []types.WeekEntry, skillAnalysis string) error
	SaveResources(ctx context.Context, uid string, resources map[string]types.TopicResources) error
	MergeProgress(ctx context.Context, uid string, delta types.Progress) (types.Progress, error)

	SampleQuestions(ctx context.Context, category string, n int) ([]types.Question, error)
	CategoryCounts(ctx context.Context) (map[string]int, error)
	GetQuizSession(ctx context.Context, uid, category string) (*types.QuizSession, error)
	PutQuizSession(ctx context.Context, uid string, session *types.QuizSession) error
	DeleteQuizSession(ctx context.Context, uid, category string) error
	GetHistory(ctx context.Context, uid, category string) ([]types.HistoryEntry, error)
	PutHistory(ctx context.Context, uid, category string, entries []types.HistoryEntry) error

	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateAccount(ctx context.Context, uid, email, passwordHash string) error
	GetCredentials(ctx context.Context, email string) (*db.Credentials, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	db          *db.DB // set in production; closed on shutdown
	generator   *roadmap.Generator
	enricher    *resources.Enricher
	news        *news.Service
	rateLimiter *ratelimit.Limiter
	authHandler *AuthHandler
	validate    *validator.Validate
}

// Deps bundles the collaborators the server routes around. LLM, Videos
// and Auth may be nil; the features they back degrade gracefully.
type Deps struct {
	Store  Store
	LLM    llm.Generator
	Videos resources.VideoSearcher
	News   *news.Service
	Auth   *AuthHandler
	Addr   string

	// GitHubBaseURL overrides the repository search endpoint (tests).
	GitHubBaseURL string
}

// New creates a production server instance from the environment config.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	var client llm.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, llm.DefaultOptions())
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = gemini
	} else {
		log.Println("[server] GEMINI_API_KEY not set, roadmap generation serves fallback plans")
	}

	var videos resources.VideoSearcher
	yt, err := resources.NewYouTubeSearcher(ctx, cfg.YouTubeKey)
	if err != nil {
		database.Close()
		return nil, err
	}
	if yt != nil {
		videos = yt
	} else {
		log.Println("[server] YOUTUBE_API_KEY not set, video enrichment disabled")
	}

	newsSvc := news.NewService(
		news.NewProvider(cfg.NewsAPIKey, cfg.NewsProvider),
		news.NewCache(cfg.NewsCacheTTL),
	)

	auth, err := newAuthFromEnv(database)
	if err != nil {
		database.Close()
		return nil, err
	}

	s := NewWithDeps(Deps{
		Store:  database,
		LLM:    client,
		Videos: videos,
		News:   newsSvc,
		Auth:   auth,
		Addr:   cfg.Addr(),
	})
	s.db = database
	return s, nil
}

// newAuthFromEnv wires the auth handler, or nil when JWT_SECRET is
// unset (the SPA then runs in unauthenticated demo mode).
func newAuthFromEnv(store Store) (*AuthHandler, error) {
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[server] JWT_SECRET not set, auth endpoints disabled")
		return nil, nil
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	return NewAuthHandler(NewUserService(store, passwordConfig), NewJWTService(jwtConfig)), nil
}

// NewWithDeps assembles the server around explicit collaborators.
func NewWithDeps(deps Deps) *Server {
	enricher := resources.NewEnricher(deps.Videos)
	if deps.GitHubBaseURL != "" {
		enricher.WithGitHub(deps.GitHubBaseURL, nil)
	}

	s := &Server{
		store:       deps.Store,
		generator:   roadmap.NewGenerator(deps.Store, deps.LLM),
		enricher:    enricher,
		news:        deps.News,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		authHandler: deps.Auth,
		validate:    validator.New(),
	}
	if s.news == nil {
		s.news = news.NewService(nil, news.NewCache(news.DefaultCacheTTL))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/onboarding", s.handleOnboarding)
	mux.HandleFunc("POST /api/generate-roadmap", s.handleGenerateRoadmap)
	mux.HandleFunc("POST /api/roadmap", s.handleLightRoadmap)
	mux.HandleFunc("GET /api/user/{uid}/plan", s.handleGetPlan)
	mux.HandleFunc("GET /api/resources/{uid}", s.handleResources)
	mux.HandleFunc("GET /api/news", s.handleNews)
	mux.HandleFunc("POST /api/progress", s.handleProgress)

	mux.HandleFunc("POST /api/aptitude-questions", s.handleAptitudeQuestions)
	mux.HandleFunc("GET /api/aptitude-status", s.handleAptitudeStatus)
	mux.HandleFunc("GET /api/aptitude-history", s.handleAptitudeHistory)
	mux.HandleFunc("POST /api/aptitude-session/start", s.handleQuizStart)
	mux.HandleFunc("POST /api/aptitude-session/answer", s.handleQuizAnswer)
	mux.HandleFunc("POST /api/aptitude-session/check", s.handleQuizCheck)
	mux.HandleFunc("POST /api/aptitude-session/next", s.handleQuizNext)
	mux.HandleFunc("POST /api/aptitude-session/resume", s.handleQuizResume)
	mux.HandleFunc("POST /api/aptitude-session/discard", s.handleQuizDiscard)

	if s.authHandler != nil {
		mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
		mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	}

	var handler http.Handler = mux
	if s.authHandler != nil {
		handler = middleware.OptionalAuth(s.authHandler.jwtService.AsTokenValidator())(handler)
	}

	s.httpServer = &http.Server{
		Addr:         deps.Addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(handler))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation requests can ride out LLM retries
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler stack for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For now this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
