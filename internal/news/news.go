// Package news serves the career news feed from NewsAPI or Newsdata,
// with a TTL response cache and a deterministic stub fallback so the
// feed endpoint never fails for upstream reasons.
package news

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query identifies one news request; its signature keys the cache.
type Query struct {
	Q        string
	Category string
	Language string
	PageSize int
}

// Signature returns the cache key for the query.
func (q Query) Signature() string {
	return strings.Join([]string{q.Q, q.Category, q.Language, strconv.Itoa(q.PageSize)}, "|")
}

// normalized applies defaults.
func (q Query) normalized() Query {
	if q.Language == "" {
		q.Language = "en"
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}
	if q.Q == "" && q.Category == "" {
		q.Q = "careers"
	}
	return q
}

// Article is one feed item, normalized across providers.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	ImageURL    string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// Result is the feed response.
type Result struct {
	Status       string    `json:"status"`
	Provider     string    `json:"provider"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Provider fetches articles from one upstream news API.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, q Query) (*Result, error)
}

// Service answers feed queries through the cache, delegating to the
// provider and substituting the stub result on any upstream failure.
// A nil provider (no API key) always serves the stub.
type Service struct {
	provider Provider
	cache    *Cache
}

// NewService creates a news service. provider may be nil.
func NewService(provider Provider, cache *Cache) *Service {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Service{provider: provider, cache: cache}
}

// Get serves a query, preferring the cache. Upstream failures are
// logged and replaced by the fallback stub; fallback results are not
// cached so a recovered upstream is retried immediately.
func (s *Service) Get(ctx context.Context, q Query) *Result {
	q = q.normalized()
	key := q.Signature()

	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	if s.provider == nil {
		return fallbackResult(q)
	}

	result, err := s.provider.Fetch(ctx, q)
	if err != nil {
		log.Printf("[news] provider %s failed: %v", s.provider.Name(), err)
		return fallbackResult(q)
	}

	s.cache.Put(key, result)
	return result
}

// fallbackResult is the deterministic stub served when no provider is
// configured or the upstream call fails: exactly one article.
func fallbackResult(q Query) *Result {
	topic := q.Q
	if topic == "" {
		topic = q.Category
	}
	return &Result{
		Status:       "fallback",
		Provider:     "stub",
		TotalResults: 1,
		Articles: []Article{
			{
				Title:       fmt.Sprintf("Stay current on %s", topic),
				Description: "Live news is unavailable right now. Configure a news API key to see real headlines here.",
				URL:         "https://news.google.com/search?q=" + url.QueryEscape(topic),
				Source:      "Career Compass",
				PublishedAt: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}
}
