// Package resources enriches roadmap topics with learning material:
// YouTube videos, course search links, and popular GitHub repositories.
package resources

import (
	"context"
	"log"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/priyansh/career-compass/internal/fetch"
	"github.com/priyansh/career-compass/internal/types"
)

const (
	maxVideosPerTopic = 3
	maxReposPerTopic  = 3
	maxConcurrency    = 4
)

// Enricher gathers per-topic resources. Individual lookups are
// best-effort: a failed source yields an empty list for that source
// rather than failing the topic.
type Enricher struct {
	videos        VideoSearcher // nil disables video enrichment
	githubBaseURL string
	fetchOpts     *fetch.Options
}

// NewEnricher creates an enricher. videos may be nil.
func NewEnricher(videos VideoSearcher) *Enricher {
	return &Enricher{videos: videos}
}

// WithGitHub overrides the repository search endpoint and fetch
// options; zero values keep the public API.
func (e *Enricher) WithGitHub(baseURL string, opts *fetch.Options) *Enricher {
	e.githubBaseURL = baseURL
	e.fetchOpts = opts
	return e
}

// EnrichTopics resolves resources for each topic concurrently and
// returns a map keyed by topic name. Duplicate and empty topics are
// skipped.
func (e *Enricher) EnrichTopics(ctx context.Context, topics []string) map[string]types.TopicResources {
	out := make(map[string]types.TopicResources, len(topics))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if topic == "" || seen[topic] {
			continue
		}
		seen[topic] = true

		g.Go(func() error {
			res := e.enrichTopic(ctx, topic)
			mu.Lock()
			out[topic] = res
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only orders completion.
	_ = g.Wait()
	return out
}

func (e *Enricher) enrichTopic(ctx context.Context, topic string) types.TopicResources {
	res := types.TopicResources{
		YTVideos: []types.VideoLink{},
		Courses:  courseLinks(topic),
		GitHub:   []types.RepoLink{},
	}

	if e.videos != nil {
		videos, err := e.videos.Search(ctx, topic, maxVideosPerTopic)
		if err != nil {
			log.Printf("[resources] video search for %q failed: %v", topic, err)
		} else {
			res.YTVideos = videos
		}
	}

	repos, err := searchGitHub(ctx, e.githubBaseURL, topic, maxReposPerTopic, e.fetchOpts)
	if err != nil {
		log.Printf("[resources] github search for %q failed: %v", topic, err)
	} else {
		res.GitHub = repos
	}

	return res
}

// SearchVideos exposes the video source for ad-hoc lookups. Without a
// configured searcher it returns an empty list.
func (e *Enricher) SearchVideos(ctx context.Context, query string, max int64) ([]types.VideoLink, error) {
	if e.videos == nil {
		return []types.VideoLink{}, nil
	}
	return e.videos.Search(ctx, query, max)
}

// courseLinks builds deterministic course search links for a topic.
func courseLinks(topic string) []types.CourseLink {
	q := url.QueryEscape(topic)
	return []types.CourseLink{
		{
			Provider: "Coursera",
			Title:    topic + " courses on Coursera",
			URL:      "https://www.coursera.org/search?query=" + q,
		},
		{
			Provider: "Udemy",
			Title:    topic + " courses on Udemy",
			URL:      "https://www.udemy.com/courses/search/?q=" + q,
		},
		{
			Provider: "freeCodeCamp",
			Title:    topic + " on freeCodeCamp",
			URL:      "https://www.freecodecamp.org/news/search/?query=" + q,
		},
	}
}
