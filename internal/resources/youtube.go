package resources

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"github.com/priyansh/career-compass/internal/types"
)

// VideoSearcher finds tutorial videos for a topic.
type VideoSearcher interface {
	Search(ctx context.Context, query string, max int64) ([]types.VideoLink, error)
}

// YouTubeSearcher implements VideoSearcher against the YouTube Data API.
type YouTubeSearcher struct {
	service *youtube.Service
}

// NewYouTubeSearcher creates a searcher, or nil when no API key is
// configured (enrichment then degrades to empty video lists).
func NewYouTubeSearcher(ctx context.Context, apiKey string) (*YouTubeSearcher, error) {
	if apiKey == "" {
		return nil, nil
	}
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &YouTubeSearcher{service: service}, nil
}

// Search runs a video search and maps results to links.
func (s *YouTubeSearcher) Search(ctx context.Context, query string, max int64) ([]types.VideoLink, error) {
	call := s.service.Search.List([]string{"snippet"}).
		Context(ctx).
		Q(query + " tutorial").
		Type("video").
		SafeSearch("strict").
		MaxResults(max)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search failed: %w", err)
	}

	videos := make([]types.VideoLink, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		video := types.VideoLink{
			Title:   item.Snippet.Title,
			URL:     "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			Channel: item.Snippet.ChannelTitle,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			video.Thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		videos = append(videos, video)
	}
	return videos, nil
}
