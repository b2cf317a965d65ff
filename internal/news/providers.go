package news

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/priyansh/career-compass/internal/fetch"
)

// Provider selection environment variables.
const (
	providerEnvVar = "NEWS_PROVIDER"
	apiKeyEnvVar   = "NEWS_API_KEY"
)

// ProviderFromEnv builds the configured provider, or nil when no API
// key is set (the service then serves the stub fallback).
func ProviderFromEnv() Provider {
	return NewProvider(os.Getenv(apiKeyEnvVar), os.Getenv(providerEnvVar))
}

// NewProvider selects the provider by name; an empty API key yields nil.
func NewProvider(apiKey, name string) Provider {
	if apiKey == "" {
		return nil
	}
	switch name {
	case "newsdata":
		return &NewsdataProvider{APIKey: apiKey}
	default:
		return &NewsAPIProvider{APIKey: apiKey}
	}
}

// NewsAPIProvider fetches from newsapi.org.
type NewsAPIProvider struct {
	APIKey  string
	BaseURL string // defaults to the public API; injectable for tests
	Options *fetch.Options
}

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Name identifies the provider in logs and responses.
func (p *NewsAPIProvider) Name() string { return "newsapi" }

// Fetch queries the everything endpoint and normalizes the articles.
func (p *NewsAPIProvider) Fetch(ctx context.Context, q Query) (*Result, error) {
	base := p.BaseURL
	if base == "" {
		base = "https://newsapi.org/v2"
	}

	params := url.Values{}
	params.Set("apiKey", p.APIKey)
	params.Set("language", q.Language)
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	endpoint := base + "/everything"
	if q.Q != "" {
		params.Set("q", q.Q)
	} else {
		endpoint = base + "/top-headlines"
		params.Set("category", q.Category)
	}

	var resp newsAPIResponse
	if err := fetch.GetJSON(ctx, endpoint+"?"+params.Encode(), p.Options, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q", resp.Status)
	}

	articles := make([]Article, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		articles = append(articles, Article{
			Title:       stripHTML(a.Title),
			Description: stripHTML(a.Description),
			URL:         a.URL,
			Source:      a.Source.Name,
			ImageURL:    a.URLToImage,
			PublishedAt: a.PublishedAt,
		})
	}

	return &Result{
		Status:       "ok",
		Provider:     p.Name(),
		TotalResults: resp.TotalResults,
		Articles:     articles,
	}, nil
}

// NewsdataProvider fetches from newsdata.io.
type NewsdataProvider struct {
	APIKey  string
	BaseURL string
	Options *fetch.Options
}

type newsdataResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Results      []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Link        string   `json:"link"`
		SourceID    string   `json:"source_id"`
		ImageURL    string   `json:"image_url"`
		PubDate     string   `json:"pubDate"`
		Creator     []string `json:"creator"`
	} `json:"results"`
}

// Name identifies the provider in logs and responses.
func (p *NewsdataProvider) Name() string { return "newsdata" }

// Fetch queries the latest endpoint and normalizes the articles.
func (p *NewsdataProvider) Fetch(ctx context.Context, q Query) (*Result, error) {
	base := p.BaseURL
	if base == "" {
		base = "https://newsdata.io/api/1"
	}

	params := url.Values{}
	params.Set("apikey", p.APIKey)
	params.Set("language", q.Language)
	if q.Q != "" {
		params.Set("q", q.Q)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	var resp newsdataResponse
	if err := fetch.GetJSON(ctx, base+"/latest?"+params.Encode(), p.Options, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("newsdata returned status %q", resp.Status)
	}

	articles := make([]Article, 0, len(resp.Results))
	for i, a := range resp.Results {
		if i >= q.PageSize {
			break
		}
		articles = append(articles, Article{
			Title:       stripHTML(a.Title),
			Description: stripHTML(a.Description),
			URL:         a.Link,
			Source:      a.SourceID,
			ImageURL:    a.ImageURL,
			PublishedAt: a.PubDate,
		})
	}

	return &Result{
		Status:       "ok",
		Provider:     p.Name(),
		TotalResults: resp.TotalResults,
		Articles:     articles,
	}, nil
}
