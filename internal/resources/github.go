package resources

import (
	"context"
	"net/url"

	"github.com/priyansh/career-compass/internal/fetch"
	"github.com/priyansh/career-compass/internal/types"
)

const defaultGitHubBaseURL = "https://api.github.com"

type githubSearchResponse struct {
	Items []struct {
		FullName    string `json:"full_name"`
		HTMLURL     string `json:"html_url"`
		Description string `json:"description"`
		Stars       int    `json:"stargazers_count"`
	} `json:"items"`
}

// searchGitHub finds popular repositories for a topic via the public
// search API (no auth; subject to the unauthenticated rate limit).
func searchGitHub(ctx context.Context, baseURL, topic string, limit int, opts *fetch.Options) ([]types.RepoLink, error) {
	if baseURL == "" {
		baseURL = defaultGitHubBaseURL
	}

	params := url.Values{}
	params.Set("q", topic+" in:name,description")
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", "10")

	var resp githubSearchResponse
	if err := fetch.GetJSON(ctx, baseURL+"/search/repositories?"+params.Encode(), opts, &resp); err != nil {
		return nil, err
	}

	repos := make([]types.RepoLink, 0, limit)
	for _, item := range resp.Items {
		if len(repos) == limit {
			break
		}
		repos = append(repos, types.RepoLink{
			Name:        item.FullName,
			URL:         item.HTMLURL,
			Description: item.Description,
			Stars:       item.Stars,
		})
	}
	return repos, nil
}
