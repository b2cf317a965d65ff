package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	result *Result
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return "stub-provider" }

func (p *stubProvider) Fetch(context.Context, Query) (*Result, error) {
	p.calls++
	return p.result, p.err
}

func okResult() *Result {
	return &Result{
		Status:       "ok",
		Provider:     "stub-provider",
		TotalResults: 1,
		Articles:     []Article{{Title: "Go 1.24 released", URL: "https://example.com"}},
	}
}

func TestService_NoProviderServesFallback(t *testing.T) {
	svc := NewService(nil, NewCache(time.Minute))

	res := svc.Get(context.Background(), Query{Q: "ai"})

	assert.Equal(t, "fallback", res.Status)
	require.Len(t, res.Articles, 1)
	assert.Contains(t, res.Articles[0].Title, "ai")
}

func TestService_ProviderFailureServesFallback(t *testing.T) {
	provider := &stubProvider{err: errors.New("rate limited")}
	svc := NewService(provider, NewCache(time.Minute))

	res := svc.Get(context.Background(), Query{Q: "ai"})

	assert.Equal(t, "fallback", res.Status)
	require.Len(t, res.Articles, 1)
}

func TestService_CachesWithinTTL(t *testing.T) {
	provider := &stubProvider{result: okResult()}
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	cache := newCacheWithClock(time.Minute, func() time.Time { return now })
	svc := NewService(provider, cache)

	first := svc.Get(context.Background(), Query{Q: "go"})
	second := svc.Get(context.Background(), Query{Q: "go"})

	assert.Equal(t, 1, provider.calls)
	assert.Same(t, first, second)
}

func TestService_CacheExpiresAfterTTL(t *testing.T) {
	provider := &stubProvider{result: okResult()}
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	cache := newCacheWithClock(time.Minute, func() time.Time { return now })
	svc := NewService(provider, cache)

	svc.Get(context.Background(), Query{Q: "go"})
	now = now.Add(61 * time.Second)
	svc.Get(context.Background(), Query{Q: "go"})

	assert.Equal(t, 2, provider.calls)
}

func TestService_DistinctQuerySignatures(t *testing.T) {
	provider := &stubProvider{result: okResult()}
	svc := NewService(provider, NewCache(time.Minute))

	svc.Get(context.Background(), Query{Q: "go"})
	svc.Get(context.Background(), Query{Q: "rust"})

	assert.Equal(t, 2, provider.calls)
}

func TestService_FallbackNotCached(t *testing.T) {
	provider := &stubProvider{err: errors.New("down")}
	svc := NewService(provider, NewCache(time.Minute))

	svc.Get(context.Background(), Query{Q: "go"})
	provider.err = nil
	provider.result = okResult()
	res := svc.Get(context.Background(), Query{Q: "go"})

	assert.Equal(t, "ok", res.Status)
}

func TestNewsAPIProvider_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "ai", r.URL.Query().Get("q"))
		assert.Equal(t, "key123", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{"source": {"name": "TechDaily"}, "title": "AI hiring <b>surges</b>", "description": "<p>Demand is up.</p>", "url": "https://example.com/a"},
				{"source": {"name": "DevWeekly"}, "title": "Plain title", "description": "Plain description", "url": "https://example.com/b"}
			]
		}`))
	}))
	defer srv.Close()

	p := &NewsAPIProvider{APIKey: "key123", BaseURL: srv.URL}
	res, err := p.Fetch(context.Background(), Query{Q: "ai", Language: "en", PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, "newsapi", res.Provider)
	assert.Equal(t, 2, res.TotalResults)
	require.Len(t, res.Articles, 2)
	// HTML in provider fields is stripped to plain text.
	assert.Equal(t, "AI hiring surges", res.Articles[0].Title)
	assert.Equal(t, "Demand is up.", res.Articles[0].Description)
	assert.Equal(t, "TechDaily", res.Articles[0].Source)
}

func TestNewsAPIProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status": "error"}`))
	}))
	defer srv.Close()

	p := &NewsAPIProvider{APIKey: "k", BaseURL: srv.URL}
	_, err := p.Fetch(context.Background(), Query{Q: "ai", Language: "en", PageSize: 5})
	assert.Error(t, err)
}

func TestNewsdataProvider_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "key456", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{
			"status": "success",
			"totalResults": 1,
			"results": [{"title": "T", "description": "D", "link": "https://example.com", "source_id": "src", "pubDate": "2026-08-20"}]
		}`))
	}))
	defer srv.Close()

	p := &NewsdataProvider{APIKey: "key456", BaseURL: srv.URL}
	res, err := p.Fetch(context.Background(), Query{Q: "go", Language: "en", PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, "newsdata", res.Provider)
	require.Len(t, res.Articles, 1)
	assert.Equal(t, "src", res.Articles[0].Source)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain text", "plain text"},
		{"<p>hello <b>world</b></p>", "hello world"},
		{"  spaced  ", "spaced"},
		{"a <br> b", "a b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, stripHTML(tt.input))
	}
}
