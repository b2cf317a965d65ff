package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the text-generation abstraction consumed by the roadmap
// pipeline. Implementations must honor ctx cancellation.
type Generator interface {
	// Generate produces a text completion for the prompt, retrying
	// transient failures per the client's options.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNoAPIKey indicates the client was constructed without an API key.
type ErrNoAPIKey struct{}

func (e *ErrNoAPIKey) Error() string {
	return "GEMINI_API_KEY is not configured"
}

// RetryExhausted wraps the last error after all attempts failed.
type RetryExhausted struct {
	Attempts int
	Last     error
}

func (e *RetryExhausted) Error() string {
	return fmt.Sprintf("generation failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetryExhausted) Unwrap() error { return e.Last }

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	opts   Options
	sleep  func(time.Duration) // injectable for tests
}

// NewGeminiClient creates a Gemini-backed client. It fails fast when no
// API key is present; callers that tolerate an unconfigured key should
// check for *ErrNoAPIKey and fall back.
func NewGeminiClient(ctx context.Context, apiKey string, opts Options) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ErrNoAPIKey{}
	}
	if opts.Model == "" {
		opts = DefaultOptions()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, opts: opts, sleep: time.Sleep}, nil
}

// Generate issues up to 1+Retries attempts with exponential backoff
// (Backoff x 2^attempt between attempts) and returns the last error
// once attempts are exhausted.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	return generateWithRetry(ctx, c.opts, c.sleep, func(ctx context.Context) (string, error) {
		return c.generateOnce(ctx, prompt)
	})
}

// generateWithRetry runs the retry loop around a single-attempt
// function. The loop accumulates the last error rather than using
// errors for control flow.
func generateWithRetry(ctx context.Context, opts Options, sleep func(time.Duration), attempt func(context.Context) (string, error)) (string, error) {
	var lastErr error
	attempts := opts.Retries + 1

	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			default:
			}
			sleep(opts.Backoff << (i - 1))
		}

		text, err := attempt(ctx)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}

	return "", &RetryExhausted{Attempts: attempts, Last: lastErr}
}

// generateOnce issues a single generation request with the per-attempt
// timeout applied.
func (c *GeminiClient) generateOnce(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.opts.Model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(attemptCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return textFromResponse(resp), nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// textFromResponse joins the first candidate's text parts. An
// unexpected response shape yields an empty string rather than an
// error; the extraction stage downstream treats that as unparsable.
func textFromResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, "")
}
