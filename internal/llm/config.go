// Package llm provides the Gemini text-generation client used by the
// roadmap pipeline, with explicit retry and timeout handling.
package llm

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the generation contract.
const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultTimeout   = 45 * time.Second
	DefaultRetries   = 2
	DefaultBackoff   = 800 * time.Millisecond
	timeoutEnvVar    = "GEMINI_TIMEOUT_MS"
	apiKeyEnvVar     = "GEMINI_API_KEY"
	modelOverrideVar = "GEMINI_MODEL"
)

// Options configures a generation call.
type Options struct {
	Model   string
	Timeout time.Duration // per-attempt timeout
	Retries int           // additional attempts after the first
	Backoff time.Duration // base backoff, doubled per attempt
}

// DefaultOptions returns the generation defaults, honoring
// GEMINI_TIMEOUT_MS and GEMINI_MODEL when set.
func DefaultOptions() Options {
	opts := Options{
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
		Retries: DefaultRetries,
		Backoff: DefaultBackoff,
	}
	if ms := os.Getenv(timeoutEnvVar); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			opts.Timeout = time.Duration(v) * time.Millisecond
		}
	}
	if model := os.Getenv(modelOverrideVar); model != "" {
		opts.Model = model
	}
	return opts
}

// APIKeyFromEnv returns the configured Gemini API key, or empty string.
func APIKeyFromEnv() string {
	return os.Getenv(apiKeyEnvVar)
}
