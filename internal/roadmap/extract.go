package roadmap

import (
	"encoding/json"
	"strings"

	"github.com/priyansh/career-compass/internal/llm"
)

// ExtractJSON pulls a JSON value out of free-form LLM text. It tries,
// in order: a direct parse of the whole text, the slice between the
// first '[' and last ']', and the slice between the first '{' and last
// '}'. The staged slicing tolerates prose wrapped around the payload.
//
// ExtractJSON is total: it never panics and signals failure only via
// ok=false.
func ExtractJSON(text string) (any, bool) {
	text = llm.CleanJSONBlock(text)
	if text == "" {
		return nil, false
	}

	if v, ok := tryParse(text); ok {
		return v, true
	}

	if v, ok := tryParse(slice(text, '[', ']')); ok {
		return v, true
	}

	if v, ok := tryParse(slice(text, '{', '}')); ok {
		return v, true
	}

	return nil, false
}

func tryParse(text string) (any, bool) {
	if text == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// slice returns the substring between the first open and last close
// delimiter, inclusive, or "" when no such span exists.
func slice(text string, open, closing byte) string {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, closing)
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
