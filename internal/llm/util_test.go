package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"week\": 1}\n```",
			expected: `{"week": 1}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"week\": 1}\n```",
			expected: `{"week": 1}`,
		},
		{
			name:     "code block with language identifier",
			input:    "```javascript\n{\"week\": 1}\n```",
			expected: `{"week": 1}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"week": 1}`,
			expected: `{"week": 1}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n```json\n[1, 2]\n```\n ",
			expected: `[1, 2]`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}
