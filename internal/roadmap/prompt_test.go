package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priyansh/career-compass/internal/types"
)

func TestBuildPrompt_EmbedsContext(t *testing.T) {
	profile := types.Profile{
		Name:       "Asha",
		Role:       "analyst",
		TargetRole: "data engineer",
		Skills:     []string{"sql", "excel"},
		Onboarding: types.Onboarding{
			PrimarySkill:    "SQL",
			LearningGoal:    "pipelines",
			ExperienceLevel: "beginner",
			LearningStyle:   "videos",
		},
	}

	prompt := BuildPrompt(profile, "SQL", "pipelines")

	assert.Contains(t, prompt, "Asha")
	assert.Contains(t, prompt, "sql, excel")
	assert.Contains(t, prompt, "beginner")
	assert.Contains(t, prompt, `"SQL"`)
	assert.Contains(t, prompt, "STRICT JSON ONLY")
}

func TestBuildPrompt_MissingFieldsSerializeEmpty(t *testing.T) {
	// The builder does no validation; empty context still yields a
	// well-formed prompt with empty slots.
	prompt := BuildPrompt(types.Profile{}, DefaultFocus, DefaultGoal)

	assert.Contains(t, prompt, "General Skills")
	assert.Contains(t, prompt, "Career Development")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildLightPrompt(t *testing.T) {
	prompt := BuildLightPrompt("Ravi", []string{"go", "docker"}, "backend developer", 6)

	assert.Contains(t, prompt, "Ravi")
	assert.Contains(t, prompt, "go, docker")
	assert.Contains(t, prompt, "backend developer")
	assert.Contains(t, prompt, "6-week")
	assert.NotContains(t, prompt, "{{.")
}
