// Package roadmap implements the learning-roadmap generation pipeline:
// prompt construction, best-effort JSON extraction from LLM output,
// normalization into the weekly-plan schema, and deterministic fallback
// when generation fails.
package roadmap

import (
	"strconv"
	"strings"

	"github.com/priyansh/career-compass/internal/prompts"
	"github.com/priyansh/career-compass/internal/types"
)

// DefaultWeeks is the plan length requested from the LLM.
const DefaultWeeks = 6

// BuildPrompt serializes the profile and onboarding answers into the
// roadmap generation prompt. Missing fields serialize as empty strings;
// focus/goal fallbacks are the orchestrator's job, not the builder's.
func BuildPrompt(profile types.Profile, focus, goal string) string {
	template := prompts.MustGet("roadmap.json", "generate-roadmap")
	ob := profile.Onboarding
	return prompts.Format(template, map[string]string{
		"Name":             profile.Name,
		"Role":             profile.Role,
		"Education":        profile.Education,
		"TargetRole":       profile.TargetRole,
		"Skills":           strings.Join(profile.Skills, ", "),
		"PrimarySkill":     ob.PrimarySkill,
		"LearningGoal":     ob.LearningGoal,
		"ExperienceLevel":  ob.ExperienceLevel,
		"CareerAspiration": ob.CareerAspiration,
		"LearningStyle":    ob.LearningStyle,
		"Weeks":            strconv.Itoa(DefaultWeeks),
		"Focus":            focus,
		"Goal":             goal,
	})
}

// BuildLightPrompt builds the prompt for the lighter-weight roadmap
// variant that takes name/skills/goals directly.
func BuildLightPrompt(name string, skills []string, goal string, weeks int) string {
	template := prompts.MustGet("roadmap.json", "light-roadmap")
	return prompts.Format(template, map[string]string{
		"Name":   name,
		"Skills": strings.Join(skills, ", "),
		"Goal":   goal,
		"Weeks":  strconv.Itoa(weeks),
	})
}
