package roadmap

import (
	"context"
	"fmt"
	"log"

	"github.com/priyansh/career-compass/internal/llm"
	"github.com/priyansh/career-compass/internal/schemas"
	"github.com/priyansh/career-compass/internal/types"
)

// Fallback plan lengths for the two failure classes: generation never
// ran vs. generation ran but produced nothing usable.
const (
	unavailableFallbackWeeks = 1
	partialFallbackWeeks     = 6
)

// Defaults substituted when the profile carries neither onboarding
// answers nor legacy targetRole/goals fields.
const (
	DefaultFocus = "General Skills"
	DefaultGoal  = "Career Development"
)

// PlanStore is the slice of the profile store the generator needs.
type PlanStore interface {
	GetUser(ctx context.Context, uid string) (*types.UserRecord, error)
	SavePlan(ctx context.Context, uid string, plan types.AIPlan, weeks []types.WeekEntry, skillAnalysis string) error
}

// ErrUserNotFound indicates the uid has no stored profile.
type ErrUserNotFound struct {
	UID string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UID)
}

// Result is a completed generation: the persisted plan plus roadmap.
type Result struct {
	Analysis  types.Analysis      `json:"analysis"`
	Tips      []string            `json:"tips"`
	Roadmap   []types.WeekEntry   `json:"roadmap"`
	Resources types.PlanResources `json:"resources"`
}

// Generator sequences prompt construction, generation, extraction,
// normalization and persistence. A nil llm client means generation is
// unconfigured and every request takes the fallback path.
type Generator struct {
	store PlanStore
	llm   llm.Generator
}

// NewGenerator creates a roadmap generator. client may be nil when no
// API key is configured.
func NewGenerator(store PlanStore, client llm.Generator) *Generator {
	return &Generator{store: store, llm: client}
}

// Generate produces, persists and returns a roadmap for the uid. It
// has three terminal outcomes: a normalized LLM plan, a 1-week
// fallback when the LLM is unavailable or fails after retries, or a
// 6-week fallback when the response parsed but yielded no usable weeks
// (retaining whatever analysis/tips/resources did parse). A user-facing
// error is returned only when the uid is unknown or persistence fails.
func (g *Generator) Generate(ctx context.Context, uid string) (*Result, error) {
	user, err := g.store.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UID: uid}
	}
	profile := user.Profile

	if g.llm == nil {
		log.Printf("[roadmap] no LLM configured, using fallback plan for uid=%s", uid)
		return g.persistFallback(ctx, uid, profile.Skills, unavailableFallbackWeeks, NormalizeResult{})
	}

	focus, goal := focusAndGoal(profile)
	prompt := BuildPrompt(profile, focus, goal)

	text, err := g.llm.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[roadmap] generation failed for uid=%s: %v", uid, err)
		return g.persistFallback(ctx, uid, profile.Skills, unavailableFallbackWeeks, NormalizeResult{})
	}

	parsed, ok := ExtractJSON(text)
	if !ok {
		log.Printf("[roadmap] unparsable response for uid=%s, using fallback", uid)
		return g.persistFallback(ctx, uid, profile.Skills, partialFallbackWeeks, NormalizeResult{})
	}

	norm := Normalize(parsed)
	if norm.Status != StatusOk {
		log.Printf("[roadmap] empty roadmap in response for uid=%s, using fallback", uid)
		return g.persistFallback(ctx, uid, profile.Skills, partialFallbackWeeks, norm)
	}

	if violations, err := schemas.ValidateRoadmapPlan(norm.Weeks); err != nil || len(violations) > 0 {
		log.Printf("[roadmap] schema-invalid plan for uid=%s (violations=%d): %v", uid, len(violations), err)
		return g.persistFallback(ctx, uid, profile.Skills, partialFallbackWeeks, norm)
	}

	return g.persist(ctx, uid, norm, norm.Weeks)
}

// GenerateLight is the lighter-weight variant: it takes name/skills/
// goals directly, skips profile loading and persists nothing. Failure
// still degrades to a fallback plan rather than an error.
func (g *Generator) GenerateLight(ctx context.Context, name string, skills []string, goal string) []types.WeekEntry {
	if g.llm == nil {
		return FallbackPlan(skills, partialFallbackWeeks)
	}

	text, err := g.llm.Generate(ctx, BuildLightPrompt(name, skills, goal, DefaultWeeks))
	if err != nil {
		log.Printf("[roadmap] light generation failed: %v", err)
		return FallbackPlan(skills, partialFallbackWeeks)
	}

	parsed, ok := ExtractJSON(text)
	if !ok {
		return FallbackPlan(skills, partialFallbackWeeks)
	}
	norm := Normalize(parsed)
	if norm.Status != StatusOk {
		return FallbackPlan(skills, partialFallbackWeeks)
	}
	return norm.Weeks
}

// persistFallback synthesizes a fallback plan, keeping any analysis,
// tips or resources that were successfully parsed.
func (g *Generator) persistFallback(ctx context.Context, uid string, skills []string, weeks int, norm NormalizeResult) (*Result, error) {
	return g.persist(ctx, uid, norm, FallbackPlan(skills, weeks))
}

func (g *Generator) persist(ctx context.Context, uid string, norm NormalizeResult, weeks []types.WeekEntry) (*Result, error) {
	plan := types.AIPlan{
		Analysis:  norm.Analysis,
		Tips:      emptyIfNil(norm.Tips),
		Resources: norm.Resources,
	}
	if plan.Analysis.SkillGaps == nil {
		plan.Analysis.SkillGaps = []string{}
	}
	if plan.Resources.RecommendedSearchKeywords == nil {
		plan.Resources = types.PlanResources{
			RecommendedSearchKeywords: []string{},
			Books:                     []string{},
			Courses:                   []string{},
			Videos:                    []string{},
		}
	}

	if err := g.store.SavePlan(ctx, uid, plan, weeks, plan.Analysis.Summary); err != nil {
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	return &Result{
		Analysis:  plan.Analysis,
		Tips:      plan.Tips,
		Roadmap:   weeks,
		Resources: plan.Resources,
	}, nil
}

// focusAndGoal picks the prompt focus/goal, preferring onboarding
// answers, then legacy profile fields, then defaults.
func focusAndGoal(profile types.Profile) (string, string) {
	focus := profile.Onboarding.PrimarySkill
	if focus == "" {
		focus = profile.TargetRole
	}
	if focus == "" {
		focus = DefaultFocus
	}

	goal := profile.Onboarding.LearningGoal
	if goal == "" {
		goal = profile.Goals
	}
	if goal == "" {
		goal = DefaultGoal
	}
	return focus, goal
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
