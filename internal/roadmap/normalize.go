package roadmap

import (
	"github.com/priyansh/career-compass/internal/types"
)

// Status classifies a normalization outcome so callers branch
// explicitly instead of relying on truthiness of a partial result.
type Status int

const (
	// StatusMalformed means the parsed value had no usable shape.
	StatusMalformed Status = iota
	// StatusEmpty means the shape was recognized but held no weeks.
	StatusEmpty
	// StatusOk means at least one week entry was produced.
	StatusOk
)

// NormalizeResult is the tagged outcome of normalizing parsed LLM
// output into the fixed weekly-plan schema.
type NormalizeResult struct {
	Status    Status
	Weeks     []types.WeekEntry
	Analysis  types.Analysis
	Tips      []string
	Resources types.PlanResources
}

// Normalize coerces an arbitrary parsed value into week entries plus
// pass-through analysis/tips/resources. A JSON array is treated as the
// week list directly; an object contributes its "roadmap" field along
// with any analysis/tips/resources it carries.
//
// Malformed week fields are defended field-by-field rather than
// rejecting the whole plan: week defaults to index+1 when not a
// number, topics/projects to empty lists, weeklyGoal to "". Explicit
// week numbers are kept exactly as emitted, in source order, even when
// duplicated or out of order.
func Normalize(parsed any) NormalizeResult {
	switch v := parsed.(type) {
	case []any:
		weeks := normalizeWeeks(v)
		return NormalizeResult{Status: statusFor(weeks), Weeks: weeks}
	case map[string]any:
		res := NormalizeResult{
			Analysis:  normalizeAnalysis(v["analysis"]),
			Tips:      asStringList(v["tips"]),
			Resources: normalizeResources(v["resources"]),
		}
		rawWeeks, _ := v["roadmap"].([]any)
		res.Weeks = normalizeWeeks(rawWeeks)
		res.Status = statusFor(res.Weeks)
		return res
	default:
		return NormalizeResult{Status: StatusMalformed}
	}
}

func statusFor(weeks []types.WeekEntry) Status {
	if len(weeks) == 0 {
		return StatusEmpty
	}
	return StatusOk
}

func normalizeWeeks(raw []any) []types.WeekEntry {
	weeks := make([]types.WeekEntry, 0, len(raw))
	for i, item := range raw {
		entry := types.WeekEntry{
			Week:     i + 1,
			Topics:   []string{},
			Projects: []string{},
		}
		if m, ok := item.(map[string]any); ok {
			if n, ok := m["week"].(float64); ok {
				entry.Week = int(n)
			}
			entry.WeeklyGoal = asString(m["weeklyGoal"])
			entry.Topics = asStringList(m["topics"])
			entry.Projects = asStringList(m["projects"])
		}
		weeks = append(weeks, entry)
	}
	return weeks
}

func normalizeAnalysis(raw any) types.Analysis {
	analysis := types.Analysis{SkillGaps: []string{}}
	if m, ok := raw.(map[string]any); ok {
		analysis.SkillGaps = asStringList(m["skillGaps"])
		analysis.Level = asString(m["level"])
		analysis.Summary = asString(m["summary"])
	}
	return analysis
}

func normalizeResources(raw any) types.PlanResources {
	resources := types.PlanResources{
		RecommendedSearchKeywords: []string{},
		Books:                     []string{},
		Courses:                   []string{},
		Videos:                    []string{},
	}
	if m, ok := raw.(map[string]any); ok {
		resources.RecommendedSearchKeywords = asStringList(m["recommendedSearchKeywords"])
		resources.Books = asStringList(m["books"])
		resources.Courses = asStringList(m["courses"])
		resources.Videos = asStringList(m["videos"])
	}
	return resources
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringList coerces a parsed value to a string list, dropping
// non-string elements. Non-list input yields an empty list.
func asStringList(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
