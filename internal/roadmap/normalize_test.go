package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/career-compass/internal/types"
)

func TestNormalize_NilIsMalformed(t *testing.T) {
	res := Normalize(nil)
	assert.Equal(t, StatusMalformed, res.Status)
	assert.Empty(t, res.Weeks)
}

func TestNormalize_EmptyArrayIsEmpty(t *testing.T) {
	res := Normalize([]any{})
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Empty(t, res.Weeks)
}

func TestNormalize_ObjectWithoutRoadmapIsEmpty(t *testing.T) {
	res := Normalize(map[string]any{"analysis": map[string]any{"level": "junior"}})
	assert.Equal(t, StatusEmpty, res.Status)
	assert.Equal(t, "junior", res.Analysis.Level)
}

func TestNormalize_ArrayTreatedAsWeekList(t *testing.T) {
	res := Normalize([]any{
		map[string]any{"week": float64(1), "weeklyGoal": "g1", "topics": []any{"a"}, "projects": []any{"p"}},
	})
	require.Equal(t, StatusOk, res.Status)
	assert.Equal(t, []types.WeekEntry{
		{Week: 1, WeeklyGoal: "g1", Topics: []string{"a"}, Projects: []string{"p"}},
	}, res.Weeks)
}

func TestNormalize_FieldByFieldDefaults(t *testing.T) {
	res := Normalize(map[string]any{
		"roadmap": []any{
			map[string]any{"week": "two", "topics": "not-a-list"},
			map[string]any{},
			"not even an object",
		},
	})
	require.Equal(t, StatusOk, res.Status)
	require.Len(t, res.Weeks, 3)

	// Non-numeric week falls back to index+1, bad lists to empty.
	assert.Equal(t, types.WeekEntry{Week: 1, Topics: []string{}, Projects: []string{}}, res.Weeks[0])
	assert.Equal(t, types.WeekEntry{Week: 2, Topics: []string{}, Projects: []string{}}, res.Weeks[1])
	assert.Equal(t, types.WeekEntry{Week: 3, Topics: []string{}, Projects: []string{}}, res.Weeks[2])
}

func TestNormalize_ExplicitWeeksKeptAsEmitted(t *testing.T) {
	// Duplicate and out-of-order week numbers are preserved: no
	// re-sorting, no de-duplication.
	res := Normalize(map[string]any{
		"roadmap": []any{
			map[string]any{"week": float64(2)},
			map[string]any{},
		},
	})
	require.Equal(t, StatusOk, res.Status)
	require.Len(t, res.Weeks, 2)
	assert.Equal(t, 2, res.Weeks[0].Week)
	assert.Equal(t, 2, res.Weeks[1].Week) // index+1 collides, kept anyway
}

func TestNormalize_PassThroughPayload(t *testing.T) {
	res := Normalize(map[string]any{
		"analysis": map[string]any{
			"skillGaps": []any{"testing", 42, "sql"},
			"level":     "intermediate",
			"summary":   "solid base",
		},
		"tips":    []any{"practice daily"},
		"roadmap": []any{map[string]any{"week": float64(1)}},
		"resources": map[string]any{
			"recommendedSearchKeywords": []any{"sql tutorial"},
			"books":                     []any{"SQL in 10 Minutes"},
			"courses":                   []any{},
			"videos":                    "nope",
		},
	})

	require.Equal(t, StatusOk, res.Status)
	assert.Equal(t, []string{"testing", "sql"}, res.Analysis.SkillGaps)
	assert.Equal(t, "intermediate", res.Analysis.Level)
	assert.Equal(t, []string{"practice daily"}, res.Tips)
	assert.Equal(t, []string{"sql tutorial"}, res.Resources.RecommendedSearchKeywords)
	assert.Equal(t, []string{}, res.Resources.Videos)
}
