package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/career-compass/internal/types"
)

func TestValidateRoadmapPlan_Valid(t *testing.T) {
	plan := []types.WeekEntry{
		{Week: 1, WeeklyGoal: "Basics", Topics: []string{"SQL"}, Projects: []string{"schema design"}},
		{Week: 2, WeeklyGoal: "Joins", Topics: []string{"joins", "indexes"}, Projects: []string{}},
	}

	violations, err := ValidateRoadmapPlan(plan)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateRoadmapPlan_EmptyListIsValid(t *testing.T) {
	violations, err := ValidateRoadmapPlan([]types.WeekEntry{})
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateRoadmapPlan_RejectsBadWeekNumber(t *testing.T) {
	plan := []map[string]any{
		{"week": 0, "weeklyGoal": "g", "topics": []string{}, "projects": []string{}},
	}

	violations, err := ValidateRoadmapPlan(plan)
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestValidateRoadmapPlan_RejectsMissingFields(t *testing.T) {
	plan := []map[string]any{{"week": 1}}

	violations, err := ValidateRoadmapPlan(plan)
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}
