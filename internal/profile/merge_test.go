package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyansh/career-compass/internal/types"
)

var now = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func TestMerge_FirstSubmissionCreatesProfile(t *testing.T) {
	merged := Merge(types.Profile{}, "u1", Update{
		Name:         "Asha",
		PrimarySkill: "SQL",
		Skills:       []string{"excel"},
	}, nil, now)

	assert.Equal(t, "u1", merged.UID)
	assert.Equal(t, "Asha", merged.Name)
	assert.Equal(t, "SQL", merged.Onboarding.PrimarySkill)
	assert.Equal(t, []string{"excel"}, merged.Skills)
	require.NotNil(t, merged.Onboarding.LastSubmittedAt)
	assert.Equal(t, now, *merged.Onboarding.LastSubmittedAt)
}

func TestMerge_OmittedFieldsPreserved(t *testing.T) {
	existing := types.Profile{
		UID:        "u1",
		Name:       "Asha",
		Email:      "asha@example.com",
		TargetRole: "data engineer",
		Onboarding: types.Onboarding{
			PrimarySkill: "SQL",
			LearningGoal: "pipelines",
		},
	}

	merged := Merge(existing, "u1", Update{ExperienceLevel: "intermediate"}, nil, now)

	assert.Equal(t, "Asha", merged.Name)
	assert.Equal(t, "asha@example.com", merged.Email)
	assert.Equal(t, "data engineer", merged.TargetRole)
	assert.Equal(t, "SQL", merged.Onboarding.PrimarySkill)
	assert.Equal(t, "pipelines", merged.Onboarding.LearningGoal)
	assert.Equal(t, "intermediate", merged.Onboarding.ExperienceLevel)
}

func TestMerge_UIDImmutable(t *testing.T) {
	existing := types.Profile{UID: "u1"}
	merged := Merge(existing, "u2", Update{Name: "X"}, nil, now)
	assert.Equal(t, "u1", merged.UID)
}

func TestMerge_SkillsReplacedByUnion(t *testing.T) {
	existing := types.Profile{UID: "u1", Skills: []string{"excel", "sql"}}

	merged := Merge(existing, "u1", Update{Skills: []string{"sql", "python"}}, []string{"python", "docker"}, now)

	// Skills become union of submitted + resume-parsed (replace, not merge).
	assert.Equal(t, []string{"sql", "python", "docker"}, merged.Skills)
	// Prior skills are retained in pastSkills.
	assert.Equal(t, []string{"excel", "sql"}, merged.PastSkills)
}

func TestMerge_PastSkillsAccumulateAcrossOverwrites(t *testing.T) {
	p := Merge(types.Profile{}, "u1", Update{Skills: []string{"a"}}, nil, now)
	p = Merge(p, "u1", Update{Skills: []string{"b"}}, nil, now)
	p = Merge(p, "u1", Update{Skills: []string{"c"}}, nil, now)

	assert.Equal(t, []string{"c"}, p.Skills)
	assert.ElementsMatch(t, []string{"a", "b"}, p.PastSkills)
}

func TestMerge_NoSkillsInUpdateLeavesSkillsAlone(t *testing.T) {
	existing := types.Profile{UID: "u1", Skills: []string{"go"}}
	merged := Merge(existing, "u1", Update{Name: "New Name"}, nil, now)

	assert.Equal(t, []string{"go"}, merged.Skills)
	assert.Empty(t, merged.PastSkills)
}
