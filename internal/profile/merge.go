// Package profile implements the merge semantics for user profile
// documents: fields omitted from an update never clobber stored
// values, skills accumulate by set union, and prior skills are
// retained in pastSkills across overwrites.
package profile

import (
	"time"

	"github.com/priyansh/career-compass/internal/types"
)

// Update carries one onboarding submission. Empty fields mean
// "not provided" and leave the stored value untouched.
type Update struct {
	Name             string
	Email            string
	Education        string
	Role             string
	TargetRole       string
	Goals            string
	Preference       string
	Mode             string
	ResumeURL        string
	Skills           []string
	PrimarySkill     string
	LearningGoal     string
	ExperienceLevel  string
	CareerAspiration string
	LearningStyle    string
}

// Merge applies an onboarding update to an existing profile. existing
// may be the zero value on first submission. parsedSkills are skills
// extracted from an uploaded resume; the stored skill set becomes the
// union of submitted and parsed skills, while previously stored skills
// move into pastSkills (also a set union, so nothing is ever lost).
// The uid is immutable: it is taken from existing when set.
func Merge(existing types.Profile, uid string, upd Update, parsedSkills []string, now time.Time) types.Profile {
	merged := existing
	if merged.UID == "" {
		merged.UID = uid
	}

	setIfPresent(&merged.Name, upd.Name)
	setIfPresent(&merged.Email, upd.Email)
	setIfPresent(&merged.Education, upd.Education)
	setIfPresent(&merged.Role, upd.Role)
	setIfPresent(&merged.TargetRole, upd.TargetRole)
	setIfPresent(&merged.Goals, upd.Goals)
	setIfPresent(&merged.Preference, upd.Preference)
	setIfPresent(&merged.Mode, upd.Mode)
	setIfPresent(&merged.ResumeURL, upd.ResumeURL)

	if len(upd.Skills) > 0 || len(parsedSkills) > 0 {
		merged.PastSkills = union(existing.PastSkills, existing.Skills)
		merged.Skills = union(upd.Skills, parsedSkills)
	}

	ob := &merged.Onboarding
	setIfPresent(&ob.PrimarySkill, upd.PrimarySkill)
	setIfPresent(&ob.LearningGoal, upd.LearningGoal)
	setIfPresent(&ob.ExperienceLevel, upd.ExperienceLevel)
	setIfPresent(&ob.CareerAspiration, upd.CareerAspiration)
	setIfPresent(&ob.LearningStyle, upd.LearningStyle)
	ob.LastSubmittedAt = &now

	return merged
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// union merges two skill lists preserving first-seen order and
// dropping duplicates and empty entries.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
