package roadmap

import (
	"fmt"

	"github.com/priyansh/career-compass/internal/types"
)

// maxFallbackTopics caps how many stored skills seed each fallback week.
const maxFallbackTopics = 5

// FallbackPlan builds a deterministic plan when generation fails or is
// unconfigured. Each week reuses the same slice of up to five of the
// user's skills as topics and has no projects. It never fails,
// whatever the skills slice contains.
func FallbackPlan(skills []string, weeks int) []types.WeekEntry {
	if weeks < 1 {
		weeks = 1
	}

	topics := make([]string, 0, maxFallbackTopics)
	for _, s := range skills {
		if s == "" {
			continue
		}
		topics = append(topics, s)
		if len(topics) == maxFallbackTopics {
			break
		}
	}

	plan := make([]types.WeekEntry, weeks)
	for i := range plan {
		plan[i] = types.WeekEntry{
			Week:       i + 1,
			WeeklyGoal: fmt.Sprintf("Practice and consolidate your core skills (week %d)", i+1),
			Topics:     append([]string{}, topics...),
			Projects:   []string{},
		}
	}
	return plan
}
