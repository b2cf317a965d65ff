package types

import "time"

// UserRecord is the full per-user document as stored: the profile plus
// everything the generation and enrichment pipelines have written back.
// Top-level fields are merged independently (last write wins per field).
type UserRecord struct {
	UID           string                    `json:"uid"`
	Email         string                    `json:"email,omitempty"`
	PasswordSet   bool                      `json:"password_set,omitempty"`
	Profile       Profile                   `json:"profile"`
	Roadmap       []WeekEntry               `json:"roadmap,omitempty"`
	AIPlan        *AIPlan                   `json:"aiPlan,omitempty"`
	SkillAnalysis string                    `json:"skillAnalysis,omitempty"`
	Resources     map[string]TopicResources `json:"resources,omitempty"`
	Progress      Progress                  `json:"progress,omitempty"`
	CreatedAt     time.Time                 `json:"created_at,omitzero"`
	UpdatedAt     time.Time                 `json:"updated_at,omitzero"`
}
