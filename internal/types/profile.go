// Package types defines the shared domain types for the career compass service.
package types

import "time"

// Onboarding holds the user-submitted intake form answers.
type Onboarding struct {
	PrimarySkill     string     `json:"primarySkill,omitempty"`
	LearningGoal     string     `json:"learningGoal,omitempty"`
	ExperienceLevel  string     `json:"experienceLevel,omitempty"`
	CareerAspiration string     `json:"careerAspiration,omitempty"`
	LearningStyle    string     `json:"learningStyle,omitempty"`
	LastSubmittedAt  *time.Time `json:"lastSubmittedAt,omitempty"`
}

// Profile represents a user profile document.
// UID is immutable once set; skills accumulate via set union with
// resume-parsed skills, and prior skills are retained in PastSkills
// across overwrites.
type Profile struct {
	UID        string     `json:"uid"`
	Name       string     `json:"name,omitempty"`
	Email      string     `json:"email,omitempty"`
	Education  string     `json:"education,omitempty"`
	Role       string     `json:"role,omitempty"`
	TargetRole string     `json:"targetRole,omitempty"`
	Goals      string     `json:"goals,omitempty"`
	Preference string     `json:"preference,omitempty"`
	Mode       string     `json:"mode,omitempty"`
	ResumeURL  string     `json:"resumeUrl,omitempty"`
	Skills     []string   `json:"skills,omitempty"`
	PastSkills []string   `json:"pastSkills,omitempty"`
	Onboarding Onboarding `json:"onboarding"`
}
