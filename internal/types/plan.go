package types

// WeekEntry is one week of a generated roadmap.
// Week values are emitted in source order; they are expected to be
// contiguous starting at 1 but are kept exactly as generated.
type WeekEntry struct {
	Week       int      `json:"week"`
	WeeklyGoal string   `json:"weeklyGoal"`
	Topics     []string `json:"topics"`
	Projects   []string `json:"projects"`
}

// Analysis is the skill analysis block attached to a generated plan.
// It is pass-through payload from the LLM; fields are coerced to the
// expected shapes but not otherwise validated.
type Analysis struct {
	SkillGaps []string `json:"skillGaps"`
	Level     string   `json:"level"`
	Summary   string   `json:"summary"`
}

// PlanResources holds recommended follow-up material for a plan.
type PlanResources struct {
	RecommendedSearchKeywords []string `json:"recommendedSearchKeywords"`
	Books                     []string `json:"books"`
	Courses                   []string `json:"courses"`
	Videos                    []string `json:"videos"`
}

// AIPlan is the persisted non-roadmap portion of a generation result.
type AIPlan struct {
	Analysis  Analysis      `json:"analysis"`
	Tips      []string      `json:"tips"`
	Resources PlanResources `json:"resources"`
}

// TopicResources holds per-topic enrichment links.
type TopicResources struct {
	YTVideos []VideoLink  `json:"ytVideos"`
	Courses  []CourseLink `json:"courses"`
	GitHub   []RepoLink   `json:"github"`
}

// VideoLink is a single YouTube search result.
type VideoLink struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Channel   string `json:"channel,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// CourseLink is a course search link for a topic.
type CourseLink struct {
	Provider string `json:"provider"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// RepoLink is a GitHub repository result for a topic.
type RepoLink struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
}

// Progress is the naive nested completion map:
// week -> topic -> type -> completed.
type Progress map[string]map[string]map[string]bool
