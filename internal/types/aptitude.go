package types

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single aptitude quiz question. Answer is the
// authoritative option string compared against exactly on check.
type Question struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
	Answer   string    `json:"answer"`
}

// AnswerRecord captures the outcome of one checked question.
type AnswerRecord struct {
	Answer  string `json:"answer"`
	Correct bool   `json:"correct"`
}

// QuizSession is the snapshot of an in-progress quiz. It is persisted
// whole on every state change so an abandoned quiz can be resumed with
// selectedQuestion, answers, score and timeSpent intact.
type QuizSession struct {
	Category         string         `json:"category"`
	Questions        []Question     `json:"questions"`
	SelectedQuestion int            `json:"selectedQuestion"`
	Selected         string         `json:"selected,omitempty"`
	Answers          []AnswerRecord `json:"answers"`
	TimeSpent        int            `json:"timeSpent"`
	Score            int            `json:"score"`
	ShowSummary      bool           `json:"showSummary"`
}

// HistoryEntry is one completed quiz, stored newest-first in a
// per-category list capped at HistoryCap entries.
type HistoryEntry struct {
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	TimeSpent int       `json:"timeSpent"`
	Date      time.Time `json:"date"`
}

// HistoryCap is the maximum retained history entries per category.
const HistoryCap = 50
