// Package aptitude implements the quiz session state machine. A session
// moves through in-progress to summary; each question moves unanswered
// -> selected -> checked. The caller persists the snapshot after every
// transition so an abandoned quiz resumes exactly where it stopped.
package aptitude

import (
	"errors"

	"github.com/priyansh/career-compass/internal/types"
)

var (
	// ErrNoQuestions means a session cannot start with an empty set.
	ErrNoQuestions = errors.New("no questions available for category")
	// ErrNothingSelected means Check was called before an option was picked.
	ErrNothingSelected = errors.New("no option selected")
	// ErrAlreadyChecked means the current question was already answered.
	ErrAlreadyChecked = errors.New("question already checked")
	// ErrNotChecked means Next was called before the answer was checked.
	ErrNotChecked = errors.New("current answer not checked yet")
	// ErrQuizComplete means the session already reached its summary.
	ErrQuizComplete = errors.New("quiz already complete")
)

// NewSession deals a fresh session over the given question set.
func NewSession(category string, questions []types.Question) (*types.QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &types.QuizSession{
		Category:  category,
		Questions: questions,
		Answers:   []types.AnswerRecord{},
	}, nil
}

// checked reports whether the current question has been answered.
// Answers append in question order, so the current question is checked
// exactly when the answer list has outgrown the cursor.
func checked(s *types.QuizSession) bool {
	return len(s.Answers) > s.SelectedQuestion
}

// Select records the picked option. Reselecting before a check is
// allowed; selecting after a check is not.
func Select(s *types.QuizSession, option string) error {
	if s.ShowSummary {
		return ErrQuizComplete
	}
	if checked(s) {
		return ErrAlreadyChecked
	}
	s.Selected = option
	return nil
}

// Check compares the selected option against the authoritative answer,
// records the outcome, and bumps the score on an exact match.
func Check(s *types.QuizSession) (correct bool, err error) {
	if s.ShowSummary {
		return false, ErrQuizComplete
	}
	if checked(s) {
		return false, ErrAlreadyChecked
	}
	if s.Selected == "" {
		return false, ErrNothingSelected
	}

	correct = s.Selected == s.Questions[s.SelectedQuestion].Answer
	s.Answers = append(s.Answers, types.AnswerRecord{Answer: s.Selected, Correct: correct})
	if correct {
		s.Score++
	}
	return correct, nil
}

// Next advances to the following question, or flips the session into
// its summary when the checked question was the last one.
func Next(s *types.QuizSession) error {
	if s.ShowSummary {
		return ErrQuizComplete
	}
	if !checked(s) {
		return ErrNotChecked
	}

	if s.SelectedQuestion == len(s.Questions)-1 {
		s.ShowSummary = true
		return nil
	}
	s.SelectedQuestion++
	s.Selected = ""
	return nil
}

// AddTime accumulates elapsed seconds reported by the client timer.
func AddTime(s *types.QuizSession, seconds int) {
	if seconds > 0 {
		s.TimeSpent += seconds
	}
}

// Summary builds the history entry for a completed session.
func Summary(s *types.QuizSession) types.HistoryEntry {
	return types.HistoryEntry{
		Score:     s.Score,
		Total:     len(s.Questions),
		TimeSpent: s.TimeSpent,
	}
}
