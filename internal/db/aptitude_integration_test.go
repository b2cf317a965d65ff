//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/priyansh/career-compass/internal/types"
)

func seedTestQuestions(t *testing.T, db *DB, category string, n int) {
	t.Helper()
	questions := make([]types.Question, n)
	for i := range questions {
		questions[i] = types.Question{
			Category: category,
			Question: "placeholder?",
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "a",
		}
	}
	if _, err := db.InsertQuestions(context.Background(), questions); err != nil {
		t.Fatalf("InsertQuestions failed: %v", err)
	}
}

func TestIntegration_SampleQuestions(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	category := "test-" + uuid.NewString()
	seedTestQuestions(t, db, category, 15)

	questions, err := db.SampleQuestions(ctx, category, 10)
	if err != nil {
		t.Fatalf("SampleQuestions failed: %v", err)
	}
	if len(questions) != 10 {
		t.Errorf("Expected 10 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("Expected 4 options, got %d", len(q.Options))
		}
	}

	counts, err := db.CategoryCounts(ctx)
	if err != nil {
		t.Fatalf("CategoryCounts failed: %v", err)
	}
	if counts[category] != 15 {
		t.Errorf("Expected 15 in category, got %d", counts[category])
	}
}

func TestIntegration_SampleQuestionsEmptyCategory(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	questions, err := db.SampleQuestions(context.Background(), "test-empty-"+uuid.NewString(), 10)
	if err != nil {
		t.Fatalf("SampleQuestions failed: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("Expected no questions, got %d", len(questions))
	}
}

func TestIntegration_QuizSessionRoundTrip(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	uid := "test-" + uuid.NewString()
	session := &types.QuizSession{
		Category:         "logical",
		Questions:        []types.Question{{ID: uuid.New(), Category: "logical", Question: "q", Options: []string{"a"}, Answer: "a"}},
		SelectedQuestion: 0,
		Answers:          []types.AnswerRecord{{Answer: "a", Correct: true}},
		TimeSpent:        42,
		Score:            1,
	}

	if err := db.PutQuizSession(ctx, uid, session); err != nil {
		t.Fatalf("PutQuizSession failed: %v", err)
	}

	got, err := db.GetQuizSession(ctx, uid, "logical")
	if err != nil {
		t.Fatalf("GetQuizSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected session, got nil")
	}
	if got.Score != 1 || got.TimeSpent != 42 || len(got.Answers) != 1 {
		t.Errorf("Snapshot did not round-trip: %+v", got)
	}

	if err := db.DeleteQuizSession(ctx, uid, "logical"); err != nil {
		t.Fatalf("DeleteQuizSession failed: %v", err)
	}
	got, err = db.GetQuizSession(ctx, uid, "logical")
	if err != nil {
		t.Fatalf("GetQuizSession failed: %v", err)
	}
	if got != nil {
		t.Fatal("Expected nil after delete")
	}
}

func TestIntegration_History(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	uid := "test-" + uuid.NewString()
	entries := []types.HistoryEntry{{Score: 7, Total: 10, TimeSpent: 120}}

	if err := db.PutHistory(ctx, uid, "verbal", entries); err != nil {
		t.Fatalf("PutHistory failed: %v", err)
	}

	got, err := db.GetHistory(ctx, uid, "verbal")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(got) != 1 || got[0].Score != 7 {
		t.Errorf("Unexpected history: %+v", got)
	}
}
