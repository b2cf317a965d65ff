package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyansh/career-compass/internal/db"
	"github.com/priyansh/career-compass/internal/types"
)

var seedQuestionsCmd = &cobra.Command{
	Use:   "seed-questions <file.json>",
	Short: "Load an aptitude question bank into the database",
	Long: `Read a JSON array of aptitude questions and insert them into the
question bank. Questions that already exist are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeedQuestions,
}

func init() {
	rootCmd.AddCommand(seedQuestionsCmd)
}

func runSeedQuestions(cmd *cobra.Command, args []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read question file: %w", err)
	}

	var questions []types.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return fmt.Errorf("failed to parse question file: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("question file is empty")
	}
	for i, q := range questions {
		if q.Category == "" || q.Question == "" || q.Answer == "" {
			return fmt.Errorf("question %d is missing category, question or answer", i)
		}
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	inserted, err := database.InsertQuestions(ctx, questions)
	if err != nil {
		return fmt.Errorf("failed to insert questions: %w", err)
	}

	fmt.Printf("Inserted %d of %d questions (%d already present)\n",
		inserted, len(questions), len(questions)-inserted)
	return nil
}
