package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/priyansh/career-compass/internal/types"
)

// GetUser retrieves the full user record, or nil if the uid is unknown.
func (db *DB) GetUser(ctx context.Context, uid string) (*types.UserRecord, error) {
	var (
		rec           types.UserRecord
		profileJSON   []byte
		roadmapJSON   []byte
		planJSON      []byte
		resourcesJSON []byte
		progressJSON  []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT uid, email, password_set, profile, roadmap, ai_plan, skill_analysis, resources, progress, created_at, updated_at
		 FROM users WHERE uid = $1`,
		uid,
	).Scan(&rec.UID, &rec.Email, &rec.PasswordSet, &profileJSON, &roadmapJSON, &planJSON,
		&rec.SkillAnalysis, &resourcesJSON, &progressJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile for %s: %w", uid, err)
	}
	if len(roadmapJSON) > 0 {
		if err := json.Unmarshal(roadmapJSON, &rec.Roadmap); err != nil {
			return nil, fmt.Errorf("failed to decode roadmap for %s: %w", uid, err)
		}
	}
	if len(planJSON) > 0 {
		if err := json.Unmarshal(planJSON, &rec.AIPlan); err != nil {
			return nil, fmt.Errorf("failed to decode plan for %s: %w", uid, err)
		}
	}
	if len(resourcesJSON) > 0 {
		if err := json.Unmarshal(resourcesJSON, &rec.Resources); err != nil {
			return nil, fmt.Errorf("failed to decode resources for %s: %w", uid, err)
		}
	}
	if len(progressJSON) > 0 {
		if err := json.Unmarshal(progressJSON, &rec.Progress); err != nil {
			return nil, fmt.Errorf("failed to decode progress for %s: %w", uid, err)
		}
	}
	return &rec, nil
}

// SaveProfile upserts the merged profile document. The row is created
// on first submission; email is only overwritten by a non-empty value.
func (db *DB) SaveProfile(ctx context.Context, profile types.Profile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO users (uid, email, profile)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (uid) DO UPDATE SET
		     email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
		     profile = EXCLUDED.profile,
		     updated_at = NOW()`,
		profile.UID, profile.Email, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// SavePlan overwrites the generated plan columns for the uid.
func (db *DB) SavePlan(ctx context.Context, uid string, plan types.AIPlan, weeks []types.WeekEntry, skillAnalysis string) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	roadmapJSON, err := json.Marshal(weeks)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE users SET ai_plan = $1, roadmap = $2, skill_analysis = $3, updated_at = NOW() WHERE uid = $4`,
		planJSON, roadmapJSON, skillAnalysis, uid,
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", uid)
	}
	return nil
}

// SaveResources overwrites the per-topic enrichment map for the uid.
func (db *DB) SaveResources(ctx context.Context, uid string, resources map[string]types.TopicResources) error {
	resourcesJSON, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("failed to marshal resources: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE users SET resources = $1, updated_at = NOW() WHERE uid = $2`,
		resourcesJSON, uid,
	)
	if err != nil {
		return fmt.Errorf("failed to save resources: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", uid)
	}
	return nil
}

// MergeProgress folds the submitted completion flags into the stored
// progress map and returns the merged result. Read-modify-write with
// last-write-wins, matching how the rest of the user document merges.
func (db *DB) MergeProgress(ctx context.Context, uid string, delta types.Progress) (types.Progress, error) {
	user, err := db.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %s", uid)
	}

	merged := mergeProgress(user.Progress, delta)
	progressJSON, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress: %w", err)
	}

	if _, err := db.pool.Exec(ctx,
		`UPDATE users SET progress = $1, updated_at = NOW() WHERE uid = $2`,
		progressJSON, uid,
	); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}
	return merged, nil
}

func mergeProgress(existing, delta types.Progress) types.Progress {
	if existing == nil {
		existing = types.Progress{}
	}
	for week, topics := range delta {
		if existing[week] == nil {
			existing[week] = map[string]map[string]bool{}
		}
		for topic, kinds := range topics {
			if existing[week][topic] == nil {
				existing[week][topic] = map[string]bool{}
			}
			for kind, done := range kinds {
				existing[week][topic][kind] = done
			}
		}
	}
	return existing
}

// Credentials is the authentication view of a user row.
type Credentials struct {
	UID          string
	Email        string
	PasswordHash string
	PasswordSet  bool
}

// CheckEmailExists reports whether an account already uses the email.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1) AND email <> '')`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CreateAccount inserts a fresh user row with login credentials.
func (db *DB) CreateAccount(ctx context.Context, uid, email, passwordHash string) error {
	profileJSON, err := json.Marshal(types.Profile{UID: uid, Email: email})
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO users (uid, email, password_hash, password_set, profile)
		 VALUES ($1, $2, $3, TRUE, $4)`,
		uid, email, passwordHash, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetCredentials retrieves login credentials by email, or nil if no
// account uses it.
func (db *DB) GetCredentials(ctx context.Context, email string) (*Credentials, error) {
	var creds Credentials
	err := db.pool.QueryRow(ctx,
		`SELECT uid, email, password_hash, password_set FROM users WHERE lower(email) = lower($1) AND email <> ''`,
		email,
	).Scan(&creds.UID, &creds.Email, &creds.PasswordHash, &creds.PasswordSet)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	return &creds, nil
}
