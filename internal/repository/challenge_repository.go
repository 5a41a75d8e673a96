package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"wellnest/wellness-service/internal/models"
)

type ChallengeRepository interface {
	GetByName(ctx context.Context, name string) (*models.Challenge, error)
	GetByModule(ctx context.Context, moduleName string) ([]*models.Challenge, error)
	Create(ctx context.Context, challenge *models.Challenge) error
	Update(ctx context.Context, challenge *models.Challenge) error
	// SearchByName returns every challenge whose name contains the term,
	// case-insensitively, ordered by name ascending, each joined with its
	// owning module (nil when the module row is missing).
	SearchByName(ctx context.Context, term string) ([]*models.ChallengeWithModule, error)
	// DeleteCascade removes the challenge together with its redeemable links
	// and participant rows in one transaction.
	DeleteCascade(ctx context.Context, name string) error
}

type challengeRepository struct {
	db *sql.DB
}

func NewChallengeRepository(db *sql.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

// Tips and goals are stored as JSON arrays in TEXT columns so wholesale
// replacement stays a single-column write.
func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(data), nil
}

func decodeStrings(data string) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("failed to decode string list: %w", err)
	}
	return values, nil
}

func (r *challengeRepository) GetByName(ctx context.Context, name string) (*models.Challenge, error) {
	query := `
		SELECT name, module_name, description, image, phrase, tips, goals, duration, created_at, updated_at
		FROM challenges
		WHERE name = ?
	`
	challenge := &models.Challenge{}
	var tips, goals string
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&challenge.Name, &challenge.ModuleName, &challenge.Description,
		&challenge.Image, &challenge.Phrase, &tips, &goals,
		&challenge.Duration, &challenge.CreatedAt, &challenge.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if challenge.Tips, err = decodeStrings(tips); err != nil {
		return nil, err
	}
	if challenge.Goals, err = decodeStrings(goals); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (r *challengeRepository) GetByModule(ctx context.Context, moduleName string) ([]*models.Challenge, error) {
	query := `
		SELECT name, module_name, description, image, phrase, tips, goals, duration, created_at, updated_at
		FROM challenges
		WHERE module_name = ?
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, moduleName)
	if err != nil {
		return nil, fmt.Errorf("failed to get module challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*models.Challenge
	for rows.Next() {
		challenge := &models.Challenge{}
		var tips, goals string
		if err := rows.Scan(
			&challenge.Name, &challenge.ModuleName, &challenge.Description,
			&challenge.Image, &challenge.Phrase, &tips, &goals,
			&challenge.Duration, &challenge.CreatedAt, &challenge.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		if challenge.Tips, err = decodeStrings(tips); err != nil {
			return nil, err
		}
		if challenge.Goals, err = decodeStrings(goals); err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}

	return challenges, nil
}

func (r *challengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	tips, err := encodeStrings(challenge.Tips)
	if err != nil {
		return err
	}
	goals, err := encodeStrings(challenge.Goals)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO challenges (name, module_name, description, image, phrase, tips, goals, duration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err = r.db.ExecContext(ctx, query,
		challenge.Name, challenge.ModuleName, challenge.Description,
		challenge.Image, challenge.Phrase, tips, goals, challenge.Duration,
	)
	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

// Update persists the mutable challenge fields. Name and duration are
// immutable and never part of the statement.
func (r *challengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	tips, err := encodeStrings(challenge.Tips)
	if err != nil {
		return err
	}
	goals, err := encodeStrings(challenge.Goals)
	if err != nil {
		return err
	}

	query := `
		UPDATE challenges
		SET module_name = ?, description = ?, image = ?, phrase = ?, tips = ?, goals = ?, updated_at = NOW()
		WHERE name = ?
	`
	_, err = r.db.ExecContext(ctx, query,
		challenge.ModuleName, challenge.Description, challenge.Image,
		challenge.Phrase, tips, goals, challenge.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to update challenge: %w", err)
	}
	return nil
}

func (r *challengeRepository) SearchByName(ctx context.Context, term string) ([]*models.ChallengeWithModule, error) {
	query := `
		SELECT c.name, c.module_name, c.description, c.image, c.phrase, c.tips, c.goals, c.duration, c.created_at, c.updated_at,
		       m.name, m.description, m.image
		FROM challenges c
		LEFT JOIN modules m ON m.name = c.module_name
		WHERE LOWER(c.name) LIKE ?
		ORDER BY c.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search challenges: %w", err)
	}
	defer rows.Close()

	var results []*models.ChallengeWithModule
	for rows.Next() {
		row := &models.ChallengeWithModule{}
		var tips, goals string
		var moduleName, moduleDescription, moduleImage sql.NullString
		if err := rows.Scan(
			&row.Challenge.Name, &row.Challenge.ModuleName, &row.Challenge.Description,
			&row.Challenge.Image, &row.Challenge.Phrase, &tips, &goals,
			&row.Challenge.Duration, &row.Challenge.CreatedAt, &row.Challenge.UpdatedAt,
			&moduleName, &moduleDescription, &moduleImage,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		if row.Challenge.Tips, err = decodeStrings(tips); err != nil {
			return nil, err
		}
		if row.Challenge.Goals, err = decodeStrings(goals); err != nil {
			return nil, err
		}
		if moduleName.Valid {
			row.Module = &models.Module{
				Name:        moduleName.String,
				Description: moduleDescription.String,
				Image:       moduleImage.String,
			}
		}
		results = append(results, row)
	}

	return results, nil
}

func (r *challengeRepository) DeleteCascade(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Redeemables first, then rosters, then the challenge row.
	if _, err = tx.ExecContext(ctx, "DELETE FROM redeemables WHERE challenge_name = ?", name); err != nil {
		return fmt.Errorf("failed to delete challenge redeemables: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM challenge_participants WHERE challenge_name = ?", name); err != nil {
		return fmt.Errorf("failed to delete challenge participants: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM challenges WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	return tx.Commit()
}
