package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wellnest/wellness-service/internal/models"
)

type ParticipationRepository interface {
	// Register adds the user to the challenge's registered set unless the
	// user already holds a state on the challenge. Returns true when a row
	// was inserted, false for the idempotent no-op.
	Register(ctx context.Context, challengeName, userID string) (bool, error)
	// Confirm promotes a registered user to confirmed. Returns true when the
	// promotion happened, false for the no-op (absent or already confirmed).
	Confirm(ctx context.Context, challengeName, userID string) (bool, error)
	GetState(ctx context.Context, challengeName, userID string) (models.ParticipationState, error)
	ListByState(ctx context.Context, challengeName string, state models.ParticipationState) ([]*models.Participant, error)
}

type participationRepository struct {
	db *sql.DB
}

func NewParticipationRepository(db *sql.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

// Both transitions run read-check-write inside one transaction with a row
// lock, so concurrent calls on the same (challenge, user) pair serialize
// instead of racing to duplicate or lose membership.

func (r *participationRepository) Register(ctx context.Context, challengeName, userID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var state string
	err = tx.QueryRowContext(ctx, `
		SELECT state FROM challenge_participants
		WHERE challenge_name = ? AND user_id = ?
		FOR UPDATE
	`, challengeName, userID).Scan(&state)
	if err == nil {
		// Already registered or confirmed; nothing to persist.
		return false, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to read participation state: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO challenge_participants (challenge_name, user_id, state, created_at, updated_at)
		VALUES (?, ?, 'registered', NOW(), NOW())
	`, challengeName, userID)
	if err != nil {
		return false, fmt.Errorf("failed to register participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit registration: %w", err)
	}
	return true, nil
}

func (r *participationRepository) Confirm(ctx context.Context, challengeName, userID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var state string
	err = tx.QueryRowContext(ctx, `
		SELECT state FROM challenge_participants
		WHERE challenge_name = ? AND user_id = ?
		FOR UPDATE
	`, challengeName, userID).Scan(&state)
	if err == sql.ErrNoRows {
		// Never registered; confirming is a no-op.
		return false, tx.Commit()
	}
	if err != nil {
		return false, fmt.Errorf("failed to read participation state: %w", err)
	}
	if state != string(models.StateRegistered) {
		return false, tx.Commit()
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE challenge_participants
		SET state = 'confirmed', updated_at = NOW()
		WHERE challenge_name = ? AND user_id = ?
	`, challengeName, userID)
	if err != nil {
		return false, fmt.Errorf("failed to confirm participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit confirmation: %w", err)
	}
	return true, nil
}

func (r *participationRepository) GetState(ctx context.Context, challengeName, userID string) (models.ParticipationState, error) {
	var state string
	err := r.db.QueryRowContext(ctx, `
		SELECT state FROM challenge_participants
		WHERE challenge_name = ? AND user_id = ?
	`, challengeName, userID).Scan(&state)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get participation state: %w", err)
	}
	return models.ParticipationState(state), nil
}

func (r *participationRepository) ListByState(ctx context.Context, challengeName string, state models.ParticipationState) ([]*models.Participant, error) {
	query := `
		SELECT challenge_name, user_id, state, created_at, updated_at
		FROM challenge_participants
		WHERE challenge_name = ? AND state = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, challengeName, string(state))
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		participant := &models.Participant{}
		if err := rows.Scan(
			&participant.ChallengeName, &participant.UserID, &participant.State,
			&participant.CreatedAt, &participant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	return participants, nil
}
