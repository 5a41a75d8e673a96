package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wellnest/wellness-service/internal/models"
)

type RedeemableRepository interface {
	GetByKey(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error)
	Create(ctx context.Context, redeemable *models.Redeemable) error
	// CreateBatch inserts all links in one transaction; if any insert fails
	// the whole batch rolls back.
	CreateBatch(ctx context.Context, redeemables []*models.Redeemable) error
	UpdateLimitDays(ctx context.Context, key models.RedeemableKey, limitDays int32) error
	Delete(ctx context.Context, key models.RedeemableKey) error
	DeleteByChallenge(ctx context.Context, challengeName string) error
	GetByChallenge(ctx context.Context, challengeName string) ([]*models.Redeemable, error)
	// GetAwardsByChallenge resolves the awards reachable through the
	// challenge's redeemable links, ordered by award id.
	GetAwardsByChallenge(ctx context.Context, challengeName string) ([]*models.Award, error)
}

type redeemableRepository struct {
	db *sql.DB
}

func NewRedeemableRepository(db *sql.DB) RedeemableRepository {
	return &redeemableRepository{db: db}
}

func (r *redeemableRepository) GetByKey(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
	query := `
		SELECT challenge_name, award_id, limit_days, created_at, updated_at
		FROM redeemables
		WHERE challenge_name = ? AND award_id = ?
	`
	redeemable := &models.Redeemable{}
	err := r.db.QueryRowContext(ctx, query, key.ChallengeName, key.AwardID).Scan(
		&redeemable.Key.ChallengeName, &redeemable.Key.AwardID,
		&redeemable.LimitDays, &redeemable.CreatedAt, &redeemable.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get redeemable: %w", err)
	}
	return redeemable, nil
}

func (r *redeemableRepository) Create(ctx context.Context, redeemable *models.Redeemable) error {
	query := `
		INSERT INTO redeemables (challenge_name, award_id, limit_days, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		redeemable.Key.ChallengeName, redeemable.Key.AwardID, redeemable.LimitDays,
	)
	if err != nil {
		return fmt.Errorf("failed to create redeemable: %w", err)
	}
	return nil
}

func (r *redeemableRepository) CreateBatch(ctx context.Context, redeemables []*models.Redeemable) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO redeemables (challenge_name, award_id, limit_days, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`
	for _, redeemable := range redeemables {
		_, err = tx.ExecContext(ctx, query,
			redeemable.Key.ChallengeName, redeemable.Key.AwardID, redeemable.LimitDays,
		)
		if err != nil {
			return fmt.Errorf("failed to create redeemable %s: %w", redeemable.Key, err)
		}
	}

	return tx.Commit()
}

func (r *redeemableRepository) UpdateLimitDays(ctx context.Context, key models.RedeemableKey, limitDays int32) error {
	query := `
		UPDATE redeemables
		SET limit_days = ?, updated_at = NOW()
		WHERE challenge_name = ? AND award_id = ?
	`
	_, err := r.db.ExecContext(ctx, query, limitDays, key.ChallengeName, key.AwardID)
	if err != nil {
		return fmt.Errorf("failed to update redeemable: %w", err)
	}
	return nil
}

func (r *redeemableRepository) Delete(ctx context.Context, key models.RedeemableKey) error {
	query := "DELETE FROM redeemables WHERE challenge_name = ? AND award_id = ?"
	_, err := r.db.ExecContext(ctx, query, key.ChallengeName, key.AwardID)
	if err != nil {
		return fmt.Errorf("failed to delete redeemable: %w", err)
	}
	return nil
}

func (r *redeemableRepository) DeleteByChallenge(ctx context.Context, challengeName string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM redeemables WHERE challenge_name = ?", challengeName)
	if err != nil {
		return fmt.Errorf("failed to delete challenge redeemables: %w", err)
	}
	return nil
}

func (r *redeemableRepository) GetByChallenge(ctx context.Context, challengeName string) ([]*models.Redeemable, error) {
	query := `
		SELECT challenge_name, award_id, limit_days, created_at, updated_at
		FROM redeemables
		WHERE challenge_name = ?
		ORDER BY award_id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, challengeName)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge redeemables: %w", err)
	}
	defer rows.Close()

	var redeemables []*models.Redeemable
	for rows.Next() {
		redeemable := &models.Redeemable{}
		if err := rows.Scan(
			&redeemable.Key.ChallengeName, &redeemable.Key.AwardID,
			&redeemable.LimitDays, &redeemable.CreatedAt, &redeemable.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan redeemable: %w", err)
		}
		redeemables = append(redeemables, redeemable)
	}

	return redeemables, nil
}

func (r *redeemableRepository) GetAwardsByChallenge(ctx context.Context, challengeName string) ([]*models.Award, error) {
	query := `
		SELECT a.id, a.name, a.description, a.stock, a.image, a.created_at, a.updated_at
		FROM awards a
		INNER JOIN redeemables r ON r.award_id = a.id
		WHERE r.challenge_name = ?
		ORDER BY a.id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, challengeName)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge awards: %w", err)
	}
	defer rows.Close()

	var awards []*models.Award
	for rows.Next() {
		award := &models.Award{}
		if err := rows.Scan(
			&award.ID, &award.Name, &award.Description, &award.Stock,
			&award.Image, &award.CreatedAt, &award.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, award)
	}

	return awards, nil
}
