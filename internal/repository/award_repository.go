package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wellnest/wellness-service/internal/models"
)

type AwardRepository interface {
	GetByID(ctx context.Context, id uint64) (*models.Award, error)
	Create(ctx context.Context, award *models.Award) (uint64, error)
	Update(ctx context.Context, award *models.Award) error
	List(ctx context.Context, page, perPage int32) ([]*models.Award, int32, error)
	// DeleteCascade removes the award and every redeemable link that
	// references it in one transaction.
	DeleteCascade(ctx context.Context, id uint64) error
}

type awardRepository struct {
	db *sql.DB
}

func NewAwardRepository(db *sql.DB) AwardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) GetByID(ctx context.Context, id uint64) (*models.Award, error) {
	query := `
		SELECT id, name, description, stock, image, created_at, updated_at
		FROM awards
		WHERE id = ?
	`
	award := &models.Award{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&award.ID, &award.Name, &award.Description, &award.Stock,
		&award.Image, &award.CreatedAt, &award.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	return award, nil
}

func (r *awardRepository) Create(ctx context.Context, award *models.Award) (uint64, error) {
	query := `
		INSERT INTO awards (name, description, stock, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.db.ExecContext(ctx, query, award.Name, award.Description, award.Stock, award.Image)
	if err != nil {
		return 0, fmt.Errorf("failed to create award: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read award id: %w", err)
	}
	return uint64(id), nil
}

func (r *awardRepository) Update(ctx context.Context, award *models.Award) error {
	query := `
		UPDATE awards
		SET name = ?, description = ?, stock = ?, image = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, award.Name, award.Description, award.Stock, award.Image, award.ID)
	if err != nil {
		return fmt.Errorf("failed to update award: %w", err)
	}
	return nil
}

func (r *awardRepository) List(ctx context.Context, page, perPage int32) ([]*models.Award, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM awards").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count awards: %w", err)
	}

	query := `
		SELECT id, name, description, stock, image, created_at, updated_at
		FROM awards
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`
	offset := (page - 1) * perPage
	rows, err := r.db.QueryContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list awards: %w", err)
	}
	defer rows.Close()

	var awards []*models.Award
	for rows.Next() {
		award := &models.Award{}
		if err := rows.Scan(
			&award.ID, &award.Name, &award.Description, &award.Stock,
			&award.Image, &award.CreatedAt, &award.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, award)
	}

	return awards, total, nil
}

func (r *awardRepository) DeleteCascade(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM redeemables WHERE award_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete award redeemables: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM awards WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete award: %w", err)
	}

	return tx.Commit()
}
