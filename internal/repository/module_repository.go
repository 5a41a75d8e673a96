package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wellnest/wellness-service/internal/models"
)

type ModuleRepository interface {
	GetByName(ctx context.Context, name string) (*models.Module, error)
	Create(ctx context.Context, module *models.Module) error
	Update(ctx context.Context, module *models.Module) error
	List(ctx context.Context, page, perPage int32) ([]*models.Module, int32, error)
	// DeleteCascade removes the module, every challenge it owns, and every
	// redeemable link and participant row of those challenges, in one
	// transaction. A partial cascade never commits.
	DeleteCascade(ctx context.Context, name string) error
}

type moduleRepository struct {
	db *sql.DB
}

func NewModuleRepository(db *sql.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) GetByName(ctx context.Context, name string) (*models.Module, error) {
	query := "SELECT name, description, image, created_at, updated_at FROM modules WHERE name = ?"
	module := &models.Module{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&module.Name, &module.Description, &module.Image,
		&module.CreatedAt, &module.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	return module, nil
}

func (r *moduleRepository) Create(ctx context.Context, module *models.Module) error {
	query := `
		INSERT INTO modules (name, description, image, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`
	_, err := r.db.ExecContext(ctx, query, module.Name, module.Description, module.Image)
	if err != nil {
		return fmt.Errorf("failed to create module: %w", err)
	}
	return nil
}

func (r *moduleRepository) Update(ctx context.Context, module *models.Module) error {
	query := "UPDATE modules SET description = ?, image = ?, updated_at = NOW() WHERE name = ?"
	_, err := r.db.ExecContext(ctx, query, module.Description, module.Image, module.Name)
	if err != nil {
		return fmt.Errorf("failed to update module: %w", err)
	}
	return nil
}

func (r *moduleRepository) List(ctx context.Context, page, perPage int32) ([]*models.Module, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM modules").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count modules: %w", err)
	}

	query := `
		SELECT name, description, image, created_at, updated_at
		FROM modules
		ORDER BY name ASC
		LIMIT ? OFFSET ?
	`
	offset := (page - 1) * perPage
	rows, err := r.db.QueryContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list modules: %w", err)
	}
	defer rows.Close()

	var modules []*models.Module
	for rows.Next() {
		module := &models.Module{}
		if err := rows.Scan(
			&module.Name, &module.Description, &module.Image,
			&module.CreatedAt, &module.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, module)
	}

	return modules, total, nil
}

func (r *moduleRepository) DeleteCascade(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Links and rosters of owned challenges go first, then the challenges,
	// then the module row itself. Ordering matters for referential integrity.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM redeemables
		WHERE challenge_name IN (SELECT name FROM challenges WHERE module_name = ?)
	`, name)
	if err != nil {
		return fmt.Errorf("failed to delete module redeemables: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM challenge_participants
		WHERE challenge_name IN (SELECT name FROM challenges WHERE module_name = ?)
	`, name)
	if err != nil {
		return fmt.Errorf("failed to delete module participants: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM challenges WHERE module_name = ?", name); err != nil {
		return fmt.Errorf("failed to delete module challenges: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM modules WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete module: %w", err)
	}

	return tx.Commit()
}
