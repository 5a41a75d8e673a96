package repository

import (
	"context"
	"database/sql"
	"fmt"

	"wellnest/wellness-service/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetMedicalApproval(ctx context.Context, id string, approved bool) error
	List(ctx context.Context, page, perPage int32) ([]*models.User, int32, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, email, name, role, medical_approved, created_at"

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Role,
		&user.MedicalApproved, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = ?"
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, name, role, medical_approved, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.Role, user.MedicalApproved)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update persists the mutable user fields. Email and created_at are immutable
// and deliberately absent from the statement.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := "UPDATE users SET name = ?, role = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, user.Name, user.Role, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *userRepository) SetMedicalApproval(ctx context.Context, id string, approved bool) error {
	query := "UPDATE users SET medical_approved = ? WHERE id = ?"
	_, err := r.db.ExecContext(ctx, query, approved, id)
	if err != nil {
		return fmt.Errorf("failed to set medical approval: %w", err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, page, perPage int32) ([]*models.User, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := "SELECT " + userColumns + " FROM users ORDER BY created_at DESC LIMIT ? OFFSET ?"
	offset := (page - 1) * perPage
	rows, err := r.db.QueryContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.Role,
			&user.MedicalApproved, &user.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, total, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
