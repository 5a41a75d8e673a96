package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/repository"
	"wellnest/wellness-service/pkg/helpers"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email is already registered")
	ErrInvalidRole  = errors.New("invalid role")
)

type CreateUserInput struct {
	Email string
	Name  string
	Role  string
}

// UpdateUserInput carries a partial update addressed by email. Email itself
// is immutable and cannot be changed through update.
type UpdateUserInput struct {
	Email string
	Name  string
	Role  string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*models.UserResource, error)
	GetByEmail(ctx context.Context, email string) (*models.UserResource, error)
	Update(ctx context.Context, input UpdateUserInput) (*models.UserResource, error)
	// ApproveMedical is the only operation that sets the medical-approval
	// flag.
	ApproveMedical(ctx context.Context, email string) (*models.UserResource, error)
	List(ctx context.Context, page, perPage int32) ([]*models.UserResource, int32, error)
	Delete(ctx context.Context, email string) error
}

type userService struct {
	userRepo repository.UserRepository
	ids      *helpers.IDGenerator
}

func NewUserService(userRepo repository.UserRepository, ids *helpers.IDGenerator) UserService {
	return &userService{userRepo: userRepo, ids: ids}
}

func userToResource(user *models.User) *models.UserResource {
	return &models.UserResource{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            string(user.Role),
		MedicalApproved: user.MedicalApproved,
		CreatedAt:       user.CreatedAt,
	}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*models.UserResource, error) {
	role := models.Role(strings.ToLower(input.Role))
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &models.User{
		ID:    s.ids.GenerateUUID(),
		Email: input.Email,
		Name:  input.Name,
		Role:  role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResource(user), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.UserResource, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return userToResource(user), nil
}

func (s *userService) Update(ctx context.Context, input UpdateUserInput) (*models.UserResource, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if strings.TrimSpace(input.Name) != "" {
		user.Name = input.Name
	}
	if strings.TrimSpace(input.Role) != "" {
		role := models.Role(strings.ToLower(input.Role))
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResource(user), nil
}

func (s *userService) ApproveMedical(ctx context.Context, email string) (*models.UserResource, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.MedicalApproved {
		if err := s.userRepo.SetMedicalApproval(ctx, user.ID, true); err != nil {
			return nil, err
		}
		user.MedicalApproved = true
	}
	return userToResource(user), nil
}

func (s *userService) List(ctx context.Context, page, perPage int32) ([]*models.UserResource, int32, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, ErrInvalidPagination
	}

	users, total, err := s.userRepo.List(ctx, page, perPage)
	if err != nil {
		return nil, 0, err
	}

	resources := make([]*models.UserResource, 0, len(users))
	for _, user := range users {
		resources = append(resources, userToResource(user))
	}
	return resources, total, nil
}

func (s *userService) Delete(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, user.ID)
}
