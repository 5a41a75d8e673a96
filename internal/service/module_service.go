package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/repository"
)

var (
	ErrModuleNotFound = errors.New("module not found")
	ErrModuleExists   = errors.New("module already exists")
)

type CreateModuleInput struct {
	Name        string
	Description string
	Image       string
}

// UpdateModuleInput carries a partial update; blank fields are left
// unchanged.
type UpdateModuleInput struct {
	Name        string
	Description string
	Image       string
}

type ModuleService interface {
	Create(ctx context.Context, input CreateModuleInput) (*models.ModuleResource, error)
	Get(ctx context.Context, name string) (*models.ModuleResource, error)
	Update(ctx context.Context, input UpdateModuleInput) (*models.ModuleResource, error)
	List(ctx context.Context, page, perPage int32) ([]*models.ModuleResource, int32, error)
	Challenges(ctx context.Context, name string) ([]*models.Challenge, error)
	Delete(ctx context.Context, name string) error
}

type moduleService struct {
	moduleRepo    repository.ModuleRepository
	challengeRepo repository.ChallengeRepository
}

func NewModuleService(moduleRepo repository.ModuleRepository, challengeRepo repository.ChallengeRepository) ModuleService {
	return &moduleService{
		moduleRepo:    moduleRepo,
		challengeRepo: challengeRepo,
	}
}

func moduleToResource(module *models.Module) *models.ModuleResource {
	return &models.ModuleResource{
		Name:        module.Name,
		Description: module.Description,
		Image:       module.Image,
	}
}

func (s *moduleService) Create(ctx context.Context, input CreateModuleInput) (*models.ModuleResource, error) {
	existing, err := s.moduleRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check module name: %w", err)
	}
	if existing != nil {
		return nil, ErrModuleExists
	}

	module := &models.Module{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, err
	}
	return moduleToResource(module), nil
}

func (s *moduleService) Get(ctx context.Context, name string) (*models.ModuleResource, error) {
	module, err := s.moduleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}
	return moduleToResource(module), nil
}

func (s *moduleService) Update(ctx context.Context, input UpdateModuleInput) (*models.ModuleResource, error) {
	module, err := s.moduleRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}

	if strings.TrimSpace(input.Description) != "" {
		module.Description = input.Description
	}
	if strings.TrimSpace(input.Image) != "" {
		module.Image = input.Image
	}

	if err := s.moduleRepo.Update(ctx, module); err != nil {
		return nil, err
	}
	return moduleToResource(module), nil
}

func (s *moduleService) List(ctx context.Context, page, perPage int32) ([]*models.ModuleResource, int32, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, ErrInvalidPagination
	}

	modules, total, err := s.moduleRepo.List(ctx, page, perPage)
	if err != nil {
		return nil, 0, err
	}

	resources := make([]*models.ModuleResource, 0, len(modules))
	for _, module := range modules {
		resources = append(resources, moduleToResource(module))
	}
	return resources, total, nil
}

func (s *moduleService) Challenges(ctx context.Context, name string) ([]*models.Challenge, error) {
	module, err := s.moduleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get module: %w", err)
	}
	if module == nil {
		return nil, ErrModuleNotFound
	}
	return s.challengeRepo.GetByModule(ctx, module.Name)
}

func (s *moduleService) Delete(ctx context.Context, name string) error {
	module, err := s.moduleRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get module: %w", err)
	}
	if module == nil {
		return ErrModuleNotFound
	}

	// One transaction removes the module, its challenges, their redeemable
	// links and their rosters; a partial cascade never commits.
	return s.moduleRepo.DeleteCascade(ctx, module.Name)
}
