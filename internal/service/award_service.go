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
	ErrAwardNotFound     = errors.New("award not found")
	ErrInvalidPagination = errors.New("page and per_page must be positive")
)

type CreateAwardInput struct {
	Name        string
	Description string
	Stock       int32
	Image       string
}

// UpdateAwardInput carries a partial update; blank strings and a nil Stock
// are left unchanged.
type UpdateAwardInput struct {
	ID          uint64
	Name        string
	Description string
	Image       string
	Stock       *int32
}

type AwardService interface {
	Create(ctx context.Context, input CreateAwardInput) (*models.AwardResource, error)
	Get(ctx context.Context, id uint64) (*models.AwardResource, error)
	Update(ctx context.Context, input UpdateAwardInput) (*models.AwardResource, error)
	List(ctx context.Context, page, perPage int32) ([]*models.AwardResource, int32, error)
	Delete(ctx context.Context, id uint64) error
}

type awardService struct {
	awardRepo repository.AwardRepository
}

func NewAwardService(awardRepo repository.AwardRepository) AwardService {
	return &awardService{awardRepo: awardRepo}
}

func awardToResource(award *models.Award) *models.AwardResource {
	return &models.AwardResource{
		ID:          award.ID,
		Name:        award.Name,
		Description: award.Description,
		Stock:       award.Stock,
		Image:       award.Image,
	}
}

func (s *awardService) Create(ctx context.Context, input CreateAwardInput) (*models.AwardResource, error) {
	award := &models.Award{
		Name:        input.Name,
		Description: input.Description,
		Stock:       input.Stock,
		Image:       input.Image,
	}
	id, err := s.awardRepo.Create(ctx, award)
	if err != nil {
		return nil, err
	}
	award.ID = id
	return awardToResource(award), nil
}

func (s *awardService) Get(ctx context.Context, id uint64) (*models.AwardResource, error) {
	award, err := s.awardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	if award == nil {
		return nil, ErrAwardNotFound
	}
	return awardToResource(award), nil
}

func (s *awardService) Update(ctx context.Context, input UpdateAwardInput) (*models.AwardResource, error) {
	award, err := s.awardRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	if award == nil {
		return nil, ErrAwardNotFound
	}

	if strings.TrimSpace(input.Name) != "" {
		award.Name = input.Name
	}
	if strings.TrimSpace(input.Description) != "" {
		award.Description = input.Description
	}
	if strings.TrimSpace(input.Image) != "" {
		award.Image = input.Image
	}
	if input.Stock != nil {
		award.Stock = *input.Stock
	}

	if err := s.awardRepo.Update(ctx, award); err != nil {
		return nil, err
	}
	return awardToResource(award), nil
}

func (s *awardService) List(ctx context.Context, page, perPage int32) ([]*models.AwardResource, int32, error) {
	if page < 1 || perPage < 1 {
		return nil, 0, ErrInvalidPagination
	}

	awards, total, err := s.awardRepo.List(ctx, page, perPage)
	if err != nil {
		return nil, 0, err
	}

	resources := make([]*models.AwardResource, 0, len(awards))
	for _, award := range awards {
		resources = append(resources, awardToResource(award))
	}
	return resources, total, nil
}

func (s *awardService) Delete(ctx context.Context, id uint64) error {
	award, err := s.awardRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get award: %w", err)
	}
	if award == nil {
		return ErrAwardNotFound
	}

	// Redeemable links referencing the award die with it, atomically.
	return s.awardRepo.DeleteCascade(ctx, award.ID)
}
