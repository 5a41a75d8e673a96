package service

import (
	"context"
	"errors"
	"fmt"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/repository"
)

var (
	ErrRedeemableNotFound = errors.New("redeemable not found")
	ErrRedeemableExists   = errors.New("redeemable already exists for this challenge and award")
)

// RedeemableInput is one link creation request.
type RedeemableInput struct {
	ChallengeName string
	AwardID       uint64
	LimitDays     int32
}

// RedeemableService owns the challenge-award association records keyed by
// (challenge name, award id).
type RedeemableService interface {
	Create(ctx context.Context, input RedeemableInput) (*models.RedeemableResource, error)
	// CreateBatch persists a list of links as one unit: every referenced
	// challenge and award is resolved before anything is saved, and the
	// inserts run in a single transaction.
	CreateBatch(ctx context.Context, inputs []RedeemableInput) error
	Get(ctx context.Context, key models.RedeemableKey) (*models.RedeemableResource, error)
	// ListForChallenge returns every link of a challenge, ordered by award id.
	ListForChallenge(ctx context.Context, challengeName string) ([]*models.RedeemableResource, error)
	// UpdateLimitDays replaces the expiry window; a nil value leaves it
	// unchanged.
	UpdateLimitDays(ctx context.Context, key models.RedeemableKey, limitDays *int32) (*models.RedeemableResource, error)
	Delete(ctx context.Context, key models.RedeemableKey) error
	// DeleteAllForChallenge bulk-removes every link of a challenge without
	// touching the challenge itself.
	DeleteAllForChallenge(ctx context.Context, challengeName string) error
}

type redeemableService struct {
	redeemableRepo repository.RedeemableRepository
	challengeRepo  repository.ChallengeRepository
	awardRepo      repository.AwardRepository
}

func NewRedeemableService(
	redeemableRepo repository.RedeemableRepository,
	challengeRepo repository.ChallengeRepository,
	awardRepo repository.AwardRepository,
) RedeemableService {
	return &redeemableService{
		redeemableRepo: redeemableRepo,
		challengeRepo:  challengeRepo,
		awardRepo:      awardRepo,
	}
}

func redeemableToResource(redeemable *models.Redeemable) *models.RedeemableResource {
	return &models.RedeemableResource{
		ChallengeName: redeemable.Key.ChallengeName,
		AwardID:       redeemable.Key.AwardID,
		LimitDays:     redeemable.LimitDays,
	}
}

// resolveEnds verifies both ends of a link exist.
func (s *redeemableService) resolveEnds(ctx context.Context, input RedeemableInput) error {
	challenge, err := s.challengeRepo.GetByName(ctx, input.ChallengeName)
	if err != nil {
		return fmt.Errorf("failed to resolve challenge: %w", err)
	}
	if challenge == nil {
		return ErrChallengeNotFound
	}

	award, err := s.awardRepo.GetByID(ctx, input.AwardID)
	if err != nil {
		return fmt.Errorf("failed to resolve award: %w", err)
	}
	if award == nil {
		return ErrAwardNotFound
	}

	return nil
}

func (s *redeemableService) Create(ctx context.Context, input RedeemableInput) (*models.RedeemableResource, error) {
	if err := s.resolveEnds(ctx, input); err != nil {
		return nil, err
	}

	key := models.RedeemableKey{ChallengeName: input.ChallengeName, AwardID: input.AwardID}
	existing, err := s.redeemableRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check redeemable key: %w", err)
	}
	if existing != nil {
		return nil, ErrRedeemableExists
	}

	redeemable := &models.Redeemable{Key: key, LimitDays: input.LimitDays}
	if err := s.redeemableRepo.Create(ctx, redeemable); err != nil {
		return nil, err
	}
	return redeemableToResource(redeemable), nil
}

func (s *redeemableService) CreateBatch(ctx context.Context, inputs []RedeemableInput) error {
	seen := make(map[models.RedeemableKey]bool, len(inputs))
	redeemables := make([]*models.Redeemable, 0, len(inputs))

	// All lookups happen before any save so a bad reference aborts the whole
	// batch instead of committing a prefix of it.
	for _, input := range inputs {
		if err := s.resolveEnds(ctx, input); err != nil {
			return err
		}

		key := models.RedeemableKey{ChallengeName: input.ChallengeName, AwardID: input.AwardID}
		if seen[key] {
			return ErrRedeemableExists
		}
		seen[key] = true

		existing, err := s.redeemableRepo.GetByKey(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check redeemable key: %w", err)
		}
		if existing != nil {
			return ErrRedeemableExists
		}

		redeemables = append(redeemables, &models.Redeemable{Key: key, LimitDays: input.LimitDays})
	}

	return s.redeemableRepo.CreateBatch(ctx, redeemables)
}

func (s *redeemableService) Get(ctx context.Context, key models.RedeemableKey) (*models.RedeemableResource, error) {
	redeemable, err := s.redeemableRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get redeemable: %w", err)
	}
	if redeemable == nil {
		return nil, ErrRedeemableNotFound
	}
	return redeemableToResource(redeemable), nil
}

func (s *redeemableService) ListForChallenge(ctx context.Context, challengeName string) ([]*models.RedeemableResource, error) {
	challenge, err := s.challengeRepo.GetByName(ctx, challengeName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve challenge: %w", err)
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	redeemables, err := s.redeemableRepo.GetByChallenge(ctx, challenge.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list redeemables: %w", err)
	}

	resources := make([]*models.RedeemableResource, 0, len(redeemables))
	for _, redeemable := range redeemables {
		resources = append(resources, redeemableToResource(redeemable))
	}
	return resources, nil
}

func (s *redeemableService) UpdateLimitDays(ctx context.Context, key models.RedeemableKey, limitDays *int32) (*models.RedeemableResource, error) {
	redeemable, err := s.redeemableRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get redeemable: %w", err)
	}
	if redeemable == nil {
		return nil, ErrRedeemableNotFound
	}

	if limitDays != nil {
		redeemable.LimitDays = *limitDays
		if err := s.redeemableRepo.UpdateLimitDays(ctx, key, *limitDays); err != nil {
			return nil, err
		}
	}

	return redeemableToResource(redeemable), nil
}

func (s *redeemableService) Delete(ctx context.Context, key models.RedeemableKey) error {
	redeemable, err := s.redeemableRepo.GetByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get redeemable: %w", err)
	}
	if redeemable == nil {
		return ErrRedeemableNotFound
	}
	return s.redeemableRepo.Delete(ctx, key)
}

func (s *redeemableService) DeleteAllForChallenge(ctx context.Context, challengeName string) error {
	challenge, err := s.challengeRepo.GetByName(ctx, challengeName)
	if err != nil {
		return fmt.Errorf("failed to resolve challenge: %w", err)
	}
	if challenge == nil {
		return ErrChallengeNotFound
	}
	return s.redeemableRepo.DeleteByChallenge(ctx, challenge.Name)
}
