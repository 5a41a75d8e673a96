package service

import (
	"context"
	"fmt"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/repository"
)

// ParticipationService owns the per-challenge roster state machine:
// NONE -> registered -> confirmed. Registration is idempotent and confirming
// a user who never registered is a silent no-op.
type ParticipationService interface {
	Register(ctx context.Context, email, challengeName string) error
	Confirm(ctx context.Context, email, challengeName string) error
	Participants(ctx context.Context, challengeName string, state models.ParticipationState) ([]*models.Participant, error)
}

type participationService struct {
	userRepo          repository.UserRepository
	challengeRepo     repository.ChallengeRepository
	participationRepo repository.ParticipationRepository
}

func NewParticipationService(
	userRepo repository.UserRepository,
	challengeRepo repository.ChallengeRepository,
	participationRepo repository.ParticipationRepository,
) ParticipationService {
	return &participationService{
		userRepo:          userRepo,
		challengeRepo:     challengeRepo,
		participationRepo: participationRepo,
	}
}

func (s *participationService) resolve(ctx context.Context, email, challengeName string) (*models.User, *models.Challenge, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	challenge, err := s.challengeRepo.GetByName(ctx, challengeName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve challenge: %w", err)
	}
	if challenge == nil {
		return nil, nil, ErrChallengeNotFound
	}

	return user, challenge, nil
}

func (s *participationService) Register(ctx context.Context, email, challengeName string) error {
	user, challenge, err := s.resolve(ctx, email, challengeName)
	if err != nil {
		return err
	}

	// The repository inserts only when the user holds no state on the
	// challenge; re-registering is a no-op, never an error.
	if _, err := s.participationRepo.Register(ctx, challenge.Name, user.ID); err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	return nil
}

func (s *participationService) Confirm(ctx context.Context, email, challengeName string) error {
	user, challenge, err := s.resolve(ctx, email, challengeName)
	if err != nil {
		return err
	}

	// Only a currently-registered user is promoted. Users who skipped
	// registration or were already confirmed are left untouched.
	if _, err := s.participationRepo.Confirm(ctx, challenge.Name, user.ID); err != nil {
		return fmt.Errorf("failed to confirm: %w", err)
	}
	return nil
}

func (s *participationService) Participants(ctx context.Context, challengeName string, state models.ParticipationState) ([]*models.Participant, error) {
	challenge, err := s.challengeRepo.GetByName(ctx, challengeName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve challenge: %w", err)
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	participants, err := s.participationRepo.ListByState(ctx, challenge.Name, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}
