package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wellnest/wellness-service/internal/models"
	"wellnest/wellness-service/internal/repository"
)

var (
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrChallengeExists    = errors.New("challenge already exists")
	ErrSearchTermRequired = errors.New("search term is required")
)

// CreateChallengeInput carries the fields of a new challenge. Name and
// Duration become immutable once created.
type CreateChallengeInput struct {
	Name        string
	ModuleName  string
	Description string
	Image       string
	Phrase      string
	Tips        []string
	Goals       []string
	Duration    time.Time
}

// UpdateChallengeInput carries a partial update. Blank strings mean "leave
// unchanged" (there is no way to clear a field through update); nil Tips or
// Goals keep the stored lists, non-nil values replace them wholesale.
type UpdateChallengeInput struct {
	Name        string
	ModuleName  string
	Description string
	Image       string
	Phrase      string
	Tips        []string
	Goals       []string
}

type ChallengeService interface {
	Create(ctx context.Context, input CreateChallengeInput) (*models.ChallengeResource, error)
	Get(ctx context.Context, name string) (*models.ChallengeResource, error)
	Update(ctx context.Context, input UpdateChallengeInput) (*models.ChallengeResource, error)
	Delete(ctx context.Context, name string) error
	SearchGroupedByModule(ctx context.Context, term string) ([]*models.ModuleChallengesResource, error)
}

type challengeService struct {
	challengeRepo  repository.ChallengeRepository
	moduleRepo     repository.ModuleRepository
	redeemableRepo repository.RedeemableRepository
}

func NewChallengeService(
	challengeRepo repository.ChallengeRepository,
	moduleRepo repository.ModuleRepository,
	redeemableRepo repository.RedeemableRepository,
) ChallengeService {
	return &challengeService{
		challengeRepo:  challengeRepo,
		moduleRepo:     moduleRepo,
		redeemableRepo: redeemableRepo,
	}
}

func (s *challengeService) Create(ctx context.Context, input CreateChallengeInput) (*models.ChallengeResource, error) {
	module, err := s.moduleRepo.GetByName(ctx, input.ModuleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve module: %w", err)
	}
	if module == nil {
		// A challenge cannot exist without an owning module.
		return nil, ErrModuleNotFound
	}

	existing, err := s.challengeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check challenge name: %w", err)
	}
	if existing != nil {
		return nil, ErrChallengeExists
	}

	challenge := &models.Challenge{
		Name:        input.Name,
		ModuleName:  module.Name,
		Description: input.Description,
		Image:       input.Image,
		Phrase:      input.Phrase,
		Tips:        input.Tips,
		Goals:       input.Goals,
		Duration:    input.Duration,
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	return s.toResource(ctx, challenge)
}

func (s *challengeService) Get(ctx context.Context, name string) (*models.ChallengeResource, error) {
	challenge, err := s.challengeRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	return s.toResource(ctx, challenge)
}

func (s *challengeService) Update(ctx context.Context, input UpdateChallengeInput) (*models.ChallengeResource, error) {
	challenge, err := s.challengeRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	if strings.TrimSpace(input.Description) != "" {
		challenge.Description = input.Description
	}
	if strings.TrimSpace(input.Image) != "" {
		challenge.Image = input.Image
	}
	if strings.TrimSpace(input.Phrase) != "" {
		challenge.Phrase = input.Phrase
	}
	if input.Tips != nil {
		challenge.Tips = input.Tips
	}
	if input.Goals != nil {
		challenge.Goals = input.Goals
	}
	if strings.TrimSpace(input.ModuleName) != "" && input.ModuleName != challenge.ModuleName {
		module, err := s.moduleRepo.GetByName(ctx, input.ModuleName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve module: %w", err)
		}
		if module == nil {
			return nil, ErrModuleNotFound
		}
		challenge.ModuleName = module.Name
	}

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, err
	}

	return s.toResource(ctx, challenge)
}

func (s *challengeService) Delete(ctx context.Context, name string) error {
	challenge, err := s.challengeRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get challenge: %w", err)
	}
	if challenge == nil {
		return ErrChallengeNotFound
	}

	// The repository deletes redeemable links before the challenge row, all
	// inside one transaction.
	return s.challengeRepo.DeleteCascade(ctx, challenge.Name)
}

func (s *challengeService) SearchGroupedByModule(ctx context.Context, term string) ([]*models.ModuleChallengesResource, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrSearchTermRequired
	}

	rows, err := s.challengeRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search challenges: %w", err)
	}

	// Group by module name, preserving the name-ordered source list inside
	// each group. Rows whose module cannot be resolved are orphaned data and
	// are skipped.
	groups := make(map[string]*models.ModuleChallengesResource)
	var ordered []*models.ModuleChallengesResource
	for _, row := range rows {
		if row.Module == nil {
			continue
		}
		group, ok := groups[row.Module.Name]
		if !ok {
			group = &models.ModuleChallengesResource{
				ModuleName:  row.Module.Name,
				Description: row.Module.Description,
				Image:       row.Module.Image,
			}
			groups[row.Module.Name] = group
			ordered = append(ordered, group)
		}

		resource, err := s.toResource(ctx, &row.Challenge)
		if err != nil {
			return nil, err
		}
		group.Challenges = append(group.Challenges, *resource)
		group.TotalChallenges++
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return strings.ToLower(ordered[i].ModuleName) < strings.ToLower(ordered[j].ModuleName)
	})

	return ordered, nil
}

// toResource flattens a challenge into its read model. The award list is
// derived from the challenge's redeemable links; a challenge with no links
// gets a nil list (JSON null), not an empty one.
func (s *challengeService) toResource(ctx context.Context, challenge *models.Challenge) (*models.ChallengeResource, error) {
	awards, err := s.redeemableRepo.GetAwardsByChallenge(ctx, challenge.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve challenge awards: %w", err)
	}

	var summaries []models.AwardSummary
	for _, award := range awards {
		summaries = append(summaries, models.AwardSummary{
			Name:        award.Name,
			Description: award.Description,
			Stock:       award.Stock,
			Image:       award.Image,
		})
	}

	return &models.ChallengeResource{
		Name:        challenge.Name,
		Description: challenge.Description,
		Image:       challenge.Image,
		Phrase:      challenge.Phrase,
		Tips:        challenge.Tips,
		Duration:    challenge.Duration,
		Goals:       challenge.Goals,
		ModuleName:  challenge.ModuleName,
		Awards:      summaries,
	}, nil
}
