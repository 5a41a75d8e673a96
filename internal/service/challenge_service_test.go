package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnest/wellness-service/internal/models"
)

func TestChallengeServiceCreate(t *testing.T) {
	duration := time.Now().Add(30 * 24 * time.Hour)

	t.Run("module must exist", func(t *testing.T) {
		moduleRepo := &mockModuleRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Module, error) {
				return nil, nil
			},
		}
		svc := NewChallengeService(&mockChallengeRepository{}, moduleRepo, &mockRedeemableRepository{})

		_, err := svc.Create(context.Background(), CreateChallengeInput{
			Name:       "Hydration",
			ModuleName: "missing",
			Duration:   duration,
		})
		assert.ErrorIs(t, err, ErrModuleNotFound)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		moduleRepo := &mockModuleRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Module, error) {
				return &models.Module{Name: name}, nil
			},
		}
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return &models.Challenge{Name: name}, nil
			},
		}
		svc := NewChallengeService(challengeRepo, moduleRepo, &mockRedeemableRepository{})

		_, err := svc.Create(context.Background(), CreateChallengeInput{
			Name:       "Hydration",
			ModuleName: "Nutrition",
			Duration:   duration,
		})
		assert.ErrorIs(t, err, ErrChallengeExists)
	})

	t.Run("new challenge has null awards", func(t *testing.T) {
		moduleRepo := &mockModuleRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Module, error) {
				return &models.Module{Name: name}, nil
			},
		}
		var created *models.Challenge
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return nil, nil
			},
			createFunc: func(ctx context.Context, challenge *models.Challenge) error {
				created = challenge
				return nil
			},
		}
		redeemableRepo := &mockRedeemableRepository{
			getAwardsByChallengeFunc: func(ctx context.Context, challengeName string) ([]*models.Award, error) {
				return nil, nil
			},
		}
		svc := NewChallengeService(challengeRepo, moduleRepo, redeemableRepo)

		resource, err := svc.Create(context.Background(), CreateChallengeInput{
			Name:       "Hydration",
			ModuleName: "Nutrition",
			Tips:       []string{"carry a bottle"},
			Duration:   duration,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Nutrition", created.ModuleName)
		assert.Equal(t, "Hydration", resource.Name)
		assert.Nil(t, resource.Awards)
	})
}

func TestChallengeServiceUpdate(t *testing.T) {
	stored := func() *models.Challenge {
		return &models.Challenge{
			Name:        "Hydration",
			ModuleName:  "Nutrition",
			Description: "drink water",
			Phrase:      "stay hydrated",
			Tips:        []string{"old tip"},
			Goals:       []string{"old goal"},
		}
	}

	newService := func(challenge *models.Challenge, updated **models.Challenge) ChallengeService {
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return challenge, nil
			},
			updateFunc: func(ctx context.Context, c *models.Challenge) error {
				*updated = c
				return nil
			},
		}
		moduleRepo := &mockModuleRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Module, error) {
				if name == "Fitness" {
					return &models.Module{Name: "Fitness"}, nil
				}
				return nil, nil
			},
		}
		redeemableRepo := &mockRedeemableRepository{}
		return NewChallengeService(challengeRepo, moduleRepo, redeemableRepo)
	}

	t.Run("blank fields keep stored values", func(t *testing.T) {
		var updated *models.Challenge
		svc := newService(stored(), &updated)

		_, err := svc.Update(context.Background(), UpdateChallengeInput{
			Name:        "Hydration",
			Description: "  ",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "drink water", updated.Description)
		assert.Equal(t, "stay hydrated", updated.Phrase)
		assert.Equal(t, []string{"old tip"}, updated.Tips)
	})

	t.Run("non-nil lists replace wholesale", func(t *testing.T) {
		var updated *models.Challenge
		svc := newService(stored(), &updated)

		_, err := svc.Update(context.Background(), UpdateChallengeInput{
			Name: "Hydration",
			Tips: []string{"new tip one", "new tip two"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"new tip one", "new tip two"}, updated.Tips)
		assert.Equal(t, []string{"old goal"}, updated.Goals)
	})

	t.Run("reassignment to unknown module fails", func(t *testing.T) {
		var updated *models.Challenge
		svc := newService(stored(), &updated)

		_, err := svc.Update(context.Background(), UpdateChallengeInput{
			Name:       "Hydration",
			ModuleName: "Ghost",
		})
		assert.ErrorIs(t, err, ErrModuleNotFound)
		assert.Nil(t, updated)
	})

	t.Run("reassignment to existing module", func(t *testing.T) {
		var updated *models.Challenge
		svc := newService(stored(), &updated)

		_, err := svc.Update(context.Background(), UpdateChallengeInput{
			Name:       "Hydration",
			ModuleName: "Fitness",
		})
		require.NoError(t, err)
		assert.Equal(t, "Fitness", updated.ModuleName)
	})
}

func TestChallengeServiceSearchGroupedByModule(t *testing.T) {
	module := func(name string) *models.Module {
		return &models.Module{Name: name, Description: name + " module"}
	}
	row := func(challengeName string, m *models.Module) *models.ChallengeWithModule {
		r := &models.ChallengeWithModule{Module: m}
		r.Challenge.Name = challengeName
		if m != nil {
			r.Challenge.ModuleName = m.Name
		}
		return r
	}

	t.Run("blank term rejected before hitting storage", func(t *testing.T) {
		svc := NewChallengeService(&mockChallengeRepository{}, &mockModuleRepository{}, &mockRedeemableRepository{})

		_, err := svc.SearchGroupedByModule(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrSearchTermRequired)
	})

	t.Run("groups sorted by module name case-insensitively", func(t *testing.T) {
		challengeRepo := &mockChallengeRepository{
			searchByNameFunc: func(ctx context.Context, term string) ([]*models.ChallengeWithModule, error) {
				return []*models.ChallengeWithModule{
					row("Morning run", module("fitness")),
					row("Muesli breakfast", module("Nutrition")),
					row("Mountain hike", module("fitness")),
					row("Meditation", module("Balance")),
				}, nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, &mockRedeemableRepository{})

		groups, err := svc.SearchGroupedByModule(context.Background(), "m")
		require.NoError(t, err)
		require.Len(t, groups, 3)

		assert.Equal(t, "Balance", groups[0].ModuleName)
		assert.Equal(t, "fitness", groups[1].ModuleName)
		assert.Equal(t, "Nutrition", groups[2].ModuleName)

		assert.Equal(t, 2, groups[1].TotalChallenges)
		require.Len(t, groups[1].Challenges, 2)
		assert.Equal(t, "Morning run", groups[1].Challenges[0].Name)
		assert.Equal(t, "Mountain hike", groups[1].Challenges[1].Name)
	})

	t.Run("orphaned challenges are skipped", func(t *testing.T) {
		challengeRepo := &mockChallengeRepository{
			searchByNameFunc: func(ctx context.Context, term string) ([]*models.ChallengeWithModule, error) {
				return []*models.ChallengeWithModule{
					row("Orphan", nil),
					row("Morning run", module("fitness")),
				}, nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, &mockRedeemableRepository{})

		groups, err := svc.SearchGroupedByModule(context.Background(), "o")
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, 1, groups[0].TotalChallenges)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		challengeRepo := &mockChallengeRepository{
			searchByNameFunc: func(ctx context.Context, term string) ([]*models.ChallengeWithModule, error) {
				return nil, nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, &mockRedeemableRepository{})

		groups, err := svc.SearchGroupedByModule(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestChallengeServiceGet(t *testing.T) {
	t.Run("linked awards are flattened", func(t *testing.T) {
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return &models.Challenge{Name: name, ModuleName: "Nutrition"}, nil
			},
		}
		redeemableRepo := &mockRedeemableRepository{
			getAwardsByChallengeFunc: func(ctx context.Context, challengeName string) ([]*models.Award, error) {
				return []*models.Award{
					{ID: 1, Name: "Water bottle", Stock: 10},
					{ID: 2, Name: "Gym pass", Stock: 3},
				}, nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, redeemableRepo)

		resource, err := svc.Get(context.Background(), "Hydration")
		require.NoError(t, err)
		require.Len(t, resource.Awards, 2)
		assert.Equal(t, "Water bottle", resource.Awards[0].Name)
		assert.Equal(t, int32(3), resource.Awards[1].Stock)
	})

	t.Run("unknown challenge", func(t *testing.T) {
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return nil, nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, &mockRedeemableRepository{})

		_, err := svc.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrChallengeNotFound)
	})
}

func TestChallengeServiceDelete(t *testing.T) {
	t.Run("cascade runs for existing challenge", func(t *testing.T) {
		var cascaded string
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return &models.Challenge{Name: name}, nil
			},
			deleteCascadeFunc: func(ctx context.Context, name string) error {
				cascaded = name
				return nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, &mockRedeemableRepository{})

		require.NoError(t, svc.Delete(context.Background(), "Hydration"))
		assert.Equal(t, "Hydration", cascaded)
	})

	t.Run("unknown challenge", func(t *testing.T) {
		challengeRepo := &mockChallengeRepository{
			getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
				return nil, nil
			},
		}
		svc := NewChallengeService(challengeRepo, &mockModuleRepository{}, &mockRedeemableRepository{})

		assert.ErrorIs(t, svc.Delete(context.Background(), "ghost"), ErrChallengeNotFound)
	})
}
