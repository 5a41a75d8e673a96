package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnest/wellness-service/internal/models"
)

func redeemableFixtures() (*mockChallengeRepository, *mockAwardRepository) {
	challengeRepo := &mockChallengeRepository{
		getByNameFunc: func(ctx context.Context, name string) (*models.Challenge, error) {
			if name == "Hydration" || name == "Meditation" {
				return &models.Challenge{Name: name}, nil
			}
			return nil, nil
		},
	}
	awardRepo := &mockAwardRepository{
		getByIDFunc: func(ctx context.Context, id uint64) (*models.Award, error) {
			if id <= 5 {
				return &models.Award{ID: id, Name: "Award"}, nil
			}
			return nil, nil
		},
	}
	return challengeRepo, awardRepo
}

func TestRedeemableCreate(t *testing.T) {
	t.Run("both ends must exist", func(t *testing.T) {
		challengeRepo, awardRepo := redeemableFixtures()
		svc := NewRedeemableService(&mockRedeemableRepository{}, challengeRepo, awardRepo)

		_, err := svc.Create(context.Background(), RedeemableInput{ChallengeName: "ghost", AwardID: 1, LimitDays: 7})
		assert.ErrorIs(t, err, ErrChallengeNotFound)

		_, err = svc.Create(context.Background(), RedeemableInput{ChallengeName: "Hydration", AwardID: 99, LimitDays: 7})
		assert.ErrorIs(t, err, ErrAwardNotFound)
	})

	t.Run("duplicate key is a conflict", func(t *testing.T) {
		challengeRepo, awardRepo := redeemableFixtures()
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
				return &models.Redeemable{Key: key, LimitDays: 7}, nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, challengeRepo, awardRepo)

		_, err := svc.Create(context.Background(), RedeemableInput{ChallengeName: "Hydration", AwardID: 1, LimitDays: 7})
		assert.ErrorIs(t, err, ErrRedeemableExists)
	})

	t.Run("new link persisted", func(t *testing.T) {
		challengeRepo, awardRepo := redeemableFixtures()
		var saved *models.Redeemable
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
				return nil, nil
			},
			createFunc: func(ctx context.Context, redeemable *models.Redeemable) error {
				saved = redeemable
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, challengeRepo, awardRepo)

		resource, err := svc.Create(context.Background(), RedeemableInput{ChallengeName: "Hydration", AwardID: 2, LimitDays: 14})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, models.RedeemableKey{ChallengeName: "Hydration", AwardID: 2}, saved.Key)
		assert.Equal(t, int32(14), resource.LimitDays)
	})
}

func TestRedeemableCreateBatch(t *testing.T) {
	t.Run("in-batch duplicate aborts before any save", func(t *testing.T) {
		challengeRepo, awardRepo := redeemableFixtures()
		batchCalled := false
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
				return nil, nil
			},
			createBatchFunc: func(ctx context.Context, redeemables []*models.Redeemable) error {
				batchCalled = true
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, challengeRepo, awardRepo)

		err := svc.CreateBatch(context.Background(), []RedeemableInput{
			{ChallengeName: "Hydration", AwardID: 1, LimitDays: 7},
			{ChallengeName: "Hydration", AwardID: 1, LimitDays: 10},
		})
		assert.ErrorIs(t, err, ErrRedeemableExists)
		assert.False(t, batchCalled)
	})

	t.Run("bad reference anywhere aborts the whole batch", func(t *testing.T) {
		challengeRepo, awardRepo := redeemableFixtures()
		batchCalled := false
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
				return nil, nil
			},
			createBatchFunc: func(ctx context.Context, redeemables []*models.Redeemable) error {
				batchCalled = true
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, challengeRepo, awardRepo)

		err := svc.CreateBatch(context.Background(), []RedeemableInput{
			{ChallengeName: "Hydration", AwardID: 1, LimitDays: 7},
			{ChallengeName: "Hydration", AwardID: 99, LimitDays: 7},
		})
		assert.ErrorIs(t, err, ErrAwardNotFound)
		assert.False(t, batchCalled)
	})

	t.Run("valid batch reaches storage intact", func(t *testing.T) {
		challengeRepo, awardRepo := redeemableFixtures()
		var got []*models.Redeemable
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, key models.RedeemableKey) (*models.Redeemable, error) {
				return nil, nil
			},
			createBatchFunc: func(ctx context.Context, redeemables []*models.Redeemable) error {
				got = redeemables
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, challengeRepo, awardRepo)

		err := svc.CreateBatch(context.Background(), []RedeemableInput{
			{ChallengeName: "Hydration", AwardID: 1, LimitDays: 7},
			{ChallengeName: "Meditation", AwardID: 2, LimitDays: 30},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Meditation", got[1].Key.ChallengeName)
		assert.Equal(t, int32(30), got[1].LimitDays)
	})
}

func TestRedeemableUpdateLimitDays(t *testing.T) {
	key := models.RedeemableKey{ChallengeName: "Hydration", AwardID: 1}

	t.Run("nil leaves the window unchanged", func(t *testing.T) {
		updateCalled := false
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, k models.RedeemableKey) (*models.Redeemable, error) {
				return &models.Redeemable{Key: k, LimitDays: 7}, nil
			},
			updateLimitDaysFunc: func(ctx context.Context, k models.RedeemableKey, limitDays int32) error {
				updateCalled = true
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, &mockChallengeRepository{}, &mockAwardRepository{})

		resource, err := svc.UpdateLimitDays(context.Background(), key, nil)
		require.NoError(t, err)
		assert.Equal(t, int32(7), resource.LimitDays)
		assert.False(t, updateCalled)
	})

	t.Run("value replaces the window", func(t *testing.T) {
		var gotDays int32
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, k models.RedeemableKey) (*models.Redeemable, error) {
				return &models.Redeemable{Key: k, LimitDays: 7}, nil
			},
			updateLimitDaysFunc: func(ctx context.Context, k models.RedeemableKey, limitDays int32) error {
				gotDays = limitDays
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, &mockChallengeRepository{}, &mockAwardRepository{})

		days := int32(21)
		resource, err := svc.UpdateLimitDays(context.Background(), key, &days)
		require.NoError(t, err)
		assert.Equal(t, int32(21), gotDays)
		assert.Equal(t, int32(21), resource.LimitDays)
	})

	t.Run("unknown key", func(t *testing.T) {
		redeemableRepo := &mockRedeemableRepository{
			getByKeyFunc: func(ctx context.Context, k models.RedeemableKey) (*models.Redeemable, error) {
				return nil, nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, &mockChallengeRepository{}, &mockAwardRepository{})

		_, err := svc.UpdateLimitDays(context.Background(), key, nil)
		assert.ErrorIs(t, err, ErrRedeemableNotFound)
	})
}

func TestRedeemableDeleteAllForChallenge(t *testing.T) {
	t.Run("challenge must exist", func(t *testing.T) {
		challengeRepo, _ := redeemableFixtures()
		svc := NewRedeemableService(&mockRedeemableRepository{}, challengeRepo, &mockAwardRepository{})

		assert.ErrorIs(t, svc.DeleteAllForChallenge(context.Background(), "ghost"), ErrChallengeNotFound)
	})

	t.Run("bulk delete leaves the challenge alone", func(t *testing.T) {
		challengeRepo, _ := redeemableFixtures()
		var deleted string
		redeemableRepo := &mockRedeemableRepository{
			deleteByChallengeFunc: func(ctx context.Context, challengeName string) error {
				deleted = challengeName
				return nil
			},
		}
		svc := NewRedeemableService(redeemableRepo, challengeRepo, &mockAwardRepository{})

		require.NoError(t, svc.DeleteAllForChallenge(context.Background(), "Hydration"))
		assert.Equal(t, "Hydration", deleted)
	})
}
