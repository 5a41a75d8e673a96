package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnest/wellness-service/internal/models"
)

func TestGetByKey(t *testing.T) {
	key := models.RedeemableKey{ChallengeName: "Hydration", AwardID: 2}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRedeemableRepository(db)

		now := time.Now()
		mock.ExpectQuery(`SELECT challenge_name, award_id, limit_days, created_at, updated_at FROM redeemables`).
			WithArgs("Hydration", uint64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"challenge_name", "award_id", "limit_days", "created_at", "updated_at"}).
				AddRow("Hydration", 2, 14, now, now))

		redeemable, err := repo.GetByKey(context.Background(), key)
		require.NoError(t, err)
		require.NotNil(t, redeemable)
		assert.Equal(t, key, redeemable.Key)
		assert.Equal(t, int32(14), redeemable.LimitDays)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key is nil, not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRedeemableRepository(db)

		mock.ExpectQuery(`SELECT challenge_name, award_id, limit_days, created_at, updated_at FROM redeemables`).
			WithArgs("Hydration", uint64(2)).
			WillReturnError(sql.ErrNoRows)

		redeemable, err := repo.GetByKey(context.Background(), key)
		assert.NoError(t, err)
		assert.Nil(t, redeemable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateBatch(t *testing.T) {
	batch := []*models.Redeemable{
		{Key: models.RedeemableKey{ChallengeName: "Hydration", AwardID: 1}, LimitDays: 7},
		{Key: models.RedeemableKey{ChallengeName: "Meditation", AwardID: 2}, LimitDays: 30},
	}

	t.Run("all inserts commit together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRedeemableRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO redeemables`).
			WithArgs("Hydration", uint64(1), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO redeemables`).
			WithArgs("Meditation", uint64(2), int32(30)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.CreateBatch(context.Background(), batch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one failure rolls back the whole batch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRedeemableRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO redeemables`).
			WithArgs("Hydration", uint64(1), int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO redeemables`).
			WithArgs("Meditation", uint64(2), int32(30)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		assert.Error(t, repo.CreateBatch(context.Background(), batch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAwardsByChallenge(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRedeemableRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INNER JOIN redeemables`).
		WithArgs("Hydration").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "stock", "image", "created_at", "updated_at"}).
			AddRow(1, "Water bottle", "steel bottle", 10, "bottle.png", now, now).
			AddRow(2, "Gym pass", "one month", 3, "pass.png", now, now))

	awards, err := repo.GetAwardsByChallenge(context.Background(), "Hydration")
	require.NoError(t, err)
	require.Len(t, awards, 2)
	assert.Equal(t, uint64(1), awards[0].ID)
	assert.Equal(t, "Gym pass", awards[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
