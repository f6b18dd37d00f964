//go:build integration

package habits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautive.app/telegram-bot/internal/db/postgres/pgtest"
	"beautive.app/telegram-bot/internal/features/tracker"
)

func TestRepositoryDailyLog(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.NewPool(t)
	pgtest.AddMember(t, pool, 1)

	repo := NewRepository(pool)
	day := tracker.NewDate(2024, time.May, 15)

	empty, err := repo.GetDay(ctx, 1, day)
	require.NoError(t, err)
	assert.Zero(t, empty.WaterGlasses)
	assert.Nil(t, empty.SleepQuality)

	total, err := repo.AddWater(ctx, 1, day, -2)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	total, err = repo.AddWater(ctx, 1, day, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	total, err = repo.AddWater(ctx, 1, day, MaxWaterGlasses)
	require.NoError(t, err)
	assert.Equal(t, MaxWaterGlasses, total)

	total, err = repo.AddWater(ctx, 1, day, 3-MaxWaterGlasses)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	require.NoError(t, repo.SetSleep(ctx, 1, day, 8))
	require.NoError(t, repo.SetExerciseMinutes(ctx, 1, day, 25))

	got, err := repo.GetDay(ctx, 1, day)
	require.NoError(t, err)
	assert.Equal(t, 3, got.WaterGlasses)
	assert.Equal(t, 25, got.ExerciseMinutes)
	require.NotNil(t, got.SleepQuality)
	assert.Equal(t, 8, *got.SleepQuality)

	// соседний день не затронут
	other, err := repo.GetDay(ctx, 1, day.AddDays(-1))
	require.NoError(t, err)
	assert.Zero(t, other.WaterGlasses)
}
