//go:build integration

package cycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautive.app/telegram-bot/internal/db/postgres/pgtest"
	"beautive.app/telegram-bot/internal/features/tracker"
)

func TestRepositoryToggleDays(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.NewPool(t)
	pgtest.AddMember(t, pool, 1)

	repo := NewRepository(pool)
	require.NoError(t, repo.Add(ctx, 1, today.AddDays(-30)))
	require.NoError(t, repo.Add(ctx, 1, today))
	require.NoError(t, repo.Add(ctx, 1, today))

	days, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []tracker.Date{today, today.AddDays(-30)}, days)

	removed, err := repo.Remove(ctx, 1, today)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, 1, today)
	require.NoError(t, err)
	assert.False(t, removed)
}
