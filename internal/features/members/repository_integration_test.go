//go:build integration

package members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautive.app/telegram-bot/internal/db/postgres/pgtest"
)

func TestEnsureMemberUpserts(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.NewPool(t)
	repo := NewRepository(pool)

	created, err := repo.Upsert(ctx, Profile{UserID: 5, Username: "sari", FirstName: "Sari"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Upsert(ctx, Profile{UserID: 5, Username: "sari_w", FirstName: "Sari", LastName: "W"})
	require.NoError(t, err)
	assert.False(t, created)

	svc := NewService(repo)
	require.NoError(t, svc.EnsureMember(ctx, Profile{UserID: 6, FirstName: "Dewi"}))

	m, err := svc.GetByUserID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "sari_w", m.Username)
	assert.Equal(t, "Sari", m.DisplayName())

	_, err = svc.GetByUserID(ctx, 404)
	require.Error(t, err)
}
