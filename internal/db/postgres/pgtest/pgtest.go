//go:build integration

// Package pgtest поднимает PostgreSQL в контейнере для интеграционных тестов
// репозиториев. Собирается только с тегом integration.
package pgtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"beautive.app/telegram-bot/internal/db/postgres"
)

// NewPool запускает контейнер, применяет миграции и возвращает пул.
// Контейнер и пул закрываются в t.Cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("beautive"),
		postgrescontainer.WithUsername("beautive"),
		postgrescontainer.WithPassword("beautive"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool := waitForDatabase(t, ctx, connStr)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

// AddMember создаёт пользователя: таблицы трекера ссылаются на members(user_id).
func AddMember(t *testing.T, pool *pgxpool.Pool, userID int64) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (user_id, first_name) VALUES ($1, 'Test') ON CONFLICT DO NOTHING`, userID)
	require.NoError(t, err)
}

func waitForDatabase(t *testing.T, ctx context.Context, connStr string) *pgxpool.Pool {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool
			}
			pool.Close()
		}
		if time.Now().After(deadline) {
			require.NoError(t, err)
		}
		time.Sleep(time.Second)
	}
}
