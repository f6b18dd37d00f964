// Package exercise — repository.go выполняет операции с таблицей activity_events.
package exercise

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"beautive.app/telegram-bot/internal/features/tracker"
)

// Repository предоставляет методы для работы с таблицей activity_events.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт новый репозиторий тренировок.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// RecordDay записывает тренировку за день day, если её ещё нет.
// Возвращает true, если событие создано.
func (r *Repository) RecordDay(ctx context.Context, userID int64, day tracker.Date, at time.Time) (bool, error) {
	query := `
		INSERT INTO activity_events (user_id, recorded_at, activity_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, activity_date) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, userID, at, day.In(time.UTC))
	if err != nil {
		return false, fmt.Errorf("ошибка записи тренировки: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteDay удаляет тренировку за день day.
func (r *Repository) DeleteDay(ctx context.Context, userID int64, day tracker.Date) (int64, error) {
	query := `DELETE FROM activity_events WHERE user_id = $1 AND activity_date = $2`
	tag, err := r.db.Exec(ctx, query, userID, day.In(time.UTC))
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления тренировки: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListEvents возвращает всю историю тренировок пользователя, от новых к старым.
func (r *Repository) ListEvents(ctx context.Context, userID int64) ([]tracker.ActivityEvent, error) {
	query := `
		SELECT recorded_at FROM activity_events
		WHERE user_id = $1
		ORDER BY recorded_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения тренировок: %w", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tracker.ActivityEvent, error) {
		var e tracker.ActivityEvent
		err := row.Scan(&e.Timestamp)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования: %w", err)
	}
	return events, nil
}

// UsersActiveSince возвращает пользователей с тренировками не раньше дня since.
// Используется для напоминаний: серия жива, только если тренировка была вчера или сегодня.
func (r *Repository) UsersActiveSince(ctx context.Context, since tracker.Date) ([]int64, error) {
	query := `SELECT DISTINCT user_id FROM activity_events WHERE activity_date >= $1 ORDER BY user_id`
	rows, err := r.db.Query(ctx, query, since.In(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активных пользователей: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования: %w", err)
	}
	return ids, nil
}
