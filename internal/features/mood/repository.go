// Package mood — repository.go выполняет операции с таблицей mood_entries.
// На пару (user_id, entry_date) — одна запись, повторная отметка перезаписывает её.
package mood

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"beautive.app/telegram-bot/internal/features/tracker"
)

// Repository работает с таблицей mood_entries.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий настроения.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет настроение за день.
func (r *Repository) Upsert(ctx context.Context, userID int64, day tracker.Date, mood int) error {
	query := `
		INSERT INTO mood_entries (user_id, entry_date, mood)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, entry_date) DO UPDATE
		SET mood = EXCLUDED.mood, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, day.In(time.UTC), mood); err != nil {
		return fmt.Errorf("ошибка записи настроения: %w", err)
	}
	return nil
}

// Get возвращает настроение за день; ok == false, если записи нет.
func (r *Repository) Get(ctx context.Context, userID int64, day tracker.Date) (int, bool, error) {
	query := `SELECT mood FROM mood_entries WHERE user_id = $1 AND entry_date = $2`
	var mood int
	err := r.db.QueryRow(ctx, query, userID, day.In(time.UTC)).Scan(&mood)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("ошибка чтения настроения (user_id=%d): %w", userID, err)
	}
	return mood, true, nil
}

// ListSince возвращает записи начиная с from включительно, от старых к новым.
func (r *Repository) ListSince(ctx context.Context, userID int64, from tracker.Date) ([]tracker.MoodEntry, error) {
	query := `
		SELECT entry_date, mood FROM mood_entries
		WHERE user_id = $1 AND entry_date >= $2
		ORDER BY entry_date
	`
	rows, err := r.db.Query(ctx, query, userID, from.In(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения настроения: %w", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tracker.MoodEntry, error) {
		var (
			day  time.Time
			mood int
		)
		if err := row.Scan(&day, &mood); err != nil {
			return tracker.MoodEntry{}, err
		}
		return tracker.MoodEntry{Date: tracker.DateOf(day), Mood: mood}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования: %w", err)
	}
	return entries, nil
}
