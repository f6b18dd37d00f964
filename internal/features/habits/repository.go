// Package habits — repository.go выполняет операции с таблицей daily_habits.
// Одна строка на пару (user_id, log_date), создаётся при первой записи за день.
package habits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"beautive.app/telegram-bot/internal/features/tracker"
)

// Repository работает с таблицей daily_habits.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий дневных показателей.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// dateParam — DATE-параметр для pgx (поле времени и пояс не важны).
func dateParam(d tracker.Date) time.Time {
	return d.In(time.UTC)
}

// GetDay возвращает показатели за день. Отсутствие записи — не ошибка.
func (r *Repository) GetDay(ctx context.Context, userID int64, day tracker.Date) (*DailyLog, error) {
	query := `
		SELECT exercise_minutes, water_glasses, sleep_quality
		FROM daily_habits
		WHERE user_id = $1 AND log_date = $2
	`
	l := DailyLog{UserID: userID, Date: day}
	err := r.db.QueryRow(ctx, query, userID, dateParam(day)).Scan(
		&l.ExerciseMinutes, &l.WaterGlasses, &l.SleepQuality,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ошибка чтения показателей (user_id=%d): %w", userID, err)
	}
	return &l, nil
}

// AddWater прибавляет delta стаканов (может быть отрицательным).
// Итог зажимается в 0..MaxWaterGlasses.
func (r *Repository) AddWater(ctx context.Context, userID int64, day tracker.Date, delta int) (int, error) {
	query := `
		INSERT INTO daily_habits (user_id, log_date, water_glasses)
		VALUES ($1, $2, LEAST(GREATEST($3, 0), $4))
		ON CONFLICT (user_id, log_date) DO UPDATE
		SET water_glasses = LEAST(GREATEST(daily_habits.water_glasses + $3, 0), $4), updated_at = NOW()
		RETURNING water_glasses
	`
	var total int
	if err := r.db.QueryRow(ctx, query, userID, dateParam(day), delta, MaxWaterGlasses).Scan(&total); err != nil {
		return 0, fmt.Errorf("ошибка обновления воды: %w", err)
	}
	return total, nil
}

// SetWater выставляет количество стаканов за день.
func (r *Repository) SetWater(ctx context.Context, userID int64, day tracker.Date, glasses int) error {
	query := `
		INSERT INTO daily_habits (user_id, log_date, water_glasses)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, log_date) DO UPDATE
		SET water_glasses = EXCLUDED.water_glasses, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, dateParam(day), glasses); err != nil {
		return fmt.Errorf("ошибка записи воды: %w", err)
	}
	return nil
}

// SetSleep выставляет качество сна за день.
func (r *Repository) SetSleep(ctx context.Context, userID int64, day tracker.Date, quality int) error {
	query := `
		INSERT INTO daily_habits (user_id, log_date, sleep_quality)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, log_date) DO UPDATE
		SET sleep_quality = EXCLUDED.sleep_quality, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, dateParam(day), quality); err != nil {
		return fmt.Errorf("ошибка записи сна: %w", err)
	}
	return nil
}

// SetExerciseMinutes выставляет минуты тренировки за день.
func (r *Repository) SetExerciseMinutes(ctx context.Context, userID int64, day tracker.Date, minutes int) error {
	query := `
		INSERT INTO daily_habits (user_id, log_date, exercise_minutes)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, log_date) DO UPDATE
		SET exercise_minutes = EXCLUDED.exercise_minutes, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, dateParam(day), minutes); err != nil {
		return fmt.Errorf("ошибка записи тренировки: %w", err)
	}
	return nil
}
