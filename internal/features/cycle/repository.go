// Package cycle — repository.go выполняет операции с таблицей cycle_days.
package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"beautive.app/telegram-bot/internal/features/tracker"
)

// Repository работает с таблицей cycle_days.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий отметок цикла.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Add отмечает день. Повторная отметка ничего не меняет.
func (r *Repository) Add(ctx context.Context, userID int64, day tracker.Date) error {
	query := `INSERT INTO cycle_days (user_id, day) VALUES ($1, $2) ON CONFLICT (user_id, day) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, userID, day.In(time.UTC)); err != nil {
		return fmt.Errorf("ошибка отметки дня цикла: %w", err)
	}
	return nil
}

// Remove снимает отметку. Возвращает true, если она была.
func (r *Repository) Remove(ctx context.Context, userID int64, day tracker.Date) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cycle_days WHERE user_id = $1 AND day = $2`, userID, day.In(time.UTC))
	if err != nil {
		return false, fmt.Errorf("ошибка удаления дня цикла: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List возвращает до limit отмеченных дней, от новых к старым.
func (r *Repository) List(ctx context.Context, userID int64, limit int) ([]tracker.Date, error) {
	query := `SELECT day FROM cycle_days WHERE user_id = $1 ORDER BY day DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения дней цикла: %w", err)
	}
	days, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tracker.Date, error) {
		var t time.Time
		err := row.Scan(&t)
		return tracker.DateOf(t), err
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования: %w", err)
	}
	return days, nil
}
