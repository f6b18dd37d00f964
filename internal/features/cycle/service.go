// Package cycle отмечает дни начала менструального цикла в календаре.
package cycle

import (
	"context"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

// DefaultListLimit — сколько последних отметок показывать.
const DefaultListLimit = 6

// Store — хранилище отметок (реализуется *Repository).
type Store interface {
	Add(ctx context.Context, userID int64, day tracker.Date) error
	Remove(ctx context.Context, userID int64, day tracker.Date) (bool, error)
	List(ctx context.Context, userID int64, limit int) ([]tracker.Date, error)
}

// Service управляет отметками цикла.
type Service struct {
	store Store
	clock common.Clock
}

// NewService создаёт сервис цикла.
func NewService(store Store, clock common.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// Toggle переключает отметку дня: ставит, если её не было, иначе снимает.
// Дни в будущем отклоняются.
func (s *Service) Toggle(ctx context.Context, userID int64, day tracker.Date) (added bool, err error) {
	if day.IsZero() || day.After(s.clock.Today()) {
		return false, common.ErrInvalidDate
	}

	removed, err := s.store.Remove(ctx, userID, day)
	if err != nil {
		return false, err
	}
	if !removed {
		if err := s.store.Add(ctx, userID, day); err != nil {
			return false, err
		}
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"day":     day.String(),
		"added":   !removed,
	}).Debug("Отметка цикла переключена")
	return !removed, nil
}

// List возвращает последние отметки, от новых к старым.
func (s *Service) List(ctx context.Context, userID int64, limit int) ([]tracker.Date, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.store.List(ctx, userID, limit)
}

// Today — сегодняшняя дата в поясе приложения.
func (s *Service) Today() tracker.Date {
	return s.clock.Today()
}
