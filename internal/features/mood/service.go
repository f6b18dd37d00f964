// Package mood хранит ежедневное настроение и строит недельный график.
// service.go содержит бизнес-логику: запись, чтение за сегодня, неделя.
package mood

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

// Store — хранилище настроения (реализуется *Repository).
type Store interface {
	Upsert(ctx context.Context, userID int64, day tracker.Date, mood int) error
	Get(ctx context.Context, userID int64, day tracker.Date) (int, bool, error)
	ListSince(ctx context.Context, userID int64, from tracker.Date) ([]tracker.MoodEntry, error)
}

// Service управляет настроением пользователя.
type Service struct {
	store Store
	clock common.Clock
}

// NewService создаёт сервис настроения.
func NewService(store Store, clock common.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// Record отмечает настроение за сегодня.
func (s *Service) Record(ctx context.Context, userID int64, mood int) error {
	if !tracker.ValidMood(mood) {
		return common.ErrInvalidMood
	}
	if err := s.store.Upsert(ctx, userID, s.clock.Today(), mood); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"user_id": userID,
		"mood":    mood,
	}).Debug("Настроение отмечено")
	return nil
}

// Today возвращает сегодняшнее настроение. ok == false — ещё не отмечено.
func (s *Service) Today(ctx context.Context, userID int64) (int, bool, error) {
	return s.store.Get(ctx, userID, s.clock.Today())
}

// Weekly строит график за последние 7 дней, включая сегодня.
func (s *Service) Weekly(ctx context.Context, userID int64) (tracker.WeeklySeries, error) {
	today := s.clock.Today()
	entries, err := s.store.ListSince(ctx, userID, today.AddDays(-(tracker.WeekLength - 1)))
	if err != nil {
		return tracker.WeeklySeries{}, err
	}
	series, err := tracker.BuildWeeklySeries(entries, today)
	if err != nil {
		return tracker.WeeklySeries{}, fmt.Errorf("ошибка построения графика: %w", err)
	}
	return series, nil
}
