// Package habits — service.go содержит бизнес-логику дневных показателей.
package habits

import (
	"context"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

// Store — хранилище дневных показателей (реализуется *Repository).
type Store interface {
	GetDay(ctx context.Context, userID int64, day tracker.Date) (*DailyLog, error)
	AddWater(ctx context.Context, userID int64, day tracker.Date, delta int) (int, error)
	SetWater(ctx context.Context, userID int64, day tracker.Date, glasses int) error
	SetSleep(ctx context.Context, userID int64, day tracker.Date, quality int) error
}

// Service управляет водой и сном за текущий день.
type Service struct {
	store Store
	clock common.Clock
}

// NewService создаёт сервис дневных показателей.
func NewService(store Store, clock common.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// Today возвращает показатели за сегодня.
func (s *Service) Today(ctx context.Context, userID int64) (*DailyLog, error) {
	return s.store.GetDay(ctx, userID, s.clock.Today())
}

// AdjustWater прибавляет или убавляет стаканы за сегодня.
// Итог остаётся в пределах 0..MaxWaterGlasses.
func (s *Service) AdjustWater(ctx context.Context, userID int64, delta int) (int, error) {
	if delta < -MaxWaterGlasses || delta > MaxWaterGlasses {
		return 0, common.ErrInvalidWater
	}
	total, err := s.store.AddWater(ctx, userID, s.clock.Today(), delta)
	if err != nil {
		return 0, err
	}
	log.WithFields(log.Fields{
		"user_id": userID,
		"delta":   delta,
		"total":   total,
	}).Debug("Вода обновлена")
	return total, nil
}

// SetWater выставляет количество стаканов за сегодня.
func (s *Service) SetWater(ctx context.Context, userID int64, glasses int) error {
	if glasses < 0 || glasses > MaxWaterGlasses {
		return common.ErrInvalidWater
	}
	return s.store.SetWater(ctx, userID, s.clock.Today(), glasses)
}

// SetSleep сохраняет оценку сна за прошедшую ночь (записывается на сегодняшний день).
func (s *Service) SetSleep(ctx context.Context, userID int64, quality int) error {
	if quality < MinSleepQuality || quality > MaxSleepQuality {
		return common.ErrInvalidSleep
	}
	return s.store.SetSleep(ctx, userID, s.clock.Today(), quality)
}
