// Package exercise — service.go содержит бизнес-логику тренировок и стрика.
package exercise

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
	"beautive.app/telegram-bot/internal/observability"
)

// EventStore — журнал тренировок (реализуется *Repository).
type EventStore interface {
	RecordDay(ctx context.Context, userID int64, day tracker.Date, at time.Time) (bool, error)
	DeleteDay(ctx context.Context, userID int64, day tracker.Date) (int64, error)
	ListEvents(ctx context.Context, userID int64) ([]tracker.ActivityEvent, error)
	UsersActiveSince(ctx context.Context, since tracker.Date) ([]int64, error)
}

// MinutesStore хранит минуты тренировки за день (реализуется habits.Repository).
type MinutesStore interface {
	SetExerciseMinutes(ctx context.Context, userID int64, day tracker.Date, minutes int) error
}

// Service управляет тренировками и стриком.
type Service struct {
	events            EventStore
	minutes           MinutesStore
	clock             common.Clock
	reminderMinStreak int
}

// NewService создаёт сервис тренировок.
func NewService(events EventStore, minutes MinutesStore, clock common.Clock, reminderMinStreak int) *Service {
	return &Service{
		events:            events,
		minutes:           minutes,
		clock:             clock,
		reminderMinStreak: reminderMinStreak,
	}
}

// SetMinutes сохраняет длительность сегодняшней тренировки.
//
// Ненулевая длительность создаёт событие тренировки (одно на день),
// ноль удаляет сегодняшнее событие, и день перестаёт считаться в стрике.
func (s *Service) SetMinutes(ctx context.Context, userID int64, minutes int) (*Status, error) {
	if minutes < 0 || minutes > MaxMinutes {
		return nil, common.ErrInvalidMinutes
	}

	today := s.clock.Today()
	if err := s.minutes.SetExerciseMinutes(ctx, userID, today, minutes); err != nil {
		return nil, err
	}

	logger := log.WithField("user_id", userID)
	if minutes > 0 {
		created, err := s.events.RecordDay(ctx, userID, today, s.clock.Now())
		if err != nil {
			return nil, err
		}
		if created {
			logger.Debug("Тренировка за сегодня записана")
		}
	} else {
		removed, err := s.events.DeleteDay(ctx, userID, today)
		if err != nil {
			return nil, err
		}
		if removed > 0 {
			logger.Debug("Тренировка за сегодня удалена")
		}
	}

	return s.Status(ctx, userID)
}

// Status пересчитывает стрик по всей истории тренировок.
func (s *Service) Status(ctx context.Context, userID int64) (*Status, error) {
	events, err := s.events.ListEvents(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.statusOf(events, s.clock.Today())
}

// statusOf переводит события в пояс приложения и считает стрик на today.
func (s *Service) statusOf(events []tracker.ActivityEvent, today tracker.Date) (*Status, error) {
	loc := s.clock.Location()
	local := make([]tracker.ActivityEvent, len(events))
	completedToday := false
	for i, e := range events {
		local[i] = tracker.ActivityEvent{Timestamp: e.Timestamp.In(loc)}
		if tracker.DateOf(local[i].Timestamp) == today {
			completedToday = true
		}
	}

	streak, err := tracker.ComputeStreak(local, today)
	if err != nil {
		return nil, fmt.Errorf("ошибка расчёта стрика: %w", err)
	}

	st := &Status{
		Streak:         streak,
		Badge:          tracker.ClassifyBadge(streak),
		CompletedToday: completedToday,
	}
	if !completedToday {
		// серия, закрытая вчера: считаем стрик так, будто сегодня — вчера
		pending, err := tracker.ComputeStreak(local, today.AddDays(-1))
		if err != nil {
			return nil, fmt.Errorf("ошибка расчёта стрика: %w", err)
		}
		st.Pending = pending
	}
	return st, nil
}

// SendReminders напоминает о тренировке тем, у кого живая серия
// длиной не меньше порога, а сегодня тренировки ещё нет.
// Запускается кроном раз в день.
func (s *Service) SendReminders(ctx context.Context, send func(ctx context.Context, userID int64, text string)) error {
	today := s.clock.Today()

	userIDs, err := s.events.UsersActiveSince(ctx, today.AddDays(-1))
	if err != nil {
		return fmt.Errorf("ошибка получения активных пользователей: %w", err)
	}

	sent := 0
	for _, userID := range userIDs {
		events, err := s.events.ListEvents(ctx, userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Ошибка получения тренировок для напоминания")
			continue
		}
		st, err := s.statusOf(events, today)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Ошибка расчёта стрика для напоминания")
			continue
		}
		if st.CompletedToday || st.Pending < s.reminderMinStreak {
			continue
		}

		send(ctx, userID, FormatReminder(st.Pending))
		observability.RecordReminderSent()
		sent++
	}

	log.WithFields(log.Fields{
		"candidates": len(userIDs),
		"sent":       sent,
	}).Info("Напоминания о стрике отправлены")
	return nil
}
