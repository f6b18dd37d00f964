// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: ежедневное напоминание о стрике.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// SendFunc отправляет сообщение пользователю в личку.
type SendFunc func(ctx context.Context, userID int64, text string)

// Reminder рассылает напоминания (реализуется exercise.Service).
type Reminder interface {
	SendReminders(ctx context.Context, send func(ctx context.Context, userID int64, text string)) error
}

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron     *cron.Cron
	loc      *time.Location
	schedule string
	reminder Reminder
	sendFunc SendFunc
}

// NewScheduler создаёт планировщик в часовом поясе приложения.
// schedule — стандартное cron-выражение из пяти полей.
func NewScheduler(loc *time.Location, schedule string, reminder Reminder, sendFunc SendFunc) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		loc:      loc,
		schedule: schedule,
		reminder: reminder,
		sendFunc: sendFunc,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.runReminders(ctx) }); err != nil {
		return fmt.Errorf("некорректное расписание напоминаний %q: %w", s.schedule, err)
	}

	s.cron.Start()
	log.WithFields(log.Fields{
		"timezone": s.loc.String(),
		"schedule": s.schedule,
	}).Info("Планировщик задач запущен")
	return nil
}

// runReminders — тело задачи напоминаний.
func (s *Scheduler) runReminders(ctx context.Context) {
	log.Debug("[CRON] Проверка напоминаний")
	if err := s.reminder.SendReminders(ctx, s.sendFunc); err != nil {
		log.WithError(err).Error("[CRON] Ошибка напоминаний")
	}
}

// Stop останавливает планировщик и дожидается выполняющихся задач.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}
