// Package common содержит общие утилиты, используемые во всём проекте.
// Сюда входят: часовой пояс приложения, форматирование дат и прогресса.
package common

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/features/tracker"
)

// wibOffset — UTC+7, запасной вариант для Asia/Jakarta.
const wibOffset = 7 * 60 * 60

// LoadLocation загружает часовой пояс по имени.
// Если tzdata недоступна — используем WIB (UTC+7) вручную.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.WithError(err).WithField("timezone", name).Warn("Не удалось загрузить часовой пояс, используем UTC+7")
		return time.FixedZone("WIB", wibOffset)
	}
	return loc
}

// Clock отдаёт текущее время в часовом поясе приложения.
// В тестах подменяется фиксированной функцией.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock создаёт часы для пояса loc. now == nil означает time.Now.
func NewClock(loc *time.Location, now func() time.Time) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return Clock{loc: loc, now: now}
}

// Now возвращает текущее время в поясе приложения.
func (c Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today возвращает сегодняшнюю календарную дату в поясе приложения.
func (c Clock) Today() tracker.Date {
	return tracker.DateOf(c.Now())
}

// Location возвращает пояс приложения.
func (c Clock) Location() *time.Location {
	return c.loc
}

var indonesianMonths = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDay форматирует дату как "Rabu, 15 Mei".
func FormatDay(d tracker.Date) string {
	return fmt.Sprintf("%s, %d %s", tracker.FullWeekday(d.Weekday()), d.Day, indonesianMonths[d.Month-1])
}

// FormatDate форматирует дату как "15 Mei 2024".
func FormatDate(d tracker.Date) string {
	return fmt.Sprintf("%d %s %d", d.Day, indonesianMonths[d.Month-1], d.Year)
}

// ProgressBar рисует полоску прогресса value/goal шириной width символов.
//
// Пример:
//
//	ProgressBar(30, 60, 10) → "▓▓▓▓▓░░░░░ 50%"
func ProgressBar(value, goal, width int) string {
	if goal <= 0 || width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	percent := value * 100 / goal
	filled := value * width / goal
	if filled > width {
		filled = width
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf(" %d%%", percent)
}
