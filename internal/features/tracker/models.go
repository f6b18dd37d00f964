// Package tracker — models.go описывает входные и выходные структуры ядра.
package tracker

import (
	"errors"
	"time"
)

// ErrMissingToday — вызывающий не передал «сегодня».
var ErrMissingToday = errors.New("tracker: не задана текущая дата")

// ActivityEvent — одна завершённая тренировка.
// Несколько событий в один день для стрика равнозначны одному.
type ActivityEvent struct {
	Timestamp time.Time
}

// MoodEntry — настроение за день, от 1 до 5.
type MoodEntry struct {
	Date Date
	Mood int
}

// Границы шкалы настроения.
const (
	MinMood = 1
	MaxMood = 5
)

// ValidMood проверяет, что значение входит в шкалу 1..5.
func ValidMood(mood int) bool {
	return mood >= MinMood && mood <= MaxMood
}

// DayPoint — точка недельного графика настроения.
// Mood == 0 означает, что за день нет записи.
type DayPoint struct {
	Date     Date
	DayLabel string // короткое название дня недели (Sn, Sl, ...)
	Mood     int
	Glyph    string
}

// WeeklySeries — 7 точек (от самой старой к сегодняшней) и текстовая сводка.
type WeeklySeries struct {
	Points  [WeekLength]DayPoint
	Summary string
}

// WeekLength — длина скользящего окна графика.
const WeekLength = 7
