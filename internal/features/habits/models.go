// Package habits ведёт дневные показатели: минуты тренировки, стаканы воды, качество сна.
// models.go описывает запись за один день.
package habits

import "beautive.app/telegram-bot/internal/features/tracker"

// DailyLog — показатели пользователя за один календарный день.
// Если записи в БД нет, возвращается нулевой лог с заполненными UserID и Date.
type DailyLog struct {
	UserID          int64
	Date            tracker.Date
	ExerciseMinutes int
	WaterGlasses    int
	SleepQuality    *int // nil — сон за эту ночь не оценён
}

// MaxWaterGlasses — верхняя граница стаканов за день.
const MaxWaterGlasses = 100

// Шкала качества сна (слайдер 0..10).
const (
	MinSleepQuality = 0
	MaxSleepQuality = 10
)

// SleepLabel — словесная оценка сна, как подписи под слайдером.
func SleepLabel(q int) string {
	switch {
	case q <= 3:
		return "Buruk"
	case q <= 7:
		return "Cukup Baik"
	default:
		return "Sangat Baik"
	}
}
