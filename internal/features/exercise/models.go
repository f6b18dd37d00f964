// Package exercise управляет тренировками и стриком (серией дней подряд).
// models.go описывает производный статус стрика — он не хранится в БД,
// а пересчитывается из полной истории событий при каждом запросе.
package exercise

import "beautive.app/telegram-bot/internal/features/tracker"

// Status — состояние стрика пользователя на сегодня.
type Status struct {
	Streak         int               // Текущий стрик с учётом сегодняшнего дня
	Badge          tracker.BadgeTier // Значок по Streak
	CompletedToday bool              // Есть ли тренировка сегодня
	// Pending — серия, закончившаяся вчера. Не ноль, только если сегодня
	// тренировки ещё нет, а серия ещё не прервана.
	Pending int
}

// FlameDays — сколько «огоньков» показывать в строке прогресса.
const FlameDays = 7

// MaxMinutes — верхняя граница минут тренировки за сутки.
const MaxMinutes = 24 * 60
