// Package tracker — streak.go считает текущую серию дней с тренировками.
package tracker

import "sort"

// ComputeStreak вычисляет стрик по полной истории тренировок.
//
// Алгоритм:
//  1. Схлопываем события до уникальных календарных дней.
//  2. Сортируем дни от нового к старому.
//  3. Если последний день не сегодня и не вчера — серия прервана, 0.
//  4. Сегодняшний день даёт 1, вчерашний — 0 (сегодня ещё не закрыто).
//  5. Идём назад, пока каждый следующий день ровно на сутки раньше предыдущего.
//
// Дни после today игнорируются: это ошибка вызывающего, а не повод падать.
func ComputeStreak(events []ActivityEvent, today Date) (int, error) {
	if today.IsZero() {
		return 0, ErrMissingToday
	}
	days := uniqueDays(events, today)
	if len(days) == 0 {
		return 0, nil
	}

	lastDay := days[0]
	if lastDay != today && lastDay != today.AddDays(-1) {
		return 0, nil
	}

	streak := 0
	if lastDay == today {
		streak = 1
	}

	anchor := lastDay
	for _, day := range days[1:] {
		if day != anchor.AddDays(-1) {
			break
		}
		streak++
		anchor = day
	}
	return streak, nil
}

// uniqueDays возвращает уникальные дни событий (не позже today), от нового к старому.
func uniqueDays(events []ActivityEvent, today Date) []Date {
	seen := make(map[Date]struct{}, len(events))
	days := make([]Date, 0, len(events))
	for _, e := range events {
		day := DateOf(e.Timestamp)
		if day.After(today) {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[j].Before(days[i])
	})
	return days
}
