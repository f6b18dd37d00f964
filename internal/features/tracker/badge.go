// Package tracker — badge.go присваивает значок по длине стрика.
package tracker

// BadgeTier — уровень значка за стрик.
type BadgeTier string

const (
	BadgeNone        BadgeTier = "none"
	BadgeStrong      BadgeTier = "strong"      // 3+ дня
	BadgeUnstoppable BadgeTier = "unstoppable" // 7+ дней
)

// Пороги значков в днях.
const (
	StrongStreakDays      = 3
	UnstoppableStreakDays = 7
)

// ClassifyBadge возвращает значок для стрика. Отрицательные значения — BadgeNone.
func ClassifyBadge(streak int) BadgeTier {
	switch {
	case streak >= UnstoppableStreakDays:
		return BadgeUnstoppable
	case streak >= StrongStreakDays:
		return BadgeStrong
	default:
		return BadgeNone
	}
}

// Label — отображаемое название значка. Для BadgeNone пустая строка.
func (b BadgeTier) Label() string {
	switch b {
	case BadgeUnstoppable:
		return "Unstoppable Soul"
	case BadgeStrong:
		return "Strong Streaker"
	default:
		return ""
	}
}
