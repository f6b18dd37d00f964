// Package tracker — вычислительное ядро трекера привычек.
// date.go описывает календарную дату без времени и часового пояса.
//
// Все функции пакета чистые: не читают часы, не ходят в БД,
// безопасны для вызова из нескольких горутин.
package tracker

import (
	"fmt"
	"time"
)

// Date — календарный день (год-месяц-день).
// Нулевое значение означает «дата не задана».
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf возвращает календарный день момента t в ЕГО часовом поясе.
// Перевод в часовой пояс приложения — забота вызывающего (t.In(loc)).
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate нормализует дату (32 января → 1 февраля).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate разбирает дату в формате 2006-01-02.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("некорректная дата %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero сообщает, что дата не задана.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays сдвигает дату на n календарных дней.
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// Before сообщает, что d раньше other.
func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

// After сообщает, что d позже other.
func (d Date) After(other Date) bool {
	return d.midnight().After(other.midnight())
}

// Weekday возвращает день недели.
func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

// In возвращает полночь этой даты в часовом поясе loc.
// Используется репозиториями для границ SQL-запросов.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return d.midnight().Format(time.DateOnly)
}

// midnight — полночь в UTC, чтобы арифметика не зависела от переходов на летнее время.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
