// Package tracker — mood.go строит недельный график настроения и сводку.
package tracker

import (
	"fmt"
	"time"
)

// Тексты сводки.
const (
	SummaryNotEnoughData = "Lacak mood kamu untuk melihat ringkasan mingguan."
	SummaryStable        = "Mood kamu lebih stabil minggu ini. "
	SummaryVariable      = "Mood kamu cukup bervariasi minggu ini. "
	summaryBestDayFormat = "Hari terbaikmu: %s!"
)

// UnknownGlyph — значок дня без записи.
const UnknownGlyph = "❔"

var moodGlyphs = map[int]string{
	5: "😄",
	4: "🙂",
	3: "😐",
	2: "😔",
	1: "😢",
}

// Подписи настроения, как на кнопках выбора.
var moodLabels = map[int]string{
	5: "Sangat Senang",
	4: "Senang",
	3: "Biasa",
	2: "Sedih",
	1: "Sangat Sedih",
}

// Названия дней недели (локаль id), индекс = time.Weekday.
var (
	shortWeekdays = [7]string{"Mg", "Sn", "Sl", "Rb", "Km", "Jm", "Sb"}
	fullWeekdays  = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
)

// MoodGlyph возвращает эмодзи для настроения или UnknownGlyph.
func MoodGlyph(mood int) string {
	if g, ok := moodGlyphs[mood]; ok {
		return g
	}
	return UnknownGlyph
}

// MoodLabel возвращает подпись настроения или пустую строку.
func MoodLabel(mood int) string {
	return moodLabels[mood]
}

// ShortWeekday — короткое название дня недели.
func ShortWeekday(w time.Weekday) string {
	return shortWeekdays[w]
}

// FullWeekday — полное название дня недели.
func FullWeekday(w time.Weekday) string {
	return fullWeekdays[w]
}

// BuildWeeklySeries строит 7 точек today-6..today и сводку за неделю.
//
// Дубликаты по дате разрешаются в пользу последней записи во входном срезе.
// Записи с настроением вне 1..5 считаются отсутствующими.
func BuildWeeklySeries(entries []MoodEntry, today Date) (WeeklySeries, error) {
	var series WeeklySeries
	if today.IsZero() {
		return series, ErrMissingToday
	}

	byDate := make(map[Date]int, len(entries))
	for _, e := range entries {
		if !ValidMood(e.Mood) {
			continue
		}
		byDate[e.Date] = e.Mood
	}

	for i := range series.Points {
		day := today.AddDays(i - (WeekLength - 1))
		mood := byDate[day]
		series.Points[i] = DayPoint{
			Date:     day,
			DayLabel: ShortWeekday(day.Weekday()),
			Mood:     mood,
			Glyph:    MoodGlyph(mood),
		}
	}

	series.Summary = summarize(series.Points)
	return series, nil
}

func summarize(points [WeekLength]DayPoint) string {
	count := 0
	minMood, maxMood := MaxMood+1, 0
	best := -1
	for i, p := range points {
		if p.Mood == 0 {
			continue
		}
		count++
		if p.Mood < minMood {
			minMood = p.Mood
		}
		// строгое сравнение: при равенстве остаётся самый ранний день
		if p.Mood > maxMood {
			maxMood = p.Mood
			best = i
		}
	}
	if count < 2 {
		return SummaryNotEnoughData
	}

	summary := ""
	switch variation := maxMood - minMood; {
	case variation <= 1:
		summary = SummaryStable
	case variation >= 3:
		summary = SummaryVariable
	}
	return summary + fmt.Sprintf(summaryBestDayFormat, FullWeekday(points[best].Date.Weekday()))
}
