package tracker

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 15 мая 2024 — среда, окно графика: четверг 9 мая .. среда 15 мая.
var moodToday = NewDate(2024, time.May, 15)

func daysAgo(n int) Date {
	return moodToday.AddDays(-n)
}

func TestBuildWeeklySeriesAlwaysSevenPoints(t *testing.T) {
	inputs := [][]MoodEntry{
		nil,
		{{Date: moodToday, Mood: 4}},
		{
			{Date: daysAgo(0), Mood: 1}, {Date: daysAgo(1), Mood: 2}, {Date: daysAgo(2), Mood: 3},
			{Date: daysAgo(3), Mood: 4}, {Date: daysAgo(4), Mood: 5}, {Date: daysAgo(5), Mood: 1},
			{Date: daysAgo(6), Mood: 2}, {Date: daysAgo(7), Mood: 3}, {Date: daysAgo(30), Mood: 5},
		},
	}
	for _, entries := range inputs {
		series, err := BuildWeeklySeries(entries, moodToday)
		require.NoError(t, err)
		require.Len(t, series.Points, WeekLength)
		assert.Equal(t, daysAgo(6), series.Points[0].Date)
		assert.Equal(t, moodToday, series.Points[WeekLength-1].Date)
	}
}

func TestBuildWeeklySeriesPoints(t *testing.T) {
	entries := []MoodEntry{
		{Date: daysAgo(6), Mood: 5},
		{Date: daysAgo(3), Mood: 2},
		{Date: moodToday, Mood: 3},
	}

	series, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)

	want := [WeekLength]DayPoint{
		{Date: daysAgo(6), DayLabel: "Km", Mood: 5, Glyph: "😄"},
		{Date: daysAgo(5), DayLabel: "Jm", Mood: 0, Glyph: UnknownGlyph},
		{Date: daysAgo(4), DayLabel: "Sb", Mood: 0, Glyph: UnknownGlyph},
		{Date: daysAgo(3), DayLabel: "Mg", Mood: 2, Glyph: "😔"},
		{Date: daysAgo(2), DayLabel: "Sn", Mood: 0, Glyph: UnknownGlyph},
		{Date: daysAgo(1), DayLabel: "Sl", Mood: 0, Glyph: UnknownGlyph},
		{Date: daysAgo(0), DayLabel: "Rb", Mood: 3, Glyph: "😐"},
	}
	if diff := cmp.Diff(want, series.Points); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, SummaryVariable+"Hari terbaikmu: Kamis!", series.Summary)
}

func TestBuildWeeklySeriesNotEnoughData(t *testing.T) {
	for _, entries := range [][]MoodEntry{
		nil,
		{{Date: moodToday, Mood: 5}},
		{{Date: moodToday, Mood: 5}, {Date: daysAgo(8), Mood: 4}},
	} {
		series, err := BuildWeeklySeries(entries, moodToday)
		require.NoError(t, err)
		assert.Equal(t, SummaryNotEnoughData, series.Summary)
	}
}

func TestBuildWeeklySeriesStableWeek(t *testing.T) {
	var entries []MoodEntry
	for i := 0; i < WeekLength; i++ {
		entries = append(entries, MoodEntry{Date: daysAgo(i), Mood: 3})
	}

	series, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)
	// все дни равны — лучший день самый ранний в окне (четверг)
	assert.Equal(t, SummaryStable+"Hari terbaikmu: Kamis!", series.Summary)
}

func TestBuildWeeklySeriesModerateVariation(t *testing.T) {
	entries := []MoodEntry{
		{Date: daysAgo(2), Mood: 2},
		{Date: daysAgo(1), Mood: 4},
	}
	series, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)
	assert.Equal(t, "Hari terbaikmu: Selasa!", series.Summary)
}

func TestBuildWeeklySeriesLastWriteWins(t *testing.T) {
	entries := []MoodEntry{
		{Date: moodToday, Mood: 1},
		{Date: daysAgo(1), Mood: 2},
		{Date: moodToday, Mood: 5},
	}
	series, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)
	assert.Equal(t, 5, series.Points[WeekLength-1].Mood)
	assert.Equal(t, "😄", series.Points[WeekLength-1].Glyph)
}

func TestBuildWeeklySeriesIgnoresOutOfRange(t *testing.T) {
	entries := []MoodEntry{
		{Date: daysAgo(1), Mood: 4},
		{Date: daysAgo(1), Mood: 9},
		{Date: moodToday, Mood: 0},
		{Date: daysAgo(2), Mood: -3},
	}
	series, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)

	assert.Equal(t, 4, series.Points[WeekLength-2].Mood)
	assert.Equal(t, 0, series.Points[WeekLength-1].Mood)
	assert.Equal(t, UnknownGlyph, series.Points[WeekLength-1].Glyph)
	assert.Equal(t, 0, series.Points[WeekLength-3].Mood)
	assert.Equal(t, SummaryNotEnoughData, series.Summary)
}

func TestBuildWeeklySeriesDeterministic(t *testing.T) {
	entries := []MoodEntry{
		{Date: daysAgo(4), Mood: 2},
		{Date: daysAgo(2), Mood: 5},
		{Date: daysAgo(1), Mood: 5},
	}
	first, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)
	second, err := BuildWeeklySeries(entries, moodToday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, SummaryVariable+"Hari terbaikmu: Senin!", first.Summary)
}

func TestBuildWeeklySeriesRequiresToday(t *testing.T) {
	_, err := BuildWeeklySeries(nil, Date{})
	require.ErrorIs(t, err, ErrMissingToday)
}

func TestMoodGlyph(t *testing.T) {
	assert.Equal(t, "😢", MoodGlyph(1))
	assert.Equal(t, "🙂", MoodGlyph(4))
	assert.Equal(t, UnknownGlyph, MoodGlyph(6))
	assert.Equal(t, "Biasa", MoodLabel(3))
}
