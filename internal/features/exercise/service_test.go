package exercise

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

var wib = time.FixedZone("WIB", 7*60*60)

type memoryEvents struct {
	byUser map[int64]map[tracker.Date]time.Time
}

func newMemoryEvents() *memoryEvents {
	return &memoryEvents{byUser: make(map[int64]map[tracker.Date]time.Time)}
}

func (m *memoryEvents) RecordDay(_ context.Context, userID int64, day tracker.Date, at time.Time) (bool, error) {
	days := m.byUser[userID]
	if days == nil {
		days = make(map[tracker.Date]time.Time)
		m.byUser[userID] = days
	}
	if _, ok := days[day]; ok {
		return false, nil
	}
	days[day] = at
	return true, nil
}

func (m *memoryEvents) DeleteDay(_ context.Context, userID int64, day tracker.Date) (int64, error) {
	if _, ok := m.byUser[userID][day]; !ok {
		return 0, nil
	}
	delete(m.byUser[userID], day)
	return 1, nil
}

func (m *memoryEvents) ListEvents(_ context.Context, userID int64) ([]tracker.ActivityEvent, error) {
	var out []tracker.ActivityEvent
	for _, at := range m.byUser[userID] {
		// как Postgres: TIMESTAMPTZ возвращается в UTC
		out = append(out, tracker.ActivityEvent{Timestamp: at.UTC()})
	}
	return out, nil
}

func (m *memoryEvents) UsersActiveSince(_ context.Context, since tracker.Date) ([]int64, error) {
	var ids []int64
	for userID, days := range m.byUser {
		for day := range days {
			if !day.Before(since) {
				ids = append(ids, userID)
				break
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// add записывает тренировку в момент at, как это сделал бы SetMinutes.
func (m *memoryEvents) add(t *testing.T, userID int64, at time.Time) {
	t.Helper()
	_, err := m.RecordDay(context.Background(), userID, tracker.DateOf(at.In(wib)), at)
	require.NoError(t, err)
}

type memoryMinutes struct {
	minutes map[tracker.Date]int
}

func (m *memoryMinutes) SetExerciseMinutes(_ context.Context, _ int64, day tracker.Date, minutes int) error {
	m.minutes[day] = minutes
	return nil
}

func clockAt(t time.Time) common.Clock {
	return common.NewClock(wib, func() time.Time { return t })
}

func newTestService(now time.Time) (*Service, *memoryEvents, *memoryMinutes) {
	events := newMemoryEvents()
	minutes := &memoryMinutes{minutes: make(map[tracker.Date]int)}
	return NewService(events, minutes, clockAt(now), 3), events, minutes
}

func TestSetMinutesCreatesSingleEventPerDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 15, 7, 0, 0, 0, wib)
	svc, events, minutes := newTestService(now)

	st, err := svc.SetMinutes(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Streak)
	assert.True(t, st.CompletedToday)

	st, err = svc.SetMinutes(ctx, 1, 45)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Streak)
	assert.Len(t, events.byUser[1], 1)
	assert.Equal(t, 45, minutes.minutes[tracker.NewDate(2024, time.May, 15)])
}

func TestSetMinutesZeroRemovesToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 15, 21, 0, 0, 0, wib)
	svc, events, _ := newTestService(now)
	events.add(t, 1, now.Add(-48*time.Hour))
	events.add(t, 1, now.Add(-24*time.Hour))

	st, err := svc.SetMinutes(ctx, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Streak)
	assert.Equal(t, tracker.BadgeStrong, st.Badge)

	st, err = svc.SetMinutes(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Streak)
	assert.False(t, st.CompletedToday)
	assert.Equal(t, 2, st.Pending)
	assert.Len(t, events.byUser[1], 2)
}

func TestSetMinutesRejectsOutOfRange(t *testing.T) {
	svc, events, minutes := newTestService(time.Now())
	for _, m := range []int{-10, MaxMinutes + 1, 100000} {
		_, err := svc.SetMinutes(context.Background(), 1, m)
		require.ErrorIs(t, err, common.ErrInvalidMinutes, m)
	}
	assert.Empty(t, events.byUser)
	assert.Empty(t, minutes.minutes)

	st, err := svc.SetMinutes(context.Background(), 1, MaxMinutes)
	require.NoError(t, err)
	assert.True(t, st.CompletedToday)
}

func TestStatusUsesApplicationZone(t *testing.T) {
	ctx := context.Background()
	// 06:00 WIB 15 мая = 23:00 UTC 14 мая
	now := time.Date(2024, time.May, 15, 6, 0, 0, 0, wib)
	svc, events, _ := newTestService(now)
	events.add(t, 1, now.Add(-time.Hour))

	st, err := svc.Status(ctx, 1)
	require.NoError(t, err)
	assert.True(t, st.CompletedToday)
	assert.Equal(t, 1, st.Streak)
}

func TestSendReminders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.May, 15, 19, 0, 0, 0, wib)
	svc, events, _ := newTestService(now)

	day := 24 * time.Hour
	// 1: серия 3 дня до вчера, сегодня пусто — напоминаем
	for i := 1; i <= 3; i++ {
		events.add(t, 1, now.Add(-time.Duration(i)*day))
	}
	// 2: серия 2 дня — ниже порога
	for i := 1; i <= 2; i++ {
		events.add(t, 2, now.Add(-time.Duration(i)*day))
	}
	// 3: уже тренировалась сегодня
	for i := 0; i <= 4; i++ {
		events.add(t, 3, now.Add(-time.Duration(i)*day))
	}
	// 4: серия давно прервана
	events.add(t, 4, now.Add(-5*day))

	var got []int64
	err := svc.SendReminders(ctx, func(_ context.Context, userID int64, text string) {
		got = append(got, userID)
		assert.Contains(t, text, "streak 3 hari")
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got)
}

func TestFormatStatus(t *testing.T) {
	text := FormatStatus(&Status{Streak: 7, Badge: tracker.BadgeUnstoppable, CompletedToday: true})
	assert.Contains(t, text, "Unstoppable Soul")
	assert.Contains(t, text, "selama 7 hari")
	assert.Contains(t, text, "🔥🔥🔥🔥🔥🔥🔥")

	pending := FormatStatus(&Status{Pending: 4})
	assert.Contains(t, pending, "Streak 4 hari menunggumu")

	empty := FormatStatus(&Status{})
	assert.Contains(t, empty, "Mulai lacak latihanmu")
	assert.NotContains(t, empty, "🔥🔥")
}

func TestFlameRow(t *testing.T) {
	assert.Equal(t, "🔥🔥▫️▫️▫️▫️▫️", FlameRow(2))
	assert.Equal(t, "🔥🔥🔥🔥🔥🔥🔥", FlameRow(12))
}
