package habits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

type dayKey struct {
	userID int64
	day    tracker.Date
}

type memoryStore struct {
	days map[dayKey]*DailyLog
}

func newMemoryStore() *memoryStore {
	return &memoryStore{days: make(map[dayKey]*DailyLog)}
}

func (m *memoryStore) row(userID int64, day tracker.Date) *DailyLog {
	k := dayKey{userID, day}
	if m.days[k] == nil {
		m.days[k] = &DailyLog{UserID: userID, Date: day}
	}
	return m.days[k]
}

func (m *memoryStore) GetDay(_ context.Context, userID int64, day tracker.Date) (*DailyLog, error) {
	l := *m.row(userID, day)
	return &l, nil
}

func (m *memoryStore) AddWater(_ context.Context, userID int64, day tracker.Date, delta int) (int, error) {
	r := m.row(userID, day)
	r.WaterGlasses = min(max(r.WaterGlasses+delta, 0), MaxWaterGlasses)
	return r.WaterGlasses, nil
}

func (m *memoryStore) SetWater(_ context.Context, userID int64, day tracker.Date, glasses int) error {
	m.row(userID, day).WaterGlasses = glasses
	return nil
}

func (m *memoryStore) SetSleep(_ context.Context, userID int64, day tracker.Date, quality int) error {
	m.row(userID, day).SleepQuality = &quality
	return nil
}

func fixedClock() common.Clock {
	return common.NewClock(time.UTC, func() time.Time {
		return time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC)
	})
}

func TestAdjustWaterClampsAtZero(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryStore(), fixedClock())

	total, err := svc.AdjustWater(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, err = svc.AdjustWater(ctx, 1, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestWaterBounds(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewService(store, fixedClock())

	for _, glasses := range []int{-1, MaxWaterGlasses + 1, 3000000} {
		require.ErrorIs(t, svc.SetWater(ctx, 1, glasses), common.ErrInvalidWater, glasses)
	}
	for _, delta := range []int{MaxWaterGlasses + 1, -MaxWaterGlasses - 1} {
		_, err := svc.AdjustWater(ctx, 1, delta)
		require.ErrorIs(t, err, common.ErrInvalidWater, delta)
	}
	assert.Empty(t, store.days)

	require.NoError(t, svc.SetWater(ctx, 1, MaxWaterGlasses))
	total, err := svc.AdjustWater(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, MaxWaterGlasses, total)
}

func TestSetSleep(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	svc := NewService(store, fixedClock())

	require.ErrorIs(t, svc.SetSleep(ctx, 1, 11), common.ErrInvalidSleep)
	require.ErrorIs(t, svc.SetSleep(ctx, 1, -1), common.ErrInvalidSleep)
	require.NoError(t, svc.SetSleep(ctx, 1, 7))

	day, err := svc.Today(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, day.SleepQuality)
	assert.Equal(t, 7, *day.SleepQuality)
	assert.Equal(t, tracker.NewDate(2024, time.May, 15), day.Date)
}

func TestFormatDashboard(t *testing.T) {
	sleep := 9
	day := &DailyLog{
		Date:            tracker.NewDate(2024, time.May, 15),
		ExerciseMinutes: 30,
		WaterGlasses:    8,
		SleepQuality:    &sleep,
	}

	text := FormatDashboard(day, 4, 60, 8)
	assert.Contains(t, text, "Rabu, 15 Mei")
	assert.Contains(t, text, "Olahraga: 30/60 menit")
	assert.Contains(t, text, "Target harian tercapai")
	assert.Contains(t, text, "9/10 (Sangat Baik)")
	assert.Contains(t, text, "🙂 Mood: Senang")

	empty := FormatDashboard(&DailyLog{Date: day.Date}, 0, 60, 8)
	assert.Contains(t, empty, "belum dinilai")
	assert.Contains(t, empty, "Mood: belum dipilih")
}

func TestSleepLabel(t *testing.T) {
	assert.Equal(t, "Buruk", SleepLabel(2))
	assert.Equal(t, "Cukup Baik", SleepLabel(7))
	assert.Equal(t, "Sangat Baik", SleepLabel(10))
}
