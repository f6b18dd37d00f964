package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReminder struct {
	calls int
	err   error
}

func (s *stubReminder) SendReminders(ctx context.Context, send func(ctx context.Context, userID int64, text string)) error {
	s.calls++
	send(ctx, 42, "jangan lupa")
	return s.err
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(time.UTC, "every evening", &stubReminder{}, func(context.Context, int64, string) {})
	require.Error(t, s.Start(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler(time.UTC, "0 19 * * *", &stubReminder{}, func(context.Context, int64, string) {})
	require.NoError(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 1)
	s.Stop()
}

func TestRunReminders(t *testing.T) {
	reminder := &stubReminder{err: errors.New("db down")}
	var sent []int64
	s := NewScheduler(time.UTC, "0 19 * * *", reminder, func(_ context.Context, userID int64, _ string) {
		sent = append(sent, userID)
	})

	s.runReminders(context.Background())

	assert.Equal(t, 1, reminder.calls)
	assert.Equal(t, []int64{42}, sent)
}
