package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautive.app/telegram-bot/internal/features/tracker"
)

func TestClockToday(t *testing.T) {
	loc := time.FixedZone("WIB", wibOffset)
	// 18:30 UTC 14 мая = 01:30 WIB 15 мая
	clock := NewClock(loc, func() time.Time {
		return time.Date(2024, time.May, 14, 18, 30, 0, 0, time.UTC)
	})

	assert.Equal(t, tracker.NewDate(2024, time.May, 15), clock.Today())
	assert.Equal(t, 1, clock.Now().Hour())
	assert.Equal(t, loc, clock.Location())
}

func TestLoadLocationFallback(t *testing.T) {
	loc := LoadLocation("Nowhere/Atlantis")
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, wibOffset, offset)
}

func TestFormatDay(t *testing.T) {
	d := tracker.NewDate(2024, time.May, 15)
	assert.Equal(t, "Rabu, 15 Mei", FormatDay(d))
	assert.Equal(t, "15 Mei 2024", FormatDate(d))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "▓▓▓▓▓░░░░░ 50%", ProgressBar(30, 60, 10))
	assert.Equal(t, "░░░░░░░░░░ 0%", ProgressBar(-5, 60, 10))
	assert.Equal(t, "▓▓▓▓▓▓▓▓▓▓ 150%", ProgressBar(12, 8, 10))
	assert.Empty(t, ProgressBar(1, 0, 10))
}

type captureSender struct {
	params []*telego.SendMessageParams
	err    error
}

func (s *captureSender) SendMessage(_ context.Context, p *telego.SendMessageParams) (*telego.Message, error) {
	s.params = append(s.params, p)
	return &telego.Message{}, s.err
}

func TestSendText(t *testing.T) {
	s := &captureSender{}
	SendText(context.Background(), s, 42, "halo")

	require.Len(t, s.params, 1)
	assert.Equal(t, int64(42), s.params[0].ChatID.ID)
	assert.Equal(t, "halo", s.params[0].Text)

	// ошибка отправки только логируется
	s.err = errors.New("network down")
	SendText(context.Background(), s, 42, "lagi")
	assert.Len(t, s.params, 2)
}
