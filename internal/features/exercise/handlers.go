// Package exercise — handlers.go обрабатывает команды /latihan и /streak.
package exercise

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/config"
)

// Handler обрабатывает команды тренировок.
type Handler struct {
	service *Service
	sender  common.Sender
	cfg     *config.Config
}

// NewHandler создаёт обработчик команд тренировок.
func NewHandler(service *Service, sender common.Sender, cfg *config.Config) *Handler {
	return &Handler{service: service, sender: sender, cfg: cfg}
}

// HandleExercise обрабатывает /latihan <menit>. Ноль сбрасывает сегодняшнюю тренировку.
func (h *Handler) HandleExercise(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		h.reply(ctx, chatID, fmt.Sprintf(
			"🏋️ Kirim durasi olahraga hari ini, contoh: /latihan 30\nTarget harian: %d menit. Ini akan memulai streak kamu.",
			h.cfg.ExerciseGoalMinutes))
		return
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		h.reply(ctx, chatID, "❌ Format: /latihan <menit>, contoh: /latihan 30")
		return
	}

	st, err := h.service.SetMinutes(ctx, userID, minutes)
	if err != nil {
		if errors.Is(err, common.ErrInvalidMinutes) {
			h.reply(ctx, chatID, fmt.Sprintf("❌ Durasi harus 0 sampai %d menit", MaxMinutes))
			return
		}
		log.WithError(err).WithField("user_id", userID).Error("Ошибка записи тренировки")
		h.reply(ctx, chatID, "❌ Gagal menyimpan latihan, coba lagi nanti")
		return
	}

	header := fmt.Sprintf("🏋️ Olahraga hari ini: %d/%d menit\n%s\n\n",
		minutes, h.cfg.ExerciseGoalMinutes, common.ProgressBar(minutes, h.cfg.ExerciseGoalMinutes, 10))
	h.reply(ctx, chatID, header+FormatStatus(st))
}

// HandleStreak обрабатывает /streak — показывает серию, значок и строку огоньков.
func (h *Handler) HandleStreak(ctx context.Context, chatID, userID int64) {
	st, err := h.service.Status(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Ошибка получения стрика")
		h.reply(ctx, chatID, "❌ Gagal mengambil data streak")
		return
	}
	h.reply(ctx, chatID, FormatStatus(st))
}

// FormatStatus рендерит карточку «Konsistensi Latihan».
//
// Формат:
//
//	🔥 Konsistensi Latihan · Strong Streaker
//	Anda telah berlatih selama 3 hari berturut-turut! Pertahankan!
//	🔥🔥🔥▫️▫️▫️▫️
func FormatStatus(st *Status) string {
	var b strings.Builder
	b.WriteString("🔥 Konsistensi Latihan")
	if label := st.Badge.Label(); label != "" {
		b.WriteString(" · " + label)
	}
	b.WriteString("\n")

	switch {
	case st.Streak > 0:
		fmt.Fprintf(&b, "Anda telah berlatih selama %d hari berturut-turut! Pertahankan!", st.Streak)
	case st.Pending > 0:
		fmt.Fprintf(&b, "Streak %d hari menunggumu. Latihan hari ini supaya tidak putus!", st.Pending)
	default:
		b.WriteString("Mulai lacak latihanmu untuk membangun konsistensi.")
	}
	b.WriteString("\n")
	b.WriteString(FlameRow(st.Streak))
	return b.String()
}

// FlameRow — 7 ячеек, закрашенных по длине стрика.
func FlameRow(streak int) string {
	var b strings.Builder
	for i := 0; i < FlameDays; i++ {
		if streak >= i+1 {
			b.WriteString("🔥")
		} else {
			b.WriteString("▫️")
		}
	}
	return b.String()
}

// FormatReminder — текст напоминания о серии.
func FormatReminder(streak int) string {
	return fmt.Sprintf("⚠️ Kamu punya streak %d hari! Jangan lupa olahraga hari ini supaya streak-mu tidak putus. Kirim /latihan <menit> setelah selesai.", streak)
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
