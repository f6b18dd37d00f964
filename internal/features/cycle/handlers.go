// Package cycle — handlers.go обрабатывает команду /siklus.
package cycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

// Handler обрабатывает команды календаря цикла.
type Handler struct {
	service *Service
	sender  common.Sender
}

// NewHandler создаёт обработчик /siklus.
func NewHandler(service *Service, sender common.Sender) *Handler {
	return &Handler{service: service, sender: sender}
}

// HandleCycle обрабатывает /siklus.
//
//	/siklus             — последние отметки
//	/siklus 2024-05-01  — переключить отметку дня
//	/siklus hari ini    — переключить сегодня (также "today")
func (h *Handler) HandleCycle(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		days, err := h.service.List(ctx, userID, DefaultListLimit)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Ошибка получения дней цикла")
			h.reply(ctx, chatID, "❌ Gagal mengambil kalender siklus")
			return
		}
		h.reply(ctx, chatID, FormatList(days))
		return
	}

	day, err := ParseDay(strings.Join(args, " "), h.service.Today())
	if err != nil {
		h.reply(ctx, chatID, "❌ Format: /siklus YYYY-MM-DD atau /siklus hari ini")
		return
	}

	added, err := h.service.Toggle(ctx, userID, day)
	if err != nil {
		if errors.Is(err, common.ErrInvalidDate) {
			h.reply(ctx, chatID, "❌ Tanggal tidak boleh di masa depan")
			return
		}
		log.WithError(err).WithField("user_id", userID).Error("Ошибка переключения дня цикла")
		h.reply(ctx, chatID, "❌ Gagal menyimpan tanggal, coba lagi nanti")
		return
	}

	if added {
		h.reply(ctx, chatID, fmt.Sprintf("🩸 %s ditandai sebagai awal siklus.", common.FormatDate(day)))
	} else {
		h.reply(ctx, chatID, fmt.Sprintf("🗓 Tanda pada %s dihapus.", common.FormatDate(day)))
	}
}

// ParseDay разбирает аргумент /siklus: дата 2006-01-02 или "hari ini"/"today".
func ParseDay(arg string, today tracker.Date) (tracker.Date, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "hari ini", "today":
		return today, nil
	}
	day, err := tracker.ParseDate(strings.TrimSpace(arg))
	if err != nil {
		return tracker.Date{}, common.ErrInvalidDate
	}
	return day, nil
}

// FormatList — список отметок.
func FormatList(days []tracker.Date) string {
	if len(days) == 0 {
		return "🗓 Siklus Menstruasi\nBelum ada tanggal. Pilih tanggal mulai siklus: /siklus YYYY-MM-DD atau /siklus hari ini"
	}
	var b strings.Builder
	b.WriteString("🗓 Siklus Menstruasi\n")
	for _, d := range days {
		fmt.Fprintf(&b, "🩸 %s\n", common.FormatDate(d))
	}
	b.WriteString("\nKirim tanggal yang sama lagi untuk menghapus tandanya.")
	return b.String()
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
