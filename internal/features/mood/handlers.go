// Package mood — handlers.go обрабатывает команды /mood и /mingguan.
package mood

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/tracker"
)

// Handler обрабатывает команды настроения.
type Handler struct {
	service *Service
	sender  common.Sender
}

// NewHandler создаёт обработчик команд настроения.
func NewHandler(service *Service, sender common.Sender) *Handler {
	return &Handler{service: service, sender: sender}
}

// HandleMood обрабатывает /mood [1-5]. Без аргумента показывает шкалу и текущую отметку.
func (h *Handler) HandleMood(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		mood, ok, err := h.service.Today(ctx, userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("Ошибка чтения настроения")
			h.reply(ctx, chatID, "❌ Gagal mengambil mood, coba lagi nanti")
			return
		}
		h.reply(ctx, chatID, FormatPicker(mood, ok))
		return
	}

	mood, err := strconv.Atoi(args[0])
	if err == nil {
		err = h.service.Record(ctx, userID, mood)
	} else {
		err = common.ErrInvalidMood
	}
	if err != nil {
		if errors.Is(err, common.ErrInvalidMood) {
			h.reply(ctx, chatID, "❌ Pilih mood dari 1 sampai 5, contoh: /mood 4")
			return
		}
		log.WithError(err).WithField("user_id", userID).Error("Ошибка записи настроения")
		h.reply(ctx, chatID, "❌ Gagal menyimpan mood, coba lagi nanti")
		return
	}

	h.reply(ctx, chatID, fmt.Sprintf("%s Mood hari ini: %s\nLihat grafik minggu ini dengan /mingguan",
		tracker.MoodGlyph(mood), tracker.MoodLabel(mood)))
}

// HandleWeekly обрабатывает /mingguan.
func (h *Handler) HandleWeekly(ctx context.Context, chatID, userID int64) {
	series, err := h.service.Weekly(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Ошибка построения графика настроения")
		h.reply(ctx, chatID, "❌ Gagal membuat grafik mood")
		return
	}
	h.reply(ctx, chatID, FormatWeekly(series))
}

// FormatPicker — шкала настроения с отметкой выбранного значения.
func FormatPicker(current int, ok bool) string {
	var b strings.Builder
	b.WriteString("Bagaimana perasaanmu hari ini?\n\n")
	for mood := tracker.MaxMood; mood >= tracker.MinMood; mood-- {
		mark := ""
		if ok && mood == current {
			mark = " ✅"
		}
		fmt.Fprintf(&b, "/mood %d %s %s%s\n", mood, tracker.MoodGlyph(mood), tracker.MoodLabel(mood), mark)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWeekly рендерит недельный график: одна строка на день, высота столбика = настроение.
//
//	Sn 🙂 ▇▇▇▇
//	Sl ❔
//	...
//	Mood kamu lebih stabil minggu ini. Hari terbaikmu: Senin!
func FormatWeekly(series tracker.WeeklySeries) string {
	var b strings.Builder
	b.WriteString("📊 Mood Minggu Ini\n\n")
	for _, p := range series.Points {
		line := p.DayLabel + " " + p.Glyph
		if p.Mood > 0 {
			line += " " + strings.Repeat("▇", p.Mood)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(series.Summary)
	return b.String()
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
