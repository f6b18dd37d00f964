// Package habits — handlers.go обрабатывает команды /air, /tidur и /hari.
package habits

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/config"
	"beautive.app/telegram-bot/internal/features/tracker"
)

// MoodSource отдаёт настроение за сегодня для сводки дня.
type MoodSource interface {
	Today(ctx context.Context, userID int64) (mood int, ok bool, err error)
}

// Handler обрабатывает команды дневных показателей.
type Handler struct {
	service *Service
	mood    MoodSource
	sender  common.Sender
	cfg     *config.Config
}

// NewHandler создаёт обработчик дневных показателей.
func NewHandler(service *Service, mood MoodSource, sender common.Sender, cfg *config.Config) *Handler {
	return &Handler{service: service, mood: mood, sender: sender, cfg: cfg}
}

// HandleWater обрабатывает /air.
//
//	/air      — показать прогресс
//	/air +2   — добавить стаканы (без знака «+» и числа — один стакан)
//	/air -1   — убрать стакан
//	/air 5    — выставить количество
func (h *Handler) HandleWater(ctx context.Context, chatID, userID int64, args []string) {
	var err error
	switch {
	case len(args) == 0:
		// только показываем
	case args[0] == "+" || args[0] == "-":
		delta := 1
		if args[0] == "-" {
			delta = -1
		}
		_, err = h.service.AdjustWater(ctx, userID, delta)
	case strings.HasPrefix(args[0], "+") || strings.HasPrefix(args[0], "-"):
		delta, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			h.reply(ctx, chatID, "❌ Format: /air +1, /air -1 atau /air 5")
			return
		}
		_, err = h.service.AdjustWater(ctx, userID, delta)
	default:
		glasses, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			h.reply(ctx, chatID, "❌ Format: /air +1, /air -1 atau /air 5")
			return
		}
		err = h.service.SetWater(ctx, userID, glasses)
	}
	if err != nil {
		h.replyError(ctx, chatID, userID, err)
		return
	}

	day, err := h.service.Today(ctx, userID)
	if err != nil {
		h.replyError(ctx, chatID, userID, err)
		return
	}
	h.reply(ctx, chatID, FormatWater(day.WaterGlasses, h.cfg.WaterGoalGlasses))
}

// HandleSleep обрабатывает /tidur <0-10>.
func (h *Handler) HandleSleep(ctx context.Context, chatID, userID int64, args []string) {
	if len(args) == 0 {
		day, err := h.service.Today(ctx, userID)
		if err != nil {
			h.replyError(ctx, chatID, userID, err)
			return
		}
		h.reply(ctx, chatID, FormatSleep(day.SleepQuality))
		return
	}

	quality, err := strconv.Atoi(args[0])
	if err != nil {
		h.reply(ctx, chatID, "❌ Format: /tidur 0-10")
		return
	}
	if err := h.service.SetSleep(ctx, userID, quality); err != nil {
		h.replyError(ctx, chatID, userID, err)
		return
	}
	h.reply(ctx, chatID, FormatSleep(&quality))
}

// HandleToday обрабатывает /hari — сводка за сегодня.
func (h *Handler) HandleToday(ctx context.Context, chatID, userID int64) {
	day, err := h.service.Today(ctx, userID)
	if err != nil {
		h.replyError(ctx, chatID, userID, err)
		return
	}
	mood, hasMood, err := h.mood.Today(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Не удалось получить настроение для сводки")
		hasMood = false
	}
	if !hasMood {
		mood = 0
	}
	h.reply(ctx, chatID, FormatDashboard(day, mood, h.cfg.ExerciseGoalMinutes, h.cfg.WaterGoalGlasses))
}

// FormatWater — прогресс по воде.
//
//	💧 Asupan Air: 3/8 gelas
//	▓▓▓▓░░░░░░ 37%
func FormatWater(glasses, goal int) string {
	text := fmt.Sprintf("💧 Asupan Air: %d/%d gelas\n%s", glasses, goal, common.ProgressBar(glasses, goal, 10))
	if glasses >= goal {
		text += "\n✅ Target harian tercapai!"
	}
	return text
}

// FormatSleep — оценка сна.
func FormatSleep(quality *int) string {
	if quality == nil {
		return "🛏 Kualitas tidur belum dinilai. Kirim /tidur 0-10."
	}
	return fmt.Sprintf("🛏 Kualitas Tidur: %d/10 (%s)", *quality, SleepLabel(*quality))
}

// FormatDashboard — сводка дня. mood == 0 — настроение не отмечено.
func FormatDashboard(day *DailyLog, mood, exerciseGoal, waterGoal int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s\n\n", common.FormatDay(day.Date))
	fmt.Fprintf(&b, "🏋️ Olahraga: %d/%d menit\n%s\n\n", day.ExerciseMinutes, exerciseGoal,
		common.ProgressBar(day.ExerciseMinutes, exerciseGoal, 10))
	b.WriteString(FormatWater(day.WaterGlasses, waterGoal))
	b.WriteString("\n\n")
	b.WriteString(FormatSleep(day.SleepQuality))
	b.WriteString("\n")
	if mood > 0 {
		fmt.Fprintf(&b, "%s Mood: %s", tracker.MoodGlyph(mood), tracker.MoodLabel(mood))
	} else {
		b.WriteString("❔ Mood: belum dipilih")
	}
	return b.String()
}

func (h *Handler) replyError(ctx context.Context, chatID, userID int64, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidSleep):
		h.reply(ctx, chatID, "❌ Nilai tidur harus 0 sampai 10")
	case errors.Is(err, common.ErrInvalidWater):
		h.reply(ctx, chatID, fmt.Sprintf("❌ Jumlah gelas harus 0 sampai %d", MaxWaterGlasses))
	default:
		log.WithError(err).WithField("user_id", userID).Error("Ошибка дневных показателей")
		h.reply(ctx, chatID, "❌ Terjadi kesalahan, coba lagi nanti")
	}
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
