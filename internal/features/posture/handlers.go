// Package posture — TIV-CHECK: оценка позы йоги по фото.
// handlers.go обрабатывает /pose и фото с подписью позы.
package posture

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/ai"
	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/features/coach"
)

// DisabledReply — фича выключена флагом.
const DisabledReply = "🛠 Fitur Dalam Perbaikan\nFungsionalitas deteksi postur sedang dalam perbaikan dan akan segera kembali."

// Handler обрабатывает оценку позы.
type Handler struct {
	checker    ai.PostureChecker
	downloader *Downloader
	sender     common.Sender
	enabled    bool
}

// NewHandler создаёт обработчик. Без checker фича считается выключенной.
func NewHandler(checker ai.PostureChecker, files FileSource, client *http.Client, sender common.Sender, enabled bool) *Handler {
	return &Handler{
		checker:    checker,
		downloader: NewDownloader(files, client),
		sender:     sender,
		enabled:    enabled && checker != nil,
	}
}

// HandlePoseList обрабатывает /pose.
func (h *Handler) HandlePoseList(ctx context.Context, chatID int64) {
	if !h.enabled {
		h.reply(ctx, chatID, DisabledReply)
		return
	}
	h.reply(ctx, chatID, FormatPoseList())
}

// HandlePhoto оценивает позу на фото. Подпись к фото — название или номер позы.
func (h *Handler) HandlePhoto(ctx context.Context, chatID, userID int64, photos []telego.PhotoSize, caption string) {
	if !h.enabled {
		h.reply(ctx, chatID, DisabledReply)
		return
	}

	pose, ok := coach.MatchPose(caption)
	if !ok {
		h.reply(ctx, chatID, "❌ Tulis nama pose di keterangan foto.\n\n"+FormatPoseList())
		return
	}
	photo, ok := LargestPhoto(photos)
	if !ok {
		return
	}

	logger := log.WithFields(log.Fields{"user_id": userID, "pose": pose.Name})
	image, err := h.downloader.Download(ctx, photo.FileID)
	if err != nil {
		if errors.Is(err, common.ErrImageTooLarge) {
			h.reply(ctx, chatID, "❌ Foto terlalu besar, maksimal 10 MB")
			return
		}
		logger.WithError(err).Error("Не удалось скачать фото")
		h.reply(ctx, chatID, "❌ Gagal mengunduh foto, coba lagi nanti")
		return
	}

	h.reply(ctx, chatID, "🔎 Menganalisis...")
	// Telegram пережимает фото в JPEG
	res, err := h.checker.CheckPosture(ctx, image, "image/jpeg", pose.FullName())
	if err != nil {
		logger.WithError(err).Error("Не удалось оценить позу")
		h.reply(ctx, chatID, "❌ Gagal menganalisis postur. Coba lagi nanti ya.")
		return
	}

	logger.WithField("score", res.Score).Info("Поза оценена")
	h.reply(ctx, chatID, FormatResult(pose.Name, res))
}

// FormatPoseList — список поз с номерами.
func FormatPoseList() string {
	var b strings.Builder
	b.WriteString("🧘 TIV-CHECK\nKirim foto pose yoga dengan keterangan nama atau nomor pose:\n\n")
	for i, p := range coach.Poses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatResult — карточка «Hasil Analisis».
func FormatResult(pose string, res ai.PostureResult) string {
	return fmt.Sprintf("🧘 Hasil Analisis · %s\n\nSkor Akurasi: %d/100\n%s\n\nUmpan Balik:\n%s",
		pose, res.Score, common.ProgressBar(res.Score, 100, 10), res.Feedback)
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
