// Package coach — handlers.go обрабатывает /panduan и /narasi.
package coach

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/ai"
	"beautive.app/telegram-bot/internal/common"
)

// NarrationDisabledReply — озвучка недоступна без ключа модели.
const NarrationDisabledReply = "🔇 Narasi audio belum tersedia. Ikuti langkah tertulis di /panduan."

// DocumentSender — часть *telego.Bot для отправки файла с озвучкой.
type DocumentSender interface {
	SendDocument(ctx context.Context, params *telego.SendDocumentParams) (*telego.Message, error)
}

// Handler обрабатывает инструкции к позам.
type Handler struct {
	narrator ai.Narrator
	sender   common.Sender
	files    DocumentSender
}

// NewHandler создаёт обработчик. Без narrator /narasi отвечает заглушкой.
func NewHandler(narrator ai.Narrator, sender common.Sender, files DocumentSender) *Handler {
	return &Handler{narrator: narrator, sender: sender, files: files}
}

// HandleGuide обрабатывает /panduan <pose|nomor> [pemula|menengah|mahir].
func (h *Handler) HandleGuide(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		h.reply(ctx, chatID, FormatCatalog())
		return
	}
	pose, level, ok := ParseRequest(args)
	if !ok {
		h.reply(ctx, chatID, "❌ Pose tidak ditemukan.\n\n"+FormatCatalog())
		return
	}
	h.reply(ctx, chatID, FormatGuide(pose, level))
}

// HandleNarration обрабатывает /narasi <pose|nomor> [level] — присылает WAV с озвучкой.
func (h *Handler) HandleNarration(ctx context.Context, chatID, userID int64, args []string) {
	if h.narrator == nil {
		h.reply(ctx, chatID, NarrationDisabledReply)
		return
	}
	pose, level, ok := ParseRequest(args)
	if !ok {
		h.reply(ctx, chatID, "❌ Format: /narasi <pose|nomor> [pemula|menengah|mahir]\n\n"+FormatCatalog())
		return
	}

	logger := log.WithFields(log.Fields{"user_id": userID, "pose": pose.Name, "level": level})
	h.reply(ctx, chatID, "🔊 Menyiapkan narasi...")

	wav, err := h.narrator.Narrate(ctx, NarrationText(pose, level))
	if err != nil {
		logger.WithError(err).Error("Не удалось озвучить инструкцию")
		h.reply(ctx, chatID, "❌ Narasi Gagal. Gagal membuat narasi audio. Silakan coba lagi.")
		return
	}

	name := fmt.Sprintf("%s-%s.wav", normalize(pose.Name), level)
	params := tu.Document(tu.ID(chatID), tu.File(tu.NameReader(bytes.NewReader(wav), name)))
	params.Caption = fmt.Sprintf("🔊 %s · %s", pose.Name, level.Label())
	if _, err := h.files.SendDocument(ctx, params); err != nil {
		logger.WithError(err).Error("Ошибка отправки озвучки")
		return
	}
	logger.WithField("bytes", len(wav)).Info("Озвучка отправлена")
}

// ParseRequest разбирает "<pose> [level]". Поза может состоять из нескольких слов,
// уровень — последнее слово. Без уровня — pemula.
func ParseRequest(args []string) (Pose, Level, bool) {
	level := LevelBeginner
	if len(args) > 1 {
		if l, ok := ParseLevel(args[len(args)-1]); ok {
			level = l
			args = args[:len(args)-1]
		}
	}
	pose, ok := MatchPose(strings.Join(args, " "))
	return pose, level, ok
}

// FormatCatalog — список поз для /panduan.
func FormatCatalog() string {
	var b strings.Builder
	b.WriteString("🧘 TIV-COACH · Daftar Pose\n\n")
	for i, p := range Poses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.FullName())
	}
	b.WriteString("\nKirim /panduan <nomor|nama> [pemula|menengah|mahir], contoh: /panduan 3 mahir")
	return b.String()
}

// FormatGuide — карточка позы на выбранном уровне.
//
//	🧘 Tree Pose (Vrksasana)
//	Meningkatkan keseimbangan, ...
//
//	Tingkat: Pemula · ⏱ 15-30 detik per sisi
//	1. Berdiri tegak. ...
func FormatGuide(pose Pose, level Level) string {
	guide := pose.Guides[level]

	var b strings.Builder
	fmt.Fprintf(&b, "🧘 %s\n%s\n\n", pose.FullName(), pose.Description)
	fmt.Fprintf(&b, "Tingkat: %s · ⏱ %s\n", level.Label(), guide.Duration)
	for i, step := range guide.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	var others []string
	for _, l := range Levels {
		if l != level {
			others = append(others, string(l))
		}
	}
	fmt.Fprintf(&b, "\nTingkat lain: %s\n🔊 Dengarkan: /narasi %s %s", strings.Join(others, ", "), normalize(pose.Name), level)
	return b.String()
}

// NarrationText — текст для озвучки инструкции.
func NarrationText(pose Pose, level Level) string {
	guide := pose.Guides[level]
	steps := make([]string, len(guide.Steps))
	for i, s := range guide.Steps {
		steps[i] = strings.TrimSuffix(s, ".")
	}
	return fmt.Sprintf("Pose: %s. Tingkat: %s. Durasi yang disarankan: %s. Langkah-langkah: %s.",
		pose.FullName(), level, guide.Duration, strings.Join(steps, ". "))
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
