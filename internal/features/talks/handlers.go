// Package talks — TIV-TALKS: ИИ-ассистент TIVA отвечает на вопросы
// о спорте, питании, менструации и ментальном здоровье.
// Обрабатывает /tanya и обычный текст в личке.
package talks

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/ai"
	"beautive.app/telegram-bot/internal/common"
)

const (
	// Greeting — приветствие ассистента.
	Greeting = "Halo! Saya TIVA, asisten AI Anda. Tanyakan apa saja tentang olahraga, nutrisi, atau kesehatan. Saya di sini untuk membantu!"
	// FailureReply — ответ при ошибке модели.
	FailureReply = "Maaf, saya sedang mengalami sedikit masalah. Coba lagi nanti ya."
	// DisabledReply — ассистент выключен или ключ не задан.
	DisabledReply = "🛠 TIV-TALKS sedang tidak tersedia. Coba lagi nanti ya."
)

// maxMessageRunes — ограничение Telegram на длину сообщения (4096) с запасом.
const maxMessageRunes = 4000

// Handler обрабатывает вопросы к ассистенту.
type Handler struct {
	answerer ai.Answerer // nil — ассистент выключен
	sender   common.Sender
}

// NewHandler создаёт обработчик. answerer == nil выключает ассистента.
func NewHandler(answerer ai.Answerer, sender common.Sender) *Handler {
	return &Handler{answerer: answerer, sender: sender}
}

// Enabled сообщает, подключена ли модель.
func (h *Handler) Enabled() bool {
	return h.answerer != nil
}

// HandleQuestion отвечает на вопрос. Пустой вопрос — приветствие.
func (h *Handler) HandleQuestion(ctx context.Context, chatID, userID int64, question string) {
	question = strings.TrimSpace(question)
	if question == "" {
		h.reply(ctx, chatID, Greeting)
		return
	}
	if !h.Enabled() {
		h.reply(ctx, chatID, DisabledReply)
		return
	}

	answer, err := h.answerer.Answer(ctx, question)
	if err != nil {
		entry := log.WithError(err).WithField("user_id", userID)
		if errors.Is(err, context.Canceled) {
			entry.Debug("Вопрос отменён")
			return
		}
		entry.Error("Не удалось получить ответ ассистента")
		h.reply(ctx, chatID, FailureReply)
		return
	}

	for _, chunk := range SplitMessage(answer, maxMessageRunes) {
		h.reply(ctx, chatID, chunk)
	}
}

// SplitMessage режет текст на части не длиннее limit рун,
// по возможности по границе абзаца или строки.
func SplitMessage(text string, limit int) []string {
	var chunks []string
	for utf8.RuneCountInString(text) > limit {
		runes := []rune(text)
		head := string(runes[:limit])
		cut := strings.LastIndex(head, "\n\n")
		if cut <= 0 {
			cut = strings.LastIndex(head, "\n")
		}
		if cut <= 0 {
			cut = strings.LastIndex(head, " ")
		}
		if cut <= 0 {
			cut = len(head)
		}
		chunks = append(chunks, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, h.sender, chatID, text)
}
