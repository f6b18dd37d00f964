// Package common — telegram.go содержит общую отправку ответов в Telegram.
package common

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	log "github.com/sirupsen/logrus"
)

// Sender — часть *telego.Bot, которая нужна обработчикам.
// В тестах подменяется заглушкой.
type Sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// SendText отправляет текстовое сообщение и логирует ошибку отправки.
func SendText(ctx context.Context, sender Sender, chatID int64, text string) {
	if _, err := sender.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}
