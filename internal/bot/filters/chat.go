// Package filters решает, какие сообщения бот вообще обрабатывает.
package filters

import (
	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"
)

// ChatFilter пропускает только личные чаты с живыми пользователями:
// трекер персональный, в группах он не отвечает.
type ChatFilter struct{}

// NewChatFilter создаёт фильтр.
func NewChatFilter() *ChatFilter {
	return &ChatFilter{}
}

// Allow сообщает, нужно ли обрабатывать сообщение.
func (f *ChatFilter) Allow(message *telego.Message) bool {
	if message == nil {
		log.WithField("component", "ChatFilter").Warn("nil message")
		return false
	}

	logger := log.WithFields(log.Fields{
		"component": "ChatFilter",
		"chat_id":   message.Chat.ID,
		"chat_type": message.Chat.Type,
	})

	if message.From == nil {
		logger.Debug("deny: nil message.From (service/channel message?)")
		return false
	}
	if message.From.IsBot {
		logger.WithField("user_id", message.From.ID).Debug("deny: sender is a bot")
		return false
	}
	if message.Chat.Type != telego.ChatTypePrivate {
		logger.WithField("user_id", message.From.ID).Debug("deny: not a private chat")
		return false
	}
	return true
}
