// Package bot содержит главный модуль бота — запуск, остановку и маршрутизацию.
// bot.go принимает апдейты через long polling и раздаёт их обработчикам фич.
package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/bot/filters"
	"beautive.app/telegram-bot/internal/bot/middleware"
	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/config"
	"beautive.app/telegram-bot/internal/features/coach"
	"beautive.app/telegram-bot/internal/features/cycle"
	"beautive.app/telegram-bot/internal/features/exercise"
	"beautive.app/telegram-bot/internal/features/habits"
	"beautive.app/telegram-bot/internal/features/members"
	"beautive.app/telegram-bot/internal/features/mood"
	"beautive.app/telegram-bot/internal/features/posture"
	"beautive.app/telegram-bot/internal/features/talks"
	"beautive.app/telegram-bot/internal/observability"
)

// Handlers — обработчики фич, между которыми маршрутизируются команды.
type Handlers struct {
	Exercise *exercise.Handler
	Habits   *habits.Handler
	Mood     *mood.Handler
	Cycle    *cycle.Handler
	Talks    *talks.Handler
	Coach    *coach.Handler
	Posture  *posture.Handler
}

// Bot — главная структура бота, объединяющая все компоненты.
type Bot struct {
	api *telego.Bot
	cfg *config.Config

	chatFilter  *filters.ChatFilter
	rateLimiter *middleware.RateLimiter

	memberService *members.Service
	handlers      Handlers

	parser *CommandParser

	// ограничитель параллелизма обработки апдейтов
	inflight chan struct{}
	wg       sync.WaitGroup
}

// New создаёт новый экземпляр бота со всеми зависимостями.
// username — @username бота без «@», чтобы понимать команды вида /streak@bot.
func New(
	api *telego.Bot,
	cfg *config.Config,
	username string,
	memberService *members.Service,
	handlers Handlers,
	chatFilter *filters.ChatFilter,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		api:           api,
		cfg:           cfg,
		chatFilter:    chatFilter,
		rateLimiter:   middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		memberService: memberService,
		handlers:      handlers,
		parser:        NewCommandParser(username),
		inflight:      make(chan struct{}, maxInFlight),
	}
}

// Start запускает long polling и блокируется до отмены ctx.
// Перед возвратом дожидается завершения уже запущенных обработчиков.
func (b *Bot) Start(ctx context.Context) error {
	updates, err := b.api.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: b.cfg.BotUpdateTimeoutSeconds,
	})
	if err != nil {
		return fmt.Errorf("ошибка запуска long polling: %w", err)
	}

	log.WithFields(log.Fields{
		"max_inflight": cap(b.inflight),
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Бот запущен и ожидает сообщения...")

	// канал закрывается telego после отмены ctx
	for update := range updates {
		b.inflight <- struct{}{}
		b.wg.Add(1)
		go func(upd telego.Update) {
			defer func() {
				<-b.inflight
				b.wg.Done()
			}()
			b.handleUpdate(ctx, upd)
		}(update)
	}

	b.wg.Wait()
	b.rateLimiter.Close()
	log.Info("Бот остановлен")
	return nil
}

// handleUpdate обрабатывает одно обновление от Telegram.
func (b *Bot) handleUpdate(ctx context.Context, update telego.Update) {
	defer middleware.RecoverFromPanic()

	message := update.Message
	if message == nil {
		return
	}

	middleware.LogMessage(message)

	// Только личные чаты с живыми пользователями
	if !b.chatFilter.Allow(message) {
		return
	}

	chatID := message.Chat.ID
	userID := message.From.ID

	if !b.rateLimiter.Allow(userID) {
		observability.RecordRateLimited()
		log.WithField("user_id", userID).Debug("rate limited")
		return
	}

	// Все таблицы трекера ссылаются на members: без регистрации дальше идти нельзя
	if err := b.memberService.EnsureMember(ctx, members.Profile{
		UserID:    userID,
		Username:  message.From.Username,
		FirstName: message.From.FirstName,
		LastName:  message.From.LastName,
	}); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("EnsureMember failed")
		b.sendMessage(ctx, chatID, "❌ Terjadi kesalahan, coba lagi nanti")
		return
	}

	// Фото с подписью — проверка позы
	if len(message.Photo) > 0 {
		observability.RecordCommand("photo")
		b.handlers.Posture.HandlePhoto(ctx, chatID, userID, message.Photo, message.Caption)
		return
	}

	if message.Text == "" {
		return
	}

	cmd, args, isCommand := b.parser.ParseCommand(message.Text)
	log.WithFields(log.Fields{
		"isCommand": isCommand,
		"cmd":       cmd,
		"args":      args,
	}).Debug("parsed command")

	if isCommand {
		b.routeCommand(ctx, chatID, userID, cmd, args, b.parser.Rest(message.Text))
		return
	}

	// Обычный текст — вопрос ассистенту
	if b.cfg.FeatureTalksEnabled {
		observability.RecordCommand("text")
		b.handlers.Talks.HandleQuestion(ctx, chatID, userID, message.Text)
		return
	}
	b.sendMessage(ctx, chatID, "Kirim /help untuk melihat daftar perintah.")
}

// routeCommand маршрутизирует команду к нужному обработчику.
// rest — текст после команды без изменений (для вопросов ассистенту).
func (b *Bot) routeCommand(ctx context.Context, chatID, userID int64, cmd string, args []string, rest string) {
	log.WithFields(log.Fields{
		"cmd":  cmd,
		"args": args,
	}).Debug("routing command")

	switch cmd {
	case "start":
		b.sendMessage(ctx, chatID, b.startText(ctx, userID))

	case "help":
		b.sendMessage(ctx, chatID, helpText)

	case "latihan":
		b.handlers.Exercise.HandleExercise(ctx, chatID, userID, args)

	case "streak":
		b.handlers.Exercise.HandleStreak(ctx, chatID, userID)

	case "air":
		b.handlers.Habits.HandleWater(ctx, chatID, userID, args)

	case "tidur":
		b.handlers.Habits.HandleSleep(ctx, chatID, userID, args)

	case "hari":
		b.handlers.Habits.HandleToday(ctx, chatID, userID)

	case "mood":
		b.handlers.Mood.HandleMood(ctx, chatID, userID, args)

	case "mingguan":
		b.handlers.Mood.HandleWeekly(ctx, chatID, userID)

	case "siklus":
		b.handlers.Cycle.HandleCycle(ctx, chatID, userID, args)

	case "tanya":
		if b.cfg.FeatureTalksEnabled {
			b.handlers.Talks.HandleQuestion(ctx, chatID, userID, rest)
		} else {
			b.sendMessage(ctx, chatID, talks.DisabledReply)
		}

	case "panduan":
		b.handlers.Coach.HandleGuide(ctx, chatID, args)

	case "narasi":
		b.handlers.Coach.HandleNarration(ctx, chatID, userID, args)

	case "pose":
		b.handlers.Posture.HandlePoseList(ctx, chatID)

	default:
		observability.RecordCommand("unknown")
		b.sendMessage(ctx, chatID, "❔ Perintah tidak dikenal. Kirim /help untuk melihat daftar perintah.")
		return
	}
	observability.RecordCommand(cmd)
}

const helpText = `🌸 BEAUTIVE · Teman sehatmu

🏋️ /latihan <menit> — catat olahraga hari ini (0 untuk menghapus)
🔥 /streak — konsistensi latihan
💧 /air [+1|-1|5] — asupan air
🛏 /tidur <0-10> — kualitas tidur semalam
😊 /mood [1-5] — mood hari ini
📊 /mingguan — grafik mood 7 hari
🗓 /siklus [YYYY-MM-DD|hari ini] — kalender siklus
📅 /hari — ringkasan hari ini
💬 /tanya <pertanyaan> — tanya TIVA, atau kirim pesan biasa
🧘 /panduan [pose] [pemula|menengah|mahir] — panduan pose yoga
🔊 /narasi <pose> [tingkat] — narasi audio panduan
📸 /pose — periksa postur yoga dari foto`

// startText — приветствие по имени пользователя.
func (b *Bot) startText(ctx context.Context, userID int64) string {
	name := "kamu"
	if m, err := b.memberService.GetByUserID(ctx, userID); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Не удалось получить пользователя для приветствия")
	} else {
		name = m.DisplayName()
	}
	return fmt.Sprintf("Halo, %s! 👋\nLacak aktivitas, nutrisi, dan siklus harian Anda.\n\n%s", name, helpText)
}

// sendMessage — утилита для отправки сообщений.
func (b *Bot) sendMessage(ctx context.Context, chatID int64, text string) {
	common.SendText(ctx, b.api, chatID, text)
}

// SendMessageToUser отправляет сообщение пользователю (для напоминаний).
// В личке chat_id совпадает с user_id.
func (b *Bot) SendMessageToUser(ctx context.Context, userID int64, text string) {
	common.SendText(ctx, b.api, userID, text)
	log.WithField("user_id", userID).Debug("message sent")
}
