// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозитории, сервисы, обработчики,
// фильтры и собирает всё в один объект Bot.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mymmrac/telego"
	log "github.com/sirupsen/logrus"

	"beautive.app/telegram-bot/internal/ai"
	"beautive.app/telegram-bot/internal/bot"
	"beautive.app/telegram-bot/internal/bot/filters"
	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/config"
	"beautive.app/telegram-bot/internal/db/postgres"
	"beautive.app/telegram-bot/internal/features/coach"
	"beautive.app/telegram-bot/internal/features/cycle"
	"beautive.app/telegram-bot/internal/features/exercise"
	"beautive.app/telegram-bot/internal/features/habits"
	"beautive.app/telegram-bot/internal/features/members"
	"beautive.app/telegram-bot/internal/features/mood"
	"beautive.app/telegram-bot/internal/features/posture"
	"beautive.app/telegram-bot/internal/features/talks"
	"beautive.app/telegram-bot/internal/jobs"
	httptransport "beautive.app/telegram-bot/internal/transport/http"
)

// App содержит все компоненты приложения.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler // nil, если напоминания выключены
	Metrics   *http.Server    // nil, если METRICS_ADDRESS пустой
	DB        *pgxpool.Pool
	BotAPI    *telego.Bot
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Telegram Bot API ===
	var botOpts []telego.BotOption
	if cfg.AppEnv == "development" {
		botOpts = append(botOpts, telego.WithDefaultDebugLogger())
	}
	botAPI, err := telego.NewBot(cfg.TelegramBotToken, botOpts...)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка создания Telegram API: %w", err)
	}
	me, err := botAPI.GetMe(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка авторизации в Telegram: %w", err)
	}
	log.Infof("Авторизован как @%s", me.Username)

	// === 3. ИИ-клиент (опционально) ===
	var (
		answerer ai.Answerer
		checker  ai.PostureChecker
		narrator ai.Narrator
	)
	if cfg.AIEnabled() {
		client, err := ai.NewGenAIClient(ctx, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAISpeechModel, cfg.GenAITimeout)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("ошибка создания ИИ-клиента: %w", err)
		}
		answerer, checker, narrator = client, client, client
	} else {
		log.Warn("GENAI_API_KEY не задан: TIV-TALKS, TIV-CHECK и озвучка TIV-COACH выключены")
	}

	clock := common.NewClock(cfg.Location(), nil)

	// === 4. Репозитории ===
	memberRepo := members.NewRepository(pool)
	habitsRepo := habits.NewRepository(pool)
	exerciseRepo := exercise.NewRepository(pool)
	moodRepo := mood.NewRepository(pool)
	cycleRepo := cycle.NewRepository(pool)

	// === 5. Сервисы ===
	memberService := members.NewService(memberRepo)
	habitsService := habits.NewService(habitsRepo, clock)
	exerciseService := exercise.NewService(exerciseRepo, habitsRepo, clock, cfg.ReminderMinStreak)
	moodService := mood.NewService(moodRepo, clock)
	cycleService := cycle.NewService(cycleRepo, clock)

	// === 6. Обработчики ===
	handlers := bot.Handlers{
		Exercise: exercise.NewHandler(exerciseService, botAPI, cfg),
		Habits:   habits.NewHandler(habitsService, moodService, botAPI, cfg),
		Mood:     mood.NewHandler(moodService, botAPI),
		Cycle:    cycle.NewHandler(cycleService, botAPI),
		Talks:    talks.NewHandler(answerer, botAPI),
		Coach:    coach.NewHandler(narrator, botAPI, botAPI),
		Posture:  posture.NewHandler(checker, botAPI, &http.Client{Timeout: cfg.GenAITimeout}, botAPI, cfg.FeaturePostureEnabled),
	}

	// === 7. Собираем бота ===
	b := bot.New(botAPI, cfg, me.Username, memberService, handlers, filters.NewChatFilter())

	// === 8. Планировщик задач ===
	var scheduler *jobs.Scheduler
	if cfg.FeatureRemindersEnabled {
		scheduler = jobs.NewScheduler(cfg.Location(), cfg.ReminderSchedule, exerciseService, b.SendMessageToUser)
	}

	// === 9. Метрики ===
	var metrics *http.Server
	if cfg.MetricsAddress != "" {
		metrics = httptransport.NewServer(httptransport.DefaultServerConfig(cfg.MetricsAddress), httptransport.NewMux())
	}

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		Metrics:   metrics,
		DB:        pool,
		BotAPI:    botAPI,
	}, nil
}

// ServeMetrics блокируется, обслуживая /metrics. Без сервера сразу возвращает nil.
func (a *App) ServeMetrics() error {
	if a.Metrics == nil {
		return nil
	}
	log.WithField("address", a.Metrics.Addr).Info("HTTP-сервер метрик запущен")
	if err := a.Metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка сервера метрик: %w", err)
	}
	return nil
}

// Close освобождает ресурсы: сервер метрик и пул БД.
func (a *App) Close(ctx context.Context) {
	if a.Metrics != nil {
		if err := a.Metrics.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("Ошибка остановки сервера метрик")
		}
	}
	a.DB.Close()
}
