// Package observability — метрики Prometheus для бота.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Статусы обращений к модели.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	commandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beautive_bot",
		Subsystem: "bot",
		Name:      "commands_total",
		Help:      "Number of routed bot commands by name.",
	}, []string{"command"})
	rateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beautive_bot",
		Subsystem: "bot",
		Name:      "rate_limited_total",
		Help:      "Number of updates dropped by the per-user rate limiter.",
	})
	aiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beautive_bot",
		Subsystem: "ai",
		Name:      "requests_total",
		Help:      "Number of generative model calls by flow and status.",
	}, []string{"flow", "status"})
	remindersSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "beautive_bot",
		Subsystem: "jobs",
		Name:      "streak_reminders_sent_total",
		Help:      "Number of streak reminders sent.",
	})
)

func init() {
	prometheus.MustRegister(commandsTotal, rateLimitedTotal, aiRequestsTotal, remindersSentTotal)
}

// RecordCommand учитывает обработанную команду.
func RecordCommand(command string) {
	commandsTotal.WithLabelValues(command).Inc()
}

// RecordRateLimited учитывает отброшенный апдейт.
func RecordRateLimited() {
	rateLimitedTotal.Inc()
}

// RecordAIRequest учитывает вызов модели; err == nil — успешный.
func RecordAIRequest(flow string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	aiRequestsTotal.WithLabelValues(flow, status).Inc()
}

// RecordReminderSent учитывает отправленное напоминание.
func RecordReminderSent() {
	remindersSentTotal.Inc()
}
