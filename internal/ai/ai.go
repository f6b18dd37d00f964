// Package ai — клиенты ИИ-сценариев: ответы на вопросы (TIV-TALKS),
// оценка позы йоги по фото (TIV-CHECK) и озвучка инструкций (TIV-COACH).
// Модель — внешний сервис, здесь только промпты, вызов и разбор ответа.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"beautive.app/telegram-bot/internal/common"
)

// Названия сценариев для метрик.
const (
	FlowAnswer    = "answer"
	FlowPosture   = "posture"
	FlowNarration = "narration"
)

// Answerer отвечает на вопрос пользователя.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// PostureChecker оценивает позу на фото.
type PostureChecker interface {
	CheckPosture(ctx context.Context, image []byte, mimeType, pose string) (PostureResult, error)
}

// Narrator озвучивает текст. Возвращает WAV.
type Narrator interface {
	Narrate(ctx context.Context, text string) ([]byte, error)
}

// PostureResult — оценка позы.
type PostureResult struct {
	Score    int    // 0..100
	Feedback string // на индонезийском
}

const answerInstruction = `Anda adalah chatbot AI yang membantu, berempati, dan mendidik yang dirancang untuk menjawab pertanyaan dari remaja putri tentang olahraga, nutrisi, menstruasi, dan kesehatan mental. **Semua tanggapan Anda harus dalam Bahasa Indonesia.**`

const postureInstruction = `You are an expert yoga instructor. You will analyze the user's yoga posture based on a photo and provide a score and specific feedback. **All of your responses must be in Indonesian.**`

// AnswerPrompt — текст запроса для вопроса.
func AnswerPrompt(question string) string {
	return fmt.Sprintf("Pertanyaan: %s\n\nJawaban: ", strings.TrimSpace(question))
}

// PosturePrompt — текст запроса, который идёт вместе с фото.
func PosturePrompt(pose string) string {
	return fmt.Sprintf(`The user is attempting the following yoga pose: %s.

Analyze the user's posture from the attached photo.

Provide an accuracy score (0-100) and specific, actionable feedback on how to improve the posture. Focus on alignment, balance, and form.
The accuracy score should reflect how closely the user matches perfect form.
The feedback must be specific to what the photo shows.`, pose)
}

// postureResponse — JSON, который модель возвращает по схеме.
type postureResponse struct {
	AccuracyScore float64 `json:"accuracyScore"`
	Feedback      string  `json:"feedback"`
}

// ParsePosture разбирает JSON-ответ модели. Оценка округляется и зажимается в 0..100.
func ParsePosture(raw string) (PostureResult, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PostureResult{}, common.ErrEmptyResponse
	}
	// иногда модель оборачивает JSON в ```json ... ```
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var resp postureResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &resp); err != nil {
		return PostureResult{}, fmt.Errorf("ошибка разбора ответа модели: %w", err)
	}
	feedback := strings.TrimSpace(resp.Feedback)
	if feedback == "" {
		return PostureResult{}, common.ErrEmptyResponse
	}

	return PostureResult{Score: clampScore(resp.AccuracyScore), Feedback: feedback}, nil
}

// clampScore зажимает оценку в 0..100 до перевода в int: огромные float
// при конвертации дают неопределённое значение. NaN считаем нулём.
func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Round(math.Min(math.Max(score, 0), 100)))
}
