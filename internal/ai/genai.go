// Package ai — genai.go: реализация сценариев поверх Gemini API.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/observability"
)

// generator — часть *genai.Models, которую мы вызываем. В тестах — заглушка.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Модели по умолчанию.
const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"
)

// GenAIClient реализует Answerer, PostureChecker и Narrator.
type GenAIClient struct {
	models      generator
	model       string
	speechModel string
	timeout     time.Duration
}

// NewGenAIClient создаёт клиент Gemini API.
// speechModel — модель синтеза речи для озвучки поз.
func NewGenAIClient(ctx context.Context, apiKey, model, speechModel string, timeout time.Duration) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, common.ErrAIDisabled
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента GenAI: %w", err)
	}
	return newClient(client.Models, model, speechModel, timeout), nil
}

func newClient(models generator, model, speechModel string, timeout time.Duration) *GenAIClient {
	if model == "" {
		model = DefaultModel
	}
	if speechModel == "" {
		speechModel = DefaultSpeechModel
	}
	return &GenAIClient{models: models, model: model, speechModel: speechModel, timeout: timeout}
}

// Answer отвечает на вопрос.
func (c *GenAIClient) Answer(ctx context.Context, question string) (answer string, err error) {
	if strings.TrimSpace(question) == "" {
		return "", common.ErrEmptyQuestion
	}
	defer func() { observability.RecordAIRequest(FlowAnswer, err) }()

	contents := []*genai.Content{genai.NewContentFromText(AnswerPrompt(question), genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(answerInstruction, genai.RoleUser),
	}

	text, err := c.generate(ctx, FlowAnswer, contents, cfg)
	if err != nil {
		return "", err
	}
	return text, nil
}

// CheckPosture оценивает позу pose на фото image.
func (c *GenAIClient) CheckPosture(ctx context.Context, image []byte, mimeType, pose string) (result PostureResult, err error) {
	defer func() { observability.RecordAIRequest(FlowPosture, err) }()

	parts := []*genai.Part{
		genai.NewPartFromText(PosturePrompt(pose)),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(postureInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    postureSchema,
	}

	text, err := c.generate(ctx, FlowPosture, contents, cfg)
	if err != nil {
		return PostureResult{}, err
	}
	return ParsePosture(text)
}

var postureSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"accuracyScore": {
			Type:        genai.TypeNumber,
			Description: "A score (0-100) representing the accuracy of the yoga posture.",
		},
		"feedback": {
			Type:        genai.TypeString,
			Description: "Specific feedback on how to improve the yoga posture, in Indonesian.",
		},
	},
	Required: []string{"accuracyScore", "feedback"},
}

func (c *GenAIClient) generate(ctx context.Context, flow string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := c.call(ctx, flow, c.model, contents, cfg)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", common.ErrEmptyResponse
	}
	return text, nil
}

// call выполняет запрос к модели с таймаутом клиента.
func (c *GenAIClient) call(ctx context.Context, flow, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к модели (%s): %w", flow, err)
	}

	log.WithFields(log.Fields{
		"flow":     flow,
		"model":    model,
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("Ответ модели получен")
	return resp, nil
}
