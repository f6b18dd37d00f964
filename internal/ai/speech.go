// Package ai — speech.go: озвучка текста моделью синтеза речи Gemini.
package ai

import (
	"bytes"
	"context"
	"encoding/binary"
	"mime"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"beautive.app/telegram-bot/internal/common"
	"beautive.app/telegram-bot/internal/observability"
)

// narrationVoice — готовый голос модели.
const narrationVoice = "Algenib"

// Модель отдаёт сырой PCM: 16 бит, моно, 24 кГц.
const (
	defaultSampleRate = 24000
	pcmChannels       = 1
	pcmBitsPerSample  = 16
)

// Narrate озвучивает текст и возвращает WAV-файл.
func (c *GenAIClient) Narrate(ctx context.Context, text string) (wav []byte, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyNarration
	}
	defer func() { observability.RecordAIRequest(FlowNarration, err) }()

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: narrationVoice},
			},
		},
	}

	resp, err := c.call(ctx, FlowNarration, c.speechModel, contents, cfg)
	if err != nil {
		return nil, err
	}
	blob := audioBlob(resp)
	if blob == nil {
		return nil, common.ErrEmptyResponse
	}
	if bytes.HasPrefix(blob.Data, []byte("RIFF")) {
		return blob.Data, nil
	}
	return PCMToWAV(blob.Data, sampleRate(blob.MIMEType)), nil
}

// audioBlob — первая непустая аудиочасть ответа.
func audioBlob(resp *genai.GenerateContentResponse) *genai.Blob {
	if resp == nil {
		return nil
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData
			}
		}
	}
	return nil
}

// sampleRate достаёт частоту из "audio/L16;codec=pcm;rate=24000".
func sampleRate(mimeType string) int {
	_, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return defaultSampleRate
	}
	rate, err := strconv.Atoi(params["rate"])
	if err != nil || rate <= 0 {
		return defaultSampleRate
	}
	return rate
}

// PCMToWAV оборачивает 16-битный моно PCM в RIFF/WAVE-заголовок.
func PCMToWAV(pcm []byte, rate int) []byte {
	const headerSize = 44
	blockAlign := pcmChannels * pcmBitsPerSample / 8

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(pcm)))
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	_ = binary.Write(buf, le, uint32(headerSize-8+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, le, uint32(16)) // размер fmt-чанка
	_ = binary.Write(buf, le, uint16(1))  // PCM
	_ = binary.Write(buf, le, uint16(pcmChannels))
	_ = binary.Write(buf, le, uint32(rate))
	_ = binary.Write(buf, le, uint32(rate*blockAlign))
	_ = binary.Write(buf, le, uint16(blockAlign))
	_ = binary.Write(buf, le, uint16(pcmBitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, le, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}
