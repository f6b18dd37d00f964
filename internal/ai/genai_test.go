package ai

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"beautive.app/telegram-bot/internal/common"
)

type fakeModels struct {
	text     string
	audio    *genai.Blob
	err      error
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	deadline bool
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content,
	config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	part := &genai.Part{Text: f.text}
	if f.audio != nil {
		part = &genai.Part{InlineData: f.audio}
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{part}},
		}},
	}, nil
}

func TestAnswer(t *testing.T) {
	models := &fakeModels{text: "  Olahraga ringan saat menstruasi aman.  "}
	client := newClient(models, "", "", time.Second)

	answer, err := client.Answer(context.Background(), "Bolehkah olahraga saat haid?")
	require.NoError(t, err)
	assert.Equal(t, "Olahraga ringan saat menstruasi aman.", answer)
	assert.True(t, models.deadline)
	require.Len(t, models.contents, 1)
	assert.Contains(t, models.contents[0].Parts[0].Text, "Pertanyaan: Bolehkah olahraga saat haid?")
	assert.NotNil(t, models.config.SystemInstruction)
}

func TestAnswerErrors(t *testing.T) {
	_, err := newClient(&fakeModels{}, "m", "", 0).Answer(context.Background(), "   ")
	require.ErrorIs(t, err, common.ErrEmptyQuestion)

	_, err = newClient(&fakeModels{text: ""}, "m", "", 0).Answer(context.Background(), "halo")
	require.ErrorIs(t, err, common.ErrEmptyResponse)

	boom := errors.New("quota exceeded")
	_, err = newClient(&fakeModels{err: boom}, "m", "", 0).Answer(context.Background(), "halo")
	require.ErrorIs(t, err, boom)
}

func TestCheckPosture(t *testing.T) {
	models := &fakeModels{text: `{"accuracyScore": 87.6, "feedback": "Luruskan punggung."}`}
	client := newClient(models, "m", "", 0)

	res, err := client.CheckPosture(context.Background(), []byte{0xff, 0xd8}, "image/jpeg", "Tree Pose")
	require.NoError(t, err)
	assert.Equal(t, PostureResult{Score: 88, Feedback: "Luruskan punggung."}, res)

	require.Len(t, models.contents, 1)
	parts := models.contents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "Tree Pose")
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
	assert.Equal(t, "application/json", models.config.ResponseMIMEType)
	assert.Equal(t, []string{"accuracyScore", "feedback"}, models.config.ResponseSchema.Required)
}

func TestParsePosture(t *testing.T) {
	res, err := ParsePosture("```json\n{\"accuracyScore\": 140, \"feedback\": \"Bagus\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)

	res, err = ParsePosture(`{"accuracyScore": -3, "feedback": "Coba lagi"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)

	res, err = ParsePosture(`{"accuracyScore": 1e300, "feedback": "Sempurna"}`)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)

	res, err = ParsePosture(`{"accuracyScore": -1e300, "feedback": "Coba lagi"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)

	_, err = ParsePosture(`{"accuracyScore": 50, "feedback": " "}`)
	require.ErrorIs(t, err, common.ErrEmptyResponse)

	_, err = ParsePosture("")
	require.ErrorIs(t, err, common.ErrEmptyResponse)

	_, err = ParsePosture("bukan json")
	require.Error(t, err)
}

func TestClampScore(t *testing.T) {
	cases := map[float64]int{
		0:             0,
		49.5:          50,
		99.6:          100,
		100.4:         100,
		math.Inf(1):   100,
		math.Inf(-1):  0,
		math.MaxInt64: 100,
		-0.4:          0,
	}
	for in, want := range cases {
		assert.Equal(t, want, clampScore(in), in)
	}
	assert.Equal(t, 0, clampScore(math.NaN()))
}

func TestNewGenAIClientRequiresKey(t *testing.T) {
	_, err := NewGenAIClient(context.Background(), "", "m", "", 0)
	require.ErrorIs(t, err, common.ErrAIDisabled)
}
