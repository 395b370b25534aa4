package test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/logic"
	"social_osint/shared"
	"social_osint/test/mocks"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type summarizerHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockTexts   *mocks.MockITexts
	mockLlm     *mocks.MockILlmClient
	mockMetrics *mocks.MockIMetrics
}

func setupSummarizerTest(t *testing.T) (*gomock.Controller, *summarizerHarness, logic.ISummarizer) {

	ctrl := gomock.NewController(t)

	h := &summarizerHarness{
		cfg:         TempConfig(t),
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockTexts:   mocks.NewMockITexts(ctrl),
		mockLlm:     mocks.NewMockILlmClient(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	h.cfg.Llm.TextModel = "text-model"
	h.cfg.Llm.ImageModel = "image-model"
	DummyLogger(h.mockLogger)
	DummyMetrics(h.mockMetrics)
	FakeTexts(h.mockTexts)

	s := logic.NewSummarizer(h.cfg, h.mockLogger, h.mockTexts, h.mockLlm, h.mockMetrics)
	return ctrl, h, s
}

func summarizerInputs() []logic.TargetData {
	doc := dal.NewDocument(shared.HackerNews).(*dal.HackerNewsDocument)
	doc.Items = []dal.HackerNewsItem{{ObjectId: "1", Type: dal.HnStory, Title: "Show HN: a compiler",
		Url: "https://example.com/c", CreatedAtI: 1_700_000_000}}
	doc.MediaAnalysis = []string{"A whiteboard full of diagrams."}
	doc.RecomputeStats()
	return []logic.TargetData{{Target: shared.Target{Platform: shared.HackerNews, Identity: "pg"}, Doc: doc}}
}

func TestSummarizeBuildsPrompt(t *testing.T) {
	ctrl, h, s := setupSummarizerTest(t)
	defer ctrl.Finish()

	var userPrompt string
	h.mockLlm.EXPECT().Complete(gomock.Any(), "text-model", gomock.Len(2), h.cfg.Llm.MaxTokens, h.cfg.Llm.Temperature).
		DoAndReturn(func(_ context.Context, _ string, messages []dto.ChatMessage, _ int, _ float64) (string, error) {
			assert.Equal(t, "system", messages[0].Role)
			userPrompt, _ = messages[1].Content.(string)
			return "Report body", nil
		})

	res, err := s.Summarize(context.Background(), "What do they build?", summarizerInputs())
	assert.Nil(t, err)
	assert.Equal(t, "Report body", res)
	assert.Contains(t, userPrompt, "What do they build?")
	assert.Contains(t, userPrompt, "## Consolidated Media Analysis:\n\nA whiteboard full of diagrams.")
	assert.Contains(t, userPrompt, "- **example.com:** 1 link(s)")
	assert.Contains(t, userPrompt, "### HackerNews Data Summary for: pg")
}

func TestSummarizeWithoutData(t *testing.T) {
	ctrl, _, s := setupSummarizerTest(t)
	defer ctrl.Finish()

	res, err := s.Summarize(context.Background(), "q", []logic.TargetData{{Target: shared.Target{}, Doc: nil}})
	assert.Nil(t, err)
	assert.Equal(t, "no_data.txt", res)
}

func TestSummarizeErrors(t *testing.T) {
	ctrl, h, s := setupSummarizerTest(t)
	defer ctrl.Finish()

	h.mockLlm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", shared.NewRateLimit("LLM"))
	_, err := s.Summarize(context.Background(), "q", summarizerInputs())
	assert.True(t, shared.IsRateLimit(err))

	h.mockLlm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bad gateway"))
	_, err = s.Summarize(context.Background(), "q", summarizerInputs())
	assert.NotNil(t, err)
	assert.False(t, shared.IsRateLimit(err))
}

func TestSummarizeTimesOut(t *testing.T) {
	ctrl, h, s := setupSummarizerTest(t)
	defer ctrl.Finish()
	h.cfg.Llm.TimeoutSec = 1

	h.mockLlm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []dto.ChatMessage, _ int, _ float64) (string, error) {
			<-ctx.Done()
			time.Sleep(100 * time.Millisecond)
			return "", ctx.Err()
		})

	start := time.Now()
	_, err := s.Summarize(context.Background(), "q", summarizerInputs())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func writeTestPng(t *testing.T, dir string) string {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	path := filepath.Join(dir, "red.png")
	f, err := os.Create(path)
	assert.Nil(t, err)
	assert.Nil(t, png.Encode(f, img))
	assert.Nil(t, f.Close())
	return path
}

func TestDescribeImage(t *testing.T) {
	ctrl, h, s := setupSummarizerTest(t)
	defer ctrl.Finish()

	path := writeTestPng(t, h.cfg.MediaDir())
	h.mockLlm.EXPECT().Complete(gomock.Any(), "image-model", gomock.Len(1), h.cfg.Llm.ImageMaxTokens, float64(-1)).
		DoAndReturn(func(_ context.Context, _ string, messages []dto.ChatMessage, _ int, _ float64) (string, error) {
			parts := messages[0].Content.([]dto.ContentPart)
			assert.Equal(t, 2, len(parts))
			assert.Contains(t, parts[0].Text, "Twitter user @jack's tweet")
			assert.True(t, strings.HasPrefix(parts[1].ImageUrl.Url, "data:image/jpeg;base64,"))
			return "  A red rectangle.  ", nil
		})

	res, err := s.DescribeImage(context.Background(), path, "https://pbs.twimg.com/red.png", "Twitter user @jack's tweet")
	assert.Nil(t, err)
	assert.Contains(t, res, "analysis\tA red rectangle.")
	assert.Contains(t, res, "url\thttps://pbs.twimg.com/red.png")

	// Not an image: nothing to describe, no LLM call
	res, err = s.DescribeImage(context.Background(), filepath.Join(h.cfg.MediaDir(), "clip.mp4"), "u", "o")
	assert.Nil(t, err)
	assert.Equal(t, "", res)

	// Offline: no LLM call either
	h.cfg.Offline = true
	res, err = s.DescribeImage(context.Background(), path, "u", "o")
	assert.Nil(t, err)
	assert.Equal(t, "", res)
}

func TestDescribeImageRateLimited(t *testing.T) {
	ctrl, h, s := setupSummarizerTest(t)
	defer ctrl.Finish()

	path := writeTestPng(t, h.cfg.MediaDir())
	h.mockLlm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", shared.NewRateLimit("LLM"))
	_, err := s.DescribeImage(context.Background(), path, "u", "o")
	assert.True(t, shared.IsRateLimit(err))
}
