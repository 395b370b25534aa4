package logic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"social_osint/dto"
	"social_osint/remote"
	"social_osint/shared"
	"social_osint/texts"
	"strings"
	"time"
)

const (
	llmKindImage = "image"
	llmKindText  = "text"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_summarizer.go -package mocks social_osint/logic ISummarizer

type ISummarizer interface {
	// DescribeImage returns a formatted description of a downloaded image, or "" if there is none.
	// The only error returned is a rate limit.
	DescribeImage(ctx context.Context, path, sourceUrl, origin string) (string, error)
	// Summarize asks the text model to answer query from the collected documents.
	Summarize(ctx context.Context, query string, inputs []TargetData) (string, error)
}

type summarizer struct {
	cfg     *shared.Config
	logger  shared.ILogger
	texts   texts.ITexts
	llm     remote.ILlmClient
	metrics IMetrics
	now     func() time.Time
}

func NewSummarizer(
	cfg *shared.Config,
	logger shared.ILogger,
	txt texts.ITexts,
	llm remote.ILlmClient,
	metrics IMetrics,
) ISummarizer {
	return &summarizer{
		cfg:     cfg,
		logger:  logger,
		texts:   txt,
		llm:     llm,
		metrics: metrics,
		now:     time.Now,
	}
}

func (s *summarizer) DescribeImage(ctx context.Context, path, sourceUrl, origin string) (string, error) {
	if s.cfg.Offline {
		s.logger.Infof("Offline: skipping image analysis for %s", path)
		return "", nil
	}
	if !isImagePath(path) {
		return "", nil
	}
	data, err := prepareImage(path, s.cfg.Llm.ImageMaxDim)
	if err != nil {
		s.logger.Errorf("Failed to prepare image %s: %v", path, err)
		return "", nil
	}
	prompt := s.texts.WithVals(texts.ImagePrompt, map[string]string{"context": origin})
	messages := []dto.ChatMessage{{
		Role: "user",
		Content: []dto.ContentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageUrl: &dto.ImageUrl{Url: jpegDataUrl(data), Detail: "high"}},
		},
	}}

	obs := s.metrics.StartLlmCall(llmKindImage)
	analysis, err := s.llm.Complete(ctx, s.cfg.Llm.ImageModel, messages, s.cfg.Llm.ImageMaxTokens, -1)
	obs.Finish()
	if err != nil {
		if shared.IsRateLimit(err) {
			return "", shared.NewRateLimit("LLM Image Analysis")
		}
		s.logger.Errorf("Image analysis failed for %s: %v", path, err)
		return "", nil
	}
	analysis = strings.TrimSpace(analysis)
	if analysis == "" {
		return "", nil
	}
	res := s.texts.WithVals(texts.ImageAnalysis, map[string]string{"url": sourceUrl, "analysis": analysis})
	return strings.TrimRight(res, "\n"), nil
}

type completion struct {
	text string
	err  error
}

func (s *summarizer) Summarize(ctx context.Context, query string, inputs []TargetData) (string, error) {
	var digests, analyses []string
	for _, td := range inputs {
		if td.Doc == nil {
			continue
		}
		if digest := formatDigest(td); digest != "" {
			digests = append(digests, digest)
		}
		for _, a := range td.Doc.Base().MediaAnalysis {
			if a != "" {
				analyses = append(analyses, a)
			}
		}
	}
	if len(digests) == 0 && len(analyses) == 0 {
		return strings.TrimSpace(s.texts.Get(texts.NoData)), nil
	}
	slices.Sort(analyses)
	analyses = slices.Compact(analyses)

	var components []string
	if len(analyses) != 0 {
		components = append(components, "## Consolidated Media Analysis:\n\n"+strings.Join(analyses, "\n\n"))
	}
	if domains := formatTopDomains(topDomains(inputs)); domains != "" {
		components = append(components, domains)
	}
	if len(digests) != 0 {
		components = append(components, "## Collected Textual & Activity Data Summary:\n\n"+strings.Join(digests, "\n\n---\n\n"))
	}

	nowStr := s.now().UTC().Format("2006-01-02 15:04:05 UTC")
	messages := []dto.ChatMessage{
		{Role: "system", Content: s.texts.WithVals(texts.SystemPrompt, map[string]string{"now": nowStr})},
		{Role: "user", Content: s.texts.WithVals(texts.UserPrompt, map[string]string{
			"query":      query,
			"components": strings.Join(components, "\n\n===\n\n"),
		})},
	}
	return s.complete(ctx, messages)
}

// complete runs the text completion in the background and waits for it at most the configured timeout.
func (s *summarizer) complete(ctx context.Context, messages []dto.ChatMessage) (string, error) {
	timeout := time.Duration(s.cfg.Llm.TimeoutSec) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resCh := make(chan completion, 1)
	obs := s.metrics.StartLlmCall(llmKindText)
	go func() {
		text, err := s.llm.Complete(callCtx, s.cfg.Llm.TextModel, messages, s.cfg.Llm.MaxTokens, s.cfg.Llm.Temperature)
		resCh <- completion{text, err}
	}()

	select {
	case res := <-resCh:
		obs.Finish()
		if res.err != nil {
			if shared.IsRateLimit(res.err) {
				return "", shared.NewRateLimit("LLM Analysis")
			}
			return "", fmt.Errorf("LLM analysis failed: %w", res.err)
		}
		return res.text, nil
	case <-callCtx.Done():
		obs.Finish()
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("LLM analysis timed out after %v", timeout)
		}
		return "", fmt.Errorf("LLM analysis cancelled: %w", callCtx.Err())
	}
}
