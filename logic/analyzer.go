package logic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/shared"
	"social_osint/texts"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	fallbackFetchCount = 50

	reasonUnsupported = "Unsupported platform"
	reasonRateLimited = "Rate Limited"
	reasonUnexpected  = "Unexpected Error"
	reasonNoData      = "No data (check offline/cache)"
)

var ErrNoData = errors.New("data collection failed for all targets")

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_analyzer.go -package mocks social_osint/logic IAnalyzer

type IAnalyzer interface {
	// Analyze collects every target and asks the LLM to answer the query.
	// On ErrNoData or a summarization error the result still lists the failed targets.
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error)
}

type AnalysisRequest struct {
	// Platform name to identities; names are validated per target so unknown ones are reported, not rejected.
	Targets      map[string][]string
	Query        string
	DefaultCount int
	// Counts overrides the fetch count per "platform:identity".
	Counts map[string]int
	Force  bool
	// Refresh forces a refresh of single "platform:identity" targets.
	Refresh map[string]bool
}

type AnalysisResult struct {
	RunId       string
	Query       string
	Platforms   []string
	GeneratedAt time.Time
	Mode        string
	Header      string
	Body        string
	Failures    []dto.TargetFailure
}

func (res *AnalysisResult) Report() string {
	return res.Header + "\n\n" + res.Body
}

// Metadata is what the JSON report carries besides the markdown body.
func (res *AnalysisResult) Metadata(cfg *shared.Config) map[string]any {
	return map[string]any{
		"query":       res.Query,
		"platforms":   res.Platforms,
		"targets":     strings.Join(res.Platforms, ", "),
		"generated":   res.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		"mode":        res.Mode,
		"text_model":  cfg.Llm.TextModel,
		"image_model": cfg.Llm.ImageModel,
		"run_id":      res.RunId,
	}
}

type analyzer struct {
	cfg        *shared.Config
	logger     shared.ILogger
	texts      texts.ITexts
	repo       dal.IRepo
	metrics    IMetrics
	summarizer ISummarizer
	fetchers   map[shared.Platform]IFetcher
	muRun      sync.Mutex
	now        func() time.Time
}

func NewAnalyzer(
	cfg *shared.Config,
	logger shared.ILogger,
	txt texts.ITexts,
	repo dal.IRepo,
	metrics IMetrics,
	summarizer ISummarizer,
	fetchers []IFetcher,
) IAnalyzer {
	res := analyzer{
		cfg:        cfg,
		logger:     logger,
		texts:      txt,
		repo:       repo,
		metrics:    metrics,
		summarizer: summarizer,
		fetchers:   map[shared.Platform]IFetcher{},
		now:        time.Now,
	}
	for _, f := range fetchers {
		res.fetchers[f.Platform()] = f
	}
	return &res
}

func (a *analyzer) mode() string {
	if a.cfg.Offline {
		return "Offline"
	}
	return "Online"
}

// limitFor resolves a target's count: its own override, then the request default, then the configured default.
func (a *analyzer) limitFor(req *AnalysisRequest, target shared.Target) int {
	if count := req.Counts[target.Key()]; count > 0 {
		return count
	}
	if req.DefaultCount > 0 {
		return req.DefaultCount
	}
	if a.cfg.DefaultFetchCount > 0 {
		return a.cfg.DefaultFetchCount
	}
	return fallbackFetchCount
}

func failureReason(err error) string {
	switch {
	case shared.IsRateLimit(err):
		return reasonRateLimited
	case shared.IsUserNotFound(err), shared.IsAccessForbidden(err):
		return err.Error()
	}
	return reasonUnexpected
}

func (a *analyzer) Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error) {

	a.muRun.Lock()
	defer a.muRun.Unlock()

	platforms := make([]string, 0, len(req.Targets))
	for name := range req.Targets {
		platforms = append(platforms, name)
	}
	slices.Sort(platforms)

	res := &AnalysisResult{
		RunId:     uuid.NewString(),
		Query:     req.Query,
		Platforms: platforms,
		Mode:      a.mode(),
		Failures:  []dto.TargetFailure{},
	}
	startedAt := a.now()
	run := &dal.AnalysisRun{
		Id:        res.RunId,
		StartedAt: startedAt,
		Query:     req.Query,
		Mode:      res.Mode,
		Status:    dal.RunStatusRunning,
	}
	if err := a.repo.AddRun(run); err != nil {
		a.logger.Errorf("Failed to record analysis run %s: %v", res.RunId, err)
	}
	a.logger.Infof("Starting analysis %s over %s", res.RunId, strings.Join(platforms, ", "))

	fail := func(platform, identity, reason string) {
		res.Failures = append(res.Failures, dto.TargetFailure{Platform: platform, Identity: identity, Reason: reason})
		a.metrics.TargetFailed(platform)
	}

	var collected []TargetData
	for _, name := range platforms {
		platform, ok := shared.ParsePlatform(name)
		fetcher := a.fetchers[platform]
		if !ok || fetcher == nil {
			fail(name, "all", reasonUnsupported)
			continue
		}
		for _, identity := range req.Targets[name] {
			if err := ctx.Err(); err != nil {
				a.logger.Warnf("Analysis %s stopped before fetching %s:%s: %v", res.RunId, name, identity, err)
				a.finishRun(res.RunId, dal.RunStatusFailed)
				return res, err
			}
			identity = shared.SanitizeIdentity(identity)
			if identity == "" {
				continue
			}
			target := shared.Target{Platform: platform, Identity: identity}
			doc, reason := a.collect(ctx, fetcher, req, target)
			a.recordOutcome(res.RunId, target, doc, reason)
			if reason != "" {
				fail(name, identity, reason)
				continue
			}
			collected = append(collected, TargetData{Target: target, Doc: doc})
		}
	}

	if len(collected) == 0 {
		a.finishRun(res.RunId, dal.RunStatusNoData)
		return res, ErrNoData
	}

	body, err := a.summarizer.Summarize(ctx, req.Query, collected)
	if err != nil {
		a.logger.Errorf("Analysis %s failed: %v", res.RunId, err)
		a.finishRun(res.RunId, dal.RunStatusFailed)
		return res, err
	}

	res.GeneratedAt = a.now().UTC()
	res.Header = strings.TrimRight(a.texts.WithVals(texts.ReportHeader, map[string]string{
		"query":       req.Query,
		"targets":     strings.Join(platforms, ", "),
		"generated":   res.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		"mode":        res.Mode,
		"text_model":  a.cfg.Llm.TextModel,
		"image_model": a.cfg.Llm.ImageModel,
	}), "\n")
	res.Body = body
	a.finishRun(res.RunId, dal.RunStatusCompleted)
	return res, nil
}

// collect fetches one target; reason is empty on success.
func (a *analyzer) collect(ctx context.Context, fetcher IFetcher, req *AnalysisRequest,
	target shared.Target) (dal.Document, string) {

	force := req.Force || req.Refresh[target.Key()]
	limit := a.limitFor(req, target)
	a.logger.Infof("Fetching %s (limit %d, force %v)", target, limit, force)

	doc, err := fetcher.Fetch(ctx, target.Identity, force, limit)
	if err != nil {
		if shared.IsRateLimit(err) {
			a.logger.Warnf("Rate limited while fetching %s: %v", target, err)
		} else if !shared.IsClassified(err) {
			a.logger.Errorf("Fetch failed for %s: %v", target, err)
		}
		return nil, failureReason(err)
	}
	if doc == nil {
		return nil, reasonNoData
	}
	return doc, ""
}

func (a *analyzer) recordOutcome(runId string, target shared.Target, doc dal.Document, reason string) {
	outcome := &dal.FetchOutcome{
		RunId:     runId,
		Platform:  string(target.Platform),
		Identity:  target.Identity,
		FetchedAt: a.now(),
		Failure:   reason,
	}
	if doc != nil {
		outcome.ItemCount = doc.ItemCount()
	}
	if err := a.repo.AddFetchOutcome(outcome); err != nil {
		a.logger.Errorf("Failed to record fetch outcome for %s: %v", target, err)
	}
}

func (a *analyzer) finishRun(runId, status string) {
	a.metrics.AnalysisFinished(status)
	if err := a.repo.FinishRun(runId, a.now(), status, ""); err != nil {
		a.logger.Errorf("Failed to finish analysis run %s: %v", runId, err)
	}
}

// RequestFromBatch validates a batch request against the platforms available in this session.
func RequestFromBatch(cfg *shared.Config, batch *dto.BatchRequest) (*AnalysisRequest, error) {
	query := strings.TrimSpace(batch.Query)
	if query == "" {
		return nil, fmt.Errorf("'query' must be a non-empty string")
	}
	req := &AnalysisRequest{
		Targets: map[string][]string{},
		Query:   query,
		Counts:  map[string]int{},
	}
	for name, identities := range batch.Platforms {
		platform, ok := shared.ParsePlatform(name)
		if !ok || !cfg.IsAvailable(platform) {
			continue
		}
		var valid []string
		for _, id := range identities {
			if id = strings.TrimSpace(id); id != "" {
				valid = append(valid, id)
			}
		}
		if len(valid) != 0 {
			req.Targets[string(platform)] = append(req.Targets[string(platform)], valid...)
		}
	}
	if len(req.Targets) == 0 {
		return nil, fmt.Errorf("no valid platforms or identities found in the request")
	}
	if opts := batch.FetchOptions; opts != nil {
		req.DefaultCount = opts.DefaultCount
		for key, opt := range opts.Targets {
			req.Counts[key] = opt.Count
		}
	}
	return req, nil
}
