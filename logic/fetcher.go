package logic

import (
	"context"
	"social_osint/dal"
	"social_osint/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_fetcher.go -package mocks social_osint/logic IFetcher

// IFetcher brings one platform's cached document for a target up to date.
// A nil document with a nil error means no data: the failure was logged and is not the caller's concern.
// Returned errors are always one of the classified per-target errors.
type IFetcher interface {
	Platform() shared.Platform
	Fetch(ctx context.Context, identity string, force bool, limit int) (dal.Document, error)
}

// fetchBase holds the steps every platform fetcher shares around its own network calls.
type fetchBase struct {
	platform shared.Platform
	cfg      *shared.Config
	logger   shared.ILogger
	cache    dal.ICacheStore
	metrics  IMetrics
	now      func() time.Time
}

func newFetchBase(platform shared.Platform, cfg *shared.Config, logger shared.ILogger,
	cache dal.ICacheStore, metrics IMetrics) fetchBase {
	return fetchBase{
		platform: platform,
		cfg:      cfg,
		logger:   logger,
		cache:    cache,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (fb *fetchBase) Platform() shared.Platform {
	return fb.platform
}

// begin loads the cache and decides whether the network is needed at all.
// When done is true, res is the document to return as is.
func (fb *fetchBase) begin(target shared.Target, force bool, limit int) (cached dal.Document, res dal.Document, done bool) {
	cached, found := fb.cache.Load(target)
	if !found {
		cached = nil
	}
	if fb.cache.IsOffline() {
		fb.metrics.FetchPlanned(string(fb.platform), PlanOffline)
		if cached != nil {
			fb.logger.Infof("Offline: using cached data for %s", target)
			return cached, cached, true
		}
		fb.logger.Warnf("Offline: no cache for %s, returning an empty document", target)
		skeleton := dal.NewDocument(fb.platform)
		skeleton.Base().Timestamp = shared.FormatInstant(fb.now())
		return nil, skeleton, true
	}
	if !force && cached != nil && cached.Base().IsFresh(fb.now(), fb.cfg.CacheExpiry()) && cached.ItemCount() >= limit {
		fb.metrics.FetchPlanned(string(fb.platform), PlanFresh)
		fb.logger.Infof("Using fresh cache for %s (%d items)", target, cached.ItemCount())
		return cached, cached, true
	}
	return cached, nil, false
}

// finish recomputes the derived fields and persists the document. A failed save is logged only.
func (fb *fetchBase) finish(target shared.Target, doc dal.Document) dal.Document {
	doc.Normalize(fb.cfg.MaxCacheItems * 2)
	doc.RecomputeStats()
	doc.Base().Timestamp = shared.FormatInstant(fb.now())
	if err := fb.cache.Save(target, doc); err != nil {
		fb.logger.Errorf("Failed to save cache for %s: %v", target, err)
	}
	return doc
}

// fail passes classified errors up; anything else is logged and turns into "no data".
func (fb *fetchBase) fail(target shared.Target, err error) error {
	if shared.IsClassified(err) {
		fb.logger.Warnf("Fetching %s failed: %v", target, err)
		return err
	}
	fb.logger.Errorf("Unexpected error fetching %s: %v", target, err)
	return nil
}

// observe times one platform API call.
func (fb *fetchBase) observe() IRequestObserver {
	return fb.metrics.StartApiRequestOut(string(fb.platform))
}

func (fb *fetchBase) planned(target shared.Target, plan string, limit, cached int) {
	fb.metrics.FetchPlanned(string(fb.platform), plan)
	fb.logger.Infof("Fetching %s: %s, limit %d, %d cached", target, plan, limit, cached)
}

func (fb *fetchBase) merged(target shared.Target, newItems, total int) {
	fb.metrics.ItemsMerged(string(fb.platform), newItems)
	fb.logger.Infof("Merged %d new item(s) for %s, %d in cache", newItems, target, total)
}
