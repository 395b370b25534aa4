package logic

import (
	"fmt"
	"os"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/shared"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	PurgeAll     = "all"
	PurgeCache   = "cache"
	PurgeMedia   = "media"
	PurgeOutputs = "outputs"
)

var PurgeTargets = []string{PurgeAll, PurgeCache, PurgeMedia, PurgeOutputs}

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_cache_admin.go -package mocks social_osint/logic ICacheAdmin

type ICacheAdmin interface {
	Status() []dto.CacheEntry
	// Purge removes and recreates the data directories named by what.
	Purge(what string) error
}

type cacheAdmin struct {
	cfg    *shared.Config
	logger shared.ILogger
	cache  dal.ICacheStore
	repo   dal.IRepo
	now    func() time.Time
}

func NewCacheAdmin(cfg *shared.Config, logger shared.ILogger, cache dal.ICacheStore, repo dal.IRepo) ICacheAdmin {
	return &cacheAdmin{
		cfg:    cfg,
		logger: logger,
		cache:  cache,
		repo:   repo,
		now:    time.Now,
	}
}

func itemSummary(doc dal.Document) string {
	switch d := doc.(type) {
	case *dal.TwitterDocument:
		return fmt.Sprintf("%dt", len(d.Tweets))
	case *dal.RedditDocument:
		return fmt.Sprintf("%ds, %dc", len(d.Submissions), len(d.Comments))
	case *dal.BlueskyDocument:
		return fmt.Sprintf("%dp", len(d.Posts))
	case *dal.MastodonDocument:
		return fmt.Sprintf("%dp", len(d.Posts))
	case *dal.HackerNewsDocument:
		return fmt.Sprintf("%di", len(d.Items))
	}
	return "?"
}

func outcomeSummary(o *dal.FetchOutcome) string {
	if o == nil {
		return ""
	}
	if o.Failure != "" {
		return o.Failure
	}
	return fmt.Sprintf("ok, %s", humanize.Time(o.FetchedAt))
}

func (ca *cacheAdmin) Status() []dto.CacheEntry {
	outcomes, err := ca.repo.GetLastOutcomes()
	if err != nil {
		ca.logger.Errorf("Failed to read fetch history: %v", err)
		outcomes = map[string]*dal.FetchOutcome{}
	}
	res := []dto.CacheEntry{}
	for _, cf := range ca.cache.List() {
		base := cf.Doc.Base()
		entry := dto.CacheEntry{
			FileName:      cf.FileName,
			Platform:      string(cf.Platform),
			Identity:      cf.Identity,
			LastFetched:   base.Timestamp,
			Age:           "unknown",
			Items:         itemSummary(cf.Doc),
			MediaAnalyses: len(base.MediaAnalysis),
			MediaFiles:    len(base.MediaPaths),
			LastOutcome:   outcomeSummary(outcomes[string(cf.Platform)+":"+cf.Identity]),
		}
		if len(entry.LastFetched) > 19 {
			entry.LastFetched = entry.LastFetched[:19]
		}
		if fetchedAt := base.FetchedAt(); !fetchedAt.IsZero() {
			entry.Age = humanize.RelTime(fetchedAt, ca.now(), "ago", "from now")
		}
		res = append(res, entry)
	}
	return res
}

func (ca *cacheAdmin) Purge(what string) error {
	var dirs []string
	switch what {
	case PurgeAll:
		dirs = []string{ca.cfg.CacheDir(), ca.cfg.MediaDir(), ca.cfg.OutputsDir()}
	case PurgeCache:
		dirs = []string{ca.cfg.CacheDir()}
	case PurgeMedia:
		dirs = []string{ca.cfg.MediaDir()}
	case PurgeOutputs:
		dirs = []string{ca.cfg.OutputsDir()}
	default:
		return fmt.Errorf("unknown purge target '%s'", what)
	}
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to purge %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to recreate %s: %w", dir, err)
		}
		ca.logger.Infof("Purged %s", dir)
	}
	return nil
}
