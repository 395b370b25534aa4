package server

import (
	"net/http"
	"social_osint/dal"
	"social_osint/shared"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cachedTargetsDesc = prometheus.NewDesc("cached_targets",
		"Number of targets with a readable cache file.", []string{"platform"}, nil)
	freshTargetsDesc = prometheus.NewDesc("cached_fresh_targets",
		"Number of cached targets younger than the cache expiry.", []string{"platform"}, nil)
	cachedItemsDesc = prometheus.NewDesc("cached_items",
		"Number of items held in cache files.", []string{"platform"}, nil)
	cachedMediaDesc = prometheus.NewDesc("cached_media_files",
		"Number of downloaded media files referenced from cache files.", []string{"platform"}, nil)
)

// cacheCollector reports the state of the cache directory at scrape time.
type cacheCollector struct {
	cfg   *shared.Config
	cache dal.ICacheStore
	now   func() time.Time
}

func (cc *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cachedTargetsDesc
	ch <- freshTargetsDesc
	ch <- cachedItemsDesc
	ch <- cachedMediaDesc
}

func (cc *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	type tally struct{ targets, fresh, items, media int }
	byPlatform := map[shared.Platform]*tally{}
	for _, p := range shared.AllPlatforms {
		byPlatform[p] = &tally{}
	}
	now := cc.now()
	for _, cf := range cc.cache.List() {
		t, ok := byPlatform[cf.Platform]
		if !ok {
			continue
		}
		base := cf.Doc.Base()
		t.targets++
		t.items += cf.Doc.ItemCount()
		t.media += len(base.MediaPaths)
		if base.IsFresh(now, cc.cfg.CacheExpiry()) {
			t.fresh++
		}
	}
	for p, t := range byPlatform {
		ch <- prometheus.MustNewConstMetric(cachedTargetsDesc, prometheus.GaugeValue, float64(t.targets), string(p))
		ch <- prometheus.MustNewConstMetric(freshTargetsDesc, prometheus.GaugeValue, float64(t.fresh), string(p))
		ch <- prometheus.MustNewConstMetric(cachedItemsDesc, prometheus.GaugeValue, float64(t.items), string(p))
		ch <- prometheus.MustNewConstMetric(cachedMediaDesc, prometheus.GaugeValue, float64(t.media), string(p))
	}
}

type metricsHandlerGroup struct {
	cfg             *shared.Config
	logger          shared.ILogger
	promHttpHandler http.Handler
}

// NewMetricsHandlerGroup serves the process metrics together with gauges read from the cache directory.
func NewMetricsHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	cache dal.ICacheStore,
) IHandlerGroup {
	reg := prometheus.NewRegistry()
	reg.MustRegister(&cacheCollector{cfg: cfg, cache: cache, now: time.Now})
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, reg}
	res := metricsHandlerGroup{
		cfg:             cfg,
		logger:          logger,
		promHttpHandler: promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}),
	}
	return &res
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/metrics", func(w http.ResponseWriter, r *http.Request) { hg.getMetrics(w, r) }},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

// authMW wants the configured secret as a bearer token; without one, metrics are not served at all.
func (hg *metricsHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authSecret, isBearer := strings.CutPrefix(r.Header.Get(metricsAuthHeader), "Bearer ")
		if !isBearer || authSecret == "" || authSecret != hg.cfg.Secrets.MetricsAuth {
			hg.logger.Warnf("Metrics scrape request with missing or invalid Authorization header")
			writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *metricsHandlerGroup) getMetrics(w http.ResponseWriter, r *http.Request) {
	hg.logger.Debugf("Handling metrics GET: %s", r.URL.Path)
	hg.promHttpHandler.ServeHTTP(w, r)
}
