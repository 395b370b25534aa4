package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"social_osint/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks social_osint/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApiRequestOut(platform string) IRequestObserver
	StartLlmCall(kind string) IRequestObserver
	FetchPlanned(platform, plan string)
	ItemsMerged(platform string, newItems int)
	MediaDownloaded(platform, outcome string)
	AnalysisFinished(status string)
	TargetFailed(platform string)
	ServiceStarted()
	// WriteTextfile exports all metrics in the Prometheus text format.
	WriteTextfile(fileName string) error
}

type IRequestObserver interface {
	Finish()
}

const (
	PlanOffline     = "offline"
	PlanFresh       = "fresh"
	PlanIncremental = "incremental"
	PlanBackfill    = "backfill"
	PlanForce       = "force"
)

type metrics struct {
	cfg              *shared.Config
	webRequestsIn    *prometheus.HistogramVec
	apiRequestsOut   *prometheus.HistogramVec
	llmCalls         *prometheus.HistogramVec
	fetchPlans       *prometheus.CounterVec
	itemsMerged      *prometheus.CounterVec
	mediaDownloads   *prometheus.CounterVec
	analysesFinished *prometheus.CounterVec
	targetsFailed    *prometheus.CounterVec
	serviceStarted   prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of HTTP API requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.apiRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "platform_requests_out_duration",
		Help: "Duration in seconds of platform API requests made.",
	}, []string{"platform"})
	prometheus.Register(res.apiRequestsOut)

	res.llmCalls = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "llm_calls_duration",
		Help:    "Duration in seconds of LLM completion calls.",
		Buckets: []float64{1, 2, 5, 10, 20, 40, 80, 160},
	}, []string{"kind"})
	prometheus.Register(res.llmCalls)

	res.fetchPlans = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_plans",
		Help: "Number of target fetches by chosen plan",
	}, []string{"platform", "plan"})
	prometheus.Register(res.fetchPlans)

	res.itemsMerged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "new_items_merged",
		Help: "Number of newly fetched items merged into the cache",
	}, []string{"platform"})
	prometheus.Register(res.itemsMerged)

	res.mediaDownloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "media_downloads",
		Help: "Media download attempts by outcome",
	}, []string{"platform", "outcome"})
	prometheus.Register(res.mediaDownloads)

	res.analysesFinished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analyses_finished",
		Help: "Number of analysis runs by final status",
	}, []string{"status"})
	prometheus.Register(res.analysesFinished)

	res.targetsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "targets_failed",
		Help: "Number of targets that yielded no data",
	}, []string{"platform"})
	prometheus.Register(res.targetsFailed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApiRequestOut(platform string) IRequestObserver {
	return &requestObserver{platform, time.Now(), m.apiRequestsOut}
}

func (m *metrics) StartLlmCall(kind string) IRequestObserver {
	return &requestObserver{kind, time.Now(), m.llmCalls}
}

func (m *metrics) FetchPlanned(platform, plan string) {
	m.fetchPlans.WithLabelValues(platform, plan).Add(1)
}

func (m *metrics) ItemsMerged(platform string, newItems int) {
	m.itemsMerged.WithLabelValues(platform).Add(float64(newItems))
}

func (m *metrics) MediaDownloaded(platform, outcome string) {
	m.mediaDownloads.WithLabelValues(platform, outcome).Add(1)
}

func (m *metrics) AnalysisFinished(status string) {
	m.analysesFinished.WithLabelValues(status).Add(1)
}

func (m *metrics) TargetFailed(platform string) {
	m.targetsFailed.WithLabelValues(platform).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) WriteTextfile(fileName string) error {
	return prometheus.WriteToTextfile(fileName, prometheus.DefaultGatherer)
}
