package test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/logic"
	"social_osint/server"
	"social_osint/shared"
	"social_osint/test/mocks"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serverHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockAnalyzer *mocks.MockIAnalyzer
	mockAdmin    *mocks.MockICacheAdmin
	mockReports  *mocks.MockIReportWriter
	mockMetrics  *mocks.MockIMetrics
	cache        dal.ICacheStore
}

func setupServerTest(t *testing.T) (*gomock.Controller, *serverHarness, *mux.Router) {

	ctrl := gomock.NewController(t)

	h := &serverHarness{
		cfg:          TempConfig(t),
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockAnalyzer: mocks.NewMockIAnalyzer(ctrl),
		mockAdmin:    mocks.NewMockICacheAdmin(ctrl),
		mockReports:  mocks.NewMockIReportWriter(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}
	h.cfg.Secrets.ApiKeys = []string{"key-one", "key-two"}
	h.cfg.Secrets.MetricsAuth = "scrape"
	h.cfg.Secrets.TwitterBearerToken = "tok"
	h.cfg.Secrets.RedditClientId = ""
	h.cfg.AllowAnonymousBluesky = false
	DummyLogger(h.mockLogger)
	DummyMetrics(h.mockMetrics)
	h.cache = dal.NewCacheStore(h.cfg, h.mockLogger)

	groups := []server.IHandlerGroup{
		server.NewApiHandlerGroup(h.cfg, h.mockLogger, h.mockAnalyzer, h.mockAdmin, h.mockReports),
		server.NewMetricsHandlerGroup(h.cfg, h.mockLogger, h.cache),
	}
	return ctrl, h, server.NewMux(groups, h.mockLogger, h.mockMetrics)
}

func serve(router http.Handler, method, path, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if apiKey != "" {
		req.Header.Set("X-API-KEY", apiKey)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type errorBody struct {
	Error    string              `json:"error"`
	Status   int                 `json:"status"`
	Failures []dto.TargetFailure `json:"failures"`
}

func TestApiRequiresKey(t *testing.T) {
	ctrl, _, router := setupServerTest(t)
	defer ctrl.Finish()

	rr := serve(router, "GET", "/api/platforms", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = serve(router, "GET", "/api/platforms", "key-three", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(router, "GET", "/api/platforms", "key-two", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", rr.Header().Get("Cache-Control"))
	var resp dto.PlatformsResponse
	assert.Nil(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{"hackernews", "mastodon", "twitter"}, resp.Platforms)
}

func TestApiAnalyze(t *testing.T) {
	ctrl, h, router := setupServerTest(t)
	defer ctrl.Finish()

	res := &logic.AnalysisResult{
		RunId:    "run-9",
		Header:   "# Report",
		Body:     "Findings",
		Failures: []dto.TargetFailure{{Platform: "hackernews", Identity: "ghost", Reason: "User Not Found"}},
	}
	h.mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *logic.AnalysisRequest) (*logic.AnalysisResult, error) {
			assert.Equal(t, "Who is this?", req.Query)
			assert.Equal(t, map[string][]string{"twitter": {"jack"}, "hackernews": {"ghost"}}, req.Targets)
			assert.Equal(t, 12, req.Counts["twitter:jack"])
			return res, nil
		})
	h.mockReports.EXPECT().Save(res, shared.FormatMarkdown).Return("/out/report.md", nil)

	body := `{"platforms": {"twitter": "jack", "hackernews": ["ghost"]}, "query": "Who is this?",
		"fetch_options": {"targets": {"twitter:jack": {"count": 12}}}}`
	rr := serve(router, "POST", "/api/analyze", "key-one", body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.AnalyzeResponse
	assert.Nil(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "run-9", resp.RunId)
	assert.Equal(t, "# Report\n\nFindings", resp.Report)
	assert.Equal(t, res.Failures, resp.Failures)
}

func TestApiAnalyzeOutlivesClient(t *testing.T) {
	ctrl, h, router := setupServerTest(t)
	defer ctrl.Finish()

	h.mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *logic.AnalysisRequest) (*logic.AnalysisResult, error) {
			assert.Nil(t, ctx.Err())
			return &logic.AnalysisResult{RunId: "run-1", Body: "Done"}, nil
		})
	h.mockReports.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()

	// The client has already gone away when the run starts
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(`{"platforms": {"twitter": "jack"}, "query": "q"}`))
	req = req.WithContext(ctx)
	req.Header.Set("X-API-KEY", "key-one")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestApiAnalyzeBadRequests(t *testing.T) {
	ctrl, _, router := setupServerTest(t)
	defer ctrl.Finish()

	rr := serve(router, "POST", "/api/analyze", "key-one", `{"platforms": `)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp errorBody
	assert.Nil(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Error, "Invalid JSON"))

	rr = serve(router, "POST", "/api/analyze", "key-one", `{"platforms": {"twitter": 5}, "query": "q"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(router, "POST", "/api/analyze", "key-one", `{"platforms": {"twitter": "jack"}, "query": ""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Reddit has no credentials in this setup
	rr = serve(router, "POST", "/api/analyze", "key-one", `{"platforms": {"reddit": "spez"}, "query": "q"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestApiAnalyzeFailures(t *testing.T) {
	ctrl, h, router := setupServerTest(t)
	defer ctrl.Finish()

	failed := &logic.AnalysisResult{Failures: []dto.TargetFailure{{Platform: "twitter", Identity: "jack", Reason: "Rate Limited"}}}
	h.mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(failed, logic.ErrNoData)
	rr := serve(router, "POST", "/api/analyze", "key-one", `{"platforms": {"twitter": "jack"}, "query": "q"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp errorBody
	assert.Nil(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 422, resp.Status)
	assert.Equal(t, failed.Failures, resp.Failures)

	h.mockAnalyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("LLM said no"))
	rr = serve(router, "POST", "/api/analyze", "key-one", `{"platforms": {"twitter": "jack"}, "query": "q"}`)
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "LLM said no")
}

func TestApiCache(t *testing.T) {
	ctrl, h, router := setupServerTest(t)
	defer ctrl.Finish()

	h.mockAdmin.EXPECT().Status().Return([]dto.CacheEntry{{FileName: "twitter_jack.json", Items: "3t"}})
	rr := serve(router, "GET", "/api/cache", "key-one", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var entries []dto.CacheEntry
	assert.Nil(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	assert.Equal(t, "3t", entries[0].Items)
}

func TestMetricsAuth(t *testing.T) {
	ctrl, _, router := setupServerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Bearer scrape")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestMetricsCacheGauges(t *testing.T) {
	ctrl, h, router := setupServerTest(t)
	defer ctrl.Finish()

	doc := dal.NewDocument(shared.Twitter).(*dal.TwitterDocument)
	doc.Tweets = []dal.Tweet{{Id: "2", CreatedAt: "2024-05-02T10:00:00.000Z"}, {Id: "1", CreatedAt: "2024-05-01T10:00:00.000Z"}}
	doc.MediaPaths = []string{"/media/a.jpg"}
	assert.Nil(t, h.cache.Save(shared.Target{Platform: shared.Twitter, Identity: "jack"}, doc))

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Bearer scrape")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `cached_targets{platform="twitter"} 1`)
	assert.Contains(t, body, `cached_fresh_targets{platform="twitter"} 1`)
	assert.Contains(t, body, `cached_items{platform="twitter"} 2`)
	assert.Contains(t, body, `cached_media_files{platform="twitter"} 1`)
	assert.Contains(t, body, `cached_targets{platform="reddit"} 0`)

	// The secret alone, without the bearer scheme, is not accepted
	req = httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "scrape")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestNotFound(t *testing.T) {
	ctrl, _, router := setupServerTest(t)
	defer ctrl.Finish()

	rr := serve(router, "GET", "/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
