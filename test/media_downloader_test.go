package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"social_osint/logic"
	"social_osint/shared"
	"social_osint/test/mocks"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type downloaderHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockUA      *mocks.MockIUserAgent
	mockMetrics *mocks.MockIMetrics
	srv         *httptest.Server
	hits        atomic.Int32
	lastAuth    atomic.Value
}

func setupDownloaderTest(t *testing.T) (*gomock.Controller, *downloaderHarness, logic.IMediaDownloader) {

	ctrl := gomock.NewController(t)

	h := &downloaderHarness{
		cfg:         TempConfig(t),
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockUA:      mocks.NewMockIUserAgent(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
	}
	DummyLogger(h.mockLogger)
	DummyMetrics(h.mockMetrics)
	h.mockUA.EXPECT().AddUserAgent(gomock.Any()).Do(func(req *http.Request) {
		req.Header.Set("User-Agent", "social-osint-test")
	}).AnyTimes()

	h.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.hits.Add(1)
		h.lastAuth.Store(r.Header.Get("Authorization"))
		switch {
		case strings.HasPrefix(r.URL.Path, "/img"):
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("\x89PNG fake"))
		case r.URL.Path == "/video":
			w.Header().Set("Content-Type", "video/mp4; codecs=avc1")
			_, _ = w.Write([]byte("mp4"))
		case r.URL.Path == "/page":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		case r.URL.Path == "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(h.srv.Close)

	md := logic.NewMediaDownloader(h.cfg, h.mockLogger, h.mockUA, h.mockMetrics)
	return ctrl, h, md
}

func TestDownloadStoresByContentType(t *testing.T) {
	ctrl, h, md := setupDownloaderTest(t)
	defer ctrl.Finish()

	path, err := md.Download(context.Background(), shared.Twitter, h.srv.URL+"/img/1", "tok")
	assert.Nil(t, err)
	assert.Equal(t, h.cfg.MediaDir(), filepath.Dir(path))
	assert.Equal(t, ".png", filepath.Ext(path))
	assert.Equal(t, "Bearer tok", h.lastAuth.Load())
	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "\x89PNG fake", string(data))

	// Second time around it comes from disk
	again, err := md.Download(context.Background(), shared.Twitter, h.srv.URL+"/img/1", "tok")
	assert.Nil(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), h.hits.Load())

	video, err := md.Download(context.Background(), shared.Reddit, h.srv.URL+"/video", "")
	assert.Nil(t, err)
	assert.Equal(t, ".mp4", filepath.Ext(video))
	assert.Equal(t, "", h.lastAuth.Load())
	assert.NotEqual(t, filepath.Base(path[:len(path)-4]), filepath.Base(video[:len(video)-4]))
}

func TestDownloadUnavailable(t *testing.T) {
	ctrl, h, md := setupDownloaderTest(t)
	defer ctrl.Finish()

	path, err := md.Download(context.Background(), shared.Bluesky, h.srv.URL+"/page", "")
	assert.Nil(t, err)
	assert.Equal(t, "", path)

	path, err = md.Download(context.Background(), shared.Bluesky, h.srv.URL+"/gone", "")
	assert.Nil(t, err)
	assert.Equal(t, "", path)

	path, err = md.Download(context.Background(), shared.Bluesky, "http://127.0.0.1:1/unreachable", "")
	assert.Nil(t, err)
	assert.Equal(t, "", path)

	entries, _ := os.ReadDir(h.cfg.MediaDir())
	assert.Equal(t, 0, len(entries))
}

func TestDownloadRateLimited(t *testing.T) {
	ctrl, h, md := setupDownloaderTest(t)
	defer ctrl.Finish()

	path, err := md.Download(context.Background(), shared.Mastodon, h.srv.URL+"/limited", "")
	assert.Equal(t, "", path)
	assert.True(t, shared.IsRateLimit(err))
}

func TestDownloadOffline(t *testing.T) {
	ctrl, h, md := setupDownloaderTest(t)
	defer ctrl.Finish()

	cached, err := md.Download(context.Background(), shared.Twitter, h.srv.URL+"/img/2", "")
	assert.Nil(t, err)

	h.cfg.Offline = true
	path, err := md.Download(context.Background(), shared.Twitter, h.srv.URL+"/img/2", "")
	assert.Nil(t, err)
	assert.Equal(t, cached, path)

	path, err = md.Download(context.Background(), shared.Twitter, h.srv.URL+"/img/3", "")
	assert.Nil(t, err)
	assert.Equal(t, "", path)
	assert.Equal(t, int32(1), h.hits.Load())
}
