package test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/logic"
	"social_osint/shared"
	"social_osint/test/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const hnUser = "pg"

type hnHarness struct {
	cfg         *shared.Config
	mockLogger  *mocks.MockILogger
	mockMetrics *mocks.MockIMetrics
	mockApi     *mocks.MockIHackerNewsApi
	cache       dal.ICacheStore
	target      shared.Target
}

func setupHackerNewsTest(t *testing.T) (*gomock.Controller, *hnHarness, logic.IFetcher) {

	ctrl := gomock.NewController(t)

	h := &hnHarness{
		cfg:         TempConfig(t),
		mockLogger:  mocks.NewMockILogger(ctrl),
		mockMetrics: mocks.NewMockIMetrics(ctrl),
		mockApi:     mocks.NewMockIHackerNewsApi(ctrl),
		target:      shared.Target{Platform: shared.HackerNews, Identity: hnUser},
	}
	DummyLogger(h.mockLogger)
	DummyMetrics(h.mockMetrics)
	h.cache = dal.NewCacheStore(h.cfg, h.mockLogger)

	fetcher := logic.NewHackerNewsFetcher(h.cfg, h.mockLogger, h.cache, h.mockMetrics, h.mockApi)
	return ctrl, h, fetcher
}

// Item i was created at 1_700_000_000 + i; higher numbers are newer.
func hnHit(i int) dto.HnHit {
	points := i
	return dto.HnHit{
		ObjectId:   fmt.Sprintf("%d", 1000+i),
		Tags:       []string{"story", "author_" + hnUser},
		Author:     hnUser,
		Title:      fmt.Sprintf("Story %d", i),
		Points:     &points,
		CreatedAtI: int64(1_700_000_000 + i),
	}
}

// hnHits returns items from newest down to oldest, inclusive.
func hnHits(newest, oldest int) []dto.HnHit {
	var res []dto.HnHit
	for i := newest; i >= oldest; i-- {
		res = append(res, hnHit(i))
	}
	return res
}

// writeHnCache stores items [0, count) with the given fetch time.
func (h *hnHarness) writeHnCache(t *testing.T, count int, fetchedAt time.Time) {
	doc := dal.NewDocument(shared.HackerNews).(*dal.HackerNewsDocument)
	for _, hit := range hnHits(count-1, 0) {
		doc.Items = append(doc.Items, dal.HackerNewsItem{
			ObjectId:   hit.ObjectId,
			Type:       dal.HnStory,
			Title:      hit.Title,
			CreatedAtI: hit.CreatedAtI,
			CreatedAt:  shared.FormatInstant(shared.InstantOf(hit.CreatedAtI)),
		})
	}
	doc.MediaAnalysis = []string{"earlier analysis"}
	doc.RecomputeStats()
	doc.Timestamp = shared.FormatInstant(fetchedAt)
	data, err := json.Marshal(doc)
	assert.Nil(t, err)
	assert.Nil(t, os.WriteFile(h.cache.Path(h.target), data, 0644))
}

func hnIds(doc dal.Document) []string {
	var res []string
	for _, item := range doc.(*dal.HackerNewsDocument).Items {
		res = append(res, item.ObjectId)
	}
	return res
}

func TestHackerNewsFreshCacheIsUsed(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	h.writeHnCache(t, 10, time.Now().Add(-time.Hour))

	doc, err := fetcher.Fetch(context.Background(), hnUser, false, 10)
	assert.Nil(t, err)
	assert.Equal(t, 10, doc.ItemCount())
}

// serveFeed answers searches the way Algolia does: page n holds hits [n*hitsPerPage, (n+1)*hitsPerPage).
// It returns the "hitsPerPage@page" of every call.
func (h *hnHarness) serveFeed(feed []dto.HnHit) *[]string {
	calls := []string{}
	h.mockApi.EXPECT().Search(gomock.Any(), hnUser, gomock.Any(), gomock.Any(), int64(0)).
		DoAndReturn(func(_ context.Context, _ string, hitsPerPage, page int, _ int64) (*dto.HnSearchResp, error) {
			calls = append(calls, fmt.Sprintf("%d@%d", hitsPerPage, page))
			start := min(page*hitsPerPage, len(feed))
			end := min(start+hitsPerPage, len(feed))
			return &dto.HnSearchResp{
				Hits:        feed[start:end],
				Page:        page,
				NbPages:     (len(feed) + hitsPerPage - 1) / hitsPerPage,
				HitsPerPage: hitsPerPage,
			}, nil
		}).AnyTimes()
	return &calls
}

func TestHackerNewsFreshCacheTooSmall(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	// The 10 cached items are the newest 10 of a 100 item feed
	h.writeHnCache(t, 10, time.Now().Add(-time.Hour))
	calls := h.serveFeed(hnHits(9, -90))

	doc, err := fetcher.Fetch(context.Background(), hnUser, false, 30)
	assert.Nil(t, err)
	assert.Equal(t, []string{"30@0"}, *calls)
	assert.Equal(t, 30, doc.ItemCount())
	ids := hnIds(doc)
	assert.Equal(t, "1009", ids[0])
	assert.Equal(t, "980", ids[29])
}

func TestHackerNewsBackfillKeepsPageSize(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	calls := h.serveFeed(hnHits(199, 0))

	doc, err := fetcher.Fetch(context.Background(), hnUser, false, 150)
	assert.Nil(t, err)
	assert.Equal(t, []string{"100@0", "100@1"}, *calls)
	assert.Equal(t, 150, doc.ItemCount())
	ids := hnIds(doc)
	assert.Equal(t, "1199", ids[0])
	assert.Equal(t, "1050", ids[149])
}

func TestHackerNewsForceKeepsPageSize(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	h.writeHnCache(t, 10, time.Now())
	calls := h.serveFeed(hnHits(9, -190))

	doc, err := fetcher.Fetch(context.Background(), hnUser, true, 120)
	assert.Nil(t, err)
	assert.Equal(t, []string{"100@0", "100@1"}, *calls)
	assert.Equal(t, 120, doc.ItemCount())
	assert.Equal(t, "890", hnIds(doc)[119])
}

func TestHackerNewsIncrementalStopsAtKnownItem(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	h.writeHnCache(t, 10, time.Now().Add(-48*time.Hour))

	newestCached := int64(1_700_000_000 + 9)
	h.mockApi.EXPECT().Search(gomock.Any(), hnUser, 10, 0, newestCached).
		Return(&dto.HnSearchResp{Hits: hnHits(12, 5), NbPages: 3}, nil)

	doc, err := fetcher.Fetch(context.Background(), hnUser, false, 10)
	assert.Nil(t, err)
	assert.Equal(t, 13, doc.ItemCount())
	assert.Equal(t, "1012", hnIds(doc)[0])
	assert.Equal(t, []string{"earlier analysis"}, doc.Base().MediaAnalysis)

	// The merged document was persisted and is fresh now
	reloaded, found := h.cache.Load(h.target)
	assert.True(t, found)
	assert.Equal(t, 13, reloaded.ItemCount())
	assert.True(t, reloaded.Base().IsFresh(time.Now(), h.cfg.CacheExpiry()))
}

func TestHackerNewsForceRefetchesKnownItems(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	h.writeHnCache(t, 10, time.Now())

	hits := hnHits(11, 7)
	points := 999
	hits[2].Points = &points // Item 9 gained points since the last fetch
	h.mockApi.EXPECT().Search(gomock.Any(), hnUser, 5, 0, int64(0)).
		Return(&dto.HnSearchResp{Hits: hits, NbPages: 1}, nil)

	doc, err := fetcher.Fetch(context.Background(), hnUser, true, 5)
	assert.Nil(t, err)
	assert.Equal(t, 12, doc.ItemCount())
	items := doc.(*dal.HackerNewsDocument).Items
	assert.Equal(t, "1009", items[2].ObjectId)
	assert.Equal(t, 999, items[2].Points)
}

func TestHackerNewsOffline(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()
	h.cfg.Offline = true

	// No cache: an empty skeleton, no network
	doc, err := fetcher.Fetch(context.Background(), hnUser, true, 10)
	assert.Nil(t, err)
	assert.NotNil(t, doc)
	assert.Equal(t, 0, doc.ItemCount())

	// Stale cache is still used offline
	h.writeHnCache(t, 4, time.Now().Add(-100*time.Hour))
	doc, err = fetcher.Fetch(context.Background(), hnUser, true, 10)
	assert.Nil(t, err)
	assert.Equal(t, 4, doc.ItemCount())
}

func TestHackerNewsErrors(t *testing.T) {
	ctrl, h, fetcher := setupHackerNewsTest(t)
	defer ctrl.Finish()

	h.mockApi.EXPECT().Search(gomock.Any(), hnUser, gomock.Any(), 0, int64(0)).
		Return(nil, shared.NewRateLimit("HackerNews"))
	doc, err := fetcher.Fetch(context.Background(), hnUser, false, 10)
	assert.Nil(t, doc)
	assert.True(t, shared.IsRateLimit(err))

	h.mockApi.EXPECT().Search(gomock.Any(), hnUser, gomock.Any(), 0, int64(0)).
		Return(nil, errors.New("connection reset"))
	doc, err = fetcher.Fetch(context.Background(), hnUser, false, 10)
	assert.Nil(t, doc)
	assert.Nil(t, err)

	// Nothing was written for the failed fetches
	_, found := h.cache.Load(h.target)
	assert.False(t, found)
}
