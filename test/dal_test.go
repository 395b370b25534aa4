package test

import (
	"os"
	"path/filepath"
	"social_osint/dal"
	"social_osint/shared"
	"social_osint/test/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupCacheStoreTest(t *testing.T) (*gomock.Controller, *shared.Config, dal.ICacheStore) {
	ctrl := gomock.NewController(t)
	cfg := TempConfig(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	DummyLogger(mockLogger)
	return ctrl, cfg, dal.NewCacheStore(cfg, mockLogger)
}

func writeCacheFile(t *testing.T, cfg *shared.Config, name, content string) {
	assert.Nil(t, os.WriteFile(filepath.Join(cfg.CacheDir(), name), []byte(content), 0644))
}

func TestCacheStoreRoundTrip(t *testing.T) {
	ctrl, cfg, cache := setupCacheStoreTest(t)
	defer ctrl.Finish()

	target := shared.Target{Platform: shared.Mastodon, Identity: "alice@mastodon.social"}
	assert.Equal(t, filepath.Join(cfg.CacheDir(), "mastodon_alice@mastodon.social.json"), cache.Path(target))

	_, found := cache.Load(target)
	assert.False(t, found)

	doc := dal.NewDocument(shared.Mastodon).(*dal.MastodonDocument)
	doc.Posts = []dal.MastodonPost{
		{Id: "1", CreatedAt: "2024-01-01T00:00:00Z"},
		{Id: "3", CreatedAt: "2024-03-01T00:00:00Z"},
		{Id: "2", CreatedAt: "not a date"},
	}
	doc.MediaPaths = []string{"b", "a", "b", ""}
	assert.Nil(t, cache.Save(target, doc))

	loaded, found := cache.Load(target)
	assert.True(t, found)
	mdoc := loaded.(*dal.MastodonDocument)
	// Newest first, unparsable dates last
	assert.Equal(t, []string{"3", "1", "2"}, []string{mdoc.Posts[0].Id, mdoc.Posts[1].Id, mdoc.Posts[2].Id})
	assert.Equal(t, []string{"a", "b"}, mdoc.MediaPaths)
	assert.Equal(t, []string{}, mdoc.MediaAnalysis)
	assert.Equal(t, 3, mdoc.Stats.TotalPostsCached)
	assert.True(t, mdoc.IsFresh(time.Now(), time.Hour))
}

func TestCacheStoreRejectsBadFiles(t *testing.T) {
	ctrl, cfg, cache := setupCacheStoreTest(t)
	defer ctrl.Finish()

	writeCacheFile(t, cfg, "twitter_broken.json", "{ not json")
	_, found := cache.Load(shared.Target{Platform: shared.Twitter, Identity: "broken"})
	assert.False(t, found)

	// Missing user_info
	writeCacheFile(t, cfg, "twitter_partial.json", `{"timestamp": "2024-01-01T00:00:00Z", "tweets": []}`)
	_, found = cache.Load(shared.Target{Platform: shared.Twitter, Identity: "partial"})
	assert.False(t, found)

	// Wrong shape
	writeCacheFile(t, cfg, "hackernews_odd.json", `{"items": "nope", "stats": {}}`)
	_, found = cache.Load(shared.Target{Platform: shared.HackerNews, Identity: "odd"})
	assert.False(t, found)
}

func TestCacheStoreStaleWithoutTimestamp(t *testing.T) {
	ctrl, cfg, cache := setupCacheStoreTest(t)
	defer ctrl.Finish()

	writeCacheFile(t, cfg, "bluesky_x.bsky.social.json", `{"timestamp": "yesterday", "posts": [], "stats": {}}`)
	doc, found := cache.Load(shared.Target{Platform: shared.Bluesky, Identity: "x.bsky.social"})
	assert.True(t, found)
	assert.False(t, doc.Base().IsFresh(time.Now(), 24*time.Hour))
}

func TestCacheStoreMigratesLegacyHackerNews(t *testing.T) {
	ctrl, cfg, cache := setupCacheStoreTest(t)
	defer ctrl.Finish()

	writeCacheFile(t, cfg, "hackernews_pg.json", `{
		"timestamp": "2024-01-01T00:00:00+00:00",
		"submissions": [{"objectID": "7", "type": "story", "created_at_i": 1700000000}],
		"stats": {}
	}`)
	doc, found := cache.Load(shared.Target{Platform: shared.HackerNews, Identity: "pg"})
	assert.True(t, found)
	items := doc.(*dal.HackerNewsDocument).Items
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "7", items[0].ObjectId)
}

func TestCacheStoreList(t *testing.T) {
	ctrl, cfg, cache := setupCacheStoreTest(t)
	defer ctrl.Finish()

	assert.Nil(t, cache.Save(shared.Target{Platform: shared.Reddit, Identity: "spez"}, dal.NewDocument(shared.Reddit)))
	assert.Nil(t, cache.Save(shared.Target{Platform: shared.Bluesky, Identity: "a.b"}, dal.NewDocument(shared.Bluesky)))
	writeCacheFile(t, cfg, "myspace_tom.json", `{}`)
	writeCacheFile(t, cfg, "reddit_bad.json", `[]`)
	writeCacheFile(t, cfg, "readme.md", `# hi`)

	files := cache.List()
	assert.Equal(t, 2, len(files))
	assert.Equal(t, "bluesky_a.b.json", files[0].FileName)
	assert.Equal(t, shared.Bluesky, files[0].Platform)
	assert.Equal(t, "a.b", files[0].Identity)
	assert.Equal(t, shared.Reddit, files[1].Platform)
}

func setupRepoTest(t *testing.T) (*gomock.Controller, dal.IRepo) {
	ctrl := gomock.NewController(t)
	cfg := TempConfig(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	DummyLogger(mockLogger)
	repo := dal.NewRepo(cfg, mockLogger)
	repo.InitUpdateDb()
	return ctrl, repo
}

func TestRepoRuns(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Nil(t, repo.AddRun(&dal.AnalysisRun{Id: "r1", StartedAt: started, Query: "q1", Mode: "Online",
		Status: dal.RunStatusRunning}))
	assert.Nil(t, repo.AddRun(&dal.AnalysisRun{Id: "r2", StartedAt: started.Add(time.Hour), Query: "q2",
		Mode: "Offline", Status: dal.RunStatusRunning}))
	assert.Nil(t, repo.FinishRun("r1", started.Add(time.Minute), dal.RunStatusCompleted, ""))
	assert.Nil(t, repo.SetReportPath("r1", "/out/r1.md"))

	runs, err := repo.GetRecentRuns(10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(runs))
	assert.Equal(t, "r2", runs[0].Id)
	assert.Nil(t, runs[0].FinishedAt)
	assert.Equal(t, dal.RunStatusRunning, runs[0].Status)
	assert.Equal(t, "r1", runs[1].Id)
	assert.Equal(t, dal.RunStatusCompleted, runs[1].Status)
	assert.Equal(t, "/out/r1.md", runs[1].ReportPath)
	assert.True(t, started.Add(time.Minute).Equal(*runs[1].FinishedAt))

	runs, err = repo.GetRecentRuns(1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(runs))
}

func TestRepoLastOutcomes(t *testing.T) {
	ctrl, repo := setupRepoTest(t)
	defer ctrl.Finish()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Nil(t, repo.AddRun(&dal.AnalysisRun{Id: "r1", StartedAt: at, Status: dal.RunStatusRunning}))
	assert.Nil(t, repo.AddFetchOutcome(&dal.FetchOutcome{RunId: "r1", Platform: "twitter", Identity: "jack",
		FetchedAt: at, ItemCount: 50}))
	assert.Nil(t, repo.AddFetchOutcome(&dal.FetchOutcome{RunId: "r1", Platform: "twitter", Identity: "jack",
		FetchedAt: at.Add(time.Hour), Failure: "Rate Limited"}))
	assert.Nil(t, repo.AddFetchOutcome(&dal.FetchOutcome{RunId: "r1", Platform: "hackernews", Identity: "pg",
		FetchedAt: at, ItemCount: 12}))

	outcomes, err := repo.GetLastOutcomes()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(outcomes))
	assert.Equal(t, "Rate Limited", outcomes["twitter:jack"].Failure)
	assert.Equal(t, 12, outcomes["hackernews:pg"].ItemCount)
	assert.Equal(t, "", outcomes["hackernews:pg"].Failure)
}
