package test

import (
	"context"
	"path/filepath"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/logic"
	"social_osint/remote"
	"social_osint/shared"
	"social_osint/test/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mastodonHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockMetrics    *mocks.MockIMetrics
	mockDirectory  *mocks.MockIMastodonDirectory
	mockApi        *mocks.MockIMastodonApi
	mockDownloader *mocks.MockIMediaDownloader
	mockSummarizer *mocks.MockISummarizer
	cache          dal.ICacheStore
}

func setupMastodonTest(t *testing.T) (*gomock.Controller, *mastodonHarness, logic.IFetcher) {

	ctrl := gomock.NewController(t)

	h := &mastodonHarness{
		cfg:            TempConfig(t),
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockDirectory:  mocks.NewMockIMastodonDirectory(ctrl),
		mockApi:        mocks.NewMockIMastodonApi(ctrl),
		mockDownloader: mocks.NewMockIMediaDownloader(ctrl),
		mockSummarizer: mocks.NewMockISummarizer(ctrl),
	}
	DummyLogger(h.mockLogger)
	DummyMetrics(h.mockMetrics)
	h.cache = dal.NewCacheStore(h.cfg, h.mockLogger)
	h.mockDirectory.EXPECT().ClientFor("example.social").Return(h.mockApi).AnyTimes()

	fetcher := logic.NewMastodonFetcher(h.cfg, h.mockLogger, h.cache, h.mockMetrics, h.mockDirectory,
		h.mockDownloader, h.mockSummarizer)
	return ctrl, h, fetcher
}

func mastoStatus(id, createdAt, content string) dto.MastoStatus {
	return dto.MastoStatus{
		Id:         id,
		CreatedAt:  createdAt,
		Url:        "https://example.social/@alice/" + id,
		Content:    content,
		Visibility: "public",
	}
}

func TestMastodonPagesWithMaxIdThenSinceId(t *testing.T) {
	ctrl, h, fetcher := setupMastodonTest(t)
	defer ctrl.Finish()

	account := &dto.MastoAccount{Id: "109", Username: "alice", Acct: "alice", Note: "<p>Hello <b>there</b></p>"}
	imageUrl := "https://files.example.social/a.png"
	videoUrl := "https://files.example.social/b.mp4"
	imagePath := filepath.Join(h.cfg.MediaDir(), "a.png")
	videoPath := filepath.Join(h.cfg.MediaDir(), "b.mp4")

	withMedia := mastoStatus("30", "2024-05-03T10:00:00.000Z",
		`<p>See <a href="https://example.com/x">this</a> and <a href="https://example.social/@bob" class="u-url mention">@bob</a></p>`)
	withMedia.MediaAttachments = []dto.MastoMedia{
		{Id: "m1", Type: "image", Url: imageUrl, Description: "A cat"},
		{Id: "m2", Type: "video", Url: videoUrl},
	}
	withMedia.Mentions = []dto.MastoMention{{Acct: "bob"}}

	// Backfill: the next page starts below the oldest status seen
	h.mockApi.EXPECT().LookupAccount(gomock.Any(), "alice@example.social").Return(account, nil).Times(2)
	h.mockApi.EXPECT().GetStatuses(gomock.Any(), "109", remote.StatusesQuery{Limit: 3}).
		Return([]dto.MastoStatus{withMedia, mastoStatus("29", "2024-05-02T10:00:00.000Z", "two")}, nil)
	h.mockApi.EXPECT().GetStatuses(gomock.Any(), "109", remote.StatusesQuery{Limit: 1, MaxId: "29"}).
		Return([]dto.MastoStatus{mastoStatus("28", "2024-05-01T10:00:00.000Z", "one")}, nil)

	// Only images are described
	h.mockDownloader.EXPECT().Download(gomock.Any(), shared.Mastodon, imageUrl, "").Return(imagePath, nil)
	h.mockDownloader.EXPECT().Download(gomock.Any(), shared.Mastodon, videoUrl, "").Return(videoPath, nil)
	h.mockSummarizer.EXPECT().DescribeImage(gomock.Any(), imagePath, imageUrl,
		gomock.Cond(CheckStartsWith("Mastodon user alice@example.social's post"))).Return("A cat.", nil)

	doc, err := fetcher.Fetch(context.Background(), "alice@example.social", false, 3)
	assert.Nil(t, err)
	mdoc := doc.(*dal.MastodonDocument)
	assert.Equal(t, "Hello there", mdoc.UserInfo.NoteText)
	assert.Equal(t, 3, len(mdoc.Posts))
	post := mdoc.Posts[0]
	assert.Equal(t, "30", post.Id)
	assert.Equal(t, []string{"https://example.com/x"}, post.Links)
	assert.Equal(t, []string{"bob"}, post.Mentions)
	assert.Equal(t, 2, len(post.Media))
	assert.Equal(t, "A cat.", *post.Media[0].Analysis)
	assert.Nil(t, post.Media[1].Analysis)
	assert.Equal(t, videoPath, post.Media[1].LocalPath)

	// Incremental: only statuses newer than the newest cached one are asked for
	h.cfg.CacheExpiryHours = 0
	h.mockApi.EXPECT().GetStatuses(gomock.Any(), "109", remote.StatusesQuery{Limit: 3, SinceId: "30"}).
		Return([]dto.MastoStatus{mastoStatus("31", "2024-05-04T10:00:00.000Z", "new"), mastoStatus("30", "", "")}, nil)

	doc, err = fetcher.Fetch(context.Background(), "alice@example.social", false, 3)
	assert.Nil(t, err)
	mdoc = doc.(*dal.MastodonDocument)
	assert.Equal(t, []string{"31", "30", "29", "28"},
		[]string{mdoc.Posts[0].Id, mdoc.Posts[1].Id, mdoc.Posts[2].Id, mdoc.Posts[3].Id})
	// Known statuses keep their cached content
	assert.Equal(t, "A cat.", *mdoc.Posts[1].Media[0].Analysis)
}

func TestMastodonSinglePageFeed(t *testing.T) {
	ctrl, h, fetcher := setupMastodonTest(t)
	defer ctrl.Finish()

	// Without an instance token the directory serves the public RSS feed: the account ID is the acct
	// and there is nothing below the first page.
	acct := "alice@example.social"
	h.mockApi.EXPECT().LookupAccount(gomock.Any(), acct).Return(&dto.MastoAccount{Id: acct, Username: "alice", Acct: acct}, nil)
	h.mockApi.EXPECT().GetStatuses(gomock.Any(), acct, remote.StatusesQuery{Limit: 5}).
		Return([]dto.MastoStatus{
			mastoStatus("111222333444", "2024-01-01T10:00:00Z", "<p>Look at this</p>"),
			mastoStatus("99", "2023-12-31T10:00:00Z", "older"),
		}, nil)
	h.mockApi.EXPECT().GetStatuses(gomock.Any(), acct, remote.StatusesQuery{Limit: 3, MaxId: "99"}).Return(nil, nil)

	doc, err := fetcher.Fetch(context.Background(), acct, false, 5)
	assert.Nil(t, err)
	mdoc := doc.(*dal.MastodonDocument)
	assert.Equal(t, 2, len(mdoc.Posts))
	assert.Equal(t, "Look at this", mdoc.Posts[0].TextCleaned)
}

func TestMastodonInvalidIdentity(t *testing.T) {
	ctrl, _, fetcher := setupMastodonTest(t)
	defer ctrl.Finish()

	// No directory or API calls are expected
	for _, identity := range []string{"alice", "alice@", "@example.social", "alice@example@social"} {
		doc, err := fetcher.Fetch(context.Background(), identity, false, 5)
		assert.Nil(t, err, identity)
		assert.Nil(t, doc, identity)
	}
}
