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

type twitterHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockMetrics    *mocks.MockIMetrics
	mockApi        *mocks.MockITwitterApi
	mockDownloader *mocks.MockIMediaDownloader
	mockSummarizer *mocks.MockISummarizer
	cache          dal.ICacheStore
}

func setupTwitterTest(t *testing.T) (*gomock.Controller, *twitterHarness, logic.IFetcher) {

	ctrl := gomock.NewController(t)

	h := &twitterHarness{
		cfg:            TempConfig(t),
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockApi:        mocks.NewMockITwitterApi(ctrl),
		mockDownloader: mocks.NewMockIMediaDownloader(ctrl),
		mockSummarizer: mocks.NewMockISummarizer(ctrl),
	}
	DummyLogger(h.mockLogger)
	DummyMetrics(h.mockMetrics)
	h.cache = dal.NewCacheStore(h.cfg, h.mockLogger)
	h.mockApi.EXPECT().BearerToken().Return("bearer").AnyTimes()

	fetcher := logic.NewTwitterFetcher(h.cfg, h.mockLogger, h.cache, h.mockMetrics, h.mockApi,
		h.mockDownloader, h.mockSummarizer)
	return ctrl, h, fetcher
}

func TestTwitterFetchWithMedia(t *testing.T) {
	ctrl, h, fetcher := setupTwitterTest(t)
	defer ctrl.Finish()

	user := &dto.TwitterUser{Id: "12", Username: "jack", Name: "Jack"}
	photoUrl := "https://pbs.twimg.com/media/abc.jpg"
	localPath := filepath.Join(h.cfg.MediaDir(), "abc.jpg")

	h.mockApi.EXPECT().GetUser(gomock.Any(), "jack").Return(user, nil)
	h.mockApi.EXPECT().GetUserTweets(gomock.Any(), "12", remote.TweetsQuery{MaxResults: 5}).
		Return(&dto.TwitterTweetsResp{
			Data: []dto.TwitterTweet{
				{
					Id: "102", Text: "Replying with a photo", CreatedAt: "2024-05-02T10:00:00.000Z",
					InReplyToUserId: "34",
					Attachments:     &dto.TwitterAttachments{MediaKeys: []string{"3_1"}},
				},
				{
					Id: "101", Text: "Quoting", CreatedAt: "2024-05-01T10:00:00.000Z",
					ReferencedTweets: []dto.TwitterRefTweet{{Type: "quoted", Id: "55"}},
					Attachments:      &dto.TwitterAttachments{MediaKeys: []string{"3_1", "3_missing"}},
				},
			},
			Includes: dto.TwitterIncludes{
				Media:  []dto.TwitterMedia{{MediaKey: "3_1", Type: "photo", Url: photoUrl}},
				Users:  []dto.TwitterUser{{Id: "34", Username: "biz"}, {Id: "56", Username: "ev"}},
				Tweets: []dto.TwitterTweet{{Id: "55", AuthorId: "56"}},
			},
		}, nil)

	// The same file is described once even though two tweets share it
	h.mockDownloader.EXPECT().Download(gomock.Any(), shared.Twitter, photoUrl, "bearer").
		Return(localPath, nil).Times(2)
	h.mockSummarizer.EXPECT().DescribeImage(gomock.Any(), localPath, photoUrl,
		gomock.Cond(CheckStartsWith("Twitter user @jack's tweet"))).Return("A cat.", nil).Times(1)

	doc, err := fetcher.Fetch(context.Background(), "jack", false, 5)
	assert.Nil(t, err)
	tdoc := doc.(*dal.TwitterDocument)
	assert.Equal(t, 2, len(tdoc.Tweets))
	assert.Equal(t, "jack", tdoc.UserInfo.Username)

	reply := tdoc.Tweets[0]
	assert.Equal(t, "102", reply.Id)
	assert.Equal(t, "biz", reply.RepliedToUserInfo.Username)
	assert.Equal(t, 1, len(reply.Media))
	assert.Equal(t, localPath, reply.Media[0].LocalPath)
	assert.Equal(t, "A cat.", *reply.Media[0].Analysis)

	quote := tdoc.Tweets[1]
	assert.Equal(t, "ev", quote.QuotedTweetInfo.Author.Username)
	assert.Equal(t, 1, len(quote.Media))
	assert.Equal(t, "A cat.", *quote.Media[0].Analysis)

	assert.Equal(t, []string{"A cat."}, tdoc.MediaAnalysis)
	assert.Equal(t, []string{localPath}, tdoc.MediaPaths)
	assert.Equal(t, 1, tdoc.Stats.ReplyTweetsCached)
	assert.Equal(t, 1, tdoc.Stats.QuoteTweetsCached)
}

func TestTwitterIncrementalUsesSinceId(t *testing.T) {
	ctrl, h, fetcher := setupTwitterTest(t)
	defer ctrl.Finish()

	target := shared.Target{Platform: shared.Twitter, Identity: "jack"}
	cached := dal.NewDocument(shared.Twitter).(*dal.TwitterDocument)
	cached.UserInfo = &dto.TwitterUser{Id: "12", Username: "jack"}
	cached.Tweets = []dal.Tweet{
		{Id: "90", CreatedAt: "2024-04-02T10:00:00.000Z"},
		{Id: "80", CreatedAt: "2024-04-01T10:00:00.000Z"},
	}
	assert.Nil(t, h.cache.Save(target, cached))

	// The cached profile is reused; only tweets newer than the newest cached one are asked for
	h.mockApi.EXPECT().GetUserTweets(gomock.Any(), "12", remote.TweetsQuery{MaxResults: 2, SinceId: "90"}).
		Return(&dto.TwitterTweetsResp{
			Data: []dto.TwitterTweet{
				{Id: "95", Text: "New", CreatedAt: "2024-04-03T10:00:00.000Z"},
				{Id: "90", Text: "Old", CreatedAt: "2024-04-02T10:00:00.000Z"},
			},
			Meta: dto.TwitterMeta{NextToken: "more"},
		}, nil)

	// The cache was just saved; make it stale
	h.cfg.CacheExpiryHours = 0

	doc, err := fetcher.Fetch(context.Background(), "jack", false, 2)
	assert.Nil(t, err)
	tdoc := doc.(*dal.TwitterDocument)
	assert.Equal(t, []string{"95", "90", "80"}, []string{tdoc.Tweets[0].Id, tdoc.Tweets[1].Id, tdoc.Tweets[2].Id})
	// Known tweets keep their cached content
	assert.Equal(t, "", tdoc.Tweets[1].Text)
}
