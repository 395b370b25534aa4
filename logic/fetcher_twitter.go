package logic

import (
	"context"
	"fmt"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/remote"
	"social_osint/shared"
)

type twitterFetcher struct {
	fetchBase
	api        remote.ITwitterApi
	downloader IMediaDownloader
	summarizer ISummarizer
}

func NewTwitterFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	cache dal.ICacheStore,
	metrics IMetrics,
	api remote.ITwitterApi,
	downloader IMediaDownloader,
	summarizer ISummarizer,
) IFetcher {
	return &twitterFetcher{
		fetchBase:  newFetchBase(shared.Twitter, cfg, logger, cache, metrics),
		api:        api,
		downloader: downloader,
		summarizer: summarizer,
	}
}

func (f *twitterFetcher) Fetch(ctx context.Context, identity string, force bool, limit int) (dal.Document, error) {
	target := shared.Target{Platform: shared.Twitter, Identity: identity}
	cached, res, done := f.begin(target, force, limit)
	if done {
		return res, nil
	}
	prev, _ := cached.(*dal.TwitterDocument)
	doc, err := f.update(ctx, target, prev, force, limit)
	if err != nil {
		return nil, f.fail(target, err)
	}
	return f.finish(target, doc), nil
}

// tweetIncludes accumulates the expansions of all pages fetched in a run.
type tweetIncludes struct {
	media  map[string]dto.TwitterMedia
	users  map[string]dal.UserRef
	tweets map[string]dto.TwitterTweet
}

func (ti *tweetIncludes) add(inc dto.TwitterIncludes) {
	for _, m := range inc.Media {
		ti.media[m.MediaKey] = m
	}
	for _, u := range inc.Users {
		ti.users[u.Id] = dal.UserRef{Id: u.Id, Username: u.Username, Name: u.Name}
	}
	for _, t := range inc.Tweets {
		ti.tweets[t.Id] = t
	}
}

func (f *twitterFetcher) update(ctx context.Context, target shared.Target, prev *dal.TwitterDocument,
	force bool, limit int) (*dal.TwitterDocument, error) {

	existing := prev
	if existing == nil {
		existing = dal.NewDocument(shared.Twitter).(*dal.TwitterDocument)
	}

	user := existing.UserInfo
	if user == nil || force {
		obs := f.observe()
		var err error
		user, err = f.api.GetUser(ctx, target.Identity)
		obs.Finish()
		if err != nil {
			return nil, err
		}
	}

	sinceId := ""
	if len(existing.Tweets) != 0 {
		sinceId = existing.Tweets[0].Id
	}
	incs := &tweetIncludes{
		media:  map[string]dto.TwitterMedia{},
		users:  map[string]dal.UserRef{},
		tweets: map[string]dto.TwitterTweet{},
	}
	raw := map[string]dto.TwitterTweet{}

	pg := newPager(existing.Tweets, limit, force, remote.TwitterMaxPage, f.cfg.Platforms.Twitter.MaxPages,
		func(ctx context.Context, req pageRequest) (itemPage[dal.Tweet], error) {
			q := remote.TweetsQuery{MaxResults: req.Size, PaginationToken: req.Cursor}
			if req.Incremental {
				q.SinceId = sinceId
			}
			obs := f.observe()
			resp, err := f.api.GetUserTweets(ctx, user.Id, q)
			obs.Finish()
			if err != nil {
				return itemPage[dal.Tweet]{}, err
			}
			incs.add(resp.Includes)
			res := itemPage[dal.Tweet]{Next: resp.Meta.NextToken}
			for _, t := range resp.Data {
				raw[t.Id] = t
				res.Items = append(res.Items, dal.Tweet{Id: t.Id, CreatedAt: t.CreatedAt})
			}
			return res, nil
		})
	f.planned(target, pg.plan(), limit, len(existing.Tweets))
	collected, err := pg.collect(ctx)
	if err != nil {
		return nil, err
	}

	// Includes are only complete once all pages are in
	mr := newMediaRun(shared.Twitter, f.downloader, f.summarizer, f.api.BearerToken())
	for _, t := range existing.Tweets {
		mr.seed(t.Media)
	}
	fresh := make([]dal.Tweet, 0, len(collected))
	for _, c := range collected {
		tweet := convertTweet(raw[c.Id], incs)
		origin := fmt.Sprintf("Twitter user @%s's tweet (ID: %s)", user.Username, tweet.Id)
		if tweet.Media, err = mr.processAll(ctx, tweet.Media, describeAll, origin); err != nil {
			return nil, err
		}
		fresh = append(fresh, tweet)
	}

	doc := &dal.TwitterDocument{
		UserInfo: user,
		Tweets:   mergeItems(fresh, existing.Tweets, limit, f.cfg.MaxCacheItems),
	}
	mr.harvest.applyTo(&doc.DocumentBase, &existing.DocumentBase)
	f.merged(target, countNew(fresh, existing.Tweets), len(doc.Tweets))
	return doc, nil
}

func convertTweet(t dto.TwitterTweet, incs *tweetIncludes) dal.Tweet {
	res := dal.Tweet{
		Id:               t.Id,
		Text:             t.Text,
		CreatedAt:        t.CreatedAt,
		Lang:             t.Lang,
		Metrics:          t.PublicMetrics,
		EntitiesRaw:      t.Entities,
		Mentions:         []dal.UserRef{},
		ConversationId:   t.ConversationId,
		InReplyToUserId:  t.InReplyToUserId,
		ReferencedTweets: t.ReferencedTweets,
		Media:            []dal.MediaItem{},
	}
	if res.Metrics == nil {
		res.Metrics = map[string]int{}
	}
	if res.ReferencedTweets == nil {
		res.ReferencedTweets = []dto.TwitterRefTweet{}
	}
	if t.Entities != nil {
		for _, m := range t.Entities.Mentions {
			res.Mentions = append(res.Mentions, dal.UserRef{Id: m.Id, Username: m.Username})
		}
	}
	if t.InReplyToUserId != "" {
		if u, ok := incs.users[t.InReplyToUserId]; ok {
			res.RepliedToUserInfo = &u
		}
	}
	for _, ref := range t.ReferencedTweets {
		if ref.Type != "quoted" {
			continue
		}
		quoted, ok := incs.tweets[ref.Id]
		if !ok || quoted.AuthorId == "" {
			continue
		}
		if author, ok := incs.users[quoted.AuthorId]; ok {
			res.QuotedTweetInfo = &dal.QuotedTweet{TweetId: quoted.Id, Author: author}
		}
	}
	if t.Attachments != nil {
		for _, key := range t.Attachments.MediaKeys {
			m, ok := incs.media[key]
			if !ok {
				continue
			}
			url := m.PreviewImageUrl
			if (m.Type == "photo" || m.Type == "animated_gif" || m.Type == "gif") && m.Url != "" {
				url = m.Url
			}
			if url == "" {
				continue
			}
			res.Media = append(res.Media, dal.MediaItem{Id: key, Type: m.Type, Url: url, AltText: m.AltText})
		}
	}
	return res
}
