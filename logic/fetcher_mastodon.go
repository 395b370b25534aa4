package logic

import (
	"context"
	"fmt"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/remote"
	"social_osint/shared"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type mastodonFetcher struct {
	fetchBase
	directory  remote.IMastodonDirectory
	downloader IMediaDownloader
	summarizer ISummarizer
}

func NewMastodonFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	cache dal.ICacheStore,
	metrics IMetrics,
	directory remote.IMastodonDirectory,
	downloader IMediaDownloader,
	summarizer ISummarizer,
) IFetcher {
	return &mastodonFetcher{
		fetchBase:  newFetchBase(shared.Mastodon, cfg, logger, cache, metrics),
		directory:  directory,
		downloader: downloader,
		summarizer: summarizer,
	}
}

// splitAcct splits user@instance; ok is false if either part is missing.
func splitAcct(identity string) (user, instance string, ok bool) {
	user, instance, ok = strings.Cut(strings.TrimPrefix(identity, "@"), "@")
	return user, instance, ok && user != "" && instance != "" && !strings.Contains(instance, "@")
}

func (f *mastodonFetcher) Fetch(ctx context.Context, identity string, force bool, limit int) (dal.Document, error) {
	target := shared.Target{Platform: shared.Mastodon, Identity: identity}
	if _, _, ok := splitAcct(identity); !ok {
		f.logger.Errorf("Invalid Mastodon username format: '%s'. Must be 'user@instance.domain'.", identity)
		return nil, nil
	}
	cached, res, done := f.begin(target, force, limit)
	if done {
		return res, nil
	}
	prev, _ := cached.(*dal.MastodonDocument)
	doc, err := f.update(ctx, target, prev, force, limit)
	if err != nil {
		return nil, f.fail(target, err)
	}
	return f.finish(target, doc), nil
}

func (f *mastodonFetcher) update(ctx context.Context, target shared.Target, prev *dal.MastodonDocument,
	force bool, limit int) (*dal.MastodonDocument, error) {

	existing := prev
	if existing == nil {
		existing = dal.NewDocument(shared.Mastodon).(*dal.MastodonDocument)
	}
	_, instance, _ := splitAcct(target.Identity)
	acct := strings.TrimPrefix(target.Identity, "@")
	api := f.directory.ClientFor(instance)

	// The account ID is needed for paging even when the cached profile is reused
	obs := f.observe()
	account, err := api.LookupAccount(ctx, acct)
	obs.Finish()
	if err != nil {
		return nil, err
	}
	user := existing.UserInfo
	if user == nil || force {
		user = convertMastoAccount(account)
	}

	sinceId := ""
	if len(existing.Posts) != 0 {
		sinceId = existing.Posts[0].Id
	}
	raw := map[string]dto.MastoStatus{}
	pg := newPager(existing.Posts, limit, force, remote.MastodonMaxPage, f.cfg.Platforms.Mastodon.MaxPages,
		func(ctx context.Context, req pageRequest) (itemPage[dal.MastodonPost], error) {
			q := remote.StatusesQuery{Limit: req.Size, MaxId: req.Cursor}
			if req.Incremental {
				q.SinceId = sinceId
			}
			obs := f.observe()
			statuses, err := api.GetStatuses(ctx, account.Id, q)
			obs.Finish()
			if err != nil {
				return itemPage[dal.MastodonPost]{}, err
			}
			res := itemPage[dal.MastodonPost]{}
			for _, st := range statuses {
				raw[st.Id] = st
				res.Items = append(res.Items, dal.MastodonPost{Id: st.Id, CreatedAt: st.CreatedAt})
			}
			if len(statuses) != 0 {
				res.Next = statuses[len(statuses)-1].Id
			}
			return res, nil
		})
	f.planned(target, pg.plan(), limit, len(existing.Posts))
	collected, err := pg.collect(ctx)
	if err != nil {
		return nil, err
	}

	mr := newMediaRun(shared.Mastodon, f.downloader, f.summarizer, "")
	for _, p := range existing.Posts {
		mr.seed(p.Media)
	}
	origin := fmt.Sprintf("Mastodon user %s's post", acct)
	fresh := make([]dal.MastodonPost, 0, len(collected))
	for _, c := range collected {
		post := convertMastoStatus(raw[c.Id])
		if post.Media, err = mr.processAll(ctx, post.Media, describeImages, origin); err != nil {
			return nil, err
		}
		fresh = append(fresh, post)
	}

	doc := &dal.MastodonDocument{
		UserInfo: user,
		Posts:    mergeItems(fresh, existing.Posts, limit, f.cfg.MaxCacheItems),
	}
	mr.harvest.applyTo(&doc.DocumentBase, &existing.DocumentBase)
	f.merged(target, countNew(fresh, existing.Posts), len(doc.Posts))
	return doc, nil
}

// Only attachments that Mastodon itself calls images are described.
func describeImages(m dal.MediaItem) bool { return m.Type == "image" }

func convertMastoAccount(a *dto.MastoAccount) *dal.MastodonAccount {
	return &dal.MastodonAccount{
		Id:             a.Id,
		Username:       a.Username,
		Acct:           a.Acct,
		DisplayName:    a.DisplayName,
		Url:            a.Url,
		NoteText:       shared.StripHtml(a.Note),
		FollowersCount: a.FollowersCount,
		FollowingCount: a.FollowingCount,
		StatusesCount:  a.StatusesCount,
		Locked:         a.Locked,
		Bot:            a.Bot,
		CreatedAt:      a.CreatedAt,
	}
}

// contentLinks lists the outbound links of a status body, leaving out mention and hashtag anchors.
func contentLinks(content string) []string {
	res := []string{}
	if content == "" {
		return res
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return res
	}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("mention") || s.HasClass("hashtag") {
			return
		}
		if href, _ := s.Attr("href"); strings.HasPrefix(href, "http") {
			res = append(res, href)
		}
	})
	return res
}

func convertMastoStatus(st dto.MastoStatus) dal.MastodonPost {
	res := dal.MastodonPost{
		Id:              st.Id,
		CreatedAt:       st.CreatedAt,
		Url:             st.Url,
		TextCleaned:     shared.StripHtml(st.Content),
		Visibility:      st.Visibility,
		Sensitive:       st.Sensitive,
		SpoilerText:     st.SpoilerText,
		Language:        st.Language,
		ReblogsCount:    st.ReblogsCount,
		FavouritesCount: st.FavouritesCount,
		RepliesCount:    st.RepliesCount,
		InReplyToId:     st.InReplyToId,
		IsReblog:        st.Reblog != nil,
		Tags:            []string{},
		Mentions:        []string{},
		Links:           contentLinks(st.Content),
		Media:           []dal.MediaItem{},
	}
	if res.Url == "" {
		res.Url = st.Uri
	}
	if st.Reblog != nil {
		res.ReblogOriginalAuthorAcct = st.Reblog.Account.Acct
		res.ReblogOriginalUrl = st.Reblog.Url
	}
	for _, t := range st.Tags {
		res.Tags = append(res.Tags, t.Name)
	}
	for _, m := range st.Mentions {
		res.Mentions = append(res.Mentions, m.Acct)
	}
	if st.Poll != nil {
		poll := &dal.MastodonPoll{
			Id:         st.Poll.Id,
			Options:    []string{},
			VotesCount: st.Poll.VotesCount,
			Expired:    st.Poll.Expired,
			Multiple:   st.Poll.Multiple,
		}
		for _, o := range st.Poll.Options {
			poll.Options = append(poll.Options, o.Title)
		}
		res.Poll = poll
	}
	for _, att := range st.MediaAttachments {
		u := att.Url
		if u == "" {
			u = att.RemoteUrl
		}
		if u == "" {
			continue
		}
		res.Media = append(res.Media, dal.MediaItem{Id: att.Id, Type: att.Type, Url: u, AltText: att.Description})
	}
	return res
}
