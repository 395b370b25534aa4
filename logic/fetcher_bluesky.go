package logic

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/remote"
	"social_osint/shared"
	"strings"
)

const (
	bskyCdnBase     = "https://cdn.bsky.app/img/feed_fullsize/plain"
	bskyMentionType = "app.bsky.richtext.facet#mention"
	bskyLinkType    = "app.bsky.richtext.facet#link"
	bskyRepostType  = "app.bsky.feed.defs#reasonRepost"
)

type blueskyFetcher struct {
	fetchBase
	api        remote.IBlueskyApi
	downloader IMediaDownloader
	summarizer ISummarizer
}

func NewBlueskyFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	cache dal.ICacheStore,
	metrics IMetrics,
	api remote.IBlueskyApi,
	downloader IMediaDownloader,
	summarizer ISummarizer,
) IFetcher {
	return &blueskyFetcher{
		fetchBase:  newFetchBase(shared.Bluesky, cfg, logger, cache, metrics),
		api:        api,
		downloader: downloader,
		summarizer: summarizer,
	}
}

func (f *blueskyFetcher) Fetch(ctx context.Context, identity string, force bool, limit int) (dal.Document, error) {
	target := shared.Target{Platform: shared.Bluesky, Identity: identity}
	cached, res, done := f.begin(target, force, limit)
	if done {
		return res, nil
	}
	prev, _ := cached.(*dal.BlueskyDocument)
	doc, err := f.update(ctx, target, prev, force, limit)
	if err != nil {
		return nil, f.fail(target, err)
	}
	return f.finish(target, doc), nil
}

// handleBook maps DIDs to the handles seen in feed views during one run.
type handleBook map[string]string

func (hb handleBook) note(author *dto.BskyAuthor) {
	if author != nil && author.Did != "" && author.Handle != "" {
		hb[author.Did] = author.Handle
	}
}

// resolve falls back to the DID itself.
func (hb handleBook) resolve(did string) string {
	if h, ok := hb[did]; ok {
		return h
	}
	return did
}

// didOfUri is the authority part of an at:// URI.
func didOfUri(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Host
}

func (f *blueskyFetcher) update(ctx context.Context, target shared.Target, prev *dal.BlueskyDocument,
	force bool, limit int) (*dal.BlueskyDocument, error) {

	existing := prev
	if existing == nil {
		existing = dal.NewDocument(shared.Bluesky).(*dal.BlueskyDocument)
	}

	profile := existing.ProfileInfo
	if profile == nil || force {
		obs := f.observe()
		raw, err := f.api.GetProfile(ctx, target.Identity)
		obs.Finish()
		if err != nil {
			return nil, err
		}
		profile = convertBskyProfile(raw)
	}

	handles := handleBook{profile.Did: profile.Handle}
	raw := map[string]dto.BskyFeedItem{}
	pg := newPager(existing.Posts, limit, force, remote.BlueskyMaxPage, f.cfg.Platforms.Bluesky.MaxPages,
		func(ctx context.Context, req pageRequest) (itemPage[dal.BlueskyPost], error) {
			obs := f.observe()
			feed, err := f.api.GetAuthorFeed(ctx, target.Identity, req.Size, req.Cursor)
			obs.Finish()
			if err != nil {
				return itemPage[dal.BlueskyPost]{}, err
			}
			res := itemPage[dal.BlueskyPost]{Next: feed.Cursor}
			for _, fi := range feed.Feed {
				if fi.Post.Uri == "" {
					continue
				}
				handles.note(&fi.Post.Author)
				if fi.Reply != nil {
					handles.note(fi.Reply.Parent.Author)
					handles.note(fi.Reply.Root.Author)
				}
				raw[fi.Post.Uri] = fi
				res.Items = append(res.Items, dal.BlueskyPost{Uri: fi.Post.Uri, CreatedAt: fi.Post.Record.CreatedAt})
			}
			return res, nil
		})
	f.planned(target, pg.plan(), limit, len(existing.Posts))
	collected, err := pg.collect(ctx)
	if err != nil {
		return nil, err
	}

	mr := newMediaRun(shared.Bluesky, f.downloader, f.summarizer, f.api.AccessJwt())
	for _, p := range existing.Posts {
		mr.seed(p.Media)
	}
	origin := fmt.Sprintf("Bluesky user %s's post", profile.Handle)
	fresh := make([]dal.BlueskyPost, 0, len(collected))
	for _, c := range collected {
		post := convertBskyPost(raw[c.Uri], handles)
		if post.Media, err = mr.processAll(ctx, post.Media, describeAll, origin); err != nil {
			return nil, err
		}
		fresh = append(fresh, post)
	}

	doc := &dal.BlueskyDocument{
		ProfileInfo: profile,
		Posts:       mergeItems(fresh, existing.Posts, limit, f.cfg.MaxCacheItems),
	}
	mr.harvest.applyTo(&doc.DocumentBase, &existing.DocumentBase)
	f.merged(target, countNew(fresh, existing.Posts), len(doc.Posts))
	return doc, nil
}

func convertBskyProfile(p *dto.BskyProfile) *dal.BlueskyProfile {
	res := &dal.BlueskyProfile{
		Did:            p.Did,
		Handle:         p.Handle,
		DisplayName:    p.DisplayName,
		Description:    p.Description,
		Avatar:         p.Avatar,
		Banner:         p.Banner,
		FollowersCount: p.FollowersCount,
		FollowsCount:   p.FollowsCount,
		PostsCount:     p.PostsCount,
		CreatedAt:      p.CreatedAt,
		Labels:         []dal.BlueskyLabel{},
	}
	for _, l := range p.Labels {
		res.Labels = append(res.Labels, dal.BlueskyLabel{Value: l.Val})
	}
	return res
}

func convertBskyPost(fi dto.BskyFeedItem, handles handleBook) dal.BlueskyPost {
	post := fi.Post
	rec := post.Record
	res := dal.BlueskyPost{
		Uri:          post.Uri,
		Cid:          post.Cid,
		AuthorDid:    post.Author.Did,
		AuthorHandle: post.Author.Handle,
		Text:         rec.Text,
		CreatedAt:    rec.CreatedAt,
		Langs:        rec.Langs,
		Likes:        post.LikeCount,
		Reposts:      post.RepostCount,
		ReplyCount:   post.ReplyCount,
		IsRepost:     fi.Reason != nil && fi.Reason.Type == bskyRepostType,
		Media:        bskyImages(post.Author.Did, rec.Embed),
		Mentions:     []dal.BlueskyMention{},
	}
	if res.Langs == nil {
		res.Langs = []string{}
	}
	for _, facet := range rec.Facets {
		for _, feat := range facet.Features {
			switch feat.Type {
			case bskyMentionType:
				if feat.Did != "" {
					res.Mentions = append(res.Mentions, dal.BlueskyMention{Did: feat.Did, Handle: handles.resolve(feat.Did)})
				}
			case bskyLinkType:
				if feat.Uri != "" {
					res.Links = append(res.Links, feat.Uri)
				}
			}
		}
	}
	if post.Embed != nil && post.Embed.External != nil && post.Embed.External.Uri != "" {
		res.Links = append(res.Links, post.Embed.External.Uri)
	}

	if rec.Reply != nil {
		res.ReplyParentUri = rec.Reply.Parent.Uri
		res.ReplyRootUri = rec.Reply.Root.Uri
		if did := didOfUri(res.ReplyParentUri); did != "" {
			res.ReplyParentAuthorHandle = handles.resolve(did)
		}
	}
	if rec.Embed != nil {
		res.EmbedType = rec.Embed.Type
		if strings.Contains(rec.Embed.Type, "embed.record") {
			res.EmbeddedPostAuthorHandle = embeddedAuthor(post.Embed, handles)
		}
	}
	return res
}

// embeddedAuthor is the handle of a quoted post's author, looking through recordWithMedia.
func embeddedAuthor(view *dto.BskyEmbedView, handles handleBook) string {
	if view == nil || view.Record == nil {
		return ""
	}
	rec := view.Record
	if rec.Author == nil && rec.Record != nil {
		rec = rec.Record
	}
	if rec.Author == nil {
		return ""
	}
	if rec.Author.Handle != "" {
		return rec.Author.Handle
	}
	return handles.resolve(rec.Author.Did)
}

// bskyImages lists the images of a record embed as full-size CDN URLs.
func bskyImages(authorDid string, embed *dto.BskyRecordEmbed) []dal.MediaItem {
	res := []dal.MediaItem{}
	if embed == nil {
		return res
	}
	images := embed.Images
	if embed.Media != nil {
		images = slices.Concat(images, embed.Media.Images)
	}
	for _, img := range images {
		cid := img.Image.Ref.Link
		if cid == "" {
			continue
		}
		subtype := "jpeg"
		if _, st, ok := strings.Cut(img.Image.MimeType, "/"); ok && st != "" {
			subtype = st
		}
		cdnUrl := fmt.Sprintf("%s/%s/%s@%s", bskyCdnBase, authorDid, url.QueryEscape(cid), subtype)
		res = append(res, dal.MediaItem{Type: "image", Url: cdnUrl, AltText: img.Alt})
	}
	return res
}
