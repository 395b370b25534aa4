package logic

import (
	"context"
	"fmt"
	"html"
	"path"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/remote"
	"social_osint/shared"
	"sort"
	"strings"
)

const redditWebBase = "https://www.reddit.com"

var redditMediaExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".mp4", ".webm"}

type redditFetcher struct {
	fetchBase
	api        remote.IRedditApi
	downloader IMediaDownloader
	summarizer ISummarizer
}

func NewRedditFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	cache dal.ICacheStore,
	metrics IMetrics,
	api remote.IRedditApi,
	downloader IMediaDownloader,
	summarizer ISummarizer,
) IFetcher {
	return &redditFetcher{
		fetchBase:  newFetchBase(shared.Reddit, cfg, logger, cache, metrics),
		api:        api,
		downloader: downloader,
		summarizer: summarizer,
	}
}

func (f *redditFetcher) Fetch(ctx context.Context, identity string, force bool, limit int) (dal.Document, error) {
	target := shared.Target{Platform: shared.Reddit, Identity: identity}
	cached, res, done := f.begin(target, force, limit)
	if done {
		return res, nil
	}
	prev, _ := cached.(*dal.RedditDocument)
	doc, err := f.update(ctx, target, prev, force, limit)
	if err != nil {
		return nil, f.fail(target, err)
	}
	return f.finish(target, doc), nil
}

// widerPlan is the plan that does more work; reddit reports one plan for its two collections.
func widerPlan(a, b string) string {
	rank := map[string]int{PlanIncremental: 0, PlanBackfill: 1, PlanForce: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

func (f *redditFetcher) update(ctx context.Context, target shared.Target, prev *dal.RedditDocument,
	force bool, limit int) (*dal.RedditDocument, error) {

	existing := prev
	if existing == nil {
		existing = dal.NewDocument(shared.Reddit).(*dal.RedditDocument)
	}

	profile := existing.UserProfile
	if profile == nil || force {
		obs := f.observe()
		var err error
		profile, err = f.api.GetUser(ctx, target.Identity)
		obs.Finish()
		if err != nil {
			return nil, err
		}
	}
	name := profile.Name
	if name == "" {
		name = target.Identity
	}
	maxPages := f.cfg.Platforms.Reddit.MaxPages

	subPager := newPager(existing.Submissions, limit, force, remote.RedditMaxPage, maxPages,
		func(ctx context.Context, req pageRequest) (itemPage[dal.RedditSubmission], error) {
			obs := f.observe()
			listing, err := f.api.GetSubmissions(ctx, name, req.Size, req.Cursor)
			obs.Finish()
			if err != nil {
				return itemPage[dal.RedditSubmission]{}, err
			}
			res := itemPage[dal.RedditSubmission]{Next: listing.Data.After}
			for _, child := range listing.Data.Children {
				res.Items = append(res.Items, convertSubmission(child.Data))
			}
			return res, nil
		})
	commentPager := newPager(existing.Comments, limit, force, remote.RedditMaxPage, maxPages,
		func(ctx context.Context, req pageRequest) (itemPage[dal.RedditComment], error) {
			obs := f.observe()
			listing, err := f.api.GetComments(ctx, name, req.Size, req.Cursor)
			obs.Finish()
			if err != nil {
				return itemPage[dal.RedditComment]{}, err
			}
			res := itemPage[dal.RedditComment]{Next: listing.Data.After}
			for _, child := range listing.Data.Children {
				res.Items = append(res.Items, convertComment(child.Data))
			}
			return res, nil
		})
	f.planned(target, widerPlan(subPager.plan(), commentPager.plan()), limit, existing.ItemCount())

	freshSubs, err := subPager.collect(ctx)
	if err != nil {
		return nil, err
	}
	freshComments, err := commentPager.collect(ctx)
	if err != nil {
		return nil, err
	}

	mr := newMediaRun(shared.Reddit, f.downloader, f.summarizer, "")
	for _, s := range existing.Submissions {
		mr.seed(s.Media)
	}
	for i := range freshSubs {
		s := &freshSubs[i]
		origin := fmt.Sprintf("Reddit user u/%s's post in r/%s", name, s.Subreddit)
		if s.Media, err = mr.processAll(ctx, s.Media, describeAll, origin); err != nil {
			return nil, err
		}
	}

	doc := &dal.RedditDocument{
		UserProfile: profile,
		Submissions: mergeItems(freshSubs, existing.Submissions, limit, f.cfg.MaxCacheItems),
		Comments:    mergeItems(freshComments, existing.Comments, limit, f.cfg.MaxCacheItems),
	}
	mr.harvest.applyTo(&doc.DocumentBase, &existing.DocumentBase)
	newCount := countNew(freshSubs, existing.Submissions) + countNew(freshComments, existing.Comments)
	f.merged(target, newCount, len(doc.Submissions)+len(doc.Comments))
	return doc, nil
}

func hasMediaExtension(rawUrl string) bool {
	p := rawUrl
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	ext := strings.ToLower(path.Ext(p))
	for _, x := range redditMediaExtensions {
		if ext == x {
			return true
		}
	}
	return false
}

// submissionMedia is a direct media link, or else the images of a gallery.
func submissionMedia(link dto.RedditLink) []dal.MediaItem {
	res := []dal.MediaItem{}
	if !link.IsSelf && hasMediaExtension(link.Url) {
		kind := "video"
		if isImagePath(strings.SplitN(link.Url, "?", 2)[0]) {
			kind = "image"
		}
		return append(res, dal.MediaItem{Type: kind, Url: link.Url})
	}
	if !link.IsGallery || len(link.MediaMetadata) == 0 {
		return res
	}
	ids := make([]string, 0, len(link.MediaMetadata))
	for id := range link.MediaMetadata {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		u := link.MediaMetadata[id].S.U
		if u == "" {
			continue
		}
		res = append(res, dal.MediaItem{Id: id, Type: "gallery_image", Url: html.UnescapeString(u)})
	}
	return res
}

func convertSubmission(link dto.RedditLink) dal.RedditSubmission {
	res := dal.RedditSubmission{
		Id:          link.Id,
		Title:       link.Title,
		Text:        link.Selftext,
		Subreddit:   link.Subreddit,
		Permalink:   redditWebBase + link.Permalink,
		Score:       link.Score,
		UpvoteRatio: link.UpvoteRatio,
		NumComments: link.NumComments,
		CreatedUtc:  link.CreatedUtc,
		Over18:      link.Over18,
		IsSelf:      link.IsSelf,
		Media:       submissionMedia(link),
	}
	if !link.IsSelf {
		res.LinkUrl = link.Url
	}
	return res
}

func convertComment(c dto.RedditComment) dal.RedditComment {
	return dal.RedditComment{
		Id:           c.Id,
		Text:         c.Body,
		Subreddit:    c.Subreddit,
		Permalink:    redditWebBase + c.Permalink,
		LinkId:       c.LinkId,
		LinkTitle:    c.LinkTitle,
		ParentId:     c.ParentId,
		ParentAuthor: c.LinkAuthor,
		Score:        c.Score,
		CreatedUtc:   c.CreatedUtc,
		IsSubmitter:  c.IsSubmitter,
	}
}
