package logic

import (
	"context"
	"slices"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/remote"
	"social_osint/shared"
	"strconv"
)

type hackerNewsFetcher struct {
	fetchBase
	api remote.IHackerNewsApi
}

func NewHackerNewsFetcher(
	cfg *shared.Config,
	logger shared.ILogger,
	cache dal.ICacheStore,
	metrics IMetrics,
	api remote.IHackerNewsApi,
) IFetcher {
	return &hackerNewsFetcher{
		fetchBase: newFetchBase(shared.HackerNews, cfg, logger, cache, metrics),
		api:       api,
	}
}

func (f *hackerNewsFetcher) Fetch(ctx context.Context, identity string, force bool, limit int) (dal.Document, error) {
	target := shared.Target{Platform: shared.HackerNews, Identity: identity}
	cached, res, done := f.begin(target, force, limit)
	if done {
		return res, nil
	}
	prev, _ := cached.(*dal.HackerNewsDocument)
	doc, err := f.update(ctx, target, prev, force, limit)
	if err != nil {
		return nil, f.fail(target, err)
	}
	return f.finish(target, doc), nil
}

func (f *hackerNewsFetcher) update(ctx context.Context, target shared.Target, prev *dal.HackerNewsDocument,
	force bool, limit int) (*dal.HackerNewsDocument, error) {

	existing := prev
	if existing == nil {
		existing = dal.NewDocument(shared.HackerNews).(*dal.HackerNewsDocument)
	}
	var latest int64
	for _, item := range existing.Items {
		latest = max(latest, item.CreatedAtI)
	}

	// Algolia pages are numbered and start at page*hitsPerPage, so the page size must not change
	pg := newPager(existing.Items, limit, force, remote.HackerNewsMaxPage, f.cfg.Platforms.HackerNews.MaxPages,
		func(ctx context.Context, req pageRequest) (itemPage[dal.HackerNewsItem], error) {
			page, _ := strconv.Atoi(req.Cursor)
			var after int64
			if req.Incremental {
				after = latest
			}
			obs := f.observe()
			resp, err := f.api.Search(ctx, target.Identity, req.Size, page, after)
			obs.Finish()
			if err != nil {
				return itemPage[dal.HackerNewsItem]{}, err
			}
			res := itemPage[dal.HackerNewsItem]{}
			for _, hit := range resp.Hits {
				if hit.ObjectId == "" {
					continue
				}
				res.Items = append(res.Items, convertHit(hit))
			}
			if page+1 < resp.NbPages {
				res.Next = strconv.Itoa(page + 1)
			}
			return res, nil
		}).withFixedPageSize()
	f.planned(target, pg.plan(), limit, len(existing.Items))
	fresh, err := pg.collect(ctx)
	if err != nil {
		return nil, err
	}

	doc := &dal.HackerNewsDocument{
		Items: mergeItems(fresh, existing.Items, limit, f.cfg.MaxCacheItems),
	}
	doc.MediaAnalysis = existing.MediaAnalysis
	doc.MediaPaths = existing.MediaPaths
	f.merged(target, countNew(fresh, existing.Items), len(doc.Items))
	return doc, nil
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func convertHit(hit dto.HnHit) dal.HackerNewsItem {
	res := dal.HackerNewsItem{
		ObjectId:    hit.ObjectId,
		Type:        dal.HnStory,
		Title:       hit.Title,
		Url:         hit.Url,
		StoryTitle:  hit.StoryTitle,
		Points:      derefInt(hit.Points),
		NumComments: derefInt(hit.NumComments),
		StoryId:     derefInt(hit.StoryId),
		ParentId:    derefInt(hit.ParentId),
		CreatedAtI:  hit.CreatedAtI,
		CreatedAt:   hit.CreatedAt,
	}
	if slices.Contains(hit.Tags, dal.HnComment) {
		res.Type = dal.HnComment
	}
	if hit.CreatedAtI != 0 {
		res.CreatedAt = shared.FormatInstant(shared.InstantOf(hit.CreatedAtI))
	}
	raw := hit.StoryText
	if raw == "" {
		raw = hit.CommentText
	}
	if raw != "" {
		res.Text = shared.StripHtml(raw)
	}
	if res.Url == "" && res.Type == dal.HnComment {
		res.Url = hit.StoryUrl
	}
	return res
}
