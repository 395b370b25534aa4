package logic

import (
	"context"
	"path/filepath"
	"social_osint/dal"
	"social_osint/shared"
	"strings"
)

// pageRequest is what the pager asks of a platform for the next page.
type pageRequest struct {
	Cursor string
	Size   int
	// Incremental is set when only items newer than the cache are wanted; platforms add their "since" hint.
	Incremental bool
}

type itemPage[T dal.Item] struct {
	Items []T
	Next  string // Empty at the end of the feed
}

type pageFunc[T dal.Item] func(ctx context.Context, req pageRequest) (itemPage[T], error)

// pager walks one collection of a target from the newest item on.
type pager[T dal.Item] struct {
	limit    int
	force    bool
	ceiling  int
	maxPages int
	known    map[string]struct{}
	fetch    pageFunc[T]
	// fixedSize keeps the page size constant for sources whose page number is an offset of page*size.
	fixedSize bool
}

func newPager[T dal.Item](existing []T, limit int, force bool, ceiling, maxPages int, fetch pageFunc[T]) *pager[T] {
	return &pager[T]{
		limit:    limit,
		force:    force,
		ceiling:  max(1, ceiling),
		maxPages: max(1, maxPages),
		known:    dal.KeySet(existing),
		fetch:    fetch,
	}
}

// withFixedPageSize makes every request ask for min(limit, ceiling) items.
func (p *pager[T]) withFixedPageSize() *pager[T] {
	p.fixedSize = true
	return p
}

// have is how many items count towards the limit outside of incremental mode.
func (p *pager[T]) have(res []T, newCount int) int {
	if p.force {
		return len(res)
	}
	return len(p.known) + newCount
}

func (p *pager[T]) incremental() bool {
	return !p.force && p.limit <= len(p.known)
}

func (p *pager[T]) plan() string {
	switch {
	case p.force:
		return PlanForce
	case p.incremental():
		return PlanIncremental
	}
	return PlanBackfill
}

// collect returns the items fetched in this run, in upstream order.
// Known items are only included when forcing a refresh.
func (p *pager[T]) collect(ctx context.Context) ([]T, error) {
	incremental := p.incremental()
	seen := map[string]struct{}{}
	var res []T
	newCount := 0
	cursor := ""

	for pageNo := 0; pageNo < p.maxPages; pageNo++ {
		size := min(p.limit, p.ceiling)
		if !incremental {
			remaining := p.limit - p.have(res, newCount)
			if remaining <= 0 {
				break
			}
			if !p.fixedSize {
				size = min(remaining, p.ceiling)
			}
		}
		pg, err := p.fetch(ctx, pageRequest{Cursor: cursor, Size: size, Incremental: incremental})
		if err != nil {
			return nil, err
		}
		if len(pg.Items) == 0 {
			break
		}

		added, knownHits, reachedKnown, full := 0, 0, false, false
		for _, item := range pg.Items {
			if !incremental && p.have(res, newCount) >= p.limit {
				full = true
				break
			}
			key := item.UniqueKey()
			if _, dup := seen[key]; dup {
				continue
			}
			_, isKnown := p.known[key]
			if isKnown {
				knownHits++
				if incremental {
					reachedKnown = true
					break
				}
				if !p.force {
					continue
				}
			} else {
				newCount++
			}
			seen[key] = struct{}{}
			res = append(res, item)
			added++
		}
		if reachedKnown || full || pg.Next == "" {
			break
		}
		if !incremental && added == 0 && knownHits == 0 {
			break
		}
		cursor = pg.Next
	}
	return res, nil
}

// mergeItems unions fresh and existing items (fresh wins on a key collision), sorts, then truncates
// to max(limit, maxCacheItems).
func mergeItems[T dal.Item](fresh, existing []T, limit, maxCacheItems int) []T {
	keys := make(map[string]struct{}, len(fresh)+len(existing))
	res := make([]T, 0, len(fresh)+len(existing))
	for _, items := range [][]T{fresh, existing} {
		for _, item := range items {
			key := item.UniqueKey()
			if _, ok := keys[key]; ok {
				continue
			}
			keys[key] = struct{}{}
			res = append(res, item)
		}
	}
	dal.SortItems(res)
	if keep := max(limit, maxCacheItems); len(res) > keep {
		res = res[:keep]
	}
	return res
}

// countNew is the number of items whose key is not among existing.
func countNew[T dal.Item](fresh, existing []T) int {
	known := dal.KeySet(existing)
	res := 0
	for _, item := range fresh {
		if _, ok := known[item.UniqueKey()]; !ok {
			res++
		}
	}
	return res
}

// mediaHarvest is what one fetch run adds to a document's media sets.
type mediaHarvest struct {
	Analyses []string
	Paths    []string
}

// applyTo adds the harvest to the document; the store sorts and de-duplicates on save.
func (h mediaHarvest) applyTo(base *dal.DocumentBase, prev *dal.DocumentBase) {
	if prev != nil {
		base.MediaAnalysis = append(base.MediaAnalysis, prev.MediaAnalysis...)
		base.MediaPaths = append(base.MediaPaths, prev.MediaPaths...)
	}
	base.MediaAnalysis = append(base.MediaAnalysis, h.Analyses...)
	base.MediaPaths = append(base.MediaPaths, h.Paths...)
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

func isImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, x := range imageExtensions {
		if ext == x {
			return true
		}
	}
	return false
}

// mediaRun downloads and describes the attachments of one fetch run, each local file once.
type mediaRun struct {
	platform   shared.Platform
	downloader IMediaDownloader
	summarizer ISummarizer
	authToken  string
	byPath     map[string]dal.MediaItem
	harvest    mediaHarvest
}

func newMediaRun(platform shared.Platform, downloader IMediaDownloader, summarizer ISummarizer, authToken string) *mediaRun {
	return &mediaRun{
		platform:   platform,
		downloader: downloader,
		summarizer: summarizer,
		authToken:  authToken,
		byPath:     map[string]dal.MediaItem{},
	}
}

// seed registers attachments that were already processed in earlier runs so they are not described again.
func (mr *mediaRun) seed(items []dal.MediaItem) {
	for _, m := range items {
		if m.LocalPath != "" {
			mr.byPath[m.LocalPath] = m
		}
	}
}

// process downloads one attachment and, if describe is set and the file is an image, describes it.
// ok is false when the media is not available; err is only ever a rate limit.
func (mr *mediaRun) process(ctx context.Context, m dal.MediaItem, describe bool, origin string) (res dal.MediaItem, ok bool, err error) {
	if m.Url == "" {
		return m, false, nil
	}
	path, err := mr.downloader.Download(ctx, mr.platform, m.Url, mr.authToken)
	if err != nil || path == "" {
		return m, false, err
	}
	if done, found := mr.byPath[path]; found {
		m.LocalPath = done.LocalPath
		m.Analysis = done.Analysis
		return m, true, nil
	}
	m.LocalPath = path
	if describe && isImagePath(path) {
		analysis, err := mr.summarizer.DescribeImage(ctx, path, m.Url, origin)
		if err != nil {
			return m, false, err
		}
		if analysis != "" {
			m.Analysis = &analysis
			mr.harvest.Analyses = append(mr.harvest.Analyses, analysis)
		}
	}
	mr.harvest.Paths = append(mr.harvest.Paths, path)
	mr.byPath[path] = m
	return m, true, nil
}

// processAll keeps only the attachments that could be made available locally.
func (mr *mediaRun) processAll(ctx context.Context, items []dal.MediaItem, describe func(dal.MediaItem) bool,
	origin string) ([]dal.MediaItem, error) {

	res := make([]dal.MediaItem, 0, len(items))
	for _, m := range items {
		processed, ok, err := mr.process(ctx, m, describe(m), origin)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, processed)
		}
	}
	return res, nil
}

func describeAll(dal.MediaItem) bool { return true }
