package logic

import (
	"context"
	"fmt"
	"social_osint/dal"
	"testing"

	"github.com/stretchr/testify/assert"
)

// hnItem n is newer than hnItem n-1.
func hnItem(n int) dal.HackerNewsItem {
	return dal.HackerNewsItem{ObjectId: fmt.Sprintf("%04d", n), CreatedAtI: int64(1_600_000_000 + n)}
}

func hnRange(newest, oldest int) []dal.HackerNewsItem {
	var res []dal.HackerNewsItem
	for i := newest; i >= oldest; i-- {
		res = append(res, hnItem(i))
	}
	return res
}

// fakeFeed serves a newest-first feed in pages of the requested size, with numeric cursors.
type fakeFeed struct {
	items    []dal.HackerNewsItem
	requests []pageRequest
}

func (ff *fakeFeed) fetch(_ context.Context, req pageRequest) (itemPage[dal.HackerNewsItem], error) {
	ff.requests = append(ff.requests, req)
	start := 0
	if req.Cursor != "" {
		fmt.Sscanf(req.Cursor, "%d", &start)
	}
	end := min(start+req.Size, len(ff.items))
	res := itemPage[dal.HackerNewsItem]{Items: ff.items[start:end]}
	if end < len(ff.items) {
		res.Next = fmt.Sprintf("%d", end)
	}
	return res, nil
}

func keys(items []dal.HackerNewsItem) []string {
	res := []string{}
	for _, item := range items {
		res = append(res, item.ObjectId)
	}
	return res
}

func TestPagerPlans(t *testing.T) {
	cached := hnRange(9, 0)
	assert.Equal(t, PlanIncremental, newPager(cached, 10, false, 100, 10, nil).plan())
	assert.Equal(t, PlanIncremental, newPager(cached, 5, false, 100, 10, nil).plan())
	assert.Equal(t, PlanBackfill, newPager(cached, 11, false, 100, 10, nil).plan())
	assert.Equal(t, PlanBackfill, newPager[dal.HackerNewsItem](nil, 1, false, 100, 10, nil).plan())
	assert.Equal(t, PlanForce, newPager(cached, 5, true, 100, 10, nil).plan())
}

func TestPagerIncremental(t *testing.T) {
	feed := &fakeFeed{items: hnRange(12, 0)}
	pg := newPager(hnRange(9, 0), 10, false, 100, 10, feed.fetch)

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, []string{"0012", "0011", "0010"}, keys(fresh))
	assert.Equal(t, 1, len(feed.requests))
	assert.True(t, feed.requests[0].Incremental)
	assert.Equal(t, 10, feed.requests[0].Size)

	merged := mergeItems(fresh, hnRange(9, 0), 10, 200)
	assert.Equal(t, 13, len(merged))
	assert.Equal(t, 3, countNew(fresh, hnRange(9, 0)))
}

func TestPagerIncrementalFollowsCursor(t *testing.T) {
	// More new items than fit in one page
	feed := &fakeFeed{items: hnRange(20, 0)}
	pg := newPager(hnRange(5, 0), 3, false, 4, 10, feed.fetch)

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 15, len(fresh))
	assert.Equal(t, "0020", fresh[0].ObjectId)
	assert.Equal(t, "0006", fresh[14].ObjectId)
	assert.Equal(t, 3, feed.requests[0].Size)
}

func TestPagerBackfill(t *testing.T) {
	feed := &fakeFeed{items: hnRange(29, 0)}
	pg := newPager(hnRange(29, 20), 30, false, 8, 10, feed.fetch)

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 20, len(fresh))
	assert.Equal(t, "0019", fresh[0].ObjectId)
	assert.Equal(t, "0000", fresh[19].ObjectId)
	for _, req := range feed.requests {
		assert.False(t, req.Incremental)
		assert.LessOrEqual(t, req.Size, 8)
	}
	assert.Equal(t, 30, len(mergeItems(fresh, hnRange(29, 20), 30, 200)))
}

// numberedFeed serves page n as items [n*size, (n+1)*size), like a search API with page numbers.
type numberedFeed struct {
	items    []dal.HackerNewsItem
	requests []pageRequest
}

func (nf *numberedFeed) fetch(_ context.Context, req pageRequest) (itemPage[dal.HackerNewsItem], error) {
	nf.requests = append(nf.requests, req)
	page := 0
	if req.Cursor != "" {
		fmt.Sscanf(req.Cursor, "%d", &page)
	}
	start := min(page*req.Size, len(nf.items))
	end := min(start+req.Size, len(nf.items))
	res := itemPage[dal.HackerNewsItem]{Items: nf.items[start:end]}
	if end < len(nf.items) {
		res.Next = fmt.Sprintf("%d", page+1)
	}
	return res, nil
}

func TestPagerFixedPageSize(t *testing.T) {
	feed := &numberedFeed{items: hnRange(99, 0)}
	pg := newPager(hnRange(99, 90), 45, false, 20, 10, feed.fetch).withFixedPageSize()

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 35, len(fresh))
	assert.Equal(t, "0089", fresh[0].ObjectId)
	assert.Equal(t, "0055", fresh[34].ObjectId)
	assert.Equal(t, 3, len(feed.requests))
	for _, req := range feed.requests {
		assert.Equal(t, 20, req.Size)
	}
}

func TestPagerBackfillStopsAtEndOfFeed(t *testing.T) {
	feed := &fakeFeed{items: hnRange(4, 0)}
	pg := newPager[dal.HackerNewsItem](nil, 50, false, 100, 10, feed.fetch)

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 5, len(fresh))
	assert.Equal(t, 1, len(feed.requests))
}

func TestPagerRespectsMaxPages(t *testing.T) {
	feed := &fakeFeed{items: hnRange(99, 0)}
	pg := newPager[dal.HackerNewsItem](nil, 100, false, 10, 3, feed.fetch)

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 30, len(fresh))
	assert.Equal(t, 3, len(feed.requests))
}

func TestPagerForce(t *testing.T) {
	feed := &fakeFeed{items: hnRange(12, 0)}
	pg := newPager(hnRange(9, 0), 6, true, 100, 10, feed.fetch)

	fresh, err := pg.collect(context.Background())
	assert.Nil(t, err)
	// Known items are fetched again so they can replace the cached ones
	assert.Equal(t, []string{"0012", "0011", "0010", "0009", "0008", "0007"}, keys(fresh))
}

func TestPagerError(t *testing.T) {
	failing := func(context.Context, pageRequest) (itemPage[dal.HackerNewsItem], error) {
		return itemPage[dal.HackerNewsItem]{}, fmt.Errorf("boom")
	}
	_, err := newPager[dal.HackerNewsItem](nil, 5, false, 100, 10, failing).collect(context.Background())
	assert.NotNil(t, err)
}

func TestMergeItems(t *testing.T) {
	existing := []dal.HackerNewsItem{hnItem(3), hnItem(1)}
	updated := hnItem(3)
	updated.Points = 42
	fresh := []dal.HackerNewsItem{hnItem(4), updated, hnItem(2)}

	merged := mergeItems(fresh, existing, 0, 100)
	assert.Equal(t, []string{"0004", "0003", "0002", "0001"}, keys(merged))
	assert.Equal(t, 42, merged[1].Points)

	// Truncation keeps the newest, up to the larger of limit and the cache cap
	assert.Equal(t, []string{"0004", "0003"}, keys(mergeItems(fresh, existing, 2, 1)))
	assert.Equal(t, 3, len(mergeItems(fresh, existing, 3, 1)))
	assert.Equal(t, 2, countNew(fresh, existing))
}

func TestWiderPlan(t *testing.T) {
	assert.Equal(t, PlanBackfill, widerPlan(PlanIncremental, PlanBackfill))
	assert.Equal(t, PlanBackfill, widerPlan(PlanBackfill, PlanIncremental))
	assert.Equal(t, PlanForce, widerPlan(PlanForce, PlanForce))
	assert.Equal(t, PlanIncremental, widerPlan(PlanIncremental, PlanIncremental))
}

func TestMediaHarvestApply(t *testing.T) {
	base := dal.DocumentBase{}
	prev := dal.DocumentBase{MediaAnalysis: []string{"old"}, MediaPaths: []string{"/m/a.jpg"}}
	mediaHarvest{Analyses: []string{"new"}, Paths: []string{"/m/b.jpg"}}.applyTo(&base, &prev)
	assert.Equal(t, []string{"old", "new"}, base.MediaAnalysis)
	assert.Equal(t, []string{"/m/a.jpg", "/m/b.jpg"}, base.MediaPaths)
}
