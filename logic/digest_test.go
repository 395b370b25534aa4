package logic

import (
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/shared"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTopDomains(t *testing.T) {
	tw := &dal.TwitterDocument{Tweets: []dal.Tweet{
		{Id: "1", EntitiesRaw: &dto.TwitterEntities{Urls: []dto.TwitterUrlEntity{
			{ExpandedUrl: "https://www.example.com/a"},
			{ExpandedUrl: "https://twitter.com/jack/status/1"},
		}}},
		{Id: "2"},
	}}
	hn := &dal.HackerNewsDocument{Items: []dal.HackerNewsItem{
		{ObjectId: "1", Url: "https://example.com/b"},
		{ObjectId: "2", Text: "see https://golang.org/doc and https://news.ycombinator.com/item?id=1"},
	}}
	inputs := []TargetData{
		{shared.Target{Platform: shared.Twitter, Identity: "jack"}, tw},
		{shared.Target{Platform: shared.HackerNews, Identity: "pg"}, hn},
	}

	domains := topDomains(inputs)
	assert.Equal(t, []domainCount{{"example.com", 2}, {"golang.org", 1}}, domains)

	text := formatTopDomains(domains)
	assert.True(t, strings.HasPrefix(text, "## Top Shared Domains"))
	assert.Contains(t, text, "- **example.com:** 2 link(s)")
	assert.Equal(t, "", formatTopDomains(nil))
}

func TestDigestHackerNews(t *testing.T) {
	doc := &dal.HackerNewsDocument{Items: []dal.HackerNewsItem{
		{ObjectId: "2", Type: dal.HnComment, Text: "Agreed.", StoryTitle: "Lisp", CreatedAtI: 1_700_000_100, Points: 3},
		{ObjectId: "1", Type: dal.HnStory, Title: "Show HN", Url: "https://example.com", CreatedAtI: 1_700_000_000},
	}}
	doc.RecomputeStats()
	text := formatDigest(TargetData{shared.Target{Platform: shared.HackerNews, Identity: "pg"}, doc})

	assert.True(t, strings.HasPrefix(text, "### HackerNews Data Summary for: pg"))
	assert.Contains(t, text, `- Comment 1 on "Lisp" (2023-11-14):`)
	assert.Contains(t, text, "- Story 2 (2023-11-14):")
	assert.Contains(t, text, "  Link: https://example.com")
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestDigestUnknownDocument(t *testing.T) {
	assert.Equal(t, "", formatDigest(TargetData{}))
}

func TestDay(t *testing.T) {
	assert.Equal(t, "N/A", day(time.Time{}))
	assert.Equal(t, "2024-02-29", day(time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)))
}

func TestReportFileName(t *testing.T) {
	ts := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "analysis_20240301_140509_hackernews_twitter_What are their interests.md",
		reportFileName(ts, []string{"hackernews", "twitter"}, "What are their interests?", shared.FormatMarkdown))
	assert.Equal(t, "analysis_20240301_140509_platforms_query.json",
		reportFileName(ts, nil, "?!/", shared.FormatJson))
}

func TestSafeQuery(t *testing.T) {
	assert.Equal(t, "a_b-c", safeQuery("  a_b-c/..  "))
	// Only the first 30 characters are looked at
	assert.Equal(t, strings.Repeat("x", 30), safeQuery(strings.Repeat("x", 40)))
	assert.Equal(t, "query", safeQuery(""))
}

func TestScaledSize(t *testing.T) {
	w, h := scaledSize(800, 600, 1536)
	assert.Equal(t, []int{800, 600}, []int{w, h})
	w, h = scaledSize(3072, 1536, 1536)
	assert.Equal(t, []int{1536, 768}, []int{w, h})
	w, h = scaledSize(1000, 4000, 1000)
	assert.Equal(t, []int{250, 1000}, []int{w, h})
}
