package dal

import (
	"slices"
	"social_osint/dto"
	"social_osint/shared"
	"time"
)

// DocumentBase holds the fields every cache document has.
type DocumentBase struct {
	Timestamp     string   `json:"timestamp"`
	MediaAnalysis []string `json:"media_analysis"`
	MediaPaths    []string `json:"media_paths"`
}

// FetchedAt is the parsed timestamp; the zero time if it is missing or malformed.
func (b *DocumentBase) FetchedAt() time.Time {
	return shared.ParseInstant(b.Timestamp)
}

// IsFresh tells whether the document was saved less than maxAge ago.
// Documents without a valid timestamp are never fresh.
func (b *DocumentBase) IsFresh(now time.Time, maxAge time.Duration) bool {
	fetchedAt := b.FetchedAt()
	if fetchedAt.IsZero() {
		return false
	}
	return now.Sub(fetchedAt) < maxAge
}

func (b *DocumentBase) normalizeBase(maxMediaPaths int) {
	b.MediaAnalysis = sortedSet(b.MediaAnalysis)
	b.MediaPaths = sortedSet(b.MediaPaths)
	if maxMediaPaths > 0 && len(b.MediaPaths) > maxMediaPaths {
		b.MediaPaths = b.MediaPaths[:maxMediaPaths]
	}
}

func sortedSet(vals []string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// Document is the persisted unit for one target.
type Document interface {
	Base() *DocumentBase
	Platform() shared.Platform
	// ItemCount is what the freshness check compares against the fetch limit.
	ItemCount() int
	// Normalize sorts collections, turns nil slices into empty ones and caps media paths.
	Normalize(maxMediaPaths int)
	RecomputeStats()
}

// RequiredKeys lists the top-level keys a cache file must have to be usable.
var RequiredKeys = map[shared.Platform][]string{
	shared.Twitter:    {"tweets", "user_info"},
	shared.Reddit:     {"submissions", "comments", "stats"},
	shared.Bluesky:    {"posts", "stats"},
	shared.Mastodon:   {"posts", "user_info", "stats"},
	shared.HackerNews: {"items", "stats"},
}

// NewDocument returns an empty skeleton for the platform.
func NewDocument(platform shared.Platform) Document {
	var doc Document
	switch platform {
	case shared.Twitter:
		doc = &TwitterDocument{}
	case shared.Reddit:
		doc = &RedditDocument{}
	case shared.Bluesky:
		doc = &BlueskyDocument{}
	case shared.Mastodon:
		doc = &MastodonDocument{}
	case shared.HackerNews:
		doc = &HackerNewsDocument{}
	default:
		return nil
	}
	doc.Normalize(0)
	return doc
}

func nonNil[T any](vals []T) []T {
	if vals == nil {
		return []T{}
	}
	return vals
}

func avg(sum float64, count, decimals int) float64 {
	return shared.Round(sum/float64(max(1, count)), decimals)
}

// Twitter

type TwitterStats struct {
	TotalTweetsCached int     `json:"total_tweets_cached"`
	TweetsWithMedia   int     `json:"tweets_with_media"`
	ReplyTweetsCached int     `json:"reply_tweets_cached"`
	QuoteTweetsCached int     `json:"quote_tweets_cached"`
	AvgLikes          float64 `json:"avg_likes"`
}

type TwitterDocument struct {
	DocumentBase
	UserInfo *dto.TwitterUser `json:"user_info"`
	Tweets   []Tweet          `json:"tweets"`
	Stats    TwitterStats     `json:"stats"`
}

func (d *TwitterDocument) Base() *DocumentBase       { return &d.DocumentBase }
func (d *TwitterDocument) Platform() shared.Platform { return shared.Twitter }
func (d *TwitterDocument) ItemCount() int            { return len(d.Tweets) }

func (d *TwitterDocument) Normalize(maxMediaPaths int) {
	d.normalizeBase(maxMediaPaths)
	d.Tweets = nonNil(d.Tweets)
	SortItems(d.Tweets)
}

func (d *TwitterDocument) RecomputeStats() {
	s := TwitterStats{TotalTweetsCached: len(d.Tweets)}
	likes := 0
	for _, t := range d.Tweets {
		if len(t.Media) != 0 {
			s.TweetsWithMedia++
		}
		if t.InReplyToUserId != "" {
			s.ReplyTweetsCached++
		}
		if t.IsQuote() {
			s.QuoteTweetsCached++
		}
		likes += t.Metrics["like_count"]
	}
	s.AvgLikes = avg(float64(likes), len(d.Tweets), 2)
	d.Stats = s
}

// Reddit

type RedditStats struct {
	TotalSubmissionsCached   int     `json:"total_submissions_cached"`
	TotalCommentsCached      int     `json:"total_comments_cached"`
	SubmissionsWithMedia     int     `json:"submissions_with_media"`
	TotalMediaItemsProcessed int     `json:"total_media_items_processed"`
	AvgSubmissionScore       float64 `json:"avg_submission_score"`
	AvgCommentScore          float64 `json:"avg_comment_score"`
	AvgSubmissionUpvoteRatio float64 `json:"avg_submission_upvote_ratio"`
}

type RedditDocument struct {
	DocumentBase
	UserProfile *dto.RedditAccount `json:"user_profile"`
	Submissions []RedditSubmission `json:"submissions"`
	Comments    []RedditComment    `json:"comments"`
	Stats       RedditStats        `json:"stats"`
}

func (d *RedditDocument) Base() *DocumentBase       { return &d.DocumentBase }
func (d *RedditDocument) Platform() shared.Platform { return shared.Reddit }

// ItemCount is the smaller collection: both must satisfy the limit for the cache to count as sufficient.
func (d *RedditDocument) ItemCount() int {
	return min(len(d.Submissions), len(d.Comments))
}

func (d *RedditDocument) Normalize(maxMediaPaths int) {
	d.normalizeBase(maxMediaPaths)
	d.Submissions = nonNil(d.Submissions)
	d.Comments = nonNil(d.Comments)
	SortItems(d.Submissions)
	SortItems(d.Comments)
}

func (d *RedditDocument) RecomputeStats() {
	s := RedditStats{
		TotalSubmissionsCached: len(d.Submissions),
		TotalCommentsCached:    len(d.Comments),
	}
	subScore, ratio, commentScore := 0, 0.0, 0
	for _, sub := range d.Submissions {
		if len(sub.Media) != 0 {
			s.SubmissionsWithMedia++
			s.TotalMediaItemsProcessed += len(sub.Media)
		}
		subScore += sub.Score
		ratio += sub.UpvoteRatio
	}
	for _, c := range d.Comments {
		commentScore += c.Score
	}
	s.AvgSubmissionScore = avg(float64(subScore), len(d.Submissions), 2)
	s.AvgCommentScore = avg(float64(commentScore), len(d.Comments), 2)
	s.AvgSubmissionUpvoteRatio = avg(ratio, len(d.Submissions), 3)
	d.Stats = s
}

// Bluesky

type BlueskyLabel struct {
	Value string `json:"value"`
}

type BlueskyProfile struct {
	Did            string         `json:"did"`
	Handle         string         `json:"handle"`
	DisplayName    string         `json:"display_name"`
	Description    string         `json:"description"`
	Avatar         string         `json:"avatar"`
	Banner         string         `json:"banner"`
	FollowersCount int            `json:"followers_count"`
	FollowsCount   int            `json:"follows_count"`
	PostsCount     int            `json:"posts_count"`
	CreatedAt      string         `json:"created_at,omitempty"`
	Labels         []BlueskyLabel `json:"labels"`
}

type BlueskyStats struct {
	TotalPostsCached int     `json:"total_posts_cached"`
	PostsWithMedia   int     `json:"posts_with_media"`
	ReplyPostsCached int     `json:"reply_posts_cached"`
	AvgLikes         float64 `json:"avg_likes"`
}

type BlueskyDocument struct {
	DocumentBase
	ProfileInfo *BlueskyProfile `json:"profile_info"`
	Posts       []BlueskyPost   `json:"posts"`
	Stats       BlueskyStats    `json:"stats"`
}

func (d *BlueskyDocument) Base() *DocumentBase       { return &d.DocumentBase }
func (d *BlueskyDocument) Platform() shared.Platform { return shared.Bluesky }
func (d *BlueskyDocument) ItemCount() int            { return len(d.Posts) }

func (d *BlueskyDocument) Normalize(maxMediaPaths int) {
	d.normalizeBase(maxMediaPaths)
	d.Posts = nonNil(d.Posts)
	SortItems(d.Posts)
}

func (d *BlueskyDocument) RecomputeStats() {
	s := BlueskyStats{TotalPostsCached: len(d.Posts)}
	likes := 0
	for _, p := range d.Posts {
		if len(p.Media) != 0 {
			s.PostsWithMedia++
		}
		if p.ReplyParentUri != "" {
			s.ReplyPostsCached++
		}
		likes += p.Likes
	}
	s.AvgLikes = avg(float64(likes), len(d.Posts), 2)
	d.Stats = s
}

// Mastodon

type MastodonAccount struct {
	Id             string `json:"id"`
	Username       string `json:"username"`
	Acct           string `json:"acct"`
	DisplayName    string `json:"display_name"`
	Url            string `json:"url"`
	NoteText       string `json:"note_text"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	StatusesCount  int    `json:"statuses_count"`
	Locked         bool   `json:"locked"`
	Bot            bool   `json:"bot"`
	CreatedAt      string `json:"created_at"`
}

type MastodonStats struct {
	TotalPostsCached         int `json:"total_posts_cached"`
	TotalOriginalPostsCached int `json:"total_original_posts_cached"`
	TotalReblogsCached       int `json:"total_reblogs_cached"`
	PostsWithMedia           int `json:"posts_with_media"`
}

type MastodonDocument struct {
	DocumentBase
	UserInfo *MastodonAccount `json:"user_info"`
	Posts    []MastodonPost   `json:"posts"`
	Stats    MastodonStats    `json:"stats"`
}

func (d *MastodonDocument) Base() *DocumentBase       { return &d.DocumentBase }
func (d *MastodonDocument) Platform() shared.Platform { return shared.Mastodon }
func (d *MastodonDocument) ItemCount() int            { return len(d.Posts) }

func (d *MastodonDocument) Normalize(maxMediaPaths int) {
	d.normalizeBase(maxMediaPaths)
	d.Posts = nonNil(d.Posts)
	SortItems(d.Posts)
}

func (d *MastodonDocument) RecomputeStats() {
	s := MastodonStats{TotalPostsCached: len(d.Posts)}
	for _, p := range d.Posts {
		if p.IsReblog {
			s.TotalReblogsCached++
		} else {
			s.TotalOriginalPostsCached++
		}
		if len(p.Media) != 0 {
			s.PostsWithMedia++
		}
	}
	d.Stats = s
}

// Hacker News

type HackerNewsStats struct {
	TotalItemsCached     int     `json:"total_items_cached"`
	TotalStoriesCached   int     `json:"total_stories_cached"`
	TotalCommentsCached  int     `json:"total_comments_cached"`
	AverageStoryPoints   float64 `json:"average_story_points"`
	AverageCommentPoints float64 `json:"average_comment_points"`
}

type HackerNewsDocument struct {
	DocumentBase
	Items []HackerNewsItem `json:"items"`
	Stats HackerNewsStats  `json:"stats"`
}

func (d *HackerNewsDocument) Base() *DocumentBase       { return &d.DocumentBase }
func (d *HackerNewsDocument) Platform() shared.Platform { return shared.HackerNews }
func (d *HackerNewsDocument) ItemCount() int            { return len(d.Items) }

func (d *HackerNewsDocument) Normalize(maxMediaPaths int) {
	d.normalizeBase(maxMediaPaths)
	d.Items = nonNil(d.Items)
	SortItems(d.Items)
}

func (d *HackerNewsDocument) RecomputeStats() {
	s := HackerNewsStats{TotalItemsCached: len(d.Items)}
	storyPoints, commentPoints := 0, 0
	for _, item := range d.Items {
		switch item.Type {
		case HnStory:
			s.TotalStoriesCached++
			storyPoints += item.Points
		case HnComment:
			s.TotalCommentsCached++
			commentPoints += item.Points
		}
	}
	s.AverageStoryPoints = avg(float64(storyPoints), s.TotalStoriesCached, 2)
	s.AverageCommentPoints = avg(float64(commentPoints), s.TotalCommentsCached, 2)
	d.Stats = s
}
