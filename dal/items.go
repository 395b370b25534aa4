package dal

import (
	"cmp"
	"slices"
	"social_osint/dto"
	"social_osint/shared"
	"time"
)

// Item is one stored post, comment, submission or story.
type Item interface {
	UniqueKey() string
	SortInstant() time.Time
}

// SortItems orders items newest first; equal instants are ordered by unique key, descending.
func SortItems[T Item](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		if c := b.SortInstant().Compare(a.SortInstant()); c != 0 {
			return c
		}
		return cmp.Compare(b.UniqueKey(), a.UniqueKey())
	})
}

// KeySet returns the unique keys of items.
func KeySet[T Item](items []T) map[string]struct{} {
	res := make(map[string]struct{}, len(items))
	for _, item := range items {
		res[item.UniqueKey()] = struct{}{}
	}
	return res
}

type MediaItem struct {
	Id        string  `json:"id,omitempty"`
	Type      string  `json:"type"`
	Url       string  `json:"url"`
	AltText   string  `json:"alt_text,omitempty"`
	LocalPath string  `json:"local_path,omitempty"`
	Analysis  *string `json:"analysis"`
}

type UserRef struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

type QuotedTweet struct {
	TweetId string  `json:"tweet_id"`
	Author  UserRef `json:"author"`
}

type Tweet struct {
	Id                string                `json:"id"`
	Text              string                `json:"text"`
	CreatedAt         string                `json:"created_at"`
	Lang              string                `json:"lang,omitempty"`
	Metrics           map[string]int        `json:"metrics"`
	EntitiesRaw       *dto.TwitterEntities  `json:"entities_raw"`
	Mentions          []UserRef             `json:"mentions"`
	ConversationId    string                `json:"conversation_id"`
	InReplyToUserId   string                `json:"in_reply_to_user_id,omitempty"`
	RepliedToUserInfo *UserRef              `json:"replied_to_user_info"`
	ReferencedTweets  []dto.TwitterRefTweet `json:"referenced_tweets"`
	QuotedTweetInfo   *QuotedTweet          `json:"quoted_tweet_info"`
	Media             []MediaItem           `json:"media"`
}

func (t Tweet) UniqueKey() string      { return t.Id }
func (t Tweet) SortInstant() time.Time { return shared.ParseInstant(t.CreatedAt) }

func (t Tweet) IsQuote() bool {
	for _, ref := range t.ReferencedTweets {
		if ref.Type == "quoted" {
			return true
		}
	}
	return false
}

type RedditSubmission struct {
	Id          string      `json:"id"`
	Title       string      `json:"title"`
	Text        string      `json:"text"`
	LinkUrl     string      `json:"link_url"`
	Subreddit   string      `json:"subreddit"`
	Permalink   string      `json:"permalink"`
	Score       int         `json:"score"`
	UpvoteRatio float64     `json:"upvote_ratio"`
	NumComments int         `json:"num_comments"`
	CreatedUtc  float64     `json:"created_utc"`
	Over18      bool        `json:"over_18"`
	IsSelf      bool        `json:"is_self"`
	Media       []MediaItem `json:"media"`
}

func (s RedditSubmission) UniqueKey() string      { return s.Id }
func (s RedditSubmission) SortInstant() time.Time { return shared.InstantOf(s.CreatedUtc) }

type RedditComment struct {
	Id           string  `json:"id"`
	Text         string  `json:"text"`
	Subreddit    string  `json:"subreddit"`
	Permalink    string  `json:"permalink"`
	LinkId       string  `json:"link_id"`
	LinkTitle    string  `json:"link_title"`
	ParentId     string  `json:"parent_id"`
	ParentAuthor string  `json:"parent_author,omitempty"`
	Score        int     `json:"score"`
	CreatedUtc   float64 `json:"created_utc"`
	IsSubmitter  bool    `json:"is_submitter"`
}

func (c RedditComment) UniqueKey() string      { return c.Id }
func (c RedditComment) SortInstant() time.Time { return shared.InstantOf(c.CreatedUtc) }

type BlueskyMention struct {
	Did    string `json:"did"`
	Handle string `json:"handle"`
}

type BlueskyPost struct {
	Uri                      string           `json:"uri"`
	Cid                      string           `json:"cid"`
	AuthorDid                string           `json:"author_did"`
	AuthorHandle             string           `json:"author_handle,omitempty"`
	Text                     string           `json:"text"`
	CreatedAt                string           `json:"created_at"`
	Langs                    []string         `json:"langs"`
	Likes                    int              `json:"likes"`
	Reposts                  int              `json:"reposts"`
	ReplyCount               int              `json:"reply_count"`
	IsRepost                 bool             `json:"is_repost,omitempty"`
	Media                    []MediaItem      `json:"media"`
	Mentions                 []BlueskyMention `json:"mentions"`
	Links                    []string         `json:"links,omitempty"`
	ReplyParentUri           string           `json:"reply_parent_uri,omitempty"`
	ReplyRootUri             string           `json:"reply_root_uri,omitempty"`
	ReplyParentAuthorHandle  string           `json:"reply_parent_author_handle,omitempty"`
	EmbedType                string           `json:"embed_type,omitempty"`
	EmbeddedPostAuthorHandle string           `json:"embedded_post_author_handle,omitempty"`
}

func (p BlueskyPost) UniqueKey() string      { return p.Uri }
func (p BlueskyPost) SortInstant() time.Time { return shared.ParseInstant(p.CreatedAt) }

type MastodonPoll struct {
	Id         string   `json:"id"`
	Options    []string `json:"options"`
	VotesCount int      `json:"votes_count"`
	Expired    bool     `json:"expired"`
	Multiple   bool     `json:"multiple"`
}

type MastodonPost struct {
	Id                       string        `json:"id"`
	CreatedAt                string        `json:"created_at"`
	Url                      string        `json:"url"`
	TextCleaned              string        `json:"text_cleaned"`
	Visibility               string        `json:"visibility"`
	Sensitive                bool          `json:"sensitive"`
	SpoilerText              string        `json:"spoiler_text"`
	Language                 string        `json:"language,omitempty"`
	ReblogsCount             int           `json:"reblogs_count"`
	FavouritesCount          int           `json:"favourites_count"`
	RepliesCount             int           `json:"replies_count"`
	InReplyToId              string        `json:"in_reply_to_id,omitempty"`
	IsReblog                 bool          `json:"is_reblog"`
	ReblogOriginalAuthorAcct string        `json:"reblog_original_author_acct,omitempty"`
	ReblogOriginalUrl        string        `json:"reblog_original_url,omitempty"`
	Tags                     []string      `json:"tags"`
	Mentions                 []string      `json:"mentions"`
	Links                    []string      `json:"links"`
	Poll                     *MastodonPoll `json:"poll"`
	Media                    []MediaItem   `json:"media"`
}

func (p MastodonPost) UniqueKey() string      { return p.Id }
func (p MastodonPost) SortInstant() time.Time { return shared.ParseInstant(p.CreatedAt) }

const (
	HnStory   = "story"
	HnComment = "comment"
)

type HackerNewsItem struct {
	ObjectId    string `json:"objectID"`
	Type        string `json:"type"`
	Title       string `json:"title,omitempty"`
	Url         string `json:"url,omitempty"`
	Text        string `json:"text,omitempty"`
	StoryTitle  string `json:"story_title,omitempty"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
	StoryId     int    `json:"story_id,omitempty"`
	ParentId    int    `json:"parent_id,omitempty"`
	CreatedAtI  int64  `json:"created_at_i"`
	CreatedAt   string `json:"created_at"`
}

func (i HackerNewsItem) UniqueKey() string { return i.ObjectId }

func (i HackerNewsItem) SortInstant() time.Time {
	if t := shared.ParseInstant(i.CreatedAt); !t.IsZero() {
		return t
	}
	if i.CreatedAtI != 0 {
		return shared.InstantOf(i.CreatedAtI)
	}
	return shared.MinInstant
}
