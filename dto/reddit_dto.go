package dto

type RedditToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

type RedditThing[T any] struct {
	Kind string `json:"kind"`
	Data T      `json:"data"`
}

type RedditListing[T any] struct {
	Kind string `json:"kind"`
	Data struct {
		After    string           `json:"after"`
		Before   string           `json:"before"`
		Children []RedditThing[T] `json:"children"`
	} `json:"data"`
}

type RedditAccount struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	CreatedUtc   float64 `json:"created_utc"`
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	IconImg      string  `json:"icon_img"`
	IsSuspended  bool    `json:"is_suspended"`
	IsEmployee   bool    `json:"is_employee"`
	Verified     bool    `json:"verified"`
}

type RedditLink struct {
	Id            string                     `json:"id"`
	Title         string                     `json:"title"`
	Selftext      string                     `json:"selftext"`
	Url           string                     `json:"url"`
	Domain        string                     `json:"domain"`
	Subreddit     string                     `json:"subreddit"`
	Permalink     string                     `json:"permalink"`
	Score         int                        `json:"score"`
	UpvoteRatio   float64                    `json:"upvote_ratio"`
	NumComments   int                        `json:"num_comments"`
	CreatedUtc    float64                    `json:"created_utc"`
	Over18        bool                       `json:"over_18"`
	IsSelf        bool                       `json:"is_self"`
	IsGallery     bool                       `json:"is_gallery"`
	MediaMetadata map[string]RedditMediaMeta `json:"media_metadata"`
}

type RedditMediaMeta struct {
	Status string `json:"status"`
	E      string `json:"e"`
	M      string `json:"m"`
	S      struct {
		U   string `json:"u"`
		Gif string `json:"gif"`
	} `json:"s"`
}

type RedditComment struct {
	Id          string  `json:"id"`
	Body        string  `json:"body"`
	Subreddit   string  `json:"subreddit"`
	Permalink   string  `json:"permalink"`
	LinkId      string  `json:"link_id"`
	LinkTitle   string  `json:"link_title"`
	LinkAuthor  string  `json:"link_author"`
	ParentId    string  `json:"parent_id"`
	Score       int     `json:"score"`
	CreatedUtc  float64 `json:"created_utc"`
	IsSubmitter bool    `json:"is_submitter"`
}
