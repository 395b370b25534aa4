package dto

type BskyXrpcError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type BskySession struct {
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
	Did        string `json:"did"`
	Handle     string `json:"handle"`
}

type BskyCreateSession struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type BskyProfile struct {
	Did            string      `json:"did"`
	Handle         string      `json:"handle"`
	DisplayName    string      `json:"displayName"`
	Description    string      `json:"description"`
	Avatar         string      `json:"avatar"`
	Banner         string      `json:"banner"`
	FollowersCount int         `json:"followersCount"`
	FollowsCount   int         `json:"followsCount"`
	PostsCount     int         `json:"postsCount"`
	CreatedAt      string      `json:"createdAt"`
	Labels         []BskyLabel `json:"labels"`
}

type BskyLabel struct {
	Val string `json:"val"`
}

type BskyAuthor struct {
	Did         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
}

type BskyAuthorFeed struct {
	Cursor string         `json:"cursor"`
	Feed   []BskyFeedItem `json:"feed"`
}

type BskyFeedItem struct {
	Post   BskyPostView  `json:"post"`
	Reply  *BskyReplyRef `json:"reply"`
	Reason *struct {
		Type string `json:"$type"`
	} `json:"reason"`
}

type BskyReplyRef struct {
	Root   BskyReplyPost `json:"root"`
	Parent BskyReplyPost `json:"parent"`
}

// BskyReplyPost is a post view, or a not-found/blocked stub that carries only the URI.
type BskyReplyPost struct {
	Type   string      `json:"$type"`
	Uri    string      `json:"uri"`
	Author *BskyAuthor `json:"author"`
}

type BskyPostView struct {
	Uri         string         `json:"uri"`
	Cid         string         `json:"cid"`
	Author      BskyAuthor     `json:"author"`
	Record      BskyRecord     `json:"record"`
	Embed       *BskyEmbedView `json:"embed"`
	LikeCount   int            `json:"likeCount"`
	RepostCount int            `json:"repostCount"`
	ReplyCount  int            `json:"replyCount"`
	QuoteCount  int            `json:"quoteCount"`
	IndexedAt   string         `json:"indexedAt"`
}

type BskyRecord struct {
	Type      string           `json:"$type"`
	Text      string           `json:"text"`
	CreatedAt string           `json:"createdAt"`
	Langs     []string         `json:"langs"`
	Facets    []BskyFacet      `json:"facets"`
	Reply     *BskyRecordReply `json:"reply"`
	Embed     *BskyRecordEmbed `json:"embed"`
}

type BskyRecordReply struct {
	Root   BskyStrongRef `json:"root"`
	Parent BskyStrongRef `json:"parent"`
}

type BskyStrongRef struct {
	Uri string `json:"uri"`
	Cid string `json:"cid"`
}

type BskyFacet struct {
	Features []BskyFacetFeature `json:"features"`
}

type BskyFacetFeature struct {
	Type string `json:"$type"`
	Did  string `json:"did"`
	Uri  string `json:"uri"`
	Tag  string `json:"tag"`
}

type BskyRecordEmbed struct {
	Type   string            `json:"$type"`
	Images []BskyRecordImage `json:"images"`
	Media  *BskyRecordEmbed  `json:"media"`
}

type BskyRecordImage struct {
	Alt   string   `json:"alt"`
	Image BskyBlob `json:"image"`
}

type BskyBlob struct {
	Ref struct {
		Link string `json:"$link"`
	} `json:"ref"`
	MimeType string `json:"mimeType"`
}

type BskyEmbedView struct {
	Type     string            `json:"$type"`
	Images   []BskyImageView   `json:"images"`
	External *BskyExternalView `json:"external"`
	Record   *BskyEmbedRecord  `json:"record"`
	Media    *BskyEmbedView    `json:"media"`
}

type BskyImageView struct {
	Thumb    string `json:"thumb"`
	Fullsize string `json:"fullsize"`
	Alt      string `json:"alt"`
}

type BskyExternalView struct {
	Uri         string `json:"uri"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BskyEmbedRecord is a quoted record; recordWithMedia nests it one level deeper.
type BskyEmbedRecord struct {
	Type   string           `json:"$type"`
	Uri    string           `json:"uri"`
	Author *BskyAuthor      `json:"author"`
	Record *BskyEmbedRecord `json:"record"`
}
