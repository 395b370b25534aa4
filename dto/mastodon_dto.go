package dto

type MastoAccount struct {
	Id             string `json:"id"`
	Username       string `json:"username"`
	Acct           string `json:"acct"`
	DisplayName    string `json:"display_name"`
	Url            string `json:"url"`
	Note           string `json:"note"`
	Avatar         string `json:"avatar"`
	CreatedAt      string `json:"created_at"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	StatusesCount  int    `json:"statuses_count"`
	Locked         bool   `json:"locked"`
	Bot            bool   `json:"bot"`
}

type MastoStatus struct {
	Id               string         `json:"id"`
	CreatedAt        string         `json:"created_at"`
	Url              string         `json:"url"`
	Uri              string         `json:"uri"`
	Content          string         `json:"content"`
	Visibility       string         `json:"visibility"`
	Sensitive        bool           `json:"sensitive"`
	SpoilerText      string         `json:"spoiler_text"`
	Language         string         `json:"language"`
	InReplyToId      string         `json:"in_reply_to_id"`
	ReblogsCount     int            `json:"reblogs_count"`
	FavouritesCount  int            `json:"favourites_count"`
	RepliesCount     int            `json:"replies_count"`
	Account          MastoAccount   `json:"account"`
	Reblog           *MastoStatus   `json:"reblog"`
	MediaAttachments []MastoMedia   `json:"media_attachments"`
	Tags             []MastoTag     `json:"tags"`
	Mentions         []MastoMention `json:"mentions"`
	Poll             *MastoPoll     `json:"poll"`
}

type MastoMedia struct {
	Id          string `json:"id"`
	Type        string `json:"type"`
	Url         string `json:"url"`
	PreviewUrl  string `json:"preview_url"`
	RemoteUrl   string `json:"remote_url"`
	Description string `json:"description"`
}

type MastoTag struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type MastoMention struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	Url      string `json:"url"`
}

type MastoPoll struct {
	Id         string            `json:"id"`
	ExpiresAt  string            `json:"expires_at"`
	Expired    bool              `json:"expired"`
	Multiple   bool              `json:"multiple"`
	VotesCount int               `json:"votes_count"`
	Options    []MastoPollOption `json:"options"`
}

type MastoPollOption struct {
	Title      string `json:"title"`
	VotesCount *int   `json:"votes_count"`
}

type MastoError struct {
	Error string `json:"error"`
}

// MastoInstance is one entry of the instances file.
type MastoInstance struct {
	Name                    string `json:"name"`
	ApiBaseUrl              string `json:"api_base_url"`
	AccessToken             string `json:"access_token"`
	IsDefaultLookupInstance bool   `json:"is_default_lookup_instance"`
}
