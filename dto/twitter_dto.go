package dto

type TwitterApiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

type TwitterUserResp struct {
	Data   *TwitterUser      `json:"data"`
	Errors []TwitterApiError `json:"errors"`
}

type TwitterUser struct {
	Id              string         `json:"id"`
	Name            string         `json:"name"`
	Username        string         `json:"username"`
	CreatedAt       string         `json:"created_at"`
	Description     string         `json:"description"`
	Location        string         `json:"location"`
	ProfileImageUrl string         `json:"profile_image_url"`
	Verified        bool           `json:"verified"`
	Protected       bool           `json:"protected"`
	PublicMetrics   map[string]int `json:"public_metrics"`
}

type TwitterTweetsResp struct {
	Data     []TwitterTweet    `json:"data"`
	Includes TwitterIncludes   `json:"includes"`
	Meta     TwitterMeta       `json:"meta"`
	Errors   []TwitterApiError `json:"errors"`
}

type TwitterTweet struct {
	Id               string              `json:"id"`
	Text             string              `json:"text"`
	CreatedAt        string              `json:"created_at"`
	AuthorId         string              `json:"author_id"`
	ConversationId   string              `json:"conversation_id"`
	InReplyToUserId  string              `json:"in_reply_to_user_id"`
	Lang             string              `json:"lang"`
	PublicMetrics    map[string]int      `json:"public_metrics"`
	Entities         *TwitterEntities    `json:"entities"`
	ReferencedTweets []TwitterRefTweet   `json:"referenced_tweets"`
	Attachments      *TwitterAttachments `json:"attachments"`
}

type TwitterEntities struct {
	Urls     []TwitterUrlEntity     `json:"urls,omitempty"`
	Mentions []TwitterMentionEntity `json:"mentions,omitempty"`
	Hashtags []TwitterTagEntity     `json:"hashtags,omitempty"`
}

type TwitterUrlEntity struct {
	Url         string `json:"url"`
	ExpandedUrl string `json:"expanded_url"`
	DisplayUrl  string `json:"display_url"`
}

type TwitterMentionEntity struct {
	Username string `json:"username"`
	Id       string `json:"id,omitempty"`
}

type TwitterTagEntity struct {
	Tag string `json:"tag"`
}

type TwitterRefTweet struct {
	Type string `json:"type"`
	Id   string `json:"id"`
}

type TwitterAttachments struct {
	MediaKeys []string `json:"media_keys"`
}

type TwitterIncludes struct {
	Media  []TwitterMedia `json:"media"`
	Users  []TwitterUser  `json:"users"`
	Tweets []TwitterTweet `json:"tweets"`
}

type TwitterMedia struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	Url             string `json:"url"`
	PreviewImageUrl string `json:"preview_image_url"`
	AltText         string `json:"alt_text"`
}

type TwitterMeta struct {
	ResultCount int    `json:"result_count"`
	NewestId    string `json:"newest_id"`
	OldestId    string `json:"oldest_id"`
	NextToken   string `json:"next_token"`
}
