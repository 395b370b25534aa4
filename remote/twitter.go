package remote

import (
	"context"
	"fmt"
	"net/url"
	"social_osint/dto"
	"social_osint/shared"
	"strconv"
	"strings"
)

const (
	twitterMinPage = 5
	TwitterMaxPage = 100
)

const (
	twitterUserFields  = "created_at,public_metrics,profile_image_url,verified,description,location,protected"
	twitterTweetFields = "created_at,public_metrics,attachments,entities,conversation_id,in_reply_to_user_id,referenced_tweets,lang,author_id"
	twitterExpansions  = "attachments.media_keys,author_id,in_reply_to_user_id,referenced_tweets.id,referenced_tweets.id.author_id"
	twitterMediaFields = "url,preview_image_url,type,media_key,width,height,alt_text"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_twitter_api.go -package mocks social_osint/remote ITwitterApi

type ITwitterApi interface {
	GetUser(ctx context.Context, username string) (*dto.TwitterUser, error)
	GetUserTweets(ctx context.Context, userId string, q TweetsQuery) (*dto.TwitterTweetsResp, error)
	BearerToken() string
}

type TweetsQuery struct {
	MaxResults      int
	SinceId         string
	PaginationToken string
}

type twitterApi struct {
	cfg    *shared.Config
	client *apiClient
	token  string
}

func NewTwitterApi(cfg *shared.Config, ua shared.IUserAgent) ITwitterApi {
	return &twitterApi{
		cfg:    cfg,
		client: newApiClient(cfg, ua, cfg.Platforms.Twitter.RequestsPerSec),
		token:  cfg.Secrets.TwitterBearerToken,
	}
}

func (api *twitterApi) BearerToken() string {
	return api.token
}

func (api *twitterApi) GetUser(ctx context.Context, username string) (*dto.TwitterUser, error) {
	if api.token == "" {
		return nil, fmt.Errorf("twitter bearer token is not configured")
	}
	u := fmt.Sprintf("%s/users/by/username/%s?user.fields=%s",
		api.cfg.Platforms.Twitter.BaseUrl, url.PathEscape(username), twitterUserFields)
	var resp dto.TwitterUserResp
	if err := api.client.getJson(ctx, u, bearer(api.token), &resp); err != nil {
		return nil, classify(err, shared.Twitter, username)
	}
	if resp.Data == nil {
		detail := ""
		if len(resp.Errors) != 0 {
			detail = resp.Errors[0].Detail
			if strings.Contains(resp.Errors[0].Title, "Forbidden") || strings.Contains(detail, "suspended") {
				return nil, shared.NewAccessForbidden(shared.Twitter, username, detail)
			}
		}
		return nil, shared.NewUserNotFound(shared.Twitter, username, detail)
	}
	if resp.Data.Protected {
		return nil, shared.NewAccessForbidden(shared.Twitter, username, "account is protected")
	}
	return resp.Data, nil
}

func (api *twitterApi) GetUserTweets(ctx context.Context, userId string, q TweetsQuery) (*dto.TwitterTweetsResp, error) {
	params := url.Values{}
	params.Set("max_results", strconv.Itoa(clamp(q.MaxResults, twitterMinPage, TwitterMaxPage)))
	params.Set("tweet.fields", twitterTweetFields)
	params.Set("expansions", twitterExpansions)
	params.Set("media.fields", twitterMediaFields)
	params.Set("user.fields", "username,name,id")
	if q.SinceId != "" {
		params.Set("since_id", q.SinceId)
	}
	if q.PaginationToken != "" {
		params.Set("pagination_token", q.PaginationToken)
	}
	u := fmt.Sprintf("%s/users/%s/tweets?%s", api.cfg.Platforms.Twitter.BaseUrl, url.PathEscape(userId), params.Encode())
	var resp dto.TwitterTweetsResp
	if err := api.client.getJson(ctx, u, bearer(api.token), &resp); err != nil {
		return nil, classify(err, shared.Twitter, userId)
	}
	return &resp, nil
}
