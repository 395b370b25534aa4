package remote

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"social_osint/dto"
	"social_osint/shared"
	"strconv"
	"sync"
	"time"
)

const RedditMaxPage = 100

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_reddit_api.go -package mocks social_osint/remote IRedditApi

type IRedditApi interface {
	GetUser(ctx context.Context, name string) (*dto.RedditAccount, error)
	GetSubmissions(ctx context.Context, name string, limit int, after string) (*dto.RedditListing[dto.RedditLink], error)
	GetComments(ctx context.Context, name string, limit int, after string) (*dto.RedditListing[dto.RedditComment], error)
}

// redditApi uses application-only OAuth (client credentials grant).
type redditApi struct {
	cfg       *shared.Config
	client    *apiClient
	userAgent string
	muToken   sync.Mutex
	token     string
	expires   time.Time
}

func NewRedditApi(cfg *shared.Config, ua shared.IUserAgent) IRedditApi {
	userAgent := cfg.Secrets.RedditUserAgent
	if userAgent == "" {
		userAgent = ua.Value()
	}
	return &redditApi{
		cfg:       cfg,
		client:    newApiClient(cfg, ua, cfg.Platforms.Reddit.RequestsPerSec),
		userAgent: userAgent,
	}
}

func (api *redditApi) authHeaders(ctx context.Context) (map[string]string, error) {
	api.muToken.Lock()
	defer api.muToken.Unlock()

	if api.token == "" || tokenExpired(api.expires) {
		creds := api.cfg.Secrets.RedditClientId + ":" + api.cfg.Secrets.RedditClientSecret
		hdrs := map[string]string{
			"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(creds)),
			"User-Agent":    api.userAgent,
		}
		var tok dto.RedditToken
		err := api.client.postForm(ctx, api.cfg.Platforms.RedditAuth, hdrs, "grant_type=client_credentials", &tok)
		if err != nil {
			return nil, classify(err, shared.Reddit, "")
		}
		if tok.AccessToken == "" {
			return nil, fmt.Errorf("reddit authentication failed: %s", tok.Error)
		}
		api.token = tok.AccessToken
		api.expires = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	}
	return map[string]string{
		"Authorization": "Bearer " + api.token,
		"User-Agent":    api.userAgent,
	}, nil
}

func (api *redditApi) get(ctx context.Context, name, path string, params url.Values, out any) error {
	hdrs, err := api.authHeaders(ctx)
	if err != nil {
		return err
	}
	u := fmt.Sprintf("%s/user/%s/%s", api.cfg.Platforms.Reddit.BaseUrl, url.PathEscape(name), path)
	params.Set("raw_json", "1")
	u += "?" + params.Encode()
	if err = api.client.getJson(ctx, u, hdrs, out); err != nil {
		return classify(err, shared.Reddit, name)
	}
	return nil
}

func (api *redditApi) GetUser(ctx context.Context, name string) (*dto.RedditAccount, error) {
	var thing dto.RedditThing[dto.RedditAccount]
	if err := api.get(ctx, name, "about", url.Values{}, &thing); err != nil {
		return nil, err
	}
	if thing.Data.Name == "" {
		return nil, shared.NewUserNotFound(shared.Reddit, name, "")
	}
	if thing.Data.IsSuspended {
		return nil, shared.NewAccessForbidden(shared.Reddit, name, "account is suspended")
	}
	return &thing.Data, nil
}

func listingParams(limit int, after string) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clamp(limit, 1, RedditMaxPage)))
	params.Set("sort", "new")
	if after != "" {
		params.Set("after", after)
	}
	return params
}

func (api *redditApi) GetSubmissions(ctx context.Context, name string, limit int, after string) (*dto.RedditListing[dto.RedditLink], error) {
	var res dto.RedditListing[dto.RedditLink]
	if err := api.get(ctx, name, "submitted", listingParams(limit, after), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (api *redditApi) GetComments(ctx context.Context, name string, limit int, after string) (*dto.RedditListing[dto.RedditComment], error) {
	var res dto.RedditListing[dto.RedditComment]
	if err := api.get(ctx, name, "comments", listingParams(limit, after), &res); err != nil {
		return nil, err
	}
	return &res, nil
}
