package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"social_osint/dto"
	"social_osint/shared"
	"strconv"
	"strings"
	"sync"
)

const BlueskyMaxPage = 100

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_bluesky_api.go -package mocks social_osint/remote IBlueskyApi

type IBlueskyApi interface {
	GetProfile(ctx context.Context, actor string) (*dto.BskyProfile, error)
	GetAuthorFeed(ctx context.Context, actor string, limit int, cursor string) (*dto.BskyAuthorFeed, error)
	// AccessJwt is the session token, or "" for anonymous access.
	AccessJwt() string
}

// blueskyApi logs in when credentials are configured; otherwise it reads the public AppView.
type blueskyApi struct {
	cfg       *shared.Config
	client    *apiClient
	muSession sync.Mutex
	session   *dto.BskySession
}

func NewBlueskyApi(cfg *shared.Config, ua shared.IUserAgent) IBlueskyApi {
	return &blueskyApi{
		cfg:    cfg,
		client: newApiClient(cfg, ua, cfg.Platforms.Bluesky.RequestsPerSec),
	}
}

func (api *blueskyApi) hasCredentials() bool {
	return api.cfg.Secrets.BlueskyIdentifier != "" && api.cfg.Secrets.BlueskyAppSecret != ""
}

func (api *blueskyApi) AccessJwt() string {
	api.muSession.Lock()
	defer api.muSession.Unlock()
	if api.session == nil {
		return ""
	}
	return api.session.AccessJwt
}

func (api *blueskyApi) login(ctx context.Context) error {
	api.muSession.Lock()
	defer api.muSession.Unlock()
	if api.session != nil {
		return nil
	}
	u := api.cfg.Platforms.Bluesky.BaseUrl + "/com.atproto.server.createSession"
	body := dto.BskyCreateSession{
		Identifier: api.cfg.Secrets.BlueskyIdentifier,
		Password:   api.cfg.Secrets.BlueskyAppSecret,
	}
	var session dto.BskySession
	if err := api.client.postJson(ctx, u, nil, body, &session); err != nil {
		return fmt.Errorf("bluesky login failed: %w", classify(err, shared.Bluesky, body.Identifier))
	}
	api.session = &session
	return nil
}

func (api *blueskyApi) dropSession() {
	api.muSession.Lock()
	api.session = nil
	api.muSession.Unlock()
}

// query calls an XRPC method, logging in first if needed and once more if the session expired.
func (api *blueskyApi) query(ctx context.Context, actor, method string, params url.Values, out any) error {
	base := api.cfg.Platforms.BlueskyPub
	if api.hasCredentials() {
		if err := api.login(ctx); err != nil {
			return err
		}
		base = api.cfg.Platforms.Bluesky.BaseUrl
	}
	u := fmt.Sprintf("%s/%s?%s", base, method, params.Encode())
	err := api.client.getJson(ctx, u, bearer(api.AccessJwt()), out)
	if err != nil && api.hasCredentials() && xrpcErrorName(err) == "ExpiredToken" {
		api.dropSession()
		if err = api.login(ctx); err != nil {
			return err
		}
		err = api.client.getJson(ctx, u, bearer(api.AccessJwt()), out)
	}
	if err != nil {
		return classifyBluesky(err, actor)
	}
	return nil
}

func xrpcErrorName(err error) string {
	var se *StatusError
	if !errors.As(err, &se) {
		return ""
	}
	var xe dto.BskyXrpcError
	if json.Unmarshal([]byte(se.Body), &xe) != nil {
		return ""
	}
	return xe.Error
}

// classifyBluesky looks at the XRPC error message before falling back to the status code.
func classifyBluesky(err error, actor string) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	msg := strings.ToLower(se.Body)
	switch {
	case se.Code == 429 || strings.Contains(msg, "ratelimitexceeded"):
		return shared.NewRateLimit("Bluesky API")
	case strings.Contains(msg, "profile not found") || strings.Contains(msg, "could not resolve handle") ||
		strings.Contains(msg, "actor not found"):
		return shared.NewUserNotFound(shared.Bluesky, actor, "")
	case strings.Contains(msg, "blocked by actor") || strings.Contains(msg, "blockedactor"):
		return shared.NewAccessForbidden(shared.Bluesky, actor, "blocked by actor")
	}
	return classify(err, shared.Bluesky, actor)
}

func (api *blueskyApi) GetProfile(ctx context.Context, actor string) (*dto.BskyProfile, error) {
	params := url.Values{}
	params.Set("actor", actor)
	var res dto.BskyProfile
	if err := api.query(ctx, actor, "app.bsky.actor.getProfile", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (api *blueskyApi) GetAuthorFeed(ctx context.Context, actor string, limit int, cursor string) (*dto.BskyAuthorFeed, error) {
	params := url.Values{}
	params.Set("actor", actor)
	params.Set("limit", strconv.Itoa(clamp(limit, 1, BlueskyMaxPage)))
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	var res dto.BskyAuthorFeed
	if err := api.query(ctx, actor, "app.bsky.feed.getAuthorFeed", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
