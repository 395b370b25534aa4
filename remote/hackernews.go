package remote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"social_osint/dto"
	"social_osint/shared"
	"strconv"
	"strings"
)

const HackerNewsMaxPage = 100

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_hackernews_api.go -package mocks social_osint/remote IHackerNewsApi

type IHackerNewsApi interface {
	// Search lists an author's items newest first. createdAfter > 0 restricts results to later items.
	Search(ctx context.Context, author string, hitsPerPage, page int, createdAfter int64) (*dto.HnSearchResp, error)
}

type hackerNewsApi struct {
	cfg    *shared.Config
	client *apiClient
}

func NewHackerNewsApi(cfg *shared.Config, ua shared.IUserAgent) IHackerNewsApi {
	return &hackerNewsApi{
		cfg:    cfg,
		client: newApiClient(cfg, ua, cfg.Platforms.HackerNews.RequestsPerSec),
	}
}

func (api *hackerNewsApi) Search(ctx context.Context, author string, hitsPerPage, page int, createdAfter int64) (*dto.HnSearchResp, error) {
	params := url.Values{}
	params.Set("tags", "author_"+author)
	params.Set("hitsPerPage", strconv.Itoa(clamp(hitsPerPage, 1, HackerNewsMaxPage)))
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if createdAfter > 0 {
		params.Set("numericFilters", fmt.Sprintf("created_at_i>%d", createdAfter))
	}
	u := fmt.Sprintf("%s/search_by_date?%s", api.cfg.Platforms.HackerNews.BaseUrl, params.Encode())
	var res dto.HnSearchResp
	if err := api.client.getJson(ctx, u, nil, &res); err != nil {
		return nil, classifyHackerNews(err, author)
	}
	return &res, nil
}

// Algolia answers an unknown author tag with 400 "invalid tag name".
func classifyHackerNews(err error, author string) error {
	var se *StatusError
	if errors.As(err, &se) && se.Code == 400 && strings.Contains(strings.ToLower(se.Body), "invalid tag name") {
		return shared.NewUserNotFound(shared.HackerNews, author, "")
	}
	return classify(err, shared.HackerNews, author)
}
