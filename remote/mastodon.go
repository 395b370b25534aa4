package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"social_osint/dto"
	"social_osint/shared"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
)

const MastodonMaxPage = 40

const rssAccept = "application/rss+xml, application/xml;q=0.9, */*;q=0.8"

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_mastodon_api.go -package mocks social_osint/remote IMastodonApi,IMastodonDirectory

type IMastodonApi interface {
	// LookupAccount resolves "user@instance".
	LookupAccount(ctx context.Context, acct string) (*dto.MastoAccount, error)
	GetStatuses(ctx context.Context, accountId string, q StatusesQuery) ([]dto.MastoStatus, error)
}

type StatusesQuery struct {
	Limit   int
	SinceId string
	MaxId   string
}

// IMastodonDirectory picks the client that serves a given instance.
type IMastodonDirectory interface {
	ClientFor(instance string) IMastodonApi
	// Instances lists the API base URLs with configured tokens.
	Instances() []string
}

type mastodonDirectory struct {
	cfg        *shared.Config
	logger     shared.ILogger
	ua         shared.IUserAgent
	loadOnce   sync.Once
	clients    map[string]IMastodonApi
	defClient  IMastodonApi
	muRss      sync.Mutex
	rssClients map[string]IMastodonApi
}

func NewMastodonDirectory(cfg *shared.Config, logger shared.ILogger, ua shared.IUserAgent) IMastodonDirectory {
	return &mastodonDirectory{
		cfg:        cfg,
		logger:     logger,
		ua:         ua,
		clients:    map[string]IMastodonApi{},
		rssClients: map[string]IMastodonApi{},
	}
}

func instanceKey(baseUrl string) string {
	return strings.ToLower(strings.TrimRight(baseUrl, "/"))
}

// instancesPath prefers a file inside the data directory over one relative to the working directory.
func (md *mastodonDirectory) instancesPath() string {
	name := md.cfg.MastodonConfigFile
	if name == "" {
		return ""
	}
	inData := filepath.Join(md.cfg.DataDir, name)
	if _, err := os.Stat(inData); err == nil {
		return inData
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return ""
}

func (md *mastodonDirectory) load() {
	fn := md.instancesPath()
	if fn == "" {
		md.logger.Debugf("No Mastodon instances file; public RSS will be used")
		return
	}
	var instances []dto.MastoInstance
	if err := shared.DeserializeFile(fn, &instances); err != nil {
		md.logger.Errorf("Failed to load Mastodon instances from %s: %v", fn, err)
		return
	}
	var first IMastodonApi
	for _, inst := range instances {
		if inst.ApiBaseUrl == "" || inst.AccessToken == "" {
			md.logger.Warnf("Skipping Mastodon instance entry without api_base_url or access_token: '%s'", inst.Name)
			continue
		}
		client := newMastodonApi(md.cfg, md.ua, inst.ApiBaseUrl, inst.AccessToken)
		md.clients[instanceKey(inst.ApiBaseUrl)] = client
		if first == nil {
			first = client
		}
		if inst.IsDefaultLookupInstance && md.defClient == nil {
			md.defClient = client
		}
	}
	if md.defClient == nil {
		md.defClient = first
	}
	md.logger.Infof("Loaded %d Mastodon instance(s) from %s", len(md.clients), fn)
}

func (md *mastodonDirectory) Instances() []string {
	md.loadOnce.Do(md.load)
	var res []string
	for k := range md.clients {
		res = append(res, k)
	}
	return res
}

func (md *mastodonDirectory) ClientFor(instance string) IMastodonApi {
	md.loadOnce.Do(md.load)
	key := instanceKey("https://" + instance)
	if client, ok := md.clients[key]; ok {
		return client
	}
	if md.defClient != nil {
		return md.defClient
	}
	md.muRss.Lock()
	defer md.muRss.Unlock()
	if client, ok := md.rssClients[key]; ok {
		return client
	}
	client := newMastodonRss(md.cfg, md.ua, instance)
	md.rssClients[key] = client
	return client
}

// mastodonApi talks to the REST API of one instance with a user token.
type mastodonApi struct {
	baseUrl string
	token   string
	client  *apiClient
}

func newMastodonApi(cfg *shared.Config, ua shared.IUserAgent, baseUrl, token string) *mastodonApi {
	return &mastodonApi{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		token:   token,
		client:  newApiClient(cfg, ua, cfg.Platforms.Mastodon.RequestsPerSec),
	}
}

func classifyMastodon(err error, acct string) error {
	err = classify(err, shared.Mastodon, acct)
	if shared.IsAccessForbidden(err) {
		return shared.NewAccessForbidden(shared.Mastodon, acct, "not authorized (locked account?)")
	}
	return err
}

func (api *mastodonApi) LookupAccount(ctx context.Context, acct string) (*dto.MastoAccount, error) {
	u := fmt.Sprintf("%s/api/v1/accounts/lookup?acct=%s", api.baseUrl, url.QueryEscape(acct))
	var res dto.MastoAccount
	if err := api.client.getJson(ctx, u, bearer(api.token), &res); err != nil {
		return nil, classifyMastodon(err, acct)
	}
	if res.Id == "" {
		return nil, shared.NewUserNotFound(shared.Mastodon, acct, "")
	}
	return &res, nil
}

func (api *mastodonApi) GetStatuses(ctx context.Context, accountId string, q StatusesQuery) ([]dto.MastoStatus, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clamp(q.Limit, 1, MastodonMaxPage)))
	if q.SinceId != "" {
		params.Set("since_id", q.SinceId)
	}
	if q.MaxId != "" {
		params.Set("max_id", q.MaxId)
	}
	u := fmt.Sprintf("%s/api/v1/accounts/%s/statuses?%s", api.baseUrl, url.PathEscape(accountId), params.Encode())
	var res []dto.MastoStatus
	if err := api.client.getJson(ctx, u, bearer(api.token), &res); err != nil {
		return nil, classifyMastodon(err, accountId)
	}
	return res, nil
}

// mastodonRss reads the public profile feed at https://instance/@user.rss.
// The feed has a single page, so it only ever answers the first page of statuses.
type mastodonRss struct {
	instance string
	client   *apiClient
	muFeeds  sync.Mutex
	feeds    map[string]*gofeed.Feed
}

func newMastodonRss(cfg *shared.Config, ua shared.IUserAgent, instance string) *mastodonRss {
	return &mastodonRss{
		instance: instance,
		client:   newApiClient(cfg, ua, cfg.Platforms.Mastodon.RequestsPerSec),
		feeds:    map[string]*gofeed.Feed{},
	}
}

func (rss *mastodonRss) feed(ctx context.Context, acct string) (*gofeed.Feed, error) {
	rss.muFeeds.Lock()
	defer rss.muFeeds.Unlock()
	if feed, ok := rss.feeds[acct]; ok {
		return feed, nil
	}
	user, _, _ := strings.Cut(acct, "@")
	u := fmt.Sprintf("https://%s/@%s.rss", rss.instance, url.PathEscape(user))
	body, err := rss.client.getRaw(ctx, u, rssAccept)
	if err != nil {
		return nil, classifyMastodon(err, acct)
	}
	fp := gofeed.NewParser()
	feed, err := fp.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Mastodon feed %s: %w", u, err)
	}
	rss.feeds[acct] = feed
	return feed, nil
}

// forget drops a parsed feed so that the next lookup reads it afresh.
func (rss *mastodonRss) forget(acct string) {
	rss.muFeeds.Lock()
	delete(rss.feeds, acct)
	rss.muFeeds.Unlock()
}

func (rss *mastodonRss) LookupAccount(ctx context.Context, acct string) (*dto.MastoAccount, error) {
	feed, err := rss.feed(ctx, acct)
	if err != nil {
		return nil, err
	}
	user, _, _ := strings.Cut(acct, "@")
	res := &dto.MastoAccount{
		Id:            acct,
		Username:      user,
		Acct:          acct,
		DisplayName:   feed.Title,
		Url:           feed.Link,
		Note:          feed.Description,
		StatusesCount: len(feed.Items),
	}
	if feed.Image != nil {
		res.Avatar = feed.Image.URL
	}
	return res, nil
}

func (rss *mastodonRss) GetStatuses(ctx context.Context, accountId string, q StatusesQuery) ([]dto.MastoStatus, error) {
	if q.MaxId != "" {
		return nil, nil
	}
	feed, err := rss.feed(ctx, accountId)
	if err != nil {
		return nil, err
	}
	rss.forget(accountId)
	var res []dto.MastoStatus
	for _, itm := range feed.Items {
		status := statusFromItem(itm)
		if status.Id == "" || !newerId(status.Id, q.SinceId) {
			continue
		}
		res = append(res, status)
		if q.Limit > 0 && len(res) == q.Limit {
			break
		}
	}
	return res, nil
}

// newerId compares snowflake IDs numerically when both parse, lexically otherwise.
func newerId(id, since string) bool {
	if since == "" {
		return true
	}
	a, errA := strconv.ParseUint(id, 10, 64)
	b, errB := strconv.ParseUint(since, 10, 64)
	if errA == nil && errB == nil {
		return a > b
	}
	if len(id) != len(since) {
		return len(id) > len(since)
	}
	return id > since
}

func statusFromItem(itm *gofeed.Item) dto.MastoStatus {
	link := itm.Link
	if link == "" {
		link = itm.GUID
	}
	res := dto.MastoStatus{
		Url:        link,
		Uri:        itm.GUID,
		Content:    itm.Description,
		Visibility: "public",
	}
	if parsed, err := url.Parse(link); err == nil {
		res.Id = path.Base(parsed.Path)
	}
	if itm.PublishedParsed != nil {
		res.CreatedAt = itm.PublishedParsed.UTC().Format(time.RFC3339)
	}
	for _, cat := range itm.Categories {
		res.Tags = append(res.Tags, dto.MastoTag{Name: cat})
	}
	seen := map[string]bool{}
	addMedia := func(mediaUrl, mimeType, medium, descr string) {
		if mediaUrl == "" || seen[mediaUrl] {
			return
		}
		seen[mediaUrl] = true
		res.MediaAttachments = append(res.MediaAttachments, dto.MastoMedia{
			Id:          strconv.Itoa(len(res.MediaAttachments)),
			Type:        mediaType(mimeType, medium),
			Url:         mediaUrl,
			Description: descr,
		})
	}
	for _, mc := range mediaContents(itm) {
		descr := ""
		if ds := mc.Children["description"]; len(ds) != 0 {
			descr = ds[0].Value
		}
		addMedia(mc.Attrs["url"], mc.Attrs["type"], mc.Attrs["medium"], descr)
	}
	for _, enc := range itm.Enclosures {
		addMedia(enc.URL, enc.Type, "", "")
	}
	return res
}

func mediaContents(itm *gofeed.Item) []ext.Extension {
	media, ok := itm.Extensions["media"]
	if !ok {
		return nil
	}
	return media["content"]
}

// mediaType maps a MIME type or media:content medium onto Mastodon's attachment types.
func mediaType(mimeType, medium string) string {
	switch {
	case medium == "image" || strings.HasPrefix(mimeType, "image/"):
		return "image"
	case medium == "video" || strings.HasPrefix(mimeType, "video/"):
		return "video"
	case medium == "audio" || strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	}
	return "unknown"
}
