package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"social_osint/shared"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	maxErrBodyLen = 512
	maxRawBodyLen = 16 << 20
)

// StatusError is a non-2xx response that no platform-specific rule classified.
type StatusError struct {
	Url  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("request to %s failed with status %d", e.Url, e.Code)
	}
	return fmt.Sprintf("request to %s failed with status %d: %s", e.Url, e.Code, body)
}

// apiClient is the JSON-over-HTTP plumbing shared by all platform clients.
type apiClient struct {
	http    *http.Client
	ua      shared.IUserAgent
	limiter *rate.Limiter
}

func newApiClient(cfg *shared.Config, ua shared.IUserAgent, requestsPerSec float64) *apiClient {
	limit := rate.Inf
	if requestsPerSec > 0 {
		limit = rate.Limit(requestsPerSec)
	}
	return &apiClient{
		http:    &http.Client{Timeout: cfg.RequestTimeout()},
		ua:      ua,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (c *apiClient) getJson(ctx context.Context, url string, hdrs map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return c.do(req, hdrs, out)
}

func (c *apiClient) postJson(ctx context.Context, url string, hdrs map[string]string, body, out any) error {
	bodyJson, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyJson))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, hdrs, out)
}

func (c *apiClient) postForm(ctx context.Context, url string, hdrs map[string]string, form string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, hdrs, out)
}

// getRaw returns the body of a non-JSON resource, such as an RSS feed.
func (c *apiClient) getRaw(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req, map[string]string{"Accept": accept})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, maxRawBodyLen))
}

func (c *apiClient) do(req *http.Request, hdrs map[string]string, out any) error {
	resp, err := c.send(req, hdrs)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", req.URL.Redacted(), err)
	}
	return nil
}

// send paces the request and turns non-2xx responses into a StatusError.
func (c *apiClient) send(req *http.Request, hdrs map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	c.ua.AddUserAgent(req)
	req.Header.Set("Accept", "application/json")
	for k, v := range hdrs {
		req.Header.Set(k, v)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", req.URL.Redacted(), err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyLen))
		return nil, &StatusError{Url: req.URL.Redacted(), Code: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// classify maps HTTP statuses onto the per-target error taxonomy.
func classify(err error, platform shared.Platform, identity string) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case se.Code == http.StatusTooManyRequests:
		return shared.NewRateLimit(platform.Title() + " API")
	case se.Code == http.StatusNotFound || se.Code == http.StatusGone:
		return shared.NewUserNotFound(platform, identity, "")
	case se.Code == http.StatusUnauthorized || se.Code == http.StatusForbidden:
		return shared.NewAccessForbidden(platform, identity, shortBody(se.Body))
	}
	return err
}

func shortBody(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 120 {
		body = body[:120]
	}
	return body
}

func bearer(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// tokenExpired is true once a token is within a minute of its expiry.
func tokenExpired(expires time.Time) bool {
	return time.Now().Add(time.Minute).After(expires)
}
