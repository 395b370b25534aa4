package logic

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"social_osint/shared"
	"strings"
	"time"

	"github.com/spaolacci/murmur3"
)

const (
	mediaTimeoutSec  = 20
	maxMediaFileSize = 200 << 20
)

// Tried in this order when looking for an earlier download.
var mediaExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".mp4", ".webm"}

var mediaTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

const (
	mediaCached      = "cached"
	mediaDownloaded  = "downloaded"
	mediaUnavailable = "unavailable"
	mediaRateLimited = "rate_limited"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_media_downloader.go -package mocks social_osint/logic IMediaDownloader

type IMediaDownloader interface {
	// Download returns the local path of the media at url, or "" if it is not available.
	// The only error returned is a rate limit.
	Download(ctx context.Context, platform shared.Platform, url string, authToken string) (string, error)
}

type mediaDownloader struct {
	cfg     *shared.Config
	logger  shared.ILogger
	ua      shared.IUserAgent
	metrics IMetrics
	client  *http.Client
}

func NewMediaDownloader(cfg *shared.Config, logger shared.ILogger, ua shared.IUserAgent, metrics IMetrics) IMediaDownloader {
	return &mediaDownloader{
		cfg:     cfg,
		logger:  logger,
		ua:      ua,
		metrics: metrics,
		client:  &http.Client{Timeout: mediaTimeoutSec * time.Second},
	}
}

// mediaFileName is the hex of the URL's 128-bit murmur3 hash.
func mediaFileName(url string) string {
	h1, h2 := murmur3.Sum128([]byte(url))
	return fmt.Sprintf("%016x%016x", h1, h2)
}

func (md *mediaDownloader) existing(base string) string {
	for _, ext := range mediaExtensions {
		path := base + ext
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (md *mediaDownloader) Download(ctx context.Context, platform shared.Platform, url string, authToken string) (string, error) {
	base := filepath.Join(md.cfg.MediaDir(), mediaFileName(url))
	if path := md.existing(base); path != "" {
		md.logger.Debugf("Media cache hit: %s", path)
		md.metrics.MediaDownloaded(string(platform), mediaCached)
		return path, nil
	}
	if md.cfg.Offline {
		md.logger.Warnf("Offline: media %s is not in the local cache", url)
		md.metrics.MediaDownloaded(string(platform), mediaUnavailable)
		return "", nil
	}
	path, err := md.fetch(ctx, platform, url, authToken, base)
	outcome := mediaDownloaded
	if err != nil {
		if shared.IsRateLimit(err) {
			md.metrics.MediaDownloaded(string(platform), mediaRateLimited)
			return "", err
		}
		md.logger.Errorf("Media download failed for %s: %v", url, err)
		outcome = mediaUnavailable
	} else if path == "" {
		outcome = mediaUnavailable
	}
	md.metrics.MediaDownloaded(string(platform), outcome)
	return path, nil
}

func (md *mediaDownloader) fetch(ctx context.Context, platform shared.Platform, url, authToken, base string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	md.ua.AddUserAgent(req)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	resp, err := md.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", shared.NewRateLimit(platform.Title() + " Media Download")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status %v", resp.StatusCode)
	}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	ext, ok := mediaTypes[strings.ToLower(mediaType)]
	if !ok {
		md.logger.Warnf("Unsupported media type '%s' for %s", mediaType, url)
		return "", nil
	}
	path := base + ext
	if _, err = shared.WriteAtomic(path, io.LimitReader(resp.Body, maxMediaFileSize)); err != nil {
		return "", err
	}
	md.logger.Debugf("Downloaded %s to %s", url, path)
	return path, nil
}
