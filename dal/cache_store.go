package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"social_osint/shared"
	"sort"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_cache_store.go -package mocks social_osint/dal ICacheStore

// ICacheStore persists one JSON document per target.
// Concurrent processes writing the same target are not guarded against.
type ICacheStore interface {
	IsOffline() bool
	Load(target shared.Target) (Document, bool)
	Save(target shared.Target, doc Document) error
	Path(target shared.Target) string
	List() []CacheFile
}

// CacheFile is one readable cache file found on disk.
type CacheFile struct {
	FileName string
	Platform shared.Platform
	Identity string // The safe identity from the file name
	Doc      Document
}

type cacheStore struct {
	cfg    *shared.Config
	logger shared.ILogger
	now    func() time.Time
}

func NewCacheStore(cfg *shared.Config, logger shared.ILogger) ICacheStore {
	return &cacheStore{
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (cs *cacheStore) IsOffline() bool {
	return cs.cfg.Offline
}

func (cs *cacheStore) Path(target shared.Target) string {
	fn := fmt.Sprintf("%s_%s.json", target.Platform, shared.SafeFileName(target.Identity))
	return filepath.Join(cs.cfg.CacheDir(), fn)
}

// Load never fails: missing, unreadable, malformed or incomplete files all read as absent.
func (cs *cacheStore) Load(target shared.Target) (Document, bool) {
	path := cs.Path(target)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			cs.logger.Warnf("Failed to read cache file %s: %v", path, err)
		}
		return nil, false
	}
	return cs.parse(target.Platform, path, data)
}

func (cs *cacheStore) parse(platform shared.Platform, path string, data []byte) (Document, bool) {

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		cs.logger.Warnf("Cache file %s is not valid JSON: %v", path, err)
		return nil, false
	}

	// Older Hacker News files kept items under "submissions"
	if platform == shared.HackerNews {
		if _, hasItems := raw["items"]; !hasItems {
			if subs, hasSubs := raw["submissions"]; hasSubs {
				cs.logger.Infof("Migrating legacy Hacker News cache file %s", path)
				raw["items"] = subs
				delete(raw, "submissions")
				data, _ = json.Marshal(raw)
			}
		}
	}

	for _, key := range RequiredKeys[platform] {
		if _, ok := raw[key]; !ok {
			cs.logger.Warnf("Cache file %s lacks required key '%s'; ignoring it", path, key)
			return nil, false
		}
	}

	doc := NewDocument(platform)
	if doc == nil {
		return nil, false
	}
	if err := json.Unmarshal(data, doc); err != nil {
		cs.logger.Warnf("Cache file %s does not match the %s document format: %v", path, platform, err)
		return nil, false
	}
	doc.Normalize(0)
	if doc.Base().FetchedAt().IsZero() {
		cs.logger.Infof("Cache file %s has no valid timestamp; treating it as stale", path)
	}
	return doc, true
}

// Save sorts collections, recomputes stats, stamps the current time and writes the file atomically.
func (cs *cacheStore) Save(target shared.Target, doc Document) error {
	doc.Normalize(cs.cfg.MaxCacheItems * 2)
	doc.RecomputeStats()
	doc.Base().Timestamp = shared.FormatInstant(cs.now())

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s document for %s: %w", target.Platform, target.Identity, err)
	}
	path := cs.Path(target)
	if err = shared.WriteFileAtomic(path, data); err != nil {
		return err
	}
	cs.logger.Debugf("Saved cache file %s", path)
	return nil
}

// List returns every readable cache file, sorted by file name.
func (cs *cacheStore) List() []CacheFile {
	var res []CacheFile
	entries, err := os.ReadDir(cs.cfg.CacheDir())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			cs.logger.Warnf("Failed to list cache directory: %v", err)
		}
		return res
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		platformStr, identity, found := strings.Cut(strings.TrimSuffix(name, ".json"), "_")
		if !found {
			continue
		}
		platform, ok := shared.ParsePlatform(platformStr)
		if !ok {
			continue
		}
		path := filepath.Join(cs.cfg.CacheDir(), name)
		data, err := os.ReadFile(path)
		if err != nil {
			cs.logger.Warnf("Failed to read cache file %s: %v", path, err)
			continue
		}
		doc, ok := cs.parse(platform, path, data)
		if !ok {
			continue
		}
		res = append(res, CacheFile{name, platform, identity, doc})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].FileName < res[j].FileName })
	return res
}
