package shared

import (
	"strings"
)

type Platform string

const (
	Twitter    Platform = "twitter"
	Reddit     Platform = "reddit"
	Bluesky    Platform = "bluesky"
	Mastodon   Platform = "mastodon"
	HackerNews Platform = "hackernews"
)

// AllPlatforms is sorted by name; analyses process platforms in this order.
var AllPlatforms = []Platform{Bluesky, HackerNews, Mastodon, Reddit, Twitter}

func ParsePlatform(name string) (Platform, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range AllPlatforms {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

func (p Platform) Title() string {
	switch p {
	case Twitter:
		return "Twitter"
	case Reddit:
		return "Reddit"
	case Bluesky:
		return "Bluesky"
	case Mastodon:
		return "Mastodon"
	case HackerNews:
		return "HackerNews"
	}
	return string(p)
}

// Target is one account to analyze.
type Target struct {
	Platform Platform
	Identity string
}

// Key is the "platform:identity" form used for per-target fetch overrides.
func (t Target) Key() string {
	return string(t.Platform) + ":" + t.Identity
}

func (t Target) String() string {
	return t.Key()
}
