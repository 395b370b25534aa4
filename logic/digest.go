package logic

import (
	"cmp"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"social_osint/dal"
	"social_osint/shared"
	"strings"
	"time"
)

const (
	digestMaxItems   = 25
	digestSnippetLen = 750
	topDomainCount   = 10
)

// Links to these say nothing about a person's information sources.
var platformDomains = map[string]bool{
	"twitter.com":          true,
	"x.com":                true,
	"t.co":                 true,
	"reddit.com":           true,
	"redd.it":              true,
	"bsky.app":             true,
	"news.ycombinator.com": true,
	"youtube.com":          true,
	"youtu.be":             true,
}

// TargetData is one target's document as handed to the summarizer.
type TargetData struct {
	Target shared.Target
	Doc    dal.Document
}

type digestWriter struct {
	sb strings.Builder
}

func (dw *digestWriter) line(format string, args ...any) {
	if len(args) == 0 {
		dw.sb.WriteString(format)
	} else {
		fmt.Fprintf(&dw.sb, format, args...)
	}
	dw.sb.WriteByte('\n')
}

func (dw *digestWriter) String() string {
	return strings.TrimRight(dw.sb.String(), "\n")
}

func day(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.UTC().Format("2006-01-02")
}

func snippet(text string) string {
	return shared.Truncate(text, digestSnippetLen)
}

func annotations(info []string) string {
	if len(info) == 0 {
		return ""
	}
	return " (" + strings.Join(info, ", ") + ")"
}

func statsJson(stats any) string {
	res, err := json.Marshal(stats)
	if err != nil {
		return "{}"
	}
	return string(res)
}

// formatDigest renders one target's document as the text the LLM reads.
func formatDigest(td TargetData) string {
	var dw digestWriter
	switch doc := td.Doc.(type) {
	case *dal.TwitterDocument:
		digestTwitter(&dw, td.Target, doc)
	case *dal.RedditDocument:
		digestReddit(&dw, td.Target, doc)
	case *dal.BlueskyDocument:
		digestBluesky(&dw, td.Target, doc)
	case *dal.MastodonDocument:
		digestMastodon(&dw, td.Target, doc)
	case *dal.HackerNewsDocument:
		digestHackerNews(&dw, td.Target, doc)
	default:
		return ""
	}
	return dw.String()
}

func digestHeader(dw *digestWriter, p shared.Platform, handle string) {
	dw.line("### %s Data Summary for: %s", p.Title(), handle)
}

func digestStats(dw *digestWriter, stats any) {
	dw.line("\n**Cached Activity Overview:**")
	dw.line("- %s", statsJson(stats))
}

func metricsLine(metrics map[string]int) string {
	keys := slices.Sorted(maps.Keys(metrics))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, metrics[k]))
	}
	return strings.Join(parts, ", ")
}

func digestTwitter(dw *digestWriter, target shared.Target, doc *dal.TwitterDocument) {
	handle := target.Identity
	if doc.UserInfo != nil && doc.UserInfo.Username != "" {
		handle = doc.UserInfo.Username
	}
	digestHeader(dw, shared.Twitter, "@"+handle)
	if ui := doc.UserInfo; ui != nil {
		pm := ui.PublicMetrics
		dw.line("\n**User Profile:**")
		dw.line("- Account Created: %s", day(shared.ParseInstant(ui.CreatedAt)))
		dw.line("- Description: %s", ui.Description)
		if ui.Location != "" {
			dw.line("- Location: %s", ui.Location)
		}
		dw.line("- Stats: Followers=%d, Following=%d, Tweets=%d",
			pm["followers_count"], pm["following_count"], pm["tweet_count"])
	}
	digestStats(dw, doc.Stats)
	if len(doc.Tweets) == 0 {
		return
	}
	dw.line("\n**Recent Tweets (up to %d):**", digestMaxItems)
	for i, t := range doc.Tweets[:min(len(doc.Tweets), digestMaxItems)] {
		var info []string
		if t.RepliedToUserInfo != nil {
			info = append(info, "Reply to @"+t.RepliedToUserInfo.Username)
		}
		if t.IsQuote() {
			info = append(info, "Quotes a tweet")
		}
		if len(t.Media) != 0 {
			info = append(info, fmt.Sprintf("Media: %d", len(t.Media)))
		}
		dw.line("- Tweet %d (%s)%s:", i+1, day(t.SortInstant()), annotations(info))
		dw.line("  Content: %s", snippet(t.Text))
		dw.line("  Metrics: %s", metricsLine(t.Metrics))
	}
}

func digestReddit(dw *digestWriter, target shared.Target, doc *dal.RedditDocument) {
	handle := target.Identity
	if doc.UserProfile != nil && doc.UserProfile.Name != "" {
		handle = doc.UserProfile.Name
	}
	digestHeader(dw, shared.Reddit, "u/"+handle)
	if up := doc.UserProfile; up != nil {
		dw.line("\n**User Profile:**")
		dw.line("- Account Created: %s", day(shared.InstantOf(up.CreatedUtc)))
		dw.line("- Karma: Link=%d, Comment=%d", up.LinkKarma, up.CommentKarma)
	}
	digestStats(dw, doc.Stats)
	if len(doc.Submissions) != 0 {
		dw.line("\n**Recent Submissions (up to %d):**", digestMaxItems)
		for i, s := range doc.Submissions[:min(len(doc.Submissions), digestMaxItems)] {
			dw.line("- Submission %d in r/%s (%s):", i+1, s.Subreddit, day(s.SortInstant()))
			dw.line("  Title: %s", s.Title)
			if !s.IsSelf && s.LinkUrl != "" {
				dw.line("  Link: %s", s.LinkUrl)
			}
			if s.Text != "" {
				dw.line("  Content: %s", snippet(s.Text))
			}
			dw.line("  Score: %d", s.Score)
		}
	}
	if len(doc.Comments) != 0 {
		dw.line("\n**Recent Comments (up to %d):**", digestMaxItems)
		for i, c := range doc.Comments[:min(len(doc.Comments), digestMaxItems)] {
			dw.line("- Comment %d in r/%s (%s):", i+1, c.Subreddit, day(c.SortInstant()))
			dw.line("  Content: %s", snippet(c.Text))
			dw.line("  Score: %d", c.Score)
		}
	}
}

func digestBluesky(dw *digestWriter, target shared.Target, doc *dal.BlueskyDocument) {
	handle := target.Identity
	if doc.ProfileInfo != nil && doc.ProfileInfo.Handle != "" {
		handle = doc.ProfileInfo.Handle
	}
	digestHeader(dw, shared.Bluesky, handle)
	if pi := doc.ProfileInfo; pi != nil {
		dw.line("\n**User Profile:**")
		dw.line("- Account Created: %s", day(shared.ParseInstant(pi.CreatedAt)))
		if pi.DisplayName != "" {
			dw.line("- Display Name: %s", pi.DisplayName)
		}
		dw.line("- Description: %s", pi.Description)
		dw.line("- Stats: Followers=%d, Following=%d, Posts=%d", pi.FollowersCount, pi.FollowsCount, pi.PostsCount)
	}
	digestStats(dw, doc.Stats)
	if len(doc.Posts) == 0 {
		return
	}
	dw.line("\n**Recent Posts (up to %d):**", digestMaxItems)
	for i, p := range doc.Posts[:min(len(doc.Posts), digestMaxItems)] {
		var info []string
		if p.IsRepost {
			info = append(info, "Repost")
		}
		if p.ReplyParentUri != "" {
			reply := "Reply"
			if p.ReplyParentAuthorHandle != "" {
				reply += " to @" + p.ReplyParentAuthorHandle
			}
			info = append(info, reply)
		}
		if p.EmbeddedPostAuthorHandle != "" {
			info = append(info, "Quotes @"+p.EmbeddedPostAuthorHandle)
		}
		if len(p.Media) != 0 {
			info = append(info, fmt.Sprintf("Media: %d", len(p.Media)))
		}
		dw.line("- Post %d (%s)%s:", i+1, day(p.SortInstant()), annotations(info))
		dw.line("  Content: %s", snippet(p.Text))
		dw.line("  Stats: Likes=%d, Reposts=%d, Replies=%d", p.Likes, p.Reposts, p.ReplyCount)
	}
}

func digestMastodon(dw *digestWriter, target shared.Target, doc *dal.MastodonDocument) {
	handle := target.Identity
	if doc.UserInfo != nil && doc.UserInfo.Acct != "" {
		handle = doc.UserInfo.Acct
	}
	digestHeader(dw, shared.Mastodon, handle)
	if ui := doc.UserInfo; ui != nil {
		dw.line("\n**User Profile:**")
		dw.line("- Account Created: %s", day(shared.ParseInstant(ui.CreatedAt)))
		dw.line("- Bio: %s", ui.NoteText)
		dw.line("- Stats: Followers=%d, Following=%d, Posts=%d", ui.FollowersCount, ui.FollowingCount, ui.StatusesCount)
	}
	digestStats(dw, doc.Stats)
	if len(doc.Posts) == 0 {
		return
	}
	dw.line("\n**Recent Posts (up to %d):**", digestMaxItems)
	for i, p := range doc.Posts[:min(len(doc.Posts), digestMaxItems)] {
		var info []string
		if p.IsReblog {
			info = append(info, "Boost of @"+p.ReblogOriginalAuthorAcct)
		}
		if len(p.Media) != 0 {
			info = append(info, fmt.Sprintf("Media: %d", len(p.Media)))
		}
		dw.line("- Post %d (%s)%s:", i+1, day(p.SortInstant()), annotations(info))
		if p.SpoilerText != "" {
			dw.line("  Content warning: %s", p.SpoilerText)
		}
		dw.line("  Content: %s", snippet(p.TextCleaned))
		dw.line("  Stats: Favs=%d, Boosts=%d", p.FavouritesCount, p.ReblogsCount)
	}
}

func digestHackerNews(dw *digestWriter, target shared.Target, doc *dal.HackerNewsDocument) {
	digestHeader(dw, shared.HackerNews, target.Identity)
	digestStats(dw, doc.Stats)
	if len(doc.Items) == 0 {
		return
	}
	dw.line("\n**Recent Activity (up to %d):**", digestMaxItems)
	for i, item := range doc.Items[:min(len(doc.Items), digestMaxItems)] {
		if item.Type == dal.HnStory {
			dw.line("- Story %d (%s):", i+1, day(item.SortInstant()))
			dw.line("  Title: %s", item.Title)
			if item.Url != "" {
				dw.line("  Link: %s", item.Url)
			}
			if item.Text != "" {
				dw.line("  Content: %s", snippet(item.Text))
			}
			dw.line("  Points: %d, Comments: %d", item.Points, item.NumComments)
			continue
		}
		on := ""
		if item.StoryTitle != "" {
			on = fmt.Sprintf(" on \"%s\"", item.StoryTitle)
		}
		dw.line("- Comment %d%s (%s):", i+1, on, day(item.SortInstant()))
		dw.line("  Content: %s", snippet(item.Text))
		dw.line("  Points: %d", item.Points)
	}
}

// documentUrls gathers the external links found in a document.
func documentUrls(doc dal.Document) []string {
	var res []string
	switch d := doc.(type) {
	case *dal.TwitterDocument:
		for _, t := range d.Tweets {
			if t.EntitiesRaw == nil {
				continue
			}
			for _, u := range t.EntitiesRaw.Urls {
				if u.ExpandedUrl != "" {
					res = append(res, u.ExpandedUrl)
				}
			}
		}
	case *dal.RedditDocument:
		for _, s := range d.Submissions {
			if s.LinkUrl != "" {
				res = append(res, s.LinkUrl)
			}
			res = append(res, shared.ExtractUrls(s.Text)...)
		}
		for _, c := range d.Comments {
			res = append(res, shared.ExtractUrls(c.Text)...)
		}
	case *dal.HackerNewsDocument:
		for _, item := range d.Items {
			if item.Url != "" {
				res = append(res, item.Url)
			}
			res = append(res, shared.ExtractUrls(item.Text)...)
		}
	case *dal.MastodonDocument:
		for _, p := range d.Posts {
			res = append(res, p.Links...)
			res = append(res, shared.ExtractUrls(p.TextCleaned)...)
		}
	case *dal.BlueskyDocument:
		for _, p := range d.Posts {
			res = append(res, p.Links...)
			res = append(res, shared.ExtractUrls(p.Text)...)
		}
	}
	return res
}

type domainCount struct {
	Domain string
	Count  int
}

// topDomains counts link domains across all targets, leaving out the platforms' own.
func topDomains(inputs []TargetData) []domainCount {
	counts := map[string]int{}
	for _, td := range inputs {
		for _, u := range documentUrls(td.Doc) {
			domain := shared.DomainOf(u)
			if domain == "" || platformDomains[domain] {
				continue
			}
			counts[domain]++
		}
	}
	res := make([]domainCount, 0, len(counts))
	for domain, count := range counts {
		res = append(res, domainCount{domain, count})
	}
	slices.SortFunc(res, func(a, b domainCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Domain, b.Domain)
	})
	return res[:min(len(res), topDomainCount)]
}

func formatTopDomains(domains []domainCount) string {
	if len(domains) == 0 {
		return ""
	}
	var dw digestWriter
	dw.line("## Top Shared Domains")
	for _, dc := range domains {
		dw.line("- **%s:** %d link(s)", dc.Domain, dc.Count)
	}
	return dw.String()
}
