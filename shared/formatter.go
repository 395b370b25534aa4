package shared

import (
	"html"
	"math"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var reUrl = regexp.MustCompile(`https?://[^\s<>"'\)\]]+`)

var stripPolicy = bluemonday.StrictPolicy()

// StripHtml turns markup into plain text.
func StripHtml(htmlStr string) string {
	// Keep paragraph and line breaks as whitespace before the tags are dropped
	htmlStr = strings.ReplaceAll(htmlStr, "</p>", "</p>\n\n")
	htmlStr = strings.ReplaceAll(htmlStr, "<br>", "\n")
	htmlStr = strings.ReplaceAll(htmlStr, "<br/>", "\n")
	htmlStr = strings.ReplaceAll(htmlStr, "<br />", "\n")
	res := stripPolicy.Sanitize(htmlStr)
	res = html.UnescapeString(res)
	return strings.TrimSpace(res)
}

// Truncate cuts text to at most maxLen runes.
func Truncate(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxLen])
}

// ExtractUrls finds http(s) links in free text.
func ExtractUrls(text string) []string {
	var res []string
	for _, m := range reUrl.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:!?")
		res = append(res, m)
	}
	return res
}

// DomainOf returns the host of a URL without a leading "www.", or "" if the URL does not parse.
func DomainOf(rawUrl string) string {
	parsed, err := url.Parse(rawUrl)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

func Round(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
