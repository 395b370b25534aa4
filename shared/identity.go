package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxSafeNameLen = 100

// SanitizeIdentity applies NFKC normalization and strips control, format and other category-C runes.
func SanitizeIdentity(identity string) string {
	normalized := norm.NFKC.String(identity)
	var sb strings.Builder
	for _, r := range normalized {
		if unicode.In(r, unicode.C) {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

// SafeFileName keeps letters, digits and "-_.@", replaces everything else with '_', and truncates.
func SafeFileName(val string) string {
	var sb strings.Builder
	n := 0
	for _, r := range val {
		if n == maxSafeNameLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("-_.@", r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
		n++
	}
	return sb.String()
}
