package shared

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestSanitizeIdentity(t *testing.T) {
	assert.Equal(t, "alice", SanitizeIdentity("alice"))
	// Fullwidth letters fold to ASCII under NFKC
	assert.Equal(t, "alice", SanitizeIdentity("ａｌｉｃｅ"))
	// Zero-width space and control chars are dropped
	assert.Equal(t, "bob", SanitizeIdentity("b\u200bo\x07b"))
	assert.Equal(t, "user@mastodon.social", SanitizeIdentity(" user@mastodon.social\n"))
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "alice", SafeFileName("alice"))
	assert.Equal(t, "user@mastodon.social", SafeFileName("user@mastodon.social"))
	assert.Equal(t, "a_b_c", SafeFileName("a/b c"))
	assert.Equal(t, "my-name_1.x", SafeFileName("my-name_1.x"))
	long := strings.Repeat("x", 150)
	assert.Equal(t, 100, len(SafeFileName(long)))
}
