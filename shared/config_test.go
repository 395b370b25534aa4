package shared

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	for _, name := range []string{configVarName, secretsVarName, "LLM_API_KEY", "LLM_API_BASE_URL",
		"ANALYSIS_MODEL", "IMAGE_ANALYSIS_MODEL", "TWITTER_BEARER_TOKEN", "REDDIT_CLIENT_ID",
		"REDDIT_CLIENT_SECRET", "BLUESKY_IDENTIFIER", "BLUESKY_APP_SECRET"} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigJsonc(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.jsonc")
	err := os.WriteFile(cfgPath, []byte(`{
		// comments are fine
		"data_dir": "/tmp/osint",
		"max_cache_items": 300,
		"llm": { "max_tokens": 2000, },
	}`), 0644)
	assert.Nil(t, err)

	t.Setenv("TWITTER_BEARER_TOKEN", "tok")
	t.Setenv("ANALYSIS_MODEL", "text-model")

	cfg, err := LoadConfig(cfgPath)
	assert.Nil(t, err)
	assert.Equal(t, "/tmp/osint", cfg.DataDir)
	assert.Equal(t, 300, cfg.MaxCacheItems)
	assert.Equal(t, 2000, cfg.Llm.MaxTokens)
	// Untouched defaults survive
	assert.Equal(t, 0.5, cfg.Llm.Temperature)
	assert.Equal(t, 24, cfg.CacheExpiryHours)
	assert.True(t, cfg.AutoSave)
	assert.Equal(t, "tok", cfg.Secrets.TwitterBearerToken)
	assert.Equal(t, "text-model", cfg.Llm.TextModel)
	assert.Equal(t, filepath.Join("/tmp/osint", "cache"), cfg.CacheDir())
	assert.Equal(t, filepath.Join("/tmp/osint", "analyzer.log"), cfg.LogFile)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearConfigEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.jsonc")
	assert.Nil(t, os.WriteFile(cfgPath, []byte(`{"output_format": "pdf"}`), 0644))
	_, err := LoadConfig(cfgPath)
	assert.NotNil(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.jsonc"))
	assert.NotNil(t, err)
}

func TestCheckLlm(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.CheckLlm()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "LLM_API_KEY")
	cfg.Secrets.LlmApiKey = "k"
	cfg.Llm.ApiBaseUrl = "https://llm"
	cfg.Llm.TextModel = "t"
	cfg.Llm.ImageModel = "i"
	assert.Nil(t, cfg.CheckLlm())
}

func TestAvailablePlatforms(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, []Platform{Bluesky, HackerNews, Mastodon}, cfg.AvailablePlatforms())
	cfg.AllowAnonymousBluesky = false
	cfg.Secrets.TwitterBearerToken = "t"
	cfg.Secrets.RedditClientId = "id"
	cfg.Secrets.RedditClientSecret = "secret"
	assert.Equal(t, []Platform{HackerNews, Mastodon, Reddit, Twitter}, cfg.AvailablePlatforms())
	assert.True(t, cfg.IsAvailable(Reddit))
	assert.False(t, cfg.IsAvailable(Bluesky))
}
