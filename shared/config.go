package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/tailscale/hujson"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configVarName   = "CONFIG"       // If set, config is loaded from this path
	secretsVarName  = "SECRETS"      // If set, secrets are loaded from this path; env vars still override them
	defaultCfgPath  = "config.jsonc" // Used if it exists and no path was given
	dotEnvPath      = ".env"
	cacheSubdir     = "cache"
	mediaSubdir     = "media"
	outputsSubdir   = "outputs"
	profilesSubdir  = "profiles"
	FormatMarkdown  = "markdown"
	FormatJson      = "json"
	defaultLogLevel = "Info"
)

type Config struct {
	Secrets               Secrets         `json:"-"`
	Offline               bool            `json:"-"`
	LogFile               string          `json:"log_file"`
	LogLevel              string          `json:"log_level"`
	ServicePort           uint            `json:"service_port"`
	DataDir               string          `json:"data_dir"`
	DbFile                string          `json:"db_file"`
	CacheExpiryHours      int             `json:"cache_expiry_hours"`
	MaxCacheItems         int             `json:"max_cache_items"`
	DefaultFetchCount     int             `json:"default_fetch_count"`
	RequestTimeoutSec     int             `json:"request_timeout_sec"`
	OutputFormat          string          `json:"output_format"`
	AutoSave              bool            `json:"auto_save"`
	AllowAnonymousBluesky bool            `json:"allow_anonymous_bluesky"`
	MastodonConfigFile    string          `json:"mastodon_config_file"`
	ProfileKeepDays       int             `json:"profile_keep_days"`
	Llm                   LlmConfig       `json:"llm"`
	Platforms             PlatformsConfig `json:"platforms"`
}

type LlmConfig struct {
	ApiBaseUrl        string  `json:"api_base_url"`
	TextModel         string  `json:"text_model"`
	ImageModel        string  `json:"image_model"`
	TimeoutSec        int     `json:"timeout_sec"`
	MaxTokens         int     `json:"max_tokens"`
	Temperature       float64 `json:"temperature"`
	ImageMaxDim       int     `json:"image_max_dim"`
	ImageMaxTokens    int     `json:"image_max_tokens"`
	OpenRouterReferer string  `json:"openrouter_referer"`
	OpenRouterTitle   string  `json:"openrouter_title"`
}

// ApiConfig holds the endpoint and pacing of one platform's API.
type ApiConfig struct {
	BaseUrl        string  `json:"base_url"`
	MaxPages       int     `json:"max_pages"`
	RequestsPerSec float64 `json:"requests_per_sec"`
}

type PlatformsConfig struct {
	Twitter    ApiConfig `json:"twitter"`
	Reddit     ApiConfig `json:"reddit"`
	RedditAuth string    `json:"reddit_auth_url"`
	Bluesky    ApiConfig `json:"bluesky"`
	BlueskyPub string    `json:"bluesky_public_url"`
	Mastodon   ApiConfig `json:"mastodon"`
	HackerNews ApiConfig `json:"hackernews"`
}

type Secrets struct {
	ApiKeys            []string `json:"api_keys"`
	MetricsAuth        string   `json:"metrics_auth"`
	LlmApiKey          string   `json:"llm_api_key"`
	TwitterBearerToken string   `json:"twitter_bearer_token"`
	RedditClientId     string   `json:"reddit_client_id"`
	RedditClientSecret string   `json:"reddit_client_secret"`
	RedditUserAgent    string   `json:"reddit_user_agent"`
	BlueskyIdentifier  string   `json:"bluesky_identifier"`
	BlueskyAppSecret   string   `json:"bluesky_app_secret"`
}

func defaultConfig() Config {
	return Config{
		LogFile:               "",
		LogLevel:              defaultLogLevel,
		ServicePort:           8080,
		DataDir:               "data",
		CacheExpiryHours:      24,
		MaxCacheItems:         200,
		DefaultFetchCount:     50,
		RequestTimeoutSec:     20,
		OutputFormat:          FormatMarkdown,
		AutoSave:              true,
		AllowAnonymousBluesky: true,
		MastodonConfigFile:    "mastodon_instances.json",
		Llm: LlmConfig{
			TimeoutSec:        180,
			MaxTokens:         3500,
			Temperature:       0.5,
			ImageMaxDim:       1536,
			ImageMaxTokens:    1024,
			OpenRouterReferer: "http://localhost:3000",
			OpenRouterTitle:   "SocialOSINT",
		},
		Platforms: PlatformsConfig{
			Twitter:    ApiConfig{"https://api.twitter.com/2", 10, 1},
			Reddit:     ApiConfig{"https://oauth.reddit.com", 10, 1},
			RedditAuth: "https://www.reddit.com/api/v1/access_token",
			Bluesky:    ApiConfig{"https://bsky.social/xrpc", 10, 3},
			BlueskyPub: "https://public.api.bsky.app/xrpc",
			Mastodon:   ApiConfig{"", 10, 2},
			HackerNews: ApiConfig{"https://hn.algolia.com/api/v1", 10, 5},
		},
	}
}

// LoadConfig reads the JSONC config and secrets, then applies environment overrides.
// An empty cfgPath falls back to $CONFIG, then to config.jsonc if present, then to built-in defaults.
func LoadConfig(cfgPath string) (*Config, error) {

	// .env is optional
	_ = godotenv.Load(dotEnvPath)

	config := defaultConfig()

	if len(cfgPath) == 0 {
		cfgPath = os.Getenv(configVarName)
	}
	if len(cfgPath) == 0 {
		if _, err := os.Stat(defaultCfgPath); err == nil {
			cfgPath = defaultCfgPath
		}
	}
	if len(cfgPath) != 0 {
		if err := DeserializeFile(cfgPath, &config); err != nil {
			return nil, err
		}
	}
	if secretsPath := os.Getenv(secretsVarName); len(secretsPath) != 0 {
		if err := DeserializeFile(secretsPath, &config.Secrets); err != nil {
			return nil, err
		}
	}

	applyEnv(&config)
	if config.LogFile == "" {
		config.LogFile = filepath.Join(config.DataDir, "analyzer.log")
	}
	if config.DbFile == "" {
		config.DbFile = filepath.Join(config.DataDir, "history.db")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyEnv(cfg *Config) {
	envStr := func(name string, tgt *string) {
		if val := strings.TrimSpace(os.Getenv(name)); val != "" {
			*tgt = val
		}
	}
	envStr("LLM_API_KEY", &cfg.Secrets.LlmApiKey)
	envStr("LLM_API_BASE_URL", &cfg.Llm.ApiBaseUrl)
	envStr("ANALYSIS_MODEL", &cfg.Llm.TextModel)
	envStr("IMAGE_ANALYSIS_MODEL", &cfg.Llm.ImageModel)
	envStr("OPENROUTER_REFERER", &cfg.Llm.OpenRouterReferer)
	envStr("OPENROUTER_X_TITLE", &cfg.Llm.OpenRouterTitle)
	envStr("TWITTER_BEARER_TOKEN", &cfg.Secrets.TwitterBearerToken)
	envStr("REDDIT_CLIENT_ID", &cfg.Secrets.RedditClientId)
	envStr("REDDIT_CLIENT_SECRET", &cfg.Secrets.RedditClientSecret)
	envStr("REDDIT_USER_AGENT", &cfg.Secrets.RedditUserAgent)
	envStr("BLUESKY_IDENTIFIER", &cfg.Secrets.BlueskyIdentifier)
	envStr("BLUESKY_APP_SECRET", &cfg.Secrets.BlueskyAppSecret)
	envStr("MASTODON_CONFIG_FILE", &cfg.MastodonConfigFile)
}

func (cfg *Config) validate() error {
	if cfg.CacheExpiryHours <= 0 {
		return fmt.Errorf("cache_expiry_hours must be positive, got %d", cfg.CacheExpiryHours)
	}
	if cfg.MaxCacheItems <= 0 {
		return fmt.Errorf("max_cache_items must be positive, got %d", cfg.MaxCacheItems)
	}
	if cfg.DefaultFetchCount <= 0 {
		return fmt.Errorf("default_fetch_count must be positive, got %d", cfg.DefaultFetchCount)
	}
	if cfg.OutputFormat != FormatMarkdown && cfg.OutputFormat != FormatJson {
		return fmt.Errorf("output_format must be '%s' or '%s', got '%s'", FormatMarkdown, FormatJson, cfg.OutputFormat)
	}
	return nil
}

// CheckLlm verifies that everything needed to call the LLM endpoint is configured.
func (cfg *Config) CheckLlm() error {
	var missing []string
	if cfg.Secrets.LlmApiKey == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	if cfg.Llm.ApiBaseUrl == "" {
		missing = append(missing, "LLM_API_BASE_URL")
	}
	if cfg.Llm.TextModel == "" {
		missing = append(missing, "ANALYSIS_MODEL")
	}
	if cfg.Llm.ImageModel == "" {
		missing = append(missing, "IMAGE_ANALYSIS_MODEL")
	}
	if len(missing) != 0 {
		return errors.New("LLM configuration missing: " + strings.Join(missing, ", "))
	}
	return nil
}

func (cfg *Config) CacheDir() string   { return filepath.Join(cfg.DataDir, cacheSubdir) }
func (cfg *Config) MediaDir() string   { return filepath.Join(cfg.DataDir, mediaSubdir) }
func (cfg *Config) OutputsDir() string { return filepath.Join(cfg.DataDir, outputsSubdir) }

// ProfileDir holds the goroutine dumps written while serving.
func (cfg *Config) ProfileDir() string { return filepath.Join(cfg.DataDir, profilesSubdir) }

func (cfg *Config) CacheExpiry() time.Duration {
	return time.Duration(cfg.CacheExpiryHours) * time.Hour
}

func (cfg *Config) RequestTimeout() time.Duration {
	return time.Duration(cfg.RequestTimeoutSec) * time.Second
}

// EnsureDataDirs creates the cache, media and outputs directories.
func (cfg *Config) EnsureDataDirs() error {
	for _, dir := range []string{cfg.CacheDir(), cfg.MediaDir(), cfg.OutputsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}
	return nil
}

// AvailablePlatforms lists the platforms that can be queried with the configured credentials.
// Hacker News and Mastodon need no credentials (Mastodon falls back to public RSS).
func (cfg *Config) AvailablePlatforms() []Platform {
	var res []Platform
	for _, p := range AllPlatforms {
		switch p {
		case Twitter:
			if cfg.Secrets.TwitterBearerToken == "" {
				continue
			}
		case Reddit:
			if cfg.Secrets.RedditClientId == "" || cfg.Secrets.RedditClientSecret == "" {
				continue
			}
		case Bluesky:
			hasCreds := cfg.Secrets.BlueskyIdentifier != "" && cfg.Secrets.BlueskyAppSecret != ""
			if !hasCreds && !cfg.AllowAnonymousBluesky {
				continue
			}
		}
		res = append(res, p)
	}
	return res
}

func (cfg *Config) IsAvailable(p Platform) bool {
	for _, x := range cfg.AvailablePlatforms() {
		if x == p {
			return true
		}
	}
	return false
}

// DeserializeFile reads a JSONC file into obj.
func DeserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fileName, err)
	}
	// JSONC => JSON
	cfgJson, err = StandardizeJSON(cfgJson)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", fileName, err)
	}
	if err = json.Unmarshal(cfgJson, obj); err != nil {
		return fmt.Errorf("failed to deserialize %s: %w", fileName, err)
	}
	return nil
}

func StandardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
