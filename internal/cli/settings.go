package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/matzehuels/logomaker/pkg/cache"
	"github.com/matzehuels/logomaker/pkg/server"
	"github.com/matzehuels/logomaker/pkg/suggest"
)

// Cache backends.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Environment variables consulted after the settings file.
const (
	envOpenAIKey    = "OPENAI_API_KEY"
	envAnthropicKey = "ANTHROPIC_API_KEY"
	envRedisAddr    = "LOGOMAKER_REDIS_ADDR"
	envKeyPrefix    = "LOGOMAKER_CACHE_PREFIX"
)

// Settings is the user configuration file.
//
//	[ai]
//	provider = "anthropic"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	key_prefix = "staging:"
//	ttl = "48h"
//
//	[server]
//	addr = ":9000"
//	rate_limit = 20
type Settings struct {
	AI     AISettings     `toml:"ai"`
	Cache  CacheSettings  `toml:"cache"`
	Server ServerSettings `toml:"server"`
}

// AISettings selects the suggestion provider.
type AISettings struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
}

// CacheSettings selects the cache backend.
type CacheSettings struct {
	Backend   string `toml:"backend"`
	RedisAddr string `toml:"redis_addr"`
	// KeyPrefix namespaces every cache key, for deployments sharing one Redis.
	KeyPrefix string `toml:"key_prefix"`
	// TTL overrides the suggestion cache lifetime, as a Go duration.
	TTL string `toml:"ttl"`
}

// ServerSettings configures the serve command.
type ServerSettings struct {
	Addr      string `toml:"addr"`
	RateLimit int    `toml:"rate_limit"`
	Burst     int    `toml:"burst"`
}

func defaultSettings() Settings {
	return Settings{
		AI:    AISettings{Provider: string(suggest.ProviderOpenAI)},
		Cache: CacheSettings{Backend: backendFile},
		Server: ServerSettings{
			Addr:      server.DefaultAddr,
			RateLimit: server.DefaultRateLimit,
			Burst:     server.DefaultBurst,
		},
	}
}

// settingsFile returns the default settings path
// ($XDG_CONFIG_HOME/logomaker/config.toml).
func settingsFile() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("no config directory")
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.toml"), nil
}

// loadSettings reads path over the defaults. A missing file is not an error.
func loadSettings(path string) (Settings, error) {
	st := defaultSettings()
	md, err := toml.DecodeFile(path, &st)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Settings{}, fmt.Errorf("read settings %s: unknown key %q", path, undec[0].String())
	}
	if err := st.validate(); err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return st, nil
}

func (s Settings) validate() error {
	switch s.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return fmt.Errorf("cache backend must be file, redis or none, got %q", s.Cache.Backend)
	}
	switch suggest.ProviderKind(s.AI.Provider) {
	case suggest.ProviderOpenAI, suggest.ProviderAnthropic:
	default:
		return fmt.Errorf("ai provider must be openai or anthropic, got %q", s.AI.Provider)
	}
	if _, err := s.suggestionTTL(); err != nil {
		return err
	}
	return nil
}

// osLookup is the environment used outside tests.
var osLookup = os.LookupEnv

// applyEnv overrides file values with the environment.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(envRedisAddr); ok && v != "" {
		s.Cache.RedisAddr = v
		s.Cache.Backend = backendRedis
	}
	if v, ok := lookup(envKeyPrefix); ok {
		s.Cache.KeyPrefix = v
	}
}

// keyer returns the cache keyer, scoped when a key prefix is configured.
func (s Settings) keyer() cache.Keyer {
	if s.Cache.KeyPrefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), s.Cache.KeyPrefix)
}

// apiKey returns the key for provider: the provider's environment variable,
// falling back to the settings file.
func (s Settings) apiKey(provider suggest.ProviderKind, lookup func(string) (string, bool)) string {
	keyVar := envOpenAIKey
	if provider == suggest.ProviderAnthropic {
		keyVar = envAnthropicKey
	}
	if v, ok := lookup(keyVar); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return s.AI.APIKey
}

// suggestionTTL returns the configured suggestion cache lifetime.
func (s Settings) suggestionTTL() (time.Duration, error) {
	if s.Cache.TTL == "" {
		return cache.TTLSuggestion, nil
	}
	d, err := time.ParseDuration(s.Cache.TTL)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("cache ttl must be a positive duration, got %q", s.Cache.TTL)
	}
	return d, nil
}
