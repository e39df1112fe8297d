package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}
	conf.applyDefaults()

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.applyDefaults()
	return c
}

type CoreConfig struct {
	Addr string     `toml:"addr"`
	Log  Log        `toml:"log"`
	Chat ChatConfig `toml:"chat"`
}

// ChatConfig 对话管线的行为参数
type ChatConfig struct {
	MaxSearchResults int `toml:"max_search_results"` // 单次检索返回上限，默认 3
	MaxSources       int `toml:"max_sources"`        // 应答附带的引用上限，默认 2
	SnippetLength    int `toml:"snippet_length"`     // 引用摘要截断长度，默认 150
	SessionTTLHours  int `toml:"session_ttl_hours"`  // 会话过期时间，默认 24 小时
	CacheTTLSeconds  int `toml:"cache_ttl_seconds"`  // 检索结果缓存时间，默认 3600 秒
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("RENTY_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Chat.FromENV()
}

func (c *CoreConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Chat.MaxSearchResults <= 0 {
		c.Chat.MaxSearchResults = 3
	}
	if c.Chat.MaxSources <= 0 {
		c.Chat.MaxSources = 2
	}
	if c.Chat.SnippetLength <= 0 {
		c.Chat.SnippetLength = 150
	}
	if c.Chat.SessionTTLHours <= 0 {
		c.Chat.SessionTTLHours = 24
	}
	if c.Chat.CacheTTLSeconds <= 0 {
		c.Chat.CacheTTLSeconds = 3600
	}
}

func (c *ChatConfig) FromENV() {
	readIntENV("RENTY_CHAT_MAX_SEARCH_RESULTS", &c.MaxSearchResults)
	readIntENV("RENTY_CHAT_MAX_SOURCES", &c.MaxSources)
	readIntENV("RENTY_CHAT_SNIPPET_LENGTH", &c.SnippetLength)
	readIntENV("RENTY_CHAT_SESSION_TTL_HOURS", &c.SessionTTLHours)
	readIntENV("RENTY_CHAT_CACHE_TTL_SECONDS", &c.CacheTTLSeconds)
}

func readIntENV(key string, target *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*target = n
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("RENTY_API_LOG_LEVEL")
	l.Path = os.Getenv("RENTY_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
