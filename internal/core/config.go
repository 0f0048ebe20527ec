// Package core holds the configuration tree shared by the medialinks commands.
package core

import (
	"time"

	"medialinks/internal/i18n"
)

const (
	// DefaultBrowser is the browser executable started for each link
	DefaultBrowser = "firefox"
	// DefaultBrowserStartupDelay gives a freshly started browser time to come up before the next link
	DefaultBrowserStartupDelay = 3 * time.Second
	// DefaultServerPort is the port of the lookup HTTP server
	DefaultServerPort = 8080
	// DefaultOpenLimitPerMinute caps links opened per service and minute; 0 disables the limit
	DefaultOpenLimitPerMinute = 0
	// DefaultDedupCapacity is the number of distinct URLs remembered within one run
	DefaultDedupCapacity = 10000
	// DefaultDedupFalsePositiveRate is the bloom filter false positive rate of the dedup store
	DefaultDedupFalsePositiveRate = 0.001
	// DefaultHistoryLimit is the number of entries printed by the history command
	DefaultHistoryLimit = 20
)

type Config struct {
	Browser   BrowserConfig
	Templates TemplatesConfig
	History   HistoryConfig
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
}

type BrowserConfig struct {
	Command      string
	StartupDelay time.Duration
}

type TemplatesConfig struct {
	// OverridesPath points at an optional TOML file replacing built-in template strings
	OverridesPath string
}

type HistoryConfig struct {
	// Path of the SQLite history database; empty disables history
	Path  string
	Limit int
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type AppConfig struct {
	Language               string
	Dedup                  bool
	// SkipOpened seeds the dedup store with URLs from the history database
	SkipOpened             bool
	DedupCapacity          int
	DedupFalsePositiveRate float64
	OpenLimitPerMinute     int
}

func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			Command:      DefaultBrowser,
			StartupDelay: DefaultBrowserStartupDelay,
		},
		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         DefaultServerPort,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		App: AppConfig{
			Language:               i18n.DefaultLanguage,
			Dedup:                  true,
			DedupCapacity:          DefaultDedupCapacity,
			DedupFalsePositiveRate: DefaultDedupFalsePositiveRate,
			OpenLimitPerMinute:     DefaultOpenLimitPerMinute,
		},
	}
}
