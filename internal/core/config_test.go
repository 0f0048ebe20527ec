package core

import (
	"testing"

	"medialinks/internal/i18n"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.App.Language != i18n.DefaultLanguage {
		t.Errorf("Expected default language to be %s, got %s", i18n.DefaultLanguage, config.App.Language)
	}

	if config.Browser.Command != DefaultBrowser {
		t.Errorf("Expected default browser %s, got %s", DefaultBrowser, config.Browser.Command)
	}

	if config.Browser.StartupDelay != DefaultBrowserStartupDelay {
		t.Errorf("Expected default startup delay %v, got %v", DefaultBrowserStartupDelay, config.Browser.StartupDelay)
	}

	if !config.App.Dedup {
		t.Error("Expected dedup to be enabled by default")
	}

	if config.History.Path != "" {
		t.Errorf("Expected history to be disabled by default, got path %s", config.History.Path)
	}

	if config.Server.Host != "127.0.0.1" {
		t.Errorf("Expected server to bind to loopback by default, got %s", config.Server.Host)
	}
}

func TestLanguageConfiguration(t *testing.T) {
	config := DefaultConfig()

	for _, lang := range i18n.GetSupportedLanguages() {
		config.App.Language = lang
		localizer := i18n.NewLocalizer(config.App.Language)
		if localizer == nil {
			t.Errorf("Failed to create localizer for language %s", lang)
			continue
		}

		message := localizer.T("history.empty")
		if message == "" || message == "history.empty" {
			t.Errorf("Missing message for key 'history.empty' in language %s", lang)
		}
	}
}

func TestConfigConstants(t *testing.T) {
	if DefaultBrowserStartupDelay <= 0 {
		t.Error("DefaultBrowserStartupDelay should be positive")
	}

	if DefaultServerPort <= 0 || DefaultServerPort > 65535 {
		t.Errorf("DefaultServerPort %d is not a valid port", DefaultServerPort)
	}

	if DefaultOpenLimitPerMinute != 0 {
		t.Error("DefaultOpenLimitPerMinute should leave the open limit disabled")
	}

	if DefaultDedupCapacity <= 0 {
		t.Error("DefaultDedupCapacity should be positive")
	}

	if DefaultDedupFalsePositiveRate <= 0 || DefaultDedupFalsePositiveRate >= 1 {
		t.Errorf("DefaultDedupFalsePositiveRate %v should be in (0, 1)", DefaultDedupFalsePositiveRate)
	}

	if DefaultHistoryLimit <= 0 {
		t.Error("DefaultHistoryLimit should be positive")
	}
}
