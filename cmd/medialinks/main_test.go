package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"medialinks/internal/core"
	"medialinks/pkg/medialink"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	config = core.DefaultConfig()
	logger = zap.NewNop()
	t.Cleanup(viper.Reset)
}

func TestFlagToEnvVar(t *testing.T) {
	tests := []struct {
		flag     string
		expected string
	}{
		{"language", "MEDIALINKS_LANGUAGE"},
		{"browser-startup-delay", "MEDIALINKS_BROWSER_STARTUP_DELAY"},
		{"open-limit-per-minute", "MEDIALINKS_OPEN_LIMIT_PER_MINUTE"},
	}

	for _, tt := range tests {
		if got := flagToEnvVar(tt.flag); got != tt.expected {
			t.Errorf("flagToEnvVar(%q) = %q, expected %q", tt.flag, got, tt.expected)
		}
	}
}

func TestGenerateEnvExampleContent(t *testing.T) {
	content := generateEnvExampleContent(rootCmd)

	for _, expected := range []string{
		"MEDIALINKS_LANGUAGE=de",
		"MEDIALINKS_BROWSER=firefox",
		"MEDIALINKS_BROWSER_STARTUP_DELAY=3s",
		"MEDIALINKS_HISTORY_PATH=",
	} {
		if !strings.Contains(content, expected) {
			t.Errorf("env example should contain %q", expected)
		}
	}

	if strings.Contains(content, "MEDIALINKS_GENERATE_ENV_EXAMPLE") {
		t.Error("env example should not contain command line only flags")
	}
}

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		l := buildLogger(tt.level)
		if !l.Core().Enabled(tt.expected) {
			t.Errorf("buildLogger(%q) should enable %v", tt.level, tt.expected)
		}
		if tt.expected > zapcore.DebugLevel && l.Core().Enabled(tt.expected-1) {
			t.Errorf("buildLogger(%q) should not enable %v", tt.level, tt.expected-1)
		}
	}
}

func TestBuildConfig(t *testing.T) {
	setupTestConfig(t)

	viper.Set("language", "EN")
	viper.Set("browser", "chromium")
	viper.Set("browser-startup-delay", "5s")
	viper.Set("open-limit-per-minute", 0)
	viper.Set("dedup", false)
	viper.Set("history-limit", -3)

	cfg := buildConfig()

	if cfg.App.Language != "en" {
		t.Errorf("Language = %q, expected %q", cfg.App.Language, "en")
	}
	if cfg.Browser.Command != "chromium" {
		t.Errorf("Browser.Command = %q", cfg.Browser.Command)
	}
	if cfg.Browser.StartupDelay != 5*time.Second {
		t.Errorf("Browser.StartupDelay = %v", cfg.Browser.StartupDelay)
	}
	if cfg.App.OpenLimitPerMinute != 0 {
		t.Errorf("OpenLimitPerMinute = %d", cfg.App.OpenLimitPerMinute)
	}
	if cfg.App.Dedup {
		t.Error("Dedup should be disabled")
	}
	if cfg.History.Limit != core.DefaultHistoryLimit {
		t.Errorf("History.Limit = %d, expected default %d", cfg.History.Limit, core.DefaultHistoryLimit)
	}
}

func TestBuildConfig_UnsupportedLanguage(t *testing.T) {
	setupTestConfig(t)

	viper.Set("language", "fr")

	if cfg := buildConfig(); cfg.App.Language != "de" {
		t.Errorf("Language = %q, expected fallback %q", cfg.App.Language, "de")
	}
}

func TestRunOpen_NothingToDo(t *testing.T) {
	setupTestConfig(t)

	// Too few arguments and unknown services end quietly without a browser
	for _, args := range [][]string{nil, {"Imdb"}, {"NoSuchService", "Fargo.mkv"}} {
		if err := runOpen(rootCmd, args); err != nil {
			t.Errorf("runOpen(%v) error = %v", args, err)
		}
	}
}

func TestRunURL(t *testing.T) {
	setupTestConfig(t)

	var stdout, stderr bytes.Buffer
	urlCmd.SetOut(&stdout)
	urlCmd.SetErr(&stderr)
	defer urlCmd.SetOut(nil)
	defer urlCmd.SetErr(nil)

	err := runURL(urlCmd, []string{"google-search-episodes-feeling-lucky", "House of Cards (US)", ""})
	if err != nil {
		t.Fatalf("runURL() error = %v", err)
	}

	expected := "http://www.google.de/search?q=House+of+Cards+Episoden&btnI\n"
	if stdout.String() != expected {
		t.Errorf("stdout = %q, expected %q", stdout.String(), expected)
	}
	if !strings.Contains(stderr.String(), "GoogleSearchEpisodesFeelingLucky") {
		t.Errorf("stderr = %q, expected a no-link notice", stderr.String())
	}
}

func TestRunURL_UnknownService(t *testing.T) {
	setupTestConfig(t)

	if err := runURL(urlCmd, []string{"bing", "Fargo.mkv"}); err == nil {
		t.Error("runURL() with unknown service should fail")
	}
}

func TestRunKeys(t *testing.T) {
	setupTestConfig(t)

	var stdout bytes.Buffer
	keysCmd.SetOut(&stdout)
	defer keysCmd.SetOut(nil)

	if err := runKeys(keysCmd, nil); err != nil {
		t.Fatalf("runKeys() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != len(medialink.Keys()) {
		t.Fatalf("runKeys() printed %d lines, expected %d", len(lines), len(medialink.Keys()))
	}
	if lines[0] != "GoogleSearch" {
		t.Errorf("first key = %q, expected GoogleSearch", lines[0])
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "Imdb ") && !strings.Contains(line, "IMDb") {
			t.Errorf("Imdb line should mention the identifier: %q", line)
		}
	}
}

func TestRunHistory_Disabled(t *testing.T) {
	setupTestConfig(t)

	if err := runHistory(historyCmd, nil); err != errHistoryDisabled {
		t.Errorf("runHistory() error = %v, expected %v", err, errHistoryDisabled)
	}
}

func TestPrintHistory_Empty(t *testing.T) {
	setupTestConfig(t)

	var stdout bytes.Buffer
	historyCmd.SetOut(&stdout)
	defer historyCmd.SetOut(nil)

	if err := printHistory(historyCmd, nil); err != nil {
		t.Fatalf("printHistory() error = %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "Noch keine Links geöffnet." {
		t.Errorf("printHistory() = %q", stdout.String())
	}
}
