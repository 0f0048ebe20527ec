// Package main provides the medialinks CLI application entry point.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"medialinks/internal/core"
	"medialinks/internal/i18n"
)

const envPrefix = "MEDIALINKS"

var (
	cfgFile string
	config  *core.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "medialinks <service> <file>...",
	Short: "medialinks - open lookup pages for media files",
	Long: `medialinks turns media filenames into search terms and opens the matching page
of a lookup service (Google, Wikipedia, IMDb, YouTube, ...) in the browser.

Run "medialinks keys" to list the services.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runOpen,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	supportedLangs := strings.Join(i18n.GetSupportedLanguages(), ", ")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .env)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("language", i18n.DefaultLanguage, fmt.Sprintf("Template and message language (%s)", supportedLangs))
	flags.String("templates", "", "TOML file overriding built-in URL templates")
	flags.String("browser", core.DefaultBrowser, "Browser executable started for each link")
	flags.Duration("browser-startup-delay", core.DefaultBrowserStartupDelay,
		"Time to wait after starting a browser that was not running")
	flags.Bool("dedup", true, "Open each distinct URL only once per run")
	flags.Bool("skip-opened", false, "Also skip URLs already recorded in the history database")
	flags.Int("dedup-capacity", core.DefaultDedupCapacity, "Number of distinct URLs remembered for deduplication")
	flags.Int("open-limit-per-minute", core.DefaultOpenLimitPerMinute, "Maximum links opened per service per minute (0 disables)")
	flags.String("history-path", "", "SQLite database recording opened links (empty disables history)")
	flags.Int("history-limit", core.DefaultHistoryLimit, "Number of entries shown by the history command")
	flags.String("server-host", "127.0.0.1", "HTTP server host")
	flags.Int("server-port", core.DefaultServerPort, "HTTP server port")
	flags.Bool("generate-env-example", false, "Generate .env.example file from current configuration and exit")

	if err := viper.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(urlCmd, keysCmd, serveCmd, historyCmd)
}

func initConfig() {
	envFile := ".env"
	if cfgFile != "" {
		envFile = cfgFile
	}

	if err := gotenv.Load(envFile); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	config = buildConfig()
	logger = buildLogger(config.Log.Level)
}

func buildConfig() *core.Config {
	cfg := core.DefaultConfig()

	cfg.Browser.Command = viper.GetString("browser")
	cfg.Browser.StartupDelay = viper.GetDuration("browser-startup-delay")
	if cfg.Browser.StartupDelay < 0 {
		cfg.Browser.StartupDelay = 0
	}

	cfg.Templates.OverridesPath = viper.GetString("templates")

	cfg.History.Path = viper.GetString("history-path")
	cfg.History.Limit = viper.GetInt("history-limit")
	if cfg.History.Limit <= 0 {
		cfg.History.Limit = core.DefaultHistoryLimit
	}

	cfg.Server.Host = viper.GetString("server-host")
	cfg.Server.Port = viper.GetInt("server-port")

	cfg.Log.Level = viper.GetString("log-level")

	configureApp(cfg)

	return cfg
}

func configureApp(cfg *core.Config) {
	cfg.App.Language = strings.ToLower(viper.GetString("language"))
	if !i18n.IsSupported(cfg.App.Language) {
		fmt.Fprintf(os.Stderr, "Warning: Unsupported language %q, using default (%s)\n",
			cfg.App.Language, i18n.DefaultLanguage)
		cfg.App.Language = i18n.DefaultLanguage
	}

	cfg.App.Dedup = viper.GetBool("dedup")
	cfg.App.SkipOpened = viper.GetBool("skip-opened")
	cfg.App.DedupCapacity = viper.GetInt("dedup-capacity")
	if cfg.App.DedupCapacity <= 0 {
		cfg.App.DedupCapacity = core.DefaultDedupCapacity
	}
	cfg.App.OpenLimitPerMinute = viper.GetInt("open-limit-per-minute")
}

func buildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.WarnLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}
