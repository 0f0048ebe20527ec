package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"medialinks/internal/browser"
	"medialinks/internal/core"
	"medialinks/internal/flood"
	"medialinks/internal/history"
	httpserver "medialinks/internal/http"
	"medialinks/internal/i18n"
	"medialinks/internal/store"
	"medialinks/pkg/medialink"
)

var errHistoryDisabled = errors.New("history is disabled, set --history-path")

var urlCmd = &cobra.Command{
	Use:   "url <service> <file>...",
	Short: "Print the lookup URL for each file without opening it",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runURL,
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the supported lookup services",
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve link lookups over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently opened links",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

// runOpen opens one browser page per file. Too few arguments or an unknown
// service are not errors; the command then does nothing.
func runOpen(cmd *cobra.Command, args []string) error {
	if viper.GetBool("generate-env-example") {
		return generateEnvExample(cmd)
	}

	if len(args) <= 1 {
		logger.Debug("Nothing to open", zap.Int("args", len(args)))
		return nil
	}

	key, err := medialink.ParseServiceKey(args[0])
	if err != nil {
		logger.Debug("Ignoring unknown service", zap.String("service", args[0]))
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher, cleanup, err := newOpeningDispatcher(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = dispatcher.Dispatch(ctx, key, args[1:])
	return err
}

func runURL(cmd *cobra.Command, args []string) error {
	key, err := medialink.ParseServiceKey(args[0])
	if err != nil {
		return err
	}

	dispatcher, err := newResolvingDispatcher()
	if err != nil {
		return err
	}

	localizer := i18n.NewLocalizer(config.App.Language)
	for _, file := range args[1:] {
		link, err := dispatcher.Resolve(key, file)
		if err != nil {
			return err
		}
		if link.URL == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), localizer.T("cli.no_link", key.String(), file))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), link.URL)
	}
	return nil
}

func runKeys(cmd *cobra.Command, _ []string) error {
	localizer := i18n.NewLocalizer(config.App.Language)
	out := cmd.OutOrStdout()

	for _, key := range medialink.Keys() {
		if key.UsesIdentifier() {
			fmt.Fprintf(out, "%s %s\n", key, localizer.T("keys.identifier"))
			continue
		}
		fmt.Fprintln(out, key)
	}
	return nil
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher, err := newResolvingDispatcher()
	if err != nil {
		return err
	}

	server := httpserver.NewServer(&config.Server, dispatcher, logger.Named("http"))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gCtx)
	})

	logger.Info("medialinks server started",
		zap.String("http_addr", fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)),
		zap.String("language", config.App.Language))

	if err := g.Wait(); err != nil {
		logger.Error("medialinks server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("medialinks server stopped gracefully")
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if config.History.Path == "" {
		return errHistoryDisabled
	}

	hist, err := history.Open(config.History.Path)
	if err != nil {
		return err
	}
	defer hist.Close()

	links, err := hist.Recent(cmd.Context(), config.History.Limit)
	if err != nil {
		return err
	}

	return printHistory(cmd, links)
}

func printHistory(cmd *cobra.Command, links []core.Link) error {
	if len(links) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.NewLocalizer(config.App.Language).T("history.empty"))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, link := range links {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			link.CreatedAt.Local().Format(time.DateTime), link.Key, link.File, link.URL)
	}
	return w.Flush()
}

func newBuilder() (*medialink.Builder, error) {
	localizer := i18n.NewLocalizer(config.App.Language)

	if config.Templates.OverridesPath != "" {
		overrides, err := i18n.LoadOverrides(config.Templates.OverridesPath)
		if err != nil {
			return nil, err
		}
		localizer = localizer.WithOverrides(overrides)
		logger.Debug("Loaded template overrides",
			zap.String("path", config.Templates.OverridesPath),
			zap.Int("count", len(overrides)))
	}

	return medialink.NewBuilder(localizer)
}

// newResolvingDispatcher returns a dispatcher that only resolves links.
func newResolvingDispatcher() (*core.Dispatcher, error) {
	builder, err := newBuilder()
	if err != nil {
		return nil, err
	}
	return core.NewDispatcher(config, builder, nil, nil, nil, nil, logger.Named("dispatcher")), nil
}

func newOpeningDispatcher(ctx context.Context) (*core.Dispatcher, func(), error) {
	builder, err := newBuilder()
	if err != nil {
		return nil, nil, err
	}

	dedup, err := store.NewDedupStore(config.App.DedupCapacity, config.App.DedupFalsePositiveRate)
	if err != nil {
		return nil, nil, err
	}

	gate := flood.New(config.App.OpenLimitPerMinute)
	cleanup := gate.Stop

	var recorder core.HistoryRecorder
	if config.History.Path != "" {
		hist, err := history.Open(config.History.Path)
		if err != nil {
			gate.Stop()
			return nil, nil, err
		}
		recorder = hist
		cleanup = func() {
			gate.Stop()
			if err := hist.Close(); err != nil {
				logger.Warn("Failed to close history", zap.Error(err))
			}
		}

		if config.App.Dedup && config.App.SkipOpened {
			urls, err := hist.URLs(ctx, config.App.DedupCapacity)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
			dedup.Load(urls)
			logger.Debug("Seeded dedup store from history", zap.Int("urls", dedup.Size()))
		}
	}

	launcher := browser.NewLauncher(config.Browser, clockwork.NewRealClock(), logger.Named("browser"))
	dispatcher := core.NewDispatcher(config, builder, launcher, dedup, gate, recorder, logger.Named("dispatcher"))

	return dispatcher, cleanup, nil
}
