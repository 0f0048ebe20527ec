package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"medialinks/internal/i18n"
	"medialinks/pkg/filename"
	"medialinks/pkg/medialink"
)

// Dispatcher turns filenames into links and hands them to the browser.
type Dispatcher struct {
	config    *Config
	builder   *medialink.Builder
	opener    Opener
	dedup     DedupStore
	gate      OpenGate
	history   HistoryRecorder
	logger    *zap.Logger
	localizer *i18n.Localizer
	now       func() time.Time
}

// NewDispatcher creates a dispatcher. dedup, gate and history may be nil to disable them.
func NewDispatcher(
	config *Config,
	builder *medialink.Builder,
	opener Opener,
	dedup DedupStore,
	gate OpenGate,
	history HistoryRecorder,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		config:    config,
		builder:   builder,
		opener:    opener,
		dedup:     dedup,
		gate:      gate,
		history:   history,
		logger:    logger,
		localizer: i18n.NewLocalizer(config.App.Language),
		now:       time.Now,
	}
}

// Resolve parses file and builds its URL for key without opening it.
// Filenames are NFC normalized first so decomposed umlauts yield the same words.
func (d *Dispatcher) Resolve(key medialink.ServiceKey, file string) (Link, error) {
	normalized := norm.NFC.String(file)
	result := filename.Parse(normalized)

	url, err := d.builder.Build(key, result)
	if err != nil {
		return Link{}, fmt.Errorf("failed to build link for %q: %w", file, err)
	}

	link := Link{
		Key:        key,
		File:       file,
		URL:        url,
		Words:      result.Words,
		Identifier: result.Identifier,
		Status:     LinkBuilt,
		CreatedAt:  d.now(),
	}
	if url == "" {
		link.Status = LinkNone
	}

	if d.logger.Core().Enabled(zap.DebugLevel) {
		ext, kind := filename.Extension(normalized)
		d.logger.Debug("Resolved file",
			zap.String("file", file),
			zap.String("service", key.String()),
			zap.String("extension", ext),
			zap.Stringer("kind", kind),
			zap.Strings("words", result.Words),
			zap.String("identifier", result.Identifier),
			zap.String("url", url))
	}

	return link, nil
}

// Dispatch resolves every file in order and opens the resulting URLs.
// Browser failures do not stop the remaining files; they are returned joined at the end.
func (d *Dispatcher) Dispatch(ctx context.Context, key medialink.ServiceKey, files []string) ([]Link, error) {
	links := make([]Link, 0, len(files))
	var openErrs []error

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return links, err
		}

		link, err := d.Resolve(key, file)
		if err != nil {
			return links, err
		}

		if err := d.open(ctx, &link); err != nil {
			openErrs = append(openErrs, err)
		}
		links = append(links, link)
	}

	return links, errors.Join(openErrs...)
}

func (d *Dispatcher) open(ctx context.Context, link *Link) error {
	if link.Status == LinkNone {
		d.logger.Info(d.localizer.T("cli.no_link", link.Key.String(), link.File))
		return nil
	}

	if d.config.App.Dedup && d.dedup != nil && d.dedup.Has(link.URL) {
		link.Status = LinkDuplicate
		d.logger.Info(d.localizer.T("cli.duplicate", link.URL))
		return nil
	}

	if d.gate != nil && !d.gate.Allow(link.Key.String()) {
		link.Status = LinkRateLimited
		d.logger.Warn(d.localizer.T("cli.rate_limited", link.Key.String(), link.File))
		return nil
	}

	if err := d.opener.Open(ctx, link.URL); err != nil {
		link.Status = LinkFailed
		d.logger.Error("Failed to open link",
			zap.String("url", link.URL),
			zap.Error(err))
		return fmt.Errorf("failed to open %s: %w", link.URL, err)
	}

	link.Status = LinkOpened
	if d.dedup != nil {
		d.dedup.Add(link.URL)
	}
	d.logger.Info(d.localizer.T("cli.opened", link.URL))

	if d.history != nil {
		if err := d.history.Record(ctx, *link); err != nil {
			d.logger.Warn("Failed to record history", zap.Error(err))
		}
	}

	return nil
}
