package core

import (
	"context"
	"time"

	"medialinks/pkg/medialink"
)

// LinkStatus describes what happened to a file on its way to the browser.
type LinkStatus string

const (
	// LinkBuilt means a URL was produced but not opened
	LinkBuilt LinkStatus = "built"
	// LinkOpened means the URL was handed to the browser
	LinkOpened LinkStatus = "opened"
	// LinkNone means the file yielded nothing the service can link
	LinkNone LinkStatus = "none"
	// LinkDuplicate means the same URL was already opened in this run
	LinkDuplicate LinkStatus = "duplicate"
	// LinkRateLimited means the per-service open limit was reached
	LinkRateLimited LinkStatus = "rate_limited"
	// LinkFailed means the browser could not be started
	LinkFailed LinkStatus = "failed"
)

// Link is the outcome of resolving one file for one service.
type Link struct {
	Key        medialink.ServiceKey
	File       string
	URL        string
	Words      []string
	Identifier string
	Status     LinkStatus
	CreatedAt  time.Time
}

// Opener hands a URL to the system browser.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// DedupStore remembers URLs that were already opened.
type DedupStore interface {
	Has(url string) bool
	Add(url string)
}

// OpenGate decides whether another link may be opened for a scope (the service name).
type OpenGate interface {
	Allow(scope string) bool
}

// HistoryRecorder persists opened links.
type HistoryRecorder interface {
	Record(ctx context.Context, link Link) error
}
