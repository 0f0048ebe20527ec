package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medialinks/internal/core"
	"medialinks/pkg/medialink"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testLink(file, url string, at time.Time) core.Link {
	return core.Link{
		Key:        medialink.Imdb,
		File:       file,
		URL:        url,
		Words:      []string{"Der", "Kautions-Cop"},
		Identifier: "tt1038919",
		Status:     core.LinkOpened,
		CreatedAt:  at,
	}
}

func TestStore_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC)
	first := testLink("Der Kautions-Cop (2010) [tt1038919].avi", "https://www.imdb.com/de/title/tt1038919/", base)
	second := core.Link{
		Key:       medialink.GoogleSearchEpisodesFeelingLucky,
		File:      "House of Cards (US)",
		URL:       "http://www.google.de/search?q=House+of+Cards+Episoden&btnI",
		Words:     []string{"House", "of", "Cards"},
		Status:    core.LinkOpened,
		CreatedAt: base.Add(time.Minute),
	}

	require.NoError(t, store.Record(ctx, first))
	require.NoError(t, store.Record(ctx, second))

	links, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, second, links[0], "newest link comes first")
	assert.Equal(t, first, links[1])
}

func TestStore_RecentLimit(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, url := range []string{"https://a.example/", "https://b.example/", "https://c.example/"} {
		require.NoError(t, store.Record(ctx, testLink("file", url, base.Add(time.Duration(i)*time.Second))))
	}

	links, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "https://c.example/", links[0].URL)
	assert.Equal(t, "https://b.example/", links[1].URL)
}

func TestStore_RecentEmpty(t *testing.T) {
	store := openTestStore(t)

	links, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestStore_RecordWithoutTimestamp(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	link := testLink("file", "https://a.example/", time.Time{})
	require.NoError(t, store.Record(ctx, link))

	links, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.False(t, links[0].CreatedAt.IsZero())
}

func TestStore_URLs(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, url := range []string{
		"https://a.example/",
		"https://b.example/",
		"https://a.example/",
		"https://c.example/",
	} {
		require.NoError(t, store.Record(ctx, testLink("file", url, base.Add(time.Duration(i)*time.Second))))
	}

	urls, err := store.URLs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example/", "https://a.example/", "https://c.example/"}, urls)

	urls, err = store.URLs(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/", "https://c.example/"}, urls)
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, testLink("file", "https://a.example/", time.Now())))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	links, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "history.db"))
	assert.Error(t, err)
}
