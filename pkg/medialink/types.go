// Package medialink builds lookup URLs for search engines, encyclopedias and media databases
// from the words extracted out of a media filename.
package medialink

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidServiceKey is returned when a ServiceKey outside the known set is used.
	ErrInvalidServiceKey = errors.New("invalid service key")
	// ErrUnknownServiceName is returned by ParseServiceKey for names that match no service.
	ErrUnknownServiceName = errors.New("unknown service name")
)

// ServiceKey selects the lookup service and its URL template.
type ServiceKey int

const (
	// GoogleSearch searches Google for the words.
	GoogleSearch ServiceKey = iota
	// GoogleSearchEpisodes searches Google for the episode list of a series.
	GoogleSearchEpisodes
	// GoogleSearchFeelingLucky jumps to Google's first result.
	GoogleSearchFeelingLucky
	// GoogleSearchEpisodesFeelingLucky jumps to Google's first episode list result.
	GoogleSearchEpisodesFeelingLucky
	// Wikipedia opens the article named by the words.
	Wikipedia
	// WikipediaEpisodes opens the episode section of the article.
	WikipediaEpisodes
	// WikipediaSearch runs a Wikipedia full text search.
	WikipediaSearch
	// WikipediaEpisodesSearch searches Wikipedia for the episode list.
	WikipediaEpisodesSearch
	// Imdb opens the IMDb title page of the identifier.
	Imdb
	// ImdbSearch searches IMDb.
	ImdbSearch
	// ThetvdbSearch searches TheTVDB.
	ThetvdbSearch
	// Serienjunkies opens the series page on serienjunkies.de.
	Serienjunkies
	// SerienjunkiesSearch searches serienjunkies.de.
	SerienjunkiesSearch
	// YoutubeSearch searches YouTube.
	YoutubeSearch
	// YoutubeSearchTrailer searches YouTube for a trailer.
	YoutubeSearchTrailer
	// Fernsehserien opens the series page on fernsehserien.de.
	Fernsehserien
	// FernsehserienSearch searches fernsehserien.de.
	FernsehserienSearch
	// MetacriticSearch searches Metacritic.
	MetacriticSearch

	serviceKeyCount
)

// serviceNames holds the canonical name and the resource name of every key.
var serviceNames = [serviceKeyCount]struct {
	name     string
	resource string
}{
	GoogleSearch:                     {"GoogleSearch", "google_search"},
	GoogleSearchEpisodes:             {"GoogleSearchEpisodes", "google_search_episodes"},
	GoogleSearchFeelingLucky:         {"GoogleSearchFeelingLucky", "google_search_feeling_lucky"},
	GoogleSearchEpisodesFeelingLucky: {"GoogleSearchEpisodesFeelingLucky", "google_search_episodes_feeling_lucky"},
	Wikipedia:                        {"Wikipedia", "wikipedia"},
	WikipediaEpisodes:                {"WikipediaEpisodes", "wikipedia_episodes"},
	WikipediaSearch:                  {"WikipediaSearch", "wikipedia_search"},
	WikipediaEpisodesSearch:          {"WikipediaEpisodesSearch", "wikipedia_episodes_search"},
	Imdb:                             {"Imdb", "imdb"},
	ImdbSearch:                       {"ImdbSearch", "imdb_search"},
	ThetvdbSearch:                    {"ThetvdbSearch", "thetvdb_search"},
	Serienjunkies:                    {"Serienjunkies", "serienjunkies"},
	SerienjunkiesSearch:              {"SerienjunkiesSearch", "serienjunkies_search"},
	YoutubeSearch:                    {"YoutubeSearch", "youtube_search"},
	YoutubeSearchTrailer:             {"YoutubeSearchTrailer", "youtube_search_trailer"},
	Fernsehserien:                    {"Fernsehserien", "fernsehserien"},
	FernsehserienSearch:              {"FernsehserienSearch", "fernsehserien_search"},
	MetacriticSearch:                 {"MetacriticSearch", "metacritic_search"},
}

// Keys returns all service keys in declaration order.
func Keys() []ServiceKey {
	keys := make([]ServiceKey, 0, serviceKeyCount)
	for k := ServiceKey(0); k < serviceKeyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Valid reports whether k is one of the known service keys.
func (k ServiceKey) Valid() bool {
	return k >= 0 && k < serviceKeyCount
}

func (k ServiceKey) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ServiceKey(%d)", int(k))
	}
	return serviceNames[k].name
}

// Resource returns the snake_case name under which the key's template strings are stored.
func (k ServiceKey) Resource() string {
	if !k.Valid() {
		return ""
	}
	return serviceNames[k].resource
}

// UsesIdentifier reports whether the key links the identifier directly instead of searching for words.
func (k ServiceKey) UsesIdentifier() bool {
	return k == Imdb
}

// ParseServiceKey resolves a service name case-insensitively.
// Dashes, underscores and spaces are ignored, so "google-search" and "GoogleSearch" are the same key.
func ParseServiceKey(name string) (ServiceKey, error) {
	wanted := foldName(name)
	if wanted != "" {
		for k := ServiceKey(0); k < serviceKeyCount; k++ {
			if foldName(serviceNames[k].name) == wanted {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownServiceName, name)
}

func foldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Template holds the literal strings a URL is assembled from.
type Template struct {
	Prefix    string
	Separator string
	Suffix    string
}

// Expand joins words with the separator and wraps them in prefix and suffix.
func (t Template) Expand(words []string) string {
	return t.Prefix + strings.Join(words, t.Separator) + t.Suffix
}
