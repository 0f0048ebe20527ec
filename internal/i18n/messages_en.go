package i18n

// englishMessages contains all English translations.
var englishMessages = map[string]string{
	// Service URL templates
	"service.google_search.prefix":    "https://www.google.com/search?q=",
	"service.google_search.separator": "+",
	"service.google_search.suffix":    "",

	"service.google_search_episodes.prefix":    "https://www.google.com/search?q=",
	"service.google_search_episodes.separator": "+",
	"service.google_search_episodes.suffix":    "+episodes",

	"service.google_search_feeling_lucky.prefix":    "https://www.google.com/search?q=",
	"service.google_search_feeling_lucky.separator": "+",
	"service.google_search_feeling_lucky.suffix":    "&btnI",

	"service.google_search_episodes_feeling_lucky.prefix":    "https://www.google.com/search?q=",
	"service.google_search_episodes_feeling_lucky.separator": "+",
	"service.google_search_episodes_feeling_lucky.suffix":    "+episodes&btnI",

	"service.wikipedia.prefix":    "https://en.wikipedia.org/wiki/",
	"service.wikipedia.separator": "_",
	"service.wikipedia.suffix":    "",

	"service.wikipedia_episodes.prefix":    "https://en.wikipedia.org/wiki/",
	"service.wikipedia_episodes.separator": "_",
	"service.wikipedia_episodes.suffix":    "#Episodes",

	"service.wikipedia_search.prefix":    "https://en.wikipedia.org/w/index.php?search=",
	"service.wikipedia_search.separator": "+",
	"service.wikipedia_search.suffix":    "",

	"service.wikipedia_episodes_search.prefix":    "https://en.wikipedia.org/w/index.php?search=",
	"service.wikipedia_episodes_search.separator": "+",
	"service.wikipedia_episodes_search.suffix":    "+episodes",

	"service.imdb.prefix":    "https://www.imdb.com/title/",
	"service.imdb.separator": "",
	"service.imdb.suffix":    "/",

	"service.imdb_search.prefix":    "https://www.imdb.com/find/?q=",
	"service.imdb_search.separator": "+",
	"service.imdb_search.suffix":    "",

	"service.thetvdb_search.prefix":    "https://thetvdb.com/search?query=",
	"service.thetvdb_search.separator": "+",
	"service.thetvdb_search.suffix":    "&menu%5Btype%5D=series",

	"service.serienjunkies.prefix":    "https://www.serienjunkies.de/",
	"service.serienjunkies.separator": "-",
	"service.serienjunkies.suffix":    "/",

	"service.serienjunkies_search.prefix":    "https://www.serienjunkies.de/suche/",
	"service.serienjunkies_search.separator": "+",
	"service.serienjunkies_search.suffix":    "/",

	"service.youtube_search.prefix":    "https://www.youtube.com/results?search_query=",
	"service.youtube_search.separator": "+",
	"service.youtube_search.suffix":    "",

	"service.youtube_search_trailer.prefix":    "https://www.youtube.com/results?search_query=",
	"service.youtube_search_trailer.separator": "+",
	"service.youtube_search_trailer.suffix":    "+trailer",

	"service.fernsehserien.prefix":    "https://www.fernsehserien.de/",
	"service.fernsehserien.separator": "-",
	"service.fernsehserien.suffix":    "",

	"service.fernsehserien_search.prefix":    "https://www.fernsehserien.de/suche/",
	"service.fernsehserien_search.separator": "%20",
	"service.fernsehserien_search.suffix":    "",

	"service.metacritic_search.prefix":    "https://www.metacritic.com/search/",
	"service.metacritic_search.separator": "+",
	"service.metacritic_search.suffix":    "/",

	// Command line messages
	"cli.no_link":      "No link for %s (%s)",
	"cli.duplicate":    "Already opened: %s",
	"cli.rate_limited": "Too many links for %s, skipped: %s",
	"cli.opened":       "Opened: %s",
	"keys.identifier":  "(uses the IMDb id)",
	"history.empty":    "No links opened yet.",
}
