package i18n

// germanMessages contains the German templates, pointing at the German editions of each service.
var germanMessages = map[string]string{
	// Service URL templates
	"service.google_search.prefix":    "http://www.google.de/search?q=",
	"service.google_search.separator": "+",
	"service.google_search.suffix":    "",

	"service.google_search_episodes.prefix":    "http://www.google.de/search?q=",
	"service.google_search_episodes.separator": "+",
	"service.google_search_episodes.suffix":    "+Episoden",

	"service.google_search_feeling_lucky.prefix":    "http://www.google.de/search?q=",
	"service.google_search_feeling_lucky.separator": "+",
	"service.google_search_feeling_lucky.suffix":    "&btnI",

	"service.google_search_episodes_feeling_lucky.prefix":    "http://www.google.de/search?q=",
	"service.google_search_episodes_feeling_lucky.separator": "+",
	"service.google_search_episodes_feeling_lucky.suffix":    "+Episoden&btnI",

	"service.wikipedia.prefix":    "https://de.wikipedia.org/wiki/",
	"service.wikipedia.separator": "_",
	"service.wikipedia.suffix":    "",

	"service.wikipedia_episodes.prefix":    "https://de.wikipedia.org/wiki/",
	"service.wikipedia_episodes.separator": "_",
	"service.wikipedia_episodes.suffix":    "#Episodenliste",

	"service.wikipedia_search.prefix":    "https://de.wikipedia.org/w/index.php?search=",
	"service.wikipedia_search.separator": "+",
	"service.wikipedia_search.suffix":    "",

	"service.wikipedia_episodes_search.prefix":    "https://de.wikipedia.org/w/index.php?search=",
	"service.wikipedia_episodes_search.separator": "+",
	"service.wikipedia_episodes_search.suffix":    "+Episodenliste",

	"service.imdb.prefix":    "https://www.imdb.com/de/title/",
	"service.imdb.separator": "",
	"service.imdb.suffix":    "/",

	"service.imdb_search.prefix":    "https://www.imdb.com/de/find/?q=",
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
	"service.youtube_search_trailer.suffix":    "+Trailer+Deutsch",

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
	"cli.no_link":      "Kein Link für %s (%s)",
	"cli.duplicate":    "Bereits geöffnet: %s",
	"cli.rate_limited": "Zu viele Links für %s, übersprungen: %s",
	"cli.opened":       "Geöffnet: %s",
	"keys.identifier":  "(verwendet die IMDb-ID)",
	"history.empty":    "Noch keine Links geöffnet.",
}
