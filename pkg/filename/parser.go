// Package filename extracts the significant words and an optional IMDb identifier from media filenames.
package filename

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// ampersandEscape replaces literal ampersands so they survive as a query component.
	ampersandEscape = "%26"
	// hyphen is the plain dash separating artist and title in many filenames.
	hyphen = "-"
	// enDash replaces a standalone hyphen in non-music filenames.
	enDash = "–"
	// identifierPrefix marks a bracketed IMDb identifier token such as "[tt1038919]".
	identifierPrefix = "[tt"
	// identifierSuffix closes a bracketed identifier token.
	identifierSuffix = "]"
	// trackNumberLength is the length of the disc and track number tokens dropped from music filenames.
	trackNumberLength = 2
)

// Kind classifies a detected file extension.
type Kind int

const (
	// KindNone means no known extension was found.
	KindNone Kind = iota
	// KindMusic covers audio files (mp3, flac, ...).
	KindMusic
	// KindMovie covers video containers (avi, mkv, ...).
	KindMovie
	// KindImage covers disc images (iso, bin, ...).
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindMusic:
		return "music"
	case KindMovie:
		return "movie"
	case KindImage:
		return "image"
	default:
		return "none"
	}
}

var (
	parenthesesRegex = regexp.MustCompile(`\(([^)]*)\)`)

	separators = map[rune]bool{
		' ': true,
		'.': true,
		'_': true,
		'+': true,
	}

	extensions = map[string]Kind{
		"mp3":  KindMusic,
		"mpc":  KindMusic,
		"flac": KindMusic,
		"ogg":  KindMusic,
		"m4a":  KindMusic,
		"avi":  KindMovie,
		"mkv":  KindMovie,
		"mp4":  KindMovie,
		"mpg":  KindMovie,
		"mpeg": KindMovie,
		"ogm":  KindMovie,
		"divx": KindMovie,
		"iso":  KindImage,
		"img":  KindImage,
		"bin":  KindImage,
		"cue":  KindImage,
		"nrg":  KindImage,
	}
)

// Result holds the words and identifier extracted from a single filename.
type Result struct {
	// Words are the surviving tokens in filename order.
	Words []string
	// Identifier is the IMDb id (e.g. "tt1038919"), empty when none was found.
	Identifier string
}

// HasIdentifier reports whether an identifier token was found.
func (r Result) HasIdentifier() bool {
	return r.Identifier != ""
}

// Parse tokenizes a filename into words and an optional identifier.
func Parse(name string) Result {
	parts := split(prepare(name))

	_, kind := lookupExtension(parts)
	if kind != KindNone {
		parts = parts[:len(parts)-1]
	}

	result := Result{Words: make([]string, 0, len(parts))}
	for _, part := range parts {
		if id, ok := identifier(part); ok {
			result.Identifier = id
			continue
		}

		if kind == KindMusic {
			if isTrackNumber(part) || part == hyphen {
				continue
			}
			result.Words = append(result.Words, part)
			continue
		}

		if part == hyphen {
			result.Words = append(result.Words, enDash)
			continue
		}
		result.Words = append(result.Words, part)
	}

	return result
}

// Extension returns the lower-cased extension recognized at the end of name and its kind.
// An unknown or missing extension yields "" and KindNone.
func Extension(name string) (string, Kind) {
	return lookupExtension(split(prepare(name)))
}

// Tokens returns the raw tokens of name after parentheses removal and ampersand escaping,
// before extension and word classification.
func Tokens(name string) []string {
	return split(prepare(name))
}

func prepare(name string) string {
	name = parenthesesRegex.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "&", ampersandEscape)
}

func split(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return separators[r]
	})
}

func lookupExtension(parts []string) (string, Kind) {
	if len(parts) == 0 {
		return "", KindNone
	}

	last := strings.ToLower(parts[len(parts)-1])
	if kind, ok := extensions[last]; ok {
		return last, kind
	}
	return "", KindNone
}

func identifier(part string) (string, bool) {
	if !strings.HasPrefix(part, identifierPrefix) || !strings.HasSuffix(part, identifierSuffix) {
		return "", false
	}
	return part[1 : len(part)-1], true
}

func isTrackNumber(part string) bool {
	if len(part) != trackNumberLength {
		return false
	}
	_, err := strconv.Atoi(part)
	return err == nil
}
