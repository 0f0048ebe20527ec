package filename

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParse checks that arbitrary filenames never panic and always yield clean words.
func FuzzParse(f *testing.F) {
	f.Add("Der Kautions-Cop (2010) [tt1038919].avi")
	f.Add("01_01_Black Sabbath_End Of The Beginning.flac")
	f.Add("Ich, beide & sie")
	f.Add("House of Cards (US)")

	// Unbalanced and nested parentheses
	f.Add("Film ((2010) [tt1].mkv")
	f.Add("Film (2010)) [tt1].mkv")
	f.Add("((((()))))")

	// Degenerate inputs
	f.Add("")
	f.Add("[tt]")
	f.Add("-")
	f.Add("..__++  ")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip()
		}

		result := Parse(input)
		for _, word := range result.Words {
			if word == "" {
				t.Errorf("Parse(%q) produced an empty word", input)
			}
			if strings.ContainsAny(word, " ._+&") {
				t.Errorf("Parse(%q) word %q contains a separator", input, word)
			}
		}
		if strings.Contains(result.Identifier, " ") {
			t.Errorf("Parse(%q) identifier %q contains a space", input, result.Identifier)
		}
	})
}
