package search

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// abbreviations end with a period without ending the sentence
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "sr": true,
	"jr": true, "st": true, "mt": true, "ft": true, "gen": true, "col": true,
	"lt": true, "sgt": true, "capt": true, "gov": true, "sen": true, "rep": true,
	"rev": true, "hon": true, "vs": true, "inc": true, "ltd": true,
	"co": true, "corp": true, "vol": true, "fig": true, "approx": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true, "jul": true,
	"aug": true, "sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
	"e.g": true, "i.e": true,
}

// SplitSentences splits text into passages on line breaks and each passage
// into sentences on UAX #29 sentence boundaries. Blank segments are dropped
// and a segment ending in an abbreviation is joined to the one after it.
func SplitSentences(text string) []string {
	var out []string
	for _, passage := range strings.Split(text, "\n") {
		if strings.TrimSpace(passage) == "" {
			continue
		}

		pending := ""
		segments := sentences.FromString(passage)
		for segments.Next() {
			sentence := strings.TrimSpace(segments.Value())
			if sentence == "" {
				continue
			}
			if pending != "" {
				sentence = pending + " " + sentence
				pending = ""
			}
			if endsWithAbbreviation(sentence) {
				pending = sentence
				continue
			}
			out = append(out, sentence)
		}
		if pending != "" {
			out = append(out, pending)
		}
	}
	return out
}

// endsWithAbbreviation reports whether the last word of sentence is a known
// abbreviation ("Dr.") or a run of dotted single letters ("J.", "U.S.")
func endsWithAbbreviation(sentence string) bool {
	fields := strings.Fields(sentence)
	if len(fields) == 0 {
		return false
	}
	word := strings.TrimLeftFunc(fields[len(fields)-1], func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if !strings.HasSuffix(word, ".") {
		return false
	}
	word = strings.ToLower(strings.TrimSuffix(word, "."))
	if abbreviations[word] {
		return true
	}
	return isInitials(word)
}

// isInitials matches single letters separated by periods, e.g. "j" or "u.s"
func isInitials(word string) bool {
	if word == "" {
		return false
	}
	for _, part := range strings.Split(word, ".") {
		runes := []rune(part)
		if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
			return false
		}
	}
	return true
}
