// Package vocab defines the vocabulary entry model and the line parsing
// heuristic shared by the quiz and analyze commands.
package vocab

import "strings"

// Entry represents a single parsed vocabulary line.
type Entry struct {
	LineNumber   int    // 1-based position in the source file
	OriginalLine string // raw text, kept verbatim for diagnostics
	Word         string // Selik word; empty when the entry is undefined
	Meaning      string // Chinese gloss
	PartOfSpeech string // one of the fixed markers, or empty
	Defined      bool   // true iff a Selik word was isolated
	SourceFile   string
}

// posMarkers is the fixed set of recognized part-of-speech markers.
var posMarkers = map[string]struct{}{
	"v.":      {},
	"n.":      {},
	"adj.":    {},
	"adv.":    {},
	"prep.":   {},
	"conj.":   {},
	"interj.": {},
	"pron.":   {},
}

// IsPOSMarker reports whether token is a part-of-speech marker.
// Matching is exact but case-insensitive.
func IsPOSMarker(token string) bool {
	_, ok := posMarkers[strings.ToLower(token)]
	return ok
}

// ContainsCJK reports whether s contains a code point in the CJK
// Unified Ideographs range (U+4E00-U+9FFF).
func ContainsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}
