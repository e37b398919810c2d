package vocab

import (
	"regexp"
	"strings"
)

// numberPrefix matches the "<number>." prefix that starts an entry line.
var numberPrefix = regexp.MustCompile(`^\s*\d+\.\s*`)

// ParseLine splits one raw vocabulary line into its components.
//
// A line has the general shape "12. selik words 中文意思 pos". Everything
// before the first token containing a CJK ideograph is the Selik word,
// the remaining tokens form the meaning, and a trailing part-of-speech
// marker is split off when present. Lines whose meaning starts at the
// first token carry no Selik word and come back undefined, as do lines
// with no ideographs at all.
func ParseLine(raw string, lineNumber int, sourceFile string) Entry {
	entry := Entry{
		LineNumber:   lineNumber,
		OriginalLine: raw,
		SourceFile:   sourceFile,
	}

	clean := numberPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
	if clean == "" {
		return entry
	}

	tokens := strings.Fields(clean)

	meaningStart := -1
	for i, tok := range tokens {
		if ContainsCJK(tok) {
			meaningStart = i
			break
		}
	}

	if meaningStart < 0 {
		// No ideographs anywhere: nothing separates a word from a
		// meaning. A lone marker still records its part of speech.
		if len(tokens) == 1 && IsPOSMarker(tokens[0]) {
			entry.PartOfSpeech = tokens[0]
			return entry
		}
		entry.Meaning = clean
		return entry
	}

	if meaningStart == 0 {
		// Meaning first means no Selik word on the line.
		meaning := tokens
		if IsPOSMarker(tokens[len(tokens)-1]) {
			entry.PartOfSpeech = tokens[len(tokens)-1]
			meaning = tokens[:len(tokens)-1]
		}
		entry.Meaning = strings.Join(meaning, " ")
		return entry
	}

	entry.Word = strings.Join(tokens[:meaningStart], " ")
	entry.Defined = true

	meaning := tokens[meaningStart:]
	if len(meaning) > 1 && IsPOSMarker(meaning[len(meaning)-1]) {
		entry.PartOfSpeech = meaning[len(meaning)-1]
		meaning = meaning[:len(meaning)-1]
	}
	entry.Meaning = strings.Join(meaning, " ")

	return entry
}
