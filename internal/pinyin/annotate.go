// Package pinyin annotates Chinese glosses with tone-marked pinyin.
package pinyin

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

var args = newArgs()

func newArgs() gopinyin.Args {
	a := gopinyin.NewArgs()
	a.Style = gopinyin.Tone // tone marks: zǒu, not zou3
	return a
}

// Annotate returns the tone-marked pinyin reading of the ideographs in
// gloss, one space-separated syllable per character. Characters outside
// the library's table are skipped; a gloss with no readable ideographs
// yields the empty string.
func Annotate(gloss string) string {
	var syllables []string
	for _, readings := range gopinyin.Pinyin(gloss, args) {
		if len(readings) > 0 {
			syllables = append(syllables, readings[0])
		}
	}
	return strings.Join(syllables, " ")
}
