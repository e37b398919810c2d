// Package quiz implements quiz word selection and the interactive
// spelling session.
package quiz

import (
	"sort"

	"github.com/louttit/selik/internal/memory"
)

// Pair is one quiz item: a Selik word and the gloss used as its prompt.
type Pair struct {
	Word    string
	Meaning string
}

// Select orders quiz candidates by descending error rate so missed and
// never-seen words come first. With a non-empty vocab map every word in
// it is a candidate; otherwise only stored words with at least one
// outstanding miss are quizzed, with meanings taken from the store.
// Equal error rates fall back to lexical word order so the output is
// deterministic. A limit above zero truncates the result.
func Select(vocab map[string]string, store *memory.Store, limit int) []Pair {
	type scored struct {
		pair Pair
		err  float64
	}
	var items []scored

	if len(vocab) > 0 {
		for word, meaning := range vocab {
			var asked, correct int
			if rec := store.Get(word); rec != nil {
				asked, correct = rec.Asked, rec.Correct
			}
			items = append(items, scored{
				pair: Pair{Word: word, Meaning: meaning},
				err:  errorRate(asked, correct),
			})
		}
	} else {
		for _, word := range store.Words() {
			rec := store.Get(word)
			if rec.Asked == 0 || rec.Correct >= rec.Asked {
				continue
			}
			items = append(items, scored{
				pair: Pair{Word: word, Meaning: rec.Meaning},
				err:  errorRate(rec.Asked, rec.Correct),
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].err != items[j].err {
			return items[i].err > items[j].err
		}
		return items[i].pair.Word < items[j].pair.Word
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	pairs := make([]Pair, len(items))
	for i, it := range items {
		pairs[i] = it.pair
	}
	return pairs
}

// errorRate is 1 - correct/asked, or 1.0 for a word never asked. New
// words therefore sort with the worst offenders, interleaving fresh
// vocabulary with past misses.
func errorRate(asked, correct int) float64 {
	if asked == 0 {
		return 1.0
	}
	return 1.0 - float64(correct)/float64(asked)
}
