// Package analyzer finds duplicate definitions and undefined words
// across Selik vocabulary files.
package analyzer

import "github.com/louttit/selik/internal/vocab"

// Cluster groups entries that define the same Selik word.
type Cluster struct {
	Word    string
	Entries []vocab.Entry
}

// MeaningCluster groups entries sharing both a meaning and a part of
// speech. The same meaning under different parts of speech is a valid
// homograph, not a duplicate.
type MeaningCluster struct {
	Meaning      string
	PartOfSpeech string
	Entries      []vocab.Entry
}

// Report is the aggregated analysis of all parsed entries.
type Report struct {
	TotalEntries    int
	Defined         int
	Undefined       []vocab.Entry
	WordClusters    []Cluster
	MeaningClusters []MeaningCluster
}

// HasIssues reports whether anything needs reviewing.
func (r *Report) HasIssues() bool {
	return len(r.Undefined) > 0 || len(r.WordClusters) > 0 || len(r.MeaningClusters) > 0
}

// Analyze partitions entries by defined-ness and groups the defined
// ones by word and by (meaning, part of speech). Only groups with more
// than one member become clusters; clusters keep first-seen order.
func Analyze(entries []vocab.Entry) *Report {
	report := &Report{TotalEntries: len(entries)}

	type meaningKey struct {
		meaning string
		pos     string
	}

	byWord := make(map[string][]vocab.Entry)
	var wordOrder []string
	byMeaning := make(map[meaningKey][]vocab.Entry)
	var meaningOrder []meaningKey

	for _, e := range entries {
		if !e.Defined {
			report.Undefined = append(report.Undefined, e)
			continue
		}
		report.Defined++

		if _, seen := byWord[e.Word]; !seen {
			wordOrder = append(wordOrder, e.Word)
		}
		byWord[e.Word] = append(byWord[e.Word], e)

		key := meaningKey{meaning: e.Meaning, pos: e.PartOfSpeech}
		if _, seen := byMeaning[key]; !seen {
			meaningOrder = append(meaningOrder, key)
		}
		byMeaning[key] = append(byMeaning[key], e)
	}

	for _, w := range wordOrder {
		if group := byWord[w]; len(group) > 1 {
			report.WordClusters = append(report.WordClusters, Cluster{
				Word:    w,
				Entries: group,
			})
		}
	}
	for _, k := range meaningOrder {
		if group := byMeaning[k]; len(group) > 1 {
			report.MeaningClusters = append(report.MeaningClusters, MeaningCluster{
				Meaning:      k.meaning,
				PartOfSpeech: k.pos,
				Entries:      group,
			})
		}
	}

	return report
}
