package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/louttit/selik/internal/vocab"
)

// Report styles
var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B"))

	reportSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#4ecdc4"))

	reportOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf"))

	reportWarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	reportLocStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	reportRule = strings.Repeat("=", 72)
)

// Render writes the human-readable analysis report. The layout follows
// the analyzer's fixed sections: undefined entries, duplicate Selik
// words, duplicate meanings, then a summary that ends in either an
// issues-found warning or an all-clear line.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, reportTitleStyle.Render("SELIK VOCABULARY ANALYSIS RESULTS"))
	fmt.Fprintln(w, reportRule)

	r.renderUndefined(w)
	r.renderWordClusters(w)
	r.renderMeaningClusters(w)
	r.renderSummary(w)
}

func (r *Report) renderUndefined(w io.Writer) {
	if len(r.Undefined) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, reportOKStyle.Render("No undefined entries found."))
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportSectionStyle.Render(
		fmt.Sprintf("UNDEFINED ENTRIES (%d found):", len(r.Undefined))))
	for _, e := range r.Undefined {
		fmt.Fprintf(w, "  %s\n", reportLocStyle.Render(location(e)))
		fmt.Fprintf(w, "    %s%s\n", e.Meaning, posSuffix(e.PartOfSpeech))
		fmt.Fprintf(w, "    original: %s\n", strings.TrimSpace(e.OriginalLine))
	}
}

func (r *Report) renderWordClusters(w io.Writer) {
	if len(r.WordClusters) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, reportOKStyle.Render("No duplicate Selik words found."))
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportSectionStyle.Render(
		fmt.Sprintf("DUPLICATE SELIK WORDS (%d found):", len(r.WordClusters))))
	for _, c := range r.WordClusters {
		fmt.Fprintf(w, "  Selik word %q appears %d times:\n", c.Word, len(c.Entries))
		width := locWidth(c.Entries)
		for _, e := range c.Entries {
			fmt.Fprintf(w, "    %s  %s%s\n",
				reportLocStyle.Render(pad(location(e), width)),
				e.Meaning, posSuffix(e.PartOfSpeech))
		}
	}
}

func (r *Report) renderMeaningClusters(w io.Writer) {
	if len(r.MeaningClusters) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, reportOKStyle.Render("No duplicate meanings found."))
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportSectionStyle.Render(
		fmt.Sprintf("DUPLICATE MEANINGS (%d found):", len(r.MeaningClusters))))
	for _, c := range r.MeaningClusters {
		fmt.Fprintf(w, "  Meaning %q%s appears %d times:\n",
			c.Meaning, posSuffix(c.PartOfSpeech), len(c.Entries))
		width := locWidth(c.Entries)
		for _, e := range c.Entries {
			fmt.Fprintf(w, "    %s  %s\n",
				reportLocStyle.Render(pad(location(e), width)), e.Word)
		}
	}
}

func (r *Report) renderSummary(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, reportTitleStyle.Render("SUMMARY"))
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Total entries processed: %d\n", r.TotalEntries)
	fmt.Fprintf(w, "Undefined entries:       %d\n", len(r.Undefined))
	fmt.Fprintf(w, "Duplicate Selik words:   %d\n", len(r.WordClusters))
	fmt.Fprintf(w, "Duplicate meanings:      %d\n", len(r.MeaningClusters))
	fmt.Fprintln(w)

	if r.HasIssues() {
		fmt.Fprintln(w, reportWarnStyle.Render("Issues found! Please review the entries above."))
	} else {
		fmt.Fprintln(w, reportOKStyle.Render("All entries are properly defined and unique!"))
	}
}

func location(e vocab.Entry) string {
	return fmt.Sprintf("%s:%d", e.SourceFile, e.LineNumber)
}

func posSuffix(pos string) string {
	if pos == "" {
		return ""
	}
	return fmt.Sprintf(" [%s]", pos)
}

// locWidth returns the display width of the widest location string.
func locWidth(entries []vocab.Entry) int {
	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(location(e)); w > width {
			width = w
		}
	}
	return width
}

// pad right-fills s to the given display width. CJK glyphs take two
// cells, so plain %-*s padding would misalign columns.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
