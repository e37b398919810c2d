package cmd

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/louttit/selik/internal/memory"
	"github.com/louttit/selik/internal/pinyin"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics from the memory file",
	Long: `Show per-word quiz statistics accumulated across sessions,
worst error rate first.

Example:
  selik stats`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store := memory.Open(cfg.MemoryFile)
	if err := store.Load(); err != nil {
		return err
	}
	if store.Len() == 0 {
		fmt.Println("No quiz history yet. Run 'selik quiz <file>' first.")
		return nil
	}

	type row struct {
		word    string
		rec     *memory.Record
		errRate float64
	}
	rows := make([]row, 0, store.Len())
	totalAsked, totalCorrect := 0, 0
	wordWidth := len("word")
	for _, w := range store.Words() {
		rec := store.Get(w)
		errRate := 1.0
		if rec.Asked > 0 {
			errRate = 1.0 - float64(rec.Correct)/float64(rec.Asked)
		}
		rows = append(rows, row{word: w, rec: rec, errRate: errRate})
		totalAsked += rec.Asked
		totalCorrect += rec.Correct
		if width := runewidth.StringWidth(w); width > wordWidth {
			wordWidth = width
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].errRate != rows[j].errRate {
			return rows[i].errRate > rows[j].errRate
		}
		return rows[i].word < rows[j].word
	})

	fmt.Printf("%s  asked  correct  accuracy  meaning\n",
		runewidth.FillRight("word", wordWidth))
	for _, r := range rows {
		accuracy := "-"
		if r.rec.Asked > 0 {
			accuracy = fmt.Sprintf("%3.0f%%", 100*float64(r.rec.Correct)/float64(r.rec.Asked))
		}
		meaning := r.rec.Meaning
		if cfg.ShowPinyin && meaning != "" {
			if py := pinyin.Annotate(meaning); py != "" {
				meaning += " (" + py + ")"
			}
		}
		fmt.Printf("%s  %5d  %7d  %8s  %s\n",
			runewidth.FillRight(r.word, wordWidth),
			r.rec.Asked, r.rec.Correct, accuracy, meaning)
	}

	fmt.Printf("\n%d words, %d prompts answered", store.Len(), totalAsked)
	if totalAsked > 0 {
		fmt.Printf(", %.0f%% correct overall", 100*float64(totalCorrect)/float64(totalAsked))
	}
	fmt.Println()
	return nil
}
