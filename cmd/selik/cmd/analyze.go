package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/louttit/selik/internal/analyzer"
	"github.com/louttit/selik/internal/vocab"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <files...>",
	Short: "Check vocabulary files for duplicate or undefined entries",
	Long: `Analyze Selik vocabulary files.

Every non-blank line is parsed into an entry. The report lists entries
whose Selik word could not be isolated from the gloss, Selik words
defined more than once, and meanings that recur under the same part of
speech. The same meaning under different parts of speech is a valid
homograph and is not reported.

Example:
  selik analyze vocabulary.txt
  selik analyze vocabulary.txt additional_words.txt`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	entries := vocab.LoadEntries(args)
	if len(entries) == 0 {
		fmt.Println("No entries loaded. Please check your file paths.")
		return nil
	}

	report := analyzer.Analyze(entries)
	fmt.Printf("\nFound %d defined entries and %d undefined entries.\n",
		report.Defined, len(report.Undefined))
	report.Render(os.Stdout)
	return nil
}
