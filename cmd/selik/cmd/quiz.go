package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"

	"github.com/louttit/selik/internal/memory"
	"github.com/louttit/selik/internal/quiz"
	"github.com/louttit/selik/internal/vocab"
)

var quizLimit int

var quizCmd = &cobra.Command{
	Use:   "quiz [files...]",
	Short: "Run a spelling quiz from vocabulary files or past misses",
	Long: `Quiz Selik word spellings.

With file arguments, every word in the files becomes a quiz candidate,
ordered by past error rate so new and missed words come first. Words
defined more than once take their last definition. Without arguments,
only previously missed words from the memory file are quizzed.

Enter 'q' at any prompt to save progress and exit. Progress is also
saved on interrupt (Ctrl-C).

Example:
  selik quiz vocabulary.txt
  selik quiz --limit 20 vocabulary.txt extra.txt
  selik quiz`,
	RunE: runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().IntVar(&quizLimit, "limit", 0, "maximum number of words per session (0 = all)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store := memory.Open(cfg.MemoryFile)
	if err := store.Load(); err != nil {
		return err
	}

	limit := quizLimit
	if limit <= 0 {
		limit = cfg.QuizLimit
	}

	var words []quiz.Pair
	if len(args) > 0 {
		vocabMap := vocab.LoadWordMap(args)
		if len(vocabMap) == 0 {
			fmt.Println("未在指定文件中找到有效詞條。退出。")
			return nil
		}
		words = quiz.Select(vocabMap, store, limit)
	} else {
		words = quiz.Select(nil, store, limit)
		if len(words) == 0 {
			fmt.Println("無過去錯詞記錄。請傳入詞彙文件開始測驗。")
			return nil
		}
	}

	// Normal completion, 'q', and interrupt all converge here; the
	// store is written exactly once.
	var saveOnce sync.Once
	save := func() {
		saveOnce.Do(func() {
			if err := store.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving memory: %v\n", err)
				return
			}
			fmt.Printf("已保存進度到 %s\n", store.Path())
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println("\n中斷，保存進度...")
		save()
		os.Exit(0)
	}()

	session := &quiz.Session{
		Words:      words,
		Store:      store,
		In:         os.Stdin,
		Out:        os.Stdout,
		ShowPinyin: cfg.ShowPinyin,
	}
	session.Run()

	save()
	return nil
}
