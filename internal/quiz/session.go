package quiz

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/louttit/selik/internal/memory"
	"github.com/louttit/selik/internal/pinyin"
)

// Session runs the blocking spelling loop over the selected words. I/O
// is injected so the loop can be driven from tests.
type Session struct {
	Words      []Pair
	Store      *memory.Store
	In         io.Reader
	Out        io.Writer
	ShowPinyin bool
}

// Run prompts each word's meaning in turn and records the outcome of
// every answered prompt. Entering "q" (any case) ends the session
// without touching the pending word's record, as does end of input.
// Answers must match the Selik spelling exactly after trimming
// surrounding whitespace. Returns the number of prompts answered and
// of those how many were correct.
func (s *Session) Run() (asked, correct int) {
	fmt.Fprintln(s.Out, hintStyle.Render("按 'q' 隨時保存並退出"))
	fmt.Fprintln(s.Out)

	scanner := bufio.NewScanner(s.In)
	for _, p := range s.Words {
		prompt := promptStyle.Render(fmt.Sprintf("意思：%s", p.Meaning))
		if s.ShowPinyin {
			if py := pinyin.Annotate(p.Meaning); py != "" {
				prompt += " " + pinyinStyle.Render("("+py+")")
			}
		}
		fmt.Fprintln(s.Out, prompt)
		fmt.Fprint(s.Out, "拼寫: ")

		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(answer, "q") {
			break
		}

		ok := answer == p.Word
		s.Store.RecordAnswer(p.Word, p.Meaning, ok)
		asked++
		if ok {
			correct++
			fmt.Fprintln(s.Out, successStyle.Render("✔ 正確!"))
		} else {
			fmt.Fprintln(s.Out, failureStyle.Render(fmt.Sprintf("✘ 錯誤，正確拼寫：%s", p.Word)))
		}
		fmt.Fprintln(s.Out)
	}
	return asked, correct
}
