package quiz

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, words []Pair, input string) (*Session, *bytes.Buffer, int, int) {
	t.Helper()
	var out bytes.Buffer
	s := &Session{
		Words: words,
		Store: newStore(t),
		In:    strings.NewReader(input),
		Out:   &out,
	}
	asked, correct := s.Run()
	return s, &out, asked, correct
}

func TestSessionWrongThenQuit(t *testing.T) {
	words := []Pair{{Word: "mira", Meaning: "看見"}, {Word: "ora", Meaning: "走"}}

	s, out, asked, correct := runSession(t, words, "wrong\nq\n")

	assert.Equal(t, 1, asked)
	assert.Equal(t, 0, correct)

	rec := s.Store.Get("mira")
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Asked)
	assert.Equal(t, 0, rec.Correct)
	assert.Equal(t, "看見", rec.Meaning)

	// The aborted second prompt must leave no record behind.
	assert.Nil(t, s.Store.Get("ora"))
	assert.Contains(t, out.String(), "正確拼寫：mira")
}

func TestSessionQuitImmediately(t *testing.T) {
	words := []Pair{{Word: "mira", Meaning: "看見"}}

	s, _, asked, _ := runSession(t, words, "Q\n")

	assert.Equal(t, 0, asked)
	assert.Equal(t, 0, s.Store.Len())
}

func TestSessionCorrectAnswer(t *testing.T) {
	words := []Pair{{Word: "mira", Meaning: "看見"}}

	s, out, asked, correct := runSession(t, words, "mira\n")

	assert.Equal(t, 1, asked)
	assert.Equal(t, 1, correct)
	rec := s.Store.Get("mira")
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Asked)
	assert.Equal(t, 1, rec.Correct)
	assert.Contains(t, out.String(), "正確!")
}

func TestSessionTrimsAnswer(t *testing.T) {
	words := []Pair{{Word: "mira", Meaning: "看見"}}

	s, _, _, correct := runSession(t, words, "  mira  \n")

	assert.Equal(t, 1, correct)
	assert.Equal(t, 1, s.Store.Get("mira").Correct)
}

func TestSessionMatchIsCaseSensitive(t *testing.T) {
	words := []Pair{{Word: "mira", Meaning: "看見"}}

	s, _, _, correct := runSession(t, words, "Mira\n")

	assert.Equal(t, 0, correct)
	assert.Equal(t, 1, s.Store.Get("mira").Asked)
}

func TestSessionEndOfInput(t *testing.T) {
	words := []Pair{{Word: "mira", Meaning: "看見"}, {Word: "ora", Meaning: "走"}}

	s, _, asked, _ := runSession(t, words, "mira\n")

	// Input runs dry after the first answer; the session ends without
	// touching the remaining word.
	assert.Equal(t, 1, asked)
	assert.Nil(t, s.Store.Get("ora"))
}

func TestSessionSaveDuringRun(t *testing.T) {
	var words []Pair
	var input strings.Builder
	for i := 0; i < 200; i++ {
		w := fmt.Sprintf("word%03d", i)
		words = append(words, Pair{Word: w, Meaning: "走"})
		input.WriteString(w + "\n")
	}

	var out bytes.Buffer
	s := &Session{
		Words: words,
		Store: newStore(t),
		In:    strings.NewReader(input.String()),
		Out:   &out,
	}

	// An interrupt saves the store from its own goroutine while the
	// session is still answering prompts.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			assert.NoError(t, s.Store.Save())
		}
	}()
	asked, correct := s.Run()
	<-done

	assert.Equal(t, 200, asked)
	assert.Equal(t, 200, correct)
	assert.Equal(t, 200, s.Store.Len())
}

func TestSessionPinyinAnnotation(t *testing.T) {
	var out bytes.Buffer
	s := &Session{
		Words:      []Pair{{Word: "ora", Meaning: "走"}},
		Store:      newStore(t),
		In:         strings.NewReader("q\n"),
		Out:        &out,
		ShowPinyin: true,
	}
	s.Run()

	assert.Contains(t, out.String(), "zǒu")
}
