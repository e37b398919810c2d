package quiz

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louttit/selik/internal/memory"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.Open(filepath.Join(t.TempDir(), "memory.json"))
}

func TestSelectFileModeEmptyMemory(t *testing.T) {
	store := newStore(t)
	vocab := map[string]string{"A": "m1", "B": "m2"}

	got := Select(vocab, store, 0)

	// Both unseen words carry error rate 1.0; ties break lexically.
	assert.Equal(t, []Pair{{Word: "A", Meaning: "m1"}, {Word: "B", Meaning: "m2"}}, got)
}

func TestSelectLimit(t *testing.T) {
	store := newStore(t)
	vocab := map[string]string{"A": "m1", "B": "m2"}

	got := Select(vocab, store, 1)

	require.Len(t, got, 1)
	assert.Contains(t, []string{"A", "B"}, got[0].Word)
}

func TestSelectPrioritizesMissedWords(t *testing.T) {
	store := newStore(t)
	rec := store.Touch("A", "m1")
	rec.Asked = 10
	rec.Correct = 10

	got := Select(map[string]string{"A": "m1", "B": "m2"}, store, 0)

	// B was never asked (error rate 1.0) and must sort before the
	// always-correct A (error rate 0.0).
	assert.Equal(t, []Pair{{Word: "B", Meaning: "m2"}, {Word: "A", Meaning: "m1"}}, got)
}

func TestSelectMemoryOnlyMode(t *testing.T) {
	store := newStore(t)
	missed := store.Touch("missed", "走")
	missed.Asked = 5
	missed.Correct = 3
	clean := store.Touch("clean", "看")
	clean.Asked = 5
	clean.Correct = 5
	store.Touch("unasked", "聽")

	got := Select(nil, store, 0)

	// Only words with at least one outstanding miss are quizzed, with
	// meanings sourced from the store.
	assert.Equal(t, []Pair{{Word: "missed", Meaning: "走"}}, got)
}

func TestSelectOrderByErrorRate(t *testing.T) {
	store := newStore(t)
	worst := store.Touch("worst", "")
	worst.Asked = 4
	worst.Correct = 1
	mid := store.Touch("mid", "")
	mid.Asked = 4
	mid.Correct = 2
	best := store.Touch("best", "")
	best.Asked = 4
	best.Correct = 3

	got := Select(nil, store, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "worst", got[0].Word)
	assert.Equal(t, "mid", got[1].Word)
	assert.Equal(t, "best", got[2].Word)
}
