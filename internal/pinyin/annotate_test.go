package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotate(t *testing.T) {
	testCases := map[string]struct {
		gloss    string
		expected string
	}{
		"Single character": {"走", "zǒu"},
		"Two characters":   {"走路", "zǒu lù"},
		"No ideographs":    {"foo bar", ""},
		"Empty":            {"", ""},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Annotate(tc.gloss))
		})
	}
}
