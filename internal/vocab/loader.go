package vocab

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// quizLine matches the numbered lines the quiz tool accepts: a number
// prefix, an ASCII Selik word (spaces allowed), then the meaning text.
var quizLine = regexp.MustCompile(`^\s*\d+\.\s*([A-Za-z ]+)\s+(.+)$`)

// LoadWordMap reads vocabulary files into a word-to-meaning map for the
// quiz. Only lines matching the numbered pattern are taken; later
// definitions of a word overwrite earlier ones. Unreadable or
// non-UTF-8 files are warned about and skipped, never fatal.
func LoadWordMap(paths []string) map[string]string {
	vocab := make(map[string]string)
	for _, path := range paths {
		data, err := readTextFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}

		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			m := quizLine.FindStringSubmatch(scanner.Text())
			if m == nil {
				continue
			}
			word := strings.TrimSpace(m[1])
			meaning := strings.TrimSpace(m[2])
			vocab[word] = meaning
		}
	}
	return vocab
}

// LoadEntries reads vocabulary files for analysis. Every non-blank line
// of each readable file is parsed into an Entry, so malformed lines are
// captured instead of silently dropped. Unreadable or non-UTF-8 files
// are warned about and skipped.
func LoadEntries(paths []string) []Entry {
	var entries []Entry
	for _, path := range paths {
		data, err := readTextFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}

		loaded := 0
		scanner := bufio.NewScanner(bytes.NewReader(data))
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			entries = append(entries, ParseLine(line, lineNum, path))
			loaded++
		}

		fmt.Printf("Loaded %d entries from %s\n", loaded, path)
	}
	return entries
}

// readTextFile reads a whole file and rejects content that is not
// valid UTF-8.
func readTextFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %q not found, skipping", path)
		}
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("file %q is not valid UTF-8, skipping", path)
	}
	return data, nil
}
