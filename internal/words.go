package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// EligibleWords reads a one-word-per-line dictionary and returns the words of
// exactly the given length, uppercased, in file order. Surrounding whitespace
// is trimmed. Lines containing non-letter characters are skipped, and so are
// mixed-case lines, which are likely proper nouns.
func EligibleWords(r io.Reader, length int) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word, ok := EligibleWord(scanner.Text(), length); ok {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning word list: %w", err)
	}

	return words, nil
}

// LoadWordFile opens path and collects its eligible words of the given length.
func LoadWordFile(path string, length int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()

	words, err := EligibleWords(file, length)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return words, nil
}

// EligibleWord trims and validates a single dictionary line, returning the
// uppercased word and whether it qualifies.
func EligibleWord(line string, length int) (string, bool) {
	word := strings.TrimSpace(line)
	if len(word) != length {
		return "", false
	}

	gotLower, gotUpper := false, false
	for i := 0; i < len(word); i++ {
		switch c := word[i]; {
		case c >= 'a' && c <= 'z':
			gotLower = true
		case c >= 'A' && c <= 'Z':
			gotUpper = true
		default:
			return "", false
		}
	}
	// Mixed case is likely a proper noun.
	if gotLower && gotUpper {
		return "", false
	}

	return strings.ToUpper(word), true
}
