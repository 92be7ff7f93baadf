// Package lexeme implements the scoring core of a Wordle-family word game:
// deriving the per-letter clues a guess earns against a target, testing which
// words remain consistent with those clues, and ranking every candidate guess
// by how few targets it leaves possible.
package lexeme

import (
	"strings"

	"github.com/dlenski/lexeme/pkg/primitives"
)

// Clue is the three-valued feedback for a single letter position.
type Clue uint8

const (
	// ClueAbsent means the guessed letter does not appear in the target
	// (beyond any occurrences already accounted for).
	ClueAbsent Clue = iota
	// ClueWrongPosition means the guessed letter appears in the target, but
	// at a different position.
	ClueWrongPosition
	// ClueRightPosition means the guessed letter matches the target exactly
	// at this position.
	ClueRightPosition
)

// String renders a clue as its one-letter abbreviation: A, W or R.
func (c Clue) String() string {
	switch c {
	case ClueWrongPosition:
		return "W"
	case ClueRightPosition:
		return "R"
	default:
		return "A"
	}
}

// Clues is the ordered per-position feedback for one guess against one target.
type Clues []Clue

// String renders a clue sequence as a string like "RWAWA".
func (c Clues) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, cl := range c {
		b.WriteString(cl.String())
	}
	return b.String()
}

// Class folds the clue sequence into its base-3 classification integer,
// most significant position first (Absent=0, WrongPosition=1, RightPosition=2).
// Every achievable clue sequence maps to a distinct integer in [0, 3^len).
func (c Clues) Class() int {
	class := 0
	for _, cl := range c {
		class = class*3 + int(cl)
	}
	return class
}

// DecodeClass reverses Class, recovering the clue sequence of the given
// length from its classification integer.
func DecodeClass(class, length int) Clues {
	clues := make(Clues, length)
	for i := length - 1; i >= 0; i-- {
		clues[i] = Clue(class % 3)
		class /= 3
	}
	return clues
}

// NumClasses returns the number of classification integers for words of the
// given length, 3^length. Not all of them are achievable: no guess/target
// pair can produce exactly one WrongPosition alongside all RightPosition,
// so those values simply never occur.
func NumClasses(length int) int {
	n := 1
	for range length {
		n *= 3
	}
	return n
}

// CluesOfGuess computes the clues the guess earns against the target.
//
// Both words must have the same length and consist of uppercase letters; this
// is the caller's contract. Letter accounting is done in two passes so that a
// repeated guess letter is never credited more often than it occurs in the
// target: the first pass fixes exact matches and pools the unmatched target
// letters, the second pass upgrades provisional Absent clues to WrongPosition
// while consuming the pool. The pool is held as per-letter counts; instances
// of the same letter are interchangeable, so consuming a count is equivalent
// to consuming the earliest unmatched occurrence.
func CluesOfGuess(guess, target string) Clues {
	clues := make(Clues, len(guess))

	var leftovers primitives.LetterCounts
	for i := 0; i < len(guess); i++ {
		if guess[i] == target[i] {
			clues[i] = ClueRightPosition
		} else {
			clues[i] = ClueAbsent
			leftovers.Inc(target[i])
		}
	}

	for i := 0; i < len(guess); i++ {
		if clues[i] == ClueRightPosition {
			continue
		}
		if leftovers.Get(guess[i]) > 0 {
			leftovers.Dec(guess[i])
			clues[i] = ClueWrongPosition
		}
	}

	return clues
}

// Classify computes the classification integer of CluesOfGuess(guess, target)
// directly, without materializing the clue sequence. This is the ranking hot
// path: it runs once per (guess, target) pair.
func Classify(guess, target string) int {
	var leftovers primitives.LetterCounts
	for i := 0; i < len(guess); i++ {
		if guess[i] != target[i] {
			leftovers.Inc(target[i])
		}
	}

	class := 0
	for i := 0; i < len(guess); i++ {
		class *= 3
		if guess[i] == target[i] {
			class += int(ClueRightPosition)
		} else if leftovers.Get(guess[i]) > 0 {
			leftovers.Dec(guess[i])
			class += int(ClueWrongPosition)
		}
	}
	return class
}
