package lexeme

import (
	"slices"

	"github.com/dlenski/lexeme/pkg/primitives"
)

const numLetters = 26

// letterRange is an inclusive occurrence-count constraint for one letter.
type letterRange struct {
	letter  byte
	atLeast int8
	atMost  int8
}

// Constraint is the compiled form of a clue sequence relative to one guess:
// the set of all words that would have produced the identical clues had the
// same guess been played against them. Building it costs one pass over the
// guess; testing a candidate against it is cheaper than re-deriving the
// letter accounting from the raw clues, which pays off when one clue
// sequence is tested against a whole word list.
type Constraint struct {
	mustBe  []byte               // per position, required letter (0 = none)
	mustNot []primitives.CharSet // per position, banned letters
	counts  []letterRange        // retained ranges, most discriminating first
}

// CompileClues compiles the clues that guess earned into a Constraint.
func CompileClues(guess string, clues Clues) *Constraint {
	length := len(guess)
	c := &Constraint{
		mustBe:  make([]byte, length),
		mustNot: make([]primitives.CharSet, length),
	}

	// Same two-pass letter accounting as the clue oracle, but accumulated
	// per letter instead of emitted as a flat sequence.
	var matched primitives.LetterCounts
	var sawAbsent primitives.CharSet
	for i := 0; i < length; i++ {
		gl := guess[i]
		switch clues[i] {
		case ClueRightPosition:
			c.mustBe[i] = gl
			matched.Inc(gl)
		case ClueWrongPosition:
			c.mustNot[i].Add(gl)
			matched.Inc(gl)
		default:
			c.mustNot[i].Add(gl)
			sawAbsent.Add(gl)
		}
	}

	var banned primitives.CharSet
	for i := range numLetters {
		gl := primitives.Letter(i)
		atLeast := int8(matched.Get(gl))
		atMost := int8(length)
		if sawAbsent.Contains(gl) {
			// An Absent clue fixes the letter's total count exactly.
			atMost = atLeast
		}

		if atMost == 0 {
			// The letter cannot appear at all; banning it at every position
			// is a faster check than a zero-count range.
			banned.Add(gl)
			continue
		}
		if atLeast == 0 && atMost == int8(length) {
			continue // no information
		}
		c.counts = append(c.counts, letterRange{letter: gl, atLeast: atLeast, atMost: atMost})
	}

	if !banned.IsEmpty() {
		for i := range c.mustNot {
			c.mustNot[i].AddAll(banned)
		}
	}

	// Most discriminating ranges first, so Possible fails fast.
	slices.SortFunc(c.counts, func(a, b letterRange) int {
		if a.atLeast != b.atLeast {
			return int(b.atLeast) - int(a.atLeast)
		}
		return int(a.atMost) - int(b.atMost)
	})

	return c
}

// CompileGuess compiles the constraint for the clues guess would earn
// against target.
func CompileGuess(guess, target string) *Constraint {
	return CompileClues(guess, CluesOfGuess(guess, target))
}

// Length returns the word length the constraint was compiled for.
func (c *Constraint) Length() int {
	return len(c.mustBe)
}

// Possible reports whether word could be the hidden target. It must return
// the same verdict as WordPossible over the clues the constraint was
// compiled from.
func (c *Constraint) Possible(word string) bool {
	for i := 0; i < len(word); i++ {
		if must := c.mustBe[i]; must != 0 {
			if word[i] != must {
				return false
			}
			continue
		}
		if c.mustNot[i].Contains(word[i]) {
			return false
		}
	}

	if len(c.counts) == 0 {
		return true
	}

	have := primitives.CountLetters(word)
	for _, r := range c.counts {
		n := int8(have.Get(r.letter))
		if n < r.atLeast || n > r.atMost {
			return false
		}
	}
	return true
}
