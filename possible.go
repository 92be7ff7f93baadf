package lexeme

import (
	"iter"

	"github.com/dlenski/lexeme/pkg/primitives"
)

// WordPossible reports whether word could be the hidden target, given the
// clues that guess earned against the (unknown) true target.
//
// This is the reference possibility test: it re-derives the letter accounting
// from the raw clue sequence on every call. The compiled path in
// Constraint.Possible must always agree with it; keeping both allows
// differential testing. All three inputs share one length by caller contract.
func WordPossible(guess, word string, clues Clues) bool {
	var wpGuess, aGuess, leftWord primitives.LetterCounts

	for i := 0; i < len(guess); i++ {
		gl, wl, s := guess[i], word[i], clues[i]
		if gl == wl && s != ClueRightPosition {
			// Guess and word share a letter which is NOT marked RP in the guess.
			return false
		}
		if gl != wl && s == ClueRightPosition {
			// Guess and word differ in a letter which IS marked RP in the guess.
			return false
		}

		// Count leftover (non-RP) letters in the word.
		if s != ClueRightPosition {
			leftWord.Inc(wl)
		}

		// Count A/WP letters in the guess.
		if s == ClueWrongPosition {
			wpGuess.Inc(gl)
		} else if s == ClueAbsent {
			aGuess.Inc(gl)
		}
	}

	for i := range wpGuess {
		// The guess saw more of this letter as WP than the word has leftover.
		if leftWord[i] < wpGuess[i] {
			return false
		}
		// The guess saw this letter as A, and the word still has some left
		// beyond the WP allowance.
		if aGuess[i] > 0 && leftWord[i] > wpGuess[i] {
			return false
		}
	}

	return true
}

// PossibleWords streams the words from the candidate list that remain
// consistent with the clues that guess earned. The constraint is compiled
// once and reused across the whole list.
func PossibleWords(guess string, clues Clues, words []string) iter.Seq[string] {
	constraint := CompileClues(guess, clues)
	return func(yield func(string) bool) {
		for _, w := range words {
			if !constraint.Possible(w) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}
