package lexeme

import "strings"

// LetterState is the best knowledge about one alphabet letter accumulated
// across a whole game, as shown on the letter board. Unlike a Clue it has an
// Unknown state, for letters that have not been guessed yet.
type LetterState uint8

const (
	LetterUnknown LetterState = iota
	LetterAbsent
	LetterPresent
	LetterPlaced
)

// Knowledge tracks the state of every alphabet letter. A letter's state only
// ever upgrades: Absent can become Present, Present can become Placed, but
// never the reverse.
type Knowledge [numLetters]LetterState

// Update folds the information from one guess against the target into the
// per-letter knowledge.
func (k *Knowledge) Update(guess, target string) {
	for i := 0; i < len(guess); i++ {
		gl := guess[i]
		switch {
		case gl == target[i]:
			k[gl-'A'] = LetterPlaced
		case strings.IndexByte(target, gl) >= 0:
			if s := k[gl-'A']; s == LetterUnknown || s == LetterAbsent {
				k[gl-'A'] = LetterPresent
			}
		default:
			k[gl-'A'] = LetterAbsent
		}
	}
}

// Get returns the state of the given letter.
func (k Knowledge) Get(r byte) LetterState {
	return k[r-'A']
}
