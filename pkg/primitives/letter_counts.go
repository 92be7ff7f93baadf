package primitives

// LetterCounts tracks per-letter occurrence counts over the 26 uppercase
// letters as a small fixed array, so the accounting in the clue and
// possibility algorithms stays O(1) per letter with no allocation.
type LetterCounts [numChars]int8

// CountLetters returns the occurrence counts of each letter in word.
// The word must consist of uppercase letters 'A' through 'Z'.
func CountLetters(word string) LetterCounts {
	var lc LetterCounts
	for i := 0; i < len(word); i++ {
		lc[word[i]-minChar]++
	}
	return lc
}

// Inc increments the count for the given letter.
func (lc *LetterCounts) Inc(r byte) {
	lc[r-minChar]++
}

// Dec decrements the count for the given letter.
func (lc *LetterCounts) Dec(r byte) {
	lc[r-minChar]--
}

// Get returns the count for the given letter.
func (lc LetterCounts) Get(r byte) int {
	return int(lc[r-minChar])
}

// Letter returns the letter at the given array index.
func Letter(i int) byte {
	return byte(minChar + i)
}
