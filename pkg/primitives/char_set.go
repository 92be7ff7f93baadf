package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// CharSet efficiently represents a set of uppercase letters using bit
// manipulation. It supports the 26 characters 'A' through 'Z', which
// fits in a uint32.
type CharSet struct {
	bits uint32
}

const (
	minChar  = 'A'
	maxChar  = 'Z'
	numChars = maxChar - minChar + 1
)

// NewCharSet creates a new empty character set.
func NewCharSet() *CharSet {
	return &CharSet{}
}

// Add adds a character to the set.
func (c *CharSet) Add(r byte) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.bits |= 1 << uint(r-minChar)
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other CharSet) {
	c.bits |= other.bits
}

// Contains checks if a character is in the set.
func (c CharSet) Contains(r byte) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.bits&(1<<uint(r-minChar)) != 0
}

// IsEmpty checks if the set has no characters.
func (c CharSet) IsEmpty() bool {
	return c.bits == 0
}

// IsFull checks if the set is full.
func (c CharSet) IsFull() bool {
	return c.Count() == numChars
}

// Capacity returns the number of characters that can be added to the set.
func (c CharSet) Capacity() int {
	return numChars
}

// Count returns the number of characters in the set.
func (c CharSet) Count() int {
	return bits.OnesCount32(c.bits)
}

// Clear removes all characters from the set.
func (c *CharSet) Clear() {
	c.bits = 0
}

// Clone creates a copy of the character set.
func (c CharSet) Clone() *CharSet {
	return &CharSet{bits: c.bits}
}

// Intersect performs an intersection with another set.
func (c *CharSet) Intersect(other CharSet) {
	c.bits &= other.bits
}

// String returns a string representation of the set.
func (c CharSet) String() string {
	if c.bits == 0 {
		return "letters [] (0/26)"
	}

	var chars []string
	for i := range uint(numChars) {
		if c.bits&(1<<i) != 0 {
			chars = append(chars, fmt.Sprintf("'%c'", rune(minChar+i)))
		}
	}
	return fmt.Sprintf("letters [%s] (%d/%d)", strings.Join(chars, ", "), c.Count(), numChars)
}
