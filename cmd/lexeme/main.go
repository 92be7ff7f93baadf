package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/dlenski/lexeme"
	"github.com/dlenski/lexeme/internal"
)

const defaultDictDir = "/usr/share/dict"

func main() {
	dict := flag.String("dict", "words", "Wordlist to use, either an absolute path or a name under "+defaultDictDir)
	length := flag.Int("length", 5, "Length of word to guess")
	guesses := flag.Int("guesses", 6, "Maximum number of guesses to allow")
	nonsense := flag.Bool("nonsense", false, "Allow nonsense guesses (default is to only allow known words)")
	analyzer := flag.Int("analyzer", 0, "Analyze remaining possible words: 1 shows their number after each guess, 2 also shows the words when there are fewer than 100 (cheater mode!)")
	test := flag.String("test", "", "Fixed target word, for testing")

	flag.Parse()

	path := *dict
	if !filepath.IsAbs(path) {
		path = filepath.Join(defaultDictDir, path)
	}
	words, err := internal.LoadWordFile(path, *length)
	if err != nil {
		log.Fatalf("Error loading words: %v", err)
	}
	if len(words) == 0 {
		log.Fatalf("No words of length %d in %s", *length, path)
	}

	var target string
	if *test != "" {
		target = strings.ToUpper(strings.TrimSpace(*test))
		if !slices.Contains(words, target) {
			log.Fatalf("Need a known %d-letter word to test with, not %q", *length, target)
		}
		fmt.Printf("I've chosen the word %s which you specified to test with!\n", target)
	} else {
		target = words[rand.IntN(len(words))]
		fmt.Printf("I've chosen a %d-letter word from %d possibilities.\n", len(target), len(words))
	}
	fmt.Printf("You have %d guesses to guess it correctly.\n", *guesses)
	if !*nonsense {
		fmt.Println("All your guesses must be words that I know!")
	}
	fmt.Println()

	play(words, target, *length, *guesses, *nonsense, *analyzer)
}

func play(words []string, target string, length, maxGuesses int, nonsense bool, analyzer int) {
	reader := bufio.NewReader(os.Stdin)
	narrowed := words
	var made []string
	var known lexeme.Knowledge

	for len(made) < maxGuesses {
		fmt.Printf("Letters: %s\n", letterBoard(known))
		if analyzer == 1 || (analyzer >= 2 && len(narrowed) >= 100) {
			fmt.Printf("There are %d possible words remaining.\n", len(narrowed))
		} else if analyzer >= 2 {
			fmt.Printf("There are %d possible words remaining: %s\n", len(narrowed), strings.Join(narrowed, ", "))
		}

		guess, ok := readGuess(reader, words, length, nonsense)
		if !ok {
			fmt.Println("\nInterrupted, giving up...")
			break
		}

		known.Update(guess, target)
		made = append(made, guess)

		fmt.Println()
		for i, g := range made {
			fmt.Printf("Guess %d: %s\n", i+1, coloredGuess(g, target))
		}
		fmt.Println()

		if guess == target {
			fmt.Printf("You guessed it in %d guesses!\n", len(made))
			return
		}

		if analyzer > 0 {
			narrowed = slices.Collect(lexeme.PossibleWords(guess, lexeme.CluesOfGuess(guess, target), narrowed))
		}
	}

	fmt.Printf("You didn't guess it in %d guesses. The word was %s.\n", maxGuesses, target)
}

func readGuess(reader *bufio.Reader, words []string, length int, nonsense bool) (string, bool) {
	for {
		fmt.Print("Your guess? ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}
		guess, ok := internal.EligibleWord(line, length)
		if !ok {
			fmt.Printf("Must be a word consisting of exactly %d letters. Try again.\n", length)
			continue
		}
		if !nonsense && !slices.Contains(words, guess) {
			fmt.Printf("Hmmm, I don't know the word %s. Try again.\n", guess)
			continue
		}
		return guess, true
	}
}

func coloredGuess(guess, target string) string {
	var b strings.Builder
	for i, c := range lexeme.CluesOfGuess(guess, target) {
		b.WriteString(color.Ize(clueColor(c), string(guess[i])))
	}
	return b.String()
}

func clueColor(c lexeme.Clue) string {
	switch c {
	case lexeme.ClueRightPosition:
		return color.Green
	case lexeme.ClueWrongPosition:
		return color.Yellow
	default:
		return color.Red
	}
}

func letterBoard(known lexeme.Knowledge) string {
	var b strings.Builder
	for r := byte('A'); r <= 'Z'; r++ {
		switch known.Get(r) {
		case lexeme.LetterPlaced:
			b.WriteString(color.Ize(color.Green, string(r)))
		case lexeme.LetterPresent:
			b.WriteString(color.Ize(color.Yellow, string(r)))
		case lexeme.LetterAbsent:
			b.WriteString(color.Ize(color.Red, string(r)))
		default:
			b.WriteByte(r)
		}
	}
	return b.String()
}
