package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/dlenski/lexeme"
	"github.com/dlenski/lexeme/internal"
)

func main() {
	targetFile := flag.String("file", "", "The file to load target words from")
	guessFile := flag.String("guess-file", "", "Optional file of legal guesses (a superset of the targets)")
	wordLength := flag.Int("length", 5, "The length of words to rank")
	workers := flag.Int("workers", 0, "Number of concurrent workers (0 = one per CPU)")
	timeout := flag.Duration("timeout", 0, "Give up after this long (0 = no timeout)")

	loadWordsFromCloud := flag.Bool("cloud", false, "Load words from cloud")
	scope := flag.String("scope", "regular", "The scope of the words to load")
	obscure := flag.Bool("obscure", false, "Include obscure words")

	profile := flag.Bool("profile", false, "Profile the ranking")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Parse()

	if *targetFile == "" && !*loadWordsFromCloud {
		fmt.Fprintln(os.Stderr, "Need one of -file or -cloud")
		os.Exit(1)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	targets, guesses, err := loadWords(ctx, *targetFile, *guessFile, *wordLength, *loadWordsFromCloud, *scope, *obscure)
	if err != nil {
		log.Fatalf("Error loading words: %v", err)
	}

	ranker, err := lexeme.CreateRanker(*wordLength, guesses, targets, lexeme.RankerParams{Workers: *workers})
	if err != nil {
		log.Fatalf("Error creating ranker: %v", err)
	}

	if guesses == nil {
		fmt.Fprintf(os.Stderr, "Loaded %d target/guess words of length %d\n", len(targets), *wordLength)
	} else {
		fmt.Fprintf(os.Stderr, "Loaded %d target words and %d guess words of length %d\n",
			len(targets), len(guesses), *wordLength)
	}

	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatalf("Error creating profile file: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Error starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	bar := progressbar.NewOptions(len(ranker.Guesses),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("ranking guesses"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	fmt.Println("guess,avg_targets_left_after_guess,median_targets_left_after_guess,max_targets_left_after_guess,n_possible_cluniques_after_guess")

	start := time.Now()
	ranked := 0
	for rec := range ranker.RankedGuesses(ctx) {
		fmt.Printf("%q,%g,%g,%d,%d\n", rec.Guess, rec.Average, rec.Median, rec.Worst, rec.Buckets)
		bar.Add(1)
		ranked++
	}
	bar.Finish()
	fmt.Fprintln(os.Stderr)

	if err := ctx.Err(); err != nil {
		log.Fatalf("Stopped after %d/%d guesses: %v", ranked, len(ranker.Guesses), err)
	}

	elapsed := time.Since(start)
	loops := float64(ranked) * float64(len(targets))
	fmt.Fprintf(os.Stderr, "Crunched %d guesses in %v (%.0f inner loops/second)\n",
		ranked, elapsed.Round(time.Millisecond), loops/elapsed.Seconds())
}

func loadWords(ctx context.Context, targetFile, guessFile string, length int, cloud bool, scope string, obscure bool) (targets, guesses []string, err error) {
	if cloud {
		regular, obscureWords, err := lexeme.LoadWordsFromCloud(ctx, scope, obscure, length)
		if err != nil {
			return nil, nil, err
		}
		// Concat so the guess list never shares regular's backing array.
		return regular, slices.Concat(regular, obscureWords), nil
	}

	targets, err = internal.LoadWordFile(targetFile, length)
	if err != nil {
		return nil, nil, err
	}
	if guessFile != "" {
		guesses, err = internal.LoadWordFile(guessFile, length)
		if err != nil {
			return nil, nil, err
		}
	}
	return targets, guesses, nil
}
