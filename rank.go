package lexeme

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Record is the aggregate statistics for one candidate guess: how many
// targets would remain possible after playing it, over all equally likely
// targets.
type Record struct {
	Guess string

	// Average remaining targets, computed as sum(bucket^2)/numTargets: a
	// bucket of k targets leaves each of those k targets with k candidates.
	Average float64
	// Median remaining targets, linearly interpolated between the sorted
	// bucket sizes at the 50th-percentile rank.
	Median float64
	// Worst is the size of the largest bucket: the remaining candidates if
	// the target happens to fall in the guess's most populated class.
	Worst int
	// Buckets is the number of distinct clue classifications the guess
	// produces over the target list.
	Buckets int
}

// Ranker scores every candidate guess against every candidate target.
type Ranker struct {
	WordLength int
	Guesses    []string
	Targets    []string

	workers int
}

type RankerParams struct {
	// Workers is the number of guesses scored concurrently. Zero means one
	// per CPU; one gives the reference serial behavior.
	Workers int
}

// CreateRanker validates the word lists and builds a Ranker. The target list
// must be non-empty and every word in both lists must have exactly
// wordLength letters. A nil guess list means every target is also a legal
// guess.
func CreateRanker(wordLength int, guesses, targets []string, params RankerParams) (*Ranker, error) {
	if wordLength <= 0 {
		return nil, fmt.Errorf("word length must be positive, got %d", wordLength)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("target list is empty")
	}
	if guesses == nil {
		guesses = targets
	}
	for _, w := range targets {
		if len(w) != wordLength {
			return nil, fmt.Errorf("target %q is not %d letters", w, wordLength)
		}
	}
	for _, w := range guesses {
		if len(w) != wordLength {
			return nil, fmt.Errorf("guess %q is not %d letters", w, wordLength)
		}
	}

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Ranker{
		WordLength: wordLength,
		Guesses:    guesses,
		Targets:    targets,
		workers:    workers,
	}, nil
}

// RankedGuesses streams a Record per guess, in guess-list order. Guesses are
// scored one per worker; records are re-ordered by guess index before being
// yielded, so output does not depend on scheduling. Stopping the iteration
// or cancelling the context stops the workers between guesses.
func (r *Ranker) RankedGuesses(ctx context.Context) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type indexed struct {
			idx int
			rec Record
		}

		jobs := make(chan int)
		results := make(chan indexed, r.workers)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(jobs)
			for i := range r.Guesses {
				if err := gctx.Err(); err != nil {
					return err
				}
				select {
				case jobs <- i:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
		for range r.workers {
			g.Go(func() error {
				// The histogram buffer is owned by this worker and reused
				// across its guesses.
				hist := make([]int, NumClasses(r.WordLength))
				for idx := range jobs {
					if err := gctx.Err(); err != nil {
						return err
					}
					select {
					case results <- indexed{idx: idx, rec: r.rankOne(r.Guesses[idx], hist)}:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				return nil
			})
		}
		go func() {
			g.Wait()
			close(results)
		}()

		pending := make(map[int]Record)
		next := 0
		for res := range results {
			pending[res.idx] = res.rec
			for {
				rec, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if !yield(rec) {
					return
				}
			}
		}
	}
}

// rankOne buckets every target by the clue classification guess produces
// against it, then derives the summary statistics from the bucket sizes.
func (r *Ranker) rankOne(guess string, hist []int) Record {
	clear(hist)
	for _, target := range r.Targets {
		hist[Classify(guess, target)]++
	}

	buckets := make([]int, 0, min(len(hist), len(r.Targets)))
	for _, n := range hist {
		if n > 0 {
			buckets = append(buckets, n)
		}
	}
	slices.SortFunc(buckets, func(a, b int) int { return b - a })

	nt := len(r.Targets)
	half := nt / 2
	if half == 0 {
		half = 1
	}

	acc, acc2 := 0, 0
	median := 0.0
	for i, bucket := range buckets {
		if acc < half && acc+bucket >= half {
			last := 0
			if i > 0 {
				last = buckets[i-1]
			}
			weight := float64(half-acc) / float64(bucket)
			median = float64(bucket)*weight + float64(last)*(1-weight)
		}
		acc += bucket
		acc2 += bucket * bucket
	}

	return Record{
		Guess:   guess,
		Average: float64(acc2) / float64(nt),
		Median:  median,
		Worst:   buckets[0],
		Buckets: len(buckets),
	}
}
