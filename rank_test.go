package lexeme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlenski/lexeme/internal"
)

func collectRecords(t testing.TB, r *Ranker) []Record {
	t.Helper()
	var records []Record
	for rec := range r.RankedGuesses(context.Background()) {
		records = append(records, rec)
	}
	return records
}

func TestSingleTargetAggregates(t *testing.T) {
	ranker, err := CreateRanker(5, nil, []string{"SWEAT"}, RankerParams{Workers: 1})
	require.NoError(t, err)

	records := collectRecords(t, ranker)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "SWEAT", rec.Guess)
	assert.Equal(t, 1.0, rec.Average)
	assert.Equal(t, 1.0, rec.Median)
	assert.Equal(t, 1, rec.Worst)
	assert.Equal(t, 1, rec.Buckets)
}

func TestWorstAtLeastAverage(t *testing.T) {
	ranker, err := CreateRanker(6, nil, vWords, RankerParams{Workers: 1})
	require.NoError(t, err)

	records := collectRecords(t, ranker)
	require.Len(t, records, len(vWords))

	for _, rec := range records {
		assert.GreaterOrEqual(t, float64(rec.Worst), rec.Average, "guess %s", rec.Guess)
		assert.GreaterOrEqual(t, rec.Average, 1.0, "guess %s", rec.Guess)
		assert.GreaterOrEqual(t, rec.Buckets, 1, "guess %s", rec.Guess)
	}
}

// A guess that fully separates a target list leaves worst-case 1.
func TestFullySeparatingGuess(t *testing.T) {
	targets := []string{"AAAAA", "BBBBB", "CCCCC"}
	ranker, err := CreateRanker(5, []string{"ABCXY"}, targets, RankerParams{Workers: 1})
	require.NoError(t, err)

	records := collectRecords(t, ranker)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Worst)
	assert.Equal(t, 1.0, records[0].Average)
	assert.Equal(t, 3, records[0].Buckets)
}

// Parallel ranking must emit exactly the serial records, in guess order.
func TestParallelMatchesSerial(t *testing.T) {
	serial, err := CreateRanker(6, nil, vWords, RankerParams{Workers: 1})
	require.NoError(t, err)
	parallel, err := CreateRanker(6, nil, vWords, RankerParams{Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, collectRecords(t, serial), collectRecords(t, parallel))
}

func TestRankedGuessesStopsEarly(t *testing.T) {
	ranker, err := CreateRanker(6, nil, vWords, RankerParams{Workers: 4})
	require.NoError(t, err)

	var got []string
	for rec := range ranker.RankedGuesses(context.Background()) {
		got = append(got, rec.Guess)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, vWords[:3], got)
}

func TestRankedGuessesCancelled(t *testing.T) {
	ranker, err := CreateRanker(6, nil, vWords, RankerParams{Workers: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range ranker.RankedGuesses(ctx) {
		count++
	}
	assert.Less(t, count, len(vWords))
}

func TestCreateRankerErrors(t *testing.T) {
	_, err := CreateRanker(5, nil, nil, RankerParams{})
	assert.Error(t, err, "empty target list")

	_, err = CreateRanker(5, nil, []string{"ABEAM", "ADDUCE"}, RankerParams{})
	assert.Error(t, err, "mixed word lengths")

	_, err = CreateRanker(0, nil, []string{"ABEAM"}, RankerParams{})
	assert.Error(t, err, "non-positive length")

	_, err = CreateRanker(5, []string{"ADDUCE"}, []string{"ABEAM"}, RankerParams{})
	assert.Error(t, err, "guess of the wrong length")
}

func TestGuessListDefaultsToTargets(t *testing.T) {
	ranker, err := CreateRanker(6, nil, vWords, RankerParams{})
	require.NoError(t, err)

	guesses := make([]string, 0, len(vWords))
	for rec := range ranker.RankedGuesses(context.Background()) {
		guesses = append(guesses, rec.Guess)
	}
	assert.Equal(t, vWords, guesses)
}

func BenchmarkRankedGuesses(b *testing.B) {
	words, err := internal.LoadWordFile("testdata/words.txt", 5)
	require.NoError(b, err)
	require.NotEmpty(b, words)

	b.ReportAllocs()

	for _, workers := range []int{1, 4} {
		name := "serial"
		if workers > 1 {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			ranker, err := CreateRanker(5, nil, words, RankerParams{Workers: workers})
			require.NoError(b, err)

			for b.Loop() {
				count := 0
				for range ranker.RankedGuesses(context.Background()) {
					count++
				}
				if count != len(words) {
					b.Fatalf("expected %d records, got %d", len(words), count)
				}
			}
		})
	}
}
