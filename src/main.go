package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/dlenski/lexeme"
	"github.com/dlenski/lexeme/internal"
)

type RankGuessesRequest struct {
	WordLength     int      `json:"wordLength"`
	WordScope      string   `json:"wordScope"`
	IncludeObscure bool     `json:"includeObscure"`
	TargetWords    []string `json:"targetWords"`
	GuessWords     []string `json:"guessWords"`
	MaxResults     int      `json:"maxResults"`
}

type RankedGuess struct {
	Guess   string  `json:"guess"`
	Average float64 `json:"avgTargetsLeft"`
	Median  float64 `json:"medianTargetsLeft"`
	Worst   int     `json:"maxTargetsLeft"`
	Buckets int     `json:"nCluniques"`
}

type RankGuessesResponse struct {
	Success bool          `json:"success"`
	Records []RankedGuess `json:"records"`
	Error   string        `json:"error,omitempty"`
}

// errInvalidRequest marks request-validation failures, which are reported as
// 400s; everything else from execute is a 500.
var errInvalidRequest = errors.New("invalid request")

func execute(ctx context.Context, req RankGuessesRequest) ([]RankedGuess, error) {
	if req.WordLength < 2 {
		return nil, fmt.Errorf("%w: wordLength must be at least 2", errInvalidRequest)
	}
	if req.MaxResults <= 0 {
		return nil, fmt.Errorf("%w: maxResults must be at least 1", errInvalidRequest)
	}

	targets := eligibleOnly(req.TargetWords, req.WordLength)
	guesses := eligibleOnly(req.GuessWords, req.WordLength)

	if req.WordScope != "" {
		regularWords, obscureWords, err := lexeme.LoadWordsFromCloud(ctx, req.WordScope, req.IncludeObscure, req.WordLength)
		if err != nil {
			return nil, fmt.Errorf("LoadWordsFromCloud: %w", err)
		}
		fmt.Printf("Loaded %d regular words and %d obscure words\n", len(regularWords), len(obscureWords))

		targets = append(targets, regularWords...)
		guesses = append(guesses, regularWords...)
		guesses = append(guesses, obscureWords...)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: targetWords must not be empty", errInvalidRequest)
	}
	if len(guesses) == 0 {
		guesses = nil // every target is also a guess
	}

	ranker, err := lexeme.CreateRanker(req.WordLength, guesses, targets, lexeme.RankerParams{})
	if err != nil {
		return nil, fmt.Errorf("CreateRanker: %w", err)
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var records []RankedGuess
	for rec := range ranker.RankedGuesses(ctx) {
		records = append(records, RankedGuess{
			Guess:   rec.Guess,
			Average: rec.Average,
			Median:  rec.Median,
			Worst:   rec.Worst,
			Buckets: rec.Buckets,
		})
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Best guesses first: fewest worst-case targets left, then fewest on
	// average.
	slices.SortFunc(records, func(a, b RankedGuess) int {
		if a.Worst != b.Worst {
			return a.Worst - b.Worst
		}
		if a.Average != b.Average {
			if a.Average < b.Average {
				return -1
			}
			return 1
		}
		return 0
	})

	if len(records) > req.MaxResults {
		records = records[:req.MaxResults]
	}
	return records, nil
}

func eligibleOnly(words []string, length int) []string {
	var out []string
	for _, w := range words {
		if word, ok := internal.EligibleWord(w, length); ok {
			out = append(out, word)
		}
	}
	return out
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func rankGuesses(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req RankGuessesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := RankGuessesResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	records, err := execute(r.Context(), req)

	response := RankGuessesResponse{
		Success: err == nil,
		Records: records,
	}

	if err != nil {
		response.Error = err.Error()
		if errors.Is(err, errInvalidRequest) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}

	// The status line has already been sent; all we can do is log.
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/rank-guesses", rankGuesses)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
