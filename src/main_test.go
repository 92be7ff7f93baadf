package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRankGuesses(t *testing.T, body string) (*httptest.ResponseRecorder, RankGuessesResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rank-guesses", strings.NewReader(body))
	w := httptest.NewRecorder()
	rankGuesses(w, req)

	var response RankGuessesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return w, response
}

func TestRankGuessesHandler(t *testing.T) {
	t.Run("ranks request words", func(t *testing.T) {
		body, err := json.Marshal(RankGuessesRequest{
			WordLength:  6,
			TargetWords: []string{"ADDUCE", "ADVICE", "DEDUCE", "DEVICE"},
			MaxResults:  2,
		})
		require.NoError(t, err)

		w, response := postRankGuesses(t, string(body))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, response.Success)
		assert.Empty(t, response.Error)
		require.Len(t, response.Records, 2)
		// Best guesses first.
		assert.LessOrEqual(t, response.Records[0].Worst, response.Records[1].Worst)
	})

	t.Run("invalid JSON is a 400", func(t *testing.T) {
		w, response := postRankGuesses(t, "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "Invalid JSON")
	})

	t.Run("bad wordLength is a 400", func(t *testing.T) {
		w, response := postRankGuesses(t, `{"wordLength": 1, "maxResults": 5, "targetWords": ["A"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "wordLength")
	})

	t.Run("bad maxResults is a 400", func(t *testing.T) {
		w, response := postRankGuesses(t, `{"wordLength": 5, "maxResults": 0, "targetWords": ["SWEAT"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "maxResults")
	})

	t.Run("empty target list is a 400", func(t *testing.T) {
		w, response := postRankGuesses(t, `{"wordLength": 5, "maxResults": 5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "targetWords")
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rank-guesses", nil)
		w := httptest.NewRecorder()
		rankGuesses(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("OPTIONS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/rank-guesses", nil)
		w := httptest.NewRecorder()
		rankGuesses(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
