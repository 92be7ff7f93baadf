package lexeme

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/dlenski/lexeme/internal"
)

const cloudProject = "lexeme-x"

// LoadWordsFromCloud queries the word table for all words in the given scope
// and returns those of the given length, split into regular and obscure
// lists. Obscure words are only queried when includeObscure is set.
func LoadWordsFromCloud(ctx context.Context, scope string, includeObscure bool, length int) ([]string, []string, error) {
	client, err := bigquery.NewClient(ctx, cloudProject)
	if err != nil {
		return nil, nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	obscureValues := []string{"false"}
	if includeObscure {
		obscureValues = append(obscureValues, "true")
	}
	query := fmt.Sprintf(
		"SELECT word_key, obscure FROM `lexeme-x.WordQuery.all_words` WHERE scope = %q AND obscure IN (%s)",
		scope, strings.Join(obscureValues, ","))
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("job.Read: %w", err)
	}

	var regularWords, obscureWords []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected word_key type %T", row[0])
		}
		obscure, ok := row[1].(bool)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected obscure type %T", row[1])
		}

		// The table is not length-partitioned; apply the same eligibility
		// rules as the file loader.
		word, ok = internal.EligibleWord(word, length)
		if !ok {
			continue
		}
		if obscure {
			obscureWords = append(obscureWords, word)
		} else {
			regularWords = append(regularWords, word)
		}
	}

	return regularWords, obscureWords, nil
}
