package commands

import (
	"context"
	"sort"
	"strings"

	"github.com/cixtor/interview/internal/application"
	"github.com/cixtor/interview/internal/ports"
)

// SuggestLimit is the number of company suggestions offered after a failed lookup
const SuggestLimit = 5

// SearchCommand is reserved for full-text search of records. It currently
// matches nothing.
type SearchCommand struct {
	repo  ports.RecordRepository
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.RecordRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute validates the query and returns no results
func (c *SearchCommand) Execute(ctx context.Context) ([]string, error) {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return nil, err
	}
	return nil, nil
}

// Suggestion is a known company slug scored against a query
type Suggestion struct {
	Company string
	Score   int
}

// SuggestCommand ranks the companies present in the archive against a name
type SuggestCommand struct {
	repo    ports.RecordRepository
	Company string
}

// NewSuggestCommand creates a new SuggestCommand
func NewSuggestCommand(repo ports.RecordRepository, company string) *SuggestCommand {
	return &SuggestCommand{
		repo:    repo,
		Company: company,
	}
}

// Execute returns up to SuggestLimit companies, best match first
func (c *SuggestCommand) Execute(ctx context.Context) ([]Suggestion, error) {
	if len(c.Company) < 2 {
		return nil, nil
	}

	companies, err := c.repo.Companies()
	if err != nil {
		return nil, err
	}

	suggestions := FuzzySort(companies, c.Company)
	if len(suggestions) > SuggestLimit {
		suggestions = suggestions[:SuggestLimit]
	}
	return suggestions, nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive chars
		}
		if i == 0 {
			score += 15 // start of string
		}
		if i > 0 && strings.IndexByte(" .-_", target[i-1]) >= 0 {
			score += 10 // after separator
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores companies against the query and drops non-matches.
// Ties keep alphabetical order.
func FuzzySort(companies []string, query string) []Suggestion {
	scored := make([]Suggestion, 0, len(companies))

	for _, company := range companies {
		if score := FuzzyScore(company, query); score > 0 {
			scored = append(scored, Suggestion{Company: company, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Company < scored[j].Company
	})

	return scored
}
