package search

import "codesearch/internal/domain"

// ResultsMsg reports the outcome of one search request
type ResultsMsg struct {
	Seq     uint64
	Query   string
	Project string
	Matches []domain.Match
	Err     error
}
