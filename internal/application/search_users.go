package application

import (
	"context"
	"strings"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

type SearchUsersUseCase struct {
	Indexer UserIndexer
}

func NewSearchUsersUseCase(indexer UserIndexer) *SearchUsersUseCase {
	return &SearchUsersUseCase{Indexer: indexer}
}

// Execute runs a directory search. A non-positive size means the default
// page size and larger ones are capped. Without an index there are no
// results.
func (uc *SearchUsersUseCase) Execute(ctx context.Context, q string, size int) ([]UserDocument, error) {
	switch {
	case size <= 0:
		size = defaultSearchSize
	case size > maxSearchSize:
		size = maxSearchSize
	}
	q = strings.TrimSpace(q)
	if uc.Indexer == nil || q == "" {
		return []UserDocument{}, nil
	}
	return uc.Indexer.Search(ctx, q, size)
}
