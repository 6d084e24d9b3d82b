package contract

import (
	"context"

	"marginalia/internal/entity"
)

type SearchRepository interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}
