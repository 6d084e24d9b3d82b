package contract

import (
	"context"

	"marginalia/internal/entity"
)

type LibraryRepository interface {
	List(ctx context.Context) ([]entity.LibraryItem, error)
}
