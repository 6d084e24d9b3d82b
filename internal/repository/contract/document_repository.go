package contract

import (
	"context"

	"marginalia/internal/entity"
)

type DocumentRepository interface {
	Get(ctx context.Context, documentId string) (*entity.Book, error)
	GetAnnotations(ctx context.Context, documentId string) (*entity.DocumentAnnotations, error)
	Delete(ctx context.Context, documentId string) error
}
