package api

import (
	"context"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/mapper"
	"marginalia/internal/repository/contract"
)

type documentRepository struct {
	client *Client
	mapper *mapper.ClipMapper
}

func NewDocumentRepository(client *Client, m *mapper.ClipMapper) contract.DocumentRepository {
	return &documentRepository{client: client, mapper: m}
}

func (r *documentRepository) Get(ctx context.Context, documentId string) (*entity.Book, error) {
	var resp dto.BookResponse
	if err := r.client.getJSON(ctx, "/documents/"+documentId, nil, &resp); err != nil {
		return nil, err
	}
	return r.mapper.BookToEntity(&resp), nil
}

func (r *documentRepository) GetAnnotations(ctx context.Context, documentId string) (*entity.DocumentAnnotations, error) {
	var resp dto.DocumentAnnotationsResponse
	if err := r.client.getJSON(ctx, "/documents/"+documentId+"/annotations", nil, &resp); err != nil {
		return nil, err
	}
	return r.mapper.DocumentAnnotationsToEntity(&resp), nil
}

func (r *documentRepository) Delete(ctx context.Context, documentId string) error {
	// Deletion lives under the singular prefix, unlike the reads.
	return r.client.delete(ctx, "/document/"+documentId)
}
