package api

import (
	"context"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/mapper"
	"marginalia/internal/repository/contract"
)

type libraryRepository struct {
	client *Client
	mapper *mapper.LibraryMapper
}

func NewLibraryRepository(client *Client, m *mapper.LibraryMapper) contract.LibraryRepository {
	return &libraryRepository{client: client, mapper: m}
}

func (r *libraryRepository) List(ctx context.Context) ([]entity.LibraryItem, error) {
	var resp []dto.LibraryItemResponse
	if err := r.client.getJSON(ctx, "/library", nil, &resp); err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(resp), nil
}
