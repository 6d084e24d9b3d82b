package api

import (
	"context"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/repository/contract"
)

type searchRepository struct {
	client *Client
}

func NewSearchRepository(client *Client) contract.SearchRepository {
	return &searchRepository{client: client}
}

func (r *searchRepository) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	var resp []dto.SearchResultResponse
	if err := r.client.postJSON(ctx, "/search", dto.SearchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}

	results := make([]entity.SearchResult, 0, len(resp))
	for _, item := range resp {
		results = append(results, entity.SearchResult{
			Id:          item.Id,
			Title:       item.Title,
			Description: item.Description,
		})
	}
	return results, nil
}
