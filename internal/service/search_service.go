package service

import (
	"context"
	"fmt"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/pkg/logger"
	"marginalia/internal/pkg/validation"
	"marginalia/internal/repository/contract"
)

type ISearchService interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

type searchService struct {
	searchRepo contract.SearchRepository
	log        logger.ILogger
}

func NewSearchService(searchRepo contract.SearchRepository, log logger.ILogger) ISearchService {
	return &searchService{searchRepo: searchRepo, log: log}
}

func (s *searchService) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	if err := validation.ValidateRequest(dto.SearchRequest{Query: query}); err != nil {
		return nil, err
	}

	results, err := s.searchRepo.Search(ctx, query)
	if err != nil {
		s.log.Error("search", "query failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}
