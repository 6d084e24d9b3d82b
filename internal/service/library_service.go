package service

import (
	"context"
	"fmt"

	"marginalia/internal/entity"
	"marginalia/internal/pkg/logger"
	"marginalia/internal/repository/contract"
	"marginalia/internal/repository/memory"
)

type ILibraryService interface {
	List(ctx context.Context) ([]entity.LibraryItem, error)
	GetDocumentAnnotations(ctx context.Context, documentId string) (*entity.DocumentAnnotations, error)
	DeleteDocument(ctx context.Context, documentId string) error
}

type libraryService struct {
	libraryRepo  contract.LibraryRepository
	documentRepo contract.DocumentRepository
	cache        *memory.ViewCache
	log          logger.ILogger
}

func NewLibraryService(
	libraryRepo contract.LibraryRepository,
	documentRepo contract.DocumentRepository,
	cache *memory.ViewCache,
	log logger.ILogger,
) ILibraryService {
	return &libraryService{
		libraryRepo:  libraryRepo,
		documentRepo: documentRepo,
		cache:        cache,
		log:          log,
	}
}

func (s *libraryService) List(ctx context.Context) ([]entity.LibraryItem, error) {
	if cached, found := s.cache.Get(memory.KeyLibrary); found {
		return cached.([]entity.LibraryItem), nil
	}

	items, err := s.libraryRepo.List(ctx)
	if err != nil {
		s.log.Error("library", "list failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("list library: %w", err)
	}

	s.cache.Set(memory.KeyLibrary, items)
	return items, nil
}

func (s *libraryService) GetDocumentAnnotations(ctx context.Context, documentId string) (*entity.DocumentAnnotations, error) {
	cacheKey := memory.PrefixDocAnnotations + documentId
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*entity.DocumentAnnotations), nil
	}

	annotations, err := s.documentRepo.GetAnnotations(ctx, documentId)
	if err != nil {
		s.log.Error("library", "annotations fetch failed", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
		return nil, fmt.Errorf("fetch annotations: %w", err)
	}

	s.cache.Set(cacheKey, annotations)
	return annotations, nil
}

func (s *libraryService) DeleteDocument(ctx context.Context, documentId string) error {
	if err := s.documentRepo.Delete(ctx, documentId); err != nil {
		s.log.Error("library", "document delete failed", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
		return fmt.Errorf("delete document: %w", err)
	}

	s.cache.Invalidate(memory.KeyLibrary, memory.PrefixDocAnnotations+documentId)
	return nil
}
