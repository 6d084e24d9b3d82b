package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"marginalia/internal/pkg/logger"
	"marginalia/internal/repository/contract"
	"marginalia/internal/repository/memory"
)

type IImportService interface {
	// ImportReadwiseCSV uploads a Readwise export and returns the count
	// of newly imported annotations.
	ImportReadwiseCSV(ctx context.Context, filename string, file io.Reader) (int, error)
}

type importService struct {
	importRepo contract.ImportRepository
	cache      *memory.ViewCache
	log        logger.ILogger
}

func NewImportService(importRepo contract.ImportRepository, cache *memory.ViewCache, log logger.ILogger) IImportService {
	return &importService{importRepo: importRepo, cache: cache, log: log}
}

func (s *importService) ImportReadwiseCSV(ctx context.Context, filename string, file io.Reader) (int, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return 0, fmt.Errorf("readwise import expects a .csv file, got %q", filename)
	}

	imported, err := s.importRepo.UploadReadwiseCSV(ctx, filename, file)
	if err != nil {
		s.log.Error("import", "readwise upload failed", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return 0, fmt.Errorf("upload readwise export: %w", err)
	}

	// A bulk import can touch every listing.
	s.cache.Flush()
	s.log.Info("import", "readwise upload complete", map[string]interface{}{
		"filename": filename,
		"imported": imported,
	})
	return imported, nil
}
