package service

import (
	"context"
	"fmt"

	"marginalia/internal/entity"
	"marginalia/internal/pkg/logger"
	"marginalia/internal/repository/contract"
	"marginalia/internal/repository/memory"
)

type IClipService interface {
	Get(ctx context.Context, clipId string) (*entity.Clip, error)
	GetSimilar(ctx context.Context, clipId string) ([]entity.Clip, error)
	Sample(ctx context.Context, limit int, random bool) ([]entity.Clip, error)
	Delete(ctx context.Context, clipId string) error
}

type clipService struct {
	clipRepo contract.ClipRepository
	cache    *memory.ViewCache
	log      logger.ILogger
}

func NewClipService(clipRepo contract.ClipRepository, cache *memory.ViewCache, log logger.ILogger) IClipService {
	return &clipService{clipRepo: clipRepo, cache: cache, log: log}
}

func (s *clipService) Get(ctx context.Context, clipId string) (*entity.Clip, error) {
	clip, err := s.clipRepo.Get(ctx, clipId)
	if err != nil {
		s.log.Error("clip", "fetch failed", map[string]interface{}{"clip_id": clipId, "error": err.Error()})
		return nil, fmt.Errorf("fetch clip: %w", err)
	}
	return clip, nil
}

func (s *clipService) GetSimilar(ctx context.Context, clipId string) ([]entity.Clip, error) {
	clips, err := s.clipRepo.GetSimilar(ctx, clipId)
	if err != nil {
		s.log.Error("clip", "similar fetch failed", map[string]interface{}{"clip_id": clipId, "error": err.Error()})
		return nil, fmt.Errorf("fetch similar clips: %w", err)
	}
	return clips, nil
}

func (s *clipService) Sample(ctx context.Context, limit int, random bool) ([]entity.Clip, error) {
	clips, err := s.clipRepo.Sample(ctx, limit, random)
	if err != nil {
		s.log.Error("clip", "sample failed", map[string]interface{}{"limit": limit, "error": err.Error()})
		return nil, fmt.Errorf("sample clips: %w", err)
	}
	return clips, nil
}

func (s *clipService) Delete(ctx context.Context, clipId string) error {
	if err := s.clipRepo.Delete(ctx, clipId); err != nil {
		s.log.Error("clip", "delete failed", map[string]interface{}{"clip_id": clipId, "error": err.Error()})
		return fmt.Errorf("delete clip: %w", err)
	}

	// Clip counts and annotation listings may have changed under any
	// document, so drop the listings wholesale.
	s.cache.Flush()
	return nil
}
