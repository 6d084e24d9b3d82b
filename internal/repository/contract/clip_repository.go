package contract

import (
	"context"

	"marginalia/internal/entity"
)

type ClipRepository interface {
	Get(ctx context.Context, clipId string) (*entity.Clip, error)
	GetSimilar(ctx context.Context, clipId string) ([]entity.Clip, error)
	Delete(ctx context.Context, clipId string) error
	Sample(ctx context.Context, limit int, random bool) ([]entity.Clip, error)
}
