package contract

import (
	"context"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context) (*entity.ConversationMetadata, error)
	List(ctx context.Context, sort, orderBy string) ([]entity.ConversationMetadata, error)
	Get(ctx context.Context, conversationId string) (*entity.Conversation, error)
	Delete(ctx context.Context, conversationId string) error
	AddMessage(ctx context.Context, conversationId string, req *dto.AddMessageRequest) (*entity.Message, error)
	RequestCompletion(ctx context.Context, conversationId string, req *dto.CompletionRequest) (*entity.Message, error)
}
