package service

import (
	"context"
	"fmt"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/pkg/logger"
	"marginalia/internal/pkg/validation"
	"marginalia/internal/repository/contract"
	"marginalia/internal/repository/memory"
)

// IConversationService assembles transcripts for the conversation view.
type IConversationService interface {
	// StartFromQuery creates a conversation and parks the query in the
	// handoff slot; Open on the returned id consumes it.
	StartFromQuery(ctx context.Context, query string) (*entity.ConversationMetadata, error)

	// Open produces the ordered transcript for a conversation. With a
	// pending query targeting this conversation it runs the fresh-query
	// path; otherwise it replays the persisted conversation.
	Open(ctx context.Context, conversationId string) (*entity.Conversation, error)

	// Ask appends a user message to an existing conversation, parented
	// on the current leaf, and returns the user/answer pair in order.
	Ask(ctx context.Context, conversationId, query string) ([]entity.Message, error)

	List(ctx context.Context) ([]entity.ConversationMetadata, error)
	Delete(ctx context.Context, conversationId string) error
}

type conversationService struct {
	repo    contract.ConversationRepository
	handoff *memory.HandoffRepository
	cache   *memory.ViewCache
	log     logger.ILogger
}

func NewConversationService(
	repo contract.ConversationRepository,
	handoff *memory.HandoffRepository,
	cache *memory.ViewCache,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		repo:    repo,
		handoff: handoff,
		cache:   cache,
		log:     log,
	}
}

func (s *conversationService) StartFromQuery(ctx context.Context, query string) (*entity.ConversationMetadata, error) {
	if err := validation.ValidateRequest(dto.SearchRequest{Query: query}); err != nil {
		return nil, err
	}

	metadata, err := s.repo.Create(ctx)
	if err != nil {
		s.log.Error("conversation", "create failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	s.handoff.Set(query, metadata.Id)
	s.cache.Invalidate(memory.KeyConversationList)
	return metadata, nil
}

func (s *conversationService) Open(ctx context.Context, conversationId string) (*entity.Conversation, error) {
	pending := s.handoff.Peek()
	if pending.Query != "" && pending.ConversationId != nil && *pending.ConversationId == conversationId {
		return s.assembleFresh(ctx, conversationId, pending.Query)
	}
	return s.replay(ctx, conversationId)
}

// assembleFresh runs the two-step fresh-query path: persist the user
// message (no parent on a fresh conversation), then request the answer
// keyed by that message's id. The handoff slot is cleared exactly once,
// whether or not either step succeeds.
func (s *conversationService) assembleFresh(ctx context.Context, conversationId, query string) (*entity.Conversation, error) {
	defer s.handoff.Clear()

	userMessage, err := s.repo.AddMessage(ctx, conversationId, &dto.AddMessageRequest{
		Content:         query,
		Sender:          entity.SenderUser,
		ParentMessageId: nil,
	})
	if err != nil {
		s.log.Error("conversation", "add user message failed", map[string]interface{}{
			"conversation_id": conversationId,
			"error":           err.Error(),
		})
		return nil, fmt.Errorf("add user message: %w", err)
	}

	answer, err := s.repo.RequestCompletion(ctx, conversationId, &dto.CompletionRequest{
		Query:           query,
		ParentMessageId: &userMessage.Id,
	})
	if err != nil {
		s.log.Error("conversation", "completion failed", map[string]interface{}{
			"conversation_id": conversationId,
			"error":           err.Error(),
		})
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	s.cache.Invalidate(memory.PrefixConversation+conversationId, memory.KeyConversationList)

	leaf := answer.Id
	return &entity.Conversation{
		Metadata: entity.ConversationMetadata{
			Id:                   conversationId,
			MessageCount:         2,
			CurrentLeafMessageId: &leaf,
			CreatedAt:            userMessage.CreatedAt,
		},
		Messages: []entity.Message{*userMessage, *answer},
	}, nil
}

func (s *conversationService) replay(ctx context.Context, conversationId string) (*entity.Conversation, error) {
	cacheKey := memory.PrefixConversation + conversationId
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*entity.Conversation), nil
	}

	conversation, err := s.repo.Get(ctx, conversationId)
	if err != nil {
		s.log.Error("conversation", "replay failed", map[string]interface{}{
			"conversation_id": conversationId,
			"error":           err.Error(),
		})
		return nil, fmt.Errorf("fetch conversation: %w", err)
	}

	s.cache.Set(cacheKey, conversation)
	return conversation, nil
}

func (s *conversationService) Ask(ctx context.Context, conversationId, query string) ([]entity.Message, error) {
	if err := validation.ValidateRequest(dto.SearchRequest{Query: query}); err != nil {
		return nil, err
	}

	conversation, err := s.replay(ctx, conversationId)
	if err != nil {
		return nil, err
	}

	userMessage, err := s.repo.AddMessage(ctx, conversationId, &dto.AddMessageRequest{
		Content:         query,
		Sender:          entity.SenderUser,
		ParentMessageId: conversation.Metadata.CurrentLeafMessageId,
	})
	if err != nil {
		return nil, fmt.Errorf("add user message: %w", err)
	}

	answer, err := s.repo.RequestCompletion(ctx, conversationId, &dto.CompletionRequest{
		Query:           query,
		ParentMessageId: &userMessage.Id,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	s.cache.Invalidate(memory.PrefixConversation+conversationId, memory.KeyConversationList)
	return []entity.Message{*userMessage, *answer}, nil
}

func (s *conversationService) List(ctx context.Context) ([]entity.ConversationMetadata, error) {
	if cached, found := s.cache.Get(memory.KeyConversationList); found {
		return cached.([]entity.ConversationMetadata), nil
	}

	list, err := s.repo.List(ctx, "updated_at", "desc")
	if err != nil {
		s.log.Error("conversation", "list failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	s.cache.Set(memory.KeyConversationList, list)
	return list, nil
}

func (s *conversationService) Delete(ctx context.Context, conversationId string) error {
	if err := s.repo.Delete(ctx, conversationId); err != nil {
		s.log.Error("conversation", "delete failed", map[string]interface{}{
			"conversation_id": conversationId,
			"error":           err.Error(),
		})
		return fmt.Errorf("delete conversation: %w", err)
	}

	s.cache.Invalidate(memory.PrefixConversation+conversationId, memory.KeyConversationList)
	return nil
}
