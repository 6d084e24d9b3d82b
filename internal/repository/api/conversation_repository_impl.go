package api

import (
	"context"
	"net/url"

	"marginalia/internal/dto"
	"marginalia/internal/entity"
	"marginalia/internal/mapper"
	"marginalia/internal/repository/contract"
)

type conversationRepository struct {
	client *Client
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(client *Client, m *mapper.ConversationMapper) contract.ConversationRepository {
	return &conversationRepository{client: client, mapper: m}
}

func (r *conversationRepository) Create(ctx context.Context) (*entity.ConversationMetadata, error) {
	var resp dto.ConversationMetadataResponse
	if err := r.client.postJSON(ctx, "/conversation", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return r.mapper.MetadataToEntity(&resp), nil
}

func (r *conversationRepository) List(ctx context.Context, sort, orderBy string) ([]entity.ConversationMetadata, error) {
	query := url.Values{}
	if sort != "" {
		query.Set("sort", sort)
	}
	if orderBy != "" {
		query.Set("order_by", orderBy)
	}

	var resp []dto.ConversationMetadataResponse
	if err := r.client.getJSON(ctx, "/conversation", query, &resp); err != nil {
		return nil, err
	}
	return r.mapper.MetadataListToEntities(resp), nil
}

func (r *conversationRepository) Get(ctx context.Context, conversationId string) (*entity.Conversation, error) {
	var resp dto.GetConversationResponse
	if err := r.client.getJSON(ctx, "/conversation/"+conversationId, nil, &resp); err != nil {
		return nil, err
	}
	return r.mapper.ConversationToEntity(&resp), nil
}

func (r *conversationRepository) Delete(ctx context.Context, conversationId string) error {
	return r.client.delete(ctx, "/conversation/"+conversationId)
}

func (r *conversationRepository) AddMessage(ctx context.Context, conversationId string, req *dto.AddMessageRequest) (*entity.Message, error) {
	var resp dto.MessageResponse
	if err := r.client.postJSON(ctx, "/conversation/"+conversationId+"/message", req, &resp); err != nil {
		return nil, err
	}
	return r.mapper.MessageToEntity(&resp), nil
}

func (r *conversationRepository) RequestCompletion(ctx context.Context, conversationId string, req *dto.CompletionRequest) (*entity.Message, error) {
	var resp dto.MessageResponse
	if err := r.client.postJSON(ctx, "/conversation/"+conversationId+"/completion", req, &resp); err != nil {
		return nil, err
	}
	return r.mapper.MessageToEntity(&resp), nil
}
