package mapper

import (
	"marginalia/internal/dto"
	"marginalia/internal/entity"
)

type ConversationMapper struct {
	clipMapper *ClipMapper
}

func NewConversationMapper(clipMapper *ClipMapper) *ConversationMapper {
	return &ConversationMapper{clipMapper: clipMapper}
}

func (m *ConversationMapper) MetadataToEntity(r *dto.ConversationMetadataResponse) *entity.ConversationMetadata {
	if r == nil {
		return nil
	}

	return &entity.ConversationMetadata{
		Id:                   r.Id,
		Name:                 r.Name,
		Summary:              r.Summary,
		Model:                r.Model,
		MessageCount:         r.MessageCount,
		CurrentLeafMessageId: r.CurrentLeafMessageId,
		CreatedAt:            parseTime(r.CreatedAt),
		UpdatedAt:            parseTimePtr(r.UpdatedAt),
	}
}

func (m *ConversationMapper) MetadataListToEntities(list []dto.ConversationMetadataResponse) []entity.ConversationMetadata {
	entities := make([]entity.ConversationMetadata, 0, len(list))
	for i := range list {
		entities = append(entities, *m.MetadataToEntity(&list[i]))
	}
	return entities
}

func (m *ConversationMapper) MessageToEntity(r *dto.MessageResponse) *entity.Message {
	if r == nil {
		return nil
	}

	return &entity.Message{
		Id:              r.Id,
		Content:         r.Content,
		Sender:          r.Sender,
		ParentMessageId: r.ParentId,
		CreatedAt:       parseTime(r.CreatedAt),
		UpdatedAt:       parseTimePtr(r.UpdatedAt),
		Sources:         m.clipMapper.ClipsToEntities(r.Sources),
	}
}

// ConversationToEntity hydrates metadata plus the transcript in one
// pass, preserving the server-assigned message order.
func (m *ConversationMapper) ConversationToEntity(r *dto.GetConversationResponse) *entity.Conversation {
	if r == nil {
		return nil
	}

	messages := make([]entity.Message, 0, len(r.Messages))
	for i := range r.Messages {
		messages = append(messages, *m.MessageToEntity(&r.Messages[i]))
	}

	return &entity.Conversation{
		Metadata: *m.MetadataToEntity(&r.ConversationMetadataResponse),
		Messages: messages,
	}
}
