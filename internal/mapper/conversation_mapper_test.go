package mapper

import (
	"testing"

	"marginalia/internal/dto"
	"marginalia/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationToEntityPreservesOrder(t *testing.T) {
	m := NewConversationMapper(NewClipMapper())

	parent := "m1"
	resp := &dto.GetConversationResponse{
		ConversationMetadataResponse: dto.ConversationMetadataResponse{
			Id:                   "c1",
			Name:                 "Stoicism",
			MessageCount:         2,
			CurrentLeafMessageId: strPtr("m2"),
			CreatedAt:            "2024-01-01T00:00:00Z",
		},
		Messages: []dto.MessageResponse{
			{Id: "m1", Content: "hello", Sender: "user", CreatedAt: "2024-01-01T00:00:00Z"},
			{
				Id:        "m2",
				Content:   "hi there ```clip-1```",
				Sender:    "system",
				ParentId:  &parent,
				CreatedAt: "2024-01-01T00:00:05Z",
				Sources: []dto.ClipResponse{
					{Id: "clip-1", DocumentId: "b1", Title: "X", Authors: strPtr("A"), CreatedAt: "2024-01-01T00:00:00Z"},
				},
			},
		},
	}

	conversation := m.ConversationToEntity(resp)
	require.NotNil(t, conversation)
	require.Len(t, conversation.Messages, 2)

	assert.Equal(t, "c1", conversation.Metadata.Id)
	assert.Equal(t, "m2", *conversation.Metadata.CurrentLeafMessageId)

	first, second := conversation.Messages[0], conversation.Messages[1]
	assert.Equal(t, "m1", first.Id)
	assert.Equal(t, entity.SenderUser, first.Sender)
	assert.Nil(t, first.ParentMessageId)

	assert.Equal(t, "m2", second.Id)
	assert.Equal(t, entity.SenderSystem, second.Sender)
	require.NotNil(t, second.ParentMessageId)
	assert.Equal(t, "m1", *second.ParentMessageId)
	require.Len(t, second.Sources, 1)
	assert.Equal(t, "X", second.Sources[0].Book.Title)
}

func TestMetadataToEntityNullables(t *testing.T) {
	m := NewConversationMapper(NewClipMapper())

	metadata := m.MetadataToEntity(&dto.ConversationMetadataResponse{
		Id:        "c2",
		Name:      "",
		CreatedAt: "2024-01-01T00:00:00Z",
	})
	require.NotNil(t, metadata)

	assert.Nil(t, metadata.Summary)
	assert.Nil(t, metadata.Model)
	assert.Nil(t, metadata.CurrentLeafMessageId)
	assert.Nil(t, metadata.UpdatedAt)
	assert.Zero(t, metadata.MessageCount)
}
