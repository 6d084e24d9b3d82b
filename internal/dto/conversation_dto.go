package dto

// Wire shapes for the conversation resource. Timestamps travel as
// nullable ISO 8601 strings; parsing happens in the mapper layer.

type ConversationMetadataResponse struct {
	Id                   string  `json:"id"`
	Name                 string  `json:"name"`
	Summary              *string `json:"summary"`
	Model                *string `json:"model"`
	MessageCount         int     `json:"message_count"`
	CurrentLeafMessageId *string `json:"current_leaf_message_id"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            *string `json:"updated_at"`
}

type GetConversationResponse struct {
	ConversationMetadataResponse
	Messages []MessageResponse `json:"messages"`
}

type MessageResponse struct {
	Id        string         `json:"id"`
	Content   string         `json:"content"`
	Sender    string         `json:"sender"`
	ParentId  *string        `json:"parent_id"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt *string        `json:"updated_at"`
	Sources   []ClipResponse `json:"sources"`
}

type AddMessageRequest struct {
	Content         string  `json:"content" validate:"required"`
	Sender          string  `json:"sender" validate:"required,oneof=user system"`
	ParentMessageId *string `json:"parent_message_id"`
}

type CompletionRequest struct {
	Query           string  `json:"query" validate:"required"`
	ParentMessageId *string `json:"parent_message_id"`
}
