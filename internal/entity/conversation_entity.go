package entity

import "time"

// ConversationMetadata describes a conversation without its messages.
type ConversationMetadata struct {
	Id                   string
	Name                 string
	Summary              *string
	Model                *string
	MessageCount         int
	CurrentLeafMessageId *string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// Conversation is the hydrated view: metadata plus the transcript in
// server-assigned order (root to current leaf).
type Conversation struct {
	Metadata ConversationMetadata
	Messages []Message
}
