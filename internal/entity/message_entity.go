package entity

import "time"

const (
	SenderUser   = "user"
	SenderSystem = "system"
)

// Message is one turn in a conversation. Messages form a chain through
// ParentMessageId; the first message of a conversation has a nil parent.
// Sources carry the clips a system answer cited, denormalized per message.
type Message struct {
	Id              string
	Content         string
	Sender          string
	ParentMessageId *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	Sources         []Clip
}

// SourceById looks a cited clip up in this message's own source list.
// Citations never resolve against another message's sources.
func (m Message) SourceById(id string) (Clip, bool) {
	for _, clip := range m.Sources {
		if clip.Id == id {
			return clip, true
		}
	}
	return Clip{}, false
}
