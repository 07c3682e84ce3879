package entity

import "time"

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one turn of a conversation. Immutable once appended.
// Formatted marks text meant for rich rendering; bot replies always set it.
type ChatMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Formatted bool   `json:"formatted"`
}

// ChatSession is the in-memory transcript of the active conversation.
// ID stays empty until the chat-log collaborator assigns one on the first
// successful save.
type ChatSession struct {
	ID       string
	Messages []ChatMessage
}

// StoredChat is a conversation as the chat-log collaborator returns it.
type StoredChat struct {
	ID        string        `json:"_id"`
	CreatedAt time.Time     `json:"createdAt"`
	Messages  []ChatMessage `json:"messages"`
}
