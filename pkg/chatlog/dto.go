package chatlog

import "KeeperOfTales/internal/entity"

// saveMessageRequest is the wire form of one persisted turn. ChatID is null
// for the first message of a conversation; the collaborator answers with the
// id it assigned.
type saveMessageRequest struct {
	Sender string  `json:"sender"`
	Text   string  `json:"text"`
	ChatID *string `json:"chatId"`
}

type saveMessageResponse struct {
	ID string `json:"_id"`
}

type chatResponse struct {
	ID       string               `json:"_id"`
	Messages []entity.ChatMessage `json:"messages"`
}
