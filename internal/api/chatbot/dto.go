package chatbot

import "time"

type SubmitMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=512"`
}

type MessageResponse struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Formatted bool   `json:"formatted"`
}

// ConversationResponse carries the whole transcript back after every turn;
// the client renders it in stored order. ChatID is empty until the chat-log
// collaborator has assigned one.
type ConversationResponse struct {
	ChatID   string            `json:"chat_id,omitempty"`
	Messages []MessageResponse `json:"messages"`
}

type ChatSummaryResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Snippet   string    `json:"snippet"`
}

type ChatListResponse struct {
	Chats []ChatSummaryResponse `json:"chats"`
}
