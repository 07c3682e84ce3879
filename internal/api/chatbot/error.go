package chatbot

import "KeeperOfTales/pkg/response"

var (
	ErrChatNotFound       = response.NewError(404, "conversation not found")
	ErrHistoryUnavailable = response.NewError(502, "chat history unavailable")
	ErrEmptyMessage       = response.NewError(400, "message text is required")
)
