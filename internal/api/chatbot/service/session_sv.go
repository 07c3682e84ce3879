package chatbotService

import (
	"sync"

	"KeeperOfTales/internal/api/chatbot"
	"KeeperOfTales/internal/entity"
)

const welcomeText = "🌌 *Welcome, wayfarer of words.*\n\n" +
	"I am the *Keeper of Tales*, a guide through the labyrinth of literature.\n\n" +
	"Ask, and I shall reveal:\n\n" +
	"✨ *Books that dance with the stars*\n" +
	"🔥 *Stories that burn like embers*\n" +
	"🌙 *Verses that whisper in the dark*\n\n" +
	"What calls to your soul today?"

// chatSession owns one caller's active conversation. The lock is held for
// a whole turn, so submissions for the same caller are processed one at a
// time; messages are append-only and the id is set at most once per
// conversation, by the first successful save.
type chatSession struct {
	mu       sync.Mutex
	id       string
	messages []entity.ChatMessage
}

func newChatSession() *chatSession {
	return &chatSession{
		messages: []entity.ChatMessage{welcomeMessage()},
	}
}

func welcomeMessage() entity.ChatMessage {
	return entity.ChatMessage{
		Sender:    entity.SenderBot,
		Text:      welcomeText,
		Formatted: true,
	}
}

// session returns the caller's active session, creating one with the
// welcome message on first use.
func (s *chatbotService) session(key string) *chatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[key]; ok {
		return sess
	}

	sess := newChatSession()
	s.sessions[key] = sess
	return sess
}

// reset discards the transcript and starts over: welcome message back,
// session id cleared so the next save creates a fresh conversation.
func (sess *chatSession) reset() {
	sess.id = ""
	sess.messages = []entity.ChatMessage{welcomeMessage()}
}

// replace swaps in a stored conversation wholesale. The stored order is
// trusted as-is; no reordering or deduplication.
func (sess *chatSession) replace(chatID string, messages []entity.ChatMessage) {
	sess.id = chatID
	sess.messages = make([]entity.ChatMessage, len(messages))
	copy(sess.messages, messages)
}

func (sess *chatSession) append(msg entity.ChatMessage) {
	sess.messages = append(sess.messages, msg)
}

// snapshot renders the transcript for the client. Copies, so the caller
// can never mutate session state through the response.
func (sess *chatSession) snapshot() chatbot.ConversationResponse {
	messages := make([]chatbot.MessageResponse, 0, len(sess.messages))
	for _, msg := range sess.messages {
		messages = append(messages, chatbot.MessageResponse{
			Sender:    msg.Sender,
			Text:      msg.Text,
			Formatted: msg.Formatted,
		})
	}

	return chatbot.ConversationResponse{
		ChatID:   sess.id,
		Messages: messages,
	}
}
