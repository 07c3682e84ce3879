package chatbotService

import (
	"context"

	"github.com/sirupsen/logrus"

	"KeeperOfTales/internal/api/chatbot"
	"KeeperOfTales/internal/entity"
	contextPkg "KeeperOfTales/pkg/context"
	"KeeperOfTales/pkg/nlp"
)

const snippetLength = 60

// Submit runs one full conversation turn: append and persist the user's
// message, classify it, synthesize the reply, append and persist that too.
// Persistence is best effort — a failed save is logged and dropped, and the
// bot's turn is still saved even when the user's turn was not.
func (s *chatbotService) Submit(ctx context.Context, auth entity.AuthContext, text string) (chatbot.ConversationResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	sess := s.session(auth.SessionKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	userMsg := entity.ChatMessage{
		Sender:    entity.SenderUser,
		Text:      text,
		Formatted: false,
	}
	sess.append(userMsg)
	s.persist(ctx, auth, sess, userMsg)

	intent := nlp.Classify(text, s.refs)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     intent.Kind,
	}).Info("Classified user query")

	reply := s.respond(ctx, intent)

	botMsg := entity.ChatMessage{
		Sender:    entity.SenderBot,
		Text:      reply,
		Formatted: true,
	}
	sess.append(botMsg)
	s.persist(ctx, auth, sess, botMsg)

	return sess.snapshot(), nil
}

// persist sends one turn to the chat-log collaborator. The id returned by
// the first successful save becomes the session id for every later save in
// this conversation.
func (s *chatbotService) persist(ctx context.Context, auth entity.AuthContext, sess *chatSession, msg entity.ChatMessage) {
	requestID := contextPkg.GetRequestID(ctx)

	assignedID, err := s.chatlog.SaveMessage(ctx, auth.Token, sess.id, msg)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"sender":     msg.Sender,
		}).Warn("Failed to persist chat message")
		return
	}

	if sess.id == "" && assignedID != "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"chat_id":    assignedID,
		}).Debug("Chat session created")
		sess.id = assignedID
	}
}

func (s *chatbotService) StartNew(auth entity.AuthContext) chatbot.ConversationResponse {
	sess := s.session(auth.SessionKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.reset()
	return sess.snapshot()
}

func (s *chatbotService) Transcript(auth entity.AuthContext) chatbot.ConversationResponse {
	sess := s.session(auth.SessionKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.snapshot()
}

func (s *chatbotService) History(ctx context.Context, auth entity.AuthContext) (chatbot.ChatListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	chats, err := s.chatlog.ListChats(ctx, auth.Token)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to list stored conversations")
		return chatbot.ChatListResponse{}, chatbot.ErrHistoryUnavailable
	}

	summaries := make([]chatbot.ChatSummaryResponse, 0, len(chats))
	for _, chat := range chats {
		summaries = append(summaries, chatbot.ChatSummaryResponse{
			ID:        chat.ID,
			CreatedAt: chat.CreatedAt,
			Snippet:   snippet(chat.Messages),
		})
	}

	return chatbot.ChatListResponse{Chats: summaries}, nil
}

// LoadChat replaces the caller's active conversation with a stored one.
// The stored message order is kept exactly as returned.
func (s *chatbotService) LoadChat(ctx context.Context, auth entity.AuthContext, chatID string) (chatbot.ConversationResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	stored, err := s.chatlog.GetChat(ctx, auth.Token, chatID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"chat_id":    chatID,
		}).Warn("Failed to load stored conversation")
		return chatbot.ConversationResponse{}, chatbot.ErrChatNotFound
	}

	sess := s.session(auth.SessionKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.replace(chatID, stored.Messages)
	return sess.snapshot(), nil
}

func snippet(messages []entity.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}

	text := []rune(messages[0].Text)
	if len(text) <= snippetLength {
		return string(text)
	}

	return string(text[:snippetLength]) + "..."
}
