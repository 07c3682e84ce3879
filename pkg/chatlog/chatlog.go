package chatlog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"KeeperOfTales/internal/entity"
)

// IChatlog talks to the chat-log collaborator that persists conversations.
// Every call carries the caller's bearer token verbatim; the collaborator
// owns session ids and hands one out on the first save of a conversation.
type IChatlog interface {
	// SaveMessage persists one turn. chatID may be empty for the first turn;
	// the returned id is the session id the collaborator knows the
	// conversation by (either echoed or freshly assigned).
	SaveMessage(ctx context.Context, token string, chatID string, msg entity.ChatMessage) (string, error)
	GetChat(ctx context.Context, token string, chatID string) (entity.StoredChat, error)
	ListChats(ctx context.Context, token string) ([]entity.StoredChat, error)
}

type chatlogClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) IChatlog {
	return &chatlogClient{
		baseURL: os.Getenv("BOOK_API_BASE_URL"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// NewWithBaseURL is used by tests to point the client at a stub backend.
func NewWithBaseURL(baseURL string, log *logrus.Logger) IChatlog {
	return &chatlogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (c *chatlogClient) SaveMessage(ctx context.Context, token string, chatID string, msg entity.ChatMessage) (string, error) {
	reqBody := saveMessageRequest{
		Sender: msg.Sender,
		Text:   msg.Text,
	}
	if chatID != "" {
		reqBody.ChatID = &chatID
	}

	payload, err := jsoniter.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req, "save_message")
	if err != nil {
		return "", err
	}

	var saved saveMessageResponse
	if err := jsoniter.Unmarshal(body, &saved); err != nil {
		return "", err
	}

	if saved.ID == "" && chatID == "" {
		return "", fmt.Errorf("chat-log response carried no session id")
	}
	if saved.ID == "" {
		return chatID, nil
	}

	return saved.ID, nil
}

func (c *chatlogClient) GetChat(ctx context.Context, token string, chatID string) (entity.StoredChat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/chat/"+chatID, nil)
	if err != nil {
		return entity.StoredChat{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req, "get_chat")
	if err != nil {
		return entity.StoredChat{}, err
	}

	var chat chatResponse
	if err := jsoniter.Unmarshal(body, &chat); err != nil {
		return entity.StoredChat{}, err
	}

	return entity.StoredChat{ID: chat.ID, Messages: chat.Messages}, nil
}

func (c *chatlogClient) ListChats(ctx context.Context, token string) ([]entity.StoredChat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/chat", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req, "list_chats")
	if err != nil {
		return nil, err
	}

	var chats []entity.StoredChat
	if err := jsoniter.Unmarshal(body, &chats); err != nil {
		return nil, err
	}

	return chats, nil
}

func (c *chatlogClient) do(req *http.Request, operation string) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"error":     err.Error(),
			"operation": operation,
		}).Warn("Chat-log request failed")
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{
			"status":    res.StatusCode,
			"operation": operation,
		}).Warn("Chat-log request returned non-2xx status")
		return nil, fmt.Errorf("chat-log request failed with status %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}
