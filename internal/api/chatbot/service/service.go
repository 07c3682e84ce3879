package chatbotService

import (
	"context"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"KeeperOfTales/internal/api/chatbot"
	"KeeperOfTales/internal/entity"
	"KeeperOfTales/pkg/chatlog"
	"KeeperOfTales/pkg/library"
	"KeeperOfTales/pkg/nlp"
	redisPkg "KeeperOfTales/pkg/redis"
)

type IChatbotService interface {
	Submit(ctx context.Context, auth entity.AuthContext, text string) (chatbot.ConversationResponse, error)
	StartNew(auth entity.AuthContext) chatbot.ConversationResponse
	Transcript(auth entity.AuthContext) chatbot.ConversationResponse
	History(ctx context.Context, auth entity.AuthContext) (chatbot.ChatListResponse, error)
	LoadChat(ctx context.Context, auth entity.AuthContext, chatID string) (chatbot.ConversationResponse, error)
}

// Picker selects an index in [0, n); injected so tests can pin the filler
// lines the reply templates fall back to.
type Picker func(n int) int

type chatbotService struct {
	log     *logrus.Logger
	refs    nlp.ReferenceSets
	library library.ILibrary
	chatlog chatlog.IChatlog
	cache   redisPkg.IRedis
	pick    Picker

	mu       sync.Mutex
	sessions map[string]*chatSession
}

func NewChatbotService(
	log *logrus.Logger,
	refs nlp.ReferenceSets,
	libraryClient library.ILibrary,
	chatlogClient chatlog.IChatlog,
	cache redisPkg.IRedis,
	pick Picker,
) IChatbotService {
	if pick == nil {
		pick = rand.Intn
	}

	return &chatbotService{
		log:      log,
		refs:     refs,
		library:  libraryClient,
		chatlog:  chatlogClient,
		cache:    cache,
		pick:     pick,
		sessions: make(map[string]*chatSession),
	}
}
