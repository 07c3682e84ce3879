package chatbotHandler

import (
	chatbotService "KeeperOfTales/internal/api/chatbot/service"
	"KeeperOfTales/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	chatbotService chatbotService.IChatbotService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.IChatbotService,
) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		chatbotService: cs,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	chatbot := srv.Group("/chatbot")

	// Conversation endpoints work with or without a token; the bearer token,
	// when present, is forwarded to the chat-log collaborator.
	chatbot.Post("/message", h.middleware.NewRateLimiter, h.SubmitMessage)
	chatbot.Post("/new", h.NewConversation)
	chatbot.Get("/messages", h.GetTranscript)

	// History endpoints require auth (the collaborator scopes chats by user)
	chatbot.Get("/history", h.middleware.NewTokenMiddleware, h.GetHistory)
	chatbot.Get("/history/:id", h.middleware.NewTokenMiddleware, h.LoadConversation)
}
