package chatbotHandler

import (
	"KeeperOfTales/internal/api/chatbot"
	"KeeperOfTales/internal/entity"
	contextPkg "KeeperOfTales/pkg/context"
	"KeeperOfTales/pkg/handlerUtil"
	jwtPkg "KeeperOfTales/pkg/jwt"
	"KeeperOfTales/pkg/log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/net/context"
)

const accessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"

func (h *ChatbotHandler) SubmitMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chatbot message")

	var req chatbot.SubmitMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if strings.TrimSpace(req.Text) == "" {
		return errHandler.Handle(ctx, requestID, chatbot.ErrEmptyMessage, ctx.Path(), "submit_message")
	}

	conversation, err := h.chatbotService.Submit(c, h.authContext(ctx), req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, conversation)
	}
}

func (h *ChatbotHandler) NewConversation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Starting new conversation")

	conversation := h.chatbotService.StartNew(h.authContext(ctx))
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, conversation)
}

func (h *ChatbotHandler) GetTranscript(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	conversation := h.chatbotService.Transcript(h.authContext(ctx))
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, conversation)
}

func (h *ChatbotHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat history request")

	if _, err := jwtPkg.GetUserLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	result, err := h.chatbotService.History(c, h.authContext(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatbotHandler) LoadConversation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing load conversation request")

	if _, err := jwtPkg.GetUserLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	chatID := ctx.Params("id")
	if chatID == "" {
		return errHandler.Handle(ctx, requestID, chatbot.ErrChatNotFound, ctx.Path(), "load_conversation")
	}

	conversation, err := h.chatbotService.LoadChat(c, h.authContext(ctx), chatID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "load_conversation")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, conversation)
	}
}

// authContext resolves who the active conversation belongs to. Anonymous
// callers are keyed by client IP; a valid bearer token keys by user id and
// travels with the request so the chat-log collaborator can scope saves.
func (h *ChatbotHandler) authContext(ctx *fiber.Ctx) entity.AuthContext {
	auth := entity.AuthContext{SessionKey: "anon:" + ctx.IP()}

	header := ctx.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		auth.Token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	if user, err := jwtPkg.GetUserLoginData(ctx); err == nil {
		auth.SessionKey = user.ID
		return auth
	}

	// Routes without the token middleware still honor a valid token.
	if auth.Token != "" {
		if token, err := jwtPkg.VerifyTokenHeader(ctx, accessTokenSecret); err == nil {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if id, ok := claims["id"].(string); ok && id != "" {
					auth.SessionKey = id
				}
			}
		}
	}

	return auth
}
