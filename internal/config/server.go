package config

import (
	"KeeperOfTales/database/postgres"
	chatbotHandler "KeeperOfTales/internal/api/chatbot/handler"
	chatbotRepository "KeeperOfTales/internal/api/chatbot/repository"
	chatbotService "KeeperOfTales/internal/api/chatbot/service"
	"KeeperOfTales/internal/middleware"
	"KeeperOfTales/pkg/chatlog"
	"KeeperOfTales/pkg/library"
	"KeeperOfTales/pkg/nlp"
	"KeeperOfTales/pkg/redis"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	handlers      []handler
	redisServer   redis.IRedis
	libraryClient library.ILibrary
	chatlogClient chatlog.IChatlog
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to the catalog replica that seeds the reference
// sets. Unlike the other options it does not fail the boot: the chatbot
// falls back to its bundled sets when the replica is unreachable.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Reference database unavailable, using bundled sets: %v", err)
			}
			return nil
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithLibraryClient(client library.ILibrary) ServerOption {
	return func(s *Server) error {
		s.libraryClient = client
		return nil
	}
}

func WithChatlogClient(client chatlog.IChatlog) ServerOption {
	return func(s *Server) error {
		s.chatlogClient = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chatbot domain
	refs := s.loadReferenceSets()
	chatbotServices := chatbotService.NewChatbotService(s.log, refs, s.libraryClient, s.chatlogClient, s.redisServer, nil)
	chatbotHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatbotServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatbotHandlers)
}

// loadReferenceSets prefers the catalog replica and falls back to the
// bundled lists, so the rule engine always has something to match against.
func (s *Server) loadReferenceSets() nlp.ReferenceSets {
	refs := nlp.DefaultReferenceSets()

	if s.db == nil {
		return refs
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := chatbotRepository.New(s.db, s.log)

	genres, err := repo.GetGenres(ctx)
	if err == nil && len(genres) > 0 {
		refs.Genres = genres
	}

	authors, err := repo.GetAuthors(ctx)
	if err == nil && len(authors) > 0 {
		refs.Authors = authors
	}

	s.log.WithFields(logrus.Fields{
		"genres":  len(refs.Genres),
		"authors": len(refs.Authors),
	}).Info("Reference sets loaded")

	return refs
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
