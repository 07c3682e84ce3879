package library

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// ILibrary is the read-only view of the book catalog this service consumes.
// The catalog itself is an external collaborator; this client only issues
// the lookups the chatbot needs.
type ILibrary interface {
	RecommendationsByGenre(ctx context.Context, genre string) ([]Book, error)
	BooksByAuthor(ctx context.Context, author string) ([]Book, error)
	SimilarBooks(ctx context.Context, title string) ([]Book, error)
	PopularBooks(ctx context.Context) ([]Book, error)
	PopularAuthors(ctx context.Context) ([]Author, error)
}

type libraryClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) ILibrary {
	baseURL := os.Getenv("BOOK_API_BASE_URL")

	return &libraryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// NewWithBaseURL is used by tests to point the client at a stub catalog.
func NewWithBaseURL(baseURL string, log *logrus.Logger) ILibrary {
	return &libraryClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (l *libraryClient) RecommendationsByGenre(ctx context.Context, genre string) ([]Book, error) {
	return l.getBooks(ctx, "/chatbot/recommendations?genre="+url.QueryEscape(genre))
}

func (l *libraryClient) BooksByAuthor(ctx context.Context, author string) ([]Book, error) {
	return l.getBooks(ctx, "/chatbot/author?author="+url.QueryEscape(author))
}

func (l *libraryClient) SimilarBooks(ctx context.Context, title string) ([]Book, error) {
	return l.getBooks(ctx, "/chatbot/similar-books?title="+url.QueryEscape(title))
}

func (l *libraryClient) PopularBooks(ctx context.Context) ([]Book, error) {
	return l.getBooks(ctx, "/popular-books")
}

func (l *libraryClient) PopularAuthors(ctx context.Context) ([]Author, error) {
	body, err := l.get(ctx, "/popular-authors")
	if err != nil {
		return nil, err
	}

	// The ranking arrives wrapped in a data envelope, unlike the book lists.
	var envelope popularAuthorsEnvelope
	if err := jsoniter.Unmarshal(body, &envelope); err != nil {
		l.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"path":  "/popular-authors",
		}).Error("Failed to decode catalog response")
		return nil, err
	}

	return envelope.Data, nil
}

func (l *libraryClient) getBooks(ctx context.Context, path string) ([]Book, error) {
	body, err := l.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var books []Book
	if err := jsoniter.Unmarshal(body, &books); err != nil {
		l.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"path":  path,
		}).Error("Failed to decode catalog response")
		return nil, err
	}

	return books, nil
}

func (l *libraryClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	res, err := l.client.Do(req)
	if err != nil {
		l.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"path":  path,
		}).Warn("Catalog request failed")
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		l.log.WithFields(logrus.Fields{
			"status": res.StatusCode,
			"path":   path,
		}).Warn("Catalog request returned non-2xx status")
		return nil, fmt.Errorf("catalog request failed with status %d", res.StatusCode)
	}

	return io.ReadAll(res.Body)
}
