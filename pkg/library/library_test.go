package library

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRecommendationsByGenre(t *testing.T) {
	var gotPath, gotGenre string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGenre = r.URL.Query().Get("genre")
		w.Write([]byte(`[{"title":"Neuromancer","year":1984},{"title":"Dune"}]`))
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	books, err := client.RecommendationsByGenre(context.Background(), "Science Fiction")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/chatbot/recommendations" {
		t.Errorf("path = %q, want /chatbot/recommendations", gotPath)
	}
	if gotGenre != "Science Fiction" {
		t.Errorf("genre = %q, want Science Fiction", gotGenre)
	}
	if len(books) != 2 {
		t.Fatalf("got %d books, want 2", len(books))
	}
	if books[0].Title != "Neuromancer" || books[0].Year != 1984 {
		t.Errorf("first book = %+v", books[0])
	}
	if books[1].Year != 0 {
		t.Errorf("missing year should decode to zero, got %d", books[1].Year)
	}
}

func TestSimilarBooksPreservesTitleCasing(t *testing.T) {
	var gotTitle string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chatbot/similar-books" {
			t.Errorf("path = %q, want /chatbot/similar-books", r.URL.Path)
		}
		gotTitle = r.URL.Query().Get("title")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	books, err := client.SimilarBooks(context.Background(), "The Brothers Karamazov")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTitle != "The Brothers Karamazov" {
		t.Errorf("title = %q, casing must survive the round trip", gotTitle)
	}
	if len(books) != 0 {
		t.Errorf("got %d books, want empty list", len(books))
	}
}

func TestBooksByAuthor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chatbot/author" {
			t.Errorf("path = %q, want /chatbot/author", r.URL.Path)
		}
		if author := r.URL.Query().Get("author"); author != "George Orwell" {
			t.Errorf("author = %q, want George Orwell", author)
		}
		w.Write([]byte(`[{"title":"1984","year":1949}]`))
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	books, err := client.BooksByAuthor(context.Background(), "George Orwell")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 || books[0].Title != "1984" {
		t.Fatalf("books = %+v", books)
	}
}

func TestPopularBooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/popular-books" {
			t.Errorf("path = %q, want /popular-books", r.URL.Path)
		}
		w.Write([]byte(`[{"title":"Dune","readCount":420,"wishCount":69}]`))
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	books, err := client.PopularBooks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("got %d books, want 1", len(books))
	}
	if books[0].ReadCount != 420 || books[0].WishCount != 69 {
		t.Errorf("counts = %+v", books[0])
	}
}

func TestPopularAuthorsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/popular-authors" {
			t.Errorf("path = %q, want /popular-authors", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"name":"Ursula K. Le Guin","top_work":"A Wizard of Earthsea","rating":4.5}]}`))
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	authors, err := client.PopularAuthors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(authors) != 1 {
		t.Fatalf("got %d authors, want 1", len(authors))
	}
	if authors[0].Name != "Ursula K. Le Guin" || authors[0].TopWork != "A Wizard of Earthsea" || authors[0].Rating != 4.5 {
		t.Errorf("author = %+v", authors[0])
	}
}

func TestNon2xxStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	if _, err := client.PopularBooks(context.Background()); err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}

func TestUnreachableCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewWithBaseURL(server.URL, testLogger())

	if _, err := client.SimilarBooks(context.Background(), "Dune"); err == nil {
		t.Fatal("expected an error when the catalog is unreachable")
	}
}
