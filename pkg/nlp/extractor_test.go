package nlp

import "testing"

func TestFindAuthorFullName(t *testing.T) {
	authors := []string{"George Orwell", "Haruki Murakami"}

	author, ok := FindAuthor("books by george orwell please", authors)
	if !ok {
		t.Fatal("expected a match for a full lower-cased name")
	}
	if author != "George Orwell" {
		t.Fatalf("got %q, want George Orwell", author)
	}
}

func TestFindAuthorFirstMatchWins(t *testing.T) {
	// Both full names are substrings of the query; the reference-set order
	// decides, not the position in the query.
	authors := []string{"Mary Shelley", "Bram Stoker"}

	author, ok := FindAuthor("was bram stoker influenced by mary shelley?", authors)
	if !ok {
		t.Fatal("expected a match")
	}
	if author != "Mary Shelley" {
		t.Fatalf("got %q, want the earlier reference-set entry Mary Shelley", author)
	}
}

func TestFindAuthorTokenPass(t *testing.T) {
	authors := []string{"Fyodor Dostoyevsky", "Leo Tolstoy"}

	// No full name present; "tolstoy" (>= 4 chars) should match in pass 2.
	author, ok := FindAuthor("anything by tolstoy?", authors)
	if !ok {
		t.Fatal("expected a token match")
	}
	if author != "Leo Tolstoy" {
		t.Fatalf("got %q, want Leo Tolstoy", author)
	}
}

func TestFindAuthorShortTokenIgnored(t *testing.T) {
	authors := []string{"Marie Lu"}

	// "Lu" is under the four-character threshold, so "lunar" must not match.
	if author, ok := FindAuthor("lunar chronicles", authors); ok {
		t.Fatalf("short token matched author %q, want no match", author)
	}
}

func TestFindAuthorNoMatch(t *testing.T) {
	if author, ok := FindAuthor("what should i read next", seedAuthors); ok {
		t.Fatalf("unexpected match %q", author)
	}
}

func TestFindGenre(t *testing.T) {
	genres := []string{"Science Fiction", "Fantasy"}

	genre, ok := FindGenre("any good science fiction out there?", genres)
	if !ok {
		t.Fatal("expected a genre match")
	}
	if genre != "Science Fiction" {
		t.Fatalf("got %q, want canonical casing Science Fiction", genre)
	}

	if _, ok := FindGenre("something to read on the train", genres); ok {
		t.Fatal("expected no genre match")
	}
}

func TestExtractSimilarTitle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		title string
		ok    bool
	}{
		{"similar to", "books similar to Dune", "Dune", true},
		{"like", "anything like The Hobbit", "The Hobbit", true},
		{"related to", "stories related to  Foundation ", "Foundation", true},
		{"closest to", "what is closest to Hyperion", "Hyperion", true},
		{"case-insensitive cue", "books SIMILAR TO Dune", "Dune", true},
		{"no cue", "recommend a thriller", "", false},
		{"cue without title", "show me something similar to", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := ExtractSimilarTitle(tt.query)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if title != tt.title {
				t.Fatalf("title = %q, want %q", title, tt.title)
			}
		})
	}
}

func TestExtractSimilarTitlePreservesCasing(t *testing.T) {
	title, ok := ExtractSimilarTitle("books similar to The Brothers Karamazov")
	if !ok {
		t.Fatal("expected a title")
	}
	if title != "The Brothers Karamazov" {
		t.Fatalf("got %q, casing must be preserved", title)
	}
}
