package chatbotService

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"KeeperOfTales/pkg/library"
	"KeeperOfTales/pkg/nlp"
)

func newResponder(lib *fakeLibrary, pick Picker) *chatbotService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	svc := NewChatbotService(log, nlp.DefaultReferenceSets(), lib, &fakeChatlog{}, nil, pick)
	return svc.(*chatbotService)
}

func TestGenreReply(t *testing.T) {
	lib := &fakeLibrary{byGenre: []library.Book{
		{Title: "Dracula", Year: 1897},
		{Title: "The Haunting of Hill House", Year: 1959},
	}}
	s := newResponder(lib, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGenreSearch, Genre: "Horror"})
	want := "🌠 *In the realm of Horror, I found these...*\n\n" +
		"📖 *Dracula* — 1897\n" +
		"📖 *The Haunting of Hill House* — 1959"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestGenreReplyEmptyShelf(t *testing.T) {
	s := newResponder(&fakeLibrary{}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGenreSearch, Genre: "Erotica"})
	if got != "🌑 *The Erotica shelf lies empty...*" {
		t.Errorf("reply = %q", got)
	}
}

func TestGenreReplyCatalogFailure(t *testing.T) {
	s := newResponder(&fakeLibrary{err: errors.New("boom")}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGenreSearch, Genre: "Horror"})
	if got != failureLibraryTrembles {
		t.Errorf("reply = %q, want the trembling-library line", got)
	}
}

func TestMissingYearUsesPinnedFillerLine(t *testing.T) {
	lib := &fakeLibrary{byGenre: []library.Book{{Title: "Beowulf"}}}
	s := newResponder(lib, func(n int) int { return 2 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGenreSearch, Genre: "Fantasy"})
	want := "🌠 *In the realm of Fantasy, I found these...*\n\n" +
		"📖 *Beowulf* — " + recommendationLines[2]
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestAuthorReply(t *testing.T) {
	lib := &fakeLibrary{byAuthor: []library.Book{{Title: "1984", Year: 1949}}}
	s := newResponder(lib, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentAuthorSearch, Author: "George Orwell"})
	want := "🖋️ *Behold, the works of George Orwell:*\n\n📜 *1984* — 1949"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
	if lib.gotAuthor != "George Orwell" {
		t.Errorf("catalog queried with %q", lib.gotAuthor)
	}
}

func TestAuthorReplyNoWorks(t *testing.T) {
	s := newResponder(&fakeLibrary{}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentFallbackAuthorSearch, Author: "Paul Auster"})
	if got != "🌫️ *The echoes of Paul Auster fade...*" {
		t.Errorf("reply = %q", got)
	}
}

func TestAuthorReplyCatalogFailure(t *testing.T) {
	s := newResponder(&fakeLibrary{err: errors.New("boom")}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentAuthorSearch, Author: "George Orwell"})
	if got != failureInkBleeds {
		t.Errorf("reply = %q, want the bleeding-ink line", got)
	}
}

func TestSimilarReplyKeepsTitleCasing(t *testing.T) {
	lib := &fakeLibrary{similar: []library.Book{{Title: "Hyperion", Year: 1989}}}
	s := newResponder(lib, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentSimilarBooks, Title: "Dune"})
	want := "🌠 *Here are some books similar to Dune:*\n\n📖 *Hyperion* — 1989"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
	if lib.gotTitle != "Dune" {
		t.Errorf("catalog queried with title %q, want Dune", lib.gotTitle)
	}
}

func TestSimilarReplyNothingFound(t *testing.T) {
	s := newResponder(&fakeLibrary{}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentSimilarBooks, Title: "Dune"})
	if got != "🌑 *I couldn't find any similar books to Dune...*" {
		t.Errorf("reply = %q", got)
	}
}

func TestPopularBooksReply(t *testing.T) {
	lib := &fakeLibrary{popularBooks: []library.Book{
		{Title: "Dune", ReadCount: 420, WishCount: 69},
		{Title: "1984", ReadCount: 300, WishCount: 50},
	}}
	s := newResponder(lib, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGeneralBooks})
	want := "🔥 *These books burn bright with fame:*\n\n" +
		"📘 *Dune* — ⭐ 420 reads, 💖 69 wishes\n" +
		"📘 *1984* — ⭐ 300 reads, 💖 50 wishes"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestPopularBooksReplyBareShelves(t *testing.T) {
	s := newResponder(&fakeLibrary{popularBooks: []library.Book{}}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGeneralBooks})
	if got != "📚 *The shelves of renown are momentarily bare...*" {
		t.Errorf("reply = %q", got)
	}
}

func TestPopularBooksReplyFailure(t *testing.T) {
	s := newResponder(&fakeLibrary{err: errors.New("boom")}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGeneralBooks})
	if got != failurePopularBooks {
		t.Errorf("reply = %q", got)
	}
}

func TestPopularAuthorsReply(t *testing.T) {
	lib := &fakeLibrary{popularAuthors: []library.Author{
		{Name: "Ursula K. Le Guin", TopWork: "A Wizard of Earthsea", Rating: 4.5},
	}}
	s := newResponder(lib, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGeneralAuthors})
	want := "📖 *Here are authors the realm reveres:*\n\n" +
		"👤 *Ursula K. Le Guin*\n📘 _Top Work:_ A Wizard of Earthsea\n⭐ _Rating:_ 4.5/5\n"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestPopularAuthorsReplyHiddenInShadow(t *testing.T) {
	s := newResponder(&fakeLibrary{popularAuthors: []library.Author{}}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGeneralAuthors})
	if got != "🖋️ *The storytellers are hidden in shadow...*" {
		t.Errorf("reply = %q", got)
	}
}

func TestPopularAuthorsReplyFailure(t *testing.T) {
	s := newResponder(&fakeLibrary{err: errors.New("boom")}, func(n int) int { return 0 })

	got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentGeneralAuthors})
	if got != failurePopularAuthors {
		t.Errorf("reply = %q", got)
	}
}

func TestUnknownPrompts(t *testing.T) {
	s := newResponder(&fakeLibrary{}, func(n int) int { return 0 })

	tests := []struct {
		reason nlp.UnknownReason
		want   string
	}{
		{nlp.UnknownNoTitle, promptNoTitle},
		{nlp.UnknownNoAuthor, promptNoAuthor},
		{nlp.UnknownNoMatch, promptNoMatch},
	}

	for _, tt := range tests {
		got := s.respond(context.Background(), nlp.Intent{Kind: nlp.IntentUnknown, Reason: tt.reason})
		if got != tt.want {
			t.Errorf("reason %v: reply = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
