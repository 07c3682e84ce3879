package chatbotService

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"KeeperOfTales/pkg/library"
	"KeeperOfTales/pkg/nlp"
	redisPkg "KeeperOfTales/pkg/redis"
)

// Clarification prompts for the intents that could not resolve a parameter.
// Prompts are replies, not errors: the conversation always continues.
const (
	promptNoTitle = "🔮 *Tell me which book you are referring to...*\n\n" +
		"Try asking for *\"Books similar to [book title]\"* or *\"Books like [book title]\"*."

	promptNoAuthor = "🔮 *The name slips through my fingers like sand...*\n\n" +
		"Speak again, and let me hear the *true name* of the author you seek."

	promptNoMatch = "📜 *The universe of books unfolds before you...*\n\nAsk for:\n\n" +
		"🌠 *\"Books that taste of stardust and sorrow\"*\n" +
		"⚔️ *\"Tales of war and whispered secrets\"*\n" +
		"🖋️ *\"The ink-stained dreams of Haruki Murakami\"*"
)

// In-character texts for catalog failures. A backend error never reaches
// the caller as an error value.
const (
	failureLibraryTrembles = "⚡ *The library trembles...*"
	failureInkBleeds       = "🌪️ *The ink bleeds, the pages flutter...*"
	failurePopularBooks    = "🚫 *I could not fetch popular books right now...*"
	failurePopularAuthors  = "🚫 *I could not fetch popular authors right now...*"
)

// Filler lines substituted for a missing publication year.
var (
	recommendationLines = []string{
		"a timeless tale", "a story for the ages", "an ageless masterpiece",
		"a classic of its kind", "a tale that never fades", "a work beyond time",
		"a story waiting to be rediscovered", "an eternal adventure",
		"a journey through time and imagination", "a narrative for the soul",
	}

	authorLines = []string{
		"an untold year", "a year yet to be written", "a chapter unwritten in time",
		"a forgotten year", "a year that never was",
	}

	similarLines = []string{
		"a timeless tale", "a story for the ages", "a classic of its kind",
		"an eternal adventure", "a journey through time and imagination",
	}
)

const (
	popularBooksCacheKey   = "chatbot:popular-books"
	popularAuthorsCacheKey = "chatbot:popular-authors"
	popularCacheTTL        = 5 * time.Minute
)

// respond turns a classified intent into the bot's reply text. Each branch
// issues at most one catalog lookup and renders a templated answer; empty
// results and failures get their own mood-appropriate lines.
func (s *chatbotService) respond(ctx context.Context, intent nlp.Intent) string {
	switch intent.Kind {
	case nlp.IntentSimilarBooks:
		return s.similarBooksReply(ctx, intent.Title)
	case nlp.IntentGeneralBooks:
		return s.popularBooksReply(ctx)
	case nlp.IntentGeneralAuthors:
		return s.popularAuthorsReply(ctx)
	case nlp.IntentAuthorSearch, nlp.IntentFallbackAuthorSearch:
		return s.authorBooksReply(ctx, intent.Author)
	case nlp.IntentGenreSearch:
		return s.recommendationsReply(ctx, intent.Genre)
	default:
		switch intent.Reason {
		case nlp.UnknownNoTitle:
			return promptNoTitle
		case nlp.UnknownNoAuthor:
			return promptNoAuthor
		default:
			return promptNoMatch
		}
	}
}

func (s *chatbotService) recommendationsReply(ctx context.Context, genre string) string {
	books, err := s.library.RecommendationsByGenre(ctx, genre)
	if err != nil {
		return failureLibraryTrembles
	}
	if len(books) == 0 {
		return fmt.Sprintf("🌑 *The %s shelf lies empty...*", genre)
	}

	list := s.bookList(books, "📖", recommendationLines)
	return fmt.Sprintf("🌠 *In the realm of %s, I found these...*\n\n%s", genre, list)
}

func (s *chatbotService) authorBooksReply(ctx context.Context, author string) string {
	books, err := s.library.BooksByAuthor(ctx, author)
	if err != nil {
		return failureInkBleeds
	}
	if len(books) == 0 {
		return fmt.Sprintf("🌫️ *The echoes of %s fade...*", author)
	}

	list := s.bookList(books, "📜", authorLines)
	return fmt.Sprintf("🖋️ *Behold, the works of %s:*\n\n%s", author, list)
}

func (s *chatbotService) similarBooksReply(ctx context.Context, title string) string {
	books, err := s.library.SimilarBooks(ctx, title)
	if err != nil {
		return failureLibraryTrembles
	}
	if len(books) == 0 {
		return fmt.Sprintf("🌑 *I couldn't find any similar books to %s...*", title)
	}

	list := s.bookList(books, "📖", similarLines)
	return fmt.Sprintf("🌠 *Here are some books similar to %s:*\n\n%s", title, list)
}

func (s *chatbotService) popularBooksReply(ctx context.Context) string {
	var books []library.Book
	if !s.fromCache(ctx, popularBooksCacheKey, &books) {
		var err error
		books, err = s.library.PopularBooks(ctx)
		if err != nil {
			return failurePopularBooks
		}
		s.toCache(ctx, popularBooksCacheKey, books)
	}

	if len(books) == 0 {
		return "📚 *The shelves of renown are momentarily bare...*"
	}

	items := make([]string, 0, len(books))
	for _, b := range books {
		items = append(items, fmt.Sprintf("📘 *%s* — ⭐ %d reads, 💖 %d wishes", b.Title, b.ReadCount, b.WishCount))
	}

	return "🔥 *These books burn bright with fame:*\n\n" + strings.Join(items, "\n")
}

func (s *chatbotService) popularAuthorsReply(ctx context.Context) string {
	var authors []library.Author
	if !s.fromCache(ctx, popularAuthorsCacheKey, &authors) {
		var err error
		authors, err = s.library.PopularAuthors(ctx)
		if err != nil {
			return failurePopularAuthors
		}
		s.toCache(ctx, popularAuthorsCacheKey, authors)
	}

	if len(authors) == 0 {
		return "🖋️ *The storytellers are hidden in shadow...*"
	}

	items := make([]string, 0, len(authors))
	for _, a := range authors {
		rating := strconv.FormatFloat(a.Rating, 'f', -1, 64)
		items = append(items, fmt.Sprintf("👤 *%s*\n📘 _Top Work:_ %s\n⭐ _Rating:_ %s/5\n", a.Name, a.TopWork, rating))
	}

	return "📖 *Here are authors the realm reveres:*\n\n" + strings.Join(items, "\n")
}

func (s *chatbotService) bookList(books []library.Book, bullet string, lines []string) string {
	items := make([]string, 0, len(books))
	for _, b := range books {
		year := strconv.Itoa(b.Year)
		if b.Year == 0 {
			year = lines[s.pick(len(lines))]
		}
		items = append(items, fmt.Sprintf("%s *%s* — %s", bullet, b.Title, year))
	}

	return strings.Join(items, "\n")
}

// fromCache and toCache keep the two unfiltered popularity lookups off the
// catalog for a few minutes. A cold or broken cache just falls through.
func (s *chatbotService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}

	raw, err := s.cache.GetCached(ctx, key)
	if err != nil {
		if !errors.Is(err, redisPkg.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
				"key":   key,
			}).Debug("Cache read failed")
		}
		return false
	}

	if err := jsoniter.UnmarshalFromString(raw, dest); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"key":   key,
		}).Debug("Cache entry unreadable")
		return false
	}

	return true
}

func (s *chatbotService) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	raw, err := jsoniter.MarshalToString(value)
	if err != nil {
		return
	}

	if err := s.cache.SetCached(ctx, key, raw, popularCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
			"key":   key,
		}).Debug("Cache write failed")
	}
}
