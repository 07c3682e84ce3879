package nlp

import "strings"

// The classifier is an ordered chain of exclusive rules; the first rule
// whose predicate holds produces the intent. The order resolves overlaps
// deliberately: "recommend a book similar to Dune" is a similarity request,
// not a general recommendation, because the similarity rule sits first.
type rule struct {
	name    string
	when    func(q string) bool
	produce func(raw, q string, refs ReferenceSets) Intent
}

var rules = []rule{
	{
		name: "similar_books",
		when: isSimilarRequest,
		produce: func(raw, q string, refs ReferenceSets) Intent {
			if title, ok := ExtractSimilarTitle(raw); ok {
				return Intent{Kind: IntentSimilarBooks, Title: title}
			}
			return Intent{Kind: IntentUnknown, Reason: UnknownNoTitle}
		},
	},
	{
		name: "general_books",
		when: isGeneralBookRequest,
		produce: func(raw, q string, refs ReferenceSets) Intent {
			return Intent{Kind: IntentGeneralBooks}
		},
	},
	{
		name: "general_authors",
		when: isGeneralAuthorRequest,
		produce: func(raw, q string, refs ReferenceSets) Intent {
			return Intent{Kind: IntentGeneralAuthors}
		},
	},
	{
		name: "author_search",
		when: isAuthorSearch,
		produce: func(raw, q string, refs ReferenceSets) Intent {
			if author, ok := FindAuthor(q, refs.Authors); ok {
				return Intent{Kind: IntentAuthorSearch, Author: author}
			}
			return Intent{Kind: IntentUnknown, Reason: UnknownNoAuthor}
		},
	},
	{
		name: "genre_search",
		when: func(q string) bool { return true },
		produce: func(raw, q string, refs ReferenceSets) Intent {
			if genre, ok := FindGenre(q, refs.Genres); ok {
				return Intent{Kind: IntentGenreSearch, Genre: genre}
			}
			// Last resort: an author name mentioned without any search
			// keyword still counts as an author lookup.
			if author, ok := FindAuthor(q, refs.Authors); ok {
				return Intent{Kind: IntentFallbackAuthorSearch, Author: author}
			}
			return Intent{Kind: IntentUnknown, Reason: UnknownNoMatch}
		},
	},
}

// Classify decides exactly one intent for a user utterance. All containment
// signals are evaluated on the lower-cased text; raw text is kept only for
// title extraction so the outgoing lookup preserves the user's casing.
func Classify(raw string, refs ReferenceSets) Intent {
	q := strings.ToLower(raw)

	for _, r := range rules {
		if r.when(q) {
			return r.produce(raw, q, refs)
		}
	}

	return Intent{Kind: IntentUnknown, Reason: UnknownNoMatch}
}

func isAuthorSearch(q string) bool {
	return strings.Contains(q, "books by") ||
		strings.Contains(q, "author") ||
		strings.Contains(q, "written by")
}

func isSimilarRequest(q string) bool {
	return strings.Contains(q, "similar") ||
		strings.Contains(q, "like") ||
		strings.Contains(q, "related") ||
		strings.Contains(q, "closest")
}

func isGeneralBookRequest(q string) bool {
	return (strings.Contains(q, "recommend") && strings.Contains(q, "book")) ||
		(strings.Contains(q, "suggest") && strings.Contains(q, "book")) ||
		(strings.Contains(q, "popular") && strings.Contains(q, "book"))
}

func isGeneralAuthorRequest(q string) bool {
	return (strings.Contains(q, "recommend") && strings.Contains(q, "author")) ||
		(strings.Contains(q, "suggest") && strings.Contains(q, "author")) ||
		(strings.Contains(q, "popular") && strings.Contains(q, "author"))
}
