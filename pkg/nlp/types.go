package nlp

type IntentKind string

const (
	IntentSimilarBooks         IntentKind = "similar_books"
	IntentGeneralBooks         IntentKind = "general_books"
	IntentGeneralAuthors       IntentKind = "general_authors"
	IntentAuthorSearch         IntentKind = "author_search"
	IntentGenreSearch          IntentKind = "genre_search"
	IntentFallbackAuthorSearch IntentKind = "fallback_author_search"
	IntentUnknown              IntentKind = "unknown"
)

// UnknownReason tells the caller which rule gave up, so the reply layer can
// ask the right clarifying question.
type UnknownReason string

const (
	UnknownNoTitle  UnknownReason = "no_title"
	UnknownNoAuthor UnknownReason = "no_author"
	UnknownNoMatch  UnknownReason = "no_match"
)

// Intent is the classified purpose of one user utterance. At most one of
// Genre, Author or Title is set, depending on Kind.
type Intent struct {
	Kind   IntentKind
	Genre  string
	Author string
	Title  string
	Reason UnknownReason
}

// ReferenceSets holds the canonical genre and author names the extractor
// matches against. Order matters: the first entry contained in the query
// wins. Never mutated after startup.
type ReferenceSets struct {
	Genres  []string
	Authors []string
}
