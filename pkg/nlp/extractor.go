package nlp

import (
	"regexp"
	"strings"
)

var similarTitlePattern = regexp.MustCompile(`(?i)(similar to|like|related to|closest to) (.*)`)

// FindAuthor matches a known author against the query in two passes.
//
// Pass 1 looks for the full lower-cased author name as a substring. Pass 2
// splits each name into whitespace parts and matches any part of at least
// four characters. The first author to match wins in both passes, so a
// common surname can resolve to the wrong author; recall is deliberately
// favoured over precision and both passes are reported identically.
func FindAuthor(query string, authors []string) (string, bool) {
	q := strings.ToLower(query)

	for _, author := range authors {
		if strings.Contains(q, strings.ToLower(author)) {
			return author, true
		}
	}

	for _, author := range authors {
		for _, part := range strings.Fields(author) {
			if len(part) >= 4 && strings.Contains(q, strings.ToLower(part)) {
				return author, true
			}
		}
	}

	return "", false
}

// FindGenre returns the first genre whose lower-cased name is contained in
// the query.
func FindGenre(query string, genres []string) (string, bool) {
	q := strings.ToLower(query)

	for _, genre := range genres {
		if strings.Contains(q, strings.ToLower(genre)) {
			return genre, true
		}
	}

	return "", false
}

// ExtractSimilarTitle pulls the book title out of a similarity phrase such
// as "books similar to Dune" or "something like The Hobbit". Matching is
// case-insensitive but runs against the raw text, so the returned title
// keeps the casing the user typed.
func ExtractSimilarTitle(query string) (string, bool) {
	match := similarTitlePattern.FindStringSubmatch(query)
	if match == nil {
		return "", false
	}

	title := strings.TrimSpace(match[2])
	if title == "" {
		return "", false
	}

	return title, true
}
