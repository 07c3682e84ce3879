package chatbotRepository

const (
	queryGetGenres = `
		SELECT name
		FROM genres
		ORDER BY position, name
	`

	queryGetAuthors = `
		SELECT name
		FROM authors
		ORDER BY position, name
	`
)
