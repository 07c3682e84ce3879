package library

// Book is the minimal shape every book-list endpoint returns. Year is
// optional in the catalog; zero means the catalog does not know it.
type Book struct {
	Title     string `json:"title"`
	Year      int    `json:"year,omitempty"`
	ReadCount int    `json:"readCount,omitempty"`
	WishCount int    `json:"wishCount,omitempty"`
}

// Author is one row of the popularity ranking.
type Author struct {
	Name    string  `json:"name"`
	TopWork string  `json:"top_work"`
	Rating  float64 `json:"rating"`
}

// popularAuthorsEnvelope matches the wrapped popular-authors payload.
type popularAuthorsEnvelope struct {
	Data []Author `json:"data"`
}
