package chatbotRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Repository reads the canonical genre and author names from the catalog
// replica. Both lists are loaded once at startup and treated as immutable
// afterwards.
type Repository interface {
	GetGenres(ctx context.Context) ([]string, error)
	GetAuthors(ctx context.Context) ([]string, error)
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}
