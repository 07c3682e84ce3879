package chatbotRepository

import (
	contextPkg "KeeperOfTales/pkg/context"
	"context"

	"github.com/sirupsen/logrus"
)

func (r *repository) GetGenres(ctx context.Context) ([]string, error) {
	return r.selectNames(ctx, queryGetGenres, "GetGenres")
}

func (r *repository) GetAuthors(ctx context.Context) ([]string, error) {
	return r.selectNames(ctx, queryGetAuthors, "GetAuthors")
}

func (r *repository) selectNames(ctx context.Context, query string, operation string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var names []string
	if err := r.DB.SelectContext(ctx, &names, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"operation":  operation,
		}).Error("Database error when loading reference names")
		return nil, err
	}

	return names, nil
}
