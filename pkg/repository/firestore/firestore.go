package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/guardian/github-lens/pkg/domain/interfaces"
)

// New creates a Firestore backed result repository
func New(ctx context.Context, projectID, databaseID string) (*Repository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Repository{client: client}, nil
}

var _ interfaces.ResultRepository = (*Repository)(nil)

type Repository struct {
	client *firestore.Client
}

func (r *Repository) Close() error {
	return r.client.Close()
}
