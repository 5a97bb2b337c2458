package client

import (
	"context"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/httperr"
)

type DeleteClient struct {
	repo domain.Repository
}

func NewDeleteClient(repo domain.Repository) *DeleteClient {
	return &DeleteClient{repo: repo}
}

// Execute does not open a transaction of its own; the existence check and
// the delete are two independent statements.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	id uint,
) error {

	ok, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrClientNotFound
	}

	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}
