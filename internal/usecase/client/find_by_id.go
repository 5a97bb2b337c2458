package client

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clients-api/internal/domain/client"
	"github.com/BruksfildServices01/clients-api/internal/dto"
	"github.com/BruksfildServices01/clients-api/internal/httperr"
	"github.com/BruksfildServices01/clients-api/internal/models"
)

type FindClientByID struct {
	repo domain.Repository
}

func NewFindClientByID(repo domain.Repository) *FindClientByID {
	return &FindClientByID{repo: repo}
}

func (uc *FindClientByID) Execute(
	ctx context.Context,
	id uint,
) (*dto.ClientDTO, error) {

	var c *models.Client
	err := uc.repo.Transaction(ctx, true, func(repo domain.Repository) error {
		var err error
		c, err = repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, translate(err)
	}

	out := dto.ToClientDTO(c)
	return &out, nil
}

// translate turns raw storage signals into business errors. Anything else
// is returned as is and ends up as a 500.
func translate(err error) error {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return httperr.ErrClientNotFound
	case errors.Is(err, domain.ErrIntegrityViolation):
		return httperr.ErrDatabaseIntegrity
	default:
		return err
	}
}
